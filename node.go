package wheel

import "slices"

// nodeIDCounter is a plain counter; pickers are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of a picker's display tree: the root, the inner
// viewport, the scrolling list, the indicator and one node per item.
// A single flat struct is used for every role; Classes carries the role and
// any state hooks (such as "dragging") that renderers and styles key off.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local position relative to the parent, and size.
	X, Y          float64
	Width, Height float64

	Visible bool

	// Item payload (item nodes only). Label is the escaped display text;
	// Content is a pre-rendered node supplied by the item itself.
	Item    Item
	Label   string
	Content *Node

	// Metadata
	UserData any

	dirty    bool
	disposed bool
}

// NewNode creates a node with the given name and classes.
func NewNode(name string, classes ...string) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		Classes: classes,
		Visible: true,
		dirty:   true,
	}
}

// --- Classes ---

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.Classes, c)
}

// AddClass adds class c if it is not already present.
func (n *Node) AddClass(c string) {
	if n.HasClass(c) {
		return
	}
	n.Classes = append(n.Classes, c)
	n.dirty = true
}

// RemoveClass removes class c. No-op if absent.
func (n *Node) RemoveClass(c string) {
	i := slices.Index(n.Classes, c)
	if i < 0 {
		return
	}
	n.Classes = slices.Delete(n.Classes, i, i+1)
	n.dirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("wheel: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("wheel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("wheel: child index out of range")
	}
	child.Parent = n
	n.children = slices.Insert(n.children, index, child)
	n.dirty = true
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("wheel: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.dirty = true
	markSubtreeDirty(child)
	return child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("wheel: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.dirty = true
	markSubtreeDirty(child)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Find returns the first node in the subtree (depth-first, self included)
// carrying class c, or nil.
func (n *Node) Find(c string) *Node {
	if n.HasClass(c) {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(c); found != nil {
			return found
		}
	}
	return nil
}

// Copy returns a detached deep copy of the subtree. keep is called for each
// child in order; returning false stops copying that child and its later
// siblings. A nil keep copies everything.
func (n *Node) Copy(keep func(i int, child *Node) bool) *Node {
	cp := &Node{
		ID:       nextNodeID(),
		Name:     n.Name,
		Classes:  slices.Clone(n.Classes),
		X:        n.X,
		Y:        n.Y,
		Width:    n.Width,
		Height:   n.Height,
		Visible:  n.Visible,
		Item:     n.Item,
		Label:    n.Label,
		Content:  n.Content,
		UserData: n.UserData,
		dirty:    true,
	}
	for i, child := range n.children {
		if keep != nil && !keep(i, child) {
			break
		}
		c := child.Copy(keep)
		c.Parent = cp
		cp.children = append(cp.children, c)
	}
	return cp
}

// --- Position ---

// WorldPosition returns the node's top-left corner in screen coordinates.
func (n *Node) WorldPosition() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// Bounds returns the node's rectangle in screen coordinates.
func (n *Node) Bounds() Rect {
	x, y := n.WorldPosition()
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// MarkDirty flags the node as needing a redraw.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// Dirty reports whether the node changed since the last ClearDirty.
func (n *Node) Dirty() bool {
	return n.dirty
}

// ClearDirty resets the dirty flag on the whole subtree.
func (n *Node) ClearDirty() {
	n.dirty = false
	for _, child := range n.children {
		child.ClearDirty()
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Item = nil
	n.Content = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets the dirty flag on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.dirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
