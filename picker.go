package wheel

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Picker, change events are forwarded to the ECS.
type EntityStore interface {
	EmitChange(event ChangeEvent)
}

// Picker is a vertically scrolling, snap-to-item wheel selector. It owns its
// items, layout, scroll offset and selection; all of it is mutated from
// Update, the input handlers and the public methods, on a single goroutine.
type Picker struct {
	cfg      Config
	caps     Capabilities
	renderer Renderer
	source   InputSource
	store    EntityStore
	debug    bool

	// Items and selection
	items         []Item
	selectedIndex int
	selectedItem  Item

	// Display tree (nil until Build)
	root      *Node
	inner     *Node
	list      *Node
	indicator *Node

	// Layout
	geom           Geometry
	offset         float64
	measuredHeight float64 // cached AutoItemHeight measurement

	// Drag tracking
	pressed       bool
	reference     float64
	dragHandle    CallbackHandle
	releaseHandle CallbackHandle

	anim *Animation

	// Input state
	handlers    handlerRegistry
	pointers    [maxPointers]pointerState
	touchMap    [maxPointers]int
	touchUsed   [maxPointers]bool
	touchBuf    []Touch
	dispatchBuf []pointerHandler
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// New creates a picker for items. When items is nil, cfg.Items is used. The
// picker does nothing visible until Build is called.
func New(items []Item, cfg ...Config) *Picker {
	var c Config
	if len(cfg) > 0 {
		c = cfg[0]
	}
	c = c.withDefaults()
	if items == nil {
		items = c.Items
	}
	p := &Picker{
		cfg:           c,
		caps:          *c.Capabilities,
		renderer:      c.Renderer,
		source:        EbitenInput(),
		items:         slices.Clone(items),
		selectedIndex: -1,
	}
	if p.items == nil {
		p.items = []Item{}
	}
	p.SetDebugMode(c.Debug)
	return p
}

// Build creates the display tree, wires input handlers, lays the picker out
// and selects the first item. Calling Build again returns the existing root.
func (p *Picker) Build() *Node {
	if p.root != nil {
		return p.root
	}
	root := NewNode("root", ClassRoot)
	root.X, root.Y = p.cfg.X, p.cfg.Y

	inner := NewNode("inner", ClassInner)
	root.AddChild(inner)

	list := NewNode("list", ClassList)
	inner.AddChild(list)

	indicator := NewNode("indicator", ClassIndicator)
	inner.AddChild(indicator)

	for _, item := range p.items {
		list.AddChild(p.buildItem(item))
	}

	p.root, p.inner, p.list, p.indicator = root, inner, list, indicator

	if p.caps.TouchAvailable {
		p.handlers.addPointer(EventPointerDown, touchPointer, p.onTap)
	}
	p.handlers.addPointer(EventPointerDown, mousePointer, p.onTap)
	p.handlers.addPointer(EventWheel, anyPointer, p.onWheel)

	p.Resize()
	p.Select(0)
	return root
}

// buildItem asks the renderer for an item node and tags it.
func (p *Picker) buildItem(item Item) *Node {
	n := p.renderer.BuildItem(item)
	if n == nil {
		n = NewNode("item")
	}
	n.AddClass(ClassItem)
	n.Item = item
	return n
}

// Resize re-measures the item height (when automatic) and recomputes the
// layout, e.g. after the container or font changed. No-op before Build.
func (p *Picker) Resize() {
	if p.root == nil {
		return
	}
	p.layout(true)
}

// layout recomputes geometry and positions the display tree. An automatic
// item height is measured when remeasure is set or nothing is cached yet.
func (p *Picker) layout(remeasure bool) {
	h := p.cfg.ItemHeight
	if h == AutoItemHeight {
		if remeasure || p.measuredHeight == 0 {
			p.measuredHeight = p.renderer.MeasureItemHeight(p.root)
		}
		h = p.measuredHeight
	}
	prev := p.geom
	normalized := p.offset - prev.Min
	if prev.ItemHeight > 0 && h > 0 && prev.ItemHeight != h {
		normalized = normalized / prev.ItemHeight * h
	}
	p.geom = ComputeGeometry(h, p.cfg.ViewSize, len(p.items))
	g := p.geom
	w := p.cfg.Width

	// Keep the offset inside the new range; overscroll survives only while
	// a drag is in progress.
	overflow := 0.0
	if p.pressed {
		overflow = g.Overflow
	}
	p.scrollTo(normalized, overflow)

	p.root.Width, p.root.Height = w, g.ViewHeight
	p.inner.Width, p.inner.Height = w, g.ViewHeight

	p.list.Width = w
	p.list.Height = float64(len(p.items)) * g.ItemHeight
	for i, n := range p.list.Children() {
		n.X, n.Y = 0, float64(i)*g.ItemHeight
		n.Width, n.Height = w, g.ItemHeight
		n.MarkDirty()
	}

	p.indicator.Y = g.IndicatorTop
	p.indicator.Width, p.indicator.Height = w, g.ItemHeight
	p.root.MarkDirty()
	p.debugLogGeometry()
}

// Select jumps to item index without animation and commits it as the
// selection. index is clamped; no change event is emitted. No-op before
// Build.
func (p *Picker) Select(index int) {
	if p.root == nil {
		return
	}
	p.cancelAnimation()
	p.scrollToIndex(index)
	p.selectIndex(index)
}

// Update advances the picker by one frame: runs the attached test script,
// steps the snap animation, then processes input. Call it from the game's
// Update.
func (p *Picker) Update() {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.stepAnimation()
	p.processInput()
}

// Draw renders the picker onto screen. No-op before Build.
func (p *Picker) Draw(screen *ebiten.Image) {
	if p.root == nil {
		return
	}
	p.renderer.Draw(screen, p)
	p.root.ClearDirty()
}

// Len returns the number of items.
func (p *Picker) Len() int {
	return len(p.items)
}

// Items returns the item list. The returned slice MUST NOT be mutated.
func (p *Picker) Items() []Item {
	return p.items
}

// Geometry returns the current layout.
func (p *Picker) Geometry() Geometry {
	return p.geom
}

// Root returns the root node, or nil before Build.
func (p *Picker) Root() *Node {
	return p.root
}

// Capabilities returns the host description the picker was configured with.
func (p *Picker) Capabilities() Capabilities {
	return p.caps
}

// SetEntityStore sets the optional ECS bridge.
func (p *Picker) SetEntityStore(store EntityStore) {
	p.store = store
}
