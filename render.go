package wheel

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the display side of a picker. The picker only relies on it for
// item nodes and the item height; it never inspects what is drawn.
type Renderer interface {
	// BuildItem returns the node displaying item.
	BuildItem(item Item) *Node

	// MeasureItemHeight returns the pixel height of one item of the tree
	// rooted at root. It must not modify the tree.
	MeasureItemHeight(root *Node) float64

	// Draw paints the picker onto screen.
	Draw(screen *ebiten.Image, p *Picker)
}

// Style maps class names to fill colors. Classes are looked up in node order,
// so later classes (such as "dragging") override earlier ones.
type Style map[string]Color

// DefaultStyle is used by a TextRenderer with no Style.
var DefaultStyle = Style{
	ClassInner:     {R: 0.12, G: 0.12, B: 0.16, A: 1},
	ClassDragging:  {R: 0.16, G: 0.16, B: 0.22, A: 1},
	ClassIndicator: {R: 0.3, G: 0.7, B: 1, A: 0.25},
	ClassItem:      ColorWhite,
}

func (s Style) colorOf(n *Node) (Color, bool) {
	var c Color
	found := false
	for _, class := range n.Classes {
		if v, ok := s[class]; ok {
			c = v
			found = true
		}
	}
	return c, found
}

// TextRenderer draws items as single-line labels. With a nil Font it falls
// back to ebitenutil's debug font.
type TextRenderer struct {
	Font    Font
	Style   Style
	Padding float64 // vertical padding above and below each label
}

func (r *TextRenderer) font() Font {
	if r.Font == nil {
		return debugFont{}
	}
	return r.Font
}

func (r *TextRenderer) style() Style {
	if r.Style == nil {
		return DefaultStyle
	}
	return r.Style
}

// BuildItem creates an item node. Items whose Text is a *Node keep that node
// as pre-rendered content; everything else is labelled with DisplayText.
func (r *TextRenderer) BuildItem(item Item) *Node {
	n := NewNode("item", ClassItem)
	n.Item = item
	if t, ok := item.(Texter); ok {
		if content, ok := t.Text().(*Node); ok && content != nil {
			n.Content = content
		}
	}
	n.Label = DisplayText(item)
	return n
}

// MeasureItemHeight lays out a detached copy of the tree holding at most one
// item (a placeholder when the list is empty) and returns that item's height
// in whole pixels. The live tree is never touched, so measuring causes no
// visible layout change.
func (r *TextRenderer) MeasureItemHeight(root *Node) float64 {
	if root == nil {
		return 0
	}
	cp := root.Copy(func(i int, child *Node) bool {
		return i == 0 || !child.HasClass(ClassItem)
	})
	list := cp.Find(ClassList)
	if list == nil {
		return 0
	}
	if list.NumChildren() == 0 {
		list.AddChild(r.BuildItem("test"))
	}
	return math.Floor(r.itemHeight(list.ChildAt(0)))
}

// itemHeight is the laid out height of an item node.
func (r *TextRenderer) itemHeight(n *Node) float64 {
	if n.Content != nil && n.Content.Height > 0 {
		return n.Content.Height + 2*r.Padding
	}
	_, h := r.font().MeasureString(n.Label)
	return max(h, r.font().LineHeight()) + 2*r.Padding
}

// Draw paints the viewport background, the visible items and the indicator.
func (r *TextRenderer) Draw(screen *ebiten.Image, p *Picker) {
	inner, list, indicator := p.inner, p.list, p.indicator
	if inner == nil || list == nil {
		return
	}
	style := r.style()
	view := inner.Bounds()
	clip := image.Rect(
		int(math.Floor(view.X)), int(math.Floor(view.Y)),
		int(math.Ceil(view.X+view.Width)), int(math.Ceil(view.Y+view.Height)),
	).Intersect(screen.Bounds())
	if clip.Empty() {
		return
	}
	dst := screen.SubImage(clip).(*ebiten.Image)

	if c, ok := style.colorOf(inner); ok {
		vector.DrawFilledRect(dst, float32(view.X), float32(view.Y), float32(view.Width), float32(view.Height), c.RGBA(), false)
	}

	for _, item := range list.Children() {
		b := item.Bounds()
		if !item.Visible || b.Y+b.Height < view.Y || b.Y > view.Y+view.Height {
			continue
		}
		r.drawItem(dst, item, b, style)
	}

	if indicator != nil {
		if c, ok := style.colorOf(indicator); ok {
			b := indicator.Bounds()
			vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), c.RGBA(), false)
		}
	}
}

func (r *TextRenderer) drawItem(dst *ebiten.Image, item *Node, b Rect, style Style) {
	if item.Content != nil {
		if c, ok := style.colorOf(item.Content); ok {
			vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), c.RGBA(), false)
		}
	}
	w, h := r.font().MeasureString(item.Label)
	x := b.X + (b.Width-w)/2
	y := b.Y + (b.Height-h)/2

	ttf, ok := r.Font.(*TTFFont)
	if !ok {
		ebitenutil.DebugPrintAt(dst, item.Label, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = ttf.LineHeight()
	if c, ok := style.colorOf(item); ok {
		op.ColorScale.ScaleWithColor(c.RGBA())
	}
	text.Draw(dst, item.Label, ttf.Face(), op)
}
