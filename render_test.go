package wheel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestStyleColorOf(t *testing.T) {
	style := Style{
		ClassInner:    {R: 1, A: 1},
		ClassDragging: {G: 1, A: 1},
	}
	n := NewNode("inner", ClassInner)
	if c, ok := style.colorOf(n); !ok || c.R != 1 {
		t.Errorf("colorOf = %+v, %v; want red", c, ok)
	}
	n.AddClass(ClassDragging)
	if c, _ := style.colorOf(n); c.G != 1 || c.R != 0 {
		t.Errorf("later class should win, got %+v", c)
	}
	if _, ok := style.colorOf(NewNode("plain")); ok {
		t.Error("node without styled classes should report no color")
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 2, A: 0.5}.RGBA()
	if c.A != 127 || c.R != 127 || c.G != 63 || c.B != 127 {
		t.Errorf("RGBA = %+v", c)
	}
}

func TestBuildItem(t *testing.T) {
	r := &TextRenderer{}
	n := r.BuildItem("Red")
	if n.Label != "Red" || n.Item != "Red" || !n.HasClass(ClassItem) {
		t.Errorf("BuildItem = %+v", n)
	}

	content := NewNode("swatch")
	content.Height = 30
	n = r.BuildItem(prerendered{content})
	if n.Content != content {
		t.Error("pre-rendered node should become the item content")
	}
}

func TestMeasureItemHeight(t *testing.T) {
	r := &TextRenderer{Padding: 4}
	p := New(abc(), Config{Renderer: r, Capabilities: &Capabilities{}})
	p.SetInputSource(nil)
	p.Build()

	before := p.list.NumChildren()
	got := r.MeasureItemHeight(p.Root())
	if got != debugGlyphHeight+8 {
		t.Errorf("MeasureItemHeight = %v, want %v", got, debugGlyphHeight+8)
	}
	if p.list.NumChildren() != before {
		t.Error("measuring modified the live list")
	}
}

func TestMeasureItemHeightEmptyList(t *testing.T) {
	r := &TextRenderer{}
	p := New(nil, Config{Renderer: r, Capabilities: &Capabilities{}})
	p.SetInputSource(nil)
	p.Build()

	if got := r.MeasureItemHeight(p.Root()); got != debugGlyphHeight {
		t.Errorf("MeasureItemHeight = %v, want %v from the placeholder", got, debugGlyphHeight)
	}
	if p.list.NumChildren() != 0 {
		t.Error("placeholder leaked into the live list")
	}
}

func TestMeasureItemHeightContent(t *testing.T) {
	r := &TextRenderer{Padding: 2}
	content := NewNode("swatch")
	content.Height = 30.7
	p := New([]Item{prerendered{content}}, Config{Renderer: r, Capabilities: &Capabilities{}})
	p.SetInputSource(nil)
	p.Build()

	if got := p.Geometry().ItemHeight; got != 34 {
		t.Errorf("ItemHeight = %v, want 34 (floored)", got)
	}
}

func TestMeasureItemHeightNoTree(t *testing.T) {
	r := &TextRenderer{}
	if got := r.MeasureItemHeight(nil); got != 0 {
		t.Errorf("MeasureItemHeight(nil) = %v, want 0", got)
	}
	if got := r.MeasureItemHeight(NewNode("loose")); got != 0 {
		t.Errorf("tree without a list = %v, want 0", got)
	}
}

func TestDrawClearsDirty(t *testing.T) {
	p := newTestPicker(t, abc(), Config{X: 10, Y: 10})
	screen := ebiten.NewImage(200, 120)
	p.Draw(screen)
	if p.Root().Dirty() || p.list.Dirty() {
		t.Error("Draw should clear dirty flags")
	}
	p.Wheel(1)
	if !p.list.Dirty() {
		t.Error("scrolling should mark the list dirty")
	}
}

func TestDrawOffscreen(t *testing.T) {
	p := newTestPicker(t, abc(), Config{X: 500, Y: 500})
	screen := ebiten.NewImage(100, 100)
	p.Draw(screen) // clipped away entirely
}

func TestDrawBeforeBuild(t *testing.T) {
	p := New(abc())
	p.Draw(ebiten.NewImage(10, 10))
}
