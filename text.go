package wheel

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("wheel: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Metrics of ebitenutil's built-in debug font, used when no Font is set.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// debugFont measures text drawn with ebitenutil.DebugPrintAt.
type debugFont struct{}

func (debugFont) MeasureString(s string) (float64, float64) {
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, uniseg.StringWidth(l))
	}
	return float64(widest * debugGlyphWidth), float64(len(lines) * debugGlyphHeight)
}

func (debugFont) LineHeight() float64 {
	return debugGlyphHeight
}

// MaxLabelGraphemes bounds the length of item labels.
const MaxLabelGraphemes = 64

// DisplayText returns the label shown for item. Items implementing Texter
// are labelled by their Text; other values are formatted with fmt.Sprint.
// Control characters become spaces so a label always stays on one line, and
// labels longer than MaxLabelGraphemes grapheme clusters end in an ellipsis.
func DisplayText(item Item) string {
	var v any = item
	if t, ok := item.(Texter); ok {
		v = t.Text()
	}
	switch t := v.(type) {
	case nil:
		return ""
	case *Node:
		if t == nil {
			return ""
		}
		return t.Label
	}
	s := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, fmt.Sprint(v))
	return truncateGraphemes(s, MaxLabelGraphemes)
}

// truncateGraphemes cuts s after n grapheme clusters, appending "…".
func truncateGraphemes(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n-1 && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString("…")
	return b.String()
}
