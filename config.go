package wheel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Config controls a picker. Zero fields take their defaults.
type Config struct {
	// Items is used when New is called with a nil item slice.
	Items []Item

	// ViewSize is the number of items visible at once; fractional values
	// show partial neighbors. Defaults to DefaultViewSize.
	ViewSize float64

	// ItemHeight is the pixel height of one item, or AutoItemHeight to have
	// the renderer measure one.
	ItemHeight float64

	// X, Y position the picker on screen; Width is its horizontal extent.
	X, Y  float64
	Width float64

	// SnapDuration is the length of the post-release snap animation.
	SnapDuration time.Duration

	// DragDeadZone is the pointer travel in pixels ignored between drag steps.
	DragDeadZone float64

	// Ease shapes the snap animation. Defaults to ease.Linear.
	Ease ease.TweenFunc

	// Capabilities describes the host; nil probes the running platform.
	Capabilities *Capabilities

	// Renderer builds and draws item nodes; nil uses a TextRenderer with the
	// built-in debug font.
	Renderer Renderer

	// Debug logs geometry, gesture and change activity to stderr.
	Debug bool
}

// DefaultWidth is the picker width used when Config.Width is zero.
const DefaultWidth = 160.0

// withDefaults returns cfg with zero fields filled in.
func (cfg Config) withDefaults() Config {
	if cfg.ViewSize == 0 {
		cfg.ViewSize = DefaultViewSize
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.SnapDuration == 0 {
		cfg.SnapDuration = DefaultSnapDuration
	}
	if cfg.DragDeadZone == 0 {
		cfg.DragDeadZone = DragDeadZone
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	if cfg.Capabilities == nil {
		caps := ProbeCapabilities()
		cfg.Capabilities = &caps
	}
	if cfg.Renderer == nil {
		cfg.Renderer = &TextRenderer{}
	}
	return cfg
}

// --- JSON ---

// Height is an item height that decodes from a number of pixels or the
// string "auto".
type Height float64

// UnmarshalJSON accepts a number or "auto".
func (h *Height) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*h = AutoItemHeight
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "auto" && s != "" {
			return fmt.Errorf("item height %q: want a number or \"auto\"", s)
		}
		*h = AutoItemHeight
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("item height: %w", err)
	}
	if f < 0 {
		return fmt.Errorf("item height %v: must not be negative", f)
	}
	*h = Height(f)
	return nil
}

// configFile is the JSON shape read by LoadConfig.
type configFile struct {
	Items          []Item  `json:"items"`
	ViewSize       float64 `json:"viewSize"`
	ItemHeight     Height  `json:"itemHeight"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Width          float64 `json:"width"`
	SnapDurationMs float64 `json:"snapDurationMs"`
	DragDeadZone   float64 `json:"dragDeadZone"`
	Ease           string  `json:"ease"`
	TouchAvailable *bool   `json:"touch"`
	Debug          bool    `json:"debug"`
}

// easings maps the names accepted in config files to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outExpo":    ease.OutExpo,
	"outBack":    ease.OutBack,
	"outElastic": ease.OutElastic,
	"outBounce":  ease.OutBounce,
}

// LoadConfig parses a JSON picker configuration. Durations are given in
// milliseconds and itemHeight may be "auto".
func LoadConfig(jsonData []byte) (Config, error) {
	var f configFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return Config{}, fmt.Errorf("parse picker config: %w", err)
	}
	if f.ViewSize < 0 {
		return Config{}, fmt.Errorf("parse picker config: viewSize %v must not be negative", f.ViewSize)
	}
	fn, ok := easings[f.Ease]
	if !ok {
		return Config{}, fmt.Errorf("parse picker config: unknown ease %q", f.Ease)
	}
	cfg := Config{
		Items:        f.Items,
		ViewSize:     f.ViewSize,
		ItemHeight:   float64(f.ItemHeight),
		X:            f.X,
		Y:            f.Y,
		Width:        f.Width,
		SnapDuration: time.Duration(f.SnapDurationMs * float64(time.Millisecond)),
		DragDeadZone: f.DragDeadZone,
		Ease:         fn,
		Debug:        f.Debug,
	}
	if f.TouchAvailable != nil {
		caps := ProbeCapabilities()
		caps.TouchAvailable = *f.TouchAvailable
		cfg.Capabilities = &caps
	}
	return cfg, nil
}
