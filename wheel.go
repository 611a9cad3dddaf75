package wheel

import (
	"image/color"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts the color to a premultiplied image/color value.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R) * a * 255),
		G: uint8(clamp01(c.G) * a * 255),
		B: uint8(clamp01(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Item is a single pickable value. Items are identified by position, not by
// a stable key.
type Item = any

// Texter is implemented by items that carry their own display text. Text may
// return a string, a number, or a pre-rendered *Node.
type Texter interface {
	Text() any
}

// ChangeEvent is emitted when the settled selection differs from the
// previously committed one.
type ChangeEvent struct {
	Index int
	Value Item
}

// EventType identifies a kind of input event handled by a picker.
type EventType uint8

const (
	EventPointerDown EventType = iota // pointer pressed inside the picker
	EventPointerMove                  // pointer moved while a gesture is tracked
	EventPointerUp                    // pointer released while a gesture is tracked
	EventWheel                        // scroll wheel turned over the picker
	EventChange                       // selection changed
)

// Class names applied to the nodes of a built picker. Renderers and styles
// key off these.
const (
	ClassRoot      = "wheel"
	ClassInner     = "wheel-inner"
	ClassList      = "wheel-list"
	ClassIndicator = "wheel-indicator"
	ClassItem      = "wheel-item"
	ClassDragging  = "dragging"
)

const (
	// DefaultViewSize is the number of items visible at once.
	DefaultViewSize = 2.0

	// AutoItemHeight asks the renderer to measure an item.
	AutoItemHeight = 0.0

	// DragDeadZone is the pointer travel in pixels ignored between two
	// applied drag steps.
	DragDeadZone = 2.0

	// OverflowDivisor sets the elastic overscroll to itemHeight/OverflowDivisor.
	// Must stay above 2 so snapping recovers the true min and max.
	OverflowDivisor = 4.0

	// DefaultSnapDuration is the length of the snap animation.
	DefaultSnapDuration = 400 * time.Millisecond

	// FrameInterval is the duration of one host frame (60 TPS).
	FrameInterval = time.Second / 60
)
