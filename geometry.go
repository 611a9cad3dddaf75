package wheel

import "math"

// Geometry is the layout derived from item height, view size and item count.
// Offsets are in pixels along the scroll axis; Min is the absolute offset at
// which item 0 sits under the indicator.
type Geometry struct {
	ItemHeight   float64
	Overflow     float64 // elastic overscroll allowed while dragging
	Min          float64
	Max          float64
	ViewHeight   float64 // visible height of the list
	IndicatorTop float64 // top of the selection indicator inside the view
}

// ComputeGeometry derives the layout for itemCount items of itemHeight pixels
// shown viewSize at a time. Fractional view sizes show partial neighbors; an
// even number of visible slots shifts the list by half an item so that one
// item stays centered under the indicator.
func ComputeGeometry(itemHeight, viewSize float64, itemCount int) Geometry {
	if viewSize < 0 {
		viewSize = 0
	}
	intSize := math.Ceil(viewSize)
	fraction := intSize - viewSize
	even := 0.0
	if math.Mod(intSize, 2) == 0 {
		even = 1
	}
	margin := (fraction + even) * itemHeight
	size := math.Floor(viewSize) - even

	g := Geometry{
		ItemHeight: itemHeight,
		Overflow:   itemHeight / OverflowDivisor,
	}
	g.Min = math.Floor(-size*itemHeight/2 + itemHeight/2 - margin/2)
	g.Max = g.Min
	if itemCount > 1 {
		g.Max = float64(itemCount-1)*itemHeight + g.Min
	}
	g.ViewHeight = size*itemHeight + margin
	g.IndicatorTop = size/2*itemHeight + margin/2 - itemHeight/2
	return g
}

// Scrollable reports whether the geometry has a usable item grid.
func (g Geometry) Scrollable() bool {
	return g.ItemHeight > 0
}

// Range returns the settled travel between Min and Max.
func (g Geometry) Range() float64 {
	return g.Max - g.Min
}
