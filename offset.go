package wheel

// scrollTo moves the list to a normalized offset. The absolute offset is
// clamped into [min-overflow, max+overflow] and the list node is translated
// by -offset. overflow must stay below itemHeight/2 or snapping can no longer
// recover the true min and max.
func (p *Picker) scrollTo(normalized, overflow float64) {
	y := normalized + p.geom.Min
	if y > p.geom.Max+overflow {
		y = p.geom.Max + overflow
	} else if y < p.geom.Min-overflow {
		y = p.geom.Min - overflow
	}
	p.offset = y
	if p.list != nil {
		p.list.Y = -y
		p.list.MarkDirty()
	}
}

// scrollToIndex jumps to the offset of item idx without overscroll.
func (p *Picker) scrollToIndex(idx int) {
	p.scrollTo(float64(idx)*p.geom.ItemHeight, 0)
}

// normalizedOffset returns the offset relative to Min, so that item 0 sits
// at zero.
func (p *Picker) normalizedOffset() float64 {
	return p.offset - p.geom.Min
}

// Offset returns the current absolute scroll offset in pixels.
func (p *Picker) Offset() float64 {
	return p.offset
}

// NormalizedOffset returns the scroll offset relative to the first item.
func (p *Picker) NormalizedOffset() float64 {
	return p.normalizedOffset()
}
