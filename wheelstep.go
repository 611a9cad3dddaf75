package wheel

func (p *Picker) onWheel(ev PointerEvent) {
	p.Wheel(ev.DeltaY)
}

// Wheel steps exactly one item toward the sign of deltaY (negative moves
// toward the first item) and reports the change right away. The step lands
// on the grid, so no snap follows. A snap still in flight is completed
// first so the step starts from the grid. No-op before Build.
func (p *Picker) Wheel(deltaY float64) {
	if p.root == nil {
		return
	}
	p.finishAnimation()
	step := p.geom.ItemHeight
	if deltaY < 0 {
		step = -step
	}
	p.scrollTo(p.normalizedOffset()+step, 0)
	p.fireChange()
}
