package wheel

// onTap starts tracking a gesture. Move and release handlers are attached
// for the gesture's modality only (mouse or touch, never both).
func (p *Picker) onTap(ev PointerEvent) {
	p.cancelAnimation()
	p.startTracking(ev.Touch)
	p.inner.AddClass(ClassDragging)
	p.pressed = true
	p.reference = ev.Y
	p.debugf("drag: press pointer=%d y=%v touch=%v", ev.PointerID, ev.Y, ev.Touch)
}

// startTracking attaches move and release handlers. Handlers left from an
// earlier gesture are detached first.
func (p *Picker) startTracking(touch bool) {
	if p.dragHandle.Active() || p.releaseHandle.Active() {
		p.stopTracking()
	}
	m := modalityOf(touch)
	p.dragHandle = p.handlers.addPointer(EventPointerMove, m, p.onDrag)
	p.releaseHandle = p.handlers.addPointer(EventPointerUp, m, p.onRelease)
}

// stopTracking detaches the gesture handlers.
func (p *Picker) stopTracking() {
	p.dragHandle.Remove()
	p.dragHandle = CallbackHandle{}
	p.releaseHandle.Remove()
	p.releaseHandle = CallbackHandle{}
}

// onDrag applies pointer travel beyond the dead zone, with elastic
// overscroll allowed past either end.
func (p *Picker) onDrag(ev PointerEvent) {
	if !p.pressed {
		return
	}
	delta := p.reference - ev.Y
	if delta > p.cfg.DragDeadZone || delta < -p.cfg.DragDeadZone {
		p.reference = ev.Y
		p.scrollTo(p.normalizedOffset()+delta, p.geom.Overflow)
	}
}

// onRelease ends the gesture and snaps to the item grid; the change is
// detected once the list has settled.
func (p *Picker) onRelease(ev PointerEvent) {
	p.stopTracking()
	p.inner.RemoveClass(ClassDragging)
	p.pressed = false
	p.debugf("drag: release y=%v offset=%v", ev.Y, p.normalizedOffset())
	p.snap(func() { p.fireChange() })
}

// Dragging reports whether a pointer gesture is being tracked.
func (p *Picker) Dragging() bool {
	return p.pressed
}
