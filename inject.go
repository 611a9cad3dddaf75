package wheel

// syntheticPointerEvent represents a single injected input event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	touch   bool
	wheel   float64 // raw wheel delta; non-zero marks a wheel event
}

// touchInjectPointer is the pointer slot used by injected touch gestures.
const touchInjectPointer = 1

// InjectPress queues a mouse press at the given screen coordinates. The event
// is consumed on the next frame's Update call.
func (p *Picker) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a mouse move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (p *Picker) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a mouse release at the given screen coordinates.
func (p *Picker) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectDrag queues a full mouse drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and release
// at (toX, toY). The total sequence consumes `frames` frames. Minimum frames
// is 2 (press + release).
func (p *Picker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	p.injectDrag(fromX, fromY, toX, toY, frames, false)
}

// InjectTouchDrag is InjectDrag for a single touch point.
func (p *Picker) InjectTouchDrag(fromX, fromY, toX, toY float64, frames int) {
	p.injectDrag(fromX, fromY, toX, toY, frames, true)
}

func (p *Picker) injectDrag(fromX, fromY, toX, toY float64, frames int, touch bool) {
	if frames < 2 {
		frames = 2
	}
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: fromX, y: fromY, pressed: true, touch: touch})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.injectQueue = append(p.injectQueue, syntheticPointerEvent{
			x:       fromX + (toX-fromX)*t,
			y:       fromY + (toY-fromY)*t,
			pressed: true,
			touch:   touch,
		})
	}
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: toX, y: toY, touch: touch})
}

// InjectWheel queues a raw host wheel delta with the cursor at (x, y). The
// delta is normalized with Capabilities.WheelSign like real wheel input.
// A zero delta is dropped, as the host reports zero on idle frames.
func (p *Picker) InjectWheel(x, y, delta float64) {
	if delta == 0 {
		return
	}
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, wheel: delta})
}

// Pending returns the number of injected events not yet consumed.
func (p *Picker) Pending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer or wheel path. Returns true if an event was consumed
// (host input is skipped for that frame).
func (p *Picker) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.wheel != 0 {
		p.processWheel(evt.x, evt.y, evt.wheel)
		return true
	}
	pointerID := 0
	if evt.touch {
		pointerID = touchInjectPointer
	}
	p.processPointer(pointerID, evt.x, evt.y, evt.pressed, evt.touch)
	return true
}
