package wheel

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Platform capabilities ---

// Capabilities is the normalized description of the host's input, resolved
// once at startup and handed to each picker through Config.
type Capabilities struct {
	// TouchAvailable enables touch tracking in addition to the mouse.
	TouchAvailable bool

	// WheelSign converts the host's raw vertical wheel delta into the picker's
	// convention, where a positive delta moves toward later items.
	WheelSign float64
}

// ProbeCapabilities inspects the running platform. Ebitengine reports a
// positive wheel Y when the wheel turns away from the user, which scrolls
// toward earlier items, so the sign is inverted.
func ProbeCapabilities() Capabilities {
	touch := false
	switch runtime.GOOS {
	case "android", "ios":
		touch = true
	}
	return Capabilities{
		TouchAvailable: touch,
		WheelSign:      -1,
	}
}

// --- Host input source ---

// Touch is one active touch point reported by an InputSource.
type Touch struct {
	ID   int
	X, Y float64
}

// InputSource is polled once per frame for raw host input.
type InputSource interface {
	CursorPosition() (x, y float64)
	MousePressed() bool
	AppendTouches(buf []Touch) []Touch
	// Wheel returns the raw vertical wheel delta since the last frame.
	Wheel() float64
}

// ebitenSource reads input from Ebitengine.
type ebitenSource struct {
	touchIDs []ebiten.TouchID
}

// EbitenInput returns an InputSource backed by Ebitengine's input state.
func EbitenInput() InputSource {
	return &ebitenSource{}
}

func (s *ebitenSource) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (s *ebitenSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (s *ebitenSource) AppendTouches(buf []Touch) []Touch {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return buf
}

func (s *ebitenSource) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// --- Pointer events ---

// PointerEvent is a normalized pointer or wheel event.
type PointerEvent struct {
	Type      EventType
	PointerID int
	X, Y      float64
	Touch     bool
	DeltaY    float64 // EventWheel only, already normalized by WheelSign
}

type pointerState struct {
	down  bool
	touch bool
	lastX float64
	lastY float64
}

// modality restricts a handler to mouse or touch gestures.
type modality uint8

const (
	anyPointer modality = iota
	mousePointer
	touchPointer
)

func (m modality) accepts(touch bool) bool {
	switch m {
	case mousePointer:
		return !touch
	case touchPointer:
		return touch
	}
	return true
}

func modalityOf(touch bool) modality {
	if touch {
		return touchPointer
	}
	return mousePointer
}

// --- Handler registry ---

type pointerHandler struct {
	id       uint32
	modality modality
	fn       func(PointerEvent)
}

type changeHandler struct {
	id uint32
	fn func(ChangeEvent)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerMove []pointerHandler
	pointerUp   []pointerHandler
	wheel       []pointerHandler
	change      []changeHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Active reports whether the handle refers to a registered callback.
func (h CallbackHandle) Active() bool {
	return h.reg != nil
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventWheel:
		h.reg.wheel = removePointerHandler(h.reg.wheel, h.id)
	case EventChange:
		h.reg.change = removeChangeHandler(h.reg.change, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// addPointer registers fn for a pointer or wheel event type.
func (r *handlerRegistry) addPointer(event EventType, m modality, fn func(PointerEvent)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, modality: m, fn: fn}
	switch event {
	case EventPointerDown:
		r.pointerDown = append(r.pointerDown, h)
	case EventPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	case EventPointerUp:
		r.pointerUp = append(r.pointerUp, h)
	case EventWheel:
		r.wheel = append(r.wheel, h)
	default:
		return CallbackHandle{}
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// OnChange registers a callback for selection changes.
func (p *Picker) OnChange(fn func(ChangeEvent)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.change = append(p.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, event: EventChange}
}

// SetInputSource replaces the host input source. A nil source disables
// polling; injected events are still processed.
func (p *Picker) SetInputSource(src InputSource) {
	p.source = src
}

// --- Input processing ---

// processInput is called from Picker.Update to handle one frame of input.
// Injected events take priority over host input.
func (p *Picker) processInput() {
	if p.processInjectedInput() {
		return
	}
	if p.source == nil {
		return
	}

	mx, my := p.source.CursorPosition()
	p.processPointer(0, mx, my, p.source.MousePressed(), false)

	if p.caps.TouchAvailable {
		p.processTouchPointers()
	}

	if dy := p.source.Wheel(); dy != 0 {
		p.processWheel(mx, my, dy)
	}
}

// processTouchPointers handles touch input (pointers 1-9).
func (p *Picker) processTouchPointers() {
	p.touchBuf = p.source.AppendTouches(p.touchBuf[:0])

	var activeSlots [maxPointers]bool
	for _, t := range p.touchBuf {
		slot := p.touchSlot(t.ID)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		p.processPointer(slot, t.X, t.Y, true, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !activeSlots[i] {
			ps := &p.pointers[i]
			if ps.down {
				p.processPointer(i, ps.lastX, ps.lastY, false, true)
			}
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps a touch ID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *Picker) touchSlot(id int) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == id {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = id
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release state machine for one pointer.
func (p *Picker) processPointer(pointerID int, x, y float64, pressed, touch bool) {
	ps := &p.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.touch = touch
		ps.lastX = x
		ps.lastY = y
		p.firePointerDown(PointerEvent{Type: EventPointerDown, PointerID: pointerID, X: x, Y: y, Touch: touch})
	case !pressed && ps.down:
		ps.down = false
		p.firePointer(p.handlers.pointerUp, PointerEvent{Type: EventPointerUp, PointerID: pointerID, X: x, Y: y, Touch: ps.touch})
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			ps.lastX = x
			ps.lastY = y
			p.firePointer(p.handlers.pointerMove, PointerEvent{Type: EventPointerMove, PointerID: pointerID, X: x, Y: y, Touch: ps.touch})
		}
	default:
		ps.lastX = x
		ps.lastY = y
	}
}

// processWheel dispatches a raw wheel delta when the pointer is over the
// picker's viewport.
func (p *Picker) processWheel(x, y, rawDelta float64) {
	if !p.hit(x, y) {
		return
	}
	p.firePointer(p.handlers.wheel, PointerEvent{
		Type:   EventWheel,
		X:      x,
		Y:      y,
		DeltaY: rawDelta * p.caps.WheelSign,
	})
}

// hit reports whether (x, y) lies inside the picker's viewport.
func (p *Picker) hit(x, y float64) bool {
	return p.inner != nil && p.inner.Bounds().Contains(x, y)
}

// --- Event dispatch ---

// firePointerDown only dispatches presses that start inside the viewport.
// Move and release handlers are attached per gesture and see every event of
// their modality, wherever the pointer is.
func (p *Picker) firePointerDown(ev PointerEvent) {
	if !p.hit(ev.X, ev.Y) {
		return
	}
	p.firePointer(p.handlers.pointerDown, ev)
}

// firePointer calls handlers accepting the event's modality. Handlers may
// register or remove handlers while running, so a snapshot is iterated.
func (p *Picker) firePointer(handlers []pointerHandler, ev PointerEvent) {
	p.dispatchBuf = append(p.dispatchBuf[:0], handlers...)
	for _, h := range p.dispatchBuf {
		if h.modality.accepts(ev.Touch) {
			h.fn(ev)
		}
	}
}

// emitChange delivers a change to registered callbacks and the optional
// entity store.
func (p *Picker) emitChange(ev ChangeEvent) {
	for _, h := range append([]changeHandler(nil), p.handlers.change...) {
		h.fn(ev)
	}
	if p.store != nil {
		p.store.EmitChange(ev)
	}
}
