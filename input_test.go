package wheel

import "testing"

// fakeSource is a scripted InputSource.
type fakeSource struct {
	x, y    float64
	pressed bool
	touches []Touch
	wheel   float64
}

func (s *fakeSource) CursorPosition() (float64, float64) { return s.x, s.y }
func (s *fakeSource) MousePressed() bool                 { return s.pressed }
func (s *fakeSource) AppendTouches(buf []Touch) []Touch  { return append(buf, s.touches...) }

func (s *fakeSource) Wheel() float64 {
	w := s.wheel
	s.wheel = 0
	return w
}

func newSourcePicker(t *testing.T, caps Capabilities) (*Picker, *fakeSource) {
	t.Helper()
	p := newTestPicker(t, abc(), Config{Capabilities: &caps})
	src := &fakeSource{}
	p.SetInputSource(src)
	return p, src
}

func TestProbeCapabilities(t *testing.T) {
	caps := ProbeCapabilities()
	if caps.WheelSign != -1 {
		t.Errorf("WheelSign = %v, want -1", caps.WheelSign)
	}
}

func TestNewProbesCapabilities(t *testing.T) {
	p := New(nil)
	if p.Capabilities() != ProbeCapabilities() {
		t.Errorf("Capabilities = %+v, want probed %+v", p.Capabilities(), ProbeCapabilities())
	}
}

func TestMouseDragFromSource(t *testing.T) {
	p, src := newSourcePicker(t, Capabilities{WheelSign: -1})
	events := recordChanges(p)

	src.x, src.y, src.pressed = 50, 70, true
	p.Update()
	for _, y := range []float64{60, 50, 40, 30} {
		src.y = y
		p.Update()
	}
	if got := p.NormalizedOffset(); got != 40 {
		t.Fatalf("NormalizedOffset = %v, want 40", got)
	}
	src.pressed = false
	p.Update()
	if p.Dragging() {
		t.Error("release should end the drag")
	}
	if len(*events) != 1 || (*events)[0] != (ChangeEvent{Index: 1, Value: "B"}) {
		t.Errorf("changes = %v, want [{1 B}]", *events)
	}
}

func TestIdleFramesDoNothing(t *testing.T) {
	p, src := newSourcePicker(t, Capabilities{WheelSign: -1})
	src.x, src.y = 50, 40
	for range 10 {
		p.Update()
	}
	if p.NormalizedOffset() != 0 || p.Dragging() {
		t.Error("hovering without a press should not move the list")
	}
}

func TestWheelFromSource(t *testing.T) {
	tests := []struct {
		name  string
		sign  float64
		raw   float64
		x, y  float64
		index int
	}{
		{"ebitengine toward user", -1, -1, 50, 40, 1},
		{"ebitengine away from user", -1, 1, 50, 40, 0},
		{"positive convention", 1, 2, 50, 40, 1},
		{"outside viewport", -1, -1, 500, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, src := newSourcePicker(t, Capabilities{WheelSign: tt.sign})
			src.x, src.y, src.wheel = tt.x, tt.y, tt.raw
			p.Update()
			if p.SelectedIndex() != tt.index {
				t.Errorf("SelectedIndex = %d, want %d", p.SelectedIndex(), tt.index)
			}
		})
	}
}

func TestWheelStepsOneItem(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	events := recordChanges(p)

	p.Wheel(3.5) // magnitude is ignored
	if p.NormalizedOffset() != 40 {
		t.Errorf("NormalizedOffset = %v, want 40", p.NormalizedOffset())
	}
	p.Wheel(1)
	p.Wheel(1) // clamped at the last item
	p.Wheel(-0.1)
	if p.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", p.SelectedIndex())
	}
	want := []ChangeEvent{{1, "B"}, {2, "C"}, {1, "B"}}
	if len(*events) != len(want) {
		t.Fatalf("changes = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, (*events)[i], want[i])
		}
	}
}

func TestWheelBeforeBuild(t *testing.T) {
	p := New(abc())
	p.Wheel(1)
	if p.SelectedIndex() != -1 {
		t.Error("Wheel before Build should be a no-op")
	}
}

func TestTouchDragFromSource(t *testing.T) {
	p, src := newSourcePicker(t, Capabilities{TouchAvailable: true, WheelSign: -1})

	src.touches = []Touch{{ID: 42, X: 50, Y: 70}}
	p.Update()
	if !p.Dragging() {
		t.Fatal("touch press should start a drag")
	}
	src.touches[0].Y = 30
	p.Update()
	if got := p.NormalizedOffset(); got != 40 {
		t.Errorf("NormalizedOffset = %v, want 40", got)
	}
	src.touches = nil
	p.Update()
	if p.Dragging() {
		t.Error("lifting the finger should end the drag")
	}
	if p.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", p.SelectedIndex())
	}
	if p.touchUsed[1] {
		t.Error("touch slot should be released")
	}
}

func TestTouchSlots(t *testing.T) {
	p := New(nil)
	a := p.touchSlot(100)
	b := p.touchSlot(200)
	if a != 1 || b != 2 {
		t.Errorf("slots = %d, %d; want 1, 2", a, b)
	}
	if p.touchSlot(100) != a {
		t.Error("known touch ID should keep its slot")
	}
	for id := 300; id < 307; id++ {
		p.touchSlot(id)
	}
	if got := p.touchSlot(999); got != -1 {
		t.Errorf("slot when full = %d, want -1", got)
	}
}

func TestCallbackHandle(t *testing.T) {
	var r handlerRegistry
	calls := 0
	h := r.addPointer(EventWheel, anyPointer, func(PointerEvent) { calls++ })
	if !h.Active() {
		t.Fatal("handle should be active")
	}
	if len(r.wheel) != 1 {
		t.Fatalf("wheel handlers = %d, want 1", len(r.wheel))
	}
	h.Remove()
	h.Remove() // no-op for an id that is gone
	if len(r.wheel) != 0 {
		t.Errorf("wheel handlers = %d after Remove, want 0", len(r.wheel))
	}
	if got := r.addPointer(EventChange, anyPointer, nil); got.Active() {
		t.Error("change is not a pointer event")
	}
	var zero CallbackHandle
	zero.Remove()
}

func TestModalityAccepts(t *testing.T) {
	tests := []struct {
		m     modality
		touch bool
		want  bool
	}{
		{anyPointer, true, true},
		{anyPointer, false, true},
		{mousePointer, false, true},
		{mousePointer, true, false},
		{touchPointer, true, true},
		{touchPointer, false, false},
	}
	for _, tt := range tests {
		if got := tt.m.accepts(tt.touch); got != tt.want {
			t.Errorf("modality %d accepts(touch=%v) = %v, want %v", tt.m, tt.touch, got, tt.want)
		}
	}
}

func TestChangeHandlerMayRemoveItself(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	var h CallbackHandle
	calls, other := 0, 0
	h = p.OnChange(func(ChangeEvent) {
		calls++
		h.Remove()
	})
	p.OnChange(func(ChangeEvent) { other++ })
	p.Wheel(1)
	p.Wheel(1)
	if calls != 1 || other != 2 {
		t.Errorf("calls = %d, other = %d; want 1, 2", calls, other)
	}
}
