package wheel

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestFrameCount(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{400 * time.Millisecond, 25},
		{FrameInterval, 1},
		{FrameInterval + 1, 2},
		{60 * FrameInterval, 60},
		{0, 0},
		{-time.Second, -60},
	}
	for _, tt := range tests {
		if got := frameCount(tt.d); got != tt.want {
			t.Errorf("frameCount(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestSnapTarget(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"small remainder rounds back", 50, 40},
		{"half rounds forward", 60, 80},
		{"large remainder rounds forward", 75, 80},
		{"overscroll past end", 90, 80},
		{"overscroll before start", -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPicker(t, abc(), Config{})
			p.scrollTo(tt.offset, p.geom.Overflow)
			settled := false
			p.snap(func() { settled = true })
			if !p.Animating() {
				t.Fatal("snap off the grid should animate")
			}
			if got := p.anim.Target(); got != tt.want {
				t.Errorf("Target = %v, want %v", got, tt.want)
			}
			settle(t, p)
			if got := p.NormalizedOffset(); got != tt.want {
				t.Errorf("NormalizedOffset = %v, want %v", got, tt.want)
			}
			if !settled {
				t.Error("onSettled not called")
			}
		})
	}
}

func TestSnapAlignedSettlesImmediately(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	p.scrollToIndex(1)
	settled := false
	p.snap(func() { settled = true })
	if !settled {
		t.Error("onSettled should run synchronously when aligned")
	}
	if p.Animating() {
		t.Error("aligned snap should not animate")
	}
}

func TestSnapFrames(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	p.scrollTo(90, p.geom.Overflow)
	calls := 0
	p.snap(func() { calls++ })

	if got := p.anim.Frames(); got != 25 {
		t.Fatalf("Frames = %d, want 25", got)
	}
	for frame := 1; frame <= 24; frame++ {
		p.stepAnimation()
		if calls != 0 {
			t.Fatalf("onSettled ran early at frame %d", frame)
		}
		if frame == 13 {
			// 90 + ceil(-10 * 13/25)
			if got := p.NormalizedOffset(); got != 85 {
				t.Errorf("frame 13 offset = %v, want 85", got)
			}
		}
	}
	p.stepAnimation()
	if calls != 1 {
		t.Fatalf("onSettled called %d times after the last frame, want 1", calls)
	}
	if p.NormalizedOffset() != 80 || p.Animating() {
		t.Errorf("offset=%v animating=%v, want 80, false", p.NormalizedOffset(), p.Animating())
	}
	p.stepAnimation()
	if calls != 1 {
		t.Error("onSettled must run once")
	}
}

func TestAnimationStepsAreWholePixels(t *testing.T) {
	p := newTestPicker(t, []Item{1, 2, 3, 4}, Config{ItemHeight: 37, Ease: ease.OutCubic})
	p.scrollTo(52, 0)
	p.snap(nil)
	start := 52.0
	for p.Animating() {
		p.stepAnimation()
		if d := p.NormalizedOffset() - start; d != float64(int(d)) {
			t.Fatalf("offset %v is not a whole-pixel step from %v", p.NormalizedOffset(), start)
		}
	}
	if p.NormalizedOffset() != 37 {
		t.Errorf("NormalizedOffset = %v, want 37", p.NormalizedOffset())
	}
}

func TestCancelSkipsOnSettled(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	p.scrollTo(30, 0)
	called := false
	p.snap(func() { called = true })
	a := p.anim
	p.stepAnimation()
	p.cancelAnimation()

	if !a.Done() || !a.Cancelled() {
		t.Error("cancelled animation should be done and cancelled")
	}
	for range 40 {
		p.Update()
	}
	if called {
		t.Error("onSettled ran after cancel")
	}
	if p.NormalizedOffset() == 40 {
		t.Error("cancelled animation kept moving")
	}
}

func TestFinishAnimationJumps(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	p.scrollTo(70, 0)
	called := false
	p.snap(func() { called = true })
	p.finishAnimation()
	if p.NormalizedOffset() != 80 || p.Animating() {
		t.Errorf("offset=%v animating=%v, want 80, false", p.NormalizedOffset(), p.Animating())
	}
	if called {
		t.Error("finishAnimation should not run onSettled")
	}
}

func TestAnimateNothingToDo(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	if a := p.animate(0, 400*time.Millisecond, nil); a != nil {
		t.Error("zero distance should not animate")
	}
	if a := p.animate(40, 0, nil); a != nil {
		t.Error("zero duration should not animate")
	}
}

func TestSnapNonPositiveDurationJumps(t *testing.T) {
	p := newTestPicker(t, abc(), Config{SnapDuration: -1})
	p.scrollTo(25, 0)
	called := false
	p.snap(func() { called = true })
	if p.Animating() {
		t.Error("non-positive duration should not animate")
	}
	if p.NormalizedOffset() != 40 || !called {
		t.Errorf("offset=%v called=%v, want 40, true", p.NormalizedOffset(), called)
	}
}

func TestAnimateReplacesRunning(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	first := p.animate(80, time.Second, nil)
	second := p.animate(40, time.Second, nil)
	if !first.Cancelled() {
		t.Error("starting an animation should cancel the running one")
	}
	if p.anim != second {
		t.Error("picker should track the newest animation")
	}
}

func TestWheelFinishesSnap(t *testing.T) {
	p := newTestPicker(t, abc(), Config{})
	p.scrollTo(30, 0)
	p.snap(func() { p.fireChange() })
	p.Wheel(1)
	if p.Animating() {
		t.Error("wheel should finish the snap")
	}
	if p.NormalizedOffset() != 80 || p.SelectedIndex() != 2 {
		t.Errorf("offset=%v index=%d, want 80, 2", p.NormalizedOffset(), p.SelectedIndex())
	}
}
