package wheel

import (
	"math"
	"time"

	"github.com/tanema/gween"
)

// Animation interpolates the scroll offset toward a target, one step per
// frame. It is driven by Picker.Update and can be cancelled at any time; a
// cancelled animation never runs its completion callback.
type Animation struct {
	tween     *gween.Tween
	from      float64
	total     float64
	frame     int
	frames    int
	onSettled func()
	done      bool
	cancelled bool
}

// Cancel stops the animation where it is.
func (a *Animation) Cancel() {
	if a.done {
		return
	}
	a.done = true
	a.cancelled = true
}

// Done reports whether the animation finished or was cancelled.
func (a *Animation) Done() bool {
	return a.done
}

// Cancelled reports whether the animation was stopped before its last frame.
func (a *Animation) Cancelled() bool {
	return a.cancelled
}

// Target returns the normalized offset the animation ends on.
func (a *Animation) Target() float64 {
	return a.from + a.total
}

// Frames returns the number of frames the animation spans.
func (a *Animation) Frames() int {
	return a.frames
}

// step advances one frame. Frame k writes from + ceil(k*total/frames); the
// last frame writes the exact target and then runs onSettled.
func (a *Animation) step(p *Picker) {
	if a.done {
		return
	}
	a.frame++
	val, finished := a.tween.Update(1)
	delta := math.Ceil(float64(val))
	if finished || a.frame >= a.frames {
		delta = a.total
		finished = true
	}
	p.scrollTo(a.from+delta, p.geom.Overflow)
	if !finished {
		return
	}
	a.done = true
	if a.onSettled != nil {
		a.onSettled()
	}
}

// frameCount returns how many host frames duration spans.
func frameCount(duration time.Duration) int {
	return int(math.Ceil(float64(duration) / float64(FrameInterval)))
}

// animate starts an interpolation from the current offset to target over
// duration, replacing any running animation. Returns nil without scheduling
// anything when there is no distance to cover or no frame to cover it in;
// onSettled is not called in that case.
func (p *Picker) animate(target float64, duration time.Duration, onSettled func()) *Animation {
	from := p.normalizedOffset()
	total := target - from
	frames := frameCount(duration)
	if total == 0 || frames <= 0 {
		return nil
	}
	p.cancelAnimation()
	a := &Animation{
		tween:     gween.New(0, float32(total), float32(frames), p.cfg.Ease),
		from:      from,
		total:     total,
		frames:    frames,
		onSettled: onSettled,
	}
	p.anim = a
	p.debugf("animate: from=%v to=%v frames=%d", from, target, frames)
	return a
}

// snap aligns the offset with the item grid, moving by at most half an item.
// onSettled runs right away when already aligned, otherwise after the last
// animation frame.
func (p *Picker) snap(onSettled func()) {
	h := p.geom.ItemHeight
	offset := p.normalizedOffset()
	if h <= 0 {
		onSettled()
		return
	}
	remainder := math.Mod(offset, h)
	if remainder == 0 {
		onSettled()
		return
	}
	delta := -remainder
	if remainder >= h/2 {
		delta = h - remainder
	}
	target := offset + delta
	if p.animate(target, p.cfg.SnapDuration, onSettled) == nil {
		p.scrollTo(target, 0)
		onSettled()
	}
}

// stepAnimation advances the running animation by one frame.
func (p *Picker) stepAnimation() {
	if p.anim == nil {
		return
	}
	a := p.anim
	a.step(p)
	if a.done && p.anim == a {
		p.anim = nil
	}
}

// cancelAnimation stops the running animation at its current frame.
func (p *Picker) cancelAnimation() {
	if p.anim == nil {
		return
	}
	p.anim.Cancel()
	p.debugf("animate: cancelled at offset=%v", p.normalizedOffset())
	p.anim = nil
}

// finishAnimation jumps the running animation to its target without running
// its completion callback.
func (p *Picker) finishAnimation() {
	if p.anim == nil {
		return
	}
	target := p.anim.Target()
	p.cancelAnimation()
	p.scrollTo(target, 0)
}

// Animating reports whether a snap animation is in flight.
func (p *Picker) Animating() bool {
	return p.anim != nil
}
