// Package wheel is a vertically scrolling, snap-to-item picker widget (a
// "wheel" selector) for [Ebitengine].
//
// A [Picker] shows a few items at a time behind a selection indicator. It is
// driven by mouse drags, touch drags and the scroll wheel: while dragging the
// list may overscroll its ends by a quarter item, and on release it snaps to
// the nearest item with a short [gween] animation. The selection only
// changes, and listeners are only notified, once the list has settled.
//
// # Quick start
//
//	p := wheel.New([]wheel.Item{"Red", "Green", "Blue"}, wheel.Config{
//		ViewSize: 3, ItemHeight: 32, X: 40, Y: 40,
//	})
//	p.OnChange(func(e wheel.ChangeEvent) {
//		log.Printf("picked %v at %d", e.Value, e.Index)
//	})
//	wheel.Run(wheel.RunConfig{Title: "Pick", Width: 320, Height: 240}, p)
//
// To embed a picker in your own game, call [Picker.Build] once, then
// [Picker.Update] from your Update and [Picker.Draw] from your Draw.
//
// # Layout
//
// [ComputeGeometry] derives the scroll range from the item height, the view
// size and the item count. The item height may be fixed or measured by the
// [Renderer] ([AutoItemHeight]). Offsets are absolute pixels; the normalized
// offset of item i is i*ItemHeight.
//
// # Items
//
// Items are arbitrary values identified by position. [Picker.Add] and
// [Picker.Remove] keep the layout and selection consistent while the picker
// is live. Items implementing [Texter] control their own label, and may
// supply a pre-rendered [Node].
//
// # Testing
//
// Input can be injected with [Picker.InjectDrag] and [Picker.InjectWheel],
// or scripted with [LoadTestScript]. Changes can be bridged into a Donburi
// world with the wheel/ecs adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package wheel
