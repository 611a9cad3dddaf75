package wheel

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Touch  bool    `json:"touch,omitempty"`
	Index  *int    `json:"index,omitempty"`
	Value  Item    `json:"value,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, mutations and selection checks across
// frames for scripted testing of a picker. Attach it via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Picker via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "drag", "wheel", "wait", "add":
		case "select", "remove", "expect":
			if st.Index == nil {
				return nil, fmt.Errorf("parse test script: step %d (%s): missing index", i, st.Action)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the picker. The runner's step method
// is called from Picker.Update before the animation and input each frame.
func (p *Picker) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the mismatches recorded by "expect" steps.
func (r *TestRunner) Failures() []error {
	return r.failures
}

// step advances the test runner by one frame. Called from Picker.Update.
func (r *TestRunner) step(p *Picker) {
	if r.done {
		return
	}
	// Wait for pending injections and the snap animation to drain before
	// advancing.
	if len(p.injectQueue) > 0 || p.anim != nil {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "drag":
		frames := max(st.Frames, 2)
		if st.Touch {
			p.InjectTouchDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
		} else {
			p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
		}
	case "wheel":
		p.InjectWheel(st.X, st.Y, st.Delta)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "select":
		p.Select(*st.Index)
	case "add":
		if st.Index != nil {
			p.Add(st.Value, *st.Index)
		} else {
			p.Add(st.Value)
		}
	case "remove":
		p.Remove(*st.Index)
	case "expect":
		if got := p.SelectedIndex(); got != *st.Index {
			r.failures = append(r.failures, fmt.Errorf("step %d: selected index = %d, want %d", r.cursor-1, got, *st.Index))
		} else if st.Value != nil && !sameItem(p.SelectedItem(), st.Value) {
			r.failures = append(r.failures, fmt.Errorf("step %d: selected item = %v, want %v", r.cursor-1, p.SelectedItem(), st.Value))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 && p.anim == nil {
		r.done = true
	}
}
