package gesture

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one gesture in a script. Which fields matter depends on
// Action; unused ones are left zero.
type scriptStep struct {
	Action   string  `json:"action"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// scriptActions maps each action name to the injection it queues. wait is
// handled by the runner itself.
var scriptActions = map[string]func(s *System, st scriptStep){
	"tap": func(s *System, st scriptStep) { s.InjectTap(st.X, st.Y) },
	"drag": func(s *System, st scriptStep) {
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"pinch": func(s *System, st scriptStep) {
		s.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	},
	"scroll": func(s *System, st scriptStep) { s.InjectScroll(st.DY) },
	"wait":   nil,
}

// TestRunner replays a gesture script through a System's injection queue,
// one step whenever the previous step's frames have been consumed.
type TestRunner struct {
	steps []scriptStep
	next  int
	idle  int // frames left in the current wait step
	done  bool
}

// LoadTestScript parses a JSON gesture script:
//
//	{"steps": [
//		{"action": "tap", "x": 100, "y": 200},
//		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 10, "frames": 5},
//		{"action": "pinch", "x": 320, "y": 240, "fromDist": 100, "toDist": 200, "frames": 4},
//		{"action": "scroll", "dy": 1},
//		{"action": "wait", "frames": 3}
//	]}
//
// Unknown actions are rejected up front rather than skipped at run time.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner makes Update drive runner before reading input each frame.
// Pass nil to detach.
func (s *System) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the script has run to completion, including the
// frames its last step queued.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(s *System) {
	switch {
	case r.done, s.Pending() > 0:
		return
	case r.idle > 0:
		r.idle--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	if run := scriptActions[st.Action]; run != nil {
		run(s, st)
	} else if st.Frames > 0 {
		// The current frame is the first waited one.
		r.idle = st.Frames - 1
	}

	r.done = r.next == len(r.steps) && r.idle == 0 && s.Pending() == 0
}
