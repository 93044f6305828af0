package pictor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
	Tool   string  `json:"tool,omitempty"`
	Name   string  `json:"name,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, editor actions and PNG exports
// across frames for automated runs. The host calls Step once per frame
// before draining the event queue.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var stepActions = map[string]bool{
	"click": true, "rightclick": true, "press": true, "move": true, "release": true,
	"drag": true, "key": true, "tool": true, "do": true, "wait": true, "export": true,
}

// LoadTestScript parses a JSON test script. Unknown step actions and tool
// names are rejected up front.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !stepActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "tool" {
			if _, ok := parseToolKind(st.Tool); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown tool %q", i, st.Tool)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseToolKind(name string) (ToolKind, bool) {
	for i, n := range toolKindNames {
		if strings.EqualFold(n, name) {
			return ToolKind(i), true
		}
	}
	return 0, false
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *TestRunner) Step(ed *Editor, q *EventQueue) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if q.Len() > 0 {
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
	case "click":
		q.InjectClick(st.X, st.Y)
	case "rightclick":
		q.InjectRightClick(st.X, st.Y)
	case "press":
		q.InjectPress(st.X, st.Y)
	case "move":
		q.InjectMove(st.X, st.Y)
	case "release":
		q.InjectRelease(st.X, st.Y)
	case "drag":
		q.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		var mods KeyModifiers
		if st.Ctrl {
			mods |= ModCtrl
		}
		q.InjectKey(st.Key, mods)
	case "tool":
		if k, ok := parseToolKind(st.Tool); ok {
			ed.SetTool(k)
		}
	case "do":
		_ = ed.Do(Action(st.Name))
	case "export":
		_, _ = ed.ExportPNG(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && q.Len() == 0 {
		r.done = true
	}
}
