package sapling

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `yaml:"action" json:"action"`
	Label  string `yaml:"label,omitempty" json:"label,omitempty"`
	X      int    `yaml:"x,omitempty" json:"x,omitempty"`
	Y      int    `yaml:"y,omitempty" json:"y,omitempty"`
	DX     int    `yaml:"dx,omitempty" json:"dx,omitempty"`
	DY     int    `yaml:"dy,omitempty" json:"dy,omitempty"`
	Key    string `yaml:"key,omitempty" json:"key,omitempty"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
	Frames int    `yaml:"frames,omitempty" json:"frames,omitempty"`

	key byte
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps" json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML test script and returns a TestRunner ready to
// be attached to a Scene via SetTestRunner. JSON is valid YAML, so JSON
// scripts load too.
//
//	steps:
//	  - action: key
//	    key: space
//	  - action: tap
//	    x: 40
//	    y: 30
//	  - action: screenshot
//	    label: menu-open
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "tap", "text", "scroll", "action", "wait", "screenshot":
		case "key":
			k, err := ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			st.key = k
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before injected input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
	case "screenshot":
		s.Screenshot(st.Label)
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "key":
		s.InjectKey(st.key)
	case "text":
		s.InjectText(st.Text)
	case "scroll":
		s.InjectScroll(st.DX, st.DY)
	case "action":
		s.InjectAction()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// Screenshot queues a labeled screenshot. Hosts drain the queue with
// TakeScreenshots after drawing the frame.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Scene) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	out := s.screenshotQueue
	s.screenshotQueue = nil
	return out
}

var keyNames = map[string]byte{
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"space":     KeySpace,
	"delete":    KeyDelete,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// ParseKey converts a key name ("enter", "space", "up"...), a single
// printable character, or a decimal code ("13") to a key byte.
func ParseKey(name string) (byte, error) {
	if k, ok := keyNames[strings.ToLower(name)]; ok {
		return k, nil
	}
	if len(name) == 1 && IsPrintable(name[0]) {
		return name[0], nil
	}
	if n, err := strconv.ParseUint(name, 10, 8); err == nil {
		return byte(n), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
