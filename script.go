package gesture

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidScript is wrapped by every LoadScript validation error.
var ErrInvalidScript = errors.New("invalid gesture script")

// defaultFrameMillis is the time between samples when a step sets no dt.
const defaultFrameMillis = 16

// Submitter is anything that accepts input samples: every detector and the
// Manager.
type Submitter interface {
	SubmitEvent(ev Snapshot) bool
}

type scriptPointer struct {
	ID       *int     `json:"id,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Pressure *float64 `json:"pressure,omitempty"`
}

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string          `json:"action"`
	Pointers []scriptPointer `json:"pointers,omitempty"`
	Index    int             `json:"index,omitempty"`
	DT       int64           `json:"dt,omitempty"`
	FromX    float64         `json:"fromX,omitempty"`
	FromY    float64         `json:"fromY,omitempty"`
	ToX      float64         `json:"toX,omitempty"`
	ToY      float64         `json:"toY,omitempty"`
	Frames   int             `json:"frames,omitempty"`
	Millis   int64           `json:"ms,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	OffsetX float64      `json:"offsetX,omitempty"`
	OffsetY float64      `json:"offsetY,omitempty"`
	Steps   []scriptStep `json:"steps"`
}

var scriptActions = map[string]Action{
	"down":        ActionDown,
	"pointerDown": ActionPointerDown,
	"move":        ActionMove,
	"pointerUp":   ActionPointerUp,
	"up":          ActionUp,
	"cancel":      ActionCancel,
}

// Script is a parsed sequence of touch samples for replaying gestures
// without a device.
//
//	{"steps": [
//	  {"action": "down", "pointers": [{"x": 100, "y": 100}]},
//	  {"action": "move", "pointers": [{"x": 110, "y": 100}], "dt": 16},
//	  {"action": "up", "pointers": [{"x": 110, "y": 100}]},
//	  {"action": "wait", "ms": 500},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 4}
//	]}
//
// Pointer-bearing steps list every pointer that is down, including a lifting
// pointer on up and pointerUp. Pointer IDs default to the list position and
// pressure defaults to 1.
type Script struct {
	steps            []scriptStep
	offsetX, offsetY float64
}

// LoadScript parses and validates a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps: %w", ErrInvalidScript)
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps, offsetX: f.OffsetX, offsetY: f.OffsetY}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "drag":
		if st.Frames < 0 {
			return fmt.Errorf("negative frames: %w", ErrInvalidScript)
		}
		return nil
	case "wait":
		if st.Millis < 0 {
			return fmt.Errorf("negative wait: %w", ErrInvalidScript)
		}
		return nil
	}
	action, ok := scriptActions[st.Action]
	if !ok {
		return fmt.Errorf("unknown action %q: %w", st.Action, ErrInvalidScript)
	}
	if st.DT < 0 {
		return fmt.Errorf("negative dt: %w", ErrInvalidScript)
	}
	if action == ActionCancel {
		return nil
	}
	if len(st.Pointers) == 0 {
		return fmt.Errorf("%s needs at least one pointer: %w", st.Action, ErrInvalidScript)
	}
	if st.Index < 0 || st.Index >= len(st.Pointers) {
		return fmt.Errorf("%s index %d out of range: %w", st.Action, st.Index, ErrInvalidScript)
	}
	return nil
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Snapshots expands the script into input samples. A drag becomes a down at
// the start, frames-1 evenly spaced moves ending at the target and an up.
func (s *Script) Snapshots() []Snapshot {
	var (
		out   []Snapshot
		now   int64
		first = true
	)
	tick := func(dt int64) {
		if first {
			first = false
			return
		}
		if dt == 0 {
			dt = defaultFrameMillis
		}
		now += dt
	}
	add := func(action Action, index int, ps ...Pointer) {
		out = append(out, NewSnapshot(action, index, now, ps...).WithRawOffset(s.offsetX, s.offsetY))
	}

	for _, st := range s.steps {
		switch st.Action {
		case "wait":
			now += st.Millis
		case "drag":
			frames := st.Frames
			if frames < 2 {
				frames = 2
			}
			tick(st.DT)
			add(ActionDown, 0, Pointer{X: st.FromX, Y: st.FromY, Pressure: 1})
			for i := 1; i < frames; i++ {
				t := float64(i) / float64(frames-1)
				x := st.FromX + (st.ToX-st.FromX)*t
				y := st.FromY + (st.ToY-st.FromY)*t
				tick(st.DT)
				add(ActionMove, 0, Pointer{X: x, Y: y, Pressure: 1})
			}
			tick(st.DT)
			add(ActionUp, 0, Pointer{X: st.ToX, Y: st.ToY, Pressure: 1})
		default:
			tick(st.DT)
			add(scriptActions[st.Action], st.Index, st.pointers()...)
		}
	}
	return out
}

func (st scriptStep) pointers() []Pointer {
	ps := make([]Pointer, len(st.Pointers))
	for i, sp := range st.Pointers {
		p := Pointer{ID: i, X: sp.X, Y: sp.Y, Pressure: 1}
		if sp.ID != nil {
			p.ID = *sp.ID
		}
		if sp.Pressure != nil {
			p.Pressure = *sp.Pressure
		}
		ps[i] = p
	}
	return ps
}

// Replay feeds every sample to dst in order and returns how many were sent.
func (s *Script) Replay(dst Submitter) int {
	snaps := s.Snapshots()
	for _, ev := range snaps {
		dst.SubmitEvent(ev)
	}
	Logger().Debug("gesture script replayed", "steps", len(s.steps), "samples", len(snaps))
	return len(snaps)
}
