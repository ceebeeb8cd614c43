package gesture

import "fmt"

// Pointer is one tracked contact inside a Snapshot. X and Y are in view-local
// coordinates; add the snapshot's raw offset for screen coordinates.
type Pointer struct {
	ID       int
	X, Y     float64
	Pressure float64
}

// Snapshot is an immutable capture of every down pointer at one input sample.
// The pointer list is copied on construction, so detectors fed the same
// Snapshot never observe each other's (or the host's) later mutations.
type Snapshot struct {
	pointers    []Pointer
	action      Action
	actionIndex int
	timeMillis  int64
	rawOffset   Vec2
}

// NewSnapshot captures a sample. actionIndex names the pointer that triggered
// a Down/Up transition and is 0 for moves. For ActionPointerUp and ActionUp
// the lifting pointer must still be present in pointers.
func NewSnapshot(action Action, actionIndex int, timeMillis int64, pointers ...Pointer) Snapshot {
	ps := make([]Pointer, len(pointers))
	copy(ps, pointers)
	return Snapshot{
		pointers:    ps,
		action:      action,
		actionIndex: actionIndex,
		timeMillis:  timeMillis,
	}
}

// WithRawOffset returns a copy of s whose raw (screen) coordinates are the
// view-local coordinates shifted by (dx, dy): the view's position on screen.
func (s Snapshot) WithRawOffset(dx, dy float64) Snapshot {
	s.rawOffset = Vec2{dx, dy}
	return s
}

// Action returns the transition kind.
func (s Snapshot) Action() Action { return s.action }

// ActionIndex returns the index of the pointer that triggered the transition.
func (s Snapshot) ActionIndex() int { return s.actionIndex }

// TimeMillis returns the monotonic event time in milliseconds.
func (s Snapshot) TimeMillis() int64 { return s.timeMillis }

// PointerCount returns how many pointers the sample holds.
func (s Snapshot) PointerCount() int { return len(s.pointers) }

// Pointer returns the pointer at index i. It panics if i is out of range:
// reading a pointer that is not down is a caller bug, not a recoverable state.
func (s Snapshot) Pointer(i int) Pointer {
	if i < 0 || i >= len(s.pointers) {
		panic(fmt.Sprintf("gesture: pointer index %d out of range [0,%d)", i, len(s.pointers)))
	}
	return s.pointers[i]
}

// Pointers returns a copy of the pointer list.
func (s Snapshot) Pointers() []Pointer {
	out := make([]Pointer, len(s.pointers))
	copy(out, s.pointers)
	return out
}

// X returns the view-local x coordinate of pointer i.
func (s Snapshot) X(i int) float64 { return s.Pointer(i).X }

// Y returns the view-local y coordinate of pointer i.
func (s Snapshot) Y(i int) float64 { return s.Pointer(i).Y }

// Position returns the view-local position of pointer i.
func (s Snapshot) Position(i int) Vec2 {
	p := s.Pointer(i)
	return Vec2{p.X, p.Y}
}

// RawX returns the untransformed screen x coordinate of pointer i.
func (s Snapshot) RawX(i int) float64 { return s.Pointer(i).X + s.rawOffset.X }

// RawY returns the untransformed screen y coordinate of pointer i.
func (s Snapshot) RawY(i int) float64 { return s.Pointer(i).Y + s.rawOffset.Y }

// Pressure returns the pressure of pointer i.
func (s Snapshot) Pressure(i int) float64 { return s.Pointer(i).Pressure }

// ActionPressure returns the pressure of the pointer that triggered the
// sample, or 0 when the action index does not name a pointer.
func (s Snapshot) ActionPressure() float64 {
	if s.actionIndex < 0 || s.actionIndex >= len(s.pointers) {
		return 0
	}
	return s.pointers[s.actionIndex].Pressure
}

// Focus returns the centroid of all pointers, or the zero vector for an
// empty sample.
func (s Snapshot) Focus() Vec2 {
	n := len(s.pointers)
	if n == 0 {
		return Vec2{}
	}
	var sx, sy float64
	for _, p := range s.pointers {
		sx += p.X
		sy += p.Y
	}
	return Vec2{sx / float64(n), sy / float64(n)}
}

// without returns a copy of s with the pointer at index i removed. Used to
// baseline on the pointer set that remains after a pointer-up.
func (s Snapshot) without(i int) Snapshot {
	out := s
	out.pointers = make([]Pointer, 0, len(s.pointers))
	out.pointers = append(out.pointers, s.pointers[:i]...)
	out.pointers = append(out.pointers, s.pointers[i+1:]...)
	out.actionIndex = 0
	return out
}
