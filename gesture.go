package gesture

import "math"

// Vec2 is a 2D vector used for positions, focal points, deltas and
// velocities throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Action identifies what kind of pointer transition a Snapshot records.
type Action uint8

const (
	ActionDown        Action = iota // first pointer went down
	ActionPointerDown                // an additional pointer went down
	ActionMove                       // one or more pointers moved
	ActionPointerUp                  // a non-last pointer went up
	ActionUp                         // the last pointer went up
	ActionCancel                     // the host aborted the gesture
)

var actionNames = [...]string{"down", "pointerDown", "move", "pointerUp", "up", "cancel"}

// String returns the lower-camel name of the action, as used by scripts.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Continuation is returned by gesture update callbacks and tells the detector
// whether the current sample becomes the new reference (Advance) or the old
// reference is kept so deltas keep accumulating against it (Hold).
type Continuation uint8

const (
	Hold    Continuation = iota // keep the previous reference sample
	Advance                     // make the current sample the reference
)

// Kind identifies a gesture family.
type Kind uint8

const (
	KindMove   Kind = iota // one or more fingers panning
	KindRotate             // two fingers twisting
	KindScale              // two fingers pinching
	KindShove              // two fingers dragging vertically
	numKinds
)

var kindNames = [...]string{"move", "rotate", "scale", "shove"}

// String returns the lowercase kind name used in logs.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Phase identifies where in a gesture's lifecycle an event was emitted.
type Phase uint8

const (
	PhaseBegin  Phase = iota // the gesture was accepted
	PhaseUpdate              // an accepted sample produced a delta
	PhaseEnd                 // the gesture finished or was cancelled
)

var phaseNames = [...]string{"begin", "update", "end"}

// String returns the lowercase phase name used in logs.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

const radToDeg = 180 / math.Pi

// normalizeDegrees wraps an angle in degrees into (-180, 180].
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
