package gesture

import "math"

// spanEpsilon is the span below which two pointers are treated as
// coincident and span ratios are not computed.
const spanEpsilon = 1e-6

// twoFingerHooks is the per-gesture strategy plugged into the shared
// two-finger state machine.
type twoFingerHooks interface {
	// canBegin reports whether the current sample may start the gesture at
	// all, before the listener is asked.
	canBegin() bool
	begin() bool
	progress()
	end()
}

// twoFinger is the state shared by rotate, scale and shove: the vector
// between the first two pointers in both samples, the focal point over all
// pointers and the sloppy-gesture latch.
type twoFinger struct {
	tracker

	edgeSlop float64
	screen   Rect

	prevVector Vec2
	currVector Vec2
	focal      Vec2
	sloppy     bool

	spanValid bool
	prevSpan  float64
	currSpan  float64
}

func newTwoFinger(cfg Config) twoFinger {
	return twoFinger{
		tracker:  newTracker(cfg),
		edgeSlop: cfg.EdgeSlop,
		screen:   cfg.Screen,
	}
}

// updateState layers the two-finger geometry on top of the base update.
// Both samples must hold at least two pointers.
func (tf *twoFinger) updateState(ev Snapshot) {
	tf.tracker.updateState(ev)

	prev, curr := tf.prev, tf.curr
	if prev == nil {
		prev = curr
	}
	tf.prevVector = prev.Position(1).Sub(prev.Position(0))
	tf.currVector = curr.Position(1).Sub(curr.Position(0))
	tf.focal = curr.Focus()
	tf.spanValid = false
}

func (tf *twoFinger) baseline(ev Snapshot) {
	tf.reset()
	tf.tracker.baseline(ev)
	tf.updateState(ev)
	tf.timeDelta = 0
}

func (tf *twoFinger) reset() {
	tf.tracker.reset()
	tf.prevVector = Vec2{}
	tf.currVector = Vec2{}
	tf.focal = Vec2{}
	tf.sloppy = false
	tf.spanValid = false
}

// Reset returns the detector to idle without firing any end callback.
func (tf *twoFinger) Reset() { tf.reset() }

// SetEnabled turns event processing on or off. Disabling drops any running
// gesture without an end callback.
func (tf *twoFinger) SetEnabled(enabled bool) {
	if !enabled {
		tf.reset()
	}
	tf.disabled = !enabled
}

// SetScreen sets the screen rectangle used for the edge-slop checks. A zero
// size skips the right and bottom edges.
func (tf *twoFinger) SetScreen(r Rect) { tf.screen = r }

// Screen returns the screen rectangle used for the edge-slop checks.
func (tf *twoFinger) Screen() Rect { return tf.screen }

// interrupt ends a running gesture and makes the current sample the new
// baseline, so the gesture may begin again once its threshold is met.
func (tf *twoFinger) interrupt(h twoFingerHooks) {
	if !tf.inProgress {
		return
	}
	h.end()
	tf.inProgress = false
	if tf.curr == nil {
		tf.reset()
		return
	}
	tf.advance()
	tf.updateState(*tf.curr)
}

// isSloppy reports whether either of the first two pointers lies within the
// edge margin of the screen. A second finger landing on the bezel while the
// device is held is usually incidental.
func (tf *twoFinger) isSloppy(ev Snapshot) bool {
	slop := tf.edgeSlop
	left := tf.screen.X + slop
	top := tf.screen.Y + slop
	right := tf.screen.X + tf.screen.Width - slop
	bottom := tf.screen.Y + tf.screen.Height - slop
	checkFar := tf.screen.Width > 0 && tf.screen.Height > 0

	sloppy := func(i int) bool {
		x, y := ev.RawX(i), ev.RawY(i)
		if x < left || y < top {
			return true
		}
		return checkFar && (x > right || y > bottom)
	}
	// Either pointer on the edge suppresses the gesture.
	return sloppy(0) || sloppy(1)
}

func (tf *twoFinger) start(ev Snapshot, h twoFingerHooks) {
	switch ev.Action() {
	case ActionPointerDown:
		if ev.PointerCount() < 2 {
			tf.reset()
			return
		}
		tf.baseline(ev)
		tf.sloppy = tf.isSloppy(ev)
		if tf.sloppy {
			return
		}
		tf.tryBegin(h)
	case ActionMove:
		if tf.prev == nil || tf.prev.PointerCount() < 2 || ev.PointerCount() < 2 {
			return
		}
		if tf.sloppy {
			if tf.sloppy = tf.isSloppy(ev); tf.sloppy {
				return
			}
		}
		// Either the sloppy phase just cleared or an earlier begin was
		// vetoed: start mid-stream against the preserved baseline.
		tf.updateState(ev)
		if tf.tryBegin(h) {
			tf.step(h)
		}
	default:
		tf.reset()
	}
}

func (tf *twoFinger) tryBegin(h twoFingerHooks) bool {
	if !h.canBegin() || !h.begin() {
		return false
	}
	tf.inProgress = true
	return true
}

func (tf *twoFinger) inProgressEvent(ev Snapshot, h twoFingerHooks) {
	switch ev.Action() {
	case ActionPointerUp:
		if ev.PointerCount() >= 2 {
			tf.updateState(ev)
		}
		tf.finish(h)
	case ActionUp, ActionCancel:
		tf.finish(h)
	case ActionMove:
		if ev.PointerCount() < 2 {
			return
		}
		tf.updateState(ev)
		tf.step(h)
	}
}

func (tf *twoFinger) step(h twoFingerHooks) {
	if !tf.pressureOK() {
		return
	}
	h.progress()
}

func (tf *twoFinger) finish(h twoFingerHooks) {
	if !tf.sloppy {
		h.end()
	}
	tf.reset()
}

// IsSloppy reports whether the detector is holding a two-finger placement
// that touched the screen edge and has not yet moved clear of it.
func (tf *twoFinger) IsSloppy() bool { return tf.sloppy }

// FocusX returns the x coordinate of the centroid of all current pointers.
func (tf *twoFinger) FocusX() float64 { return tf.focal.X }

// FocusY returns the y coordinate of the centroid of all current pointers.
func (tf *twoFinger) FocusY() float64 { return tf.focal.Y }

// Focus returns the centroid of all current pointers.
func (tf *twoFinger) Focus() Vec2 { return tf.focal }

// PreviousVector returns pointer1 - pointer0 in the reference sample.
func (tf *twoFinger) PreviousVector() Vec2 { return tf.prevVector }

// CurrentVector returns pointer1 - pointer0 in the current sample.
func (tf *twoFinger) CurrentVector() Vec2 { return tf.currVector }

func (tf *twoFinger) computeSpans() {
	if tf.spanValid {
		return
	}
	tf.prevSpan = tf.prevVector.Len()
	tf.currSpan = tf.currVector.Len()
	tf.spanValid = true
}

// CurrentSpan returns the distance between the two tracked pointers in the
// current sample. The value is memoized until the next update.
func (tf *twoFinger) CurrentSpan() float64 {
	tf.computeSpans()
	return tf.currSpan
}

// PreviousSpan returns the distance between the two tracked pointers in the
// reference sample.
func (tf *twoFinger) PreviousSpan() float64 {
	tf.computeSpans()
	return tf.prevSpan
}

// vectorAngle returns the angle of v in degrees, in (-180, 180].
func vectorAngle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X) * radToDeg
}
