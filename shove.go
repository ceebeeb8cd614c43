package gesture

import "math"

// ShoveListener receives two-finger vertical drag callbacks, typically used
// to tilt a map camera.
type ShoveListener interface {
	// OnShoveBegin is called once a near-horizontal pair has travelled the
	// shove threshold vertically. Returning false vetoes the gesture until
	// the next move.
	OnShoveBegin(d *ShoveDetector) bool
	OnShove(d *ShoveDetector) Continuation
	OnShoveEnd(d *ShoveDetector)
}

// ShoveFuncs adapts plain functions to ShoveListener. Nil fields accept the
// gesture and advance the reference on every sample.
type ShoveFuncs struct {
	Begin func(d *ShoveDetector) bool
	Shove func(d *ShoveDetector) Continuation
	End   func(d *ShoveDetector)
}

// OnShoveBegin calls f.Begin, accepting when it is nil.
func (f ShoveFuncs) OnShoveBegin(d *ShoveDetector) bool {
	if f.Begin == nil {
		return true
	}
	return f.Begin(d)
}

// OnShove calls f.Shove, advancing when it is nil.
func (f ShoveFuncs) OnShove(d *ShoveDetector) Continuation {
	if f.Shove == nil {
		return Advance
	}
	return f.Shove(d)
}

// OnShoveEnd calls f.End if set.
func (f ShoveFuncs) OnShoveEnd(d *ShoveDetector) {
	if f.End != nil {
		f.End(d)
	}
}

// ShoveDetector reports vertical travel of two roughly side-by-side fingers
// moving in the same direction.
type ShoveDetector struct {
	twoFinger
	listener ShoveListener

	threshold float64
	maxAngle  float64
	origin    *Snapshot
}

// NewShoveDetector creates a shove detector reporting to listener.
func NewShoveDetector(listener ShoveListener, cfg Config) *ShoveDetector {
	return &ShoveDetector{
		twoFinger: newTwoFinger(cfg),
		listener:  listener,
		threshold: cfg.ShoveThreshold,
		maxAngle:  cfg.MaxShoveAngle,
	}
}

// SubmitEvent feeds one input sample to the detector. It always returns true.
func (d *ShoveDetector) SubmitEvent(ev Snapshot) bool {
	return submit(&d.tracker, d, ev)
}

func (d *ShoveDetector) handleStart(ev Snapshot)      { d.start(ev, d) }
func (d *ShoveDetector) handleInProgress(ev Snapshot) { d.inProgressEvent(ev, d) }

// canBegin requires the pair to be near horizontal, both fingers to travel
// vertically in the same direction and the mean travel since the baseline to
// exceed the threshold.
func (d *ShoveDetector) canBegin() bool {
	if d.prev == nil || d.curr == nil {
		return false
	}
	angle := math.Abs(vectorAngle(d.currVector))
	if angle > d.maxAngle && angle < 180-d.maxAngle {
		return false
	}
	dy0 := d.curr.Y(0) - d.prev.Y(0)
	dy1 := d.curr.Y(1) - d.prev.Y(1)
	if dy0*dy1 <= 0 {
		return false
	}
	return math.Abs((dy0+dy1)/2) > d.threshold
}

func (d *ShoveDetector) begin() bool {
	if !d.listener.OnShoveBegin(d) {
		return false
	}
	s := *d.prev
	d.origin = &s
	return true
}

func (d *ShoveDetector) end() {
	d.listener.OnShoveEnd(d)
	d.origin = nil
}

func (d *ShoveDetector) progress() {
	if d.listener.OnShove(d) == Advance {
		d.advance()
	}
}

func meanDeltaY(from, to *Snapshot) float64 {
	if from == nil || to == nil {
		return 0
	}
	return ((to.Y(0) - from.Y(0)) + (to.Y(1) - from.Y(1))) / 2
}

// DeltaPixelsSinceLast returns the mean vertical travel of the two pointers
// between the reference and the current sample.
func (d *ShoveDetector) DeltaPixelsSinceLast() float64 { return meanDeltaY(d.prev, d.curr) }

// DeltaPixelsSinceStart returns the mean vertical travel since the gesture
// baseline.
func (d *ShoveDetector) DeltaPixelsSinceStart() float64 { return meanDeltaY(d.origin, d.curr) }

func (d *ShoveDetector) reset() {
	d.twoFinger.reset()
	d.origin = nil
}

// Reset returns the detector to idle without firing any end callback.
func (d *ShoveDetector) Reset() { d.reset() }

// SetEnabled turns event processing on or off. Disabling drops any running
// gesture without an end callback.
func (d *ShoveDetector) SetEnabled(enabled bool) {
	if !enabled {
		d.reset()
	}
	d.disabled = !enabled
}
