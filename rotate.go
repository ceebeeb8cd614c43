package gesture

import "math"

// RotateListener receives two-finger rotation callbacks.
type RotateListener interface {
	// OnRotateBegin is called once a non-sloppy pair has turned past the
	// angle threshold. Returning false vetoes the gesture until the next
	// move.
	OnRotateBegin(d *RotateDetector) bool
	// OnRotate is called for every accepted move sample.
	OnRotate(d *RotateDetector) Continuation
	// OnRotateEnd is called when a tracked pointer lifts or the gesture is
	// cancelled. It never fires for a placement that stayed sloppy.
	OnRotateEnd(d *RotateDetector)
}

// RotateFuncs adapts plain functions to RotateListener. Nil fields accept
// the gesture and advance the reference on every sample.
type RotateFuncs struct {
	Begin  func(d *RotateDetector) bool
	Rotate func(d *RotateDetector) Continuation
	End    func(d *RotateDetector)
}

// OnRotateBegin calls f.Begin, accepting when it is nil.
func (f RotateFuncs) OnRotateBegin(d *RotateDetector) bool {
	if f.Begin == nil {
		return true
	}
	return f.Begin(d)
}

// OnRotate calls f.Rotate, advancing when it is nil.
func (f RotateFuncs) OnRotate(d *RotateDetector) Continuation {
	if f.Rotate == nil {
		return Advance
	}
	return f.Rotate(d)
}

// OnRotateEnd calls f.End if set.
func (f RotateFuncs) OnRotateEnd(d *RotateDetector) {
	if f.End != nil {
		f.End(d)
	}
}

// RotateDetector reports the angular change of the vector between the first
// two pointers.
type RotateDetector struct {
	twoFinger
	listener RotateListener

	angleThreshold float64
}

// NewRotateDetector creates a rotation detector reporting to listener.
func NewRotateDetector(listener RotateListener, cfg Config) *RotateDetector {
	return &RotateDetector{
		twoFinger:      newTwoFinger(cfg),
		listener:       listener,
		angleThreshold: cfg.RotateAngleThreshold,
	}
}

// SubmitEvent feeds one input sample to the detector. It always returns true.
func (d *RotateDetector) SubmitEvent(ev Snapshot) bool {
	return submit(&d.tracker, d, ev)
}

func (d *RotateDetector) handleStart(ev Snapshot)      { d.start(ev, d) }
func (d *RotateDetector) handleInProgress(ev Snapshot) { d.inProgressEvent(ev, d) }

// canBegin requires the pair to have turned at least the angle threshold
// since the placement.
func (d *RotateDetector) canBegin() bool {
	return math.Abs(d.RotationDegreesDelta()) >= d.angleThreshold
}

func (d *RotateDetector) begin() bool { return d.listener.OnRotateBegin(d) }
func (d *RotateDetector) end()        { d.listener.OnRotateEnd(d) }

func (d *RotateDetector) progress() {
	if d.listener.OnRotate(d) == Advance {
		d.advance()
	}
}

// RotationDegreesDelta returns the reference angle minus the current angle
// of the pointer vector, in degrees, wrapped into (-180, 180]. With Y down,
// a pair turning from (1,0) to (0,1) yields -90.
func (d *RotateDetector) RotationDegreesDelta() float64 {
	return normalizeDegrees(vectorAngle(d.prevVector) - vectorAngle(d.currVector))
}

// AngularVelocity returns the last rotation delta in degrees per second.
func (d *RotateDetector) AngularVelocity() float64 {
	return velocity(d.RotationDegreesDelta(), d.timeDelta)
}

// AngleThreshold returns the rotation in degrees required before a rotate
// may begin.
func (d *RotateDetector) AngleThreshold() float64 { return d.angleThreshold }

// SetAngleThreshold changes the rotation required before a rotate may begin.
// A running gesture is not affected.
func (d *RotateDetector) SetAngleThreshold(deg float64) { d.angleThreshold = deg }

// Interrupt ends a running rotate with an end callback. The current sample
// becomes the new baseline, so the rotate begins again once the pair turns
// past the threshold.
func (d *RotateDetector) Interrupt() { d.interrupt(d) }
