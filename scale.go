package gesture

import "math"

// ScaleListener receives pinch callbacks.
type ScaleListener interface {
	// OnScaleBegin is called once a non-sloppy pair has changed its span by
	// the span threshold. Returning false vetoes the gesture until the next
	// move.
	OnScaleBegin(d *ScaleDetector) bool
	OnScale(d *ScaleDetector) Continuation
	OnScaleEnd(d *ScaleDetector)
}

// ScaleFuncs adapts plain functions to ScaleListener. Nil fields accept the
// gesture and advance the reference on every sample.
type ScaleFuncs struct {
	Begin func(d *ScaleDetector) bool
	Scale func(d *ScaleDetector) Continuation
	End   func(d *ScaleDetector)
}

// OnScaleBegin calls f.Begin, accepting when it is nil.
func (f ScaleFuncs) OnScaleBegin(d *ScaleDetector) bool {
	if f.Begin == nil {
		return true
	}
	return f.Begin(d)
}

// OnScale calls f.Scale, advancing when it is nil.
func (f ScaleFuncs) OnScale(d *ScaleDetector) Continuation {
	if f.Scale == nil {
		return Advance
	}
	return f.Scale(d)
}

// OnScaleEnd calls f.End if set.
func (f ScaleFuncs) OnScaleEnd(d *ScaleDetector) {
	if f.End != nil {
		f.End(d)
	}
}

// ScaleDetector reports the span ratio between the first two pointers. It
// shares the sloppy-gesture and pressure policies of RotateDetector.
type ScaleDetector struct {
	twoFinger
	listener ScaleListener

	spanThreshold float64
}

// NewScaleDetector creates a pinch detector reporting to listener.
func NewScaleDetector(listener ScaleListener, cfg Config) *ScaleDetector {
	return &ScaleDetector{
		twoFinger:     newTwoFinger(cfg),
		listener:      listener,
		spanThreshold: cfg.ScaleSpanThreshold,
	}
}

// SubmitEvent feeds one input sample to the detector. It always returns true.
func (d *ScaleDetector) SubmitEvent(ev Snapshot) bool {
	return submit(&d.tracker, d, ev)
}

func (d *ScaleDetector) handleStart(ev Snapshot)      { d.start(ev, d) }
func (d *ScaleDetector) handleInProgress(ev Snapshot) { d.inProgressEvent(ev, d) }

// canBegin requires the span to have changed by at least the span threshold
// since the placement.
func (d *ScaleDetector) canBegin() bool {
	return math.Abs(d.CurrentSpan()-d.PreviousSpan()) >= d.spanThreshold
}

func (d *ScaleDetector) begin() bool { return d.listener.OnScaleBegin(d) }
func (d *ScaleDetector) end()        { d.listener.OnScaleEnd(d) }

func (d *ScaleDetector) progress() {
	if d.listener.OnScale(d) == Advance {
		d.advance()
	}
}

// ScaleFactor returns CurrentSpan / PreviousSpan. It is 1 when the reference
// span is degenerate, so listeners never see NaN or Inf.
func (d *ScaleDetector) ScaleFactor() float64 {
	prev := d.PreviousSpan()
	if prev < spanEpsilon {
		return 1
	}
	return d.CurrentSpan() / prev
}

// IsScalingOut reports whether the fingers moved closer together.
func (d *ScaleDetector) IsScalingOut() bool { return d.ScaleFactor() < 1 }

// SpanVelocity returns the span change of the last sample in pixels per second.
func (d *ScaleDetector) SpanVelocity() float64 {
	return velocity(d.CurrentSpan()-d.PreviousSpan(), d.timeDelta)
}

// SpanThreshold returns the span change in pixels required before a scale
// may begin.
func (d *ScaleDetector) SpanThreshold() float64 { return d.spanThreshold }

// SetSpanThreshold changes the span change required before a scale may
// begin. A running gesture is not affected.
func (d *ScaleDetector) SetSpanThreshold(px float64) { d.spanThreshold = px }

// Interrupt ends a running scale with an end callback. The current sample
// becomes the new baseline, so the scale begins again once the span changes
// by the threshold.
func (d *ScaleDetector) Interrupt() { d.interrupt(d) }
