package gesture

// MoveListener receives pan gesture callbacks. Each callback gets the
// detector so it can read FocusDelta, Focus and the other accessors.
type MoveListener interface {
	// OnMoveBegin is called on the first move after a finger went down.
	// Returning false vetoes the gesture; the detector stays idle and asks
	// again on the next move.
	OnMoveBegin(d *MoveDetector) bool
	// OnMove is called for every accepted move sample.
	OnMove(d *MoveDetector) Continuation
	// OnMoveEnd is called when the last finger lifts or the gesture is
	// cancelled.
	OnMoveEnd(d *MoveDetector)
}

// MoveFuncs adapts plain functions to MoveListener. Nil fields accept the
// gesture and advance the reference on every sample.
type MoveFuncs struct {
	Begin func(d *MoveDetector) bool
	Move  func(d *MoveDetector) Continuation
	End   func(d *MoveDetector)
}

// OnMoveBegin calls f.Begin, accepting when it is nil.
func (f MoveFuncs) OnMoveBegin(d *MoveDetector) bool {
	if f.Begin == nil {
		return true
	}
	return f.Begin(d)
}

// OnMove calls f.Move, advancing when it is nil.
func (f MoveFuncs) OnMove(d *MoveDetector) Continuation {
	if f.Move == nil {
		return Advance
	}
	return f.Move(d)
}

// OnMoveEnd calls f.End if set.
func (f MoveFuncs) OnMoveEnd(d *MoveDetector) {
	if f.End != nil {
		f.End(d)
	}
}

// MoveDetector tracks the centroid of any number of fingers and reports
// per-sample pan deltas.
type MoveDetector struct {
	tracker
	listener MoveListener

	focusDelta  Vec2
	accumulated Vec2
	velocity    Vec2
}

// NewMoveDetector creates a pan detector reporting to listener.
func NewMoveDetector(listener MoveListener, cfg Config) *MoveDetector {
	return &MoveDetector{tracker: newTracker(cfg), listener: listener}
}

// SubmitEvent feeds one input sample to the detector. It always returns true.
func (d *MoveDetector) SubmitEvent(ev Snapshot) bool {
	return submit(&d.tracker, d, ev)
}

func (d *MoveDetector) handleStart(ev Snapshot) {
	switch ev.Action() {
	case ActionDown, ActionPointerDown:
		// A finger placement while idle starts a fresh baseline so two
		// unrelated placements are never stitched together.
		d.baseline(ev)
		d.focusDelta = Vec2{}
	case ActionPointerUp:
		if i := ev.ActionIndex(); i >= 0 && i < ev.PointerCount() {
			d.baseline(ev.without(i))
		} else {
			d.baseline(ev)
		}
		d.focusDelta = Vec2{}
	case ActionUp, ActionCancel:
		d.reset()
	case ActionMove:
		if d.prev == nil {
			return
		}
		d.updateState(ev)
		if !d.listener.OnMoveBegin(d) {
			return
		}
		d.inProgress = true
		d.progress()
	}
}

func (d *MoveDetector) handleInProgress(ev Snapshot) {
	switch ev.Action() {
	case ActionMove:
		d.updateState(ev)
		d.progress()
	case ActionUp, ActionCancel:
		d.listener.OnMoveEnd(d)
		d.reset()
	}
}

// progress applies the current sample. Samples that fail the pressure filter
// are consumed without producing a delta.
func (d *MoveDetector) progress() {
	if !d.pressureOK() {
		d.focusDelta = Vec2{}
		return
	}
	var delta Vec2
	// A pointer added or removed since the reference sample shifts the
	// centroid without any finger moving.
	if d.prev.PointerCount() == d.curr.PointerCount() {
		delta = d.curr.Focus().Sub(d.prev.Focus())
	}
	d.focusDelta = delta
	d.accumulated = d.accumulated.Add(delta)
	d.velocity = Vec2{velocity(delta.X, d.timeDelta), velocity(delta.Y, d.timeDelta)}

	if d.listener.OnMove(d) == Advance {
		d.advance()
	}
}

// FocusX returns the x coordinate of the accumulated focus.
func (d *MoveDetector) FocusX() float64 { return d.accumulated.X }

// FocusY returns the y coordinate of the accumulated focus.
func (d *MoveDetector) FocusY() float64 { return d.accumulated.Y }

// Focus returns the accumulated focus: the running sum of every applied
// delta since the detector was created.
func (d *MoveDetector) Focus() Vec2 { return d.accumulated }

// FocusDelta returns the delta applied by the last sample, or the zero
// vector when the sample was filtered.
func (d *MoveDetector) FocusDelta() Vec2 { return d.focusDelta }

// Centroid returns the instantaneous centroid of the current sample.
func (d *MoveDetector) Centroid() Vec2 {
	if d.curr == nil {
		return Vec2{}
	}
	return d.curr.Focus()
}

// Velocity returns the last applied delta in pixels per second.
func (d *MoveDetector) Velocity() Vec2 { return d.velocity }

func (d *MoveDetector) reset() {
	d.tracker.reset()
	d.focusDelta = Vec2{}
	d.velocity = Vec2{}
}

// Reset returns the detector to idle. The accumulated focus is kept.
func (d *MoveDetector) Reset() { d.reset() }

// SetEnabled turns event processing on or off. Disabling drops any running
// gesture without an end callback. The accumulated focus is kept.
func (d *MoveDetector) SetEnabled(enabled bool) {
	if !enabled {
		d.reset()
	}
	d.disabled = !enabled
}
