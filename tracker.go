package gesture

// recognizer is implemented by every detector. submit routes each event to
// exactly one of the two hooks depending on whether a gesture is running.
type recognizer interface {
	handleStart(ev Snapshot)
	handleInProgress(ev Snapshot)
}

// tracker is the state shared by all detectors: the previous/current sample
// pair, the in-progress flag and the timing/pressure bookkeeping.
type tracker struct {
	prev       *Snapshot
	curr       *Snapshot
	inProgress bool
	disabled   bool

	timeDelta    int64
	prevPressure float64
	currPressure float64

	pressureThreshold float64
}

func newTracker(cfg Config) tracker {
	return tracker{pressureThreshold: cfg.PressureThreshold}
}

// submit dispatches one event. The event is always consumed.
func submit(t *tracker, r recognizer, ev Snapshot) bool {
	if t.disabled {
		return true
	}
	if !t.inProgress {
		r.handleStart(ev)
	} else {
		r.handleInProgress(ev)
	}
	return true
}

// updateState makes ev the current sample and refreshes the time and
// pressure values against the previous sample. It does not move the current
// sample into prev; advance does that.
func (t *tracker) updateState(ev Snapshot) {
	cur := ev
	t.curr = &cur
	if t.prev == nil {
		t.timeDelta = 0
		t.prevPressure = cur.ActionPressure()
	} else {
		t.timeDelta = cur.timeMillis - t.prev.timeMillis
		t.prevPressure = t.prev.ActionPressure()
	}
	t.currPressure = cur.ActionPressure()
}

// advance makes the current sample the reference for the next delta.
func (t *tracker) advance() {
	if t.curr != nil {
		cp := *t.curr
		t.prev = &cp
	}
}

// baseline resets and captures ev as both previous and current sample.
func (t *tracker) baseline(ev Snapshot) {
	t.reset()
	p := ev
	t.prev = &p
	t.updateState(ev)
	t.timeDelta = 0
}

// pressureOK reports whether the pressure ratio between the current and the
// previous sample is above the noise threshold. A sharp pressure drop usually
// means a finger is lifting and its position is unreliable. A non-positive
// previous pressure carries no information and passes.
func (t *tracker) pressureOK() bool {
	if t.prevPressure <= 0 {
		return true
	}
	return t.currPressure/t.prevPressure > t.pressureThreshold
}

func (t *tracker) reset() {
	t.prev = nil
	t.curr = nil
	t.inProgress = false
	t.timeDelta = 0
	t.prevPressure = 0
	t.currPressure = 0
}

// Reset returns the detector to the idle baseline without firing any end
// callback. Safe to call at any time, any number of times.
func (t *tracker) Reset() { t.reset() }

// InProgress reports whether a gesture is currently running.
func (t *tracker) InProgress() bool { return t.inProgress }

// Enabled reports whether the detector processes events.
func (t *tracker) Enabled() bool { return !t.disabled }

// SetEnabled turns event processing on or off. Disabling drops any running
// gesture without an end callback.
func (t *tracker) SetEnabled(enabled bool) {
	if !enabled {
		t.reset()
	}
	t.disabled = !enabled
}

// TimeDelta returns the time in milliseconds between the reference sample
// and the current sample.
func (t *tracker) TimeDelta() int64 { return t.timeDelta }

// PreviousPressure returns the action-pointer pressure of the reference sample.
func (t *tracker) PreviousPressure() float64 { return t.prevPressure }

// CurrentPressure returns the action-pointer pressure of the current sample.
func (t *tracker) CurrentPressure() float64 { return t.currPressure }

// PreviousEvent returns the reference sample, if any.
func (t *tracker) PreviousEvent() (Snapshot, bool) {
	if t.prev == nil {
		return Snapshot{}, false
	}
	return *t.prev, true
}

// CurrentEvent returns the current sample, if any.
func (t *tracker) CurrentEvent() (Snapshot, bool) {
	if t.curr == nil {
		return Snapshot{}, false
	}
	return *t.curr, true
}

// velocity converts a per-sample delta into units per second.
func velocity(delta float64, timeDeltaMillis int64) float64 {
	if timeDeltaMillis <= 0 {
		return 0
	}
	return delta * 1000 / float64(timeDeltaMillis)
}
