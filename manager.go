package gesture

import "github.com/google/uuid"

// EventSink is the interface for optional ECS integration. When set on a
// Manager, every gesture event is forwarded to it.
type EventSink interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries one gesture lifecycle step to handlers and sinks.
type GestureEvent struct {
	Kind  Kind
	Phase Phase
	// SessionID is shared by the begin, update and end events of one gesture.
	SessionID    uuid.UUID
	TimeMillis   int64
	PointerCount int
	FocusX       float64
	FocusY       float64
	// Move fields
	DeltaX    float64
	DeltaY    float64
	VelocityX float64
	VelocityY float64
	// Rotate fields
	RotationDelta   float64
	AngularVelocity float64
	// Scale fields
	ScaleFactor  float64
	SpanVelocity float64
	// Shove fields
	ShoveDelta float64
}

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	byKind [numKinds][]gestureHandler
	nextID uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind Kind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.kind >= numKinds {
		return
	}
	s := h.reg.byKind[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			h.reg.byKind[h.kind] = s[:len(s)-1]
			return
		}
	}
}

// Manager feeds every input sample to one detector of each kind and fans
// the resulting gestures out to registered callbacks and an optional sink.
// While a shove is running the move detector is suspended, so a two-finger
// tilt does not also pan. A running scale raises the rotate angle threshold,
// and a beginning rotate interrupts any scale and raises its span threshold,
// so a pinch does not also turn the view and a turn does not also zoom.
type Manager struct {
	move   *MoveDetector
	rotate *RotateDetector
	scale  *ScaleDetector
	shove  *ShoveDetector

	handlers handlerRegistry
	sink     EventSink
	disabled [numKinds]bool
	sessions [numKinds]uuid.UUID
	newID    func() uuid.UUID

	rotateThreshold       float64
	rotateWhileScaling    float64
	scaleThreshold        float64
	scaleThresholdRotated float64
}

// NewManager creates a manager whose detectors use cfg. The host must
// supply the view bounds, either in cfg.Screen or later through SetScreen;
// until then placements near the right and bottom edges are not rejected
// and a warning is logged.
func NewManager(cfg Config) *Manager {
	m := &Manager{
		newID:                 uuid.New,
		rotateThreshold:       cfg.RotateAngleThreshold,
		rotateWhileScaling:    cfg.RotateAngleThreshold + cfg.RotateThresholdIncrease,
		scaleThreshold:        cfg.ScaleSpanThreshold,
		scaleThresholdRotated: cfg.ScaleSpanWhenRotating,
	}
	m.move = NewMoveDetector(MoveFuncs{Begin: m.moveBegin, Move: m.moveUpdate, End: m.moveEnd}, cfg)
	m.rotate = NewRotateDetector(RotateFuncs{Begin: m.rotateBegin, Rotate: m.rotateUpdate, End: m.rotateEnd}, cfg)
	m.scale = NewScaleDetector(ScaleFuncs{Begin: m.scaleBegin, Scale: m.scaleUpdate, End: m.scaleEnd}, cfg)
	m.shove = NewShoveDetector(ShoveFuncs{Begin: m.shoveBegin, Shove: m.shoveUpdate, End: m.shoveEnd}, cfg)
	if cfg.EdgeSlop > 0 && !screenKnown(cfg.Screen) {
		Logger().Warn("gesture: screen size unset, right and bottom edge slop disabled until SetScreen")
	}
	return m
}

func screenKnown(r Rect) bool { return r.Width > 0 && r.Height > 0 }

// SetScreen sets the screen rectangle the two-finger detectors use for
// edge-slop rejection. Call it whenever the view is laid out or resized.
func (m *Manager) SetScreen(r Rect) {
	m.rotate.SetScreen(r)
	m.scale.SetScreen(r)
	m.shove.SetScreen(r)
}

// SubmitEvent feeds ev to every detector. It always returns true.
func (m *Manager) SubmitEvent(ev Snapshot) bool {
	m.shove.SubmitEvent(ev)
	m.rotate.SubmitEvent(ev)
	m.scale.SubmitEvent(ev)
	m.move.SubmitEvent(ev)
	return true
}

// Reset returns every detector to idle without end callbacks.
func (m *Manager) Reset() {
	m.move.Reset()
	m.rotate.Reset()
	m.scale.Reset()
	m.shove.Reset()
	m.move.SetEnabled(true)
	m.rotate.SetAngleThreshold(m.rotateThreshold)
	m.scale.SetSpanThreshold(m.scaleThreshold)
	m.sessions = [numKinds]uuid.UUID{}
}

// Move returns the pan detector.
func (m *Manager) Move() *MoveDetector { return m.move }

// Rotate returns the rotation detector.
func (m *Manager) Rotate() *RotateDetector { return m.rotate }

// Scale returns the pinch detector.
func (m *Manager) Scale() *ScaleDetector { return m.scale }

// Shove returns the shove detector.
func (m *Manager) Shove() *ShoveDetector { return m.shove }

// SetEventSink sets the sink that receives every gesture event. Pass nil to
// stop forwarding.
func (m *Manager) SetEventSink(sink EventSink) {
	m.sink = sink
}

// SetGestureEnabled allows or vetoes new gestures of the given kind. Running
// gestures are not interrupted.
func (m *Manager) SetGestureEnabled(kind Kind, enabled bool) {
	if kind < numKinds {
		m.disabled[kind] = !enabled
	}
}

// GestureEnabled reports whether new gestures of the given kind may begin.
func (m *Manager) GestureEnabled(kind Kind) bool {
	return kind < numKinds && !m.disabled[kind]
}

// OnGesture registers a callback for every event of the given kind.
func (m *Manager) OnGesture(kind Kind, fn func(GestureEvent)) CallbackHandle {
	if kind >= numKinds {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.byKind[kind] = append(m.handlers.byKind[kind], gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, kind: kind}
}

// OnMove registers a callback for pan events.
func (m *Manager) OnMove(fn func(GestureEvent)) CallbackHandle { return m.OnGesture(KindMove, fn) }

// OnRotate registers a callback for rotation events.
func (m *Manager) OnRotate(fn func(GestureEvent)) CallbackHandle {
	return m.OnGesture(KindRotate, fn)
}

// OnScale registers a callback for pinch events.
func (m *Manager) OnScale(fn func(GestureEvent)) CallbackHandle { return m.OnGesture(KindScale, fn) }

// OnShove registers a callback for shove events.
func (m *Manager) OnShove(fn func(GestureEvent)) CallbackHandle { return m.OnGesture(KindShove, fn) }

// --- Detector callbacks ---

func (m *Manager) moveBegin(d *MoveDetector) bool {
	if !m.begin(KindMove) {
		return false
	}
	m.fire(m.moveEvent(d, PhaseBegin))
	return true
}

func (m *Manager) moveUpdate(d *MoveDetector) Continuation {
	m.fire(m.moveEvent(d, PhaseUpdate))
	return Advance
}

func (m *Manager) moveEnd(d *MoveDetector) {
	m.fire(m.moveEvent(d, PhaseEnd))
	m.end(KindMove)
}

func (m *Manager) rotateBegin(d *RotateDetector) bool {
	if !m.begin(KindRotate) {
		return false
	}
	if m.scaleThresholdRotated > 0 {
		m.scale.SetSpanThreshold(m.scaleThresholdRotated)
		m.scale.Interrupt()
	}
	m.fire(m.rotateEvent(d, PhaseBegin))
	return true
}

func (m *Manager) rotateUpdate(d *RotateDetector) Continuation {
	m.fire(m.rotateEvent(d, PhaseUpdate))
	return Advance
}

func (m *Manager) rotateEnd(d *RotateDetector) {
	m.fire(m.rotateEvent(d, PhaseEnd))
	m.end(KindRotate)
	m.scale.SetSpanThreshold(m.scaleThreshold)
}

func (m *Manager) scaleBegin(d *ScaleDetector) bool {
	if !m.begin(KindScale) {
		return false
	}
	m.rotate.SetAngleThreshold(m.rotateWhileScaling)
	m.fire(m.scaleEvent(d, PhaseBegin))
	return true
}

func (m *Manager) scaleUpdate(d *ScaleDetector) Continuation {
	m.fire(m.scaleEvent(d, PhaseUpdate))
	return Advance
}

func (m *Manager) scaleEnd(d *ScaleDetector) {
	m.fire(m.scaleEvent(d, PhaseEnd))
	m.end(KindScale)
	m.rotate.SetAngleThreshold(m.rotateThreshold)
}

func (m *Manager) shoveBegin(d *ShoveDetector) bool {
	if !m.begin(KindShove) {
		return false
	}
	if m.move.InProgress() {
		m.moveEnd(m.move)
	}
	m.move.SetEnabled(false)
	m.fire(m.shoveEvent(d, PhaseBegin))
	return true
}

func (m *Manager) shoveUpdate(d *ShoveDetector) Continuation {
	m.fire(m.shoveEvent(d, PhaseUpdate))
	return Advance
}

func (m *Manager) shoveEnd(d *ShoveDetector) {
	m.fire(m.shoveEvent(d, PhaseEnd))
	m.end(KindShove)
	m.move.SetEnabled(true)
}

// --- Sessions and dispatch ---

func (m *Manager) begin(kind Kind) bool {
	if m.disabled[kind] {
		return false
	}
	id := m.newID()
	m.sessions[kind] = id
	Logger().Debug("gesture begin", "kind", kind.String(), "session", id.String())
	return true
}

func (m *Manager) end(kind Kind) {
	Logger().Debug("gesture end", "kind", kind.String(), "session", m.sessions[kind].String())
	m.sessions[kind] = uuid.Nil
}

func (m *Manager) fire(e GestureEvent) {
	for _, h := range m.handlers.byKind[e.Kind] {
		h.fn(e)
	}
	if m.sink != nil {
		m.sink.EmitEvent(e)
	}
}

func (m *Manager) baseEvent(kind Kind, phase Phase, t *tracker) GestureEvent {
	e := GestureEvent{Kind: kind, Phase: phase, SessionID: m.sessions[kind], ScaleFactor: 1}
	if cur, ok := t.CurrentEvent(); ok {
		e.TimeMillis = cur.TimeMillis()
		e.PointerCount = cur.PointerCount()
	}
	return e
}

func (m *Manager) moveEvent(d *MoveDetector, phase Phase) GestureEvent {
	e := m.baseEvent(KindMove, phase, &d.tracker)
	c := d.Centroid()
	e.FocusX, e.FocusY = c.X, c.Y
	if phase == PhaseUpdate {
		e.DeltaX, e.DeltaY = d.FocusDelta().X, d.FocusDelta().Y
	}
	v := d.Velocity()
	e.VelocityX, e.VelocityY = v.X, v.Y
	return e
}

func (m *Manager) rotateEvent(d *RotateDetector, phase Phase) GestureEvent {
	e := m.baseEvent(KindRotate, phase, &d.tracker)
	e.FocusX, e.FocusY = d.FocusX(), d.FocusY()
	if phase == PhaseUpdate {
		e.RotationDelta = d.RotationDegreesDelta()
	}
	e.AngularVelocity = d.AngularVelocity()
	return e
}

func (m *Manager) scaleEvent(d *ScaleDetector, phase Phase) GestureEvent {
	e := m.baseEvent(KindScale, phase, &d.tracker)
	e.FocusX, e.FocusY = d.FocusX(), d.FocusY()
	if phase == PhaseUpdate {
		e.ScaleFactor = d.ScaleFactor()
	}
	e.SpanVelocity = d.SpanVelocity()
	return e
}

func (m *Manager) shoveEvent(d *ShoveDetector, phase Phase) GestureEvent {
	e := m.baseEvent(KindShove, phase, &d.tracker)
	e.FocusX, e.FocusY = d.FocusX(), d.FocusY()
	if phase == PhaseUpdate {
		e.ShoveDelta = d.DeltaPixelsSinceLast()
	}
	return e
}
