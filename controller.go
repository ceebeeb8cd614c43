package gesture

import "math"

// shovePixelChangeFactor converts vertical shove travel in pixels to tilt
// degrees. Dragging up tilts further.
const shovePixelChangeFactor = 0.1

// CameraController applies a Manager's gestures to a Camera: move pans,
// rotate turns around the focal point, scale zooms around it and shove
// tilts. When a gesture ends while the fingers are still moving fast enough
// it hands the motion over to the camera's inertia animations.
type CameraController struct {
	cam     *Camera
	inertia InertiaConfig
	handles []CallbackHandle

	lastAngular float64
	lastSpanVel float64
	lastFocus   Vec2
}

// NewCameraController subscribes to m and drives cam.
func NewCameraController(cam *Camera, m *Manager, cfg Config) *CameraController {
	cc := &CameraController{cam: cam, inertia: cfg.Inertia}
	cc.handles = append(cc.handles,
		m.OnMove(cc.handleMove),
		m.OnRotate(cc.handleRotate),
		m.OnScale(cc.handleScale),
		m.OnShove(cc.handleShove),
	)
	return cc
}

// Close unsubscribes from the manager.
func (cc *CameraController) Close() {
	for _, h := range cc.handles {
		h.Remove()
	}
	cc.handles = nil
}

// Camera returns the driven camera.
func (cc *CameraController) Camera() *Camera { return cc.cam }

// screen converts a view-local focal point to the camera's screen space.
func (cc *CameraController) screen(x, y float64) (float64, float64) {
	return x + cc.cam.Viewport.X, y + cc.cam.Viewport.Y
}

func (cc *CameraController) handleMove(e GestureEvent) {
	switch e.Phase {
	case PhaseBegin:
		cc.cam.CancelInertia()
	case PhaseUpdate:
		cc.cam.PanBy(e.DeltaX, e.DeltaY)
	case PhaseEnd:
		if !cc.inertia.Enabled {
			return
		}
		if math.Abs(e.VelocityX)+math.Abs(e.VelocityY) < cc.inertia.MinVelocity {
			return
		}
		cc.cam.Fling(e.VelocityX, e.VelocityY, cc.inertia.Duration)
	}
}

func (cc *CameraController) handleRotate(e GestureEvent) {
	switch e.Phase {
	case PhaseBegin:
		cc.cam.CancelInertia()
		cc.lastAngular = 0
	case PhaseUpdate:
		sx, sy := cc.screen(e.FocusX, e.FocusY)
		cc.cam.RotateAround(e.RotationDelta, sx, sy)
		cc.lastAngular = e.AngularVelocity
		cc.lastFocus = Vec2{sx, sy}
	case PhaseEnd:
		if !cc.inertia.Enabled || math.Abs(cc.lastAngular) < cc.inertia.MinAngularVelocity {
			return
		}
		cc.cam.Spin(cc.lastAngular, cc.lastFocus.X, cc.lastFocus.Y, cc.inertia.Duration)
	}
}

func (cc *CameraController) handleScale(e GestureEvent) {
	switch e.Phase {
	case PhaseBegin:
		cc.cam.CancelInertia()
		cc.lastSpanVel = 0
	case PhaseUpdate:
		sx, sy := cc.screen(e.FocusX, e.FocusY)
		cc.cam.ZoomAround(e.ScaleFactor, sx, sy)
		cc.lastSpanVel = e.SpanVelocity
		cc.lastFocus = Vec2{sx, sy}
	case PhaseEnd:
		if !cc.inertia.Enabled || math.Abs(cc.lastSpanVel) < cc.inertia.MinSpanVelocity {
			return
		}
		cc.cam.ZoomFling(zoomAddition(cc.lastSpanVel), cc.lastFocus.X, cc.lastFocus.Y, cc.inertia.Duration)
	}
}

func (cc *CameraController) handleShove(e GestureEvent) {
	if e.Phase == PhaseUpdate {
		cc.cam.TiltBy(-shovePixelChangeFactor * e.ShoveDelta)
	}
}

// zoomAddition maps a pinch span velocity in px/s to a zoom change in
// powers of two. Negative velocities (fingers closing) zoom out.
func zoomAddition(spanVelocity float64) float64 {
	z := math.Log(math.Abs(spanVelocity)/1000 + 1)
	if spanVelocity < 0 {
		return -z
	}
	return z
}
