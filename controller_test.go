package gesture

import (
	"math"
	"testing"
)

func newControlled(cfg Config) (*Manager, *Camera, *CameraController) {
	m := NewManager(cfg)
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	return m, cam, NewCameraController(cam, m, cfg)
}

func TestControllerPanAndFling(t *testing.T) {
	m, cam, _ := newControlled(DefaultConfig())
	wx, wy := cam.ScreenToWorld(400, 300)

	m.SubmitEvent(snap(ActionDown, 0, 0, pt(0, 400, 300)))
	m.SubmitEvent(snap(ActionMove, 0, 10, pt(0, 450, 300)))
	sx, _ := cam.WorldToScreen(wx, wy)
	assertNear(t, "panned x", sx, 450)

	m.SubmitEvent(snap(ActionUp, 0, 20, pt(0, 450, 300)))
	if !cam.Animating() {
		t.Fatal("fast release did not fling")
	}
	runInertia(cam)
	sx, sy := cam.WorldToScreen(wx, wy)
	// 5000 px/s over 0.3 s decelerating covers 750 px.
	if !approxEqual(sx, 1200, 1e-3) || !approxEqual(sy, 300, 1e-3) {
		t.Errorf("after fling point at (%f,%f), want (1200,300)", sx, sy)
	}
}

func TestControllerSlowReleaseNoFling(t *testing.T) {
	m, cam, _ := newControlled(DefaultConfig())
	m.SubmitEvent(snap(ActionDown, 0, 0, pt(0, 400, 300)))
	m.SubmitEvent(snap(ActionMove, 0, 100, pt(0, 410, 300)))
	m.SubmitEvent(snap(ActionUp, 0, 200, pt(0, 410, 300)))
	if cam.Animating() {
		t.Error("slow release started a fling")
	}
}

func TestControllerRotateAndSpin(t *testing.T) {
	m, cam, _ := newControlled(DefaultConfig())
	m.SubmitEvent(snap(ActionDown, 0, 0, pt(0, 300, 300)))
	m.SubmitEvent(snap(ActionPointerDown, 1, 0, pt(0, 300, 300), pt(1, 500, 300)))
	m.SubmitEvent(snap(ActionMove, 0, 100, pt(0, 300, 300), pt(1, 300, 500)))

	// The content turns with the fingers: camera rotation is the opposite.
	assertNear(t, "Rotation", cam.Rotation*radToDeg, -90)

	m.SubmitEvent(snap(ActionPointerUp, 1, 110, pt(0, 300, 300), pt(1, 300, 500)))
	if !cam.Animating() {
		t.Error("fast rotation did not spin")
	}
}

func TestControllerPinchZooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inertia.Enabled = false
	m, cam, _ := newControlled(cfg)
	m.SubmitEvent(snap(ActionPointerDown, 1, 0, pt(0, 350, 300), pt(1, 450, 300)))
	m.SubmitEvent(snap(ActionMove, 0, 16, pt(0, 300, 300), pt(1, 500, 300)))
	assertNear(t, "Zoom", cam.Zoom, 2)
	m.SubmitEvent(snap(ActionUp, 0, 32, pt(0, 300, 300)))
	if cam.Animating() {
		t.Error("inertia ran while disabled")
	}
}

func TestControllerShoveTilts(t *testing.T) {
	m, cam, _ := newControlled(DefaultConfig())
	m.SubmitEvent(snap(ActionPointerDown, 1, 0, pt(0, 300, 400), pt(1, 500, 400)))
	m.SubmitEvent(snap(ActionMove, 0, 16, pt(0, 300, 360), pt(1, 500, 360)))
	assertNear(t, "Tilt", cam.Tilt, 4)
	m.SubmitEvent(snap(ActionMove, 0, 32, pt(0, 300, 440), pt(1, 500, 440)))
	assertNear(t, "Tilt", cam.Tilt, 0)
}

func TestControllerClose(t *testing.T) {
	m, cam, cc := newControlled(DefaultConfig())
	cc.Close()
	m.SubmitEvent(snap(ActionDown, 0, 0, pt(0, 400, 300)))
	m.SubmitEvent(snap(ActionMove, 0, 10, pt(0, 450, 300)))
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("closed controller moved camera to (%v,%v)", cam.X, cam.Y)
	}
	if cc.Camera() != cam {
		t.Error("Camera() mismatch")
	}
}

func TestZoomAddition(t *testing.T) {
	if zoomAddition(0) != 0 {
		t.Error("zoomAddition(0) != 0")
	}
	assertNear(t, "spread", zoomAddition(1000), math.Ln2)
	assertNear(t, "pinch", zoomAddition(-1000), -math.Ln2)
}
