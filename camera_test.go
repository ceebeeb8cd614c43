package gesture

import (
	"math"
	"testing"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.MaxTilt != 60 || cam.MinTilt != 0 {
		t.Errorf("tilt limits = [%v,%v], want [0,60]", cam.MinTilt, cam.MaxTilt)
	}
	if cam.Animating() {
		t.Error("new camera animating")
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	vm := cam.ViewMatrix()
	sx, sy := transformPoint(vm, 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraRotation90(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Rotation = math.Pi / 2
	cam.MarkDirty()

	// Rotate(-π/2) maps (1,0)→(0,-1), then translate to viewport center.
	sx, sy := cam.WorldToScreen(1, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 299, epsilon) {
		t.Errorf("WorldToScreen(1,0) = (%f,%f), want (400,299)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 42
	cam.Y = -17
	cam.Zoom = 1.5
	cam.Rotation = 0.3
	cam.MarkDirty()

	sx, sy := cam.WorldToScreen(123, -456)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, 123, 1e-6) || !approxEqual(wy, -456, 1e-6) {
		t.Errorf("roundtrip: got (%f,%f), want (123,-456)", wx, wy)
	}
}

func TestCameraPanFollowsFinger(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2
	cam.Rotation = 0.4
	cam.MarkDirty()

	wx, wy := cam.ScreenToWorld(300, 200)
	cam.PanBy(25, -10)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 325, 1e-6) || !approxEqual(sy, 190, 1e-6) {
		t.Errorf("point under finger at (%f,%f), want (325,190)", sx, sy)
	}
}

func TestCameraPivotKeepsFocalPoint(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *Camera)
	}{
		{"zoom in", func(c *Camera) { c.ZoomAround(2, 600, 100) }},
		{"zoom out", func(c *Camera) { c.ZoomAround(0.5, 600, 100) }},
		{"rotate", func(c *Camera) { c.RotateAround(-90, 600, 100) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
			cam.X, cam.Y = 50, 75
			cam.MarkDirty()
			wx, wy := cam.ScreenToWorld(600, 100)
			tt.apply(cam)
			sx, sy := cam.WorldToScreen(wx, wy)
			if !approxEqual(sx, 600, 1e-6) || !approxEqual(sy, 100, 1e-6) {
				t.Errorf("focal point moved to (%f,%f)", sx, sy)
			}
		})
	}
}

func TestCameraZoomClamp(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ZoomAround(1000, 400, 300)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("Zoom = %v, want MaxZoom", cam.Zoom)
	}
	cam.ZoomAround(0, 400, 300)
	cam.ZoomAround(math.NaN(), 400, 300)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("invalid factor changed Zoom to %v", cam.Zoom)
	}
}

func TestCameraTiltClamp(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.TiltBy(45)
	cam.TiltBy(45)
	if cam.Tilt != 60 {
		t.Errorf("Tilt = %v, want 60", cam.Tilt)
	}
	cam.TiltBy(-100)
	if cam.Tilt != 0 {
		t.Errorf("Tilt = %v, want 0", cam.Tilt)
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	cam.X, cam.Y = 500, 500

	cam.PanBy(1000, 1000)
	if cam.X < 50 || cam.Y < 50 {
		t.Errorf("bounds clamp min: cam = (%f,%f), want >= (50,50)", cam.X, cam.Y)
	}
	cam.PanBy(-5000, -5000)
	if cam.X > 950 || cam.Y > 950 {
		t.Errorf("bounds clamp max: cam = (%f,%f), want <= (950,950)", cam.X, cam.Y)
	}

	cam.ClearBounds()
	cam.PanBy(5000, 0)
	if cam.X > -3000 {
		t.Errorf("after ClearBounds: cam.X = %f, want unclamped", cam.X)
	}
}

func TestCameraBoundsSmallWorld(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.PanBy(10, 10)
	if cam.X != 50 || cam.Y != 50 {
		t.Errorf("small world: cam = (%f,%f), want (50,50)", cam.X, cam.Y)
	}
}

func runInertia(cam *Camera) {
	for i := 0; i < 10 && cam.Animating(); i++ {
		cam.Update(0.1)
	}
}

func TestCameraFlingSettles(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	wx, wy := cam.ScreenToWorld(400, 300)

	cam.Fling(1000, 0, 0.3)
	if !cam.Animating() {
		t.Fatal("fling did not start")
	}
	runInertia(cam)
	if cam.Animating() {
		t.Fatal("fling did not settle")
	}
	// 1000 px/s decelerating to rest over 0.3 s covers 150 px.
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 550, 1e-3) || !approxEqual(sy, 300, 1e-3) {
		t.Errorf("after fling point at (%f,%f), want (550,300)", sx, sy)
	}
}

func TestCameraSpinAndZoomFling(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Spin(-200, 400, 300, 0.3)
	cam.ZoomFling(1, 400, 300, 0.3)
	runInertia(cam)

	assertNear(t, "Rotation", cam.Rotation*radToDeg, -30)
	if !approxEqual(cam.Zoom, 2, 1e-4) {
		t.Errorf("Zoom = %v, want 2", cam.Zoom)
	}
}

func TestCameraInertiaLandsOnTotal(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Spin(-200, 400, 300, 0.3)
	// Frame lengths that do not divide the duration.
	for i := 0; i < 20 && cam.Animating(); i++ {
		cam.Update(0.07)
	}
	if cam.Animating() {
		t.Fatal("spin did not settle")
	}
	if got := cam.Rotation * radToDeg; !approxEqual(got, -30, 1e-9) {
		t.Errorf("Rotation = %v, want -30", got)
	}
}

func TestCameraInertiaZeroDuration(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ZoomFling(1, 400, 300, 0)
	if cam.Animating() || !approxEqual(cam.Zoom, 2, epsilon) {
		t.Errorf("Zoom = %v, animating = %v", cam.Zoom, cam.Animating())
	}
}

func TestCameraCancelInertia(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Fling(2000, 0, 1)
	cam.Update(0.1)
	x := cam.X
	cam.CancelInertia()
	cam.Update(0.1)
	if cam.Animating() || cam.X != x {
		t.Error("inertia continued after cancel")
	}
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, 20}
	inv := invertAffine(m)
	x, y := transformPoint(inv, 12, 24)
	if !approxEqual(x, 1, epsilon) || !approxEqual(y, 1, epsilon) {
		t.Errorf("inverse maps (12,24) to (%v,%v), want (1,1)", x, y)
	}
	if invertAffine([6]float64{}) != identityTransform {
		t.Error("singular matrix did not invert to identity")
	}
}
