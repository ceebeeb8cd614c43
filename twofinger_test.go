package gesture

import "testing"

func TestIsSloppy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen = Rect{Width: 800, Height: 600}
	tf := newTwoFinger(cfg)
	open := newTwoFinger(DefaultConfig())

	tests := []struct {
		name     string
		p0, p1   Pointer
		want     bool
		wantOpen bool // with no screen size configured
	}{
		{"center", pt(0, 300, 300), pt(1, 500, 300), false, false},
		{"first left", pt(0, 10, 300), pt(1, 500, 300), true, true},
		{"second top", pt(0, 300, 300), pt(1, 500, 20), true, true},
		{"first right", pt(0, 790, 300), pt(1, 500, 300), true, false},
		{"second bottom", pt(0, 300, 300), pt(1, 500, 590), true, false},
		{"on the margin", pt(0, 32, 32), pt(1, 768, 568), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := snap(ActionPointerDown, 1, 0, tt.p0, tt.p1)
			if got := tf.isSloppy(ev); got != tt.want {
				t.Errorf("isSloppy = %v, want %v", got, tt.want)
			}
			if got := open.isSloppy(ev); got != tt.wantOpen {
				t.Errorf("isSloppy without screen = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestIsSloppyScreenOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen = Rect{X: 100, Y: 0, Width: 800, Height: 600}
	tf := newTwoFinger(cfg)
	ev := snap(ActionPointerDown, 1, 0, pt(0, 120, 300), pt(1, 500, 300))
	if !tf.isSloppy(ev) {
		t.Error("pointer inside shifted left margin not sloppy")
	}
}

func TestTwoFingerSetScreen(t *testing.T) {
	tf := newTwoFinger(DefaultConfig())
	ev := snap(ActionPointerDown, 1, 0, pt(0, 300, 300), pt(1, 1077, 300))
	if tf.isSloppy(ev) {
		t.Fatal("right edge checked without a screen size")
	}
	tf.SetScreen(Rect{Width: 1080, Height: 1920})
	if tf.Screen() != (Rect{Width: 1080, Height: 1920}) {
		t.Errorf("Screen = %v", tf.Screen())
	}
	if !tf.isSloppy(ev) {
		t.Error("pointer on the right bezel not sloppy after SetScreen")
	}
}

func TestTwoFingerThirdPointerUpEnds(t *testing.T) {
	var ends int
	d := NewRotateDetector(RotateFuncs{End: func(*RotateDetector) { ends++ }}, placementConfig())
	d.SubmitEvent(snap(ActionPointerDown, 1, 0, pt(0, 200, 200), pt(1, 300, 200)))
	d.SubmitEvent(snap(ActionPointerDown, 2, 8, pt(0, 200, 200), pt(1, 300, 200), pt(2, 250, 400)))
	d.SubmitEvent(snap(ActionPointerUp, 2, 16, pt(0, 200, 200), pt(1, 300, 200), pt(2, 250, 400)))
	if ends != 1 || d.InProgress() {
		t.Errorf("ends = %d, inProgress = %v", ends, d.InProgress())
	}
}

func TestTwoFingerDisabled(t *testing.T) {
	var begins int
	d := NewScaleDetector(ScaleFuncs{Begin: func(*ScaleDetector) bool { begins++; return true }}, placementConfig())
	d.SetEnabled(false)
	d.SubmitEvent(snap(ActionPointerDown, 1, 0, pt(0, 200, 200), pt(1, 300, 200)))
	if begins != 0 || d.Enabled() {
		t.Error("disabled detector began")
	}
	d.SetEnabled(true)
	d.SubmitEvent(snap(ActionPointerDown, 1, 0, pt(0, 200, 200), pt(1, 300, 200)))
	if begins != 1 {
		t.Errorf("begins = %d after re-enable, want 1", begins)
	}
}

func TestVectorAngle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec2{1, 0}, 0},
		{Vec2{0, 1}, 90},
		{Vec2{-1, 0}, 180},
		{Vec2{0, -1}, -90},
		{Vec2{}, 0},
	}
	for _, tt := range tests {
		if got := vectorAngle(tt.v); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("vectorAngle(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
