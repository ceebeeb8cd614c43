package gesture

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// inertiaAnim eases a progress value from 0 to 1 and hands each frame's
// progress step to apply, so the total effect equals apply(1) spread over
// the animation.
type inertiaAnim struct {
	tween *gween.Tween
	last  float32
	apply func(step float64)
}

// Camera is a 2D viewport transform driven by gestures: position, zoom,
// rotation and a tilt value for hosts that render with perspective.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Tilt is the pitch in degrees. It does not affect the 2D view matrix.
	Tilt float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	MinZoom, MaxZoom float64
	MinTilt, MaxTilt float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	inertia []*inertiaAnim
}

// NewCamera creates a Camera with default limits and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		MinZoom:  0.1,
		MaxZoom:  20,
		MinTilt:  0,
		MaxTilt:  60,
		dirty:    true,
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// PanBy moves the view so that content follows a finger moving (dx, dy)
// screen pixels.
func (c *Camera) PanBy(dx, dy float64) {
	ax, ay := c.ScreenToWorld(0, 0)
	bx, by := c.ScreenToWorld(dx, dy)
	c.X -= bx - ax
	c.Y -= by - ay
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// ZoomAround multiplies Zoom by factor, clamped to [MinZoom, MaxZoom],
// keeping the world point under screen position (sx, sy) fixed.
func (c *Camera) ZoomAround(factor, sx, sy float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	c.pivot(sx, sy, func() {
		c.Zoom = math.Max(c.MinZoom, math.Min(c.Zoom*factor, c.MaxZoom))
	})
}

// RotateAround turns the content by -degrees around screen position
// (sx, sy). Passing a rotation detector's delta makes the content follow the
// fingers.
func (c *Camera) RotateAround(degrees, sx, sy float64) {
	c.pivot(sx, sy, func() {
		c.Rotation += degrees / radToDeg
	})
}

// TiltBy adds degrees to Tilt, clamped to [MinTilt, MaxTilt].
func (c *Camera) TiltBy(degrees float64) {
	c.Tilt = math.Max(c.MinTilt, math.Min(c.Tilt+degrees, c.MaxTilt))
}

// pivot applies change and then shifts the camera so the world point that
// was under (sx, sy) is still there.
func (c *Camera) pivot(sx, sy float64, change func()) {
	wx, wy := c.ScreenToWorld(sx, sy)
	change()
	c.dirty = true
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// --- Inertia ---

func (c *Camera) startInertia(duration float64, apply func(step float64)) {
	if duration <= 0 {
		apply(1)
		return
	}
	c.inertia = append(c.inertia, &inertiaAnim{
		tween: gween.New(0, 1, float32(duration), ease.OutQuad),
		apply: apply,
	})
}

// Fling continues a pan at (vx, vy) screen pixels per second, decelerating
// to rest over duration seconds.
func (c *Camera) Fling(vx, vy, duration float64) {
	dist := duration / 2
	dx, dy := vx*dist, vy*dist
	c.startInertia(duration, func(step float64) {
		c.PanBy(dx*step, dy*step)
	})
}

// Spin continues a rotation at degPerSec around screen position (sx, sy),
// decelerating to rest over duration seconds.
func (c *Camera) Spin(degPerSec, sx, sy, duration float64) {
	total := degPerSec * duration / 2
	c.startInertia(duration, func(step float64) {
		c.RotateAround(total*step, sx, sy)
	})
}

// ZoomFling continues a pinch: the zoom is multiplied by 2^zoomAddition in
// total around screen position (sx, sy) over duration seconds.
func (c *Camera) ZoomFling(zoomAddition, sx, sy, duration float64) {
	c.startInertia(duration, func(step float64) {
		c.ZoomAround(math.Exp2(zoomAddition*step), sx, sy)
	})
}

// CancelInertia stops every running inertia animation where it is.
func (c *Camera) CancelInertia() {
	c.inertia = c.inertia[:0]
}

// Animating reports whether any inertia animation is running.
func (c *Camera) Animating() bool {
	return len(c.inertia) > 0
}

// Update advances inertia animations by dt seconds.
func (c *Camera) Update(dt float32) {
	live := c.inertia[:0]
	for _, a := range c.inertia {
		val, done := a.tween.Update(dt)
		if done {
			// The final frame lands exactly on 1 so the steps sum to apply(1).
			val = 1
		}
		step := float64(val) - float64(a.last)
		a.last = val
		if step != 0 {
			a.apply(step)
		}
		if !done {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(c.inertia); i++ {
		c.inertia[i] = nil
	}
	c.inertia = live
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// ViewMatrix returns the world-to-screen affine matrix [a, b, c, d, tx, ty].
func (c *Camera) ViewMatrix() [6]float64 {
	return c.computeViewMatrix()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// setting X, Y, Zoom or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
