package gesture

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned rectangle with its origin at the top-left and Y
// increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// zoomAnim holds an active zoom-to tween.
type zoomAnim struct {
	tween *gween.Tween
}

// CameraController pans and zooms a 2D view from gesture events. Drags pan
// the view, pinches and the scroll wheel zoom it. Drags that started over UI
// are ignored so HUD interaction does not move the world.
type CameraController struct {
	// X and Y are the world-space position the view centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// MinZoom and MaxZoom clamp Zoom.
	MinZoom, MaxZoom float64
	// ZoomSensitivity converts a Zoom event's ChangeAmount (pixels of
	// pinch distance) into a zoom factor change.
	ZoomSensitivity float64
	// Viewport is the screen-space rectangle the view renders into.
	Viewport Rect

	// BoundsEnabled clamps the position so the visible area stays within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	zoomTween *zoomAnim
	handles   []CallbackHandle
}

// NewCameraController creates a controller for the given viewport.
func NewCameraController(viewport Rect) *CameraController {
	return &CameraController{
		Zoom:            1.0,
		MinZoom:         0.25,
		MaxZoom:         4.0,
		ZoomSensitivity: 0.005,
		Viewport:        viewport,
	}
}

// Attach subscribes the controller to d's Drag and Zoom events.
func (c *CameraController) Attach(d *Dispatcher) {
	c.handles = append(c.handles,
		d.OnDrag(c.HandleDrag),
		d.OnZoom(c.HandleZoom),
	)
}

// Detach removes every subscription made by Attach.
func (c *CameraController) Detach() {
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = c.handles[:0]
}

// HandleDrag pans the view opposite to the finger so the world follows it.
func (c *CameraController) HandleDrag(e DragEvent) {
	if e.IsStartOverUI {
		return
	}
	c.X -= e.Delta.X / c.Zoom
	c.Y -= e.Delta.Y / c.Zoom
	c.ClampToBounds()
}

// HandleZoom applies a pinch or wheel zoom. Any running ZoomTo is canceled.
func (c *CameraController) HandleZoom(e ZoomEvent) {
	c.zoomTween = nil
	c.setZoom(c.Zoom * (1 + e.ChangeAmount*c.ZoomSensitivity))
}

// ZoomTo animates Zoom to target over duration seconds.
func (c *CameraController) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	target = c.clampZoom(target)
	c.zoomTween = &zoomAnim{tween: gween.New(float32(c.Zoom), float32(target), duration, easeFn)}
}

// Animating reports whether a ZoomTo is in progress.
func (c *CameraController) Animating() bool {
	return c.zoomTween != nil
}

// Update advances any zoom animation by dt seconds.
func (c *CameraController) Update(dt float32) {
	if c.zoomTween == nil {
		return
	}
	val, done := c.zoomTween.tween.Update(dt)
	c.setZoom(float64(val))
	if done {
		c.zoomTween = nil
	}
}

func (c *CameraController) setZoom(z float64) {
	c.Zoom = c.clampZoom(z)
	c.ClampToBounds()
}

func (c *CameraController) clampZoom(z float64) float64 {
	if c.MinZoom > 0 && z < c.MinZoom {
		z = c.MinZoom
	}
	if c.MaxZoom > 0 && z > c.MaxZoom {
		z = c.MaxZoom
	}
	return z
}

// SetBounds enables bounds clamping.
func (c *CameraController) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.ClampToBounds()
}

// ClearBounds disables bounds clamping.
func (c *CameraController) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds restricts the position so the visible area stays within
// Bounds. No-op if BoundsEnabled is false.
func (c *CameraController) ClampToBounds() {
	if !c.BoundsEnabled {
		return
	}
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the view.
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

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *CameraController) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return (sx-cx)/c.Zoom + c.X, (sy-cy)/c.Zoom + c.Y
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *CameraController) WorldToScreen(wx, wy float64) (sx, sy float64) {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return (wx-c.X)*c.Zoom + cx, (wy-c.Y)*c.Zoom + cy
}
