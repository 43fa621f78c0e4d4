package gesture

// UIHitTester reports whether a screen point is over an interactive UI
// element. It is queried once per gesture, when the touch begins.
type UIHitTester interface {
	IsOverUI(p Vec2) bool
}

// UIHitTesterFunc adapts a plain function to UIHitTester.
type UIHitTesterFunc func(p Vec2) bool

// IsOverUI calls f(p).
func (f UIHitTesterFunc) IsOverUI(p Vec2) bool { return f(p) }

// --- Hit shapes ---

// HitShape is a screen-space region used by UIRegions.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]

		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- UIRegions ---

type uiRegion struct {
	id    uint32
	shape HitShape
}

// UIRegions is a UIHitTester backed by a set of screen-space shapes, for
// games whose UI layer has no hit testing of its own (HUD buttons, panels).
// The zero value is empty and enabled.
type UIRegions struct {
	regions  []uiRegion
	nextID   uint32
	disabled bool
}

// RegionHandle allows removing a shape added to UIRegions.
type RegionHandle struct {
	id   uint32
	regs *UIRegions
}

// Add registers a shape and returns a handle for removing it.
func (u *UIRegions) Add(shape HitShape) RegionHandle {
	u.nextID++
	u.regions = append(u.regions, uiRegion{id: u.nextID, shape: shape})
	return RegionHandle{id: u.nextID, regs: u}
}

// Remove unregisters the shape. Removing twice is a no-op.
func (h RegionHandle) Remove() {
	if h.regs == nil {
		return
	}
	s := h.regs.regions
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = uiRegion{}
			h.regs.regions = s[:len(s)-1]
			return
		}
	}
}

// Len returns the number of registered shapes.
func (u *UIRegions) Len() int {
	return len(u.regions)
}

// SetEnabled turns hit testing on or off. A disabled UIRegions never reports
// a hit, matching a game with no UI layer.
func (u *UIRegions) SetEnabled(enabled bool) {
	u.disabled = !enabled
}

// IsOverUI reports whether p lies inside any registered shape.
func (u *UIRegions) IsOverUI(p Vec2) bool {
	if u.disabled {
		return false
	}
	for i := range u.regions {
		if u.regions[i].shape.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}
