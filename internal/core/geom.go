// Package core holds the types shared by the game and its front ends: screen
// cells, colors, geometry and input actions. It imports no UI toolkit, so the
// game logic stays testable without a terminal or a window.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Vec2 is a continuous position in layout space.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates from v to to. t=0 yields v, t=1 yields to.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
	}
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}
