// Package core provides the platform primitives shared by games and the
// terminal frontend: runtime config, input frames, a colored screen
// buffer and integer geometry. It has no Bubble Tea dependency.
package core

import "math"

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of r.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// Viewport maps a world-space window onto a cell rectangle. World y grows
// upstream, so larger y lands on smaller rows.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Area       Rect
}

// ToCell projects world (x, y) to a cell. ok is false when the point
// falls outside the viewport.
func (v Viewport) ToCell(x, y float64) (cx, cy int, ok bool) {
	if v.MaxX <= v.MinX || v.MaxY <= v.MinY || v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0, false
	}
	if x < v.MinX || x > v.MaxX || y < v.MinY || y > v.MaxY {
		return 0, 0, false
	}
	fx := (x - v.MinX) / (v.MaxX - v.MinX)
	fy := (v.MaxY - y) / (v.MaxY - v.MinY)
	cx = v.Area.X + Clamp(int(math.Floor(fx*float64(v.Area.W))), 0, v.Area.W-1)
	cy = v.Area.Y + Clamp(int(math.Floor(fy*float64(v.Area.H))), 0, v.Area.H-1)
	return cx, cy, true
}

// Span returns how many cells a world-space width w covers, at least 1.
func (v Viewport) Span(w float64) int {
	if v.MaxX <= v.MinX {
		return 1
	}
	return max(1, int(math.Round(w/(v.MaxX-v.MinX)*float64(v.Area.W))))
}
