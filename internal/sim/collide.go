package sim

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// BoxOf returns the box centered on p with the extents of c.
func BoxOf(p Position, c Collider) Box {
	hw, hh, hd := c.Width/2, c.Height/2, c.Depth/2
	return Box{
		MinX: p.X - hw, MaxX: p.X + hw,
		MinY: p.Y - hh, MaxY: p.Y + hh,
		MinZ: p.Z - hd, MaxZ: p.Z + hd,
	}
}

// Expand grows the box by d on every side.
func (b Box) Expand(d float64) Box {
	return Box{
		MinX: b.MinX - d, MaxX: b.MaxX + d,
		MinY: b.MinY - d, MaxY: b.MaxY + d,
		MinZ: b.MinZ - d, MaxZ: b.MaxZ + d,
	}
}

// Overlap reports whether a and b intersect on X and Y. Z is ignored
// for lane gameplay. Touching edges do not overlap.
func Overlap(a, b Box) bool {
	return a.MinX < b.MaxX && a.MaxX > b.MinX &&
		a.MinY < b.MaxY && a.MaxY > b.MinY
}

// NearMiss reports a close pass: the player is within zone of the
// obstacle on every axis but does not overlap it.
func NearMiss(player, obstacle Box, zone float64) bool {
	if Overlap(player, obstacle) {
		return false
	}
	return Overlap(player, obstacle.Expand(zone))
}

// Distance2D is the Euclidean distance between a and b on X and Y.
func Distance2D(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// WithinRadius reports whether p lies within r of (x, y).
func WithinRadius(p Position, x, y, r float64) bool {
	dx, dy := p.X-x, p.Y-y
	return dx*dx+dy*dy <= r*r
}

// entityBox returns the box of e if it has both a position and a collider.
func (w *World) entityBox(e Entity) (Box, bool) {
	p, ok := w.Positions.Get(e)
	if !ok {
		return Box{}, false
	}
	c, ok := w.Colliders.Get(e)
	if !ok {
		return Box{}, false
	}
	return BoxOf(p, c), true
}
