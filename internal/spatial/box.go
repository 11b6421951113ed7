// Package spatial indexes integer boxes in an R-tree and answers point,
// region and nearest queries over them.
package spatial

// Box is a pixel box covering columns [MinX, MaxX) and rows [MinY, MaxY).
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether b covers no pixel.
func (b Box) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Intersects reports whether b and o share at least one pixel.
func (b Box) Intersects(o Box) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinY < o.MaxY && o.MinY < b.MaxY
}

// Contains reports whether o lies entirely within b.
func (b Box) Contains(o Box) bool {
	return b.MinX <= o.MinX && o.MaxX <= b.MaxX && b.MinY <= o.MinY && o.MaxY <= b.MaxY
}

// ContainsPoint reports whether pixel (x, y) lies within b.
func (b Box) ContainsPoint(x, y int) bool {
	return b.MinX <= x && x < b.MaxX && b.MinY <= y && y < b.MaxY
}

// Union returns the smallest box covering b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Dist2 returns the squared distance from (x, y) to the closed envelope
// [Min, Max] of b, zero when the point lies on or inside it.
func (b Box) Dist2(x, y int) int {
	dx := axisDist(x, b.MinX, b.MaxX)
	dy := axisDist(y, b.MinY, b.MaxY)
	return dx*dx + dy*dy
}

func axisDist(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
