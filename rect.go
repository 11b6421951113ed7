package sprite

import (
	"fmt"
	"image"

	"github.com/gogpu/sprite/internal/spatial"
)

// Rect is an integer rectangle covering columns [X, X+W) and rows [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// RectFromRectangle converts an image.Rectangle.
func RectFromRectangle(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Rectangle converts r to an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Empty reports whether r covers no pixel.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of pixels in r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Contains reports whether pixel (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.W && r.Y <= y && y < r.Y+r.H
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.box().Contains(o.box())
}

// Intersects reports whether r and o share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return !r.Empty() && !o.Empty() && r.box().Intersects(o.box())
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return rectFromBox(r.box().Union(o.box()))
}

// Intersect returns the shared part of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// index returns the row-major position of (x, y) inside r.
func (r Rect) index(x, y int) int {
	return (y-r.Y)*r.W + (x - r.X)
}

// point returns the coordinate at row-major position i inside r.
func (r Rect) point(i int) (x, y int) {
	return r.X + i%r.W, r.Y + i/r.W
}

func (r Rect) box() spatial.Box {
	return spatial.Box{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
}

func rectFromBox(b spatial.Box) Rect {
	return Rect{X: b.MinX, Y: b.MinY, W: b.MaxX - b.MinX, H: b.MaxY - b.MinY}
}

// touches reports whether o overlaps r or lies inside it. Apply and Crop
// select stencils with it.
func (r Rect) touches(o Rect) bool {
	return r.Intersects(o) || r.ContainsRect(o)
}
