package sprite

import (
	"fmt"
	"math"

	"github.com/gogpu/sprite/internal/parallel"
)

// extentTolerance absorbs floating point noise before rounding a projected
// extent up to whole pixels.
const extentTolerance = 1e-6

// Transform resamples the canvas through m into a new stencil.
//
// m operates on a frame centred on the canvas. The output keeps the
// canvas origin and takes the size of the bounding box of the transformed
// canvas rectangle. Every output pixel is mapped back through the inverse
// transform and sampled with sampling; positions that fall outside the
// canvas stay empty. Pixels with zero alpha are left out of the result.
func (c *Canvas) Transform(sampling Sampling, m Matrix) (*Stencil, error) {
	old := c.Bounds()
	hw, hh := float64(old.W)/2, float64(old.H)/2

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4]Point{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}} {
		p := m.TransformPoint(corner)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	out := Rect{
		X: old.X,
		Y: old.Y,
		W: int(math.Ceil(maxX - minX - extentTolerance)),
		H: int(math.Ceil(maxY - minY - extentTolerance)),
	}
	out.W, out.H = max(out.W, 0), max(out.H, 0)

	projection := Translate(float64(out.W)/2-0.5, float64(out.H)/2-0.5).
		Multiply(m).
		Multiply(Translate(-float64(old.W)/2+0.5, -float64(old.H)/2+0.5))
	inverse, ok := projection.Invert()
	if !ok {
		return nil, fmt.Errorf("sprite: transform: %w", ErrSingularMatrix)
	}

	Logger().Debug("sprite: transform", "from", old, "to", out, "sampling", sampling)

	stride := c.channel.Stride()
	buf := make([]byte, out.Area()*stride)
	pool := c.pool()
	parallel.Map(pool, bands(pool, out), func(band parallel.Band) struct{} {
		for y := band.Lo; y < band.Hi; y++ {
			row := buf[y*out.W*stride : (y+1)*out.W*stride]
			for x := 0; x < out.W; x++ {
				src := inverse.TransformPoint(Point{X: float64(x), Y: float64(y)})
				c.Sample(src.X+float64(old.X), src.Y+float64(old.Y), sampling, row[x*stride:(x+1)*stride])
			}
		}
		return struct{}{}
	})
	return StencilFromBufferMaskAlpha(out, c.channel, buf), nil
}

func (c *Canvas) transformed(sampling Sampling, m Matrix) (*Canvas, error) {
	s, err := c.Transform(sampling, m)
	if err != nil {
		return nil, err
	}
	return newCanvas(c.channel, []*Stencil{s}, c.opts), nil
}

// Flip mirrors the canvas along axis.
func (c *Canvas) Flip(axis FlipAxis) (*Canvas, error) {
	return c.transformed(SamplingNearest, FlipMatrix(axis))
}

// Rotate turns the canvas by radians about its centre, clockwise on screen.
func (c *Canvas) Rotate(radians float64, sampling Sampling) (*Canvas, error) {
	return c.transformed(sampling, Rotate(radians))
}

// Resize scales the canvas to w by h pixels.
func (c *Canvas) Resize(w, h int, sampling Sampling) (*Canvas, error) {
	b := c.Bounds()
	if b.Empty() || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite: resize %v to %dx%d: %w", b, w, h, ErrSingularMatrix)
	}
	return c.transformed(sampling, Scale(float64(w)/float64(b.W), float64(h)/float64(b.H)))
}
