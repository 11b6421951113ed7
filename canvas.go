package sprite

import (
	"fmt"
	"image"
	"iter"
	"slices"

	"github.com/gogpu/sprite/blend"
	"github.com/gogpu/sprite/color"
	"github.com/gogpu/sprite/internal/parallel"
	"github.com/gogpu/sprite/internal/spatial"
)

// Canvas is an immutable, ordered collection of stencils sharing one
// channel, indexed by an R-tree over their bounds.
//
// Every edit returns a new *Canvas. Unchanged stencils are shared between
// the old and new values, so keeping an old *Canvas around is enough to
// undo an edit.
type Canvas struct {
	channel  color.Channel
	stencils []*Stencil
	index    *spatial.Index[*Stencil]
	opts     canvasOptions
}

// NewCanvas returns an empty canvas.
func NewCanvas(ch color.Channel, opts ...CanvasOption) *Canvas {
	return newCanvas(ch, nil, buildOptions(opts))
}

// CanvasFromStencil returns a canvas holding only s.
func CanvasFromStencil(s *Stencil, opts ...CanvasOption) *Canvas {
	return newCanvas(s.channel, []*Stencil{s}, buildOptions(opts))
}

// newCanvas rebuilds the spatial index for stencils.
func newCanvas(ch color.Channel, stencils []*Stencil, o canvasOptions) *Canvas {
	items := make([]spatial.Item[*Stencil], len(stencils))
	for i, s := range stencils {
		items[i] = spatial.Item[*Stencil]{Box: s.bounds.box(), Value: s}
	}
	return &Canvas{channel: ch, stencils: stencils, index: spatial.New(items), opts: o}
}

func (c *Canvas) pool() *parallel.WorkerPool {
	if c.opts.serial {
		return nil
	}
	return sharedPool()
}

// Channel returns the pixel layout shared by every stencil.
func (c *Canvas) Channel() color.Channel { return c.channel }

// Len returns the number of stencils.
func (c *Canvas) Len() int { return len(c.stencils) }

// Stencils returns the stencils in application order. The slice is a copy;
// the stencils are shared.
func (c *Canvas) Stencils() []*Stencil { return slices.Clone(c.stencils) }

// Bounds returns the envelope of every stencil, or the zero Rect for an
// empty canvas.
func (c *Canvas) Bounds() Rect {
	b, ok := c.index.Bounds()
	if !ok {
		return Rect{}
	}
	return rectFromBox(b)
}

// Apply blends s over the canvas with the canvas' configured blend mode and
// operator (ModeNormal and OpLighter unless WithBlend says otherwise).
func (c *Canvas) Apply(s *Stencil) (*Canvas, error) {
	return c.ApplyWithBlend(s, c.opts.mode, c.opts.op)
}

// ApplyWithBlend returns a new canvas where every stencil overlapping s, or
// lying inside it, is replaced by Merge(s, stencil, mode, op). Other
// stencils are kept as they are. When s overlaps nothing it is appended.
//
// When s overlaps several stencils each of them is merged with s on its
// own, so the content of s appears in every merged stencil.
func (c *Canvas) ApplyWithBlend(s *Stencil, mode blend.Mode, op blend.Op) (*Canvas, error) {
	if err := color.CheckSame(c.channel, s.channel); err != nil {
		return nil, fmt.Errorf("sprite: apply: %w", err)
	}

	hits := c.index.Search(s.bounds.box(), nil)
	overlapped := make(map[*Stencil]bool, len(hits))
	for _, h := range hits {
		overlapped[h] = true
	}

	pool := c.pool()
	out := make([]*Stencil, 0, len(c.stencils)+1)
	for _, old := range c.stencils {
		if !overlapped[old] {
			out = append(out, old)
			continue
		}
		m, err := merge(s, old, mode, op, pool)
		if err != nil {
			return nil, fmt.Errorf("sprite: apply: %w", err)
		}
		out = append(out, m)
	}
	if len(hits) == 0 {
		out = append(out, s)
	}

	log := Logger()
	log.Debug("sprite: apply", "bounds", s.bounds, "overlaps", len(hits), "stencils", len(out))
	if len(hits) > 1 {
		log.Warn("sprite: stencil merged into several stencils", "bounds", s.bounds, "overlaps", len(hits))
	}
	return newCanvas(c.channel, out, c.opts), nil
}

// lookup returns the pixel visible at (x, y). The nearest stencil to a
// covered point is the latest one containing it, so the containing
// stencils are tried latest first from a single index query.
func (c *Canvas) lookup(x, y int) ([]byte, bool) {
	hits := c.index.At(x, y)
	for i := len(hits) - 1; i >= 0; i-- {
		if px, ok := hits[i].TryGet(x, y); ok {
			return px, true
		}
	}
	return nil, false
}

// Nearest returns the stencil whose bounds lie closest to (x, y), measured
// as squared distance to the bounds and zero inside them. Among equally
// close stencils the latest wins. ok is false on an empty canvas.
func (c *Canvas) Nearest(x, y int) (s *Stencil, ok bool) {
	return c.index.Nearest(x, y)
}

// Lookup returns the pixel at (x, y) and whether any stencil has one there.
// The slice must not be modified.
func (c *Canvas) Lookup(x, y int) ([]byte, bool) {
	return c.lookup(x, y)
}

// TryGet returns the pixel at (x, y), or the channel's default pixel when
// no stencil has one. A returned stencil pixel must not be modified.
func (c *Canvas) TryGet(x, y int) []byte {
	if px, ok := c.lookup(x, y); ok {
		return px
	}
	return c.channel.DefaultPixel()
}

// All yields every coordinate of Bounds in row-major order with its pixel.
func (c *Canvas) All() iter.Seq2[image.Point, []byte] {
	return c.Region(c.Bounds())
}

// Region yields every coordinate of r in row-major order with its pixel,
// the default pixel where the canvas has none.
func (c *Canvas) Region(r Rect) iter.Seq2[image.Point, []byte] {
	return func(yield func(image.Point, []byte) bool) {
		empty := c.channel.DefaultPixel()
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				px, ok := c.lookup(x, y)
				if !ok {
					px = empty
				}
				if !yield(image.Pt(x, y), px) {
					return
				}
			}
		}
	}
}

// Crop keeps the stencils that overlap region or lie inside it. Stencil
// contents are not clipped.
func (c *Canvas) Crop(region Rect) *Canvas {
	kept := c.index.Search(region.box(), func(b spatial.Box) bool {
		return region.touches(rectFromBox(b))
	})
	Logger().Debug("sprite: crop", "region", region, "kept", len(kept), "dropped", len(c.stencils)-len(kept))
	return newCanvas(c.channel, kept, c.opts)
}

// CopyToBytes flattens Bounds into a dense row-major buffer.
func (c *Canvas) CopyToBytes() []byte {
	return c.copyRegion(c.Bounds())
}

// CopyToStencil flattens the canvas into one dense stencil over Bounds.
func (c *Canvas) CopyToStencil() *Stencil {
	return c.CopyRegionToStencil(c.Bounds())
}

// CopyRegionToStencil flattens r into a dense stencil. Pixels no stencil
// covers hold the default pixel.
func (c *Canvas) CopyRegionToStencil(r Rect) *Stencil {
	checkRect(r)
	return StencilFromBuffer(r, c.channel, c.copyRegion(r))
}

func (c *Canvas) copyRegion(r Rect) []byte {
	stride := c.channel.Stride()
	buf := make([]byte, r.Area()*stride)
	empty := c.channel.DefaultPixel()
	pool := c.pool()
	parallel.Map(pool, bands(pool, r), func(band parallel.Band) struct{} {
		for row := band.Lo; row < band.Hi; row++ {
			line := buf[row*r.W*stride : (row+1)*r.W*stride]
			for col := 0; col < r.W; col++ {
				px, ok := c.lookup(r.X+col, r.Y+row)
				if !ok {
					px = empty
				}
				copy(line[col*stride:], px)
			}
		}
		return struct{}{}
	})
	return buf
}
