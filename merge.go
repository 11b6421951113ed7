package sprite

import (
	"fmt"

	"github.com/gogpu/sprite/blend"
	"github.com/gogpu/sprite/color"
	"github.com/gogpu/sprite/internal/mask"
	"github.com/gogpu/sprite/internal/parallel"
)

// Merge combines front and back over the union of their bounds. Where only
// one side has a pixel it is copied; where both do they are blended with
// PixelMut.Blend. For layouts with alpha a blended pixel whose alpha ends up
// zero is dropped.
//
// The stencils must share a channel, otherwise the error matches
// ErrChannelMismatch.
func Merge(front, back *Stencil, mode blend.Mode, op blend.Op) (*Stencil, error) {
	return merge(front, back, mode, op, sharedPool())
}

// Union merges a and b with ModeNormal and OpLighter.
func Union(a, b *Stencil) (*Stencil, error) {
	return Merge(a, b, blend.ModeNormal, blend.OpLighter)
}

// mergeBand is the output of one row band: the row-major positions that
// are present and their packed pixels.
type mergeBand struct {
	present []int
	data    []byte
	err     error
}

func merge(front, back *Stencil, mode blend.Mode, op blend.Op, pool *parallel.WorkerPool) (*Stencil, error) {
	if err := color.CheckSame(front.channel, back.channel); err != nil {
		return nil, fmt.Errorf("sprite: merge: %w", err)
	}
	ch := front.channel
	r := front.bounds.Union(back.bounds)

	results := parallel.Map(pool, bands(pool, r), func(band parallel.Band) mergeBand {
		var out mergeBand
		tmp := ch.DefaultPixel()
		dst := color.NewPixelMut(tmp, ch)
		for row := band.Lo; row < band.Hi; row++ {
			y := r.Y + row
			for col := 0; col < r.W; col++ {
				x := r.X + col
				f, fok := front.TryGet(x, y)
				b, bok := back.TryGet(x, y)
				var px []byte
				switch {
				case fok && bok:
					if err := dst.Blend(mode, op, color.NewPixel(f, ch), color.NewPixel(b, ch)); err != nil {
						out.err = err
						return out
					}
					if a, ok := ch.Alpha(tmp); ok && a == 0 {
						continue
					}
					px = tmp
				case fok:
					px = f
				case bok:
					px = b
				default:
					continue
				}
				out.present = append(out.present, row*r.W+col)
				out.data = append(out.data, px...)
			}
		}
		return out
	})

	mb := mask.NewBuilder(r.Area())
	total := 0
	for _, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("sprite: merge: %w", res.err)
		}
		total += len(res.data)
	}
	data := make([]byte, 0, total)
	for _, res := range results {
		for _, i := range res.present {
			mb.Set(i)
		}
		data = append(data, res.data...)
	}

	return &Stencil{bounds: r, channel: ch, mask: mb.Build(), data: data}, nil
}
