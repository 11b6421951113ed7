package sprite

import (
	"bytes"
	"fmt"
	"image"
	"iter"

	"github.com/gogpu/sprite/color"
	"github.com/gogpu/sprite/internal/mask"
)

// Stencil is an immutable sparse raster: a rectangle, a presence bit per
// pixel in row-major order, and the packed bytes of the present pixels in
// the same order.
//
// The packed data always holds exactly Len()*Channel().Stride() bytes. A
// *Stencil is safe to share between goroutines and canvases.
type Stencil struct {
	bounds  Rect
	channel color.Channel
	mask    *mask.Mask
	data    []byte
}

func checkRect(r Rect) {
	if r.W < 0 || r.H < 0 {
		panic(fmt.Sprintf("sprite: negative stencil size %dx%d", r.W, r.H))
	}
}

// NewStencil returns a dense stencil over r filled with the channel's
// default pixel.
func NewStencil(r Rect, ch color.Channel) *Stencil {
	checkRect(r)
	buf := bytes.Repeat(ch.DefaultPixel(), r.Area())
	return StencilFromBuffer(r, ch, buf)
}

// StencilFromBuffer wraps a dense row-major buffer with every pixel
// present. The stencil takes ownership of buf.
// Panics if len(buf) != r.Area()*ch.Stride().
func StencilFromBuffer(r Rect, ch color.Channel, buf []byte) *Stencil {
	checkRect(r)
	if want := r.Area() * ch.Stride(); len(buf) != want {
		panic(fmt.Sprintf("sprite: buffer for %v %v needs %d bytes, got %d", r, ch, want, len(buf)))
	}
	return &Stencil{bounds: r, channel: ch, mask: mask.New(r.Area(), true), data: buf}
}

// StencilFromBufferMaskAlpha is StencilFromBuffer for layouts with alpha,
// except that pixels whose alpha is zero are left out. Other layouts keep
// every pixel.
// Panics if len(buf) != r.Area()*ch.Stride().
func StencilFromBufferMaskAlpha(r Rect, ch color.Channel, buf []byte) *Stencil {
	if !ch.HasAlpha() {
		return StencilFromBuffer(r, ch, buf)
	}
	checkRect(r)
	stride := ch.Stride()
	n := r.Area()
	if len(buf) != n*stride {
		panic(fmt.Sprintf("sprite: buffer for %v %v needs %d bytes, got %d", r, ch, n*stride, len(buf)))
	}

	b := mask.NewBuilder(n)
	data := make([]byte, 0, len(buf))
	for i := range n {
		px := buf[i*stride : (i+1)*stride]
		if a, _ := ch.Alpha(px); a == 0 {
			continue
		}
		b.Set(i)
		data = append(data, px...)
	}
	return &Stencil{bounds: r, channel: ch, mask: b.Build(), data: data}
}

// StencilFromRawParts rebuilds a stencil from its serialized fields. maskBits
// holds Area() presence bits packed least-significant bit first. Inputs that
// break the stencil invariant yield an error matching ErrInvalidStencil.
func StencilFromRawParts(r Rect, ch color.Channel, maskBits, data []byte) (*Stencil, error) {
	if !ch.Valid() {
		return nil, fmt.Errorf("%w: unknown channel %d", ErrInvalidStencil, uint8(ch))
	}
	if r.W < 0 || r.H < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidStencil, r.W, r.H)
	}
	m, err := mask.FromBytes(maskBits, r.Area())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStencil, err)
	}
	if want := m.Count() * ch.Stride(); len(data) != want {
		return nil, fmt.Errorf("%w: %d pixels of %v need %d bytes, got %d",
			ErrInvalidStencil, m.Count(), ch, want, len(data))
	}
	return &Stencil{bounds: r, channel: ch, mask: m, data: data}, nil
}

// Bounds returns the stencil rectangle.
func (s *Stencil) Bounds() Rect { return s.bounds }

// Channel returns the pixel layout.
func (s *Stencil) Channel() color.Channel { return s.channel }

// Len returns the number of present pixels.
func (s *Stencil) Len() int { return s.mask.Count() }

// MaskBits returns the presence bits packed least-significant bit first.
func (s *Stencil) MaskBits() []byte { return s.mask.Bytes() }

// Data returns the packed pixel bytes. The slice must not be modified.
func (s *Stencil) Data() []byte { return s.data }

// TryGet returns the pixel at (x, y), or false when the coordinate is
// outside the stencil or the pixel is absent. The slice must not be
// modified.
func (s *Stencil) TryGet(x, y int) ([]byte, bool) {
	if !s.bounds.Contains(x, y) {
		return nil, false
	}
	return s.TryIndex(s.bounds.index(x, y))
}

// TryIndex returns the pixel at row-major position i.
func (s *Stencil) TryIndex(i int) ([]byte, bool) {
	if !s.mask.Get(i) {
		return nil, false
	}
	stride := s.channel.Stride()
	off := s.mask.Rank(i) * stride
	return s.data[off : off+stride], true
}

// At returns the pixel at (x, y), or a fresh default pixel when absent.
func (s *Stencil) At(x, y int) []byte {
	if px, ok := s.TryGet(x, y); ok {
		return px
	}
	return s.channel.DefaultPixel()
}

// All yields every present pixel with its coordinate in row-major order.
func (s *Stencil) All() iter.Seq2[image.Point, []byte] {
	return func(yield func(image.Point, []byte) bool) {
		stride := s.channel.Stride()
		off := 0
		for i := range s.mask.Ones() {
			x, y := s.bounds.point(i)
			if !yield(image.Pt(x, y), s.data[off:off+stride]) {
				return
			}
			off += stride
		}
	}
}

// Transform resamples the stencil through m. See Canvas.Transform.
func (s *Stencil) Transform(sampling Sampling, m Matrix) (*Stencil, error) {
	return CanvasFromStencil(s).Transform(sampling, m)
}
