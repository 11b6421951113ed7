package imageio

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/clone"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/color"
)

// ErrUnsupportedChannel is returned for layouts without an 8-bit colour base.
var ErrUnsupportedChannel = errors.New("imageio: unsupported channel")

func checkChannel(ch color.Channel) error {
	if !ch.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannel, uint8(ch))
	}
	switch ch.Base() {
	case color.ChannelLuma, color.ChannelLumaAlpha, color.ChannelRGB, color.ChannelRGBA:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedChannel, ch)
	}
}

// FromImage converts img into a dense stencil of layout ch placed at
// img.Bounds().Min. For layouts with alpha, fully transparent pixels are
// left out of the stencil.
//
// *image.NRGBA sources are read directly. Other images are normalised with
// bild's clone.AsRGBA first, which stores premultiplied values.
func FromImage(img image.Image, ch color.Channel) (*sprite.Stencil, error) {
	if err := checkChannel(ch); err != nil {
		return nil, err
	}
	at := pixelReader(img)
	r := sprite.RectFromRectangle(img.Bounds())
	stride := ch.Stride()
	buf := make([]byte, r.Area()*stride)
	tmpl := ch.DefaultPixel()
	base := ch.Base()

	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			i := y*r.W + x
			px := buf[i*stride : (i+1)*stride]
			copy(px, tmpl)
			encode(px, base, at(x, y))
		}
	}

	if ch.HasAlpha() {
		return sprite.StencilFromBufferMaskAlpha(r, ch, buf), nil
	}
	return sprite.StencilFromBuffer(r, ch, buf), nil
}

// pixelReader returns a straight-alpha accessor over img addressed
// relative to img.Bounds().Min.
func pixelReader(img image.Image) func(x, y int) stdcolor.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		return func(x, y int) stdcolor.NRGBA {
			p := src.Pix[y*src.Stride+x*4:]
			return stdcolor.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
		}
	}
	src := clone.AsRGBA(img)
	return func(x, y int) stdcolor.NRGBA {
		return unpremultiply(src.Pix[y*src.Stride+x*4 : y*src.Stride+x*4+4])
	}
}

// ToImage renders the present pixels of s. Absent pixels are transparent.
func ToImage(s *sprite.Stencil) (*image.NRGBA, error) {
	ch := s.Channel()
	if err := checkChannel(ch); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(s.Bounds().Rectangle())
	for p, px := range s.All() {
		dst.SetNRGBA(p.X, p.Y, decode(px, ch.Base()))
	}
	return dst, nil
}

// CanvasToImage flattens c over its bounds. Pixels no stencil covers are
// transparent.
func CanvasToImage(c *sprite.Canvas) (*image.NRGBA, error) {
	ch := c.Channel()
	if err := checkChannel(ch); err != nil {
		return nil, err
	}
	r := c.Bounds()
	dst := image.NewNRGBA(r.Rectangle())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if px, ok := c.Lookup(x, y); ok {
				dst.SetNRGBA(x, y, decode(px, ch.Base()))
			}
		}
	}
	return dst, nil
}

func unpremultiply(p []byte) stdcolor.NRGBA {
	a := uint32(p[3])
	switch a {
	case 0:
		return stdcolor.NRGBA{}
	case 0xff:
		return stdcolor.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	}
	un := func(v byte) uint8 { return uint8((uint32(v)*0xff + a/2) / a) }
	return stdcolor.NRGBA{R: un(p[0]), G: un(p[1]), B: un(p[2]), A: uint8(a)}
}

// luma weighs the channels like image/color.GrayModel.
func luma(c stdcolor.NRGBA) uint8 {
	y := (19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16
	return uint8(y)
}

func encode(px []byte, base color.Channel, c stdcolor.NRGBA) {
	switch base {
	case color.ChannelLuma:
		px[0] = luma(c)
	case color.ChannelLumaAlpha:
		px[0], px[1] = luma(c), c.A
	case color.ChannelRGB:
		px[0], px[1], px[2] = c.R, c.G, c.B
	case color.ChannelRGBA:
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
	}
}

func decode(px []byte, base color.Channel) stdcolor.NRGBA {
	switch base {
	case color.ChannelLuma:
		return stdcolor.NRGBA{R: px[0], G: px[0], B: px[0], A: 0xff}
	case color.ChannelLumaAlpha:
		return stdcolor.NRGBA{R: px[0], G: px[0], B: px[0], A: px[1]}
	case color.ChannelRGB:
		return stdcolor.NRGBA{R: px[0], G: px[1], B: px[2], A: 0xff}
	default:
		return stdcolor.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
	}
}
