package imageio

import (
	"image"
	stdcolor "image/color"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/color"
)

// View exposes a canvas as a read-only image.Image without flattening it.
// Every At call is a canvas lookup, so View suits scaling and sampling
// passes that touch each pixel once.
type View struct {
	canvas *sprite.Canvas
	bounds image.Rectangle
}

// NewView wraps c. The error matches ErrUnsupportedChannel for layouts
// without an 8-bit colour base.
func NewView(c *sprite.Canvas) (*View, error) {
	if err := checkChannel(c.Channel()); err != nil {
		return nil, err
	}
	return &View{canvas: c, bounds: c.Bounds().Rectangle()}, nil
}

// ColorModel implements image.Image.
func (v *View) ColorModel() stdcolor.Model { return stdcolor.NRGBAModel }

// Bounds implements image.Image.
func (v *View) Bounds() image.Rectangle { return v.bounds }

// At implements image.Image.
func (v *View) At(x, y int) stdcolor.Color {
	return v.NRGBAAt(x, y)
}

// NRGBAAt returns the straight-alpha colour at (x, y). Where no stencil
// has a pixel the result is transparent.
func (v *View) NRGBAAt(x, y int) stdcolor.NRGBA {
	px, ok := v.canvas.Lookup(x, y)
	if !ok {
		return stdcolor.NRGBA{}
	}
	return decode(px, v.canvas.Channel().Base())
}

// Canvas returns the wrapped canvas.
func (v *View) Canvas() *sprite.Canvas { return v.canvas }

// Channel reports the layout of the wrapped canvas.
func (v *View) Channel() color.Channel { return v.canvas.Channel() }

var _ image.Image = (*View)(nil)
