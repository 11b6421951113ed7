package color

import "fmt"

// Pixel is a read-only view of one pixel's bytes.
type Pixel struct {
	data []byte
	ch   Channel
}

// NewPixel wraps data as a pixel of channel ch.
// Panics if len(data) != ch.Stride().
func NewPixel(data []byte, ch Channel) Pixel {
	if len(data) != ch.Stride() {
		panic(fmt.Sprintf("color: pixel of %v needs %d bytes, got %d", ch, ch.Stride(), len(data)))
	}
	return Pixel{data: data, ch: ch}
}

// Channel returns the pixel layout.
func (p Pixel) Channel() Channel { return p.ch }

// Bytes returns the underlying bytes.
func (p Pixel) Bytes() []byte { return p.data }

// Alpha returns the alpha byte, or 255 for alpha-less layouts.
func (p Pixel) Alpha() uint8 {
	if a, ok := p.ch.Alpha(p.data); ok {
		return a
	}
	return 0xFF
}

func (p Pixel) component(sub Channel) ([]byte, error) {
	off, err := p.ch.OffsetOf(sub)
	if err != nil {
		return nil, err
	}
	return p.data[off : off+channelTable[sub].stride], nil
}

// Luma decodes the Luma component.
func (p Pixel) Luma() (Luma, error) {
	b, err := p.component(ChannelLuma)
	if err != nil {
		return Luma{}, err
	}
	return Luma{Y: b[0]}, nil
}

// LumaAlpha decodes the LumaAlpha component.
func (p Pixel) LumaAlpha() (LumaAlpha, error) {
	b, err := p.component(ChannelLumaAlpha)
	if err != nil {
		return LumaAlpha{}, err
	}
	return LumaAlpha{Y: b[0], A: b[1]}, nil
}

// RGB decodes the RGB component.
func (p Pixel) RGB() (RGB, error) {
	b, err := p.component(ChannelRGB)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// RGBA decodes the RGBA component.
func (p Pixel) RGBA() (RGBA, error) {
	b, err := p.component(ChannelRGBA)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// UV decodes the UV component.
func (p Pixel) UV() (UV, error) {
	b, err := p.component(ChannelUV)
	if err != nil {
		return UV{}, err
	}
	return decodeUV(b), nil
}

// Normal decodes the Normal component.
func (p Pixel) Normal() (Normal, error) {
	b, err := p.component(ChannelNormal)
	if err != nil {
		return Normal{}, err
	}
	return decodeNormal(b), nil
}

// PixelMut is a writable view of one pixel's bytes.
type PixelMut struct {
	Pixel
}

// NewPixelMut wraps data as a writable pixel of channel ch.
// Panics if len(data) != ch.Stride().
func NewPixelMut(data []byte, ch Channel) PixelMut {
	return PixelMut{Pixel: NewPixel(data, ch)}
}

// SetLuma encodes v into the Luma component.
func (p PixelMut) SetLuma(v Luma) error {
	b, err := p.component(ChannelLuma)
	if err != nil {
		return err
	}
	b[0] = v.Y
	return nil
}

// SetLumaAlpha encodes v into the LumaAlpha component.
func (p PixelMut) SetLumaAlpha(v LumaAlpha) error {
	b, err := p.component(ChannelLumaAlpha)
	if err != nil {
		return err
	}
	b[0], b[1] = v.Y, v.A
	return nil
}

// SetRGB encodes v into the RGB component.
func (p PixelMut) SetRGB(v RGB) error {
	b, err := p.component(ChannelRGB)
	if err != nil {
		return err
	}
	b[0], b[1], b[2] = v.R, v.G, v.B
	return nil
}

// SetRGBA encodes v into the RGBA component.
func (p PixelMut) SetRGBA(v RGBA) error {
	b, err := p.component(ChannelRGBA)
	if err != nil {
		return err
	}
	b[0], b[1], b[2], b[3] = v.R, v.G, v.B, v.A
	return nil
}

// SetUV encodes v into the UV component.
func (p PixelMut) SetUV(v UV) error {
	b, err := p.component(ChannelUV)
	if err != nil {
		return err
	}
	encodeUV(b, v)
	return nil
}

// SetNormal encodes v into the Normal component.
func (p PixelMut) SetNormal(v Normal) error {
	b, err := p.component(ChannelNormal)
	if err != nil {
		return err
	}
	encodeNormal(b, v)
	return nil
}

// CopyFrom overwrites p with src.
func (p PixelMut) CopyFrom(src Pixel) error {
	if err := CheckSame(p.ch, src.ch); err != nil {
		return err
	}
	copy(p.data, src.data)
	return nil
}
