// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/color"
	"github.com/gogpu/sprite/imageio"
)

// copyPitchAlignment is the WebGPU row alignment for buffer-texture copies.
const copyPitchAlignment = 256

// Texture is canvas pixel data laid out for a 2D texture upload.
//
// Rows are padded to copyPitchAlignment bytes. Colour values are straight
// alpha, so the pipeline must not use a premultiplied blend state.
type Texture struct {
	Label       string
	Size        gputypes.Extent3D
	Format      gputypes.TextureFormat
	Dimension   gputypes.TextureDimension
	Usage       gputypes.TextureUsage
	BytesPerRow uint32
	Data        []byte
}

// Row returns the unpadded pixel bytes of row y.
func (t *Texture) Row(y int) []byte {
	bpp := bytesPerPixel(t.Format)
	start := y * int(t.BytesPerRow)
	return t.Data[start : start+int(t.Size.Width)*bpp]
}

func bytesPerPixel(f gputypes.TextureFormat) int {
	if f == gputypes.TextureFormatR8Unorm {
		return 1
	}
	return 4
}

// TextureFormat picks the upload format for ch. Luma layouts use a single
// red channel; every other supported layout is expanded to RGBA8.
func TextureFormat(ch color.Channel) gputypes.TextureFormat {
	if ch.Valid() && ch.Base() == color.ChannelLuma {
		return gputypes.TextureFormatR8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}

// NewStencilTexture lays out a single stencil over its bounds, labelled with
// them. Absent pixels are zero, which is transparent for RGBA8.
func NewStencilTexture(s *sprite.Stencil) (*Texture, error) {
	r := s.Bounds()
	if r.Empty() {
		return nil, ErrEmptyCanvas
	}
	t := newTexture(r, s.Channel(), r.String())
	if t.Format == gputypes.TextureFormatR8Unorm {
		pitch := int(t.BytesPerRow)
		for p, px := range s.All() {
			t.Data[(p.Y-r.Y)*pitch+(p.X-r.X)] = px[0]
		}
		return t, nil
	}
	img, err := imageio.ToImage(s)
	if err != nil {
		return nil, fmt.Errorf("display: texture %v: %w", r, err)
	}
	t.fill(img.Pix, img.Stride)
	return t, nil
}

// NewTexture lays out the whole canvas.
func NewTexture(c *sprite.Canvas, label string) (*Texture, error) {
	return NewTextureRegion(c, c.Bounds(), label)
}

// NewTextureRegion lays out region r of c, for example the bounds of a
// freshly applied stencil. Uncovered pixels take the channel's default
// pixel.
func NewTextureRegion(c *sprite.Canvas, r sprite.Rect, label string) (*Texture, error) {
	if r.Empty() {
		return nil, ErrEmptyCanvas
	}
	ch := c.Channel()
	t := newTexture(r, ch, label)
	pitch := int(t.BytesPerRow)
	flat := c.CopyRegionToStencil(r)
	if t.Format == gputypes.TextureFormatR8Unorm {
		stride := ch.Stride()
		src := flat.Data()
		for y := range r.H {
			row := t.Data[y*pitch : y*pitch+r.W]
			for x := range r.W {
				row[x] = src[(y*r.W+x)*stride]
			}
		}
	} else {
		img, err := imageio.ToImage(flat)
		if err != nil {
			return nil, fmt.Errorf("display: texture %q: %w", label, err)
		}
		t.fill(img.Pix, img.Stride)
	}

	sprite.Logger().Debug("display: texture", "label", label, "region", r, "format", ch, "pitch", pitch)
	return t, nil
}

func newTexture(r sprite.Rect, ch color.Channel, label string) *Texture {
	format := TextureFormat(ch)
	rowBytes := r.W * bytesPerPixel(format)
	pitch := (rowBytes + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	return &Texture{
		Label:       label,
		Size:        gputypes.Extent3D{Width: uint32(r.W), Height: uint32(r.H), DepthOrArrayLayers: 1},
		Format:      format,
		Dimension:   gputypes.TextureDimension2D,
		Usage:       gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
		BytesPerRow: uint32(pitch),
		Data:        make([]byte, pitch*r.H),
	}
}

// fill copies tightly packed RGBA8 rows with the given source stride.
func (t *Texture) fill(pix []byte, stride int) {
	rowBytes := int(t.Size.Width) * 4
	pitch := int(t.BytesPerRow)
	for y := range int(t.Size.Height) {
		copy(t.Data[y*pitch:y*pitch+rowBytes], pix[y*stride:])
	}
}
