// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/color"
)

func rgbaCanvas() *sprite.Canvas {
	return sprite.CanvasFromStencil(sprite.StencilFromBuffer(sprite.Rect{W: 2, H: 1}, color.ChannelRGBA,
		[]byte{255, 0, 0, 255, 0, 0, 255, 255}))
}

func TestZoom(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	dr, err := Zoom(dst, image.Pt(1, 2), rgbaCanvas(), 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(1, 2, 7, 5), dr)

	red := stdcolor.NRGBA{R: 255, A: 255}
	blue := stdcolor.NRGBA{B: 255, A: 255}
	assert.Equal(t, red, dst.NRGBAAt(1, 2))
	assert.Equal(t, red, dst.NRGBAAt(3, 4))
	assert.Equal(t, blue, dst.NRGBAAt(4, 2))
	assert.Equal(t, blue, dst.NRGBAAt(6, 4))
	assert.Equal(t, stdcolor.NRGBA{}, dst.NRGBAAt(7, 2), "outside the zoomed rectangle")
	assert.Equal(t, stdcolor.NRGBA{}, dst.NRGBAAt(1, 5))
}

func TestZoomKeepsBackdropInGaps(t *testing.T) {
	s := sprite.StencilFromBufferMaskAlpha(sprite.Rect{X: 5, Y: 5, W: 3, H: 1}, color.ChannelRGBA,
		[]byte{0, 255, 0, 255, 9, 9, 9, 0, 0, 255, 0, 255})
	dst := image.NewNRGBA(image.Rect(0, 0, 6, 2))
	grey := stdcolor.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}
	Checkerboard(dst, dst.Bounds(), 2, grey, grey)

	dr, err := Zoom(dst, image.Point{}, sprite.CanvasFromStencil(s), 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 2), dr)

	green := stdcolor.NRGBA{G: 255, A: 255}
	assert.Equal(t, green, dst.NRGBAAt(0, 0))
	assert.Equal(t, green, dst.NRGBAAt(1, 1))
	assert.Equal(t, grey, dst.NRGBAAt(2, 0))
	assert.Equal(t, grey, dst.NRGBAAt(3, 1))
	assert.Equal(t, green, dst.NRGBAAt(5, 1))
}

func TestZoomErrors(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	_, err := Zoom(dst, image.Point{}, rgbaCanvas(), 0)
	assert.Error(t, err)

	_, err = Zoom(dst, image.Point{}, sprite.NewCanvas(color.ChannelRGBA), 2)
	assert.ErrorIs(t, err, ErrEmptyCanvas)
}

func TestCheckerboard(t *testing.T) {
	dst := image.NewGray(image.Rect(0, 0, 5, 4))
	light, dark := stdcolor.Gray{Y: 200}, stdcolor.Gray{Y: 50}
	Checkerboard(dst, dst.Bounds(), 2, light, dark)

	tests := []struct {
		x, y int
		want stdcolor.Gray
	}{
		{0, 0, light}, {1, 1, light}, {2, 0, dark}, {0, 2, dark}, {2, 2, light}, {4, 3, dark},
	}
	for _, tt := range tests {
		if got := dst.GrayAt(tt.x, tt.y); got != tt.want {
			t.Errorf("GrayAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		ch   color.Channel
		want gputypes.TextureFormat
	}{
		{color.ChannelLuma, gputypes.TextureFormatR8Unorm},
		{color.ChannelLumaNormal, gputypes.TextureFormatR8Unorm},
		{color.ChannelLumaAlpha, gputypes.TextureFormatRGBA8Unorm},
		{color.ChannelRGB, gputypes.TextureFormatRGBA8Unorm},
		{color.ChannelRGBA, gputypes.TextureFormatRGBA8Unorm},
	}
	for _, tt := range tests {
		if got := TextureFormat(tt.ch); got != tt.want {
			t.Errorf("TextureFormat(%v) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestNewTextureRGBA(t *testing.T) {
	tex, err := NewTexture(rgbaCanvas(), "layer")
	require.NoError(t, err)
	assert.Equal(t, "layer", tex.Label)
	assert.Equal(t, gputypes.Extent3D{Width: 2, Height: 1, DepthOrArrayLayers: 1}, tex.Size)
	assert.Equal(t, gputypes.TextureDimension2D, tex.Dimension)
	assert.Equal(t, uint32(256), tex.BytesPerRow)
	assert.Len(t, tex.Data, 256)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, tex.Row(0))
}

func TestNewTextureLuma(t *testing.T) {
	buf := make([]byte, 300*2)
	for i := range buf {
		buf[i] = byte(i)
	}
	c := sprite.CanvasFromStencil(sprite.StencilFromBuffer(sprite.Rect{X: 4, Y: 4, W: 300, H: 2}, color.ChannelLuma, buf))

	tex, err := NewTexture(c, "")
	require.NoError(t, err)
	assert.Equal(t, gputypes.TextureFormatR8Unorm, tex.Format)
	assert.Equal(t, uint32(512), tex.BytesPerRow)
	assert.Equal(t, buf[:300], tex.Row(0))
	assert.Equal(t, buf[300:], tex.Row(1))
}

func TestNewTextureRegion(t *testing.T) {
	tex, err := NewTextureRegion(rgbaCanvas(), sprite.Rect{X: 1, Y: 0, W: 2, H: 1}, "dirty")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0, 0, 255}, tex.Row(0), "uncovered pixel is the default pixel")

	_, err = NewTextureRegion(rgbaCanvas(), sprite.Rect{}, "none")
	assert.ErrorIs(t, err, ErrEmptyCanvas)
}

func TestNewStencilTexture(t *testing.T) {
	s := sprite.StencilFromBufferMaskAlpha(sprite.Rect{X: 2, Y: 3, W: 2, H: 1}, color.ChannelRGBA,
		[]byte{0, 0, 0, 0, 9, 8, 7, 255})
	tex, err := NewStencilTexture(s)
	require.NoError(t, err)
	assert.Equal(t, "(2,3 2x1)", tex.Label)
	assert.Equal(t, []byte{0, 0, 0, 0, 9, 8, 7, 255}, tex.Row(0))

	luma := sprite.StencilFromBuffer(sprite.Rect{W: 2, H: 2}, color.ChannelLuma, []byte{1, 2, 3, 4})
	tex, err = NewStencilTexture(luma)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, tex.Row(1))
}

func TestTextureCache(t *testing.T) {
	ch := color.ChannelRGBA
	a := sprite.StencilFromBuffer(sprite.Rect{W: 1, H: 1}, ch, []byte{1, 1, 1, 255})
	b := sprite.StencilFromBuffer(sprite.Rect{X: 5, W: 1, H: 1}, ch, []byte{2, 2, 2, 255})

	c := sprite.CanvasFromStencil(a)
	c, err := c.Apply(b)
	require.NoError(t, err)

	tc := NewTextureCache(0)
	first, err := tc.Canvas(c)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 2, tc.Len())
	assert.Zero(t, tc.HitRate())

	edited, err := c.Apply(sprite.StencilFromBuffer(sprite.Rect{X: 5, W: 1, H: 1}, ch, []byte{3, 3, 3, 255}))
	require.NoError(t, err)
	second, err := tc.Canvas(edited)
	require.NoError(t, err)
	assert.Same(t, first[0], second[0], "stencil untouched by the edit is reused")
	assert.NotSame(t, first[1], second[1])
	assert.InDelta(t, 0.25, tc.HitRate(), 1e-9)
}

func TestTextureCacheEviction(t *testing.T) {
	tc := NewTextureCache(1)
	a := sprite.NewStencil(sprite.Rect{W: 1, H: 1}, color.ChannelLuma)
	b := sprite.NewStencil(sprite.Rect{W: 1, H: 1}, color.ChannelLuma)
	ta, err := tc.Stencil(a)
	require.NoError(t, err)
	_, err = tc.Stencil(b)
	require.NoError(t, err)
	assert.Equal(t, 1, tc.Len())
	again, err := tc.Stencil(a)
	require.NoError(t, err)
	assert.NotSame(t, ta, again)
}
