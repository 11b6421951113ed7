// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/imageio"
)

// ErrEmptyCanvas is returned when there is nothing to display.
var ErrEmptyCanvas = errors.New("display: empty canvas")

// Zoom draws c onto dst with its top-left pixel at at, every canvas pixel
// becoming a factor x factor block. The canvas is composited over dst.
// It returns the destination rectangle that was painted.
func Zoom(dst xdraw.Image, at image.Point, c *sprite.Canvas, factor int) (image.Rectangle, error) {
	if factor < 1 {
		return image.Rectangle{}, fmt.Errorf("display: zoom factor %d", factor)
	}
	if c.Bounds().Empty() {
		return image.Rectangle{}, ErrEmptyCanvas
	}
	// Scale only takes its fast paths for concrete image types; a generic
	// source image leaves an *image.NRGBA dst untouched.
	src, err := imageio.CanvasToImage(c)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("display: zoom: %w", err)
	}
	sr := src.Bounds()
	dr := image.Rectangle{Min: at, Max: at.Add(sr.Size().Mul(factor))}
	xdraw.NearestNeighbor.Scale(dst, dr, src, sr, xdraw.Over, nil)
	sprite.Logger().Debug("display: zoom", "src", sr, "dst", dr, "factor", factor)
	return dr, nil
}

// Checkerboard fills r in dst with alternating light and dark squares of
// cell pixels, starting with light at r.Min.
func Checkerboard(dst xdraw.Image, r image.Rectangle, cell int, light, dark stdcolor.Color) {
	if cell < 1 {
		cell = 1
	}
	lu, du := image.NewUniform(light), image.NewUniform(dark)
	for y := r.Min.Y; y < r.Max.Y; y += cell {
		for x := r.Min.X; x < r.Max.X; x += cell {
			src := lu
			if ((x-r.Min.X)/cell+(y-r.Min.Y)/cell)%2 == 1 {
				src = du
			}
			sq := image.Rect(x, y, x+cell, y+cell).Intersect(r)
			xdraw.Draw(dst, sq, src, image.Point{}, xdraw.Src)
		}
	}
}
