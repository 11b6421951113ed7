package main

import (
	"context"
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/display"
	"github.com/gogpu/sprite/imageio"
)

// loadLayers decodes every layer concurrently and places it at its offset.
// The result keeps recipe order.
func loadLayers(ctx context.Context, p *plan) ([]*sprite.Stencil, error) {
	out := make([]*sprite.Stencil, len(p.layers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, l := range p.layers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := imgio.Open(l.path)
			if err != nil {
				return fmt.Errorf("layer %d: %w", i, err)
			}
			s, err := imageio.FromImage(img, p.channel)
			if err != nil {
				return fmt.Errorf("layer %d: %w", i, err)
			}
			out[i], err = offset(s, l.x, l.y)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// offset moves s by (dx, dy).
func offset(s *sprite.Stencil, dx, dy int) (*sprite.Stencil, error) {
	if dx == 0 && dy == 0 {
		return s, nil
	}
	r := s.Bounds()
	r.X += dx
	r.Y += dy
	return sprite.StencilFromRawParts(r, s.Channel(), s.MaskBits(), s.Data())
}

// composite applies the layers in order, then crops and transforms.
func composite(p *plan, layers []*sprite.Stencil) (*sprite.Canvas, error) {
	c := sprite.NewCanvas(p.channel)
	for i, s := range layers {
		next, err := c.ApplyWithBlend(s, p.layers[i].mode, p.layers[i].op)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		c = next
	}
	if p.crop != nil {
		c = sprite.CanvasFromStencil(clip(c.Crop(*p.crop), *p.crop))
	}
	if p.transform != nil {
		s, err := c.Transform(p.sampling, *p.transform)
		if err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		c = sprite.CanvasFromStencil(s)
	}
	return c, nil
}

// clip cuts r out of c. Pixels no stencil covers stay zero, which drops
// them from layouts with alpha.
func clip(c *sprite.Canvas, r sprite.Rect) *sprite.Stencil {
	stride := c.Channel().Stride()
	buf := make([]byte, r.Area()*stride)
	i := 0
	for p := range c.Region(r) {
		if px, ok := c.Lookup(p.X, p.Y); ok {
			copy(buf[i*stride:], px)
		}
		i++
	}
	return sprite.StencilFromBufferMaskAlpha(r, c.Channel(), buf)
}

// run executes p.
func run(ctx context.Context, p *plan) (*sprite.Canvas, error) {
	layers, err := loadLayers(ctx, p)
	if err != nil {
		return nil, err
	}
	c, err := composite(p, layers)
	if err != nil {
		return nil, err
	}
	sprite.Logger().Info("composited", "layers", len(layers), "stencils", c.Len(), "bounds", c.Bounds())
	return c, nil
}

// render flattens c. With factor > 1 every pixel becomes a factor x factor
// block drawn over a transparency checkerboard.
func render(c *sprite.Canvas, factor int) (image.Image, error) {
	if factor <= 1 {
		return imageio.CanvasToImage(c)
	}
	size := c.Bounds().Rectangle().Size().Mul(factor)
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	display.Checkerboard(dst, dst.Bounds(), 2*factor, stdcolor.Gray{Y: 0xcc}, stdcolor.Gray{Y: 0x99})
	if _, err := display.Zoom(dst, image.Point{}, c, factor); err != nil {
		return nil, err
	}
	return dst, nil
}
