// Package sprite is the raster compositing core of a pixel-art editor.
//
// # Overview
//
// Edits are sparse [Stencil] values: a rectangle, a presence bit per pixel
// and the packed bytes of the present pixels. A [Canvas] is an immutable
// ordered set of stencils with an R-tree over their bounds. Applying a
// stencil blends it into the stencils it overlaps and returns a new canvas;
// the previous canvas stays valid, which is all an undo log needs.
//
// Pixel layouts are described by [color.Channel]. Blend modes and
// Porter-Duff operators live in package blend.
//
// # Quick Start
//
//	buf := []byte{1, 255, 0, 0, 0, 0, 4, 1} // 2x2 LumaAlpha
//	s := sprite.StencilFromBufferMaskAlpha(sprite.Rect{W: 2, H: 2}, color.ChannelLumaAlpha, buf)
//
//	c := sprite.NewCanvas(color.ChannelLumaAlpha)
//	c, err := c.Apply(s)
//	if err != nil {
//	    return err
//	}
//	flat := c.CopyToStencil()
//
// # Transforms
//
// [Canvas.Transform] resamples a canvas through an affine [Matrix] with
// nearest or bilinear [Sampling]. Flip, Rotate and Resize are shorthands.
//
// # Concurrency
//
// Stencils and canvases are never modified after construction and may be
// shared freely. Merges, flattening and transforms split their rows across
// a shared worker pool; [WithSerial] keeps them on the calling goroutine.
//
// # Logging
//
// sprite logs through [log/slog] and is silent by default. See [SetLogger].
package sprite
