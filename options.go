package sprite

import "github.com/gogpu/sprite/blend"

// CanvasOption configures a Canvas at construction. Canvases derived by
// Apply, Crop and the transforms inherit the options of their parent.
//
// Example:
//
//	c := sprite.NewCanvas(color.ChannelRGBA,
//	    sprite.WithBlend(blend.ModeMultiply, blend.OpSourceOver),
//	    sprite.WithSerial(),
//	)
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	mode   blend.Mode
	op     blend.Op
	serial bool
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		mode: blend.ModeNormal,
		op:   blend.DefaultOp,
	}
}

func buildOptions(opts []CanvasOption) canvasOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBlend sets the blend mode and compositing operator used by Apply.
func WithBlend(mode blend.Mode, op blend.Op) CanvasOption {
	return func(o *canvasOptions) {
		o.mode = mode
		o.op = op
	}
}

// WithSerial runs merges, flattening and transforms on the calling
// goroutine instead of the shared worker pool.
func WithSerial() CanvasOption {
	return func(o *canvasOptions) {
		o.serial = true
	}
}
