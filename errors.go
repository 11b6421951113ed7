package sprite

import (
	"errors"

	"github.com/gogpu/sprite/color"
)

var (
	// ErrChannelMismatch is matched when two stencils or a stencil and a
	// canvas do not share a channel.
	ErrChannelMismatch = color.ErrChannelMismatch

	// ErrSingularMatrix is returned by transforms whose matrix has no inverse.
	ErrSingularMatrix = errors.New("sprite: singular matrix")

	// ErrInvalidStencil is returned by StencilFromRawParts for parts that
	// break the stencil invariant.
	ErrInvalidStencil = errors.New("sprite: invalid stencil")
)
