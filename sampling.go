package sprite

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/sprite/color"
)

// Sampling selects how a fractional position is resolved to a pixel.
type Sampling uint8

const (
	// SamplingNearest picks the pixel at the rounded position, halves
	// rounding away from zero.
	SamplingNearest Sampling = iota

	// SamplingBilinear interpolates the four surrounding pixels.
	SamplingBilinear
)

// String returns the sampling name.
func (s Sampling) String() string {
	switch s {
	case SamplingNearest:
		return "Nearest"
	case SamplingBilinear:
		return "Bilinear"
	default:
		return fmt.Sprintf("Sampling(%d)", uint8(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sampling) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "nearest":
		*s = SamplingNearest
	case "bilinear":
		*s = SamplingBilinear
	default:
		return fmt.Errorf("sprite: unknown sampling %q", text)
	}
	return nil
}

// maxStride bounds the stride of every color.Channel.
const maxStride = 32

// emptyPixel is read, never written.
var emptyPixel [maxStride]byte

// Sample resolves canvas position (x, y) into out, which must be one pixel
// long. It returns false, leaving out untouched, when the rounded position
// lies outside Bounds. Pixels no stencil covers read as all-zero bytes, so
// gaps stay transparent.
//
// Panics if len(out) != Channel().Stride().
func (c *Canvas) Sample(x, y float64, sampling Sampling, out []byte) bool {
	stride := c.channel.Stride()
	if len(out) != stride {
		panic(fmt.Sprintf("sprite: sample buffer needs %d bytes, got %d", stride, len(out)))
	}
	b := c.Bounds()
	if !b.Contains(int(math.Round(x)), int(math.Round(y))) {
		return false
	}
	at := func(px, py int) []byte {
		if v, ok := c.lookup(px, py); ok {
			return v
		}
		return emptyPixel[:stride]
	}

	if sampling != SamplingBilinear {
		copy(out, at(int(math.Round(x)), int(math.Round(y))))
		return true
	}

	x0 := clamp(int(math.Floor(x)), b.X, b.X+b.W-1)
	y0 := clamp(int(math.Floor(y)), b.Y, b.Y+b.H-1)
	x1 := clamp(x0+1, b.X, b.X+b.W-1)
	y1 := clamp(y0+1, b.Y, b.Y+b.H-1)
	tx := float32(x - float64(x0))
	ty := float32(y - float64(y0))

	var scratch [2 * maxStride]byte
	top, bottom := scratch[:stride], scratch[maxStride:maxStride+stride]
	color.LerpBytes(top, at(x0, y0), at(x1, y0), c.channel, tx)
	color.LerpBytes(bottom, at(x0, y1), at(x1, y1), c.channel, tx)
	color.LerpBytes(out, top, bottom, c.channel, ty)
	return true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
