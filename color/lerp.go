package color

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Lerp writes the interpolation between from and to at t into p. t is
// clamped to [0, 1]. 8-bit components interpolate linearly with rounding,
// UV interpolates linearly and normals use spherical interpolation. Layouts
// with a trailing normal interpolate both parts.
func (p PixelMut) Lerp(from, to Pixel, t float32) error {
	if err := CheckSame(p.ch, from.ch); err != nil {
		return err
	}
	if err := CheckSame(from.ch, to.ch); err != nil {
		return err
	}
	lerp(p.data, from.data, to.data, p.ch, t)
	return nil
}

// LerpBytes is Lerp over raw pixels that all share layout ch.
// Panics if any slice is not exactly ch.Stride() bytes.
func LerpBytes(dst, from, to []byte, ch Channel, t float32) {
	stride := ch.Stride()
	if len(dst) != stride || len(from) != stride || len(to) != stride {
		panic(fmt.Sprintf("color: lerp of %v needs %d-byte pixels, got %d, %d, %d",
			ch, stride, len(dst), len(from), len(to)))
	}
	lerp(dst, from, to, ch, t)
}

func lerp(dst, from, to []byte, ch Channel, t float32) {
	t = math32.Max(0, math32.Min(1, t))

	info := ch.info()
	base := channelTable[info.base]
	switch info.base {
	case ChannelUV:
		a, b := decodeUV(from), decodeUV(to)
		encodeUV(dst, UV{U: lerpF(a.U, b.U, t), V: lerpF(a.V, b.V, t)})
	case ChannelNormal:
		encodeNormal(dst, slerp(decodeNormal(from), decodeNormal(to), t))
		return
	default:
		for i := 0; i < base.stride; i++ {
			dst[i] = lerpByte(from[i], to[i], t)
		}
	}

	if info.normal {
		off := base.stride
		encodeNormal(dst[off:], slerp(decodeNormal(from[off:]), decodeNormal(to[off:]), t))
	}
}

func lerpF(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpByte(a, b uint8, t float32) uint8 {
	v := lerpF(float32(a), float32(b), t) + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// slerp interpolates along the great arc between a and b, scaling the
// length linearly. Degenerate inputs fall back to a linear blend.
func slerp(a, b Normal, t float32) Normal {
	la := math32.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
	lb := math32.Sqrt(b.X*b.X + b.Y*b.Y + b.Z*b.Z)
	linear := Normal{X: lerpF(a.X, b.X, t), Y: lerpF(a.Y, b.Y, t), Z: lerpF(a.Z, b.Z, t)}
	if la == 0 || lb == 0 {
		return linear
	}

	cos := (a.X*b.X + a.Y*b.Y + a.Z*b.Z) / (la * lb)
	cos = math32.Max(-1, math32.Min(1, cos))
	theta := math32.Acos(cos)
	sin := math32.Sin(theta)
	if sin < 1e-6 {
		return linear
	}

	wa := math32.Sin((1-t)*theta) / sin / la
	wb := math32.Sin(t*theta) / sin / lb
	l := lerpF(la, lb, t)
	return Normal{
		X: (wa*a.X + wb*b.X) * l,
		Y: (wa*a.Y + wb*b.Y) * l,
		Z: (wa*a.Z + wb*b.Z) * l,
	}
}
