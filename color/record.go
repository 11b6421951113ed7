package color

import (
	"encoding/binary"
	"math"
)

// Luma is a single 8-bit grey level.
type Luma struct {
	Y uint8
}

// LumaAlpha is a grey level with straight (non-premultiplied) alpha.
type LumaAlpha struct {
	Y, A uint8
}

// RGB is an 8-bit colour without alpha.
type RGB struct {
	R, G, B uint8
}

// RGBA is an 8-bit colour with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// UV is a texture coordinate.
type UV struct {
	U, V float32
}

// Normal is a surface normal.
type Normal struct {
	X, Y, Z float32
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func decodeUV(b []byte) UV {
	return UV{U: getF32(b[0:4]), V: getF32(b[4:8])}
}

func encodeUV(b []byte, v UV) {
	putF32(b[0:4], v.U)
	putF32(b[4:8], v.V)
}

func decodeNormal(b []byte) Normal {
	return Normal{X: getF32(b[0:4]), Y: getF32(b[4:8]), Z: getF32(b[8:12])}
}

func encodeNormal(b []byte, n Normal) {
	putF32(b[0:4], n.X)
	putF32(b[4:8], n.Y)
	putF32(b[8:12], n.Z)
}
