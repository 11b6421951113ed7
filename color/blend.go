package color

import "github.com/gogpu/sprite/blend"

// Blend composites front over back into p.
//
// Layouts with alpha mix every colour byte c as
//
//	o = (1-ba)*f + ba*mode.Blend(b, f)
//	c = fa*Fa*o + ba*Fb*b
//	a = fa*Fa + ba*Fb
//
// where fa and ba are the normalized alphas and (Fa, Fb) = op.Compose(fa, ba).
// Layouts without alpha take the front pixel unchanged. A trailing normal
// is always copied from front.
//
// p may alias front or back.
func (p PixelMut) Blend(mode blend.Mode, op blend.Op, front, back Pixel) error {
	if err := CheckSame(p.ch, front.ch); err != nil {
		return err
	}
	if err := CheckSame(front.ch, back.ch); err != nil {
		return err
	}

	info := p.ch.info()
	if info.alpha < 0 {
		copy(p.data, front.data)
		return nil
	}

	fa := unit(front.data[info.alpha])
	ba := unit(back.data[info.alpha])
	wf, wb := op.Compose(fa, ba)

	for i := 0; i < info.alpha; i++ {
		f := unit(front.data[i])
		b := unit(back.data[i])
		o := (1-ba)*f + ba*mode.Blend(b, f)
		p.data[i] = quantize(fa*wf*o + ba*wb*b)
	}
	p.data[info.alpha] = quantize(fa*wf + ba*wb)

	if info.normal {
		off := channelTable[info.base].stride
		copy(p.data[off:], front.data[off:])
	}
	return nil
}

func unit(v uint8) float32 {
	return float32(v) / 255
}

// quantize maps a [0, 1] value to a byte, rounding half up and clamping.
func quantize(v float32) uint8 {
	v = v*255 + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
