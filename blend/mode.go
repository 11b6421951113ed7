// Package blend implements separable blend modes and Porter-Duff compositing
// operators over normalized [0, 1] channel values.
//
// A blend Mode mixes a backdrop value b with a foreground value f. An Op
// returns the pair of coefficients (Fa, Fb) that weight the blended front
// colour and the backdrop colour before they are summed.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mode is a separable blend mode.
type Mode uint8

const (
	ModeNormal     Mode = iota // f
	ModeMultiply               // b * f
	ModeScreen                 // b + f - b*f
	ModeOverlay                // HardLight(f, b)
	ModeDarken                 // min(b, f)
	ModeLighten                // max(b, f)
	ModeColorDodge             // b / (1 - f)
	ModeColorBurn              // 1 - (1 - b) / f
	ModeHardLight              // Multiply or Screen depending on f
	ModeSoftLight              // soft version of HardLight
	ModeDifference             // b - f
	ModeExclusion              // b + f - 2*b*f

	modeCount
)

var modeNames = [modeCount]string{
	ModeNormal:     "Normal",
	ModeMultiply:   "Multiply",
	ModeScreen:     "Screen",
	ModeOverlay:    "Overlay",
	ModeDarken:     "Darken",
	ModeLighten:    "Lighten",
	ModeColorDodge: "ColorDodge",
	ModeColorBurn:  "ColorBurn",
	ModeHardLight:  "HardLight",
	ModeSoftLight:  "SoftLight",
	ModeDifference: "Difference",
	ModeExclusion:  "Exclusion",
}

// Blend mixes backdrop b with foreground f. Unknown modes behave like
// ModeNormal.
func (m Mode) Blend(b, f float32) float32 {
	switch m {
	case ModeMultiply:
		return multiply(b, f)
	case ModeScreen:
		return screen(b, f)
	case ModeOverlay:
		return hardLight(f, b)
	case ModeDarken:
		return math32.Min(b, f)
	case ModeLighten:
		return math32.Max(b, f)
	case ModeColorDodge:
		return colorDodge(b, f)
	case ModeColorBurn:
		return colorBurn(b, f)
	case ModeHardLight:
		return hardLight(b, f)
	case ModeSoftLight:
		return softLight(b, f)
	case ModeDifference:
		return b - f
	case ModeExclusion:
		return b + f - 2*b*f
	default:
		return f
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// String returns the mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("blend: invalid mode %d", uint8(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMode looks up a mode by name, ignoring case, dashes and underscores.
func ParseMode(name string) (Mode, error) {
	key := normalizeName(name)
	for i, n := range modeNames {
		if normalizeName(n) == key {
			return Mode(i), nil
		}
	}
	return ModeNormal, fmt.Errorf("blend: unknown mode %q", name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

func multiply(b, f float32) float32 {
	return b * f
}

func screen(b, f float32) float32 {
	return b + f - b*f
}

func colorDodge(b, f float32) float32 {
	switch {
	case b == 0:
		return 0
	case f == 1:
		return 1
	default:
		return math32.Min(b/(1-f), 1)
	}
}

func colorBurn(b, f float32) float32 {
	switch {
	case b == 1:
		return 1
	case f == 0:
		return 0
	default:
		return 1 - math32.Min((1-b)/f, 1)
	}
}

func hardLight(b, f float32) float32 {
	if f <= 0.5 {
		return multiply(b, f)
	}
	return screen(b, f)
}

func softLight(b, f float32) float32 {
	if f <= 0.5 {
		return b - (1-2*f)*b*(1-b)
	}
	var d float32
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math32.Sqrt(b)
	}
	return b + (2*f-1)*(d-b)
}
