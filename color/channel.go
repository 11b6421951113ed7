// Package color describes pixel layouts and provides typed views over raw
// pixel bytes.
//
// A Channel is a closed set of layout tags. Every tag has a fixed byte
// stride and a default pixel. Pixel and PixelMut borrow exactly one pixel's
// worth of bytes and decode or encode the typed colour records found in it.
//
// Byte layout:
//
//	Luma        L
//	LumaAlpha   L A
//	RGB         R G B
//	RGBA        R G B A
//	UV          u v           (float32 little-endian each)
//	Normal      x y z         (float32 little-endian each)
//	*Normal     base + x y z  (normal triple follows the base colour)
package color

import (
	"fmt"
	"strings"
)

// Channel is a pixel layout tag. The numeric values are stable and are used
// by serialization.
type Channel uint8

const (
	ChannelLuma Channel = iota
	ChannelLumaAlpha
	ChannelRGB
	ChannelRGBA
	ChannelUV
	ChannelNormal
	ChannelLumaNormal
	ChannelLumaAlphaNormal
	ChannelRGBNormal
	ChannelRGBANormal
	ChannelUVNormal

	channelCount
)

// channelInfo holds the static layout of a channel.
type channelInfo struct {
	name   string
	stride int
	base   Channel // colour part; equal to the channel itself when there is no trailing normal
	normal bool    // carries a normal triple
	alpha  int     // byte offset of the alpha component, -1 if none
}

var channelTable = [channelCount]channelInfo{
	ChannelLuma:            {"Luma", 1, ChannelLuma, false, -1},
	ChannelLumaAlpha:       {"LumaAlpha", 2, ChannelLumaAlpha, false, 1},
	ChannelRGB:             {"RGB", 3, ChannelRGB, false, -1},
	ChannelRGBA:            {"RGBA", 4, ChannelRGBA, false, 3},
	ChannelUV:              {"UV", 8, ChannelUV, false, -1},
	ChannelNormal:          {"Normal", 12, ChannelNormal, true, -1},
	ChannelLumaNormal:      {"LumaNormal", 13, ChannelLuma, true, -1},
	ChannelLumaAlphaNormal: {"LumaAlphaNormal", 14, ChannelLumaAlpha, true, 1},
	ChannelRGBNormal:       {"RGBNormal", 15, ChannelRGB, true, -1},
	ChannelRGBANormal:      {"RGBANormal", 16, ChannelRGBA, true, 3},
	ChannelUVNormal:        {"UVNormal", 20, ChannelUV, true, -1},
}

func (c Channel) info() channelInfo {
	if !c.Valid() {
		panic(fmt.Sprintf("color: invalid channel %d", uint8(c)))
	}
	return channelTable[c]
}

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c < channelCount
}

// Stride returns the size in bytes of one pixel.
func (c Channel) Stride() int {
	return c.info().stride
}

// HasAlpha reports whether the layout carries an alpha byte.
func (c Channel) HasAlpha() bool {
	return c.info().alpha >= 0
}

// HasNormal reports whether the layout carries a normal triple.
func (c Channel) HasNormal() bool {
	return c.info().normal
}

// Base returns the colour part of a channel with a trailing normal
// (ChannelRGBANormal.Base() == ChannelRGBA). Channels without a trailing
// normal, including ChannelNormal itself, return themselves.
func (c Channel) Base() Channel {
	return c.info().base
}

// Alpha returns the alpha byte of px. ok is false for alpha-less layouts or
// when px is too short.
func (c Channel) Alpha(px []byte) (alpha uint8, ok bool) {
	off := c.info().alpha
	if off < 0 || off >= len(px) {
		return 0, false
	}
	return px[off], true
}

// DefaultPixel returns a fresh copy of the empty pixel: alpha bytes are
// fully opaque and every other byte is zero.
func (c Channel) DefaultPixel() []byte {
	info := c.info()
	px := make([]byte, info.stride)
	if info.alpha >= 0 {
		px[info.alpha] = 0xFF
	}
	return px
}

// OffsetOf returns the byte offset of component sub within c. The base
// colour sits at offset 0 and the normal triple follows it. An absent
// component yields an error matching ErrChannelNotFound.
func (c Channel) OffsetOf(sub Channel) (int, error) {
	info := c.info()
	switch {
	case sub == c, sub == info.base:
		return 0, nil
	case sub == ChannelNormal && info.normal:
		return channelTable[info.base].stride, nil
	default:
		return 0, &NotFoundError{Channel: c, Component: sub}
	}
}

// String returns the channel name.
func (c Channel) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
	return channelTable[c].name
}

// MarshalText implements encoding.TextMarshaler.
func (c Channel) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("color: invalid channel %d", uint8(c))
	}
	return []byte(channelTable[c].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Channel) UnmarshalText(text []byte) error {
	v, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseChannel looks up a channel by name, ignoring case. "LumaA" is
// accepted as short for LumaAlpha, also in "LumaANormal".
func ParseChannel(name string) (Channel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(key, "lumaa"); ok && !strings.HasPrefix(rest, "lpha") {
		key = "lumaalpha" + rest
	}
	for i, info := range channelTable {
		if strings.ToLower(info.name) == key {
			return Channel(i), nil
		}
	}
	return ChannelLuma, fmt.Errorf("color: unknown channel %q", name)
}
