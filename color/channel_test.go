package color

import (
	"bytes"
	"errors"
	"testing"
)

func TestChannelStride(t *testing.T) {
	tests := []struct {
		ch   Channel
		want int
	}{
		{ChannelLuma, 1},
		{ChannelLumaAlpha, 2},
		{ChannelRGB, 3},
		{ChannelRGBA, 4},
		{ChannelUV, 8},
		{ChannelNormal, 12},
		{ChannelLumaNormal, 13},
		{ChannelLumaAlphaNormal, 14},
		{ChannelRGBNormal, 15},
		{ChannelRGBANormal, 16},
		{ChannelUVNormal, 20},
	}
	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			if got := tt.ch.Stride(); got != tt.want {
				t.Errorf("%v.Stride() = %d, want %d", tt.ch, got, tt.want)
			}
			if got := len(tt.ch.DefaultPixel()); got != tt.want {
				t.Errorf("len(%v.DefaultPixel()) = %d, want %d", tt.ch, got, tt.want)
			}
		})
	}
}

func TestChannelTagsStable(t *testing.T) {
	if ChannelLuma != 0 || ChannelRGBA != 3 || ChannelUVNormal != 10 {
		t.Errorf("channel tags moved: Luma=%d RGBA=%d UVNormal=%d", ChannelLuma, ChannelRGBA, ChannelUVNormal)
	}
}

func TestDefaultPixel(t *testing.T) {
	tests := []struct {
		ch   Channel
		want []byte
	}{
		{ChannelLuma, []byte{0}},
		{ChannelLumaAlpha, []byte{0, 255}},
		{ChannelRGB, []byte{0, 0, 0}},
		{ChannelRGBA, []byte{0, 0, 0, 255}},
		{ChannelUV, make([]byte, 8)},
		{ChannelLumaAlphaNormal, append([]byte{0, 255}, make([]byte, 12)...)},
		{ChannelRGBANormal, append([]byte{0, 0, 0, 255}, make([]byte, 12)...)},
	}
	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			if got := tt.ch.DefaultPixel(); !bytes.Equal(got, tt.want) {
				t.Errorf("%v.DefaultPixel() = %v, want %v", tt.ch, got, tt.want)
			}
		})
	}

	a := ChannelRGBA.DefaultPixel()
	a[0] = 9
	if b := ChannelRGBA.DefaultPixel(); b[0] != 0 {
		t.Error("DefaultPixel() must return a fresh slice")
	}
}

func TestOffsetOf(t *testing.T) {
	tests := []struct {
		ch      Channel
		sub     Channel
		want    int
		wantErr bool
	}{
		{ChannelRGBANormal, ChannelRGBA, 0, false},
		{ChannelRGBANormal, ChannelNormal, 4, false},
		{ChannelLumaNormal, ChannelNormal, 1, false},
		{ChannelLumaAlphaNormal, ChannelNormal, 2, false},
		{ChannelRGBNormal, ChannelNormal, 3, false},
		{ChannelUVNormal, ChannelNormal, 8, false},
		{ChannelUVNormal, ChannelUV, 0, false},
		{ChannelNormal, ChannelNormal, 0, false},
		{ChannelLuma, ChannelLuma, 0, false},
		{ChannelLuma, ChannelNormal, 0, true},
		{ChannelRGBA, ChannelRGB, 0, true},
		{ChannelLumaAlpha, ChannelLuma, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.ch.String()+"/"+tt.sub.String(), func(t *testing.T) {
			got, err := tt.ch.OffsetOf(tt.sub)
			if tt.wantErr {
				if !errors.Is(err, ErrChannelNotFound) {
					t.Fatalf("%v.OffsetOf(%v) error = %v, want ErrChannelNotFound", tt.ch, tt.sub, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%v.OffsetOf(%v) unexpected error: %v", tt.ch, tt.sub, err)
			}
			if got != tt.want {
				t.Errorf("%v.OffsetOf(%v) = %d, want %d", tt.ch, tt.sub, got, tt.want)
			}
		})
	}
}

func TestChannelPredicates(t *testing.T) {
	tests := []struct {
		ch        Channel
		hasAlpha  bool
		hasNormal bool
		base      Channel
	}{
		{ChannelLuma, false, false, ChannelLuma},
		{ChannelLumaAlpha, true, false, ChannelLumaAlpha},
		{ChannelRGBA, true, false, ChannelRGBA},
		{ChannelNormal, false, true, ChannelNormal},
		{ChannelLumaAlphaNormal, true, true, ChannelLumaAlpha},
		{ChannelRGBANormal, true, true, ChannelRGBA},
		{ChannelUVNormal, false, true, ChannelUV},
	}
	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			if got := tt.ch.HasAlpha(); got != tt.hasAlpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.hasAlpha)
			}
			if got := tt.ch.HasNormal(); got != tt.hasNormal {
				t.Errorf("HasNormal() = %v, want %v", got, tt.hasNormal)
			}
			if got := tt.ch.Base(); got != tt.base {
				t.Errorf("Base() = %v, want %v", got, tt.base)
			}
		})
	}
}

func TestChannelAlpha(t *testing.T) {
	if a, ok := ChannelRGBA.Alpha([]byte{1, 2, 3, 4}); !ok || a != 4 {
		t.Errorf("RGBA.Alpha() = (%d, %v), want (4, true)", a, ok)
	}
	if a, ok := ChannelLumaAlphaNormal.Alpha(make([]byte, 14)); !ok || a != 0 {
		t.Errorf("LumaAlphaNormal.Alpha() = (%d, %v), want (0, true)", a, ok)
	}
	if _, ok := ChannelRGB.Alpha([]byte{1, 2, 3}); ok {
		t.Error("RGB.Alpha() ok = true, want false")
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"rgba", ChannelRGBA, false},
		{"LumaAlpha", ChannelLumaAlpha, false},
		{"lumaa", ChannelLumaAlpha, false},
		{"LumaaNormal", ChannelLumaAlphaNormal, false},
		{"UVNormal", ChannelUVNormal, false},
		{"cmyk", ChannelLuma, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChannel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseChannel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseChannel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	var c Channel
	if err := c.UnmarshalText([]byte("RGBNormal")); err != nil || c != ChannelRGBNormal {
		t.Errorf("UnmarshalText(RGBNormal) = %v, %v", c, err)
	}
}

func TestInvalidChannelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Stride() on invalid channel did not panic")
		}
	}()
	_ = Channel(42).Stride()
}
