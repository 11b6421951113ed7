package sprite

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sprite/color"
	"github.com/gogpu/sprite/internal/mask"
)

// maskStencil builds a LumaAlpha stencil over r where the pixels listed in
// present carry (index+1, 255).
func maskStencil(r Rect, present ...int) *Stencil {
	b := mask.NewBuilder(r.Area())
	data := make([]byte, 0, len(present)*2)
	for _, i := range present {
		b.Set(i)
	}
	m := b.Build()
	for i := range m.Ones() {
		data = append(data, byte(i+1), 255)
	}
	s, err := StencilFromRawParts(r, color.ChannelLumaAlpha, m.Bytes(), data)
	if err != nil {
		panic(err)
	}
	return s
}

func TestNewStencilDefaultPixels(t *testing.T) {
	s := NewStencil(Rect{X: 1, Y: 2, W: 2, H: 3}, color.ChannelRGBA)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 6*4, len(s.Data()))
	assert.Equal(t, Rect{X: 1, Y: 2, W: 2, H: 3}, s.Bounds())
	assert.Equal(t, color.ChannelRGBA, s.Channel())

	px, ok := s.TryGet(2, 4)
	require.True(t, ok)
	assert.Equal(t, color.ChannelRGBA.DefaultPixel(), px)

	_, ok = s.TryGet(0, 0)
	assert.False(t, ok, "coordinate outside bounds")
	_, ok = s.TryGet(3, 2)
	assert.False(t, ok, "right edge is exclusive")
}

func TestNewStencilNegativeSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewStencil(Rect{W: -1, H: 2}, color.ChannelLuma) })
}

func TestStencilFromBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	s := StencilFromBuffer(Rect{X: 10, Y: 10, W: 3, H: 2}, color.ChannelLuma, buf)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, []byte{4}, s.At(10, 11))
	assert.Equal(t, []byte{3}, s.At(12, 10))
	assert.Equal(t, "Stencil ( ⠛⠃ )", s.String())

	assert.Panics(t, func() {
		StencilFromBuffer(Rect{W: 2, H: 2}, color.ChannelLuma, []byte{1, 2, 3})
	})
}

func TestStencilFromBufferMaskAlpha(t *testing.T) {
	buf := []byte{1, 255, 2, 0, 3, 0, 4, 255}
	s := StencilFromBufferMaskAlpha(Rect{W: 2, H: 2}, color.ChannelLumaAlpha, buf)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []byte{1, 255, 4, 255}, s.Data())
	assert.Equal(t, "Stencil ( ⠑ )", s.String())

	_, ok := s.TryGet(1, 0)
	assert.False(t, ok)
	assert.Equal(t, []byte{0, 255}, s.At(1, 0))
}

func TestStencilFromBufferMaskAlphaWithoutAlpha(t *testing.T) {
	buf := []byte{0, 0, 0, 0}
	s := StencilFromBufferMaskAlpha(Rect{W: 2, H: 2}, color.ChannelLuma, buf)
	assert.Equal(t, 4, s.Len(), "layouts without alpha keep every pixel")
}

func TestStencilFromRawParts(t *testing.T) {
	r := Rect{W: 2, H: 2}
	tests := []struct {
		name    string
		ch      color.Channel
		mask    []byte
		data    []byte
		wantErr bool
	}{
		{"valid", color.ChannelLuma, []byte{0b1001}, []byte{7, 9}, false},
		{"empty", color.ChannelLuma, []byte{0}, nil, false},
		{"short data", color.ChannelLuma, []byte{0b1001}, []byte{7}, true},
		{"long data", color.ChannelLuma, []byte{0b0001}, []byte{7, 9}, true},
		{"short mask", color.ChannelLuma, nil, nil, true},
		{"padding bits set", color.ChannelLuma, []byte{0b10001}, []byte{7, 9}, true},
		{"unknown channel", color.Channel(200), []byte{0}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := StencilFromRawParts(r, tt.ch, tt.mask, tt.data)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStencil)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mask, s.MaskBits())
			assert.Equal(t, len(tt.data), s.Len()*tt.ch.Stride())
		})
	}
}

func TestStencilFromRawPartsNegativeSize(t *testing.T) {
	_, err := StencilFromRawParts(Rect{W: -2, H: 1}, color.ChannelLuma, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStencil)
}

func TestStencilTryIndex(t *testing.T) {
	s := maskStencil(Rect{W: 2, H: 2}, 1, 2)
	px, ok := s.TryIndex(2)
	require.True(t, ok)
	assert.Equal(t, []byte{3, 255}, px)
	_, ok = s.TryIndex(3)
	assert.False(t, ok)
}

func TestStencilAll(t *testing.T) {
	s := maskStencil(Rect{X: 5, Y: 7, W: 3, H: 2}, 0, 2, 4)

	var points []image.Point
	var values []byte
	for p, px := range s.All() {
		points = append(points, p)
		values = append(values, px[0])
	}
	assert.Equal(t, []image.Point{{5, 7}, {7, 7}, {6, 8}}, points)
	assert.Equal(t, []byte{1, 3, 5}, values)

	n := 0
	for range s.All() {
		n++
		break
	}
	assert.Equal(t, 1, n, "iteration stops when yield returns false")
}

func TestStencilString(t *testing.T) {
	tests := []struct {
		name    string
		r       Rect
		present []int
		want    string
	}{
		{"diagonal", Rect{W: 2, H: 2}, []int{0, 3}, "Stencil ( ⠑ )"},
		{"anti-diagonal", Rect{W: 2, H: 2}, []int{1, 2}, "Stencil ( ⠊ )"},
		{"full 2x2", Rect{W: 2, H: 2}, []int{0, 1, 2, 3}, "Stencil ( ⠛ )"},
		{"full 3x1", Rect{W: 3, H: 1}, []int{0, 1, 2}, "Stencil ( ⠉⠁ )"},
		{"full 1x3", Rect{W: 1, H: 3}, []int{0, 1, 2}, "Stencil ( ⠇ )"},
		{"empty", Rect{W: 2, H: 1}, nil, "Stencil ( ⠀ )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskStencil(tt.r, tt.present...).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStencilStringFull4x4(t *testing.T) {
	s := NewStencil(Rect{W: 4, H: 4}, color.ChannelLuma)
	assert.Equal(t, "Stencil ( ⣿⣿ )", s.String())
}

func TestStencilStringMultipleRows(t *testing.T) {
	s := NewStencil(Rect{W: 2, H: 5}, color.ChannelLuma)
	assert.Equal(t, "Stencil ( ⣿\n          ⠉ )", s.String())
}
