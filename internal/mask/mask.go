// Package mask provides a fixed-width presence bitmap with a cached prefix
// popcount, used to address packed pixel data by bit index.
package mask

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
)

// ErrBadEncoding is returned by FromBytes for malformed input.
var ErrBadEncoding = errors.New("mask: bad encoding")

// Mask is an immutable bitmap of n bits.
//
// Bit index i lives in words[i/64] at position i%64. ranks[w] holds the
// number of set bits in words[:w], so Rank is a table lookup plus one
// popcount.
type Mask struct {
	words []uint64
	ranks []int
	n     int
	count int
}

// New returns a mask of n bits, all set when fill is true.
func New(n int, fill bool) *Mask {
	b := NewBuilder(n)
	if fill {
		for w := range b.words {
			b.words[w] = ^uint64(0)
		}
		b.clearTail()
	}
	return b.Build()
}

// FromBytes decodes a mask of n bits packed least-significant bit first
// into bytes. The slice must be exactly (n+7)/8 bytes long and padding bits
// past n must be zero.
func FromBytes(data []byte, n int) (*Mask, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrBadEncoding, n)
	}
	if want := (n + 7) / 8; len(data) != want {
		return nil, fmt.Errorf("%w: %d bits need %d bytes, got %d", ErrBadEncoding, n, want, len(data))
	}
	b := NewBuilder(n)
	for i, v := range data {
		b.words[i/8] |= uint64(v) << (8 * (i % 8))
	}
	if n%64 != 0 && len(b.words) > 0 {
		if b.words[len(b.words)-1]>>(n%64) != 0 {
			return nil, fmt.Errorf("%w: padding bits set", ErrBadEncoding)
		}
	}
	return b.Build(), nil
}

// Len returns the number of bits.
func (m *Mask) Len() int { return m.n }

// Count returns the number of set bits.
func (m *Mask) Count() int { return m.count }

// Get reports whether bit i is set. Out of range indices report false.
func (m *Mask) Get(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.words[i>>6]&(1<<(i&63)) != 0
}

// Rank returns the number of set bits in [0, i).
func (m *Mask) Rank(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= m.n {
		return m.count
	}
	w := i >> 6
	below := m.words[w] & (1<<(i&63) - 1)
	return m.ranks[w] + bits.OnesCount64(below)
}

// Ones yields the index of every set bit in ascending order.
func (m *Mask) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w, word := range m.words {
			for word != 0 {
				tz := bits.TrailingZeros64(word)
				if !yield(w<<6 + tz) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// Bytes encodes the mask least-significant bit first, (n+7)/8 bytes.
func (m *Mask) Bytes() []byte {
	out := make([]byte, (m.n+7)/8)
	for i := range out {
		out[i] = byte(m.words[i/8] >> (8 * (i % 8)))
	}
	return out
}

// Builder accumulates bits for a new Mask.
type Builder struct {
	words []uint64
	n     int
}

// NewBuilder returns a builder for n cleared bits.
func NewBuilder(n int) *Builder {
	if n < 0 {
		panic(fmt.Sprintf("mask: negative length %d", n))
	}
	return &Builder{words: make([]uint64, (n+63)/64), n: n}
}

// Set sets bit i. Out of range indices panic.
func (b *Builder) Set(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("mask: index %d out of range [0, %d)", i, b.n))
	}
	b.words[i>>6] |= 1 << (i & 63)
}

// SetRange sets every bit in [lo, hi).
func (b *Builder) SetRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		b.Set(i)
	}
}

func (b *Builder) clearTail() {
	if r := b.n & 63; r != 0 {
		b.words[len(b.words)-1] &= 1<<r - 1
	}
}

// Build freezes the builder into a Mask. The builder must not be used
// afterwards.
func (b *Builder) Build() *Mask {
	m := &Mask{words: b.words, ranks: make([]int, len(b.words)), n: b.n}
	for w, word := range b.words {
		m.ranks[w] = m.count
		m.count += bits.OnesCount64(word)
	}
	b.words = nil
	return m
}
