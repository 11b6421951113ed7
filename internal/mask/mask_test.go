package mask

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		n    int
		fill bool
		want int
	}{
		{"empty", 0, true, 0},
		{"small clear", 4, false, 0},
		{"small full", 4, true, 4},
		{"word boundary", 64, true, 64},
		{"past word boundary", 65, true, 65},
		{"large", 1000, true, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.n, tt.fill)
			if m.Len() != tt.n {
				t.Errorf("Len() = %d, want %d", m.Len(), tt.n)
			}
			if m.Count() != tt.want {
				t.Errorf("Count() = %d, want %d", m.Count(), tt.want)
			}
			if m.Get(tt.n) {
				t.Errorf("Get(%d) past end = true", tt.n)
			}
		})
	}
}

func TestRankMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 517
	b := NewBuilder(n)
	naive := make([]bool, n)
	for i := range n {
		if rng.Intn(3) == 0 {
			b.Set(i)
			naive[i] = true
		}
	}
	m := b.Build()

	count := 0
	for i := 0; i <= n; i++ {
		if got := m.Rank(i); got != count {
			t.Fatalf("Rank(%d) = %d, want %d", i, got, count)
		}
		if i < n {
			if m.Get(i) != naive[i] {
				t.Fatalf("Get(%d) = %v, want %v", i, m.Get(i), naive[i])
			}
			if naive[i] {
				count++
			}
		}
	}
	if m.Count() != count {
		t.Errorf("Count() = %d, want %d", m.Count(), count)
	}
}

func TestOnes(t *testing.T) {
	b := NewBuilder(130)
	want := []int{0, 3, 63, 64, 100, 129}
	for _, i := range want {
		b.Set(i)
	}
	m := b.Build()

	got := slices.Collect(m.Ones())
	if !slices.Equal(got, want) {
		t.Errorf("Ones() = %v, want %v", got, want)
	}

	// Early stop.
	var first []int
	for i := range m.Ones() {
		first = append(first, i)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, want[:2]) {
		t.Errorf("Ones() with break = %v, want %v", first, want[:2])
	}
}

func TestBytesRoundTrip(t *testing.T) {
	b := NewBuilder(4)
	b.Set(0)
	b.Set(3)
	m := b.Build()

	data := m.Bytes()
	if !bytes.Equal(data, []byte{0b1001}) {
		t.Fatalf("Bytes() = %08b, want 00001001", data)
	}

	back, err := FromBytes(data, 4)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if back.Count() != 2 || !back.Get(0) || !back.Get(3) || back.Get(1) {
		t.Errorf("FromBytes() decoded wrong bits")
	}
}

func TestFromBytesRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
	}{
		{"too short", []byte{}, 4},
		{"too long", []byte{1, 2}, 4},
		{"padding set", []byte{0b10000}, 4},
		{"negative", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBytes(tt.data, tt.n); !errors.Is(err, ErrBadEncoding) {
				t.Errorf("FromBytes(%v, %d) error = %v, want ErrBadEncoding", tt.data, tt.n, err)
			}
		})
	}
}

func TestBuilderSetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set out of range did not panic")
		}
	}()
	NewBuilder(3).Set(3)
}
