package spatial

import (
	"fmt"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
)

const (
	// R-tree node fan-out.
	minChildren = 25
	maxChildren = 50

	// Rects are grown by this much on every side so that zero-sized boxes
	// stay valid and touching boxes are returned as candidates. Exact
	// predicates on Box run afterwards.
	slack = 0.5
)

// Item pairs a box with the value it indexes.
type Item[T any] struct {
	Box   Box
	Value T
}

type entry[T any] struct {
	box   Box
	seq   int
	value T
	rect  rtreego.Rect
}

func (e *entry[T]) Bounds() rtreego.Rect { return e.rect }

// Index is an immutable R-tree over boxes. Query results are returned in
// insertion order.
type Index[T any] struct {
	tree    *rtreego.Rtree
	entries []*entry[T]
	bounds  Box
}

// New bulk-loads items into a new index.
func New[T any](items []Item[T]) *Index[T] {
	ix := &Index[T]{entries: make([]*entry[T], len(items))}
	objs := make([]rtreego.Spatial, len(items))
	for i, it := range items {
		e := &entry[T]{box: it.Box, seq: i, value: it.Value, rect: toRect(it.Box)}
		ix.entries[i] = e
		objs[i] = e
		if i == 0 {
			ix.bounds = it.Box
		} else {
			ix.bounds = ix.bounds.Union(it.Box)
		}
	}
	ix.tree = rtreego.NewTree(2, minChildren, maxChildren, objs...)
	return ix
}

func toRect(b Box) rtreego.Rect {
	r, err := rtreego.NewRectFromPoints(
		rtreego.Point{float64(b.MinX) - slack, float64(b.MinY) - slack},
		rtreego.Point{float64(b.MaxX) + slack, float64(b.MaxY) + slack},
	)
	if err != nil {
		panic(fmt.Sprintf("spatial: box %+v: %v", b, err))
	}
	return r
}

// Len returns the number of indexed items.
func (ix *Index[T]) Len() int { return len(ix.entries) }

// Bounds returns the envelope of every indexed box. ok is false when the
// index is empty.
func (ix *Index[T]) Bounds() (b Box, ok bool) {
	return ix.bounds, len(ix.entries) > 0
}

func (ix *Index[T]) candidates(q Box) []*entry[T] {
	hits := ix.tree.SearchIntersect(toRect(q))
	out := make([]*entry[T], 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*entry[T]))
	}
	slices.SortFunc(out, func(a, b *entry[T]) int { return a.seq - b.seq })
	return out
}

// Search returns the values whose box is accepted by keep, restricted to
// boxes near q. A nil keep accepts boxes intersecting or inside q.
func (ix *Index[T]) Search(q Box, keep func(Box) bool) []T {
	if keep == nil {
		keep = func(b Box) bool { return q.Intersects(b) || q.Contains(b) }
	}
	var out []T
	for _, e := range ix.candidates(q) {
		if keep(e.box) {
			out = append(out, e.value)
		}
	}
	return out
}

// At returns the values whose box contains pixel (x, y).
func (ix *Index[T]) At(x, y int) []T {
	q := Box{MinX: x, MinY: y, MaxX: x + 1, MaxY: y + 1}
	return ix.Search(q, func(b Box) bool { return b.ContainsPoint(x, y) })
}

// Nearest returns the value whose box is closest to (x, y) by Box.Dist2.
// Boxes containing the pixel win outright; ties go to the latest item.
func (ix *Index[T]) Nearest(x, y int) (T, bool) {
	var zero T
	if len(ix.entries) == 0 {
		return zero, false
	}
	if hits := ix.At(x, y); len(hits) > 0 {
		return hits[len(hits)-1], true
	}

	seed, ok := ix.tree.NearestNeighbor(rtreego.Point{float64(x), float64(y)}).(*entry[T])
	if !ok {
		return zero, false
	}

	// The tree works on grown rects, so widen the window by the seed's
	// exact distance and settle ties on Dist2.
	r := int(math.Ceil(math.Sqrt(float64(seed.box.Dist2(x, y))))) + 1
	best := seed
	bestD := seed.box.Dist2(x, y)
	for _, e := range ix.candidates(Box{MinX: x - r, MinY: y - r, MaxX: x + r, MaxY: y + r}) {
		d := e.box.Dist2(x, y)
		if d < bestD || (d == bestD && e.seq > best.seq) {
			best, bestD = e, d
		}
	}
	return best.value, true
}
