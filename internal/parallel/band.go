package parallel

// Band is the half-open row range [Lo, Hi).
type Band struct {
	Lo, Hi int
}

// Len returns the number of rows in the band.
func (b Band) Len() int { return b.Hi - b.Lo }

// Split cuts rows into at most parts contiguous bands of near-equal height,
// none shorter than minRows except when rows itself is. Bands are returned
// top to bottom.
func Split(rows, parts, minRows int) []Band {
	if rows <= 0 {
		return nil
	}
	minRows = max(minRows, 1)
	parts = max(min(parts, rows/minRows), 1)

	bands := make([]Band, 0, parts)
	size, extra := rows/parts, rows%parts
	lo := 0
	for i := range parts {
		h := size
		if i < extra {
			h++
		}
		bands = append(bands, Band{Lo: lo, Hi: lo + h})
		lo += h
	}
	return bands
}

// Map applies fn to every band and returns the results in band order. It
// runs on p when p is non-nil and there is more than one band, otherwise on
// the calling goroutine. fn must not share mutable state across bands.
func Map[R any](p *WorkerPool, bands []Band, fn func(Band) R) []R {
	out := make([]R, len(bands))
	if p == nil || len(bands) < 2 {
		for i, b := range bands {
			out[i] = fn(b)
		}
		return out
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { out[i] = fn(b) }
	}
	p.ExecuteAll(work)
	return out
}
