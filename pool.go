package sprite

import (
	"sync"

	"github.com/gogpu/sprite/internal/parallel"
)

const (
	// Rasters smaller than this many pixels are processed inline.
	parallelMinPixels = 64 * 64

	// Shortest row band handed to a worker.
	parallelMinRows = 8
)

var sharedPool = sync.OnceValue(func() *parallel.WorkerPool {
	p := parallel.NewWorkerPool(0)
	Logger().Debug("sprite: worker pool started", "workers", p.Workers())
	return p
})

// bands splits the rows of r for p. A nil pool or a small raster yields a
// single band.
func bands(p *parallel.WorkerPool, r Rect) []parallel.Band {
	if p == nil || r.Area() < parallelMinPixels {
		return parallel.Split(max(r.H, 0), 1, 1)
	}
	return parallel.Split(r.H, p.Workers(), parallelMinRows)
}
