// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"fmt"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/cache"
)

// DefaultTextureCacheSize is the capacity used when NewTextureCache is
// given a non-positive size.
const DefaultTextureCacheSize = 256

// TextureCache keeps the texture layout of recently shown stencils.
// Stencils are immutable and shared between canvas versions, so after an
// edit only the stencils Apply replaced miss the cache.
//
// TextureCache is safe for concurrent use.
type TextureCache struct {
	textures *cache.Cache[*sprite.Stencil, *Texture]
}

// NewTextureCache returns a cache holding at most size textures.
func NewTextureCache(size int) *TextureCache {
	if size <= 0 {
		size = DefaultTextureCacheSize
	}
	return &TextureCache{textures: cache.New[*sprite.Stencil, *Texture](size)}
}

// Stencil returns the texture for s, laying it out on a miss.
func (tc *TextureCache) Stencil(s *sprite.Stencil) (*Texture, error) {
	return tc.textures.GetOrCreate(s, func() (*Texture, error) {
		return NewStencilTexture(s)
	})
}

// Canvas returns one texture per stencil of c, in application order.
func (tc *TextureCache) Canvas(c *sprite.Canvas) ([]*Texture, error) {
	stencils := c.Stencils()
	out := make([]*Texture, 0, len(stencils))
	for i, s := range stencils {
		t, err := tc.Stencil(s)
		if err != nil {
			return nil, fmt.Errorf("display: stencil %d: %w", i, err)
		}
		out = append(out, t)
	}
	st := tc.textures.Stats()
	sprite.Logger().Debug("display: texture cache", "stencils", len(stencils), "hits", st.Hits, "misses", st.Misses)
	return out, nil
}

// Len returns the number of cached textures.
func (tc *TextureCache) Len() int { return tc.textures.Len() }

// HitRate returns the fraction of lookups served from the cache.
func (tc *TextureCache) HitRate() float64 { return tc.textures.Stats().HitRate() }
