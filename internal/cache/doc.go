// Package cache provides a generic, thread-safe LRU cache with a hard
// capacity.
//
//	c := cache.New[*sprite.Stencil, *display.Texture](256)
//	tex, err := c.GetOrCreate(s, func() (*display.Texture, error) { ... })
//
// Keys are meant to be pointers to immutable values, so a key is never
// invalidated; entries only leave through eviction, Delete or Clear.
package cache
