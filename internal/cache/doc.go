// Package cache provides the LRU cache the font engine keeps rendered glyph
// bitmaps in.
//
//	c := cache.New[rune, text.Glyph](512)
//	g, err := c.GetOrCreate('A', renderA)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
