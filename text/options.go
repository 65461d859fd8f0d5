package text

import "golang.org/x/image/font"

// Option configures a Face.
type Option func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	size       float64
	dpi        float64
	hinting    font.Hinting
	cacheLimit int
	kerner     Kerner
}

// defaultFaceConfig returns the default face configuration: 16px glyphs at
// 72 DPI, full hinting, 512 cached glyphs, kerning from the font's kern table.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		size:       16,
		dpi:        72,
		hinting:    font.HintingFull,
		cacheLimit: 512,
	}
}

// WithSize sets the font size. At the default 72 DPI one point is one pixel.
func WithSize(size float64) Option {
	return func(c *faceConfig) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithDPI sets the resolution used to convert the size to pixels.
func WithDPI(dpi float64) Option {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the outline hinting mode.
func WithHinting(h font.Hinting) Option {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithCacheLimit sets the maximum number of cached glyphs.
// A value of 0 disables the limit.
func WithCacheLimit(n int) Option {
	return func(c *faceConfig) {
		c.cacheLimit = n
	}
}

// WithShaper replaces kern-table kerning with k.
//
// Example:
//
//	shaper, _ := text.NewGoTextShaper(goregular.TTF, 16)
//	face, _ := text.DefaultFace(text.WithShaper(shaper))
func WithShaper(k Kerner) Option {
	return func(c *faceConfig) {
		c.kerner = k
	}
}
