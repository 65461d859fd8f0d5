package text

import (
	"errors"
	"strconv"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoGlyph is returned when the font engine cannot render a rune.
	ErrNoGlyph = errors.New("text: no glyph for rune")

	// ErrBitmapSize is returned when a bitmap's buffer is smaller than
	// Rows*Pitch bytes or its Pitch cannot hold Width bits.
	ErrBitmapSize = errors.New("text: bitmap buffer too small")
)

// MissingGlyphError is returned when a rune has no renderable glyph.
type MissingGlyphError struct {
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return "text: no glyph for rune " + strconv.QuoteRune(e.Rune)
}

func (e *MissingGlyphError) Unwrap() error {
	return ErrNoGlyph
}
