package text

import (
	"fmt"

	"github.com/gogpu/gfx/raster"
)

// Engine produces glyphs for a string. Face is the standard implementation.
type Engine interface {
	Glyphs(s string) ([]Glyph, error)
}

// Place returns the set pixels of glyphs laid out left to right.
//
// The pen starts at x = 0. A set bit at column c, row r of glyph g becomes
// the point (c + pen + g.Kerning, r + g.BaselineOffset); the pen then moves
// by g.Advance. Every bit of every Pitch byte is inspected.
func Place(glyphs []Glyph) ([]raster.Point, error) {
	var out []raster.Point
	pen := 0
	for i, g := range glyphs {
		b := g.Bitmap
		if err := b.check(); err != nil {
			return nil, fmt.Errorf("glyph %d (%q): %w", i, g.Rune, err)
		}
		dx := pen + g.Kerning
		for row := 0; row < b.Rows; row++ {
			line := b.Buffer[row*b.Pitch : (row+1)*b.Pitch]
			for j, bits := range line {
				if bits == 0 {
					continue
				}
				for bit := 0; bit < 8; bit++ {
					if bits&(0x80>>bit) != 0 {
						out = append(out, raster.Pt(j*8+bit+dx, row+g.BaselineOffset))
					}
				}
			}
		}
		pen += g.Advance
	}
	return out, nil
}

// Render asks e for the glyphs of s and places them.
func Render(e Engine, s string) ([]raster.Point, error) {
	glyphs, err := e.Glyphs(s)
	if err != nil {
		return nil, err
	}
	return Place(glyphs)
}
