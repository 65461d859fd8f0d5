// Package text places monochrome glyph bitmaps on the pixel grid.
//
// The package sits on the boundary between gfx and a font engine. A font
// engine turns each character into a Glyph: a 1-bit Bitmap plus the
// horizontal advance, the kerning delta against the previous glyph and the
// vertical offset that aligns the glyph on the baseline. Place converts the
// set bits of a glyph sequence to points.
//
// Face is the default engine. It decodes TrueType and OpenType fonts and
// renders glyphs with golang.org/x/image, falling back to the Go Regular
// font when no font data is supplied. Kerning comes from the font's kern
// table unless a Kerner such as GoTextShaper is configured.
//
// # Example usage
//
//	face, err := text.DefaultFace(text.WithSize(12))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	pts, err := text.Render(face, "Hello")
package text
