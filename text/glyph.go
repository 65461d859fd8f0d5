package text

// Bitmap is a monochrome image with 1 bit per pixel.
//
// Rows are stored top to bottom, Pitch bytes each. Within a byte the most
// significant bit is the leftmost pixel. Bits past Width are padding and
// are expected to be zero.
type Bitmap struct {
	Width  int
	Rows   int
	Pitch  int
	Buffer []byte
}

// NewBitmap allocates a cleared width x rows bitmap with the minimal pitch.
func NewBitmap(width, rows int) Bitmap {
	if width < 0 {
		width = 0
	}
	if rows < 0 {
		rows = 0
	}
	pitch := (width + 7) / 8
	return Bitmap{
		Width:  width,
		Rows:   rows,
		Pitch:  pitch,
		Buffer: make([]byte, pitch*rows),
	}
}

// At reports whether the pixel at column x, row y is set.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || y >= b.Rows || x >= b.Pitch*8 {
		return false
	}
	return b.Buffer[y*b.Pitch+x/8]&(0x80>>(x%8)) != 0
}

// Set turns on the pixel at column x, row y. Out of range is a no-op.
func (b *Bitmap) Set(x, y int) {
	if x < 0 || y < 0 || y >= b.Rows || x >= b.Width {
		return
	}
	b.Buffer[y*b.Pitch+x/8] |= 0x80 >> (x % 8)
}

// check validates the buffer geometry.
func (b Bitmap) check() error {
	if b.Rows < 0 || b.Pitch < 0 || b.Pitch*8 < b.Width || len(b.Buffer) < b.Rows*b.Pitch {
		return ErrBitmapSize
	}
	return nil
}

// Glyph is one rendered character as produced by a font engine.
type Glyph struct {
	Rune   rune
	Bitmap Bitmap

	// Advance moves the pen to the next glyph, in pixels.
	Advance int

	// Kerning shifts this glyph relative to the previous one, in pixels.
	// It applies to this glyph only and does not move the pen.
	Kerning int

	// BaselineOffset is the row at which the bitmap's first row is drawn:
	// the font ascent minus the glyph's top bearing.
	BaselineOffset int
}
