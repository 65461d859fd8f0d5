// Package canvas provides a monochrome pixel buffer that rendered shapes
// can be plotted into and exported as PNG or text.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/gogpu/gfx/raster"
)

// Pixmap is a width x height grid of on/off pixels. (0,0) is the top-left
// pixel and y grows downward.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // 0 or 0xFF, one byte per pixel
}

// New creates a cleared pixmap. Negative dimensions are treated as 0.
func New(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

func (p *Pixmap) inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Set turns on the pixel at (x, y) and reports whether it lies inside the
// pixmap.
func (p *Pixmap) Set(x, y int) bool {
	if !p.inside(x, y) {
		return false
	}
	p.data[y*p.width+x] = 0xFF
	return true
}

// Get reports whether the pixel at (x, y) is on. Outside pixels are off.
func (p *Pixmap) Get(x, y int) bool {
	return p.inside(x, y) && p.data[y*p.width+x] != 0
}

// Plot turns on every point and returns how many fell outside the pixmap.
func (p *Pixmap) Plot(points []raster.Point) (dropped int) {
	for _, pt := range points {
		if !p.Set(pt.X, pt.Y) {
			dropped++
		}
	}
	return dropped
}

// Count returns the number of pixels that are on.
func (p *Pixmap) Count() int {
	n := 0
	for _, v := range p.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear turns every pixel off.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// ToImage converts the pixmap to an image.Gray with white pixels on black.
func (p *Pixmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.inside(x, y) {
		return color.Gray{}
	}
	return color.Gray{Y: p.data[y*p.width+x]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.GrayModel
}

// Rows returns the pixmap as text, one string per row, with '#' for on
// and '.' for off.
func (p *Pixmap) Rows() []string {
	rows := make([]string, p.height)
	buf := make([]byte, p.width)
	for y := range rows {
		for x := 0; x < p.width; x++ {
			buf[x] = '.'
			if p.data[y*p.width+x] != 0 {
				buf[x] = '#'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// String returns Rows joined by newlines, with a trailing newline.
func (p *Pixmap) String() string {
	if p.height == 0 {
		return ""
	}
	return strings.Join(p.Rows(), "\n") + "\n"
}
