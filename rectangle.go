package gfx

import "github.com/gogpu/gfx/raster"

// Rectangle is an axis-aligned box of width x height pixels whose top-left
// pixel is Origin.
type Rectangle struct {
	fillFlag
	origin        Point
	width, height int
}

// NewRectangle returns a width x height rectangle.
func NewRectangle(width, height int, opts ...Option) (Rectangle, error) {
	if err := positive("rectangle", "width", width); err != nil {
		return Rectangle{}, err
	}
	if err := positive("rectangle", "height", height); err != nil {
		return Rectangle{}, err
	}
	o := applyOptions(opts)
	return Rectangle{
		fillFlag: fillFlag{filled: o.filled},
		origin:   o.origin,
		width:    width,
		height:   height,
	}, nil
}

// Origin implements Renderable.
func (r Rectangle) Origin() Point { return r.origin }

// Kind implements Renderable.
func (Rectangle) Kind() Kind { return KindRectangle }

// Width returns the width in pixels.
func (r Rectangle) Width() int { return r.width }

// Height returns the height in pixels.
func (r Rectangle) Height() int { return r.height }

// SetWidth changes the width. Non-positive values are rejected and leave
// the rectangle unchanged.
func (r *Rectangle) SetWidth(width int) error {
	if err := positive("rectangle", "width", width); err != nil {
		return err
	}
	r.width = width
	return nil
}

// SetHeight changes the height. Non-positive values are rejected and leave
// the rectangle unchanged.
func (r *Rectangle) SetHeight(height int) error {
	if err := positive("rectangle", "height", height); err != nil {
		return err
	}
	r.height = height
	return nil
}

// Fill makes r render its interior.
func (r *Rectangle) Fill() { r.setFilled() }

// Filled returns a filled copy of r.
func (r Rectangle) Filled() Rectangle {
	r.setFilled()
	return r
}

// Render implements Renderable.
func (r Rectangle) Render() []Point {
	return place(KindRectangle, r.origin, r.filled, boxPoints(r.width, r.height, r.filled))
}

// Square is a Rectangle with equal sides.
type Square struct {
	fillFlag
	origin Point
	side   int
}

// NewSquare returns a side x side square.
func NewSquare(side int, opts ...Option) (Square, error) {
	if err := positive("square", "side", side); err != nil {
		return Square{}, err
	}
	o := applyOptions(opts)
	return Square{fillFlag: fillFlag{filled: o.filled}, origin: o.origin, side: side}, nil
}

// Origin implements Renderable.
func (s Square) Origin() Point { return s.origin }

// Kind implements Renderable.
func (Square) Kind() Kind { return KindSquare }

// Side returns the side length in pixels.
func (s Square) Side() int { return s.side }

// SetSide changes the side length. Non-positive values are rejected.
func (s *Square) SetSide(side int) error {
	if err := positive("square", "side", side); err != nil {
		return err
	}
	s.side = side
	return nil
}

// Fill makes s render its interior.
func (s *Square) Fill() { s.setFilled() }

// Filled returns a filled copy of s.
func (s Square) Filled() Square {
	s.setFilled()
	return s
}

// Render implements Renderable.
func (s Square) Render() []Point {
	return place(KindSquare, s.origin, s.filled, boxPoints(s.side, s.side, s.filled))
}

// boxPoints covers [0, w-1] x [0, h-1]. The outline runs top, right,
// bottom, left, clockwise from (0,0); each corner appears twice.
// The fill is one span per row, top to bottom.
func boxPoints(w, h int, filled bool) []Point {
	right, bottom := w-1, h-1
	if filled {
		out := make([]Point, 0, w*h)
		for y := 0; y <= bottom; y++ {
			out = append(out, raster.Horizontal(Pt(0, y), Pt(right, y))...)
		}
		return out
	}

	out := make([]Point, 0, 2*(w+h))
	out = append(out, raster.Horizontal(Pt(0, 0), Pt(right, 0))...)
	out = append(out, raster.Vertical(Pt(right, 0), Pt(right, bottom))...)
	out = append(out, raster.Horizontal(Pt(right, bottom), Pt(0, bottom))...)
	return append(out, raster.Vertical(Pt(0, bottom), Pt(0, 0))...)
}
