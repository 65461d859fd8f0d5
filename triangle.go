package gfx

import "github.com/gogpu/gfx/raster"

// Triangle is a polygon with three corners given in its local frame.
// Origin translates the corners at render time.
type Triangle struct {
	fillFlag
	origin     Point
	p1, p2, p3 Point
}

// NewTriangle returns the triangle with corners c1, c2, c3.
// Collinear corners are rejected with ErrInvalidGeometry.
func NewTriangle(c1, c2, c3 Point, opts ...Option) (Triangle, error) {
	if raster.Collinear(c1, c2, c3) {
		return Triangle{}, &ConstructionError{Shape: "triangle", Err: ErrInvalidGeometry}
	}
	o := applyOptions(opts)
	return Triangle{
		fillFlag: fillFlag{filled: o.filled},
		origin:   o.origin,
		p1:       c1,
		p2:       c2,
		p3:       c3,
	}, nil
}

// Origin implements Renderable.
func (t Triangle) Origin() Point { return t.origin }

// Kind implements Renderable.
func (Triangle) Kind() Kind { return KindTriangle }

// Corners returns the three corners in the local frame.
func (t Triangle) Corners() (Point, Point, Point) {
	return t.p1, t.p2, t.p3
}

// Fill makes t render its interior.
func (t *Triangle) Fill() { t.setFilled() }

// Filled returns a filled copy of t.
func (t Triangle) Filled() Triangle {
	t.setFilled()
	return t
}

// Render implements Renderable.
//
// The outline is the three edges p1→p2, p2→p3, p3→p1 concatenated; the fill
// is one span per row from the top corner down.
func (t Triangle) Render() []Point {
	if !t.filled {
		return place(KindTriangle, t.origin, false, raster.TriangleOutline(t.p1, t.p2, t.p3))
	}
	// corners are checked for collinearity at construction
	local, _ := raster.TriangleFill(t.p1, t.p2, t.p3)
	return place(KindTriangle, t.origin, true, local)
}
