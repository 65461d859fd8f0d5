package gfx

import "github.com/gogpu/gfx/raster"

// HorizontalLine is a row of pixels from Origin to the column of End.
// The vertical coordinate of End is ignored.
type HorizontalLine struct {
	origin Point
	end    Point
}

// NewHorizontalLine returns a horizontal line of length pixels to the right
// of origin (length+1 pixels in total, as for Line).
func NewHorizontalLine(origin Point, length int) (HorizontalLine, error) {
	if err := positive("horizontal line", "length", length); err != nil {
		return HorizontalLine{}, err
	}
	return HorizontalLine{origin: origin, end: Pt(origin.X+length, origin.Y)}, nil
}

// NewHorizontalLineTo returns the horizontal line from origin to end's column.
// A single-pixel line (same column) is allowed.
func NewHorizontalLineTo(origin, end Point) HorizontalLine {
	return HorizontalLine{origin: origin, end: end}
}

// Origin implements Renderable.
func (l HorizontalLine) Origin() Point { return l.origin }

// End returns the end point as given.
func (l HorizontalLine) End() Point { return l.end }

// Kind implements Renderable.
func (HorizontalLine) Kind() Kind { return KindHorizontalLine }

// Render implements Renderable.
func (l HorizontalLine) Render() []Point {
	out := raster.Horizontal(l.origin, Pt(l.end.X, l.origin.Y))
	logRender(KindHorizontalLine, l.origin, false, len(out))
	return out
}

// VerticalLine is a column of pixels from Origin to the row of End.
// The horizontal coordinate of End is ignored.
type VerticalLine struct {
	origin Point
	end    Point
}

// NewVerticalLine returns a vertical line of length pixels below origin.
func NewVerticalLine(origin Point, length int) (VerticalLine, error) {
	if err := positive("vertical line", "length", length); err != nil {
		return VerticalLine{}, err
	}
	return VerticalLine{origin: origin, end: Pt(origin.X, origin.Y+length)}, nil
}

// NewVerticalLineTo returns the vertical line from origin to end's row.
func NewVerticalLineTo(origin, end Point) VerticalLine {
	return VerticalLine{origin: origin, end: end}
}

// Origin implements Renderable.
func (l VerticalLine) Origin() Point { return l.origin }

// End returns the end point as given.
func (l VerticalLine) End() Point { return l.end }

// Kind implements Renderable.
func (VerticalLine) Kind() Kind { return KindVerticalLine }

// Render implements Renderable.
func (l VerticalLine) Render() []Point {
	out := raster.Vertical(l.origin, Pt(l.origin.X, l.end.Y))
	logRender(KindVerticalLine, l.origin, false, len(out))
	return out
}

// ObliqueLine is a segment rendered with the generic raster.Line, which
// accepts any pair of points, including equal ones.
type ObliqueLine struct {
	origin Point
	end    Point
}

// NewObliqueLine returns the segment from origin to end.
func NewObliqueLine(origin, end Point) ObliqueLine {
	return ObliqueLine{origin: origin, end: end}
}

// Origin implements Renderable.
func (l ObliqueLine) Origin() Point { return l.origin }

// End returns the end point.
func (l ObliqueLine) End() Point { return l.end }

// Kind implements Renderable.
func (ObliqueLine) Kind() Kind { return KindObliqueLine }

// Render implements Renderable.
func (l ObliqueLine) Render() []Point {
	out := raster.Line(l.origin, l.end)
	logRender(KindObliqueLine, l.origin, false, len(out))
	return out
}
