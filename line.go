package gfx

import "github.com/gogpu/gfx/raster"

// LineKind is the orientation of a Line, fixed at construction.
type LineKind uint8

const (
	LineOblique LineKind = iota
	LineHorizontal
	LineVertical
)

// String returns the orientation name.
func (k LineKind) String() string {
	switch k {
	case LineHorizontal:
		return "horizontal"
	case LineVertical:
		return "vertical"
	default:
		return "oblique"
	}
}

// Line is a segment between two distinct absolute points.
//
// Unlike closed shapes a Line is not translated at render time: its origin
// is its first end point.
type Line struct {
	origin Point
	end    Point
	kind   LineKind
}

// NewLine returns the segment from origin to end.
// Equal points are rejected with ErrZeroLength.
func NewLine(origin, end Point) (Line, error) {
	if origin == end {
		return Line{}, &ConstructionError{Shape: "line", Err: ErrZeroLength}
	}
	l := Line{origin: origin, end: end}
	switch {
	case origin.X == end.X:
		l.kind = LineVertical
	case origin.Y == end.Y:
		l.kind = LineHorizontal
	default:
		l.kind = LineOblique
	}
	return l, nil
}

// NewLineWidth returns a horizontal line of the given width starting at
// origin and extending right.
func NewLineWidth(origin Point, width int) (Line, error) {
	if err := positive("line", "width", width); err != nil {
		return Line{}, err
	}
	return NewLine(origin, Pt(origin.X+width, origin.Y))
}

// NewLineHeight returns a vertical line of the given height starting at
// origin and extending down.
func NewLineHeight(origin Point, height int) (Line, error) {
	if err := positive("line", "height", height); err != nil {
		return Line{}, err
	}
	return NewLine(origin, Pt(origin.X, origin.Y+height))
}

// Origin returns the first end point.
func (l Line) Origin() Point { return l.origin }

// End returns the second end point.
func (l Line) End() Point { return l.end }

// LineKind returns the orientation computed at construction.
func (l Line) LineKind() LineKind { return l.kind }

// Kind implements Renderable.
func (Line) Kind() Kind { return KindLine }

// Equal reports whether l and o connect the same two points, in either
// direction.
func (l Line) Equal(o Line) bool {
	return l.origin == o.origin && l.end == o.end ||
		l.origin == o.end && l.end == o.origin
}

// Render returns the pixels from Origin to End, both included.
func (l Line) Render() []Point {
	var out []Point
	switch l.kind {
	case LineHorizontal:
		out = raster.Horizontal(l.origin, l.end)
	case LineVertical:
		out = raster.Vertical(l.origin, l.end)
	default:
		out = raster.Oblique(l.origin, l.end)
	}
	logRender(KindLine, l.origin, false, len(out))
	return out
}
