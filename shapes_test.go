package gfx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	_ Renderable = Line{}
	_ Renderable = HorizontalLine{}
	_ Renderable = VerticalLine{}
	_ Renderable = ObliqueLine{}
	_ Renderable = Text{}

	_ Fillable[Rectangle] = (*Rectangle)(nil)
	_ Fillable[Square]    = (*Square)(nil)
	_ Fillable[Circle]    = (*Circle)(nil)
	_ Fillable[Ellipse]   = (*Ellipse)(nil)
	_ Fillable[Triangle]  = (*Triangle)(nil)
)

func set(pts []Point) map[Point]bool {
	m := make(map[Point]bool, len(pts))
	for _, p := range pts {
		m[p] = true
	}
	return m
}

func bounds(pts []Point) (minP, maxP Point) {
	minP, maxP = pts[0], pts[0]
	for _, p := range pts[1:] {
		minP.X, minP.Y = min(minP.X, p.X), min(minP.Y, p.Y)
		maxP.X, maxP.Y = max(maxP.X, p.X), max(maxP.Y, p.Y)
	}
	return minP, maxP
}

func TestNewLineKind(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		want     LineKind
	}{
		{"horizontal", Pt(0, 0), Pt(5, 0), LineHorizontal},
		{"horizontal leftward", Pt(5, 2), Pt(-1, 2), LineHorizontal},
		{"vertical", Pt(3, 0), Pt(3, 7), LineVertical},
		{"oblique", Pt(0, 0), Pt(5, 3), LineOblique},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLine(tt.from, tt.to)
			if err != nil {
				t.Fatalf("NewLine: %v", err)
			}
			if l.LineKind() != tt.want {
				t.Errorf("LineKind() = %v, want %v", l.LineKind(), tt.want)
			}
			pts := l.Render()
			if pts[0] != tt.from || pts[len(pts)-1] != tt.to {
				t.Errorf("Render runs %v..%v, want %v..%v", pts[0], pts[len(pts)-1], tt.from, tt.to)
			}
		})
	}
}

func TestNewLineZeroLength(t *testing.T) {
	_, err := NewLine(Pt(2, 2), Pt(2, 2))
	if !errors.Is(err, ErrZeroLength) {
		t.Fatalf("error = %v, want ErrZeroLength", err)
	}
	var ce *ConstructionError
	if !errors.As(err, &ce) || ce.Shape != "line" {
		t.Errorf("error = %#v, want *ConstructionError for line", err)
	}
}

func TestLineWidthHeight(t *testing.T) {
	l, err := NewLineWidth(Pt(1, 1), 4)
	if err != nil {
		t.Fatal(err)
	}
	if l.End() != Pt(5, 1) || l.LineKind() != LineHorizontal || len(l.Render()) != 5 {
		t.Errorf("NewLineWidth = %v→%v (%v), %d points", l.Origin(), l.End(), l.LineKind(), len(l.Render()))
	}

	l, err = NewLineHeight(Pt(1, 1), 3)
	if err != nil {
		t.Fatal(err)
	}
	if l.End() != Pt(1, 4) || l.LineKind() != LineVertical || len(l.Render()) != 4 {
		t.Errorf("NewLineHeight = %v→%v (%v), %d points", l.Origin(), l.End(), l.LineKind(), len(l.Render()))
	}

	if _, err := NewLineWidth(Pt(0, 0), 0); !errors.Is(err, ErrNonPositive) {
		t.Errorf("NewLineWidth(0) error = %v, want ErrNonPositive", err)
	}
	if _, err := NewLineHeight(Pt(0, 0), -2); !errors.Is(err, ErrNonPositive) {
		t.Errorf("NewLineHeight(-2) error = %v, want ErrNonPositive", err)
	}
}

func TestLineEqual(t *testing.T) {
	a, _ := NewLine(Pt(0, 0), Pt(4, 2))
	b, _ := NewLine(Pt(4, 2), Pt(0, 0))
	c, _ := NewLine(Pt(0, 0), Pt(4, 3))
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("reversed lines should be equal")
	}
	if a.Equal(c) {
		t.Error("different lines reported equal")
	}
}

func TestLineSymmetric(t *testing.T) {
	a, _ := NewLine(Pt(-3, 1), Pt(8, 5))
	b, _ := NewLine(Pt(8, 5), Pt(-3, 1))
	if diff := cmp.Diff(set(a.Render()), set(b.Render())); diff != "" {
		t.Errorf("reversed line covers different pixels (-fwd +rev):\n%s", diff)
	}
}

func TestAxisLineShapes(t *testing.T) {
	h, err := NewHorizontalLine(Pt(2, 3), 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(2, 3), Pt(3, 3), Pt(4, 3), Pt(5, 3), Pt(6, 3)}
	if diff := cmp.Diff(want, h.Render()); diff != "" {
		t.Errorf("HorizontalLine mismatch (-want +got):\n%s", diff)
	}

	// The end's row is ignored.
	h = NewHorizontalLineTo(Pt(2, 3), Pt(0, 9))
	want = []Point{Pt(2, 3), Pt(1, 3), Pt(0, 3)}
	if diff := cmp.Diff(want, h.Render()); diff != "" {
		t.Errorf("HorizontalLineTo mismatch (-want +got):\n%s", diff)
	}
	if got := NewHorizontalLineTo(Pt(1, 1), Pt(1, 1)).Render(); len(got) != 1 {
		t.Errorf("single pixel horizontal line rendered %d points", len(got))
	}

	v, err := NewVerticalLine(Pt(0, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	want = []Point{Pt(0, 0), Pt(0, 1), Pt(0, 2)}
	if diff := cmp.Diff(want, v.Render()); diff != "" {
		t.Errorf("VerticalLine mismatch (-want +got):\n%s", diff)
	}
	v = NewVerticalLineTo(Pt(4, 2), Pt(-7, 0))
	want = []Point{Pt(4, 2), Pt(4, 1), Pt(4, 0)}
	if diff := cmp.Diff(want, v.Render()); diff != "" {
		t.Errorf("VerticalLineTo mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewHorizontalLine(Pt(0, 0), 0); !errors.Is(err, ErrNonPositive) {
		t.Errorf("NewHorizontalLine(0) error = %v", err)
	}
	if _, err := NewVerticalLine(Pt(0, 0), -1); !errors.Is(err, ErrNonPositive) {
		t.Errorf("NewVerticalLine(-1) error = %v", err)
	}
}

func TestObliqueLineShape(t *testing.T) {
	o := NewObliqueLine(Pt(0, 0), Pt(3, 3))
	want := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	if diff := cmp.Diff(want, o.Render()); diff != "" {
		t.Errorf("diagonal mismatch (-want +got):\n%s", diff)
	}
	if got := NewObliqueLine(Pt(5, 5), Pt(5, 5)).Render(); len(got) != 1 || got[0] != Pt(5, 5) {
		t.Errorf("degenerate oblique line = %v, want [(5,5)]", got)
	}
	if got := NewObliqueLine(Pt(0, 1), Pt(3, 1)).Render(); len(got) != 4 {
		t.Errorf("axis-aligned oblique line rendered %d points, want 4", len(got))
	}
}

func TestRectangle(t *testing.T) {
	r, err := NewRectangle(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(0, 0), Pt(1, 0), Pt(2, 0), // top
		Pt(2, 0), Pt(2, 1), // right
		Pt(2, 1), Pt(1, 1), Pt(0, 1), // bottom
		Pt(0, 1), Pt(0, 0), // left
	}
	if diff := cmp.Diff(want, r.Render()); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}

	filled := r.Filled()
	if r.IsFilled() {
		t.Error("Filled() modified the receiver")
	}
	want = []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(0, 1), Pt(1, 1), Pt(2, 1)}
	if diff := cmp.Diff(want, filled.Render()); diff != "" {
		t.Errorf("fill mismatch (-want +got):\n%s", diff)
	}

	r.Fill()
	if !r.IsFilled() {
		t.Error("Fill() did not set the flag")
	}
}

func TestRectangleSetters(t *testing.T) {
	r, _ := NewRectangle(4, 4)
	if err := r.SetWidth(0); !errors.Is(err, ErrNonPositive) {
		t.Errorf("SetWidth(0) error = %v", err)
	}
	if err := r.SetHeight(-1); !errors.Is(err, ErrNonPositive) {
		t.Errorf("SetHeight(-1) error = %v", err)
	}
	if r.Width() != 4 || r.Height() != 4 {
		t.Errorf("failed setters changed size to %dx%d", r.Width(), r.Height())
	}
	if err := r.SetWidth(6); err != nil || r.Width() != 6 {
		t.Errorf("SetWidth(6) = %v, width %d", err, r.Width())
	}
	if err := r.SetHeight(1); err != nil || r.Height() != 1 {
		t.Errorf("SetHeight(1) = %v, height %d", err, r.Height())
	}
}

func TestSquare(t *testing.T) {
	s, err := NewSquare(4, At(Pt(10, 20)), AsFilled())
	if err != nil {
		t.Fatal(err)
	}
	pts := s.Render()
	if len(pts) != 16 {
		t.Fatalf("filled 4x4 square has %d points, want 16", len(pts))
	}
	lo, hi := bounds(pts)
	if lo != Pt(10, 20) || hi != Pt(13, 23) {
		t.Errorf("bounds = %v..%v, want (10,20)..(13,23)", lo, hi)
	}

	if err := s.SetSide(0); !errors.Is(err, ErrNonPositive) {
		t.Errorf("SetSide(0) error = %v", err)
	}
	if _, err := NewSquare(-3); !errors.Is(err, ErrNonPositive) {
		t.Errorf("NewSquare(-3) error = %v", err)
	}

	one, _ := NewSquare(1)
	if got := set(one.Render()); len(got) != 1 || !got[Pt(0, 0)] {
		t.Errorf("1x1 square covers %v", got)
	}
}

func TestCircle(t *testing.T) {
	c, err := NewCircle(3)
	if err != nil {
		t.Fatal(err)
	}
	outline := c.Render()
	lo, hi := bounds(outline)
	if lo != Pt(0, 0) || hi != Pt(6, 6) {
		t.Errorf("bounds = %v..%v, want (0,0)..(6,6)", lo, hi)
	}
	got := set(outline)
	for _, p := range outline {
		if !got[Pt(6-p.X, p.Y)] || !got[Pt(p.X, 6-p.Y)] {
			t.Errorf("outline not symmetric about the centre at %v", p)
		}
	}

	fill := set(c.Filled().Render())
	for p := range got {
		if !fill[p] {
			t.Errorf("fill misses outline pixel %v", p)
		}
	}

	w, err := NewCircleWidth(7)
	if err != nil || w.Radius() != 3 {
		t.Errorf("NewCircleWidth(7) = radius %d, %v; want 3", w.Radius(), err)
	}
	if _, err := NewCircleWidth(1); !errors.Is(err, ErrNonPositive) {
		t.Errorf("NewCircleWidth(1) error = %v", err)
	}
	if err := c.SetRadius(0); !errors.Is(err, ErrNonPositive) || c.Radius() != 3 {
		t.Errorf("SetRadius(0) = %v, radius now %d", err, c.Radius())
	}
}

func TestEllipseBox(t *testing.T) {
	e, err := NewEllipseBox(4, 6)
	if err != nil {
		t.Fatal(err)
	}
	if e.XRadius() != 2 || e.YRadius() != 3 {
		t.Fatalf("radii = %d,%d; want 2,3", e.XRadius(), e.YRadius())
	}
	pts := set(e.Render())
	for _, p := range []Point{Pt(0, 3), Pt(4, 3), Pt(2, 0), Pt(2, 6)} {
		if !pts[p] {
			t.Errorf("outline misses extreme %v", p)
		}
	}
	lo, hi := bounds(e.Render())
	if lo != Pt(0, 0) || hi != Pt(4, 6) {
		t.Errorf("bounds = %v..%v, want (0,0)..(4,6)", lo, hi)
	}

	_, err = NewEllipseBox(1, 6)
	var ce *ConstructionError
	if !errors.As(err, &ce) || ce.Param != "width" || ce.Value != 1 {
		t.Errorf("NewEllipseBox(1, 6) error = %v", err)
	}
	if err := e.SetRadii(2, 0); !errors.Is(err, ErrNonPositive) || e.YRadius() != 3 {
		t.Errorf("SetRadii(2, 0) = %v, yRadius now %d", err, e.YRadius())
	}
}

func TestTriangle(t *testing.T) {
	tri, err := NewTriangle(Pt(0, 0), Pt(5, 0), Pt(0, -5))
	if err != nil {
		t.Fatal(err)
	}
	outline := set(tri.Render())
	for _, c := range []Point{Pt(0, 0), Pt(5, 0), Pt(0, -5)} {
		if !outline[c] {
			t.Errorf("outline misses corner %v", c)
		}
	}
	for y := -5; y <= 0; y++ {
		if !outline[Pt(0, y)] {
			t.Errorf("outline misses vertical edge pixel (0,%d)", y)
		}
	}

	fill := tri.Filled().Render()
	filled := set(fill)
	for p := range outline {
		if !filled[p] {
			t.Errorf("fill misses outline pixel %v", p)
		}
	}
	if len(filled) != 21 {
		t.Errorf("fill covers %d pixels, want 21", len(filled))
	}

	moved, _ := NewTriangle(Pt(0, 0), Pt(5, 0), Pt(0, -5), At(Pt(10, 10)))
	want := Translate(tri.Render(), Pt(10, 10))
	if diff := cmp.Diff(want, moved.Render()); diff != "" {
		t.Errorf("translated outline mismatch (-want +got):\n%s", diff)
	}
}

func TestTriangleCollinear(t *testing.T) {
	_, err := NewTriangle(Pt(0, 0), Pt(2, 2), Pt(5, 5))
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("error = %v, want ErrInvalidGeometry", err)
	}
	if got := err.Error(); got != "gfx: triangle: degenerate triangle" {
		t.Errorf("Error() = %q", got)
	}
}

func TestConstructionErrorMessage(t *testing.T) {
	_, err := NewCircle(0)
	if got := err.Error(); got != "gfx: circle radius=0: dimension must be positive" {
		t.Errorf("Error() = %q", got)
	}
	_, err = NewRectangle(3, -1)
	var ce *ConstructionError
	if !errors.As(err, &ce) || ce.Shape != "rectangle" || ce.Param != "height" || ce.Value != -1 {
		t.Errorf("NewRectangle(3, -1) error = %#v", err)
	}
}

func TestOriginTranslation(t *testing.T) {
	shapes := []func(...Option) (Renderable, error){
		func(o ...Option) (Renderable, error) { return NewRectangle(3, 5, o...) },
		func(o ...Option) (Renderable, error) { return NewSquare(4, o...) },
		func(o ...Option) (Renderable, error) { return NewCircle(5, o...) },
		func(o ...Option) (Renderable, error) { return NewEllipse(4, 2, o...) },
		func(o ...Option) (Renderable, error) { return NewTriangle(Pt(0, 0), Pt(4, 1), Pt(1, 6), o...) },
	}
	offset := Pt(-7, 12)
	for _, mk := range shapes {
		for _, filled := range []bool{false, true} {
			opts := []Option{}
			if filled {
				opts = append(opts, AsFilled())
			}
			local, err := mk(opts...)
			if err != nil {
				t.Fatal(err)
			}
			placed, _ := mk(append(opts, At(offset))...)
			if placed.Origin() != offset {
				t.Errorf("%v: Origin() = %v, want %v", placed.Kind(), placed.Origin(), offset)
			}
			want := Translate(local.Render(), offset)
			if diff := cmp.Diff(want, placed.Render()); diff != "" {
				t.Errorf("%v filled=%v: translated render mismatch (-want +got):\n%s", placed.Kind(), filled, diff)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	if KindObliqueLine.String() != "oblique-line" || KindText.String() != "text" {
		t.Errorf("unexpected kind names %q, %q", KindObliqueLine, KindText)
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("Kind(200) = %q", Kind(200).String())
	}
	if LineVertical.String() != "vertical" {
		t.Errorf("LineVertical = %q", LineVertical.String())
	}
}
