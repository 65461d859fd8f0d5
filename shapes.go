package gfx

// Kind identifies the concrete variant behind a Renderable.
type Kind uint8

const (
	KindLine Kind = iota
	KindHorizontalLine
	KindVerticalLine
	KindObliqueLine
	KindRectangle
	KindSquare
	KindCircle
	KindEllipse
	KindTriangle
	KindText
)

var kindNames = [...]string{
	KindLine:           "line",
	KindHorizontalLine: "horizontal-line",
	KindVerticalLine:   "vertical-line",
	KindObliqueLine:    "oblique-line",
	KindRectangle:      "rectangle",
	KindSquare:         "square",
	KindCircle:         "circle",
	KindEllipse:        "ellipse",
	KindTriangle:       "triangle",
	KindText:           "text",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Renderable is implemented by every shape.
//
// Render returns the shape's pixels in canvas coordinates, fully
// materialized. The slice is newly allocated on every call.
type Renderable interface {
	Origin() Point
	Render() []Point
	Kind() Kind
}

// Shape is any renderable value.
type Shape = Renderable

// Fillable is implemented by pointers to closed shapes.
//
// Fill sets the flag on the receiver; Filled returns a filled copy and
// leaves the receiver unchanged.
type Fillable[T any] interface {
	Fill()
	Filled() T
	IsFilled() bool
}

// fillFlag carries the outline/fill state shared by closed shapes.
type fillFlag struct {
	filled bool
}

// IsFilled reports whether the shape renders its interior.
func (f fillFlag) IsFilled() bool {
	return f.filled
}

func (f *fillFlag) setFilled() {
	f.filled = true
}

// place translates local-frame pixels by origin; the last step of every
// closed shape's Render.
func place(kind Kind, origin Point, filled bool, local []Point) []Point {
	out := Translate(local, origin)
	logRender(kind, origin, filled, len(out))
	return out
}
