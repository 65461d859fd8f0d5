package gfx

import "github.com/gogpu/gfx/raster"

// Ellipse is an axis-aligned ellipse. Origin is the top-left corner of its
// bounding box, which spans 2*XRadius+1 by 2*YRadius+1 pixels.
type Ellipse struct {
	fillFlag
	origin           Point
	xRadius, yRadius int
}

// NewEllipse returns an ellipse with the given horizontal and vertical radii.
func NewEllipse(xRadius, yRadius int, opts ...Option) (Ellipse, error) {
	if err := positive("ellipse", "xRadius", xRadius); err != nil {
		return Ellipse{}, err
	}
	if err := positive("ellipse", "yRadius", yRadius); err != nil {
		return Ellipse{}, err
	}
	o := applyOptions(opts)
	return Ellipse{
		fillFlag: fillFlag{filled: o.filled},
		origin:   o.origin,
		xRadius:  xRadius,
		yRadius:  yRadius,
	}, nil
}

// NewEllipseBox returns the ellipse inscribed in a width x height box.
// The radii are width/2 and height/2, so both sides must be at least 2.
func NewEllipseBox(width, height int, opts ...Option) (Ellipse, error) {
	if width/2 <= 0 {
		return Ellipse{}, &ConstructionError{Shape: "ellipse", Param: "width", Value: width, Err: ErrNonPositive}
	}
	if height/2 <= 0 {
		return Ellipse{}, &ConstructionError{Shape: "ellipse", Param: "height", Value: height, Err: ErrNonPositive}
	}
	return NewEllipse(width/2, height/2, opts...)
}

// Origin implements Renderable.
func (e Ellipse) Origin() Point { return e.origin }

// Kind implements Renderable.
func (Ellipse) Kind() Kind { return KindEllipse }

// XRadius returns the horizontal radius.
func (e Ellipse) XRadius() int { return e.xRadius }

// YRadius returns the vertical radius.
func (e Ellipse) YRadius() int { return e.yRadius }

// SetRadii changes both radii. On error the ellipse is unchanged.
func (e *Ellipse) SetRadii(xRadius, yRadius int) error {
	if err := positive("ellipse", "xRadius", xRadius); err != nil {
		return err
	}
	if err := positive("ellipse", "yRadius", yRadius); err != nil {
		return err
	}
	e.xRadius, e.yRadius = xRadius, yRadius
	return nil
}

// Fill makes e render its interior.
func (e *Ellipse) Fill() { e.setFilled() }

// Filled returns a filled copy of e.
func (e Ellipse) Filled() Ellipse {
	e.setFilled()
	return e
}

// Render implements Renderable.
func (e Ellipse) Render() []Point {
	// radii are validated on every write
	local, _ := raster.Ellipse(e.xRadius, e.yRadius, e.filled)
	return place(KindEllipse, e.origin, e.filled, local)
}

// Circle is an Ellipse with equal radii. Origin is the top-left corner of
// its bounding box.
type Circle struct {
	fillFlag
	origin Point
	radius int
}

// NewCircle returns a circle of the given radius.
func NewCircle(radius int, opts ...Option) (Circle, error) {
	if err := positive("circle", "radius", radius); err != nil {
		return Circle{}, err
	}
	o := applyOptions(opts)
	return Circle{fillFlag: fillFlag{filled: o.filled}, origin: o.origin, radius: radius}, nil
}

// NewCircleWidth returns the circle inscribed in a width x width box.
// The radius is width/2.
func NewCircleWidth(width int, opts ...Option) (Circle, error) {
	if width/2 <= 0 {
		return Circle{}, &ConstructionError{Shape: "circle", Param: "width", Value: width, Err: ErrNonPositive}
	}
	return NewCircle(width/2, opts...)
}

// Origin implements Renderable.
func (c Circle) Origin() Point { return c.origin }

// Kind implements Renderable.
func (Circle) Kind() Kind { return KindCircle }

// Radius returns the radius.
func (c Circle) Radius() int { return c.radius }

// SetRadius changes the radius. Non-positive values are rejected.
func (c *Circle) SetRadius(radius int) error {
	if err := positive("circle", "radius", radius); err != nil {
		return err
	}
	c.radius = radius
	return nil
}

// Fill makes c render its interior.
func (c *Circle) Fill() { c.setFilled() }

// Filled returns a filled copy of c.
func (c Circle) Filled() Circle {
	c.setFilled()
	return c
}

// Render implements Renderable.
func (c Circle) Render() []Point {
	local, _ := raster.Circle(c.radius, c.filled)
	return place(KindCircle, c.origin, c.filled, local)
}
