// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Ellipse rasterizes an axis-aligned ellipse with the given radii.
//
// The result lives in the ellipse's bounding box [0, 2*xRadius] x
// [0, 2*yRadius] with the centre at (xRadius, yRadius). When filled is false
// the outline is returned; otherwise every pixel inside the ellipse.
func Ellipse(xRadius, yRadius int, filled bool) ([]Point, error) {
	if xRadius <= 0 || yRadius <= 0 {
		return nil, ErrNonPositiveRadius
	}
	if filled {
		return ellipseFill(xRadius, yRadius), nil
	}
	return ellipseOutline(xRadius, yRadius), nil
}

// Circle rasterizes a circle of radius r. It is Ellipse(r, r, filled).
func Circle(r int, filled bool) ([]Point, error) {
	return Ellipse(r, r, filled)
}

// halfWidths walks the ellipse one row at a time from the horizontal
// diameter outward and calls row(y, x0) for y = 1..yr, where x0 is the
// largest half-width whose pixel lies inside or on the ellipse at row y.
//
// The slope of the previous row bounds where the search starts, so each row
// costs a handful of comparisons. All products are int64.
func halfWidths(xr, yr int, row func(y, x0 int)) {
	rx2 := int64(xr) * int64(xr)
	ry2 := int64(yr) * int64(yr)
	limit := rx2 * ry2

	x0 := xr
	dx := 0
	for y := 1; y <= yr; y++ {
		x1 := x0 - (dx - 1)
		yy := int64(y) * int64(y) * rx2
		for x1 > 0 && int64(x1)*int64(x1)*ry2+yy > limit {
			x1--
		}
		dx = x0 - x1
		x0 = x1
		row(y, x0)
	}
}

func ellipseOutline(xr, yr int) []Point {
	out := make([]Point, 0, 2+4*yr)
	out = append(out, Point{X: 0, Y: yr}, Point{X: 2 * xr, Y: yr})
	halfWidths(xr, yr, func(y, x0 int) {
		out = append(out,
			Point{X: xr - x0, Y: yr + y},
			Point{X: xr - x0, Y: yr - y},
			Point{X: xr + x0, Y: yr + y},
			Point{X: xr + x0, Y: yr - y},
		)
	})
	return out
}

func ellipseFill(xr, yr int) []Point {
	out := make([]Point, 0, (2*xr+1)*(2*yr+1))
	for x := 0; x <= 2*xr; x++ {
		out = append(out, Point{X: x, Y: yr})
	}
	halfWidths(xr, yr, func(y, x0 int) {
		for x := xr - x0; x <= xr+x0; x++ {
			out = append(out, Point{X: x, Y: yr - y}, Point{X: x, Y: yr + y})
		}
	})
	return out
}
