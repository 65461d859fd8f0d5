// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Horizontal returns every pixel from p1 to p2 along row p1.Y, both ends
// included. Only p2.X is used from the end point. When p1.X == p2.X the
// result is the single point p1.
func Horizontal(p1, p2 Point) []Point {
	if p1.X == p2.X {
		return []Point{p1}
	}
	step := 1
	if p1.X > p2.X {
		step = -1
	}
	out := make([]Point, 0, abs(p2.X-p1.X)+1)
	for x := p1.X; ; x += step {
		out = append(out, Point{X: x, Y: p1.Y})
		if x == p2.X {
			break
		}
	}
	return out
}

// Vertical returns every pixel from p1 to p2 along column p1.X, both ends
// included. Only p2.Y is used from the end point. When p1.Y == p2.Y the
// result is the single point p1.
func Vertical(p1, p2 Point) []Point {
	if p1.Y == p2.Y {
		return []Point{p1}
	}
	step := 1
	if p1.Y > p2.Y {
		step = -1
	}
	out := make([]Point, 0, abs(p2.Y-p1.Y)+1)
	for y := p1.Y; ; y += step {
		out = append(out, Point{X: p1.X, Y: y})
		if y == p2.Y {
			break
		}
	}
	return out
}

// Oblique rasterizes a sloped segment from p1 to p2.
//
// The longer axis is stepped one pixel at a time from p1 toward p2; the other
// coordinate is the value of the ideal line at that step, rounded to the
// nearest integer with ties away from zero. The value is evaluated as an
// exact fraction, so Oblique(a, b) and Oblique(b, a) produce the same pixel
// set. The last element is always p2.
//
// Axis-aligned or equal inputs are handed to Line, so every entry point in
// this package treats them the same way.
func Oblique(p1, p2 Point) []Point {
	if p1.X == p2.X || p1.Y == p2.Y {
		return Line(p1, p2)
	}

	dx := p1.X - p2.X
	dy := p1.Y - p2.Y

	// step toward p2 on each axis
	sx, sy := 1, 1
	if dx >= 0 {
		sx = -1
	}
	if dy >= 0 {
		sy = -1
	}

	var out []Point
	if abs(dy) < abs(dx) {
		out = make([]Point, 0, abs(dx)+1)
		for x := p1.X; x != p2.X; x += sx {
			out = append(out, Point{X: x, Y: lineAt(p1.X, p1.Y, p2.X, p2.Y, x)})
		}
	} else {
		out = make([]Point, 0, abs(dy)+1)
		for y := p1.Y; y != p2.Y; y += sy {
			out = append(out, Point{X: lineAt(p1.Y, p1.X, p2.Y, p2.X, y), Y: y})
		}
	}
	return append(out, p2)
}

// Line rasterizes the segment from p1 to p2, picking the vertical,
// horizontal or oblique path from coordinate equality in that order.
// Equal points yield the single point p1.
func Line(p1, p2 Point) []Point {
	switch {
	case p1 == p2:
		return []Point{p1}
	case p1.X == p2.X:
		return Vertical(p1, p2)
	case p1.Y == p2.Y:
		return Horizontal(p1, p2)
	default:
		return Oblique(p1, p2)
	}
}

// lineAt returns the minor coordinate of the line through (a1, b1) and
// (a2, b2) at major coordinate a, rounded half away from zero.
// Requires a1 != a2.
func lineAt(a1, b1, a2, b2, a int) int {
	num := int64(b1)*int64(a2-a1) + int64(b2-b1)*int64(a-a1)
	return roundDiv(num, int64(a2-a1))
}

// roundDiv returns n/d rounded to the nearest integer, ties away from zero.
func roundDiv(n, d int64) int {
	if d < 0 {
		n, d = -n, -d
	}
	if n >= 0 {
		return int((2*n + d) / (2 * d))
	}
	return -int((-2*n + d) / (2 * d))
}
