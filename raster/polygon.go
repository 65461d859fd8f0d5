// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// TriangleOutline returns the edges p1→p2, p2→p3 and p3→p1, each
// rasterized with Line, concatenated in that order. Each corner appears
// twice, once as the end of one edge and once as the start of the next.
func TriangleOutline(p1, p2, p3 Point) []Point {
	a := Line(p1, p2)
	b := Line(p2, p3)
	c := Line(p3, p1)
	out := make([]Point, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	return append(out, c...)
}

// TriangleFill returns every pixel of the solid triangle p1 p2 p3, one
// horizontal span per row from the topmost row to the bottommost.
//
// The boundary of every row comes from the same Line rasterization that
// TriangleOutline uses, so the fill always covers the outline. Corners may
// be given in any coordinates; rows are indexed from the bounding box top.
// Collinear corners return ErrInvalidGeometry.
func TriangleFill(p1, p2, p3 Point) ([]Point, error) {
	if Collinear(p1, p2, p3) {
		return nil, ErrInvalidGeometry
	}

	top := min(p1.Y, p2.Y, p3.Y)
	bottom := max(p1.Y, p2.Y, p3.Y)
	table := newSpanTable(top, bottom)
	for _, e := range [...]edge{newEdge(p1, p2), newEdge(p2, p3), newEdge(p3, p1)} {
		table.addEdge(e)
	}

	var out []Point
	for i, s := range table.rows {
		y := top + i
		out = append(out, Horizontal(Point{X: s.x0, Y: y}, Point{X: s.x1, Y: y})...)
	}
	return out, nil
}

// Collinear reports whether the three points lie on one line.
func Collinear(p1, p2, p3 Point) bool {
	ax, ay := int64(p2.X-p1.X), int64(p2.Y-p1.Y)
	bx, by := int64(p3.X-p1.X), int64(p3.Y-p1.Y)
	return ax*by-ay*bx == 0
}
