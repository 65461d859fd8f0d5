// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// edgeDir classifies a polygon edge by the sign of its vertical extent.
type edgeDir int8

const (
	edgeFlat       edgeDir = iota // Δy == 0
	edgeAscending                 // Δy > 0
	edgeDescending                // Δy < 0
)

// edge is a directed polygon side used by the scanline filler.
type edge struct {
	from, to Point
	dir      edgeDir
}

func newEdge(from, to Point) edge {
	e := edge{from: from, to: to}
	switch dy := to.Y - from.Y; {
	case dy > 0:
		e.dir = edgeAscending
	case dy < 0:
		e.dir = edgeDescending
	}
	return e
}

// span holds the horizontal extent of one scanline.
type span struct {
	x0, x1 int
	set    bool
}

// spanTable records, per row, the left and right boundary of a polygon.
// Rows are indexed relative to the bounding box top.
type spanTable struct {
	top  int
	rows []span
}

func newSpanTable(top, bottom int) *spanTable {
	return &spanTable{top: top, rows: make([]span, bottom-top+1)}
}

// add widens row y so that it covers x.
func (t *spanTable) add(x, y int) {
	s := &t.rows[y-t.top]
	if !s.set {
		*s = span{x0: x, x1: x, set: true}
		return
	}
	if x < s.x0 {
		s.x0 = x
	}
	if x > s.x1 {
		s.x1 = x
	}
}

// addEdge accumulates the boundary pixels of e.
//
// Flat edges contribute their two end points directly. Sloped edges are
// rasterized with Line and their first point is skipped: it is the previous
// edge's last point.
func (t *spanTable) addEdge(e edge) {
	if e.dir == edgeFlat {
		t.add(e.from.X, e.from.Y)
		t.add(e.to.X, e.to.Y)
		return
	}
	pts := Line(e.from, e.to)
	for _, p := range pts[1:] {
		t.add(p.X, p.Y)
	}
}
