// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "strconv"

// Point is an integer pixel coordinate.
//
// Point is a value type; two points are equal when both coordinates match,
// so points can be compared with == and used as map keys.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by the offset q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Coordinates returns the point as an (x, y) pair.
func (p Point) Coordinates() (int, int) {
	return p.X, p.Y
}

// String formats the point as "x\ty".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "\t" + strconv.Itoa(p.Y)
}

// Translate returns a new slice with every point moved by offset.
// The input slice is not modified.
func Translate(points []Point, offset Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Add(offset)
	}
	return out
}

// Coords converts points to plain coordinate pairs.
func Coords(points []Point) [][2]int {
	if points == nil {
		return nil
	}
	out := make([][2]int, len(points))
	for i, p := range points {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
