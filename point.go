package gfx

import "github.com/gogpu/gfx/raster"

// Point is an integer pixel coordinate. It is the same type as raster.Point.
type Point = raster.Point

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return raster.Pt(x, y)
}

// Translate returns a copy of points moved by offset.
func Translate(points []Point, offset Point) []Point {
	return raster.Translate(points, offset)
}

// Coords converts points to (x, y) pairs.
func Coords(points []Point) [][2]int {
	return raster.Coords(points)
}
