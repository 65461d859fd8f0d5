// Package gfx converts 2D shape descriptions into integer pixel coordinates.
//
// # Overview
//
// gfx is a small rasterization library for surfaces addressed one pixel at a
// time: LED matrices, framebuffers, terminal grids. A shape is a plain value
// (Line, Rectangle, Square, Circle, Ellipse, Triangle, Text) that knows its
// geometry, its placement (origin) and whether it is filled. Render returns
// the ordered list of pixels that represent it.
//
// # Quick Start
//
//	import "github.com/gogpu/gfx"
//
//	c, err := gfx.NewCircle(5, gfx.At(gfx.Pt(10, 10)))
//	if err != nil {
//	    return err
//	}
//	for _, p := range c.Filled().Render() {
//	    matrix.SetPixel(p.X, p.Y)
//	}
//
// # Architecture
//
// The algorithms live in the raster subpackage and work in a local frame
// with the shape's bounding box at (0, 0). Shapes call into raster and
// translate the result by their origin as the very last step, so the
// algorithms never see placement. Lines are the exception: they carry two
// absolute end points and are rendered in place.
//
// Glyph placement lives in the text subpackage. Fonts are decoded and
// rasterized by golang.org/x/image; gfx only positions the resulting bitmap
// bits.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Errors
//
// Constructors validate their arguments and return a *ConstructionError
// wrapping ErrNonPositive, ErrZeroLength or ErrInvalidGeometry. A shape that
// was constructed successfully always renders.
package gfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
