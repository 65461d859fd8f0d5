// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster turns lines, conics and triangles into integer pixel
// coordinates.
//
// Every function here is pure: it reads its arguments, allocates a fresh
// slice and touches no shared state, so any number of goroutines may
// rasterize at the same time. Results are fully materialized and ordered;
// the order is part of the contract and is documented per function.
//
// Conics and filled triangles work in a local frame. Ellipse places the
// bounding box at the origin; TriangleFill keeps the caller's coordinates.
// Translating into canvas space is left to the caller (see Translate).
//
// Usage:
//
//	pts := raster.Line(raster.Pt(0, 0), raster.Pt(3, 3))
//	// [(0,0) (1,1) (2,2) (3,3)]
package raster

import "errors"

var (
	// ErrNonPositiveRadius is returned when a conic radius is zero or negative.
	ErrNonPositiveRadius = errors.New("raster: radius must be positive")

	// ErrInvalidGeometry is returned when a triangle's corners are collinear
	// and enclose no area.
	ErrInvalidGeometry = errors.New("raster: degenerate triangle")
)
