package gfx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gogpu/gfx/raster"
)

// Sentinel errors for shape construction.
var (
	// ErrNonPositive is returned when a width, height, side or radius is
	// zero or negative.
	ErrNonPositive = errors.New("gfx: dimension must be positive")

	// ErrZeroLength is returned when a line's end points are equal.
	ErrZeroLength = errors.New("gfx: line end points must differ")

	// ErrInvalidGeometry is returned for triangles whose corners are
	// collinear.
	ErrInvalidGeometry = raster.ErrInvalidGeometry
)

// ConstructionError describes a rejected constructor or setter argument.
// Err is one of the sentinel errors above.
type ConstructionError struct {
	Shape string // "circle", "line", ...
	Param string // offending parameter, empty when the shape as a whole is invalid
	Value int
	Err   error
}

func (e *ConstructionError) Error() string {
	var b strings.Builder
	b.WriteString("gfx: ")
	b.WriteString(e.Shape)
	if e.Param != "" {
		b.WriteString(" ")
		b.WriteString(e.Param)
		b.WriteString("=")
		b.WriteString(strconv.Itoa(e.Value))
	}
	b.WriteString(": ")
	msg := e.Err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	b.WriteString(msg)
	return b.String()
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// positive returns a *ConstructionError unless v > 0.
func positive(shape, param string, v int) error {
	if v > 0 {
		return nil
	}
	return &ConstructionError{Shape: shape, Param: param, Value: v, Err: ErrNonPositive}
}
