package scene

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/text"
)

// Build constructs the scene's shapes in order. Constructor errors are
// wrapped with the shape's index and kind.
func (s *Scene) Build() ([]gfx.Renderable, error) {
	b := builder{font: s.Font, engines: make(map[float64]text.Engine)}
	shapes := make([]gfx.Renderable, 0, len(s.Shapes))
	for i, spec := range s.Shapes {
		shape, err := b.build(spec)
		if err != nil {
			return nil, fmt.Errorf("scene: shape %d (%s): %w", i, spec.Kind, err)
		}
		shapes = append(shapes, shape)
	}
	gfx.Logger().Debug("scene: built", slog.Int("shapes", len(shapes)), slog.Int("fonts", len(b.engines)))
	return shapes, nil
}

// builder carries per-Build state: one font engine per text size.
type builder struct {
	font    string
	engines map[float64]text.Engine
}

func (b *builder) build(spec ShapeSpec) (gfx.Renderable, error) {
	origin := gfx.Pt(spec.X, spec.Y)
	opts := []gfx.Option{gfx.At(origin)}
	if spec.Filled {
		opts = append(opts, gfx.AsFilled())
	}

	switch spec.Kind {
	case "line":
		switch {
		case spec.To != nil:
			to, err := point(spec.To)
			if err != nil {
				return nil, err
			}
			return gfx.NewLine(origin, to)
		case spec.Width != 0:
			return gfx.NewLineWidth(origin, spec.Width)
		case spec.Height != 0:
			return gfx.NewLineHeight(origin, spec.Height)
		}
		return nil, fmt.Errorf("%w: line needs to, width or height", ErrInvalidShape)
	case "horizontal-line":
		return gfx.NewHorizontalLine(origin, spec.Width)
	case "vertical-line":
		return gfx.NewVerticalLine(origin, spec.Height)
	case "oblique-line":
		to, err := point(spec.To)
		if err != nil {
			return nil, err
		}
		return gfx.NewObliqueLine(origin, to), nil
	case "rectangle":
		return gfx.NewRectangle(spec.Width, spec.Height, opts...)
	case "square":
		return gfx.NewSquare(spec.Side, opts...)
	case "circle":
		if spec.Radius == 0 && spec.Width != 0 {
			return gfx.NewCircleWidth(spec.Width, opts...)
		}
		return gfx.NewCircle(spec.Radius, opts...)
	case "ellipse":
		if spec.XRadius == 0 && spec.YRadius == 0 && (spec.Width != 0 || spec.Height != 0) {
			return gfx.NewEllipseBox(spec.Width, spec.Height, opts...)
		}
		return gfx.NewEllipse(spec.XRadius, spec.YRadius, opts...)
	case "triangle":
		if len(spec.Corners) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 corners, got %d", ErrInvalidShape, len(spec.Corners))
		}
		var c [3]gfx.Point
		for i, xy := range spec.Corners {
			p, err := point(xy)
			if err != nil {
				return nil, err
			}
			c[i] = p
		}
		return gfx.NewTriangle(c[0], c[1], c[2], opts...)
	case "text":
		engine, err := b.engine(spec.Size)
		if err != nil {
			return nil, err
		}
		return gfx.NewText(spec.Text, engine, opts...)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
}

// engine returns the font engine for size, loading it on first use.
// A zero size with no font file selects gfx.DefaultEngine.
func (b *builder) engine(size float64) (text.Engine, error) {
	if e, ok := b.engines[size]; ok {
		return e, nil
	}

	var (
		e   text.Engine
		err error
	)
	switch {
	case b.font != "":
		e, err = text.LoadFace(b.font, text.WithSize(size))
	case size > 0:
		e, err = text.DefaultFace(text.WithSize(size))
	default:
		e, err = gfx.DefaultEngine()
	}
	if err != nil {
		return nil, err
	}
	b.engines[size] = e
	return e, nil
}

func point(xy []int) (gfx.Point, error) {
	if len(xy) != 2 {
		return gfx.Point{}, fmt.Errorf("%w: point needs [x, y], got %v", ErrInvalidShape, xy)
	}
	return gfx.Pt(xy[0], xy[1]), nil
}
