package scene

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/internal/parallel"
)

// Render builds the scene and plots every shape into a new pixmap of the
// scene's size. Pixels outside the canvas are dropped; the returned count
// says how many. Text that the font engine cannot render is an error.
//
// Shapes are rasterized concurrently and plotted in scene order.
func (s *Scene) Render() (*canvas.Pixmap, int, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, 0, fmt.Errorf("%w: %dx%d", ErrCanvasSize, s.Width, s.Height)
	}
	shapes, err := s.Build()
	if err != nil {
		return nil, 0, err
	}

	type result struct {
		pts []gfx.Point
		err error
	}
	pool := parallel.NewPool(min(len(shapes), runtime.GOMAXPROCS(0)))
	defer pool.Close()
	results := parallel.Map(pool, len(shapes), func(i int) result {
		pts, err := rasterize(shapes[i])
		return result{pts, err}
	})

	pm := canvas.New(s.Width, s.Height)
	dropped := 0
	for i, r := range results {
		if r.err != nil {
			return nil, 0, fmt.Errorf("scene: shape %d (%s): %w", i, shapes[i].Kind(), r.err)
		}
		dropped += pm.Plot(r.pts)
	}
	if dropped > 0 {
		gfx.Logger().Debug("scene: pixels outside canvas", slog.Int("dropped", dropped))
	}
	return pm, dropped, nil
}

// Plot draws one shape into pm and returns how many of its pixels fell
// outside. Text is rasterized with its error surfaced instead of logged.
func Plot(pm *canvas.Pixmap, shape gfx.Renderable) (int, error) {
	pts, err := rasterize(shape)
	if err != nil {
		return 0, err
	}
	return pm.Plot(pts), nil
}

func rasterize(shape gfx.Renderable) ([]gfx.Point, error) {
	if t, ok := shape.(gfx.Text); ok {
		return t.Rasterize()
	}
	return shape.Render(), nil
}
