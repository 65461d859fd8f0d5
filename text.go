package gfx

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gfx/text"
)

var (
	defaultEngineOnce sync.Once
	defaultEngine     *text.Face
	defaultEngineErr  error
)

// DefaultEngine returns the shared Go Regular face used by NewText when no
// engine is given. It is created on first use.
func DefaultEngine() (text.Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = text.DefaultFace()
	})
	if defaultEngineErr != nil {
		return nil, defaultEngineErr
	}
	return defaultEngine, nil
}

// Text is a string drawn with a font engine. Origin is the top-left corner
// of the line box; glyphs hang below it by their baseline offsets.
type Text struct {
	origin Point
	s      string
	engine text.Engine
}

// NewText returns a text shape for s. A nil engine selects DefaultEngine.
// AsFilled is ignored.
func NewText(s string, engine text.Engine, opts ...Option) (Text, error) {
	if engine == nil {
		var err error
		if engine, err = DefaultEngine(); err != nil {
			return Text{}, fmt.Errorf("gfx: text: %w", err)
		}
	}
	o := applyOptions(opts)
	return Text{origin: o.origin, s: s, engine: engine}, nil
}

// Origin implements Renderable.
func (t Text) Origin() Point { return t.origin }

// Kind implements Renderable.
func (Text) Kind() Kind { return KindText }

// String returns the text being drawn.
func (t Text) String() string { return t.s }

// Engine returns the font engine.
func (t Text) Engine() text.Engine { return t.engine }

// Rasterize renders the text, returning the engine's error if a glyph
// cannot be produced.
func (t Text) Rasterize() ([]Point, error) {
	local, err := text.Render(t.engine, t.s)
	if err != nil {
		return nil, err
	}
	return place(KindText, t.origin, false, local), nil
}

// Render implements Renderable. Engine failures are logged at warn level
// and yield no pixels; use Rasterize to observe them.
func (t Text) Render() []Point {
	pts, err := t.Rasterize()
	if err != nil {
		Logger().Warn("gfx: text render failed",
			slog.String("text", t.s),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return pts
}
