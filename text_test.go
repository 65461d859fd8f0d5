package gfx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/gfx/text"
)

type stubEngine struct {
	glyphs []text.Glyph
	err    error
}

func (e stubEngine) Glyphs(string) ([]text.Glyph, error) { return e.glyphs, e.err }

func dot() text.Bitmap {
	b := text.NewBitmap(1, 1)
	b.Set(0, 0)
	return b
}

func TestTextPlacesGlyphs(t *testing.T) {
	engine := stubEngine{glyphs: []text.Glyph{
		{Rune: 'a', Bitmap: dot(), Advance: 3, BaselineOffset: 2},
		{Rune: 'b', Bitmap: dot(), Advance: 3, Kerning: 1},
	}}
	txt, err := NewText("ab", engine, At(Pt(10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	if txt.Kind() != KindText || txt.String() != "ab" {
		t.Errorf("Kind/String = %v/%q", txt.Kind(), txt.String())
	}

	want := []Point{Pt(10, 12), Pt(14, 10)}
	got, err := txt.Rasterize()
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rasterize mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, txt.Render()); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEngineFailure(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	txt, err := NewText("☃", stubEngine{err: &text.MissingGlyphError{Rune: '☃'}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := txt.Rasterize(); !errors.Is(err, text.ErrNoGlyph) {
		t.Errorf("Rasterize error = %v, want ErrNoGlyph", err)
	}
	if pts := txt.Render(); pts != nil {
		t.Errorf("Render = %v, want nil", pts)
	}
	if !strings.Contains(buf.String(), "text render failed") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestTextDefaultEngine(t *testing.T) {
	txt, err := NewText("Hi", nil)
	if err != nil {
		t.Fatalf("NewText: %v", err)
	}
	engine, err := DefaultEngine()
	if err != nil {
		t.Fatal(err)
	}
	if txt.Engine() != engine {
		t.Error("nil engine did not select DefaultEngine")
	}
	pts, err := txt.Rasterize()
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if len(pts) == 0 {
		t.Fatal("default engine produced no pixels")
	}
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 {
			t.Errorf("pixel %v left the line box", p)
		}
	}
}
