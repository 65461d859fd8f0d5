package text

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gfx/internal/cache"
)

// Kerner computes kerning deltas for a run of text. Kerning returns one
// value per rune; the value at index i shifts rune i relative to rune i-1
// and the value at index 0 is ignored.
type Kerner interface {
	Kerning(runes []rune) ([]int, error)
}

// Face is an Engine backed by a TrueType or OpenType font at a fixed size.
//
// Glyphs are rendered to 1-bit bitmaps by thresholding the anti-aliased
// coverage mask at 50% and cached per rune. Face is safe for concurrent use.
type Face struct {
	cfg    faceConfig
	src    *opentype.Font
	ascent int
	glyphs *cache.Cache[rune, Glyph]

	// mu guards face and buf; x/image faces are not safe for concurrent use.
	mu   sync.Mutex
	face font.Face
	buf  sfnt.Buffer
}

// NewFace parses font data and prepares a face.
func NewFace(data []byte, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    cfg.size,
		DPI:     cfg.dpi,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		cfg:    cfg,
		src:    src,
		face:   face,
		ascent: face.Metrics().Ascent.Round(),
		glyphs: cache.New[rune, Glyph](cfg.cacheLimit),
	}, nil
}

// DefaultFace returns a face using the Go Regular font.
func DefaultFace(opts ...Option) (*Face, error) {
	return NewFace(goregular.TTF, opts...)
}

// LoadFace reads a font file and prepares a face.
func LoadFace(path string, opts ...Option) (*Face, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font: %w", err)
	}
	return NewFace(data, opts...)
}

// Name returns the font family name, or "" if the font has none.
func (f *Face) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.src.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Size returns the font size the face was created with.
func (f *Face) Size() float64 { return f.cfg.size }

// Ascent returns the distance from the top of a line to the baseline, in
// pixels.
func (f *Face) Ascent() int { return f.ascent }

// Glyphs implements Engine. The input is normalized to NFC first so that
// precomposed characters are used where the font has them.
//
// The returned bitmaps share storage with the face's cache and must not be
// modified.
func (f *Face) Glyphs(s string) ([]Glyph, error) {
	runes := []rune(norm.NFC.String(s))
	if len(runes) == 0 {
		return nil, nil
	}

	var kerns []int
	if f.cfg.kerner != nil {
		var err error
		if kerns, err = f.cfg.kerner.Kerning(runes); err != nil {
			return nil, fmt.Errorf("text: kerning: %w", err)
		}
		if len(kerns) != len(runes) {
			return nil, fmt.Errorf("text: kerner returned %d values for %d runes", len(kerns), len(runes))
		}
	}

	out := make([]Glyph, 0, len(runes))
	for i, r := range runes {
		g, err := f.glyphs.GetOrCreate(r, func() (Glyph, error) { return f.render(r) })
		if err != nil {
			return nil, err
		}
		if i > 0 {
			if kerns != nil {
				g.Kerning = kerns[i]
			} else {
				g.Kerning = f.kern(runes[i-1], r)
			}
		}
		out = append(out, g)
	}
	return out, nil
}

// Close releases the underlying face.
func (f *Face) Close() error {
	s := f.glyphs.Stats()
	Logger().Debug("text: face closed",
		slog.Int("glyphs", s.Len),
		slog.Uint64("hits", s.Hits),
		slog.Uint64("misses", s.Misses),
	)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Close()
}

// render rasterizes r into a monochrome glyph.
func (f *Face) render(r rune) (Glyph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if idx, err := f.src.GlyphIndex(&f.buf, r); err == nil && idx == 0 {
		Logger().Debug("text: rune not in font, using notdef glyph", slog.String("rune", string(r)))
	}

	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, &MissingGlyphError{Rune: r}
	}

	bm := NewBitmap(dr.Dx(), dr.Dy())
	for y := 0; y < bm.Rows; y++ {
		for x := 0; x < bm.Width; x++ {
			if _, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA(); a >= 0x8000 {
				bm.Set(x, y)
			}
		}
	}

	return Glyph{
		Rune:           r,
		Bitmap:         bm,
		Advance:        advance.Round(),
		BaselineOffset: f.ascent + dr.Min.Y,
	}, nil
}

// kern returns the kern-table adjustment between r0 and r1 in pixels.
func (f *Face) kern(r0, r1 rune) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Kern(r0, r1).Round()
}
