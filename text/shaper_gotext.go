package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gfx/internal/cache"
)

// GoTextShaper is a Kerner that derives kerning from HarfBuzz shaping via
// go-text/typesetting. Unlike the kern table it honors GPOS pair
// positioning.
//
// The kerning of rune i is the difference between the shaped advance of
// rune i-1 in context and its advance when shaped alone. Runes that do not
// start their own cluster (ligature components, combining marks) get 0.
//
// GoTextShaper is safe for concurrent use.
type GoTextShaper struct {
	font *font.Font // read-only, safe for concurrent use
	size fixed.Int26_6

	// shaperPool pools HarfbuzzShaper instances, which are not safe for
	// concurrent use.
	shaperPool sync.Pool

	nominal *cache.Cache[rune, fixed.Int26_6]
}

// NewGoTextShaper parses font data for shaping at size pixels. size should
// match the pixel size of the Face the shaper is attached to.
func NewGoTextShaper(data []byte, size float64) (*GoTextShaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	return &GoTextShaper{
		font: face.Font,
		size: floatToFixed(size),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		nominal: cache.New[rune, fixed.Int26_6](0),
	}, nil
}

// Kerning implements Kerner.
func (s *GoTextShaper) Kerning(runes []rune) ([]int, error) {
	out := make([]int, len(runes))
	if len(runes) < 2 {
		return out, nil
	}

	advances := make([]fixed.Int26_6, len(runes))
	starts := make([]bool, len(runes))
	for _, g := range s.shape(runes).Glyphs {
		i := g.TextIndex()
		if i < 0 || i >= len(runes) {
			continue
		}
		advances[i] += g.Advance
		starts[i] = true
	}

	for i := 1; i < len(runes); i++ {
		if !starts[i-1] || !starts[i] {
			continue
		}
		nominal, _ := s.nominal.GetOrCreate(runes[i-1], func() (fixed.Int26_6, error) {
			var adv fixed.Int26_6
			for _, g := range s.shape(runes[i-1 : i]).Glyphs {
				adv += g.Advance
			}
			return adv, nil
		})
		out[i] = (advances[i-1] - nominal).Round()
	}
	return out, nil
}

// shape runs HarfBuzz over runes as a single left-to-right run.
func (s *GoTextShaper) shape(runes []rune) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      s.size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)
	return hb.Shape(input)
}

// detectScript returns the script of the first non-space rune.
// Mixed-script strings are shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
