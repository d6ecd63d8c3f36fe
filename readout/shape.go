package readout

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	gtlang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper measures text with HarfBuzz shaping, so kerning and ligatures count
// toward the width. It is not safe for concurrent use.
type shaper struct {
	font *gtfont.Font
	hb   shaping.HarfbuzzShaper
	lang gtlang.Language
}

func newShaper(data []byte, lang string) (*shaper, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("readout: failed to parse font for shaping: %w", err)
	}
	return &shaper{font: face.Font, lang: gtlang.NewLanguage(lang)}, nil
}

// advance returns the shaped advance of text at size pixels.
func (s *shaper) advance(text string, size float64) fixed.Int26_6 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(s.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  s.lang,
	})
	return out.Advance
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) gtlang.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return gtlang.LookupScript(r)
	}
	return gtlang.Latin
}
