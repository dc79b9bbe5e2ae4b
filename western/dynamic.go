package western

import (
	"errors"
	"fmt"

	"github.com/segnokit/segno"
)

// ErrInvalidDynamic is returned when a dynamic string contains a letter
// with no SMuFL dynamic glyph.
var ErrInvalidDynamic = errors.New("western: invalid dynamic letter")

// dynamicGlyphs maps dynamic letters to their SMuFL glyphs.
var dynamicGlyphs = map[rune]string{
	'p': "dynamicPiano",
	'm': "dynamicMezzo",
	'f': "dynamicForte",
	'r': "dynamicRinforzando",
	's': "dynamicSforzando",
	'z': "dynamicZ",
	'n': "dynamicNiente",
}

// Dynamic is a dynamic marking like "p", "mf", or "sfz", drawn with the
// music font's dynamic glyphs.
type Dynamic struct {
	*segno.MusicText
	text string
}

// NewDynamic creates a dynamic marking from its conventional letters.
func NewDynamic(pos segno.Point, parent segno.Object, text string, opts ...segno.TextOption) (*Dynamic, error) {
	glyphs := make([]string, 0, len(text))
	for _, r := range text {
		name, ok := dynamicGlyphs[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidDynamic, r, text)
		}
		glyphs = append(glyphs, name)
	}
	mt, err := segno.NewMusicText(pos, parent, glyphs, opts...)
	if err != nil {
		return nil, err
	}
	return &Dynamic{MusicText: mt, text: text}, nil
}

// Letters returns the dynamic's letter string.
func (d *Dynamic) Letters() string { return d.text }
