package western

import (
	"fmt"

	"github.com/segnokit/segno"
)

// Flag is a note flag attached to a stem tip.
type Flag struct {
	*segno.MusicText
	duration  Duration
	direction segno.DirectionY
}

var flagBaseGlyphs = []string{
	"flag8th", "flag16th", "flag32nd", "flag64th",
	"flag128th", "flag256th", "flag512th", "flag1024th",
}

// FlagGlyphName returns the canonical SMuFL flag glyph for a duration
// and stem direction, or ErrNoFlagNeeded when the duration's base
// division carries no flag.
func FlagGlyphName(d Duration, direction segno.DirectionY) (string, error) {
	count := d.FlagCount()
	if count == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoFlagNeeded, d)
	}
	name := flagBaseGlyphs[count-1]
	if direction == segno.DirectionUp {
		return name + "Up", nil
	}
	return name + "Down", nil
}

// NewFlag creates a flag at a stem tip. Its position is the flag's stem
// attachment point.
func NewFlag(pos segno.Point, parent segno.Object, d Duration, direction segno.DirectionY) (*Flag, error) {
	name, err := FlagGlyphName(d, direction)
	if err != nil {
		return nil, err
	}
	mt, err := segno.NewMusicText(pos, parent, []string{name})
	if err != nil {
		return nil, err
	}
	return &Flag{MusicText: mt, duration: d, direction: direction}, nil
}

// Direction returns the direction of the stem the flag sits on.
func (f *Flag) Direction() segno.DirectionY { return f.direction }
