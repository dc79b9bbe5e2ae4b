package western

import "github.com/segnokit/segno"

// Rest is a rest glyph. Its position is the glyph origin, normally the
// vertical center of the staff.
type Rest struct {
	*segno.MusicText
	duration Duration
}

// NewRest creates a rest for a duration under parent, typically a
// Chordrest.
func NewRest(pos segno.Point, parent segno.Object, d Duration) (*Rest, error) {
	mt, err := segno.NewMusicText(pos, parent, []string{d.RestGlyphName()})
	if err != nil {
		return nil, err
	}
	return &Rest{MusicText: mt, duration: d}, nil
}

// Duration returns the rest's duration.
func (r *Rest) Duration() Duration { return r.duration }
