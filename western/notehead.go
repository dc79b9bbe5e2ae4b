package western

import "github.com/segnokit/segno"

// Notehead is a single notehead glyph within a chord. Its position is
// the glyph origin: the left edge of the notehead, vertically centered
// on its staff position.
type Notehead struct {
	*segno.MusicText
	pitch Pitch
}

// NewNotehead creates a notehead for a pitch under parent, typically a
// Chordrest.
func NewNotehead(pos segno.Point, parent segno.Object, pitch Pitch, duration Duration) (*Notehead, error) {
	mt, err := segno.NewMusicText(pos, parent, []string{duration.NoteheadGlyphName()})
	if err != nil {
		return nil, err
	}
	return &Notehead{MusicText: mt, pitch: pitch}, nil
}

// Pitch returns the notehead's pitch.
func (n *Notehead) Pitch() Pitch { return n.pitch }

// Width returns the notehead glyph's width.
func (n *Notehead) Width() segno.Unit {
	return n.BoundingRect().Width
}
