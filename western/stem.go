package western

import "github.com/segnokit/segno"

// Stem is a note stem. Its position is where it meets the notehead; it
// extends from there in its direction.
type Stem struct {
	*segno.Path
	direction segno.DirectionY
	height    segno.Unit
}

// NewStem creates a stem of the given height extending in direction.
// Thickness comes from the font's stemThickness engraving default.
func NewStem(pos segno.Point, parent segno.Object, direction segno.DirectionY, height segno.Unit, font *segno.MusicFont) *Stem {
	pen := segno.NewPen(font.EngravingDefault("stemThickness"))
	p := segno.NewPath(pos, parent, pen, segno.NoBrush())
	p.MoveTo(segno.ZERO, segno.ZERO)
	p.LineTo(segno.ZERO, height*segno.Unit(direction))
	return &Stem{Path: p, direction: direction, height: height}
}

// Direction returns the direction the stem extends in.
func (s *Stem) Direction() segno.DirectionY { return s.direction }

// Height returns the stem's unsigned length.
func (s *Stem) Height() segno.Unit { return s.height }

// EndPoint returns the stem tip relative to the stem's position.
func (s *Stem) EndPoint() segno.Point {
	return segno.Pt(segno.ZERO, s.height*segno.Unit(s.direction))
}
