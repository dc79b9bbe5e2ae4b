package western

import "github.com/segnokit/segno"

// Slur is a cubic bezier arc between two objects, arching away from the
// staff in its direction. The endpoint is anchored to the stop object,
// so later horizontal respacing of the stop carries the curve with it.
type Slur struct {
	*segno.Path
	direction segno.DirectionY
}

// NewSlur creates a slur from start to stop. Offsets are relative to
// the respective objects; direction is the side the arc bulges toward,
// normally up.
func NewSlur(start segno.Object, startOffset segno.Point, stop segno.Object, stopOffset segno.Point, direction segno.DirectionY) (*Slur, error) {
	font, err := segno.MusicFontOf(start)
	if err != nil {
		return nil, err
	}

	pen := segno.NewPen(font.EngravingDefault("slurMidpointThickness"))
	pen.Cap = segno.LineCapRound
	p := segno.NewPath(startOffset, start, pen, segno.NoBrush())

	arch := segno.Pt(segno.ZERO, font.Unit(1.5)*segno.Unit(direction))
	span := segno.MapBetween(p, stop).Add(stopOffset)

	p.MoveTo(segno.ZERO, segno.ZERO)
	appendAnchoredCubic(p, stop,
		stopOffset.Sub(span.Scale(0.75)).Add(arch),
		stopOffset.Sub(span.Scale(0.25)).Add(arch),
		stopOffset,
	)
	return &Slur{Path: p, direction: direction}, nil
}

// appendAnchoredCubic adds a cubic segment whose points are all relative
// to an anchor object.
func appendAnchoredCubic(p *segno.Path, anchor segno.Object, c1, c2, end segno.Point) {
	p.AppendElement(segno.CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    end,
		Anchor:   anchor,
	})
}

// Direction returns the side the slur arches toward.
func (s *Slur) Direction() segno.DirectionY { return s.direction }
