package western

import "github.com/segnokit/segno"

// AccidentalType is a chromatic alteration applied to a pitch letter.
// Its integer value is the alteration in half steps.
type AccidentalType int

const (
	AccidentalDoubleFlat  AccidentalType = -2
	AccidentalFlat        AccidentalType = -1
	AccidentalNatural     AccidentalType = 0
	AccidentalSharp       AccidentalType = 1
	AccidentalDoubleSharp AccidentalType = 2
)

// HalfSteps returns the alteration in half steps.
func (a AccidentalType) HalfSteps() int { return int(a) }

// GlyphName returns the canonical SMuFL glyph name for the accidental.
func (a AccidentalType) GlyphName() string {
	switch a {
	case AccidentalDoubleFlat:
		return "accidentalDoubleFlat"
	case AccidentalFlat:
		return "accidentalFlat"
	case AccidentalSharp:
		return "accidentalSharp"
	case AccidentalDoubleSharp:
		return "accidentalDoubleSharp"
	default:
		return "accidentalNatural"
	}
}

// String returns the pitch-string suffix for the accidental.
func (a AccidentalType) String() string {
	switch a {
	case AccidentalDoubleFlat:
		return "ff"
	case AccidentalFlat:
		return "f"
	case AccidentalNatural:
		return "n"
	case AccidentalSharp:
		return "s"
	case AccidentalDoubleSharp:
		return "ss"
	default:
		return "?"
	}
}

// Accidental is an accidental glyph placed left of a notehead. Its
// position is the glyph origin at the notehead's staff position.
type Accidental struct {
	*segno.MusicText
	kind AccidentalType
}

// NewAccidental creates an accidental glyph under parent, typically a
// Chordrest.
func NewAccidental(pos segno.Point, parent segno.Object, kind AccidentalType) (*Accidental, error) {
	mt, err := segno.NewMusicText(pos, parent, []string{kind.GlyphName()})
	if err != nil {
		return nil, err
	}
	return &Accidental{MusicText: mt, kind: kind}, nil
}

// AccidentalType returns the accidental's type.
func (a *Accidental) AccidentalType() AccidentalType { return a.kind }
