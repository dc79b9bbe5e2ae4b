package western

import (
	"fmt"
	"regexp"
	"strings"
)

// Pitch is a written pitch: a letter, an optional accidental, and an
// octave. Octaves follow scientific pitch notation, so middle C is
// octave 4.
type Pitch struct {
	// Letter is the pitch letter, 'a' through 'g'.
	Letter rune

	// Accidental is the written accidental. It only applies when
	// HasAccidental is true; an unaltered pitch carries no accidental
	// glyph even though it sounds like a natural.
	Accidental AccidentalType

	// HasAccidental reports whether Accidental is written.
	HasAccidental bool

	// Octave is the scientific octave number.
	Octave int
}

// pitchPattern matches LilyPond-style pitch strings: a letter, an
// optional s (sharp), f (flat), or n (natural), and octave ticks. Each
// apostrophe raises one octave and each comma lowers one; no ticks means
// octave 3, so "c'" is middle C.
var pitchPattern = regexp.MustCompile(`^([a-g])([snf]?)('*|,*)$`)

// ParsePitch parses a LilyPond-style pitch string like "c'", "fs,",
// or "bn''".
func ParsePitch(s string) (Pitch, error) {
	m := pitchPattern.FindStringSubmatch(s)
	if m == nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}

	p := Pitch{Letter: rune(m[1][0]), Octave: 3}
	switch m[2] {
	case "s":
		p.Accidental = AccidentalSharp
		p.HasAccidental = true
	case "f":
		p.Accidental = AccidentalFlat
		p.HasAccidental = true
	case "n":
		p.Accidental = AccidentalNatural
		p.HasAccidental = true
	}
	p.Octave += strings.Count(m[3], "'")
	p.Octave -= strings.Count(m[3], ",")
	return p, nil
}

// MustPitch is ParsePitch that panics on error, for statically known
// pitch strings.
func MustPitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// letterDegree maps a pitch letter to its diatonic degree above C.
func letterDegree(letter rune) int {
	// c=0 d=1 e=2 f=3 g=4 a=5 b=6
	if letter >= 'c' {
		return int(letter - 'c')
	}
	return int(letter-'a') + 5
}

// letterPitchClass maps a pitch letter to its chromatic pitch class.
func letterPitchClass(letter rune) int {
	switch letter {
	case 'c':
		return 0
	case 'd':
		return 2
	case 'e':
		return 4
	case 'f':
		return 5
	case 'g':
		return 7
	case 'a':
		return 9
	default: // 'b'
		return 11
	}
}

// StaffPosFromMiddleC returns the pitch's vertical position in staff
// units relative to middle C. Higher pitches are negative (y grows
// downward); one diatonic step is half a unit.
func (p Pitch) StaffPosFromMiddleC() float64 {
	steps := (p.Octave-4)*7 + letterDegree(p.Letter)
	return -float64(steps) * 0.5
}

// MIDINumber returns the pitch's MIDI note number; middle C is 60.
func (p Pitch) MIDINumber() int {
	n := (p.Octave+1)*12 + letterPitchClass(p.Letter)
	if p.HasAccidental {
		n += p.Accidental.HalfSteps()
	}
	return n
}

// String reconstructs the pitch string.
func (p Pitch) String() string {
	var b strings.Builder
	b.WriteRune(p.Letter)
	if p.HasAccidental {
		b.WriteString(p.Accidental.String())
	}
	ticks := p.Octave - 3
	for ; ticks > 0; ticks-- {
		b.WriteByte('\'')
	}
	for ; ticks < 0; ticks++ {
		b.WriteByte(',')
	}
	return b.String()
}
