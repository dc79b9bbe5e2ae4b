package western

import (
	"testing"

	"github.com/segnokit/segno"
)

func chordStaff(t *testing.T) *Staff {
	t.Helper()
	s := newTestStaff(t)
	NewClef(segno.ZERO, s, Treble)
	return s
}

func TestChordrestRest(t *testing.T) {
	s := chordStaff(t)
	cr, err := NewChordrest(segno.Mm(20), s, nil, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if !cr.IsRest() {
		t.Fatal("expected a rest")
	}
	if cr.Rest() == nil || cr.Stem() != nil || cr.Flag() != nil {
		t.Error("expected rest without stem or flag")
	}
	if got := cr.Rest().Y(); !got.AlmostEqual(s.CenterY(), epsilon) {
		t.Errorf("rest y = %v, want staff center %v", got, s.CenterY())
	}
	if len(cr.Noteheads()) != 0 {
		t.Error("expected rest to carry no noteheads")
	}
}

func TestChordrestStemDirection(t *testing.T) {
	s := chordStaff(t)
	quarter := MustDuration(1, 4)

	tests := []struct {
		pitches []string
		want    segno.DirectionY
	}{
		{[]string{"f''"}, segno.DirectionDown}, // above middle line
		{[]string{"c'"}, segno.DirectionUp},    // below middle line
		{[]string{"b'"}, segno.DirectionDown},  // on middle line: ties go down
		{[]string{"c'", "f''"}, segno.DirectionUp}, // chord: the farthest note wins
		{[]string{"c'", "g'"}, segno.DirectionUp},
		{[]string{"g'", "d''"}, segno.DirectionDown}, // symmetric around the middle line
	}
	for _, tt := range tests {
		pitches := make([]Pitch, len(tt.pitches))
		for i, p := range tt.pitches {
			pitches[i] = MustPitch(p)
		}
		cr, err := NewChordrest(segno.Mm(20), s, pitches, quarter)
		if err != nil {
			t.Fatalf("NewChordrest(%v): %v", tt.pitches, err)
		}
		if got := cr.StemDirection(); got != tt.want {
			t.Errorf("stem direction for %v = %v, want %v", tt.pitches, got, tt.want)
		}
	}
}

func TestChordrestStemDirectionOverride(t *testing.T) {
	s := chordStaff(t)
	cr, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("c'")}, MustDuration(1, 4),
		WithStemDirection(segno.DirectionDown))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if got := cr.StemDirection(); got != segno.DirectionDown {
		t.Errorf("stem direction = %v, want forced down", got)
	}
}

func TestChordrestStemAndFlag(t *testing.T) {
	s := chordStaff(t)

	whole, err := NewChordrest(segno.Mm(10), s, []Pitch{MustPitch("g'")}, MustDuration(1, 1))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if whole.Stem() != nil {
		t.Error("expected whole note to carry no stem")
	}

	quarter, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("g'")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	stem := quarter.Stem()
	if stem == nil {
		t.Fatal("expected quarter note to carry a stem")
	}
	if !stem.Height().AlmostEqual(s.Unit(3), epsilon) {
		t.Errorf("single note stem height = %v, want one octave %v", stem.Height(), s.Unit(3))
	}
	if quarter.Flag() != nil {
		t.Error("expected quarter note to carry no flag")
	}

	eighth, err := NewChordrest(segno.Mm(30), s, []Pitch{MustPitch("g'")}, MustDuration(1, 8))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if eighth.Flag() == nil {
		t.Error("expected eighth note to carry a flag")
	}
}

func TestChordrestStemSpansChord(t *testing.T) {
	s := chordStaff(t)
	// An octave chord: the stem covers the span plus two units.
	cr, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("c'"), MustPitch("c''")}, MustDuration(1, 2))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if got := cr.Stem().Height(); !got.AlmostEqual(s.Unit(5.5), epsilon) {
		t.Errorf("chord stem height = %v, want %v", got, s.Unit(5.5))
	}
}

func TestChordrestNoteheadFlipping(t *testing.T) {
	s := chordStaff(t)
	// A second: the upper notehead flips to the other side of the stem.
	cr, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("c''"), MustPitch("d''")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	heads := cr.Noteheads()
	if len(heads) != 2 {
		t.Fatalf("notehead count = %d, want 2", len(heads))
	}
	if heads[0].X() != segno.ZERO {
		t.Errorf("first notehead x = %v, want 0", heads[0].X())
	}
	if heads[1].X() == segno.ZERO {
		t.Error("expected the seconds interval to flip the second notehead")
	}
	// Stem points down here, so the flipped head sits left of the stem.
	if cr.StemDirection() == segno.DirectionDown && heads[1].X() >= segno.ZERO {
		t.Errorf("flipped notehead x = %v, want negative", heads[1].X())
	}

	// A third does not flip.
	cr, err = NewChordrest(segno.Mm(30), s, []Pitch{MustPitch("c''"), MustPitch("e''")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	for _, h := range cr.Noteheads() {
		if h.X() != segno.ZERO {
			t.Errorf("unflipped notehead x = %v, want 0", h.X())
		}
	}
}

func TestChordrestLedgerLines(t *testing.T) {
	s := chordStaff(t)

	inside, err := NewChordrest(segno.Mm(10), s, []Pitch{MustPitch("b'")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if got := len(inside.LedgerLines()); got != 0 {
		t.Errorf("in-staff note ledger count = %d, want 0", got)
	}

	below, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("c'")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if got := len(below.LedgerLines()); got != 1 {
		t.Fatalf("middle C ledger count = %d, want 1", got)
	}
	if got := below.LedgerLines()[0].Y(); !got.AlmostEqual(s.Unit(5), epsilon) {
		t.Errorf("ledger y = %v, want %v", got, s.Unit(5))
	}

	above, err := NewChordrest(segno.Mm(30), s, []Pitch{MustPitch("c'''")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	// C6 sits two positions above the first ledger line over the staff.
	if got := len(above.LedgerLines()); got != 2 {
		t.Errorf("high C ledger count = %d, want 2", got)
	}
}

func TestChordrestAccidentals(t *testing.T) {
	s := chordStaff(t)
	cr, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("fs''"), MustPitch("a''")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	acc := cr.Accidentals()
	if len(acc) != 1 {
		t.Fatalf("accidental count = %d, want 1", len(acc))
	}
	if acc[0].X() >= segno.ZERO {
		t.Errorf("accidental x = %v, want left of the noteheads", acc[0].X())
	}
	y, err := s.YForPitch(MustPitch("fs''"), segno.Mm(20))
	if err != nil {
		t.Fatal(err)
	}
	if !acc[0].Y().AlmostEqual(y, epsilon) {
		t.Errorf("accidental y = %v, want %v", acc[0].Y(), y)
	}
}

func TestChordrestRhythmDots(t *testing.T) {
	s := chordStaff(t)

	plain, err := NewChordrest(segno.Mm(10), s, []Pitch{MustPitch("g'")}, MustDuration(1, 4))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	if got := len(plain.RhythmDots()); got != 0 {
		t.Errorf("undotted note dot count = %d, want 0", got)
	}

	// A dotted note on a line: the dot moves into the space above.
	dotted, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("g'")}, MustDuration(3, 8))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	dots := dotted.RhythmDots()
	if len(dots) != 1 {
		t.Fatalf("dotted quarter dot count = %d, want 1", len(dots))
	}
	if got := dots[0].Y(); !got.AlmostEqual(s.Unit(2.5), epsilon) {
		t.Errorf("dot y = %v, want %v (space above the line)", got, s.Unit(2.5))
	}

	// A double-dotted note in a space keeps the notehead y.
	doubled, err := NewChordrest(segno.Mm(30), s, []Pitch{MustPitch("a'")}, MustDuration(7, 16))
	if err != nil {
		t.Fatalf("NewChordrest: %v", err)
	}
	dots = doubled.RhythmDots()
	if len(dots) != 2 {
		t.Fatalf("double-dotted dot count = %d, want 2", len(dots))
	}
	if dots[0].Y() != dots[1].Y() {
		t.Error("expected both dots on the same row")
	}
	if dots[1].X() <= dots[0].X() {
		t.Error("expected the second dot right of the first")
	}
}

func TestChordrestInvalidPitchDetaches(t *testing.T) {
	s := newTestStaff(t) // no clef: pitch placement must fail
	before := len(s.Children())
	if _, err := NewChordrest(segno.Mm(20), s, []Pitch{MustPitch("c'")}, MustDuration(1, 4)); err == nil {
		t.Fatal("expected chord creation without a clef to fail")
	}
	if got := len(s.Children()); got != before {
		t.Errorf("failed chordrest left %d extra children", got-before)
	}
}
