package western

import (
	"math"
	"sort"

	"github.com/segnokit/segno"
)

// Chordrest is a chord or rest at one time position on a staff: the
// noteheads (or rest glyph), accidentals, ledger lines, stem, flag, and
// rhythm dots of one written event. Its position is the staff-relative
// x of the event with y on the top staff line; components hang off it
// as children.
//
// Within a staff, chordrests are laid out left to right: their x
// positions encode time order.
type Chordrest struct {
	segno.PositionedObject

	staff    *Staff
	duration Duration
	pitches  []Pitch

	noteheads   []*Notehead
	accidentals []*Accidental
	ledgers     []*LedgerLine
	dots        []*segno.MusicText
	rest        *Rest
	stem        *Stem
	flag        *Flag

	stemDirection segno.DirectionY
}

// ChordrestOption configures a Chordrest during creation.
type ChordrestOption func(*chordrestConfig)

type chordrestConfig struct {
	stemDirection *segno.DirectionY
}

// WithStemDirection overrides the automatic stem direction.
func WithStemDirection(d segno.DirectionY) ChordrestOption {
	return func(c *chordrestConfig) { c.stemDirection = &d }
}

// NewChordrest creates a chord of the given pitches, or a rest when
// pitches is empty, at a staff-relative x position.
func NewChordrest(x segno.Unit, staff *Staff, pitches []Pitch, duration Duration, opts ...ChordrestOption) (*Chordrest, error) {
	var config chordrestConfig
	for _, opt := range opts {
		opt(&config)
	}

	cr := &Chordrest{
		staff:    staff,
		duration: duration,
		pitches:  pitches,
	}
	segno.Attach(cr, segno.Pt(x, segno.ZERO), staff)

	var err error
	if len(pitches) == 0 {
		err = cr.buildRest()
	} else {
		err = cr.buildChord(config)
	}
	if err != nil {
		segno.Remove(cr)
		return nil, err
	}
	return cr, nil
}

// Staff returns the staff the chordrest sits on.
func (cr *Chordrest) Staff() *Staff { return cr.staff }

// Duration returns the chordrest's duration.
func (cr *Chordrest) Duration() Duration { return cr.duration }

// IsRest reports whether the chordrest is a rest.
func (cr *Chordrest) IsRest() bool { return cr.rest != nil }

// Noteheads returns the chord's noteheads, highest pitch first. It is
// empty for rests.
func (cr *Chordrest) Noteheads() []*Notehead { return cr.noteheads }

// Accidentals returns the chord's accidental glyphs.
func (cr *Chordrest) Accidentals() []*Accidental { return cr.accidentals }

// LedgerLines returns the chord's ledger lines.
func (cr *Chordrest) LedgerLines() []*LedgerLine { return cr.ledgers }

// RhythmDots returns the chordrest's augmentation dot glyphs.
func (cr *Chordrest) RhythmDots() []*segno.MusicText { return cr.dots }

// Rest returns the rest glyph, or nil for chords.
func (cr *Chordrest) Rest() *Rest { return cr.rest }

// Stem returns the note stem, or nil when the duration carries none or
// the chordrest is a rest.
func (cr *Chordrest) Stem() *Stem { return cr.stem }

// Flag returns the note flag, or nil when the duration carries none.
func (cr *Chordrest) Flag() *Flag { return cr.flag }

// StemDirection returns the chord's stem direction. It is meaningful
// even for unstemmed whole notes, controlling notehead side selection.
func (cr *Chordrest) StemDirection() segno.DirectionY { return cr.stemDirection }

// dotPadding is the staff-unit gap between a glyph and its first rhythm
// dot; dotAdvance the gap between successive dot columns.
const (
	dotPadding = 0.5
	dotAdvance = 0.6
)

func (cr *Chordrest) buildRest() error {
	rest, err := NewRest(segno.Pt(segno.ZERO, cr.staff.CenterY()), cr, cr.duration)
	if err != nil {
		return err
	}
	cr.rest = rest

	dotX := rest.BoundingRect().Right() + cr.staff.Unit(dotPadding)
	dotY := cr.staff.CenterY() - cr.staff.Unit(0.5)
	return cr.buildDots(dotX, []segno.Unit{dotY})
}

func (cr *Chordrest) buildChord(config chordrestConfig) error {
	u := cr.staff.Unit

	// Resolve staff positions. Sorting by y puts the highest pitch
	// first.
	type placed struct {
		pitch Pitch
		y     segno.Unit
	}
	places := make([]placed, len(cr.pitches))
	for i, p := range cr.pitches {
		y, err := cr.staff.YForPitch(p, cr.X())
		if err != nil {
			return err
		}
		places[i] = placed{pitch: p, y: y}
	}
	sort.SliceStable(places, func(i, j int) bool { return places[i].y < places[j].y })

	highestY := places[0].y
	lowestY := places[len(places)-1].y
	center := cr.staff.CenterY()
	cr.stemDirection = stemDirectionFor(highestY, lowestY, center)
	if config.stemDirection != nil {
		cr.stemDirection = *config.stemDirection
	}

	// Noteheads. The default column is x 0; a notehead a second away
	// from its neighbor flips to the other side of the stem.
	glyphName := cr.duration.NoteheadGlyphName()
	noteheadWidth := glyphWidth(cr.staff.musicFont, glyphName)
	flipX := noteheadWidth
	if cr.stemDirection == segno.DirectionDown {
		// Stem on the left: flipped noteheads sit left of it.
		flipX = -noteheadWidth
	}

	var (
		minX, maxX segno.Unit
		prevY      segno.Unit
		prevFlip   bool
	)
	for i, pl := range places {
		x := segno.ZERO
		flip := false
		if i > 0 && !prevFlip && pl.y-prevY <= u(0.5)+u(0.01) {
			x = flipX
			flip = true
		}
		nh, err := NewNotehead(segno.Pt(x, pl.y), cr, pl.pitch, cr.duration)
		if err != nil {
			return err
		}
		cr.noteheads = append(cr.noteheads, nh)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		prevY, prevFlip = pl.y, flip
	}

	// Accidentals in a single column left of the noteheads.
	if err := cr.buildAccidentals(minX); err != nil {
		return err
	}

	// Ledger lines covering the notehead columns.
	extension := cr.staff.musicFont.EngravingDefault("legerLineExtension")
	ledgerX := minX - extension
	ledgerLength := (maxX + noteheadWidth + extension) - ledgerX
	for _, y := range cr.ledgerYs(highestY, lowestY) {
		cr.ledgers = append(cr.ledgers, NewLedgerLine(segno.Pt(ledgerX, y), cr, ledgerLength, cr.staff.musicFont))
	}

	// Stem and flag.
	if cr.duration.RequiresStem() {
		if err := cr.buildStem(glyphName, highestY, lowestY); err != nil {
			return err
		}
	}

	// Rhythm dots, one row per notehead, right of the notehead columns.
	dotX := maxX + noteheadWidth + cr.staff.Unit(dotPadding)
	dotYs := make([]segno.Unit, 0, len(places))
	for _, pl := range places {
		dotYs = append(dotYs, cr.dotY(pl.y))
	}
	return cr.buildDots(dotX, dotYs)
}

// stemDirectionFor chooses the direction pointing away from the
// notehead farthest from the staff center. Ties resolve downward, and
// rounding noise from unit arithmetic must not break a tie upward.
func stemDirectionFor(highestY, lowestY, center segno.Unit) segno.DirectionY {
	above := center - highestY
	below := lowestY - center
	if below.AlmostEqual(above, unitEpsilon) {
		return segno.DirectionDown
	}
	if below > above {
		return segno.DirectionUp
	}
	return segno.DirectionDown
}

func (cr *Chordrest) buildAccidentals(minNoteX segno.Unit) error {
	var maxWidth segno.Unit
	for _, p := range cr.pitches {
		if !p.HasAccidental {
			continue
		}
		if w := glyphWidth(cr.staff.musicFont, p.Accidental.GlyphName()); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth == segno.ZERO {
		return nil
	}
	x := minNoteX - maxWidth - cr.staff.Unit(0.25)
	for _, p := range cr.pitches {
		if !p.HasAccidental {
			continue
		}
		y, err := cr.staff.YForPitch(p, cr.X())
		if err != nil {
			return err
		}
		a, err := NewAccidental(segno.Pt(x, y), cr, p.Accidental)
		if err != nil {
			return err
		}
		cr.accidentals = append(cr.accidentals, a)
	}
	return nil
}

// ledgerYs merges the ledger demands of the chord's extremes.
func (cr *Chordrest) ledgerYs(highestY, lowestY segno.Unit) []segno.Unit {
	ys := cr.staff.LedgersNeededForY(highestY)
	if lowestY != highestY {
		ys = append(ys, cr.staff.LedgersNeededForY(lowestY)...)
	}
	return ys
}

func (cr *Chordrest) buildStem(noteheadGlyph string, highestY, lowestY segno.Unit) error {
	anchorName := "stemUpSE"
	attachY := lowestY
	if cr.stemDirection == segno.DirectionDown {
		anchorName = "stemDownNW"
		attachY = highestY
	}

	attach := segno.Pt(segno.ZERO, attachY)
	if g, err := cr.staff.musicFont.Glyph(noteheadGlyph); err == nil {
		if a, ok := g.Anchors[anchorName]; ok {
			attach.X += cr.staff.Unit(a[0])
			attach.Y -= cr.staff.Unit(a[1]) // metadata y is up
		}
	}

	span := float64((lowestY - highestY) / cr.staff.LineSpacing())
	height := cr.staff.Unit(math.Max(3, span+2))
	cr.stem = NewStem(attach, cr, cr.stemDirection, height, cr.staff.musicFont)

	if cr.duration.FlagCount() > 0 {
		flag, err := NewFlag(attach.Add(cr.stem.EndPoint()), cr, cr.duration, cr.stemDirection)
		if err != nil {
			return err
		}
		cr.flag = flag
	}
	return nil
}

// dotY snaps a notehead y to the center of a staff space: dots on lines
// move half a space up.
func (cr *Chordrest) dotY(noteY segno.Unit) segno.Unit {
	// Notehead ys land on half staff positions up to rounding noise.
	pos := math.Round(2*float64(noteY/cr.staff.LineSpacing())) / 2
	if pos == math.Trunc(pos) {
		return noteY - cr.staff.Unit(0.5)
	}
	return noteY
}

func (cr *Chordrest) buildDots(startX segno.Unit, ys []segno.Unit) error {
	for i := 0; i < cr.duration.Dots(); i++ {
		x := startX + cr.staff.Unit(float64(i)*dotAdvance)
		for _, y := range ys {
			dot, err := segno.NewMusicText(segno.Pt(x, y), cr, []string{"augmentationDot"})
			if err != nil {
				return err
			}
			cr.dots = append(cr.dots, dot)
		}
	}
	return nil
}
