package western

import (
	"math"

	"github.com/segnokit/segno"
)

// defaultLineSpacing is the default staff unit: a 7mm five line staff.
var defaultLineSpacing = segno.Mm(1.75)

// unitEpsilon absorbs rounding noise from staff unit arithmetic when
// comparing positions that must land on exact staff positions.
const unitEpsilon = 1e-9

// Staff is a five line (or n line) musical staff. Its position is the
// top left corner of its top line; staff content (clefs, signatures,
// chords) attaches as children positioned in document units, with y
// typically derived from staff units.
//
// Staves are breakable: inside a flowable they split across lines, and
// each line start reproduces the staff fringe (clef, key signature, and
// any time signature starting there) computed by the staff's
// StaffGroup.
type Staff struct {
	segno.PaintedObject

	length      segno.Unit
	lineSpacing segno.Unit
	lineCount   int
	musicFont   *segno.MusicFont
	group       *StaffGroup

	clefs    []*Clef
	keySigs  []*KeySignature
	timeSigs []*TimeSignature
}

// StaffOption configures a Staff during creation.
type StaffOption func(*staffConfig)

type staffConfig struct {
	lineSpacing segno.Unit
	lineCount   int
	family      string
	group       *StaffGroup
	pen         *segno.Pen
}

// WithLineSpacing sets the staff unit: the distance between adjacent
// staff lines.
func WithLineSpacing(spacing segno.Unit) StaffOption {
	return func(c *staffConfig) { c.lineSpacing = spacing }
}

// WithLineCount sets the number of staff lines.
func WithLineCount(count int) StaffOption {
	return func(c *staffConfig) { c.lineCount = count }
}

// WithFontFamily sets the SMuFL font family. The default is Bravura.
func WithFontFamily(family string) StaffOption {
	return func(c *staffConfig) { c.family = family }
}

// WithStaffGroup places the staff in an existing group, aligning its
// fringe with the group's other staves and letting barlines and braces
// span them.
func WithStaffGroup(group *StaffGroup) StaffOption {
	return func(c *staffConfig) { c.group = group }
}

// WithStaffPen overrides the staff line pen. The default thickness comes
// from the font's staffLineThickness engraving default.
func WithStaffPen(pen segno.Pen) StaffOption {
	return func(c *staffConfig) { c.pen = &pen }
}

// NewStaff creates a staff of the given length at pos under parent.
func NewStaff(pos segno.Point, parent segno.Object, length segno.Unit, opts ...StaffOption) (*Staff, error) {
	c := staffConfig{
		lineSpacing: defaultLineSpacing,
		lineCount:   5,
		family:      "Bravura",
	}
	for _, opt := range opts {
		opt(&c)
	}

	font, err := segno.NewMusicFont(c.family, c.lineSpacing)
	if err != nil {
		return nil, err
	}

	s := &Staff{
		length:      length,
		lineSpacing: c.lineSpacing,
		lineCount:   c.lineCount,
		musicFont:   font,
	}
	pen := segno.NewPen(font.EngravingDefault("staffLineThickness"))
	if c.pen != nil {
		pen = *c.pen
	}
	segno.AttachPainted(s, pos, parent, pen, segno.NoBrush())

	group := c.group
	if group == nil {
		group = NewStaffGroup()
	}
	group.add(s)
	s.group = group
	return s, nil
}

// MusicFont returns the staff's music font, sized to its staff unit.
func (s *Staff) MusicFont() *segno.MusicFont { return s.musicFont }

// Group returns the staff's group.
func (s *Staff) Group() *StaffGroup { return s.group }

// Length returns the horizontal extent of the staff.
func (s *Staff) Length() segno.Unit { return s.length }

// LineCount returns the number of staff lines.
func (s *Staff) LineCount() int { return s.lineCount }

// LineSpacing returns the staff unit in document units.
func (s *Staff) LineSpacing() segno.Unit { return s.lineSpacing }

// Unit converts staff units to document units.
func (s *Staff) Unit(n float64) segno.Unit {
	return segno.Unit(n) * s.lineSpacing
}

// Height returns the distance from the top to the bottom staff line.
func (s *Staff) Height() segno.Unit {
	return s.Unit(float64(s.lineCount - 1))
}

// CenterY returns the vertical center of the staff in document units.
func (s *Staff) CenterY() segno.Unit {
	return s.Height() / 2
}

// ActiveClefAt returns the clef governing the given staff-relative x
// position, or nil if no clef precedes it.
func (s *Staff) ActiveClefAt(x segno.Unit) *Clef {
	var active *Clef
	for _, clef := range s.clefs {
		if clef.X() <= x && (active == nil || clef.X() >= active.X()) {
			active = clef
		}
	}
	return active
}

// MiddleCAt returns the staff-relative y position of written middle C at
// the given x position, or ErrNoClef if no clef governs it.
func (s *Staff) MiddleCAt(x segno.Unit) (segno.Unit, error) {
	clef := s.ActiveClefAt(x)
	if clef == nil {
		return segno.ZERO, ErrNoClef
	}
	return s.Unit(clef.ClefType().MiddleCStaffPos), nil
}

// YForPitch returns the staff-relative y position a pitch is written at
// under the clef active at x.
func (s *Staff) YForPitch(p Pitch, x segno.Unit) (segno.Unit, error) {
	middleC, err := s.MiddleCAt(x)
	if err != nil {
		return segno.ZERO, err
	}
	return middleC + s.Unit(p.StaffPosFromMiddleC()), nil
}

// LedgersNeededForY returns the staff-relative y positions of the ledger
// lines needed to support a notehead at y, ordered from the notehead
// toward the staff. An empty result means the position needs none.
func (s *Staff) LedgersNeededForY(y segno.Unit) []segno.Unit {
	// Snap to the nearest half position before truncating: unit
	// arithmetic leaves one-ulp noise that would otherwise drop the
	// outermost ledger.
	pos := math.Round(2*float64(y/s.lineSpacing)) / 2
	start := int(math.Trunc(pos)) // truncation toward zero skips half positions
	if start < 0 {
		ledgers := make([]segno.Unit, 0, -start)
		for i := start; i < 0; i++ {
			ledgers = append(ledgers, s.Unit(float64(i)))
		}
		return ledgers
	}
	bottom := s.lineCount - 1
	if start > bottom {
		ledgers := make([]segno.Unit, 0, start-bottom)
		for i := start; i > bottom; i-- {
			ledgers = append(ledgers, s.Unit(float64(i)))
		}
		return ledgers
	}
	return nil
}

// YInsideStaff reports whether a staff-relative y position falls on or
// between the staff lines.
func (s *Staff) YInsideStaff(y segno.Unit) bool {
	return y >= segno.ZERO && y <= s.Height()
}

func (s *Staff) registerClef(c *Clef)          { s.clefs = append(s.clefs, c) }
func (s *Staff) registerKeySig(k *KeySignature) { s.keySigs = append(s.keySigs, k) }
func (s *Staff) registerTimeSig(t *TimeSignature) { s.timeSigs = append(s.timeSigs, t) }

// activeKeySignatureAt returns the key signature governing the given
// staff-relative x position, or nil.
func (s *Staff) activeKeySignatureAt(x segno.Unit) *KeySignature {
	var active *KeySignature
	for _, k := range s.keySigs {
		if k.X() <= x && (active == nil || k.X() >= active.X()) {
			active = k
		}
	}
	return active
}

// timeSignatureAt returns the time signature placed exactly at the
// given staff-relative x position, or nil. Time signatures are not
// restated on later lines, so a fringe shows one only on the line where
// the meter starts.
func (s *Staff) timeSignatureAt(x segno.Unit) *TimeSignature {
	for _, t := range s.timeSigs {
		if t.X().AlmostEqual(x, unitEpsilon) {
			return t
		}
	}
	return nil
}

// fringeChangeXs returns the staff-relative x positions where the fringe
// content changes: 0 plus every clef, key signature, or time signature
// position.
func (s *Staff) fringeChangeXs() []segno.Unit {
	xs := []segno.Unit{segno.ZERO}
	for _, c := range s.clefs {
		if c.X() > segno.ZERO {
			xs = append(xs, c.X())
		}
	}
	for _, k := range s.keySigs {
		if k.X() > segno.ZERO {
			xs = append(xs, k.X())
		}
	}
	for _, t := range s.timeSigs {
		if t.X() > segno.ZERO {
			xs = append(xs, t.X())
		}
	}
	return xs
}

// PreRender reserves fringe margins on the staff's flowable so that
// continuation lines leave room for the reproduced fringe.
func (s *Staff) PreRender() {
	f := segno.FlowableOf(s)
	if f == nil {
		return
	}
	staffFlowX := segno.DescendantPosX(f, s)
	for _, x := range s.fringeChangeXs() {
		f.AddMarginController(segno.MarginController{
			FlowableX: staffFlowX + x,
			Margin:    s.group.FringeLayoutAt(s, x).Width,
			Tag:       s.group.marginTag(),
		})
	}
}

// BreakableLength returns the staff's length; staves split across
// flowable lines.
func (s *Staff) BreakableLength() segno.Unit { return s.length }

// RenderComplete draws the staff lines and its fringe at the given
// canvas position.
func (s *Staff) RenderComplete(c segno.Canvas, pos segno.Point) error {
	return s.renderSpan(c, pos, segno.ZERO, s.length)
}

// RenderSlice draws the slice of the staff on one flowable line,
// reproducing the fringe at the line start.
func (s *Staff) RenderSlice(c segno.Canvas, pos segno.Point, clipStartX, clipWidth segno.Unit) error {
	width := clipWidth
	if width < segno.ZERO || clipStartX+width > s.length {
		width = s.length - clipStartX
	}
	return s.renderSpan(c, pos, clipStartX, width)
}

// renderSpan draws the fringe and the staff lines covering
// [startX, startX+width) of the staff, with the content start at pos.
func (s *Staff) renderSpan(c segno.Canvas, pos segno.Point, startX, width segno.Unit) error {
	fringe := s.group.FringeLayoutAt(s, startX)

	lines := make([]segno.PathElement, 0, s.lineCount*2)
	for i := 0; i < s.lineCount; i++ {
		y := s.Unit(float64(i))
		lines = append(lines,
			segno.MoveTo{Point: segno.Pt(fringe.StaffX, y)},
			segno.LineTo{Point: segno.Pt(width, y)},
		)
	}
	if err := c.DrawPath(segno.PathSpec{
		Pos:      pos,
		Elements: lines,
		Pen:      s.Pen(),
		Brush:    s.Brush(),
	}); err != nil {
		return err
	}

	if clef := s.ActiveClefAt(startX); clef != nil {
		y := s.Unit(clef.ClefType().StaffPos)
		if err := s.drawFringeGlyphs(c, pos.Add(segno.Pt(fringe.ClefX, y)), clef.ClefType().GlyphName); err != nil {
			return err
		}
	}
	if ks := s.activeKeySignatureAt(startX); ks != nil {
		if err := ks.renderFringe(c, pos.Add(segno.Pt(fringe.KeySigX, segno.ZERO))); err != nil {
			return err
		}
	}
	if ts := s.timeSignatureAt(startX); ts != nil {
		if err := ts.renderFringe(c, pos.Add(segno.Pt(fringe.TimeSigX, segno.ZERO))); err != nil {
			return err
		}
	}
	return nil
}

// drawFringeGlyphs draws one or more glyphs at a canvas position using
// the staff's music font.
func (s *Staff) drawFringeGlyphs(c segno.Canvas, pos segno.Point, glyphNames ...string) error {
	text := make([]rune, 0, len(glyphNames))
	for _, name := range glyphNames {
		g, err := s.musicFont.Glyph(name)
		if err != nil {
			return err
		}
		text = append(text, g.Codepoint)
	}
	return c.DrawGlyphRun(segno.GlyphRun{
		Pos:   pos,
		Text:  string(text),
		Font:  s.musicFont.Font(),
		Scale: 1,
		Brush: segno.DefaultBrush(),
		Pen:   segno.NoPen(),
	})
}
