package western

import (
	"strconv"
	"sync/atomic"

	"github.com/segnokit/segno"
)

var staffGroupCounter atomic.Int64

// StaffGroup collects vertically stacked staves so their fringes align
// and barlines and braces can span them. Every staff belongs to exactly
// one group; a staff created without one gets a group of its own.
//
// Grouped staves are assumed to share a horizontal origin.
type StaffGroup struct {
	id     int64
	staves []*Staff
}

// NewStaffGroup creates an empty staff group.
func NewStaffGroup() *StaffGroup {
	return &StaffGroup{id: staffGroupCounter.Add(1)}
}

func (g *StaffGroup) add(s *Staff) {
	g.staves = append(g.staves, s)
}

// Staves returns the group's staves in creation order.
func (g *StaffGroup) Staves() []*Staff { return g.staves }

// TopStaff returns the first staff of the group, or nil if empty.
func (g *StaffGroup) TopStaff() *Staff {
	if len(g.staves) == 0 {
		return nil
	}
	return g.staves[0]
}

// BottomStaff returns the last staff of the group, or nil if empty.
func (g *StaffGroup) BottomStaff() *Staff {
	if len(g.staves) == 0 {
		return nil
	}
	return g.staves[len(g.staves)-1]
}

// marginTag identifies the group's margin controllers. Sharing one tag
// per group lets every member staff register the same fringe margin
// without accumulating it.
func (g *StaffGroup) marginTag() string {
	return "staffFringe#" + strconv.FormatInt(g.id, 10)
}

// FringeLayout places the reproduced fringe of one staff at a line
// start. All offsets are staff-relative x positions left of the line's
// content start, so they are zero or negative.
type FringeLayout struct {
	// StaffX is where the extended staff lines begin.
	StaffX segno.Unit

	// ClefX is the clef glyph origin.
	ClefX segno.Unit

	// KeySigX is the origin of the first key signature accidental.
	KeySigX segno.Unit

	// TimeSigX is the origin of the time signature numerals. Time
	// signatures right-align across the group, directly before the gap
	// that separates the fringe from the content.
	TimeSigX segno.Unit

	// Width is the total fringe width, reserved as a line margin.
	Width segno.Unit
}

// FringeLayoutAt computes the fringe layout of staff s for a line
// starting at staff-relative position x. The fringe width is the widest
// demanded by any staff in the group, so grouped fringes left-align;
// time signatures instead right-align on the content edge, regardless
// of how wide each staff's clef and key signature are.
func (g *StaffGroup) FringeLayoutAt(s *Staff, x segno.Unit) FringeLayout {
	var width segno.Unit
	for _, t := range g.staves {
		w := t.fringeWidthAt(x)
		if w > width {
			width = w
		}
	}

	layout := FringeLayout{StaffX: -width, Width: width}
	cursor := -width + s.Unit(0.25)
	layout.ClefX = cursor
	if clef := s.ActiveClefAt(x); clef != nil {
		cursor += glyphWidth(s.musicFont, clef.ClefType().GlyphName) + s.Unit(0.5)
	}
	layout.KeySigX = cursor
	layout.TimeSigX = -s.Unit(1)
	if ts := s.timeSignatureAt(x); ts != nil {
		layout.TimeSigX = -s.Unit(1) - ts.Width()
	}
	return layout
}

// fringeWidthAt returns the fringe width this staff alone needs for a
// line starting at staff-relative x: lead-in, clef, key signature, time
// signature, and a gap before the content.
func (s *Staff) fringeWidthAt(x segno.Unit) segno.Unit {
	width := s.Unit(1) // gap before content
	if clef := s.ActiveClefAt(x); clef != nil {
		width += glyphWidth(s.musicFont, clef.ClefType().GlyphName) + s.Unit(0.5)
	}
	if ks := s.activeKeySignatureAt(x); ks != nil && ks.Type().AccidentalCount() > 0 {
		width += ks.fringeWidth()
	}
	if ts := s.timeSignatureAt(x); ts != nil {
		width += ts.Width() + s.Unit(0.25)
	}
	width += s.Unit(0.25) // lead-in before the clef
	return width
}

// glyphWidth returns a glyph's bounding width in document units, or 0
// for glyphs the font's metadata does not cover.
func glyphWidth(font *segno.MusicFont, name string) segno.Unit {
	r, err := font.BoundingRectOf(name)
	if err != nil {
		return segno.ZERO
	}
	return r.Width
}
