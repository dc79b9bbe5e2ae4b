package western

import "github.com/segnokit/segno"

// TimeSignature marks the meter governing a staff from a given x
// position onward, drawn as two stacked rows of numeral glyphs centered
// on each other, or a single row (common or cut time) centered on the
// staff.
//
// A time signature at a line start is drawn in the staff fringe,
// right-aligned across the staff group; a mid-staff meter change draws
// its numerals at its own position in the staff content.
type TimeSignature struct {
	segno.PositionedObject

	staff *Staff
	meter Meter
}

// NewTimeSignature adds a time signature to a staff at a staff-relative
// x position.
func NewTimeSignature(x segno.Unit, staff *Staff, meter Meter) (*TimeSignature, error) {
	for _, row := range [][]string{meter.UpperGlyphs, meter.LowerGlyphs} {
		for _, name := range row {
			if _, err := staff.musicFont.Glyph(name); err != nil {
				return nil, err
			}
		}
	}
	t := &TimeSignature{staff: staff, meter: meter}
	segno.Attach(t, segno.Pt(x, segno.ZERO), staff)
	staff.registerTimeSig(t)
	return t, nil
}

// Meter returns the drawn meter.
func (t *TimeSignature) Meter() Meter { return t.meter }

// Staff returns the staff the time signature belongs to.
func (t *TimeSignature) Staff() *Staff { return t.staff }

// Width returns the horizontal extent of the wider numeral row.
func (t *TimeSignature) Width() segno.Unit {
	return segno.MaxUnit(t.rowWidth(t.meter.UpperGlyphs), t.rowWidth(t.meter.LowerGlyphs))
}

// UpperY returns the staff-relative y the upper row's glyph origins sit
// on.
func (t *TimeSignature) UpperY() segno.Unit {
	if len(t.meter.LowerGlyphs) == 0 {
		// A single row (common or cut time) sits on the staff center.
		return t.staff.Unit(2)
	}
	return t.staff.Unit(1)
}

// LowerY returns the staff-relative y the lower row's glyph origins sit
// on.
func (t *TimeSignature) LowerY() segno.Unit { return t.staff.Unit(3) }

func (t *TimeSignature) rowWidth(glyphs []string) segno.Unit {
	var w segno.Unit
	for _, g := range glyphs {
		w += glyphWidth(t.staff.musicFont, g)
	}
	return w
}

// renderFringe draws the numeral rows with the wider row's left edge at
// pos, whose y is the staff top line. The narrower row centers on the
// wider one.
func (t *TimeSignature) renderFringe(c segno.Canvas, pos segno.Point) error {
	width := t.Width()
	if err := t.renderRow(c, pos, t.meter.UpperGlyphs, t.UpperY(), width); err != nil {
		return err
	}
	if len(t.meter.LowerGlyphs) == 0 {
		return nil
	}
	return t.renderRow(c, pos, t.meter.LowerGlyphs, t.LowerY(), width)
}

func (t *TimeSignature) renderRow(c segno.Canvas, pos segno.Point, glyphs []string, y, width segno.Unit) error {
	x := pos.X + (width-t.rowWidth(glyphs))/2
	for _, name := range glyphs {
		if err := t.staff.drawFringeGlyphs(c, segno.Pt(x, pos.Y+y), name); err != nil {
			return err
		}
		x += glyphWidth(t.staff.musicFont, name)
	}
	return nil
}

// RenderComplete draws a mid-staff meter change; line-start time
// signatures are drawn by the staff fringe instead.
func (t *TimeSignature) RenderComplete(c segno.Canvas, pos segno.Point) error {
	if t.X() == segno.ZERO {
		return nil
	}
	return t.renderFringe(c, pos)
}
