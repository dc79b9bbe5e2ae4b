package western

import "github.com/segnokit/segno"

// Clef marks the clef governing a staff from a given x position onward.
// A clef at x 0 is drawn only in the staff fringe, which every flowable
// line reproduces; a mid-staff clef change additionally draws its glyph
// at its own position in the staff content.
type Clef struct {
	segno.PositionedObject

	staff    *Staff
	clefType ClefType
}

// NewClef adds a clef to a staff at a staff-relative x position.
func NewClef(x segno.Unit, staff *Staff, clefType ClefType) *Clef {
	c := &Clef{staff: staff, clefType: clefType}
	segno.Attach(c, segno.Pt(x, staff.Unit(clefType.StaffPos)), staff)
	staff.registerClef(c)
	return c
}

// ClefType returns the clef's type.
func (c *Clef) ClefType() ClefType { return c.clefType }

// Staff returns the staff the clef governs.
func (c *Clef) Staff() *Staff { return c.staff }

// MiddleCY returns the staff-relative y position of written middle C
// under this clef.
func (c *Clef) MiddleCY() segno.Unit {
	return c.staff.Unit(c.clefType.MiddleCStaffPos)
}

// RenderComplete draws a mid-staff clef change; line-start clefs are
// drawn by the staff fringe instead.
func (c *Clef) RenderComplete(canvas segno.Canvas, pos segno.Point) error {
	if c.X() == segno.ZERO {
		return nil
	}
	return c.staff.drawFringeGlyphs(canvas, pos, c.clefType.GlyphName)
}
