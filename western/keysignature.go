package western

import "github.com/segnokit/segno"

// keySigAccidentalGap is the horizontal gap between successive key
// signature accidentals, in staff units.
const keySigAccidentalGap = 0.1

// KeySignature marks the key governing a staff from a given x position
// onward. A key signature at x 0 is drawn only in the staff fringe; a
// mid-staff key change additionally draws its accidentals at its own
// position in the staff content.
type KeySignature struct {
	segno.PositionedObject

	staff *Staff
	kind  KeySignatureType
}

// NewKeySignature adds a key signature to a staff at a staff-relative x
// position.
func NewKeySignature(x segno.Unit, staff *Staff, kind KeySignatureType) *KeySignature {
	k := &KeySignature{staff: staff, kind: kind}
	segno.Attach(k, segno.Pt(x, segno.ZERO), staff)
	staff.registerKeySig(k)
	return k
}

// Type returns the key signature type.
func (k *KeySignature) Type() KeySignatureType { return k.kind }

// Staff returns the staff the key signature governs.
func (k *KeySignature) Staff() *Staff { return k.staff }

// fringeWidth returns the horizontal space the accidentals occupy,
// including the gap before the following content.
func (k *KeySignature) fringeWidth() segno.Unit {
	var width segno.Unit
	glyph := k.kind.Accidental.GlyphName()
	for range k.kind.Letters {
		width += glyphWidth(k.staff.musicFont, glyph) + k.staff.Unit(keySigAccidentalGap)
	}
	return width
}

// renderFringe draws the accidentals with the first glyph's origin at
// pos, whose y is the staff top line.
func (k *KeySignature) renderFringe(c segno.Canvas, pos segno.Point) error {
	clef := k.staff.ActiveClefAt(k.X())
	if clef == nil || len(k.kind.Letters) == 0 {
		return nil
	}
	middleC := clef.ClefType().MiddleCStaffPos
	glyph := k.kind.Accidental.GlyphName()

	x := pos.X
	for _, letter := range k.kind.Letters {
		y := pos.Y + k.staff.Unit(k.kind.fringePos(letter, middleC))
		if err := k.staff.drawFringeGlyphs(c, segno.Pt(x, y), glyph); err != nil {
			return err
		}
		x += glyphWidth(k.staff.musicFont, glyph) + k.staff.Unit(keySigAccidentalGap)
	}
	return nil
}

// RenderComplete draws a mid-staff key change; line-start key signatures
// are drawn by the staff fringe instead.
func (k *KeySignature) RenderComplete(c segno.Canvas, pos segno.Point) error {
	if k.X() == segno.ZERO {
		return nil
	}
	return k.renderFringe(c, pos)
}
