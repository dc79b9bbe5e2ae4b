package western

// ClefType describes a clef: its glyph, the staff position its glyph
// centers on, and the staff position of middle C under it. Positions are
// in staff units from the top staff line of a five line staff.
type ClefType struct {
	// GlyphName is the canonical SMuFL glyph name.
	GlyphName string

	// StaffPos is the vertical position the glyph's origin sits on.
	StaffPos float64

	// MiddleCStaffPos is the vertical position of written middle C.
	MiddleCStaffPos float64
}

// Standard clefs. Octave clefs place written middle C where the
// transposed pitch sounds as middle C.
var (
	Treble     = ClefType{GlyphName: "gClef", StaffPos: 3, MiddleCStaffPos: 5}
	Treble8vb  = ClefType{GlyphName: "gClef8vb", StaffPos: 3, MiddleCStaffPos: 1.5}
	Bass       = ClefType{GlyphName: "fClef", StaffPos: 1, MiddleCStaffPos: -1}
	Bass8vb    = ClefType{GlyphName: "fClef8vb", StaffPos: 1, MiddleCStaffPos: -4.5}
	Alto       = ClefType{GlyphName: "cClef", StaffPos: 2, MiddleCStaffPos: 2}
	Tenor      = ClefType{GlyphName: "cClef", StaffPos: 1, MiddleCStaffPos: 1}
	Percussion = ClefType{GlyphName: "unpitchedPercussionClef1", StaffPos: 2, MiddleCStaffPos: 2}
)
