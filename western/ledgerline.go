package western

import "github.com/segnokit/segno"

// LedgerLine is a short horizontal line extending the staff above or
// below its outer lines for one chord. Its position is its left end.
type LedgerLine struct {
	*segno.Path
}

// NewLedgerLine creates a ledger line of the given length. Thickness
// comes from the font's legerLineThickness engraving default.
func NewLedgerLine(pos segno.Point, parent segno.Object, length segno.Unit, font *segno.MusicFont) *LedgerLine {
	pen := segno.NewPen(font.EngravingDefault("legerLineThickness"))
	p := segno.NewPath(pos, parent, pen, segno.NoBrush())
	p.MoveTo(segno.ZERO, segno.ZERO)
	p.LineTo(length, segno.ZERO)
	return &LedgerLine{Path: p}
}
