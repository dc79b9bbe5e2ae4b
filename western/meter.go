package western

import "strconv"

// Meter describes the glyphs of a time signature: an upper and a lower
// row of SMuFL glyph names, drawn stacked and centered.
type Meter struct {
	UpperGlyphs []string
	LowerGlyphs []string
}

// Common and cut time meters.
var (
	CommonTime = Meter{UpperGlyphs: []string{"timeSigCommon"}}
	CutTime    = Meter{UpperGlyphs: []string{"timeSigCutCommon"}}
)

// NumericMeter builds a meter from a numeric numerator and denominator,
// like 4/4 or 12/8. Multi-digit numbers become one glyph per digit.
func NumericMeter(upper, lower int) Meter {
	return Meter{
		UpperGlyphs: numeralGlyphs(upper),
		LowerGlyphs: numeralGlyphs(lower),
	}
}

func numeralGlyphs(n int) []string {
	digits := strconv.Itoa(n)
	glyphs := make([]string, len(digits))
	for i, d := range digits {
		glyphs[i] = "timeSig" + string(d)
	}
	return glyphs
}
