package western

import (
	"fmt"
	"math/bits"
)

// Duration is a written note length as a fraction of a whole note. The
// fraction must be expressible as a power-of-two base division with
// augmentation dots: the numerator must be one less than a power of two
// (1, 3, 7, 15, ...) and the denominator a power of two.
type Duration struct {
	numerator   int
	denominator int
}

// NewDuration creates a duration of numerator/denominator whole notes.
func NewDuration(numerator, denominator int) (Duration, error) {
	if numerator < 1 || denominator < 1 {
		return Duration{}, fmt.Errorf("%w: %d/%d", ErrInvalidDuration, numerator, denominator)
	}
	if !isPowerOfTwo(denominator) {
		return Duration{}, fmt.Errorf("%w: denominator %d is not a power of two", ErrInvalidDuration, denominator)
	}
	if !isPowerOfTwo(numerator + 1) {
		return Duration{}, fmt.Errorf("%w: %d/%d is not a dotted power-of-two division", ErrInvalidDuration, numerator, denominator)
	}
	dots := bits.Len(uint(numerator+1)) - 2
	if denominator>>dots == 0 {
		return Duration{}, fmt.Errorf("%w: %d/%d has more dots than divisions", ErrInvalidDuration, numerator, denominator)
	}
	return Duration{numerator: numerator, denominator: denominator}, nil
}

// MustDuration is NewDuration that panics on error, for statically known
// durations.
func MustDuration(numerator, denominator int) Duration {
	d, err := NewDuration(numerator, denominator)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Numerator returns the fraction numerator.
func (d Duration) Numerator() int { return d.numerator }

// Denominator returns the fraction denominator.
func (d Duration) Denominator() int { return d.denominator }

// Dots returns the number of augmentation dots.
func (d Duration) Dots() int {
	return bits.Len(uint(d.numerator+1)) - 2
}

// BaseDivision returns the undotted base division: 1 for a whole note,
// 2 for a half, 4 for a quarter, and so on.
func (d Duration) BaseDivision() int {
	return d.denominator >> d.Dots()
}

// RequiresStem reports whether a note of this duration carries a stem.
func (d Duration) RequiresStem() bool {
	return d.BaseDivision() >= 2
}

// FlagCount returns the number of flags or beams the duration carries:
// one for an eighth, two for a sixteenth, and so on.
func (d Duration) FlagCount() int {
	base := d.BaseDivision()
	if base < 8 {
		return 0
	}
	return bits.Len(uint(base)) - 3
}

// NoteheadGlyphName returns the canonical SMuFL notehead glyph for the
// duration's base division.
func (d Duration) NoteheadGlyphName() string {
	switch d.BaseDivision() {
	case 1:
		return "noteheadWhole"
	case 2:
		return "noteheadHalf"
	default:
		return "noteheadBlack"
	}
}

// RestGlyphName returns the canonical SMuFL rest glyph for the
// duration's base division.
func (d Duration) RestGlyphName() string {
	switch d.BaseDivision() {
	case 1:
		return "restWhole"
	case 2:
		return "restHalf"
	case 4:
		return "restQuarter"
	case 8:
		return "rest8th"
	case 16:
		return "rest16th"
	case 32:
		return "rest32nd"
	case 64:
		return "rest64th"
	case 128:
		return "rest128th"
	case 256:
		return "rest256th"
	case 512:
		return "rest512th"
	default:
		return "rest1024th"
	}
}

// String renders the fraction.
func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.numerator, d.denominator)
}
