package segno

import "math"

// Unit is a distance in base graphic units, where one graphic unit is
// 1/72 inch (a typographic point). All geometry in segno is measured in
// Units; the Mm, Inch, and GraphicUnits constructors convert from
// physical measurements.
type Unit float64

// ZERO is the zero distance.
const ZERO Unit = 0

// unitsPerInch is the number of base graphic units in one inch.
const unitsPerInch = 72.0

// unitsPerMm is the number of base graphic units in one millimeter.
const unitsPerMm = unitsPerInch / 25.4

// Mm creates a Unit from millimeters.
func Mm(v float64) Unit {
	return Unit(v * unitsPerMm)
}

// Inch creates a Unit from inches.
func Inch(v float64) Unit {
	return Unit(v * unitsPerInch)
}

// GraphicUnits creates a Unit from raw graphic units (1/72 inch).
func GraphicUnits(v float64) Unit {
	return Unit(v)
}

// Mm returns the distance in millimeters.
func (u Unit) Mm() float64 {
	return float64(u) / unitsPerMm
}

// Inch returns the distance in inches.
func (u Unit) Inch() float64 {
	return float64(u) / unitsPerInch
}

// Pt returns the distance in typographic points, identical to the raw
// graphic-unit value.
func (u Unit) Pt() float64 {
	return float64(u)
}

// Abs returns the absolute distance.
func (u Unit) Abs() Unit {
	if u < 0 {
		return -u
	}
	return u
}

// Round returns the distance rounded to the nearest whole graphic unit.
func (u Unit) Round() Unit {
	return Unit(math.Round(float64(u)))
}

// AlmostEqual reports whether two distances are equal within epsilon
// graphic units. Layout arithmetic accumulates float error, so geometry
// comparisons should use this rather than ==.
func (u Unit) AlmostEqual(v Unit, epsilon float64) bool {
	return math.Abs(float64(u-v)) <= epsilon
}

// MaxUnit returns the larger of two distances.
func MaxUnit(a, b Unit) Unit {
	if a > b {
		return a
	}
	return b
}

// MinUnit returns the smaller of two distances.
func MinUnit(a, b Unit) Unit {
	if a < b {
		return a
	}
	return b
}
