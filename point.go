package segno

// Point represents a 2D position or displacement in document space.
type Point struct {
	X, Y Unit
}

// ORIGIN is the zero point.
var ORIGIN = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y Unit) Point {
	return Point{X: x, Y: y}
}

// PtMm creates a Point from millimeter coordinates.
func PtMm(x, y float64) Point {
	return Point{X: Mm(x), Y: Mm(y)}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * Unit(s), Y: p.Y * Unit(s)}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*Unit(t),
		Y: p.Y + (q.Y-p.Y)*Unit(t),
	}
}

// AlmostEqual reports whether both coordinates are equal within epsilon
// graphic units.
func (p Point) AlmostEqual(q Point, epsilon float64) bool {
	return p.X.AlmostEqual(q.X, epsilon) && p.Y.AlmostEqual(q.Y, epsilon)
}
