package segno

// PenPattern specifies the dash pattern of a stroked line.
type PenPattern int

const (
	// PenSolid specifies an unbroken line.
	PenSolid PenPattern = iota
	// PenDash specifies a dashed line.
	PenDash
	// PenDot specifies a dotted line.
	PenDot
	// PenDashDot specifies alternating dashes and dots.
	PenDashDot
	// PenInvisible specifies no visible stroke.
	PenInvisible
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapSquare specifies a square line cap extending past the endpoint.
	// This is the default: staff lines and barlines meet cleanly with it.
	LineCapSquare LineCap = iota
	// LineCapFlat specifies a flat line cap.
	LineCapFlat
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel LineJoin = iota
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter
	// LineJoinRound specifies a rounded join.
	LineJoinRound
)

// defaultPenThickness is used when a Pen is created with zero thickness.
// It approximates a hairline at typical raster resolutions.
const defaultPenThickness = Unit(0.2)

// Pen describes how paths and text outlines are stroked.
type Pen struct {
	Color     Color
	Thickness Unit
	Pattern   PenPattern
	Cap       LineCap
	Join      LineJoin
}

// NewPen creates a solid black pen with the given thickness.
// A zero thickness produces a hairline default.
func NewPen(thickness Unit) Pen {
	if thickness == ZERO {
		thickness = defaultPenThickness
	}
	return Pen{Color: Black, Thickness: thickness}
}

// NoPen returns an invisible pen.
func NoPen() Pen {
	return Pen{Pattern: PenInvisible}
}

// Invisible reports whether the pen draws nothing.
func (p Pen) Invisible() bool {
	return p.Pattern == PenInvisible || p.Color.A == 0
}
