package segno

// Paper describes page geometry: the physical sheet size, the margins
// bounding the live area, and an optional binding gutter.
// Paper is fixed when a document is created; layout never resizes pages.
type Paper struct {
	Width, Height Unit

	MarginTop    Unit
	MarginRight  Unit
	MarginBottom Unit
	MarginLeft   Unit

	// Gutter is extra binding margin applied on the spine side of each
	// page: the left side of right-hand pages and vice versa.
	Gutter Unit
}

// Common paper geometries with conventional 2cm / 1in margins.
var (
	PaperA4 = Paper{
		Width: Mm(210), Height: Mm(297),
		MarginTop: Mm(20), MarginRight: Mm(20), MarginBottom: Mm(20), MarginLeft: Mm(20),
	}

	PaperLetter = Paper{
		Width: Inch(8.5), Height: Inch(11),
		MarginTop: Inch(1), MarginRight: Inch(1), MarginBottom: Inch(1), MarginLeft: Inch(1),
	}
)

// LiveWidth returns the usable width inside margins and gutter.
func (p Paper) LiveWidth() Unit {
	return p.Width - p.MarginLeft - p.MarginRight - p.Gutter
}

// LiveHeight returns the usable height inside margins.
func (p Paper) LiveHeight() Unit {
	return p.Height - p.MarginTop - p.MarginBottom
}

// Landscape returns the paper rotated a quarter turn, with margins
// rotated along with it.
func (p Paper) Landscape() Paper {
	return Paper{
		Width: p.Height, Height: p.Width,
		MarginTop: p.MarginLeft, MarginRight: p.MarginTop,
		MarginBottom: p.MarginRight, MarginLeft: p.MarginBottom,
		Gutter: p.Gutter,
	}
}
