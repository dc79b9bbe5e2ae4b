package segno

// BrushPattern specifies how enclosed path areas are filled.
type BrushPattern int

const (
	// BrushSolid specifies a uniform solid fill.
	BrushSolid BrushPattern = iota
	// BrushInvisible specifies no fill.
	BrushInvisible
)

// Brush describes how enclosed path areas and text shapes are filled.
type Brush struct {
	Color   Color
	Pattern BrushPattern
}

// NewBrush creates a solid brush of the given color.
func NewBrush(c Color) Brush {
	return Brush{Color: c, Pattern: BrushSolid}
}

// DefaultBrush returns the solid black brush used for text and filled
// glyphs.
func DefaultBrush() Brush {
	return NewBrush(Black)
}

// NoBrush returns an invisible brush.
func NoBrush() Brush {
	return Brush{Pattern: BrushInvisible}
}

// Invisible reports whether the brush fills nothing.
func (b Brush) Invisible() bool {
	return b.Pattern == BrushInvisible || b.Color.A == 0
}
