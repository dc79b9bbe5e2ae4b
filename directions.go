package segno

// DirectionX is a horizontal direction.
type DirectionX int

const (
	// DirectionLeft points toward negative x.
	DirectionLeft DirectionX = -1
	// DirectionRight points toward positive x.
	DirectionRight DirectionX = 1
)

// DirectionY is a vertical direction. Y increases downward, so
// DirectionUp is negative.
type DirectionY int

const (
	// DirectionUp points toward negative y.
	DirectionUp DirectionY = -1
	// DirectionDown points toward positive y.
	DirectionDown DirectionY = 1
)

// Flip returns the opposite vertical direction.
func (d DirectionY) Flip() DirectionY {
	return -d
}
