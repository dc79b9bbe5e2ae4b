package segno

// Rect is an axis-aligned rectangle positioned at its top-left corner.
type Rect struct {
	X, Y          Unit
	Width, Height Unit
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, width, height Unit) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() Unit {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() Unit {
	return r.Y + r.Height
}

// Translate returns the rect shifted by the given offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, Width: r.Width, Height: r.Height}
}

// Scale returns the rect with position and size scaled by a scalar.
func (r Rect) Scale(s float64) Rect {
	return Rect{
		X:      r.X * Unit(s),
		Y:      r.Y * Unit(s),
		Width:  r.Width * Unit(s),
		Height: r.Height * Unit(s),
	}
}

// Contains reports whether the point lies inside or on the edge of the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Union returns the smallest rect containing both r and q.
func (r Rect) Union(q Rect) Rect {
	x := MinUnit(r.X, q.X)
	y := MinUnit(r.Y, q.Y)
	right := MaxUnit(r.Right(), q.Right())
	bottom := MaxUnit(r.Bottom(), q.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Overlaps reports whether two rects share any area.
func (r Rect) Overlaps(q Rect) bool {
	return r.X < q.Right() && q.X < r.Right() && r.Y < q.Bottom() && q.Y < r.Bottom()
}
