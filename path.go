package segno

// PathElement represents a single element in a vector path.
// Element points are relative to the owning Path unless the element
// carries an anchor parent, in which case they are relative to that
// object and resolved at render time. Bar lines spanning a staff system
// use anchored elements to reach the bottom staff.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point  Point
	Anchor Object
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point  Point
	Anchor Object
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve. Font glyph outlines decompose
// into quadratic segments.
type QuadTo struct {
	Control Point
	Point   Point
	Anchor  Object
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
	Anchor   Object
}

func (CubicTo) isPathElement() {}

// ClosePath closes the current subpath.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// Path is a vector path in the document tree. It is drawn with its pen
// and filled with its brush.
type Path struct {
	PaintedObject
	elements []PathElement
}

// NewPath creates an empty path at pos under parent.
func NewPath(pos Point, parent Object, pen Pen, brush Brush) *Path {
	p := &Path{}
	AttachPainted(p, pos, parent, pen, brush)
	return p
}

// NewRectPath creates a closed rectangular path of the given size.
func NewRectPath(pos Point, parent Object, width, height Unit, pen Pen, brush Brush) *Path {
	p := NewPath(pos, parent, pen, brush)
	p.MoveTo(ZERO, ZERO)
	p.LineTo(width, ZERO)
	p.LineTo(width, height)
	p.LineTo(ZERO, height)
	p.Close()
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y Unit) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y Unit) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// LineToAnchored draws a line to a point relative to another object.
// The point is resolved to path-relative coordinates at render time, so
// later repositioning of the anchor is reflected in the drawn path.
func (p *Path) LineToAnchored(x, y Unit, anchor Object) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y), Anchor: anchor})
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y Unit) {
	p.elements = append(p.elements, QuadTo{
		Control: Pt(cx, cy),
		Point:   Pt(x, y),
	})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y Unit) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// AppendElement appends a raw path element, allowing anchored curve
// segments the convenience methods do not cover.
func (p *Path) AppendElement(elem PathElement) {
	p.elements = append(p.elements, elem)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, ClosePath{})
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
}

// Elements returns the raw path elements, anchors unresolved.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// ResolvedElements returns the path elements with anchored points folded
// into path-relative coordinates.
func (p *Path) ResolvedElements() []PathElement {
	resolved := make([]PathElement, len(p.elements))
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			resolved[i] = MoveTo{Point: p.resolvePoint(e.Point, e.Anchor)}
		case LineTo:
			resolved[i] = LineTo{Point: p.resolvePoint(e.Point, e.Anchor)}
		case QuadTo:
			resolved[i] = QuadTo{
				Control: p.resolvePoint(e.Control, e.Anchor),
				Point:   p.resolvePoint(e.Point, e.Anchor),
			}
		case CubicTo:
			resolved[i] = CubicTo{
				Control1: p.resolvePoint(e.Control1, e.Anchor),
				Control2: p.resolvePoint(e.Control2, e.Anchor),
				Point:    p.resolvePoint(e.Point, e.Anchor),
			}
		default:
			resolved[i] = elem
		}
	}
	return resolved
}

func (p *Path) resolvePoint(pt Point, anchor Object) Point {
	if anchor == nil {
		return pt
	}
	return MapBetween(p, anchor).Add(pt)
}

// BreakableLength returns the horizontal extent of the path, used by the
// layout engine to determine how many flowable lines the path spans.
func (p *Path) BreakableLength() Unit {
	var maxX Unit
	for _, elem := range p.ResolvedElements() {
		switch e := elem.(type) {
		case MoveTo:
			maxX = MaxUnit(maxX, e.Point.X)
		case LineTo:
			maxX = MaxUnit(maxX, e.Point.X)
		case QuadTo:
			maxX = MaxUnit(maxX, MaxUnit(e.Point.X, e.Control.X))
		case CubicTo:
			maxX = MaxUnit(maxX, MaxUnit(e.Point.X, MaxUnit(e.Control1.X, e.Control2.X)))
		}
	}
	return maxX
}

// RenderComplete draws the whole path at the given canvas position.
func (p *Path) RenderComplete(c Canvas, pos Point) error {
	return c.DrawPath(PathSpec{
		Pos:      pos,
		Elements: p.ResolvedElements(),
		Pen:      p.Pen(),
		Brush:    p.Brush(),
	})
}

// RenderSlice draws the horizontal slice [clipStartX, clipStartX+clipWidth)
// of the path with its origin shifted so the slice starts at pos. A
// negative clipWidth means no right clip edge.
func (p *Path) RenderSlice(c Canvas, pos Point, clipStartX, clipWidth Unit) error {
	clip := sliceClip(pos, clipStartX, clipWidth)
	return c.DrawPath(PathSpec{
		Pos:      Pt(pos.X-clipStartX, pos.Y),
		Elements: p.ResolvedElements(),
		Pen:      p.Pen(),
		Brush:    p.Brush(),
		Clip:     clip,
	})
}

// sliceClip builds the canvas-space clip rect for a render slice starting
// at pos. Clip rects extend far beyond the page vertically; slicing only
// constrains the x axis.
func sliceClip(pos Point, clipStartX, clipWidth Unit) *Rect {
	if clipStartX == ZERO && clipWidth < ZERO {
		return nil
	}
	width := clipWidth
	if width < ZERO {
		width = Inch(1000)
	}
	r := NewRect(pos.X, pos.Y-Inch(500), width, Inch(1000))
	return &r
}
