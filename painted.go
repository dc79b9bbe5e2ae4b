package segno

// Painted is implemented by objects that carry drawing style: a pen for
// outlines and a brush for fills.
type Painted interface {
	Object
	Pen() Pen
	SetPen(Pen)
	Brush() Brush
	SetBrush(Brush)
}

// PaintedObject is the embeddable core of every visible document entity.
// It extends PositionedObject with a pen, a brush, and a z-index
// controlling draw order.
type PaintedObject struct {
	PositionedObject
	pen    Pen
	brush  Brush
	zIndex int
}

// Pen returns the pen used to stroke outlines.
func (o *PaintedObject) Pen() Pen { return o.pen }

// SetPen sets the pen used to stroke outlines.
func (o *PaintedObject) SetPen(p Pen) { o.pen = p }

// Brush returns the brush used to fill shapes.
func (o *PaintedObject) Brush() Brush { return o.brush }

// SetBrush sets the brush used to fill shapes.
func (o *PaintedObject) SetBrush(b Brush) { o.brush = b }

// ZIndex returns the draw-order index. Objects with lower z-index are
// drawn first, placing them behind higher ones.
func (o *PaintedObject) ZIndex() int { return o.zIndex }

// SetZIndex sets the draw-order index.
func (o *PaintedObject) SetZIndex(z int) { o.zIndex = z }

// AttachPainted initializes the PaintedObject embedded in self with the
// given style and attaches it at pos under parent.
func AttachPainted(self Painted, pos Point, parent Object, pen Pen, brush Brush) {
	Attach(self, pos, parent)
	self.SetPen(pen)
	self.SetBrush(brush)
}
