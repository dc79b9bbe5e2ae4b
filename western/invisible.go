package western

import "github.com/segnokit/segno"

// InvisibleObject is a positioned spacer that draws nothing. It serves
// as an anchor for spanners and as a parent for grouped elements.
type InvisibleObject struct {
	segno.PositionedObject
}

// NewInvisibleObject creates an invisible object at pos under parent.
func NewInvisibleObject(pos segno.Point, parent segno.Object) *InvisibleObject {
	o := &InvisibleObject{}
	segno.Attach(o, pos, parent)
	return o
}
