package segno

import "iter"

// Object is implemented by every entity in a document tree: pages, paths,
// text, staves, and all western notation elements. Concrete types embed
// PositionedObject and register themselves with Attach.
type Object interface {
	// Pos returns the position relative to the parent.
	Pos() Point

	// SetPos moves the object relative to its parent.
	SetPos(Point)

	// Parent returns the parent object, or nil for the document root.
	Parent() Object

	// Children returns the direct children in attachment order.
	Children() []Object

	// private prevents external implementation without embedding
	base() *PositionedObject
}

// PositionedObject is the embeddable core of every document entity.
// It records a parent-relative position and the parent/children links of
// the document tree. The zero value is usable once passed to Attach.
type PositionedObject struct {
	pos      Point
	parent   Object
	children []Object
	self     Object
}

func (o *PositionedObject) base() *PositionedObject { return o }

// Pos returns the position relative to the parent.
func (o *PositionedObject) Pos() Point { return o.pos }

// SetPos moves the object relative to its parent.
func (o *PositionedObject) SetPos(p Point) { o.pos = p }

// X returns the x position relative to the parent.
func (o *PositionedObject) X() Unit { return o.pos.X }

// SetX sets the x position relative to the parent.
func (o *PositionedObject) SetX(x Unit) { o.pos.X = x }

// Y returns the y position relative to the parent.
func (o *PositionedObject) Y() Unit { return o.pos.Y }

// SetY sets the y position relative to the parent.
func (o *PositionedObject) SetY(y Unit) { o.pos.Y = y }

// Parent returns the parent object, or nil for the document root.
func (o *PositionedObject) Parent() Object { return o.parent }

// Children returns the direct children in attachment order.
// The returned slice is shared; callers must not modify it.
func (o *PositionedObject) Children() []Object { return o.children }

// Attach initializes the PositionedObject embedded in self, placing it at
// pos under parent. Every concrete constructor must call Attach exactly
// once before the object participates in layout or rendering.
func Attach(self Object, pos Point, parent Object) {
	b := self.base()
	b.self = self
	b.pos = pos
	b.parent = parent
	if parent != nil {
		pb := parent.base()
		pb.children = append(pb.children, self)
	}
}

// Remove detaches obj from its parent. Objects created only to compute
// geometry are removed before the next render pass.
func Remove(obj Object) {
	b := obj.base()
	if b.parent == nil {
		return
	}
	pb := b.parent.base()
	for i, c := range pb.children {
		if c == obj {
			pb.children = append(pb.children[:i], pb.children[i+1:]...)
			break
		}
	}
	b.parent = nil
}

// Ancestors iterates over the ancestors of obj from parent to root.
func Ancestors(obj Object) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for p := obj.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Descendants iterates over all descendants of obj depth-first in
// attachment order. obj itself is not included.
func Descendants(obj Object) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		var walk func(Object) bool
		walk = func(o Object) bool {
			for _, c := range o.Children() {
				if !yield(c) {
					return false
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(obj)
	}
}

// TreePos returns the position of obj summed through its ancestor chain.
// For objects inside a Flowable this is a position in flowable space, not
// canvas space; the layout engine maps it during rendering.
func TreePos(obj Object) Point {
	pos := obj.Pos()
	for a := range Ancestors(obj) {
		pos = pos.Add(a.Pos())
	}
	return pos
}

// MapBetween returns the position of dst relative to src, computed
// through tree positions.
func MapBetween(src, dst Object) Point {
	return TreePos(dst).Sub(TreePos(src))
}

// DescendantPos returns the position of descendant relative to ancestor.
// This is MapBetween with the arguments named for the common case.
func DescendantPos(ancestor, descendant Object) Point {
	return MapBetween(ancestor, descendant)
}

// DescendantPosX returns the x position of descendant relative to ancestor.
func DescendantPosX(ancestor, descendant Object) Unit {
	return DescendantPos(ancestor, descendant).X
}

// FlowableOf returns the closest Flowable ancestor of obj, or nil if the
// object is not in a flowable.
func FlowableOf(obj Object) *Flowable {
	for a := range Ancestors(obj) {
		if f, ok := a.(*Flowable); ok {
			return f
		}
	}
	return nil
}

// PageOf returns the Page ancestor of obj, or nil if the object is not
// attached under a page or document.
func PageOf(obj Object) *Page {
	if p, ok := obj.(*Page); ok {
		return p
	}
	for a := range Ancestors(obj) {
		if p, ok := a.(*Page); ok {
			return p
		}
	}
	return nil
}

// DocumentOf returns the Document root of obj, or nil if the tree is not
// rooted in a document.
func DocumentOf(obj Object) *Document {
	if d, ok := obj.(*Document); ok {
		return d
	}
	for a := range Ancestors(obj) {
		if d, ok := a.(*Document); ok {
			return d
		}
	}
	return nil
}
