package segno

import (
	"sort"
)

// Renderable is implemented by document objects that draw themselves.
// Objects without it (plain PositionedObjects, flowables, pages) only
// contribute position to their descendants.
type Renderable interface {
	Object

	// RenderComplete draws the whole object at the given canvas-space
	// position.
	RenderComplete(c Canvas, pos Point) error
}

// Breakable is implemented by renderables that can be split across
// flowable line breaks, like staves and spanner paths.
type Breakable interface {
	Renderable

	// BreakableLength returns the flowable-space width the object
	// occupies. Objects reporting 0 are never split.
	BreakableLength() Unit

	// RenderSlice draws the horizontal slice [clipStartX,
	// clipStartX+clipWidth) of the object with the slice's left edge at
	// pos. A negative clipWidth means no right clip edge.
	RenderSlice(c Canvas, pos Point, clipStartX, clipWidth Unit) error
}

// PreRenderer is implemented by objects needing work before layout and
// drawing, like staff groups computing fringe margins.
type PreRenderer interface {
	Object
	PreRender()
}

// PostRenderer is implemented by objects needing cleanup after a render
// pass.
type PostRenderer interface {
	Object
	PostRender()
}

// zIndexed is satisfied by PaintedObject embedders.
type zIndexed interface {
	ZIndex() int
}

// Render draws the whole document to a canvas. It runs pre-render
// hooks, lays out every flowable, draws all renderable objects in
// z-index order (tree order within equal z), and runs post-render
// hooks. Objects inside flowables are mapped onto generated lines and
// sliced across breaks.
func (d *Document) Render(c Canvas) error {
	for obj := range Descendants(d) {
		if pr, ok := obj.(PreRenderer); ok {
			pr.PreRender()
		}
	}

	for obj := range Descendants(d) {
		if f, ok := obj.(*Flowable); ok {
			f.Layout(d)
		}
	}

	var renderables []Renderable
	for obj := range Descendants(d) {
		if r, ok := obj.(Renderable); ok {
			renderables = append(renderables, r)
		}
	}
	sort.SliceStable(renderables, func(i, j int) bool {
		return zIndexOf(renderables[i]) < zIndexOf(renderables[j])
	})

	for _, r := range renderables {
		if err := d.renderObject(c, r); err != nil {
			return err
		}
	}

	for obj := range Descendants(d) {
		if pr, ok := obj.(PostRenderer); ok {
			pr.PostRender()
		}
	}
	return nil
}

func zIndexOf(obj Object) int {
	if z, ok := obj.(zIndexed); ok {
		return z.ZIndex()
	}
	return 0
}

func (d *Document) renderObject(c Canvas, r Renderable) error {
	f := FlowableOf(r)
	if f == nil {
		return r.RenderComplete(c, d.CanvasPos(r))
	}
	return renderFlowed(c, f, r)
}

// renderFlowed maps a flowed object onto its flowable's generated lines.
// Objects fitting on one line render complete; objects spanning breaks
// render a slice per covered line.
func renderFlowed(c Canvas, f *Flowable, r Renderable) error {
	pos := DescendantPos(f, r)
	first, firstIdx := lineIndexAt(f, pos.X)
	if first == nil {
		return r.RenderComplete(c, TreePos(r))
	}

	var length Unit
	b, breakable := r.(Breakable)
	if breakable {
		length = b.BreakableLength()
	}
	if !breakable || length <= ZERO || pos.X+length <= first.End() {
		return r.RenderComplete(c, f.MapToCanvas(pos))
	}

	// First slice runs from the object start to the end of its line.
	firstWidth := first.End() - pos.X
	if err := b.RenderSlice(c, f.MapToCanvas(pos), ZERO, firstWidth); err != nil {
		return err
	}

	clipStart := firstWidth
	remaining := length - firstWidth
	lines := f.Lines()
	for i := firstIdx + 1; i < len(lines) && remaining > ZERO; i++ {
		line := lines[i]
		slicePos := line.Pos.Add(Pt(ZERO, pos.Y))
		if remaining <= line.Length {
			// Final slice: no right clip edge, trailing geometry like
			// anchored endpoints may extend past the reported length.
			return b.RenderSlice(c, slicePos, clipStart, Unit(-1))
		}
		if err := b.RenderSlice(c, slicePos, clipStart, line.Length); err != nil {
			return err
		}
		clipStart += line.Length
		remaining -= line.Length
	}
	return nil
}

func lineIndexAt(f *Flowable, x Unit) (*NewLine, int) {
	lines := f.Lines()
	for i, line := range lines {
		if line.Covers(x) {
			return line, i
		}
	}
	if len(lines) > 0 {
		return lines[len(lines)-1], len(lines) - 1
	}
	return nil, -1
}
