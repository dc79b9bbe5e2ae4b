package segno

// pageDisplayGap is the horizontal canvas-space gap between consecutive
// pages.
var pageDisplayGap = Mm(25)

// PageDisplayGap returns the horizontal canvas-space gap between
// consecutive pages. Backends use it to map canvas positions back to
// pages.
func PageDisplayGap() Unit { return pageDisplayGap }

// Document is the root of a score: it owns the paper geometry and an
// ordered sequence of pages. Pages are created lazily; indexing past the
// last page creates it and any intermediate pages, so sparse documents
// need no page bookkeeping by the caller.
//
// Objects may be attached directly to the document, in which case they
// are treated as children of the first page's live area.
type Document struct {
	PositionedObject
	paper Paper
	pages []*Page
}

// NewDocument creates an empty document with the given paper geometry.
// The paper is fixed for the life of the document (layout relies on page
// dimensions never changing).
func NewDocument(paper Paper) *Document {
	d := &Document{paper: paper}
	Attach(d, ORIGIN, nil)
	return d
}

// Paper returns the document's paper geometry.
func (d *Document) Paper() Paper { return d.paper }

// PageCount returns the number of pages created so far.
func (d *Document) PageCount() int { return len(d.pages) }

// Pages returns the pages created so far.
func (d *Document) Pages() []*Page { return d.pages }

// PageAt returns the page at the given index, creating it and any
// intermediate pages as needed.
func (d *Document) PageAt(index int) *Page {
	for len(d.pages) <= index {
		i := len(d.pages)
		p := &Page{
			index: i,
			side:  pageSide(i),
			paper: d.paper,
		}
		Attach(p, d.pageOrigin(i), d)
		d.pages = append(d.pages, p)
	}
	return d.pages[index]
}

// pageSide returns the print side of a page: the first page is a
// right-hand page, as in a bound book.
func pageSide(index int) DirectionX {
	if index%2 == 0 {
		return DirectionRight
	}
	return DirectionLeft
}

// pageOrigin returns the canvas-space position of a page's live-area
// corner. Pages are laid out left to right with a display gap.
func (d *Document) pageOrigin(index int) Point {
	x := Unit(index) * (d.paper.Width + pageDisplayGap)
	marginLeft := d.paper.MarginLeft
	if pageSide(index) == DirectionRight {
		marginLeft += d.paper.Gutter
	}
	return Pt(x+marginLeft, d.paper.MarginTop)
}

// CanvasPos returns the canvas-space position of obj, accounting for the
// page it is attached under. Objects attached directly to the document
// are treated as children of the first page.
//
// This does not apply flowable line mapping; the render walk handles
// flowed objects separately.
func (d *Document) CanvasPos(obj Object) Point {
	if PageOf(obj) != nil {
		return TreePos(obj)
	}
	return d.PageAt(0).Pos().Add(TreePos(obj))
}
