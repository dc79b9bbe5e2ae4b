package backend

import "github.com/segnokit/segno"

// PageMapper maps canvas-space positions back to the page they land on.
// Pages sit side by side in canvas space separated by a display gap, so
// the page index is a function of x alone.
type PageMapper struct {
	paper  segno.Paper
	stride segno.Unit
}

// NewPageMapper creates a mapper for the given paper geometry.
func NewPageMapper(paper segno.Paper) PageMapper {
	return PageMapper{
		paper:  paper,
		stride: paper.Width + segno.PageDisplayGap(),
	}
}

// PageFor returns the index of the page covering a canvas x position.
func (m PageMapper) PageFor(x segno.Unit) int {
	if x < segno.ZERO {
		return 0
	}
	return int(x / m.stride)
}

// PageOrigin returns the canvas position of a page's paper corner.
func (m PageMapper) PageOrigin(page int) segno.Point {
	return segno.Pt(segno.Unit(page)*m.stride, segno.ZERO)
}

// Local converts a canvas position to page-local coordinates, with the
// origin at the page's paper corner.
func (m PageMapper) Local(p segno.Point, page int) segno.Point {
	return p.Sub(m.PageOrigin(page))
}

// DrawOp is one buffered draw call in canvas coordinates. Exactly one
// of Path and Glyphs is set.
type DrawOp struct {
	Path   *segno.PathSpec
	Glyphs *segno.GlyphRun
}

// Recorder is a segno.Canvas that buffers draw calls per page in draw
// order. Document rendering walks objects in z order across all pages,
// while exporters need the calls grouped page by page; recording
// decouples the two.
type Recorder struct {
	mapper PageMapper
	pages  [][]DrawOp
}

// NewRecorder creates a recorder for the given paper geometry.
func NewRecorder(paper segno.Paper) *Recorder {
	return &Recorder{mapper: NewPageMapper(paper)}
}

// Record renders the document into a fresh recorder.
func Record(doc *segno.Document) (*Recorder, error) {
	r := NewRecorder(doc.Paper())
	if err := doc.Render(r); err != nil {
		return nil, err
	}
	// Rendering may have created trailing empty pages.
	for len(r.pages) < doc.PageCount() {
		r.pages = append(r.pages, nil)
	}
	return r, nil
}

// Mapper returns the recorder's page mapper.
func (r *Recorder) Mapper() PageMapper { return r.mapper }

// DrawPath buffers a path draw.
func (r *Recorder) DrawPath(spec segno.PathSpec) error {
	page := r.mapper.PageFor(spec.Pos.X)
	r.append(page, DrawOp{Path: &spec})
	return nil
}

// DrawGlyphRun buffers a glyph run draw.
func (r *Recorder) DrawGlyphRun(run segno.GlyphRun) error {
	page := r.mapper.PageFor(run.Pos.X)
	r.append(page, DrawOp{Glyphs: &run})
	return nil
}

func (r *Recorder) append(page int, op DrawOp) {
	for len(r.pages) <= page {
		r.pages = append(r.pages, nil)
	}
	r.pages[page] = append(r.pages[page], op)
}

// PageCount returns the number of pages with buffered content,
// including empty pages before the last drawn one.
func (r *Recorder) PageCount() int { return len(r.pages) }

// PageOps returns the draw calls of one page in draw order.
func (r *Recorder) PageOps(page int) []DrawOp {
	if page < 0 || page >= len(r.pages) {
		return nil
	}
	return r.pages[page]
}
