package pdfexport

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/segnokit/segno"
	"github.com/segnokit/segno/backend"
)

func init() {
	backend.Register(backend.BackendPDF, func() backend.RenderBackend {
		return New()
	})
}

// Backend is the PDF export backend.
type Backend struct {
	initialized bool
}

// New creates an uninitialized PDF backend.
func New() *Backend { return &Backend{} }

// Name returns "pdf".
func (b *Backend) Name() string { return backend.BackendPDF }

// Headless reports true: PDF export needs no display.
func (b *Backend) Headless() bool { return true }

// Init initializes the backend.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *Backend) Close() { b.initialized = false }

// Export renders the document and writes all pages to one PDF file.
// Document units are PDF points, so pages export at exact physical
// size.
func (b *Backend) Export(doc *segno.Document, path string, opts ...backend.ExportOption) error {
	if !b.initialized {
		return backend.ErrNotInitialized
	}
	cfg := backend.NewExportConfig(opts)

	rec, err := backend.Record(doc)
	if err != nil {
		return fmt.Errorf("pdfexport: rendering document: %w", err)
	}

	paper := doc.Paper()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: float64(paper.Width),
			Ht: float64(paper.Height),
		},
	})
	pdf.SetAutoPageBreak(false, 0)

	w := &pageWriter{pdf: pdf, mapper: rec.Mapper()}
	pageCount := rec.PageCount()
	if pageCount == 0 {
		pageCount = 1
	}
	for page := 0; page < pageCount; page++ {
		pdf.AddPage()
		w.fillBackground(paper, cfg.Background)
		for _, op := range rec.PageOps(page) {
			if err := w.draw(page, op); err != nil {
				return err
			}
		}
	}

	if pdf.Err() {
		return fmt.Errorf("pdfexport: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdfexport: writing %s: %w", path, err)
	}
	segno.Logger().Debug("exported pdf", "path", path, "pages", pageCount)
	return nil
}

// pageWriter translates recorded draw calls into fpdf operations.
type pageWriter struct {
	pdf    *fpdf.Fpdf
	mapper backend.PageMapper
}

func (w *pageWriter) fillBackground(paper segno.Paper, bg segno.Color) {
	if bg == segno.White || bg.A == 0 {
		return
	}
	w.pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	w.pdf.Rect(0, 0, float64(paper.Width), float64(paper.Height), "F")
}

func (w *pageWriter) draw(page int, op backend.DrawOp) error {
	if op.Path != nil {
		return w.drawPath(page, op.Path)
	}
	return w.drawGlyphRun(page, op.Glyphs)
}

func (w *pageWriter) drawPath(page int, spec *segno.PathSpec) error {
	stroke := !spec.Pen.Invisible()
	fill := !spec.Brush.Invisible()
	if !stroke && !fill {
		return nil
	}

	done := w.beginClip(page, spec.Clip)
	defer done()

	pos := w.mapper.Local(spec.Pos, page)
	w.tracePath(pos, spec.Elements)
	w.pdf.DrawPath(w.applyStyle(spec.Pen, spec.Brush, stroke, fill))
	return nil
}

func (w *pageWriter) drawGlyphRun(page int, run *segno.GlyphRun) error {
	fill := !run.Brush.Invisible()
	stroke := !run.Pen.Invisible()
	if !fill && !stroke {
		return nil
	}

	src, err := run.Font.Source()
	if err != nil {
		return fmt.Errorf("pdfexport: %w", err)
	}
	size := run.Font.Size() * segno.Unit(run.Scale)
	pos := w.mapper.Local(run.Pos, page)

	done := w.beginClip(page, run.Clip)
	defer done()

	if run.Rotation != 0 {
		w.pdf.TransformBegin()
		// fpdf rotation is counterclockwise; document rotation is
		// clockwise in y-down space.
		w.pdf.TransformRotate(-run.Rotation, float64(pos.X), float64(pos.Y))
		defer w.pdf.TransformEnd()
	}

	style := w.applyStyle(run.Pen, run.Brush, stroke, fill)
	cursor := pos.X
	for _, r := range run.Text {
		elements, advance, err := src.GlyphPath(r, size)
		if err != nil {
			return fmt.Errorf("pdfexport: %w", err)
		}
		if len(elements) > 0 {
			w.tracePath(segno.Pt(cursor, pos.Y), elements)
			w.pdf.DrawPath(style)
		}
		cursor += advance
	}
	return nil
}

// beginClip starts a rectangular clip region if the op carries one. The
// returned func ends it.
func (w *pageWriter) beginClip(page int, clip *segno.Rect) func() {
	if clip == nil {
		return func() {}
	}
	local := w.mapper.Local(segno.Pt(clip.X, clip.Y), page)
	w.pdf.ClipRect(float64(local.X), float64(local.Y), float64(clip.Width), float64(clip.Height), false)
	return w.pdf.ClipEnd
}

// applyStyle sets pen and brush state and returns the fpdf path paint
// style string.
func (w *pageWriter) applyStyle(pen segno.Pen, brush segno.Brush, stroke, fill bool) string {
	if stroke {
		w.pdf.SetDrawColor(int(pen.Color.R), int(pen.Color.G), int(pen.Color.B))
		w.pdf.SetLineWidth(float64(pen.Thickness))
		w.pdf.SetLineCapStyle(capStyle(pen.Cap))
		w.pdf.SetLineJoinStyle(joinStyle(pen.Join))
		w.pdf.SetDashPattern(dashPattern(pen), 0)
	}
	if fill {
		w.pdf.SetFillColor(int(brush.Color.R), int(brush.Color.G), int(brush.Color.B))
	}
	switch {
	case stroke && fill:
		return "FD"
	case fill:
		return "F"
	default:
		return "D"
	}
}

func (w *pageWriter) tracePath(pos segno.Point, elements []segno.PathElement) {
	x, y := float64(pos.X), float64(pos.Y)
	for _, elem := range elements {
		switch e := elem.(type) {
		case segno.MoveTo:
			w.pdf.MoveTo(x+float64(e.Point.X), y+float64(e.Point.Y))
		case segno.LineTo:
			w.pdf.LineTo(x+float64(e.Point.X), y+float64(e.Point.Y))
		case segno.QuadTo:
			w.pdf.CurveTo(
				x+float64(e.Control.X), y+float64(e.Control.Y),
				x+float64(e.Point.X), y+float64(e.Point.Y),
			)
		case segno.CubicTo:
			w.pdf.CurveBezierCubicTo(
				x+float64(e.Control1.X), y+float64(e.Control1.Y),
				x+float64(e.Control2.X), y+float64(e.Control2.Y),
				x+float64(e.Point.X), y+float64(e.Point.Y),
			)
		case segno.ClosePath:
			w.pdf.ClosePath()
		}
	}
}

func capStyle(c segno.LineCap) string {
	switch c {
	case segno.LineCapRound:
		return "round"
	case segno.LineCapFlat:
		return "butt"
	default:
		return "square"
	}
}

func joinStyle(j segno.LineJoin) string {
	switch j {
	case segno.LineJoinMiter:
		return "miter"
	case segno.LineJoinRound:
		return "round"
	default:
		return "bevel"
	}
}

// dashPattern converts a pen pattern to dash lengths scaled by the pen
// thickness. A nil pattern draws solid.
func dashPattern(pen segno.Pen) []float64 {
	t := float64(pen.Thickness)
	switch pen.Pattern {
	case segno.PenDash:
		return []float64{3 * t, 3 * t}
	case segno.PenDot:
		return []float64{t, 2 * t}
	case segno.PenDashDot:
		return []float64{3 * t, 2 * t, t, 2 * t}
	default:
		return nil
	}
}
