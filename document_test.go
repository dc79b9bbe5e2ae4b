package segno

import "testing"

func TestPageAtCreatesLazily(t *testing.T) {
	doc := NewDocument(PaperA4)
	if doc.PageCount() != 0 {
		t.Errorf("new document page count = %d, want 0", doc.PageCount())
	}

	p2 := doc.PageAt(2)
	if doc.PageCount() != 3 {
		t.Errorf("page count after PageAt(2) = %d, want 3", doc.PageCount())
	}
	if p2.Index() != 2 {
		t.Errorf("page index = %d, want 2", p2.Index())
	}
	if doc.PageAt(2) != p2 {
		t.Error("expected repeated PageAt to return the same page")
	}
}

func TestPageSides(t *testing.T) {
	doc := NewDocument(PaperA4)
	if got := doc.PageAt(0).Side(); got != DirectionRight {
		t.Errorf("first page side = %v, want right", got)
	}
	if got := doc.PageAt(1).Side(); got != DirectionLeft {
		t.Errorf("second page side = %v, want left", got)
	}
}

func TestPageOrigins(t *testing.T) {
	doc := NewDocument(PaperA4)
	p0 := doc.PageAt(0)
	p1 := doc.PageAt(1)

	want0 := Pt(PaperA4.MarginLeft, PaperA4.MarginTop)
	if !p0.Pos().AlmostEqual(want0, 1e-9) {
		t.Errorf("page 0 pos = %v, want %v", p0.Pos(), want0)
	}

	stride := PaperA4.Width + PageDisplayGap()
	want1 := Pt(stride+PaperA4.MarginLeft, PaperA4.MarginTop)
	if !p1.Pos().AlmostEqual(want1, 1e-9) {
		t.Errorf("page 1 pos = %v, want %v", p1.Pos(), want1)
	}
}

func TestPageOriginWithGutter(t *testing.T) {
	paper := PaperA4
	paper.Gutter = Mm(10)
	doc := NewDocument(paper)

	// Right-hand pages carry the gutter on the left.
	p0 := doc.PageAt(0)
	if got := p0.Pos().X; !got.AlmostEqual(paper.MarginLeft+paper.Gutter, 1e-9) {
		t.Errorf("gutter page 0 x = %v", got)
	}
	if got := p0.FullMarginLeft(); !got.AlmostEqual(paper.MarginLeft+paper.Gutter, 1e-9) {
		t.Errorf("FullMarginLeft = %v", got)
	}

	p1 := doc.PageAt(1)
	if got := p1.FullMarginRight(); !got.AlmostEqual(paper.MarginRight+paper.Gutter, 1e-9) {
		t.Errorf("FullMarginRight = %v", got)
	}
}

func TestPageBoundingRect(t *testing.T) {
	doc := NewDocument(PaperA4)
	r := doc.PageAt(0).BoundingRect()
	if !r.X.AlmostEqual(-PaperA4.MarginLeft, 1e-9) || !r.Y.AlmostEqual(-PaperA4.MarginTop, 1e-9) {
		t.Errorf("bounding rect corner = (%v, %v)", r.X, r.Y)
	}
	if r.Width != PaperA4.Width || r.Height != PaperA4.Height {
		t.Errorf("bounding rect size = (%v, %v)", r.Width, r.Height)
	}
}

func TestPaperLive(t *testing.T) {
	p := Paper{Width: 100, Height: 200, MarginTop: 10, MarginRight: 20, MarginBottom: 30, MarginLeft: 40, Gutter: 5}
	if got := p.LiveWidth(); got != 35 {
		t.Errorf("LiveWidth = %v, want 35", got)
	}
	if got := p.LiveHeight(); got != 160 {
		t.Errorf("LiveHeight = %v, want 160", got)
	}

	l := p.Landscape()
	if l.Width != 200 || l.Height != 100 {
		t.Errorf("landscape size = (%v, %v)", l.Width, l.Height)
	}
	if l.MarginTop != 40 || l.MarginRight != 10 {
		t.Errorf("landscape margins rotated wrong: top %v right %v", l.MarginTop, l.MarginRight)
	}
}
