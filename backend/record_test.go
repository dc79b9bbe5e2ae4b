package backend

import (
	"testing"

	"github.com/segnokit/segno"
)

func TestPageMapper(t *testing.T) {
	m := NewPageMapper(segno.PaperA4)
	stride := segno.PaperA4.Width + segno.PageDisplayGap()

	if got := m.PageFor(segno.Mm(-5)); got != 0 {
		t.Errorf("PageFor(negative) = %d, want 0", got)
	}
	if got := m.PageFor(segno.ZERO); got != 0 {
		t.Errorf("PageFor(0) = %d, want 0", got)
	}
	if got := m.PageFor(stride * 1.5); got != 1 {
		t.Errorf("PageFor(1.5 strides) = %d, want 1", got)
	}
	if got := m.PageFor(stride * 2); got != 2 {
		t.Errorf("PageFor(2 strides) = %d, want 2", got)
	}

	origin := m.PageOrigin(2)
	if origin.X != stride*2 || origin.Y != segno.ZERO {
		t.Errorf("PageOrigin(2) = %v", origin)
	}

	p := segno.Pt(stride*2+segno.Mm(10), segno.Mm(20))
	local := m.Local(p, 2)
	if !local.X.AlmostEqual(segno.Mm(10), 1e-9) || !local.Y.AlmostEqual(segno.Mm(20), 1e-9) {
		t.Errorf("Local = %v, want (10mm, 20mm)", local)
	}
}

func TestRecorderBucketsByPage(t *testing.T) {
	r := NewRecorder(segno.PaperA4)
	stride := segno.PaperA4.Width + segno.PageDisplayGap()

	if err := r.DrawPath(segno.PathSpec{Pos: segno.Pt(segno.Mm(10), segno.ZERO)}); err != nil {
		t.Fatalf("DrawPath: %v", err)
	}
	if err := r.DrawGlyphRun(segno.GlyphRun{Pos: segno.Pt(stride*2+segno.Mm(10), segno.ZERO)}); err != nil {
		t.Fatalf("DrawGlyphRun: %v", err)
	}

	if got := r.PageCount(); got != 3 {
		t.Fatalf("PageCount = %d, want 3", got)
	}
	if ops := r.PageOps(0); len(ops) != 1 || ops[0].Path == nil {
		t.Errorf("page 0 ops = %v, want one path", ops)
	}
	if ops := r.PageOps(1); len(ops) != 0 {
		t.Errorf("page 1 ops = %v, want none", ops)
	}
	if ops := r.PageOps(2); len(ops) != 1 || ops[0].Glyphs == nil {
		t.Errorf("page 2 ops = %v, want one glyph run", ops)
	}
}

func TestRecorderPreservesDrawOrder(t *testing.T) {
	r := NewRecorder(segno.PaperA4)
	for i := 0; i < 3; i++ {
		spec := segno.PathSpec{Pos: segno.Pt(segno.Mm(float64(i)), segno.ZERO)}
		if err := r.DrawPath(spec); err != nil {
			t.Fatalf("DrawPath: %v", err)
		}
	}
	ops := r.PageOps(0)
	if len(ops) != 3 {
		t.Fatalf("op count = %d, want 3", len(ops))
	}
	for i, op := range ops {
		if got := op.Path.Pos.X; !got.AlmostEqual(segno.Mm(float64(i)), 1e-9) {
			t.Errorf("op %d pos = %v, want %v", i, got, segno.Mm(float64(i)))
		}
	}
}

func TestPageOpsOutOfRange(t *testing.T) {
	r := NewRecorder(segno.PaperA4)
	if r.PageOps(-1) != nil || r.PageOps(0) != nil {
		t.Error("expected nil ops for pages without content")
	}
}

func TestRecordPadsToDocumentPages(t *testing.T) {
	doc := segno.NewDocument(segno.PaperA4)
	doc.PageAt(2) // three pages, nothing drawn on them

	r, err := Record(doc)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if got := r.PageCount(); got != doc.PageCount() {
		t.Errorf("PageCount = %d, want %d", got, doc.PageCount())
	}
}
