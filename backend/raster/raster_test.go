package raster

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/segnokit/segno"
	"github.com/segnokit/segno/backend"
)

func TestRegistration(t *testing.T) {
	if !backend.IsRegistered(backend.BackendRaster) {
		t.Fatal("expected the raster backend to register itself")
	}
	b := backend.Get(backend.BackendRaster)
	if b.Name() != backend.BackendRaster {
		t.Errorf("Name = %q", b.Name())
	}
	if !b.Headless() {
		t.Error("expected raster export to be headless")
	}
}

func TestExportBeforeInit(t *testing.T) {
	b := New()
	doc := segno.NewDocument(segno.PaperA4)
	if err := b.Export(doc, t.TempDir()+"/out.png"); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}

func TestExportInvalidDPI(t *testing.T) {
	b := New()
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	doc := segno.NewDocument(segno.PaperA4)
	if err := b.Export(doc, t.TempDir()+"/out.png", backend.WithDPI(0)); err == nil {
		t.Error("expected an error for zero DPI")
	}
}

func TestExportWritesPNGs(t *testing.T) {
	b := New()
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer b.Close()

	doc := segno.NewDocument(segno.PaperA4)
	page0 := doc.PageAt(0)
	segno.NewRectPath(segno.PtMm(30, 30), page0, segno.Mm(40), segno.Mm(20),
		segno.NoPen(), segno.DefaultBrush())
	doc.PageAt(1)

	dir := t.TempDir()
	out := filepath.Join(dir, "score.png")
	if err := b.Export(doc, out, backend.WithDPI(36)); err != nil {
		t.Fatalf("Export: %v", err)
	}

	for page := 0; page < 2; page++ {
		f, err := os.Open(PageFilePath(out, page, 2))
		if err != nil {
			t.Fatalf("opening page %d: %v", page, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decoding page %d: %v", page, err)
		}
		if img.Bounds().Dx() != 298 || img.Bounds().Dy() != 421 {
			t.Errorf("page %d size = %v, want 298x421", page, img.Bounds())
		}
	}
}

func TestPageFilePath(t *testing.T) {
	tests := []struct {
		path  string
		page  int
		total int
		want  string
	}{
		{"score.png", 0, 1, "score.png"},
		{"score.png", 0, 3, "score-1.png"},
		{"score.png", 2, 3, "score-3.png"},
		{"out/dir/score.png", 1, 2, "out/dir/score-2.png"},
		{"score", 1, 2, "score-2"},
	}
	for _, tt := range tests {
		if got := PageFilePath(tt.path, tt.page, tt.total); got != tt.want {
			t.Errorf("PageFilePath(%q, %d, %d) = %q, want %q", tt.path, tt.page, tt.total, got, tt.want)
		}
	}
}

func TestRenderPageSize(t *testing.T) {
	rec := backend.NewRecorder(segno.PaperA4)
	cfg := backend.NewExportConfig([]backend.ExportOption{backend.WithDPI(72)})
	img, err := RenderPage(rec, segno.PaperA4, 0, cfg)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 596 || b.Dy() != 842 {
		t.Errorf("A4 at 72 DPI = %dx%d, want 596x842", b.Dx(), b.Dy())
	}
	// The default white background fills the page.
	r, g, bl, a := img.At(10, 10).RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff || a != 0xffff {
		t.Errorf("background pixel = %v,%v,%v,%v, want opaque white", r, g, bl, a)
	}
}

func TestFillRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	p := &pagePainter{
		img:    img,
		mapper: backend.NewPageMapper(segno.PaperA4),
		scale:  1,
	}
	elements := []segno.PathElement{
		segno.MoveTo{Point: segno.Pt(2, 2)},
		segno.LineTo{Point: segno.Pt(18, 2)},
		segno.LineTo{Point: segno.Pt(18, 18)},
		segno.LineTo{Point: segno.Pt(2, 18)},
		segno.ClosePath{},
	}
	p.fill(elements, segno.ORIGIN, img.Bounds(), rgba(segno.Black), nil)

	if _, _, _, a := img.At(10, 10).RGBA(); a == 0 {
		t.Error("expected the rect interior to be filled")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("expected the corner outside the rect to stay empty")
	}
}

func TestStrokeLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	p := &pagePainter{
		img:    img,
		mapper: backend.NewPageMapper(segno.PaperA4),
		scale:  1,
	}
	pen := segno.NewPen(2)
	elements := []segno.PathElement{
		segno.MoveTo{Point: segno.Pt(2, 10)},
		segno.LineTo{Point: segno.Pt(18, 10)},
	}
	p.stroke(elements, segno.ORIGIN, img.Bounds(), pen, nil)

	if _, _, _, a := img.At(10, 10).RGBA(); a == 0 {
		t.Error("expected a pixel on the stroked line")
	}
	if _, _, _, a := img.At(10, 2).RGBA(); a != 0 {
		t.Error("expected pixels far from the line to stay empty")
	}
}

func TestClipRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	p := &pagePainter{
		img:    img,
		mapper: backend.NewPageMapper(segno.PaperA4),
		scale:  2,
	}
	if got := p.clipRect(nil); got != img.Bounds() {
		t.Errorf("nil clip = %v, want full bounds", got)
	}

	clip := segno.NewRect(10, 10, 20, 20)
	if got, want := p.clipRect(&clip), image.Rect(20, 20, 60, 60); got != want {
		t.Errorf("clip = %v, want %v", got, want)
	}

	// Clips outside the page collapse to empty.
	far := segno.NewRect(1000, 1000, 10, 10)
	if got := p.clipRect(&far); !got.Empty() {
		t.Errorf("off-page clip = %v, want empty", got)
	}
}

func TestFlattenCurves(t *testing.T) {
	p := &pagePainter{
		mapper: backend.NewPageMapper(segno.PaperA4),
		scale:  1,
	}
	elements := []segno.PathElement{
		segno.MoveTo{Point: segno.Pt(0, 0)},
		segno.QuadTo{Control: segno.Pt(5, 10), Point: segno.Pt(10, 0)},
	}
	polys := p.flatten(elements, segno.ORIGIN, nil)
	if len(polys) != 1 {
		t.Fatalf("polyline count = %d, want 1", len(polys))
	}
	poly := polys[0]
	if len(poly) != 1+quadSteps {
		t.Errorf("flattened point count = %d, want %d", len(poly), 1+quadSteps)
	}
	end := poly[len(poly)-1]
	if end.x != 10 || end.y != 0 {
		t.Errorf("flattened endpoint = %v, want (10, 0)", end)
	}
}

func TestDashSegments(t *testing.T) {
	poly := []devPoint{{0, 0}, {10, 0}}

	solid := dashSegments(poly, nil)
	if len(solid) != 1 || solid[0] != [2]devPoint{{0, 0}, {10, 0}} {
		t.Errorf("solid segments = %v", solid)
	}

	dashed := dashSegments(poly, []float64{3, 3})
	if len(dashed) != 2 {
		t.Fatalf("dashed segment count = %d, want 2", len(dashed))
	}
	if dashed[0] != [2]devPoint{{0, 0}, {3, 0}} {
		t.Errorf("first dash = %v", dashed[0])
	}
	if dashed[1] != [2]devPoint{{6, 0}, {9, 0}} {
		t.Errorf("second dash = %v", dashed[1])
	}
}

func TestDashLengths(t *testing.T) {
	pen := segno.NewPen(2)
	if got := dashLengths(pen, 1); got != nil {
		t.Errorf("solid pen lengths = %v, want nil", got)
	}
	pen.Pattern = segno.PenDot
	got := dashLengths(pen, 2)
	if len(got) != 2 || got[0] != 4 || got[1] != 8 {
		t.Errorf("dot lengths = %v, want [4 8]", got)
	}
}

func TestAddStrokeQuadDegenerate(t *testing.T) {
	p := devPoint{5, 5}
	if addStrokeQuad(nil, p, p, 1, 0, 0, 0) {
		t.Error("zero-length flat-capped segment should draw nothing")
	}
}
