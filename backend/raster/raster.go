package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/segnokit/segno"
	"github.com/segnokit/segno/backend"
)

func init() {
	backend.Register(backend.BackendRaster, func() backend.RenderBackend {
		return New()
	})
}

// Backend is the PNG raster export backend.
type Backend struct {
	initialized bool
}

// New creates an uninitialized raster backend.
func New() *Backend { return &Backend{} }

// Name returns "raster".
func (b *Backend) Name() string { return backend.BackendRaster }

// Headless reports true: rasterization needs no display.
func (b *Backend) Headless() bool { return true }

// Init initializes the backend.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *Backend) Close() { b.initialized = false }

// Export renders the document and writes one PNG per page. A single
// page writes to path as given; multiple pages write to page-indexed
// names derived from path ("score.png" becomes "score-1.png",
// "score-2.png", ...). Pages rasterize in parallel.
func (b *Backend) Export(doc *segno.Document, path string, opts ...backend.ExportOption) error {
	if !b.initialized {
		return backend.ErrNotInitialized
	}
	cfg := backend.NewExportConfig(opts)
	if cfg.DPI <= 0 {
		return fmt.Errorf("raster: invalid DPI %v", cfg.DPI)
	}

	rec, err := backend.Record(doc)
	if err != nil {
		return fmt.Errorf("raster: rendering document: %w", err)
	}
	pageCount := rec.PageCount()
	if pageCount == 0 {
		pageCount = 1
	}

	paper := doc.Paper()
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for page := 0; page < pageCount; page++ {
		g.Go(func() error {
			img, err := RenderPage(rec, paper, page, cfg)
			if err != nil {
				return err
			}
			return writePNG(PageFilePath(path, page, pageCount), img)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	segno.Logger().Debug("exported png", "path", path, "pages", pageCount, "dpi", cfg.DPI)
	return nil
}

// RenderPage rasterizes one page of a recorded document at the
// configured resolution.
func RenderPage(rec *backend.Recorder, paper segno.Paper, page int, cfg backend.ExportConfig) (*image.RGBA, error) {
	scale := cfg.DPI / 72
	w := int(math.Ceil(float64(paper.Width) * scale))
	h := int(math.Ceil(float64(paper.Height) * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: degenerate page size %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if cfg.Background.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(rgba(cfg.Background)), image.Point{}, draw.Src)
	}

	p := &pagePainter{
		img:    img,
		mapper: rec.Mapper(),
		page:   page,
		scale:  scale,
	}
	for _, op := range rec.PageOps(page) {
		if err := p.draw(op); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// PageFilePath returns the output file name for one page. With a single
// page it is path unchanged; otherwise a 1-based page number is
// inserted before the extension.
func PageFilePath(path string, page, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), page+1, ext)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Join(fmt.Errorf("raster: encoding %s: %w", path, err), os.Remove(path))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}
