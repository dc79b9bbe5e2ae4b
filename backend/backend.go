package backend

import (
	"errors"

	"github.com/segnokit/segno"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no suitable backend is
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when Export is called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Well-known backend names.
const (
	BackendPDF    = "pdf"
	BackendRaster = "raster"
)

// RenderBackend is the interface for export backends. Backends are
// registered via Register() and selected via Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g. "pdf", "raster").
	Name() string

	// Headless reports whether the backend works without a display.
	Headless() bool

	// Init initializes the backend. It must be called before Export.
	Init() error

	// Close releases backend resources. The backend should not be used
	// after Close.
	Close()

	// Export renders the document and writes the result to path. The
	// pdf backend writes all pages to one file; the raster backend
	// derives page-indexed file names from path.
	Export(doc *segno.Document, path string, opts ...ExportOption) error
}

// ExportConfig collects export settings shared by backends. Backends
// ignore settings that do not apply to them.
type ExportConfig struct {
	// DPI is the raster export resolution in dots per inch.
	DPI float64

	// Background fills the page before drawing.
	Background segno.Color
}

// ExportOption configures an export.
type ExportOption func(*ExportConfig)

// NewExportConfig applies options over the defaults: 300 DPI on a white
// background.
func NewExportConfig(opts []ExportOption) ExportConfig {
	c := ExportConfig{
		DPI:        300,
		Background: segno.White,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDPI sets the raster export resolution.
func WithDPI(dpi float64) ExportOption {
	return func(c *ExportConfig) { c.DPI = dpi }
}

// WithBackground sets the page background color.
func WithBackground(color segno.Color) ExportOption {
	return func(c *ExportConfig) { c.Background = color }
}
