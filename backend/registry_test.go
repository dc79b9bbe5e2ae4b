package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/segnokit/segno"
)

// fakeBackend is a minimal RenderBackend for registry tests.
type fakeBackend struct {
	name     string
	headless bool
	initErr  error
}

func (f *fakeBackend) Name() string   { return f.name }
func (f *fakeBackend) Headless() bool { return f.headless }
func (f *fakeBackend) Init() error    { return f.initErr }
func (f *fakeBackend) Close()         {}
func (f *fakeBackend) Export(*segno.Document, string, ...ExportOption) error {
	return nil
}

func register(t *testing.T, name string, b *fakeBackend) {
	t.Helper()
	Register(name, func() RenderBackend { return b })
	t.Cleanup(func() { Unregister(name) })
}

func TestRegisterAndGet(t *testing.T) {
	b := &fakeBackend{name: "fake", headless: true}
	register(t, "fake", b)

	if !IsRegistered("fake") {
		t.Error("expected fake to be registered")
	}
	if got := Get("fake"); got != b {
		t.Errorf("Get = %v, want the registered backend", got)
	}
	if !slices.Contains(Available(), "fake") {
		t.Errorf("Available() = %v, missing fake", Available())
	}

	Unregister("fake")
	if Get("fake") != nil {
		t.Error("expected Get to return nil after Unregister")
	}
}

func TestGetUnknown(t *testing.T) {
	if got := Get("no-such-backend"); got != nil {
		t.Errorf("Get(unknown) = %v, want nil", got)
	}
}

func TestDefaultForcedByEnv(t *testing.T) {
	b := &fakeBackend{name: "forced", headless: false}
	register(t, "forced", b)
	t.Setenv(EnvBackend, "forced")

	if got := Default(); got != b {
		t.Errorf("Default = %v, want the forced backend", got)
	}

	// A forced backend that fails the headless filter is not substituted.
	t.Setenv(EnvHeadless, "1")
	if got := Default(); got != nil {
		t.Errorf("Default = %v, want nil for a non-headless forced backend", got)
	}
}

func TestDefaultPriority(t *testing.T) {
	t.Setenv(EnvBackend, "")
	pdf := &fakeBackend{name: BackendPDF, headless: true}
	raster := &fakeBackend{name: BackendRaster, headless: true}
	register(t, BackendPDF, pdf)
	register(t, BackendRaster, raster)

	if got := Default(); got != pdf {
		t.Errorf("Default = %v, want the pdf backend first", got)
	}

	Unregister(BackendPDF)
	if got := Default(); got != raster {
		t.Errorf("Default = %v, want raster after pdf is gone", got)
	}
}

func TestDefaultHeadlessFilter(t *testing.T) {
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvHeadless, "1")
	display := &fakeBackend{name: BackendPDF, headless: false}
	headless := &fakeBackend{name: BackendRaster, headless: true}
	register(t, BackendPDF, display)
	register(t, BackendRaster, headless)

	if got := Default(); got != headless {
		t.Errorf("Default = %v, want the headless backend", got)
	}
}

func TestInitDefault(t *testing.T) {
	t.Setenv(EnvBackend, "missing")
	if _, err := InitDefault(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("error = %v, want ErrBackendNotAvailable", err)
	}

	failing := &fakeBackend{name: "failing", headless: true, initErr: errors.New("boom")}
	register(t, "failing", failing)
	t.Setenv(EnvBackend, "failing")
	if _, err := InitDefault(); err == nil || errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("error = %v, want the backend's init error", err)
	}

	ok := &fakeBackend{name: "ok", headless: true}
	register(t, "ok", ok)
	t.Setenv(EnvBackend, "ok")
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault: %v", err)
	}
	if b != ok {
		t.Errorf("InitDefault = %v, want the registered backend", b)
	}
}

func TestNewExportConfig(t *testing.T) {
	c := NewExportConfig(nil)
	if c.DPI != 300 {
		t.Errorf("default DPI = %v, want 300", c.DPI)
	}
	if c.Background != segno.White {
		t.Errorf("default background = %v, want white", c.Background)
	}

	c = NewExportConfig([]ExportOption{WithDPI(72), WithBackground(segno.Color{})})
	if c.DPI != 72 {
		t.Errorf("DPI = %v, want 72", c.DPI)
	}
	if c.Background.A != 0 {
		t.Errorf("background = %v, want transparent", c.Background)
	}
}
