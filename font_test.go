package segno

import (
	"errors"
	"testing"
)

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("error = %v, want ErrEmptyFontData", err)
	}
	if err := RegisterFontData("empty", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("RegisterFontData error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceInvalid(t *testing.T) {
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("expected an error for malformed font data")
	}
}

func TestNewFontSourceFromMissingFile(t *testing.T) {
	if _, err := NewFontSourceFromFile(t.TempDir() + "/missing.otf"); err == nil {
		t.Error("expected an error for a missing font file")
	}
}

func TestFontHandle(t *testing.T) {
	f := NewFont("Bravura", 12)
	if f.Family() != "Bravura" {
		t.Errorf("Family = %q", f.Family())
	}
	if f.Size() != 12 {
		t.Errorf("Size = %v", f.Size())
	}
	r := f.Resize(24)
	if r.Size() != 24 || r.Family() != "Bravura" {
		t.Errorf("Resize = %v %q", r.Size(), r.Family())
	}
	if f.Size() != 12 {
		t.Error("Resize modified the original handle")
	}
}

func TestFontSourceUnregistered(t *testing.T) {
	f := NewFont("no-such-family", 12)
	if _, err := f.Source(); !errors.Is(err, ErrFontNotRegistered) {
		t.Errorf("error = %v, want ErrFontNotRegistered", err)
	}
}

func TestFontSourceBadPath(t *testing.T) {
	RegisterFont("bad-path-family", t.TempDir()+"/missing.otf")
	f := NewFont("bad-path-family", 12)
	if _, err := f.Source(); err == nil {
		t.Error("expected an error when the registered file cannot be read")
	}
}
