package segno

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// FontSource represents a loaded font file. One FontSource serves glyph
// outlines at any size. FontSource is heavyweight and should be shared;
// the package-level font registry does this automatically.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource
	// itself.
	addr *FontSource

	data []byte
	face *font.Face

	mu        sync.Mutex
	pathCache map[glyphPathKey]glyphPathEntry
}

type glyphPathKey struct {
	r    rune
	size Unit
}

type glyphPathEntry struct {
	elements []PathElement
	advance  Unit
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("segno: parsing font: %w", err)
	}

	s := &FontSource{
		data:      dataCopy,
		face:      face,
		pathCache: make(map[glyphPathKey]glyphPathEntry),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("segno: reading font file: %w", err)
	}
	return NewFontSource(data)
}

// HasGlyph reports whether the font maps the given codepoint.
func (s *FontSource) HasGlyph(r rune) bool {
	s.copyCheck()
	_, ok := s.face.Cmap.Lookup(r)
	return ok
}

// GlyphPath returns the outline of a codepoint as path elements, scaled
// so the font em equals size, with y flipped from the font's y-up space
// to document y-down space. The origin is the glyph's baseline origin.
// The second return value is the horizontal advance at that size.
//
// Results are cached per codepoint and size; the returned slice is a
// copy the caller may modify.
func (s *FontSource) GlyphPath(r rune, size Unit) ([]PathElement, Unit, error) {
	s.copyCheck()

	key := glyphPathKey{r: r, size: size}
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.pathCache[key]; ok {
		return slices.Clone(entry.elements), entry.advance, nil
	}

	gid, ok := s.face.Cmap.Lookup(r)
	if !ok {
		return nil, ZERO, fmt.Errorf("%w: U+%04X", ErrGlyphNotFound, r)
	}

	outline, ok := s.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, ZERO, fmt.Errorf("%w: U+%04X has no vector outline", ErrGlyphNotFound, r)
	}

	sc := float64(size) / float64(s.face.Upem())
	pt := func(i int, args [3]opentype.SegmentPoint) Point {
		return Pt(Unit(float64(args[i].X)*sc), Unit(float64(-args[i].Y)*sc))
	}

	elements := make([]PathElement, 0, len(outline.Segments)+1)
	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				elements = append(elements, ClosePath{})
			}
			elements = append(elements, MoveTo{Point: pt(0, seg.Args)})
			open = true
		case opentype.SegmentOpLineTo:
			elements = append(elements, LineTo{Point: pt(0, seg.Args)})
		case opentype.SegmentOpQuadTo:
			elements = append(elements, QuadTo{
				Control: pt(0, seg.Args),
				Point:   pt(1, seg.Args),
			})
		case opentype.SegmentOpCubeTo:
			elements = append(elements, CubicTo{
				Control1: pt(0, seg.Args),
				Control2: pt(1, seg.Args),
				Point:    pt(2, seg.Args),
			})
		}
	}
	if open {
		elements = append(elements, ClosePath{})
	}

	advance := Unit(float64(s.face.HorizontalAdvance(gid)) * sc)
	s.pathCache[key] = glyphPathEntry{elements: elements, advance: advance}
	return slices.Clone(elements), advance, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("segno: FontSource must not be copied by value")
	}
}

// Font selects a registered font family at a size. Font is a small value
// type; the parsed font file is shared through the registry.
type Font struct {
	family string
	size   Unit
}

// NewFont creates a font handle for a registered family at a size in
// document units.
func NewFont(family string, size Unit) Font {
	return Font{family: family, size: size}
}

// Family returns the font family name.
func (f Font) Family() string { return f.family }

// Size returns the font size in document units.
func (f Font) Size() Unit { return f.size }

// Resize returns a copy of the font at a different size.
func (f Font) Resize(size Unit) Font {
	return Font{family: f.family, size: size}
}

// Source returns the shared FontSource for the font's family, loading
// and parsing the registered font file on first use.
func (f Font) Source() (*FontSource, error) {
	return fontSourceFor(f.family)
}

// fontRegistry maps family names to font file paths and loaded sources.
var fontRegistry = struct {
	sync.Mutex
	paths   map[string]string
	sources map[string]*FontSource
}{
	paths:   make(map[string]string),
	sources: make(map[string]*FontSource),
}

// RegisterFont associates a font family name with a font file path. The
// file is read and parsed lazily on first use.
func RegisterFont(family, path string) {
	fontRegistry.Lock()
	defer fontRegistry.Unlock()
	fontRegistry.paths[family] = path
	delete(fontRegistry.sources, family)
}

// RegisterFontData associates a font family name with in-memory font
// data, parsing it immediately.
func RegisterFontData(family string, data []byte) error {
	s, err := NewFontSource(data)
	if err != nil {
		return err
	}
	fontRegistry.Lock()
	defer fontRegistry.Unlock()
	fontRegistry.sources[family] = s
	delete(fontRegistry.paths, family)
	return nil
}

func fontSourceFor(family string) (*FontSource, error) {
	fontRegistry.Lock()
	defer fontRegistry.Unlock()

	if s, ok := fontRegistry.sources[family]; ok {
		return s, nil
	}
	path, ok := fontRegistry.paths[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotRegistered, family)
	}
	s, err := NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	fontRegistry.sources[family] = s
	return s, nil
}
