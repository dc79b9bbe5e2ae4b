package smufl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Metadata errors.
var (
	// ErrUnknownGlyph is returned when a glyph name is not present in
	// the metadata.
	ErrUnknownGlyph = errors.New("smufl: unknown glyph name")

	// ErrUnknownFont is returned when no metadata is registered for a
	// font family.
	ErrUnknownFont = errors.New("smufl: no metadata registered for font family")
)

// BBox is a glyph bounding box in staff spaces, y-up, relative to the
// glyph origin on the baseline.
type BBox struct {
	// NE is the north-east (top-right) corner.
	NE [2]float64 `json:"bBoxNE"`
	// SW is the south-west (bottom-left) corner.
	SW [2]float64 `json:"bBoxSW"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.NE[0] - b.SW[0] }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.NE[1] - b.SW[1] }

// Glyph is the metadata for one glyph: its canonical SMuFL name, its
// codepoint in the font, its bounding box, and any anchor points
// (stem attachments and the like).
type Glyph struct {
	Name      string
	Codepoint rune
	BBox      BBox
	Anchors   map[string][2]float64
}

// Metadata is the parsed metadata of one SMuFL font.
type Metadata struct {
	FontName          string
	EngravingDefaults map[string]float64

	glyphs map[string]*Glyph
}

// metadataFile mirrors the SMuFL metadata JSON layout.
type metadataFile struct {
	FontName          string                           `json:"fontName"`
	EngravingDefaults map[string]float64               `json:"engravingDefaults"`
	GlyphBBoxes       map[string]BBox                  `json:"glyphBBoxes"`
	GlyphsWithAnchors map[string]map[string][2]float64 `json:"glyphsWithAnchors"`
}

// Load parses a SMuFL font metadata file. Glyph codepoints come from the
// shared SMuFL glyph name table, so only glyphs with standard names are
// addressable.
func Load(r io.Reader) (*Metadata, error) {
	var file metadataFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("smufl: parsing metadata: %w", err)
	}

	m := &Metadata{
		FontName:          file.FontName,
		EngravingDefaults: file.EngravingDefaults,
		glyphs:            make(map[string]*Glyph, len(file.GlyphBBoxes)),
	}
	if m.EngravingDefaults == nil {
		m.EngravingDefaults = map[string]float64{}
	}

	for name, bbox := range file.GlyphBBoxes {
		cp, ok := glyphCodepoint(name)
		if !ok {
			// Fonts may include bounding boxes for optional glyphs
			// outside the shared name table; those are unreachable by
			// name and skipped.
			continue
		}
		m.glyphs[name] = &Glyph{
			Name:      name,
			Codepoint: cp,
			BBox:      bbox,
			Anchors:   file.GlyphsWithAnchors[name],
		}
	}
	return m, nil
}

// Glyph returns the metadata for a glyph name.
func (m *Metadata) Glyph(name string) (*Glyph, error) {
	g, ok := m.glyphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlyph, name)
	}
	return g, nil
}

// HasGlyph reports whether the metadata covers a glyph name.
func (m *Metadata) HasGlyph(name string) bool {
	_, ok := m.glyphs[name]
	return ok
}

// EngravingDefault returns a named engraving default in staff spaces,
// or 0 if the font does not define it.
func (m *Metadata) EngravingDefault(key string) float64 {
	return m.EngravingDefaults[key]
}

// glyphCodepoint resolves a canonical SMuFL glyph name to its codepoint
// using the shared glyph name table.
func glyphCodepoint(name string) (rune, bool) {
	namesOnce.Do(parseGlyphNames)
	cp, ok := glyphNames[name]
	return cp, ok
}

var (
	namesOnce  sync.Once
	glyphNames map[string]rune
)

// parseGlyphNames decodes the embedded glyph name table. Codepoints use
// the SMuFL "U+XXXX" notation.
func parseGlyphNames() {
	var raw map[string]struct {
		Codepoint string `json:"codepoint"`
	}
	if err := json.Unmarshal(glyphNamesJSON, &raw); err != nil {
		panic(fmt.Sprintf("smufl: embedded glyph name table is invalid: %v", err))
	}
	glyphNames = make(map[string]rune, len(raw))
	for name, entry := range raw {
		cp, err := parseCodepoint(entry.Codepoint)
		if err != nil {
			continue
		}
		glyphNames[name] = cp
	}
}

// parseCodepoint parses SMuFL "U+XXXX" codepoint notation.
func parseCodepoint(s string) (rune, error) {
	hex, ok := strings.CutPrefix(s, "U+")
	if !ok {
		return 0, fmt.Errorf("smufl: invalid codepoint %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("smufl: invalid codepoint %q: %w", s, err)
	}
	return rune(v), nil
}

// registry maps font family names to loaded metadata.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Metadata)
)

// Register makes metadata available under a font family name, replacing
// any previous registration. The embedded Bravura-compatible metadata is
// registered automatically.
func Register(family string, m *Metadata) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[family] = m
}

// MetadataFor returns the metadata registered under a font family name.
func MetadataFor(family string) (*Metadata, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, family)
	}
	return m, nil
}
