package segno

import (
	"sync"

	"github.com/segnokit/segno/smufl"
)

// MusicFont is a SMuFL font sized for a particular staff. SMuFL fonts
// draw a five line staff exactly one em tall, so the font size is four
// staff spaces. All geometry queries come from the font's metadata and
// need no parsed font file; only rendering does.
type MusicFont struct {
	font      Font
	metadata  *smufl.Metadata
	staffUnit Unit

	mu        sync.Mutex
	rectCache map[string]Rect
}

// NewMusicFont creates a music font for a registered SMuFL family. The
// staff unit is the distance between adjacent staff lines in document
// units; it determines the font size.
func NewMusicFont(family string, staffUnit Unit) (*MusicFont, error) {
	metadata, err := smufl.MetadataFor(family)
	if err != nil {
		return nil, err
	}
	return &MusicFont{
		font:      NewFont(family, staffUnit*4),
		metadata:  metadata,
		staffUnit: staffUnit,
		rectCache: make(map[string]Rect),
	}, nil
}

// Font returns the underlying font handle, sized to the em.
func (m *MusicFont) Font() Font { return m.font }

// Family returns the font family name.
func (m *MusicFont) Family() string { return m.font.Family() }

// Metadata returns the font's SMuFL metadata.
func (m *MusicFont) Metadata() *smufl.Metadata { return m.metadata }

// Unit converts a distance in staff units to document units.
func (m *MusicFont) Unit(n float64) Unit {
	return Unit(n) * m.staffUnit
}

// StaffUnit returns the size of one staff unit in document units.
func (m *MusicFont) StaffUnit() Unit { return m.staffUnit }

// Em returns the font size: four staff spaces.
func (m *MusicFont) Em() Unit { return m.Unit(4) }

// WithStaffUnit returns a music font for the same family at a different
// staff unit, sharing the loaded metadata.
func (m *MusicFont) WithStaffUnit(staffUnit Unit) *MusicFont {
	if staffUnit == m.staffUnit {
		return m
	}
	return &MusicFont{
		font:      NewFont(m.font.Family(), staffUnit*4),
		metadata:  m.metadata,
		staffUnit: staffUnit,
		rectCache: make(map[string]Rect),
	}
}

// EngravingDefault returns a named engraving default converted to
// document units, or 0 if the font does not define it.
func (m *MusicFont) EngravingDefault(key string) Unit {
	return m.Unit(m.metadata.EngravingDefault(key))
}

// Glyph returns the metadata for a canonical glyph name.
func (m *MusicFont) Glyph(name string) (*smufl.Glyph, error) {
	return m.metadata.Glyph(name)
}

// HasGlyph reports whether the font's metadata covers a glyph name.
func (m *MusicFont) HasGlyph(name string) bool {
	return m.metadata.HasGlyph(name)
}

// BoundingRectOf returns a glyph's bounding rect in document units,
// relative to the glyph origin on the baseline, with y increasing
// downward. Results are cached.
func (m *MusicFont) BoundingRectOf(name string) (Rect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rectCache[name]; ok {
		return r, nil
	}
	g, err := m.metadata.Glyph(name)
	if err != nil {
		return Rect{}, err
	}
	r := NewRect(
		m.Unit(g.BBox.SW[0]),
		m.Unit(-g.BBox.NE[1]),
		m.Unit(g.BBox.Width()),
		m.Unit(g.BBox.Height()),
	)
	m.rectCache[name] = r
	return r, nil
}

// HasMusicFont is implemented by objects that provide a music font to
// their descendants, typically staves.
type HasMusicFont interface {
	Object
	MusicFont() *MusicFont
}

// MusicFontOf returns the music font provided by obj or its nearest
// ancestor, or ErrNoMusicFont if none provides one.
func MusicFontOf(obj Object) (*MusicFont, error) {
	if h, ok := obj.(HasMusicFont); ok {
		return h.MusicFont(), nil
	}
	for a := range Ancestors(obj) {
		if h, ok := a.(HasMusicFont); ok {
			return h.MusicFont(), nil
		}
	}
	return nil, ErrNoMusicFont
}
