package segno

import "errors"

// Common document and font errors.
var (
	// ErrNoMusicFont is returned when a music text object is created
	// without a font and no ancestor provides one.
	ErrNoMusicFont = errors.New("segno: no music font found in ancestor chain")

	// ErrFontNotRegistered is returned when a font family has no
	// registered font file or data.
	ErrFontNotRegistered = errors.New("segno: font family not registered")

	// ErrEmptyFontData is returned when a font source is created from
	// empty data.
	ErrEmptyFontData = errors.New("segno: empty font data")

	// ErrGlyphNotFound is returned when a font has no glyph for a
	// requested codepoint.
	ErrGlyphNotFound = errors.New("segno: glyph not found in font")
)
