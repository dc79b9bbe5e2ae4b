package segno

// Canvas consumes the resolved geometry produced by the layout engine.
// Rendering backends implement Canvas; the document render walk feeds it
// vector paths and glyph runs in absolute canvas-space coordinates.
//
// Canvas is defined here rather than in the backend package so that
// document objects can emit draw calls without importing backends.
type Canvas interface {
	// DrawPath draws a resolved vector path.
	DrawPath(spec PathSpec) error

	// DrawGlyphRun draws a run of font glyphs.
	DrawGlyphRun(run GlyphRun) error
}

// PathSpec is a fully resolved vector path ready for drawing.
type PathSpec struct {
	// Pos is the canvas-space origin of the path.
	Pos Point

	// Elements are the path elements relative to Pos. Anchored elements
	// have been folded into concrete coordinates.
	Elements []PathElement

	// Pen strokes the path outline.
	Pen Pen

	// Brush fills enclosed areas.
	Brush Brush

	// Clip, when non-nil, restricts drawing to a canvas-space rect.
	// The layout engine uses it to slice objects across line breaks.
	Clip *Rect
}

// GlyphRun is a resolved run of glyphs from a single font.
type GlyphRun struct {
	// Pos is the canvas-space baseline origin of the run.
	Pos Point

	// Text is the codepoint sequence to draw. For music text these are
	// SMuFL codepoints already resolved from glyph names.
	Text string

	// Font is the font to draw with. Backends that rasterize glyph
	// outlines obtain the parsed font file through Font.Source.
	Font Font

	// Scale is an additional scaling factor applied on top of the font
	// size.
	Scale float64

	// Rotation is an angle in degrees, applied around Pos.
	Rotation float64

	// Brush fills the glyph shapes.
	Brush Brush

	// Pen, when visible, traces the glyph outlines.
	Pen Pen

	// Clip, when non-nil, restricts drawing to a canvas-space rect.
	Clip *Rect
}
