package segno

import (
	"fmt"
	"strings"

	"github.com/segnokit/segno/smufl"
)

// Text is a run of plain text in the document tree. Its position is the
// baseline origin of the first character.
type Text struct {
	PaintedObject
	text     string
	font     Font
	scale    float64
	rotation float64
}

// TextOption configures a Text or MusicText at creation.
type TextOption func(*textConfig)

type textConfig struct {
	scale    float64
	rotation float64
	pen      Pen
	brush    Brush
	font     *MusicFont
}

func defaultTextConfig() textConfig {
	return textConfig{
		scale: 1,
		pen:   NoPen(),
		brush: DefaultBrush(),
	}
}

// WithScale scales the text relative to its font size.
func WithScale(scale float64) TextOption {
	return func(c *textConfig) { c.scale = scale }
}

// WithRotation rotates the text by an angle in degrees around its
// position.
func WithRotation(degrees float64) TextOption {
	return func(c *textConfig) { c.rotation = degrees }
}

// WithTextPen sets the pen tracing glyph outlines. The default pen is
// invisible; glyphs are filled, not stroked.
func WithTextPen(pen Pen) TextOption {
	return func(c *textConfig) { c.pen = pen }
}

// WithTextBrush sets the brush filling glyph shapes.
func WithTextBrush(brush Brush) TextOption {
	return func(c *textConfig) { c.brush = brush }
}

// WithMusicFont overrides the music font a MusicText would otherwise
// inherit from its ancestors.
func WithMusicFont(font *MusicFont) TextOption {
	return func(c *textConfig) { c.font = font }
}

// NewText creates a text object at pos under parent.
func NewText(pos Point, parent Object, text string, font Font, opts ...TextOption) *Text {
	c := defaultTextConfig()
	for _, opt := range opts {
		opt(&c)
	}
	t := &Text{
		text:     text,
		font:     font,
		scale:    c.scale,
		rotation: c.rotation,
	}
	AttachPainted(t, pos, parent, c.pen, c.brush)
	return t
}

// Text returns the text content.
func (t *Text) Text() string { return t.text }

// SetText replaces the text content.
func (t *Text) SetText(text string) { t.text = text }

// Font returns the text's font.
func (t *Text) Font() Font { return t.font }

// SetFont replaces the text's font.
func (t *Text) SetFont(font Font) { t.font = font }

// Scale returns the scaling factor applied on top of the font size.
func (t *Text) Scale() float64 { return t.scale }

// Rotation returns the rotation angle in degrees.
func (t *Text) Rotation() float64 { return t.rotation }

// BreakableLength returns 0: text never spans flowable line breaks and
// is drawn whole on the line its position falls on.
func (t *Text) BreakableLength() Unit { return ZERO }

// RenderComplete draws the whole text at the given canvas position.
func (t *Text) RenderComplete(c Canvas, pos Point) error {
	return c.DrawGlyphRun(t.glyphRun(pos, nil))
}

// RenderSlice draws the horizontal slice of the text starting at
// clipStartX. Text reports no breakable length, so this only runs when
// the text sits inside another object's sliced region.
func (t *Text) RenderSlice(c Canvas, pos Point, clipStartX, clipWidth Unit) error {
	clip := sliceClip(pos, clipStartX, clipWidth)
	return c.DrawGlyphRun(t.glyphRun(Pt(pos.X-clipStartX, pos.Y), clip))
}

func (t *Text) glyphRun(pos Point, clip *Rect) GlyphRun {
	return GlyphRun{
		Pos:      pos,
		Text:     t.text,
		Font:     t.font,
		Scale:    t.scale,
		Rotation: t.rotation,
		Brush:    t.Brush(),
		Pen:      t.Pen(),
		Clip:     clip,
	}
}

// MusicText is a run of SMuFL glyphs addressed by canonical glyph name.
// Its position is the baseline origin of the first glyph; for most
// glyphs the baseline sits on the relevant staff position.
//
// The music font comes from the nearest ancestor implementing
// HasMusicFont, usually a staff, unless overridden with WithMusicFont.
type MusicText struct {
	PaintedObject
	glyphs   []*smufl.Glyph
	text     string
	font     *MusicFont
	scale    float64
	rotation float64
}

// NewMusicText creates a music text object from one or more canonical
// SMuFL glyph names.
func NewMusicText(pos Point, parent Object, glyphNames []string, opts ...TextOption) (*MusicText, error) {
	c := defaultTextConfig()
	for _, opt := range opts {
		opt(&c)
	}
	font := c.font
	if font == nil {
		var err error
		font, err = MusicFontOf(parent)
		if err != nil {
			return nil, err
		}
	}

	glyphs := make([]*smufl.Glyph, len(glyphNames))
	var text strings.Builder
	for i, name := range glyphNames {
		g, err := font.Glyph(name)
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
		text.WriteRune(g.Codepoint)
	}

	m := &MusicText{
		glyphs:   glyphs,
		text:     text.String(),
		font:     font,
		scale:    c.scale,
		rotation: c.rotation,
	}
	AttachPainted(m, pos, parent, c.pen, c.brush)
	return m, nil
}

// MustMusicText is NewMusicText that panics on error, for statically
// known glyph names.
func MustMusicText(pos Point, parent Object, glyphNames []string, opts ...TextOption) *MusicText {
	m, err := NewMusicText(pos, parent, glyphNames, opts...)
	if err != nil {
		panic(fmt.Sprintf("segno: %v", err))
	}
	return m
}

// Glyphs returns the glyph metadata of each glyph in the run.
func (m *MusicText) Glyphs() []*smufl.Glyph { return m.glyphs }

// Text returns the run's codepoint sequence.
func (m *MusicText) Text() string { return m.text }

// MusicFont returns the music font the run draws with.
func (m *MusicText) MusicFont() *MusicFont { return m.font }

// Scale returns the scaling factor applied on top of the font size.
func (m *MusicText) Scale() float64 { return m.scale }

// Rotation returns the rotation angle in degrees.
func (m *MusicText) Rotation() float64 { return m.rotation }

// BoundingRect returns the run's bounding rect in document units
// relative to the run's position, computed from the font metadata with
// glyphs advanced by their bounding box widths.
func (m *MusicText) BoundingRect() Rect {
	var (
		rect    Rect
		cursorX Unit
		first   = true
	)
	for _, g := range m.glyphs {
		gr := NewRect(
			cursorX+m.font.Unit(g.BBox.SW[0]),
			m.font.Unit(-g.BBox.NE[1]),
			m.font.Unit(g.BBox.Width()),
			m.font.Unit(g.BBox.Height()),
		)
		if first {
			rect = gr
			first = false
		} else {
			rect = rect.Union(gr)
		}
		cursorX += m.font.Unit(g.BBox.NE[0])
	}
	if m.scale != 1 {
		rect = rect.Scale(m.scale)
	}
	return rect
}

// BreakableLength returns 0: music text is drawn whole on a single
// flowable line.
func (m *MusicText) BreakableLength() Unit { return ZERO }

// RenderComplete draws the whole run at the given canvas position.
func (m *MusicText) RenderComplete(c Canvas, pos Point) error {
	return c.DrawGlyphRun(m.glyphRun(pos, nil))
}

// RenderSlice draws the horizontal slice of the run starting at
// clipStartX.
func (m *MusicText) RenderSlice(c Canvas, pos Point, clipStartX, clipWidth Unit) error {
	clip := sliceClip(pos, clipStartX, clipWidth)
	return c.DrawGlyphRun(m.glyphRun(Pt(pos.X-clipStartX, pos.Y), clip))
}

func (m *MusicText) glyphRun(pos Point, clip *Rect) GlyphRun {
	return GlyphRun{
		Pos:      pos,
		Text:     m.text,
		Font:     m.font.Font(),
		Scale:    m.scale,
		Rotation: m.rotation,
		Brush:    m.Brush(),
		Pen:      m.Pen(),
		Clip:     clip,
	}
}
