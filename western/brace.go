package western

import "github.com/segnokit/segno"

// Brace is a curly brace spanning a staff group's height, drawn left of
// the fringe at the start of the top staff. The glyph is scaled
// vertically from its natural one-staff height to the group's extent.
type Brace struct {
	*segno.MusicText
	group *StaffGroup
}

// NewBrace creates a brace spanning the whole group.
func NewBrace(group *StaffGroup) (*Brace, error) {
	top := group.TopStaff()
	bottom := group.BottomStaff()
	if top == nil {
		return nil, ErrEmptyStaffGroup
	}

	height := segno.MapBetween(top, bottom).Y + bottom.Height()
	font := top.MusicFont()
	rect, err := font.BoundingRectOf("brace")
	if err != nil {
		return nil, err
	}
	scale := float64(height / rect.Height)

	// The brace glyph rises from its origin, so the origin sits at the
	// bottom of the group, left of the widest fringe.
	x := -group.FringeLayoutAt(top, segno.ZERO).Width - top.Unit(0.5)
	mt, err := segno.NewMusicText(
		segno.Pt(x, height),
		top,
		[]string{"brace"},
		segno.WithScale(scale),
		segno.WithMusicFont(font),
	)
	if err != nil {
		return nil, err
	}
	return &Brace{MusicText: mt, group: group}, nil
}

// Group returns the staff group the brace spans.
func (b *Brace) Group() *StaffGroup { return b.group }
