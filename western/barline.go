package western

import (
	"errors"

	"github.com/segnokit/segno"
)

// ErrEmptyStaffGroup is returned when a spanning element is created for
// a group with no staves.
var ErrEmptyStaffGroup = errors.New("western: staff group has no staves")

// BarLine is a thin vertical barline at one x position, spanning from
// the top staff of a group to the bottom line of its bottom staff. The
// bottom endpoint is anchored to the bottom staff, so the line follows
// it if the group is respaced.
type BarLine struct {
	*segno.Path
	group *StaffGroup
}

// BarLineOption configures a BarLine during creation.
type BarLineOption func(*barLineConfig)

type barLineConfig struct {
	pen *segno.Pen
}

// WithBarLinePen overrides the barline pen. The default thickness comes
// from the font's thinBarlineThickness engraving default.
func WithBarLinePen(pen segno.Pen) BarLineOption {
	return func(c *barLineConfig) { c.pen = &pen }
}

// NewBarLine creates a barline at a staff-relative x position spanning
// the whole group.
func NewBarLine(x segno.Unit, group *StaffGroup, opts ...BarLineOption) (*BarLine, error) {
	var config barLineConfig
	for _, opt := range opts {
		opt(&config)
	}

	top := group.TopStaff()
	bottom := group.BottomStaff()
	if top == nil {
		return nil, ErrEmptyStaffGroup
	}

	pen := segno.NewPen(top.MusicFont().EngravingDefault("thinBarlineThickness"))
	if config.pen != nil {
		pen = *config.pen
	}

	p := segno.NewPath(segno.Pt(x, segno.ZERO), top, pen, segno.NoBrush())
	p.MoveTo(segno.ZERO, segno.ZERO)
	p.LineToAnchored(x, bottom.Height(), bottom)
	return &BarLine{Path: p, group: group}, nil
}

// Group returns the staff group the barline spans.
func (b *BarLine) Group() *StaffGroup { return b.group }
