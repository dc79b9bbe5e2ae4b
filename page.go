package segno

// Page is a document page. Pages are created by Document and should not
// be constructed or repositioned manually. A page's position is the
// canvas-space top-left corner of its live area (the region inside the
// margins), not the paper corner.
type Page struct {
	PositionedObject
	index int
	side  DirectionX
	paper Paper
}

// Index returns the page's index in the document.
func (p *Page) Index() int { return p.index }

// Side returns the left/right side the page lies on when printed.
// This determines which side the gutter is placed on.
func (p *Page) Side() DirectionX { return p.side }

// Paper returns the page geometry.
func (p *Page) Paper() Paper { return p.paper }

// BoundingRect returns the paper bounding rect relative to the page
// position (the live-area corner), so X and Y are negative.
func (p *Page) BoundingRect() Rect {
	x := -p.FullMarginLeft()
	return NewRect(x, -p.paper.MarginTop, p.paper.Width, p.paper.Height)
}

// FullMarginLeft returns the left margin including the gutter when the
// gutter falls on the left.
func (p *Page) FullMarginLeft() Unit {
	if p.side == DirectionRight {
		return p.paper.MarginLeft + p.paper.Gutter
	}
	return p.paper.MarginLeft
}

// FullMarginRight returns the right margin including the gutter when the
// gutter falls on the right.
func (p *Page) FullMarginRight() Unit {
	if p.side == DirectionRight {
		return p.paper.MarginRight
	}
	return p.paper.MarginRight + p.paper.Gutter
}

// LeftMarginX returns the live-area x position of the left margin edge.
// Always ZERO; provided as an expressive synonym.
func (p *Page) LeftMarginX() Unit { return ZERO }

// RightMarginX returns the live-area x position of the right margin edge.
func (p *Page) RightMarginX() Unit { return p.paper.LiveWidth() }

// TopMarginY returns the live-area y position of the top margin edge.
// Always ZERO; provided as an expressive synonym.
func (p *Page) TopMarginY() Unit { return ZERO }

// BottomMarginY returns the live-area y position of the bottom margin edge.
func (p *Page) BottomMarginY() Unit { return p.paper.LiveHeight() }

// CenterX returns the x position of the live-area center.
func (p *Page) CenterX() Unit { return p.paper.LiveWidth() / 2 }
