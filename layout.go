package segno

// NewLine records one generated layout line of a Flowable: where the
// line starts in flowable space, how long it is, and where it lands in
// canvas space. The layout engine produces these; renderable objects
// consult them when slicing across breaks.
type NewLine struct {
	// FlowableX is the flowable-space x position where this line begins.
	FlowableX Unit

	// Length is the amount of flowable content on this line.
	Length Unit

	// PageIndex is the page the line lands on.
	PageIndex int

	// Pos is the canvas-space position of the line's start.
	Pos Point

	// MarginLeft is the fringe margin reserved at the line start
	// (clef, key signature, and time signature re-rendering space).
	MarginLeft Unit
}

// End returns the flowable-space x position just past this line.
func (l *NewLine) End() Unit {
	return l.FlowableX + l.Length
}

// Covers reports whether the flowable-space x position falls on this line.
func (l *NewLine) Covers(x Unit) bool {
	return x >= l.FlowableX && x < l.End()
}

// MarginController reserves left-margin space on flowable lines starting
// at or after a flowable-space x position. Staves register controllers
// for their clefs and signatures so continuation lines leave room for
// the fringe. Controllers with the same tag supersede each other; the
// margins of distinct tags accumulate.
type MarginController struct {
	// FlowableX is the position from which the controller applies.
	FlowableX Unit

	// Margin is the reserved width.
	Margin Unit

	// Tag identifies the controller family (e.g. "clef", "keySignature").
	Tag string
}
