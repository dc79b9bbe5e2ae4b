package segno

import (
	"log/slog"
	"sort"
)

// defaultLinePadding is the vertical gap between generated flowable lines.
var defaultLinePadding = Mm(5)

// Flowable is a virtual strip of content that the layout engine breaks
// into lines and pages. Objects attached under a flowable are positioned
// in flowable space: x runs along the whole strip, y within a line.
// During rendering each object is mapped onto the generated lines,
// splitting objects that span breaks into slices.
type Flowable struct {
	PositionedObject

	length Unit
	height Unit

	linePadding Unit

	marginControllers []MarginController

	// lines is regenerated by Layout before every render pass.
	lines []*NewLine
}

// FlowableOption configures a Flowable during creation.
type FlowableOption func(*Flowable)

// WithLinePadding sets the vertical gap between flowable lines.
func WithLinePadding(padding Unit) FlowableOption {
	return func(f *Flowable) {
		f.linePadding = padding
	}
}

// NewFlowable creates a flowable strip of the given virtual length whose
// lines are height tall.
func NewFlowable(pos Point, parent Object, length, height Unit, opts ...FlowableOption) *Flowable {
	f := &Flowable{
		length:      length,
		height:      height,
		linePadding: defaultLinePadding,
	}
	Attach(f, pos, parent)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Length returns the total flowable-space length of the strip.
func (f *Flowable) Length() Unit { return f.length }

// Height returns the height of one generated line.
func (f *Flowable) Height() Unit { return f.height }

// AddMarginController registers a fringe margin for lines starting at or
// after the controller's flowable x position. Controllers sharing a tag
// supersede one another; distinct tags accumulate.
func (f *Flowable) AddMarginController(mc MarginController) {
	f.marginControllers = append(f.marginControllers, mc)
}

// ClearMarginControllers removes all registered margin controllers.
// Pre-render hooks re-register them on every pass.
func (f *Flowable) ClearMarginControllers() {
	f.marginControllers = f.marginControllers[:0]
}

// MarginAt returns the left margin applying to a line starting at the
// given flowable x position: for each tag, the controller with the
// greatest position not after x wins, and the winners accumulate.
func (f *Flowable) MarginAt(x Unit) Unit {
	latest := make(map[string]MarginController)
	for _, mc := range f.marginControllers {
		if mc.FlowableX > x {
			continue
		}
		cur, ok := latest[mc.Tag]
		if !ok || mc.FlowableX >= cur.FlowableX {
			latest[mc.Tag] = mc
		}
	}
	var total Unit
	for _, mc := range latest {
		total += mc.Margin
	}
	return total
}

// Lines returns the layout lines generated by the last Layout call.
func (f *Flowable) Lines() []*NewLine {
	return f.lines
}

// LineAt returns the line covering the given flowable x position.
// Positions past the end map to the last line; nil is returned only
// before layout has run.
func (f *Flowable) LineAt(x Unit) *NewLine {
	for _, line := range f.lines {
		if line.Covers(x) {
			return line
		}
	}
	if len(f.lines) > 0 {
		return f.lines[len(f.lines)-1]
	}
	return nil
}

// MapToCanvas maps a flowable-space position to canvas space using the
// generated lines.
func (f *Flowable) MapToCanvas(pos Point) Point {
	line := f.LineAt(pos.X)
	if line == nil {
		return pos
	}
	return line.Pos.Add(Pt(pos.X-line.FlowableX, pos.Y))
}

// Layout generates the flowable's lines for the given document. The
// strip is broken greedily: each line takes as much content as fits in
// the page live width after fringe margins, lines stack vertically with
// the configured padding, and a line that would overrun the live height
// starts a new page.
//
// Layout is called by Document rendering; it can also be called directly
// to inspect line geometry without rendering.
func (f *Flowable) Layout(doc *Document) {
	f.lines = f.lines[:0]

	// Margin controllers registered out of order confuse nothing, but
	// keeping them sorted makes MarginAt deterministic for equal tags.
	sort.SliceStable(f.marginControllers, func(i, j int) bool {
		return f.marginControllers[i].FlowableX < f.marginControllers[j].FlowableX
	})

	paper := doc.Paper()
	liveWidth := paper.LiveWidth()
	liveHeight := paper.LiveHeight()

	page := PageOf(f)
	if page == nil {
		page = doc.PageAt(0)
	}
	pageIndex := page.Index()
	start := MapBetween(page, f)
	if PageOf(f) == nil {
		start = TreePos(f)
	}

	flowX := ZERO
	lineY := start.Y
	first := true

	for flowX < f.length || first {
		lineX := start.X
		margin := ZERO
		if !first {
			margin = f.MarginAt(flowX)
			lineX = margin
		}
		lineLength := liveWidth - lineX
		if lineLength <= ZERO {
			// Degenerate geometry: a fringe margin or start position
			// wider than the page. Fall back to full lines.
			Logger().Warn("flowable line has no room, ignoring margins",
				slog.Float64("margin", float64(margin)),
				slog.Float64("liveWidth", float64(liveWidth)))
			lineX = ZERO
			lineLength = liveWidth
		}

		if lineY+f.height > liveHeight && !first {
			pageIndex++
			lineY = ZERO
		}

		linePage := doc.PageAt(pageIndex)
		f.lines = append(f.lines, &NewLine{
			FlowableX:  flowX,
			Length:     lineLength,
			PageIndex:  pageIndex,
			Pos:        linePage.Pos().Add(Pt(lineX, lineY)),
			MarginLeft: margin,
		})

		flowX += lineLength
		lineY += f.height + f.linePadding
		first = false
	}
}
