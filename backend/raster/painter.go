package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/segnokit/segno"
	"github.com/segnokit/segno/backend"
)

// Curve flattening resolution for stroke expansion. Fills keep curves
// intact; only strokes need polylines.
const (
	quadSteps  = 8
	cubicSteps = 16
)

// pagePainter rasterizes the draw calls of one page into an image.
type pagePainter struct {
	img    *image.RGBA
	mapper backend.PageMapper
	page   int
	scale  float64
}

// pointTransform maps a device-space point, used for glyph run
// rotation. Rotation is affine, so transforming curve control points is
// exact.
type pointTransform func(x, y float64) (float64, float64)

func (p *pagePainter) draw(op backend.DrawOp) error {
	if op.Path != nil {
		return p.drawPath(op.Path)
	}
	return p.drawGlyphRun(op.Glyphs)
}

func (p *pagePainter) drawPath(spec *segno.PathSpec) error {
	clip := p.clipRect(spec.Clip)
	if clip.Empty() {
		return nil
	}
	origin := p.mapper.Local(spec.Pos, p.page)
	if !spec.Brush.Invisible() {
		p.fill(spec.Elements, origin, clip, rgba(spec.Brush.Color), nil)
	}
	if !spec.Pen.Invisible() {
		p.stroke(spec.Elements, origin, clip, spec.Pen, nil)
	}
	return nil
}

func (p *pagePainter) drawGlyphRun(run *segno.GlyphRun) error {
	fill := !run.Brush.Invisible()
	stroke := !run.Pen.Invisible()
	if !fill && !stroke {
		return nil
	}
	clip := p.clipRect(run.Clip)
	if clip.Empty() {
		return nil
	}

	src, err := run.Font.Source()
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	size := run.Font.Size() * segno.Unit(run.Scale)
	pos := p.mapper.Local(run.Pos, p.page)

	var xf pointTransform
	if run.Rotation != 0 {
		// Positive angles rotate clockwise in y-down device space.
		theta := run.Rotation * math.Pi / 180
		sin, cos := math.Sincos(theta)
		cx := float64(pos.X) * p.scale
		cy := float64(pos.Y) * p.scale
		xf = func(x, y float64) (float64, float64) {
			dx, dy := x-cx, y-cy
			return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
		}
	}

	cursor := pos.X
	for _, r := range run.Text {
		elements, advance, err := src.GlyphPath(r, size)
		if err != nil {
			return fmt.Errorf("raster: %w", err)
		}
		origin := segno.Pt(cursor, pos.Y)
		if fill {
			p.fill(elements, origin, clip, rgba(run.Brush.Color), xf)
		}
		if stroke {
			p.stroke(elements, origin, clip, run.Pen, xf)
		}
		cursor += advance
	}
	return nil
}

// clipRect returns the device-pixel region an op may touch: the page
// bounds intersected with the op's clip rect when it has one.
func (p *pagePainter) clipRect(clip *segno.Rect) image.Rectangle {
	bounds := p.img.Bounds()
	if clip == nil {
		return bounds
	}
	local := p.mapper.Local(segno.Pt(clip.X, clip.Y), p.page)
	r := image.Rect(
		int(math.Floor(float64(local.X)*p.scale)),
		int(math.Floor(float64(local.Y)*p.scale)),
		int(math.Ceil(float64(local.X+clip.Width)*p.scale)),
		int(math.Ceil(float64(local.Y+clip.Height)*p.scale)),
	)
	return bounds.Intersect(r)
}

// device converts a path-relative point to device pixels.
func (p *pagePainter) device(origin segno.Point, q segno.Point, xf pointTransform) (float64, float64) {
	x := float64(origin.X+q.X) * p.scale
	y := float64(origin.Y+q.Y) * p.scale
	if xf != nil {
		x, y = xf(x, y)
	}
	return x, y
}

// fill rasterizes the enclosed path areas with a solid color. Winding
// directions from the path are preserved, so glyph counters cut holes.
func (p *pagePainter) fill(elements []segno.PathElement, origin segno.Point, clip image.Rectangle, col color.Color, xf pointTransform) {
	if len(elements) == 0 {
		return
	}
	ras := vector.NewRasterizer(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	pt := func(q segno.Point) (float32, float32) {
		x, y := p.device(origin, q, xf)
		return float32(x - ox), float32(y - oy)
	}
	open := false
	for _, elem := range elements {
		switch e := elem.(type) {
		case segno.MoveTo:
			if open {
				ras.ClosePath()
			}
			x, y := pt(e.Point)
			ras.MoveTo(x, y)
			open = true
		case segno.LineTo:
			x, y := pt(e.Point)
			ras.LineTo(x, y)
		case segno.QuadTo:
			cx, cy := pt(e.Control)
			x, y := pt(e.Point)
			ras.QuadTo(cx, cy, x, y)
		case segno.CubicTo:
			c1x, c1y := pt(e.Control1)
			c2x, c2y := pt(e.Control2)
			x, y := pt(e.Point)
			ras.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case segno.ClosePath:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
	ras.Draw(p.img, clip, image.NewUniform(col), image.Point{})
}

// stroke expands the path outline into filled quads, one per flattened
// segment, and rasterizes them in a single pass. Square caps extend
// segment ends by half the pen width, which also papers over joins;
// round caps use the same extension as an approximation.
func (p *pagePainter) stroke(elements []segno.PathElement, origin segno.Point, clip image.Rectangle, pen segno.Pen, xf pointTransform) {
	width := float64(pen.Thickness) * p.scale
	if width < 1 {
		// Keep hairlines visible at low resolutions.
		width = 1
	}
	half := width / 2
	ext := half
	if pen.Cap == segno.LineCapFlat {
		ext = 0
	}

	ras := vector.NewRasterizer(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	any := false
	for _, poly := range p.flatten(elements, origin, xf) {
		for _, seg := range dashSegments(poly, dashLengths(pen, p.scale)) {
			if addStrokeQuad(ras, seg[0], seg[1], half, ext, ox, oy) {
				any = true
			}
		}
	}
	if any {
		ras.Draw(p.img, clip, image.NewUniform(rgba(pen.Color)), image.Point{})
	}
}

type devPoint struct{ x, y float64 }

// flatten converts the path into device-space polylines, one per
// subpath, with curves subdivided into line segments.
func (p *pagePainter) flatten(elements []segno.PathElement, origin segno.Point, xf pointTransform) [][]devPoint {
	var polys [][]devPoint
	var cur []devPoint
	var start devPoint
	pt := func(q segno.Point) devPoint {
		x, y := p.device(origin, q, xf)
		return devPoint{x, y}
	}
	closeCur := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	last := func() devPoint {
		if len(cur) == 0 {
			return devPoint{}
		}
		return cur[len(cur)-1]
	}
	for _, elem := range elements {
		switch e := elem.(type) {
		case segno.MoveTo:
			closeCur()
			start = pt(e.Point)
			cur = []devPoint{start}
		case segno.LineTo:
			cur = append(cur, pt(e.Point))
		case segno.QuadTo:
			cur = appendQuad(cur, last(), pt(e.Control), pt(e.Point))
		case segno.CubicTo:
			cur = appendCubic(cur, last(), pt(e.Control1), pt(e.Control2), pt(e.Point))
		case segno.ClosePath:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			closeCur()
		}
	}
	closeCur()
	return polys
}

func appendQuad(dst []devPoint, p0, c, p1 devPoint) []devPoint {
	for i := 1; i <= quadSteps; i++ {
		t := float64(i) / quadSteps
		u := 1 - t
		dst = append(dst, devPoint{
			x: u*u*p0.x + 2*u*t*c.x + t*t*p1.x,
			y: u*u*p0.y + 2*u*t*c.y + t*t*p1.y,
		})
	}
	return dst
}

func appendCubic(dst []devPoint, p0, c1, c2, p1 devPoint) []devPoint {
	for i := 1; i <= cubicSteps; i++ {
		t := float64(i) / cubicSteps
		u := 1 - t
		dst = append(dst, devPoint{
			x: u*u*u*p0.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*p1.x,
			y: u*u*u*p0.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*p1.y,
		})
	}
	return dst
}

// addStrokeQuad appends one expanded stroke segment to the rasterizer.
// Zero-length segments with a cap extension become square dots.
func addStrokeQuad(ras *vector.Rasterizer, a, b devPoint, half, ext, ox, oy float64) bool {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	var ux, uy float64
	if length == 0 {
		if ext == 0 {
			return false
		}
		ux, uy = 1, 0
	} else {
		ux, uy = dx/length, dy/length
	}
	px, py := -uy*half, ux*half
	ax, ay := a.x-ux*ext-ox, a.y-uy*ext-oy
	bx, by := b.x+ux*ext-ox, b.y+uy*ext-oy
	ras.MoveTo(float32(ax+px), float32(ay+py))
	ras.LineTo(float32(bx+px), float32(by+py))
	ras.LineTo(float32(bx-px), float32(by-py))
	ras.LineTo(float32(ax-px), float32(ay-py))
	ras.ClosePath()
	return true
}

// dashLengths returns alternating on/off run lengths in device pixels,
// or nil for a solid pen.
func dashLengths(pen segno.Pen, scale float64) []float64 {
	t := float64(pen.Thickness) * scale
	if t < 1 {
		t = 1
	}
	switch pen.Pattern {
	case segno.PenDash:
		return []float64{3 * t, 3 * t}
	case segno.PenDot:
		return []float64{t, 2 * t}
	case segno.PenDashDot:
		return []float64{3 * t, 2 * t, t, 2 * t}
	default:
		return nil
	}
}

// dashSegments splits a polyline into stroke segments. Without dashes
// each polyline edge is one segment; with dashes the walk alternates
// on/off runs along the polyline, splitting edges where a run ends.
func dashSegments(poly []devPoint, dashes []float64) [][2]devPoint {
	if len(poly) < 2 {
		return nil
	}
	if len(dashes) == 0 {
		segs := make([][2]devPoint, 0, len(poly)-1)
		for i := 1; i < len(poly); i++ {
			segs = append(segs, [2]devPoint{poly[i-1], poly[i]})
		}
		return segs
	}

	var segs [][2]devPoint
	dash := 0
	remaining := dashes[0]
	on := true
	pos := poly[0]
	for i := 1; i < len(poly); {
		target := poly[i]
		dx, dy := target.x-pos.x, target.y-pos.y
		length := math.Hypot(dx, dy)
		if length <= remaining {
			if on && length > 0 {
				segs = append(segs, [2]devPoint{pos, target})
			}
			remaining -= length
			pos = target
			i++
			continue
		}
		t := remaining / length
		split := devPoint{pos.x + dx*t, pos.y + dy*t}
		if on {
			segs = append(segs, [2]devPoint{pos, split})
		}
		pos = split
		dash = (dash + 1) % len(dashes)
		remaining = dashes[dash]
		on = !on
	}
	return segs
}

func rgba(c segno.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
