// Package segno provides programmatic creation, layout, and export of
// graphical musical scores.
//
// # Overview
//
// segno is a pure Go music notation library. Scores are built as a tree of
// positioned objects measured in physical units (millimeters, inches, staff
// units), laid out across lines and pages by a flowable layout engine, and
// exported through pluggable rendering backends to PDF or raster images.
//
// # Quick Start
//
//	import (
//	    "github.com/segnokit/segno"
//	    "github.com/segnokit/segno/backend/pdfexport"
//	    "github.com/segnokit/segno/western"
//	)
//
//	segno.RegisterFont("Bravura", "fonts/Bravura.otf")
//
//	doc := segno.NewDocument(segno.PaperA4)
//	staff, _ := western.NewStaff(segno.PtMm(10, 10), doc.PageAt(0), segno.Mm(150))
//	western.NewClef(segno.ZERO, staff, western.Treble)
//	western.NewChordrest(staff.Unit(8), staff,
//	    []western.Pitch{western.MustPitch("c'"), western.MustPitch("e'"), western.MustPitch("g'")},
//	    western.MustDuration(1, 4))
//
//	exp := pdfexport.New()
//	exp.Init()
//	defer exp.Close()
//	if err := exp.Export(doc, "score.pdf"); err != nil { ... }
//
// # Architecture
//
// The library is organized as a pipeline. Each stage depends only on the
// one before it:
//   - Document model: PositionedObject tree (Document, Page, Path, Text)
//   - Layout engine: Flowable line/page breaking, staff fringe layout
//   - Backend adapter: the Canvas interface and the backend registry
//   - Export: backend/pdfexport (vector) and backend/raster (PNG)
//
// # Coordinate System
//
// Positions are parent-relative. The base graphic unit is 1/72 inch with
// the origin at the top-left, X increasing right and Y increasing down.
// Staff-local geometry uses staff units where one unit is the distance
// between two staff lines.
//
// # Headless Mode
//
// All bundled backends are headless. Setting SEGNO_HEADLESS=1 restricts
// backend selection to headless backends, and SEGNO_BACKEND selects a
// backend by name; see the backend package.
package segno

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
