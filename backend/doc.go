// Package backend provides a pluggable export backend abstraction.
//
// Backends turn a rendered document into artifacts: the pdfexport
// backend writes vector PDFs, the raster backend writes PNG images.
// Backends register themselves via init() functions and are selected at
// runtime:
//
//	import (
//		_ "github.com/segnokit/segno/backend/pdfexport"
//		_ "github.com/segnokit/segno/backend/raster"
//	)
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//	err = b.Export(doc, "score.pdf")
//
// Selection honors two environment variables: SEGNO_BACKEND forces a
// backend by name, and SEGNO_HEADLESS=1 restricts selection to backends
// that need no display.
package backend
