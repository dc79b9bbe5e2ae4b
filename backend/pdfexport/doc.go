// Package pdfexport is the vector PDF export backend. It draws paths
// natively and draws glyph runs as filled outlines extracted from the
// font file, so no font embedding is needed and the output is fully
// self-contained.
//
// Importing the package registers the backend under the name "pdf".
package pdfexport
