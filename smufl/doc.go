// Package smufl parses SMuFL (Standard Music Font Layout) font metadata:
// glyph name to codepoint tables, per-glyph bounding boxes and anchors,
// and font engraving defaults.
//
// All metadata values are expressed in staff spaces with y increasing
// upward, as published by SMuFL fonts. Consumers scale them to document
// units and flip the y axis.
//
// A metadata subset compatible with the Bravura reference font ships
// embedded; arbitrary SMuFL metadata files load with Load.
package smufl
