// Package raster is the PNG export backend. Each document page is
// rasterized into its own image with x/image/vector; pages render in
// parallel. Fills rasterize natively, strokes are expanded into filled
// quads, and glyph runs are filled from outlines extracted from the
// font file.
//
// Importing the package registers the backend under the name "raster".
package raster
