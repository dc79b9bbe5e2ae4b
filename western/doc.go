// Package western implements common western musical notation on top of
// the segno document model: staves and staff groups, clefs, key and time
// signatures, chords and rests with automatic stem, flag, ledger line
// and rhythm dot placement, barlines, braces, dynamics, and slurs.
//
// Vertical positions within a staff are measured in staff units, where
// one unit is the distance between two adjacent staff lines and y
// increases downward from the top staff line. A notehead one step above
// another sits 0.5 units higher.
package western
