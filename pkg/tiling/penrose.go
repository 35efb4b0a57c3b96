package tiling

import "github.com/fencesgen/fences/pkg/geometry"

// buildPenrose lays out a Penrose-style rhomb tiling from the same single thin-rhomb
// seed as _examples/original_source/src/penrose-tile.c's build_penrose_tiling (pos at
// board_size/6, board_size/2; side board_size/2.5; angle 0), unfolded through
// penroseUnfoldFat/penroseUnfoldThin and trimmed by trim_repeated_rombs-style center
// dedupe. Penrose's own source calls penrose_unfold exactly once, with four further
// calls commented out ("penrose_unfold(penrose)" repeated up to five times total) —
// this engine's size index 0-4 selects how many of those five unfold passes run, since
// the source carries no other size-indexed entry point for this generator.
func buildPenrose(size int) (*geometry.Geometry, error) {
	nfolds := size + 1

	board := DefaultBoardSize
	pos := geometry.Point{X: board / 6, Y: board / 2}
	side := board / 2.5
	seed := []substShape{{
		family: penroseFamily,
		kind:   thinOrDart,
		pos:    pos,
		side:   side,
		angle:  0,
		ctr:    penroseCenter(thinOrDart, pos, 0, side),
	}}

	shapes := runUnfold(seed, nfolds)

	center := geometry.Point{X: board / 2, Y: board / 2}
	shapes = clipByRadius(shapes, center, DefaultGameSize/2)

	epsilon := side / 10
	for i := 0; i < nfolds; i++ {
		epsilon /= phi
	}
	return emitShapes(shapes, epsilon)
}
