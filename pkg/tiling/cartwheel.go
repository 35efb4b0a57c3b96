package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// cartwheelParams reproduces cartwheel_calculate_params's five size-index cases
// exactly: each picks its own side divisor, fold count and seed kite/dart type, then
// scales the seed side back up by phi^nfolds so repeated unfolding settles on the same
// game_size/2 radius regardless of depth.
func cartwheelParams(sizeIndex int) (nfolds int, side float64, seedKind substKind, pos geometry.Point) {
	side = DefaultGameSize / 2.0
	seedKind = fatOrKite // KITE
	pos = geometry.Point{X: DefaultBoardSize / 2, Y: DefaultBoardSize / 2}

	switch sizeIndex {
	case 0: // small
		nfolds = 2
		side /= (4 + 2.0/phi) / 2.0
	case 1: // medium
		nfolds = 3
		side /= 2.0 + 2.0/phi
	case 2: // normal
		nfolds = 3
		side /= 3.0 + 2.0/phi
		seedKind = thinOrDart // DART
	case 3: // large
		nfolds = 4
		side /= 4.0 + 3.0/phi + 1.0/phi/2.0
		seedKind = thinOrDart // DART
	case 4: // huge
		nfolds = 4
		side /= 6.0 + 5.0/phi + 1.0/phi/2.0
	}

	seedSide := side * math.Pow(phi, float64(nfolds))
	if sizeIndex == 0 {
		pos.X -= seedSide
	}
	return nfolds, seedSide, seedKind, pos
}

// cartwheelSeed reproduces create_tile_seed: size index 0 is create_arrow_seed's
// 3-shape dart-and-two-kites arrangement; indices 1-4 are a 5-fold ring of shapes all
// sharing params' seed_type, placed directly at the board center.
func cartwheelSeed(sizeIndex int, pos geometry.Point, side float64, seedKind substKind) []substShape {
	mk := func(kind substKind, p geometry.Point, angle float64) substShape {
		return substShape{family: cartwheelFamily, kind: kind, pos: p, side: side, angle: angle}
	}
	if sizeIndex == 0 {
		top := pos.Add(geometry.Point{X: side + side/phi})
		return []substShape{
			mk(thinOrDart, pos, 0),
			mk(fatOrKite, top, 180+36),
			mk(fatOrKite, top, 180-36),
		}
	}
	seed := make([]substShape, 0, 5)
	for i := 0; i < 5; i++ {
		seed = append(seed, mk(seedKind, pos, float64(i)*72-90))
	}
	return seed
}

// buildCartwheel lays out a cartwheel-style kite/dart tiling from the seed and fold
// schedule produced by cartwheelParams, unfolded through
// cartwheelUnfoldKite/cartwheelUnfoldDart. Grounded on
// _examples/original_source/src/cartwheel-tile.c's build_cartwheel_tile_geometry.
func buildCartwheel(size int) (*geometry.Geometry, error) {
	nfolds, side, seedKind, pos := cartwheelParams(size)
	seed := cartwheelSeed(size, pos, side, seedKind)

	shapes := runUnfold(seed, nfolds)

	center := geometry.Point{X: DefaultBoardSize / 2, Y: DefaultBoardSize / 2}
	shapes = clipByRadius(shapes, center, DefaultGameSize/2)

	epsilon := side / 10
	for i := 0; i < nfolds; i++ {
		epsilon /= phi
	}
	return emitShapes(shapes, epsilon)
}
