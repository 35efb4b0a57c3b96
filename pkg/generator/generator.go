package generator

import (
	"context"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/loopbuilder"
	"github.com/fencesgen/fences/pkg/puzzle"
	"github.com/fencesgen/fences/pkg/solver"
)

// Source is the randomness the loop planting and the hide-order selection
// need.
type Source interface {
	Intn(n int) int
}

type visibility int

const (
	hidden visibility = iota
	visible
	fixed
)

// Result is a generated puzzle plus the difficulty of the hint set that was
// kept (the score of the last successful hide) and the planted loop the
// hidden hints must still uniquely reproduce, for callers that want to
// verify the puzzle independently (pkg/validation, pkg/bruteforce).
type Result struct {
	Puzzle   *puzzle.Puzzle
	Score    float64
	TrueLoop []geometry.LineState
}

// Generate plants a random loop over geo and hides as many hints as
// possible while target remains an upper bound on the deductive solver's
// difficulty score and the solver's unique solution stays the planted loop.
// Grounded on build-game.c's build_new_game; unlike the source's hard-coded
// "difficulty = 2.5 /* HACK */" override, target is honored as given. ctx is
// polled between hide attempts so a caller can abort a long run on a large
// tiling. loopRNG and hideRNG are separate sources so a caller can seed the
// loop-planting and hide-order stages independently (pkg/rng's "loop" and
// "hide" stages).
func Generate(ctx context.Context, geo *geometry.Geometry, target float64, loopRNG, hideRNG Source) (*Result, error) {
	if len(geo.Tiles) == 0 {
		return nil, ErrEmptyGeometry
	}

	loopStates := loopbuilder.Build(geo, loopRNG)

	numbers := make([]int, len(geo.Tiles))
	mask := make([]visibility, len(geo.Tiles))
	for i, t := range geo.Tiles {
		on := 0
		for _, e := range t.Edges {
			if loopStates[e] == geometry.On {
				on++
			}
		}
		numbers[i] = on
		mask[i] = visible
	}

	nvisible := len(geo.Tiles)
	nfixed := 0
	var bestScore float64

	for nvisible-nfixed > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sqID := pickVisible(mask, hideRNG.Intn(nvisible-nfixed))

		trial := puzzle.New(geo)
		for i, n := range numbers {
			if mask[i] == hidden || geometry.TileID(i) == sqID {
				trial.Numbers[i] = puzzle.HiddenHint
			} else {
				trial.Numbers[i] = n
			}
		}

		res := solver.Solve(ctx, trial)

		matches := reproducesLoop(trial, loopStates)

		if !matches || res.Score > target {
			mask[int(sqID)] = fixed
			nfixed++
			if nfixed == nvisible {
				break
			}
			continue
		}

		mask[int(sqID)] = hidden
		nvisible--
		nfixed = 0
		for i := range mask {
			if mask[i] == fixed {
				mask[i] = visible
			}
		}
		bestScore = res.Score
	}

	final := puzzle.New(geo)
	for i, n := range numbers {
		if mask[i] == hidden {
			final.Numbers[i] = puzzle.HiddenHint
		} else {
			final.Numbers[i] = n
		}
	}

	return &Result{Puzzle: final, Score: bestScore, TrueLoop: loopStates}, nil
}

// pickVisible returns the index of the count'th tile still marked visible.
func pickVisible(mask []visibility, count int) geometry.TileID {
	for i, m := range mask {
		if m == visible {
			if count == 0 {
				return geometry.TileID(i)
			}
			count--
		}
	}
	panic("generator: visible count exceeded available tiles")
}

// reproducesLoop reports whether trial's solved line states exactly match
// loopStates, edge for edge. Grounded on build_new_game's post-solve
// equality check against the planted loop.
func reproducesLoop(p *puzzle.Puzzle, loopStates []geometry.LineState) bool {
	for i, want := range loopStates {
		on := p.States[i] == geometry.On
		if on != (want == geometry.On) {
			return false
		}
	}
	return true
}
