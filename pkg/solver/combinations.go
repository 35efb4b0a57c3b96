package solver

import (
	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// numberCombinations returns C(n, k), the count of ways to choose k items out
// of n, matching the role of
// _examples/original_source/src/solve-combinations.c's number_combinations.
// Unlike that function's integer-factorial formula (which mishandles n=0),
// this returns 1 directly for k=0 or k=n and otherwise uses the
// multiplicative formula, so the n=0/k=0 edge cases this solver actually
// hits return the mathematically correct 1.
func numberCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// setCombination turns on the comb-th of the C(n,k) ways to pick k of a tile's n
// OFF sides to set ON, cycling through OFF positions with 'spaces' gaps
// between picks, and returns a bitmask (by position in sides) of which sides
// it set. Grounded on solve-combinations.c's set_combination.
func setCombination(s *State, sides []geometry.EdgeID, n, k, comb int) int {
	nsides := len(sides)
	start := comb % n
	spaces := comb / n

	nline := 0
	for s.P.States[sides[nline]] != geometry.Off {
		nline = (nline + 1) % nsides
	}
	for i := 0; i < start; i++ {
		for s.P.States[sides[nline]] != geometry.Off {
			nline = (nline + 1) % nsides
		}
		nline = (nline + 1) % nsides
	}

	mask := 0
	for i := 0; i < k; i++ {
		for s.P.States[sides[nline]] != geometry.Off {
			nline = (nline + 1) % nsides
		}
		s.P.States[sides[nline]] = geometry.On
		mask |= 1 << uint(nline)
		if i == k-1 {
			break
		}
		nline = (nline + 1) % nsides
		for s.P.States[sides[nline]] != geometry.Off {
			nline = (nline + 1) % nsides
		}
		for j := 0; j < spaces; j++ {
			for s.P.States[sides[nline]] != geometry.Off {
				nline = (nline + 1) % nsides
			}
			nline = (nline + 1) % nsides
		}
	}
	return mask
}

// solveTryCombinations (L6) exhaustively tries every way to complete each
// active numbered tile's remaining OFF sides, keeping a line ON only if it
// is ON in every combination that leaves the overall state valid. Grounded
// on solve-combinations.c's solve_try_combinations.
func solveTryCombinations(s *State) int {
	count := 0
	good := make([]geometry.LineState, len(s.P.States))
	copy(good, s.P.States)

	for i := range s.P.Numbers {
		if !s.Active[i] || s.P.Numbers[i] == puzzle.HiddenHint {
			continue
		}
		t := geometry.TileID(i)
		sides := s.P.Geo.Tiles[t].Edges

		onCount, offCount := 0, 0
		for _, e := range sides {
			switch s.P.States[e] {
			case geometry.On:
				onCount++
			case geometry.Off:
				offCount++
			}
		}
		k := s.P.Numbers[i] - onCount
		if offCount == 0 || k < 0 || k > offCount {
			continue
		}
		ncomb := numberCombinations(offCount, k)

		mask := ^0
		for c := 0; c < ncomb; c++ {
			tmpMask := setCombination(s, sides, offCount, k, c)
			puzzle.CrossLines(s.P)
			if puzzle.CheckValid(s.P) {
				mask &= tmpMask
			}
			copy(s.P.States, good)
		}

		set := 0
		for j := 0; mask != 0; j++ {
			if mask&1 != 0 {
				count += s.set(sides[j])
				set++
			}
			mask >>= 1
		}
		if set > 0 {
			puzzle.CrossLines(s.P)
			copy(good, s.P.States)
		}
	}
	return count
}
