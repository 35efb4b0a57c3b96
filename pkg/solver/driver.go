package solver

import (
	"context"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// Result summarizes one deductive solve run: the difficulty score, whether
// the final state is a genuine single-loop solution, and how many times
// each level fired (useful for diagnostics and for tuning a generator's
// target difficulty band).
type Result struct {
	Score       float64
	Solved      bool
	LevelCounts [MaxLevel]int
}

// Solve runs the leveled deduction driver over p in place, mirroring
// _examples/original_source/src/game-solver.c's solve_game: level -1 is a
// cross-lines cleanup pass, levels 0-6 are the rule handlers in escalating
// cost order. Any time a level fires, the driver drops back to level -1 and
// starts over, so every cheap rule gets another chance before a more
// expensive one runs again. ctx is polled once per level-driver iteration so
// a caller can abort a slow solve on a large tiling; a cancellation returns
// a Result reflecting whatever partial deduction happened, with Solved
// false.
func Solve(ctx context.Context, p *puzzle.Puzzle) *Result {
	s := NewState(p)
	handleZeroTiles(s)
	handleMaxNumberTiles(s)

	var levelCount [MaxLevel]int
	level, lastLevel := -1, -1
	cancelled := false

	for level < MaxLevel {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		var count int
		switch level {
		case -1:
			puzzle.CrossLines(p)
		case 0:
			count = handleTrivialVertex(s)
		case 1:
			count = handleTrivialTiles(s)
		case 2:
			count = handleCorner(s)
		case 3:
			count = handleMaxNumberIncomingLine(s)
		case 4:
			if handleLoopBottleneck(s) != 0 {
				count = 1
			}
		case 5:
			count = handleNetOne(s)
		case 6:
			count = solveTryCombinations(s)
		}

		if count == 0 {
			level++
			continue
		}

		if level == 4 && lastLevel == 4 {
			count = 0
		}
		levelCount[level] += count
		lastLevel = level
		level = -1
	}

	score := calculateDifficulty(levelCount)
	solved := !cancelled && puzzle.IsSingleLoop(p) && allHintsSatisfied(p)
	if !solved {
		score += RejectPenalty
	}

	return &Result{Score: score, Solved: solved, LevelCounts: levelCount}
}

func allHintsSatisfied(p *puzzle.Puzzle) bool {
	for t, n := range p.Numbers {
		if n == puzzle.HiddenHint {
			continue
		}
		on, _ := p.CountAround(geometry.TileID(t))
		if on != n {
			return false
		}
	}
	return true
}
