package validation

import (
	"context"
	"fmt"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
	"github.com/fencesgen/fences/pkg/solver"
)

// ConstraintResult records the outcome of a single check.
type ConstraintResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// Metrics summarizes a validated puzzle for diagnostics.
type Metrics struct {
	VisibleTiles int
	HiddenTiles  int
	Score        float64
	LevelCounts  [solver.MaxLevel]int
}

// Report is the result of validating a finished puzzle.
type Report struct {
	Passed  bool
	Checks  []ConstraintResult
	Errors  []string
	Metrics Metrics
}

// Validate checks that trueLoop (the true planted loop, e.g. from
// pkg/loopbuilder or a generator result) forms a single closed loop and
// that p's visible hints are each consistent with it, then runs the
// deductive solver fresh over p to report its difficulty. Grounded on the
// shape of the teacher's DefaultValidator.Validate.
func Validate(ctx context.Context, geo *geometry.Geometry, p *puzzle.Puzzle, trueLoop []geometry.LineState) (*Report, error) {
	if geo == nil || p == nil {
		return nil, fmt.Errorf("validation: geometry and puzzle must not be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Passed: true}

	loopPuzzle := puzzle.New(geo)
	copy(loopPuzzle.States, trueLoop)
	single := puzzle.IsSingleLoop(loopPuzzle)
	report.Checks = append(report.Checks, ConstraintResult{
		Name:      "single-loop",
		Satisfied: single,
		Details:   "the planted line set must form exactly one closed loop",
	})
	if !single {
		report.Passed = false
		report.Errors = append(report.Errors, "planted loop is not a single closed loop")
	}

	hintsOK := true
	for i, t := range geo.Tiles {
		if p.Numbers[i] == puzzle.HiddenHint {
			continue
		}
		on := 0
		for _, e := range t.Edges {
			if trueLoop[e] == geometry.On {
				on++
			}
		}
		if on != p.Numbers[i] {
			hintsOK = false
			report.Errors = append(report.Errors, fmt.Sprintf("tile %d hint %d does not match true loop count %d", i, p.Numbers[i], on))
		}
	}
	report.Checks = append(report.Checks, ConstraintResult{
		Name:      "hint-consistency",
		Satisfied: hintsOK,
		Details:   "every visible hint must equal the planted loop's ON-edge count for that tile",
	})
	if !hintsOK {
		report.Passed = false
	}

	trial := puzzle.New(geo)
	copy(trial.Numbers, p.Numbers)
	res := solver.Solve(ctx, trial)

	visible, hidden := 0, 0
	for _, n := range p.Numbers {
		if n == puzzle.HiddenHint {
			hidden++
		} else {
			visible++
		}
	}
	report.Metrics = Metrics{
		VisibleTiles: visible,
		HiddenTiles:  hidden,
		Score:        res.Score,
		LevelCounts:  res.LevelCounts,
	}

	return report, nil
}
