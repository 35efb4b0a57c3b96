package validation

import (
	"context"
	"testing"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

func unitSquare(t *testing.T) *geometry.Geometry {
	t.Helper()
	a := geometry.NewAssembler(0.01)
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if _, err := a.AddTile(pts, nil); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	g, err := a.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestValidateAcceptsConsistentHints(t *testing.T) {
	g := unitSquare(t)
	loop := make([]geometry.LineState, g.NumEdges())
	for _, e := range g.Tiles[0].Edges {
		loop[e] = geometry.On
	}
	p := puzzle.New(g)
	p.Numbers[0] = 4

	report, err := Validate(context.Background(), g, p, loop)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !report.Passed {
		t.Fatalf("expected a passing report, got errors: %v", report.Errors)
	}
}

func TestValidateRejectsMismatchedHint(t *testing.T) {
	g := unitSquare(t)
	loop := make([]geometry.LineState, g.NumEdges())
	for _, e := range g.Tiles[0].Edges {
		loop[e] = geometry.On
	}
	p := puzzle.New(g)
	p.Numbers[0] = 1 // wrong: the loop has all 4 sides ON

	report, err := Validate(context.Background(), g, p, loop)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Passed {
		t.Fatal("expected a failing report for a mismatched hint")
	}
}

func TestValidateReportsTileCounts(t *testing.T) {
	g := unitSquare(t)
	loop := make([]geometry.LineState, g.NumEdges())
	for _, e := range g.Tiles[0].Edges {
		loop[e] = geometry.On
	}
	p := puzzle.New(g) // all hints hidden

	report, err := Validate(context.Background(), g, p, loop)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Metrics.HiddenTiles != 1 || report.Metrics.VisibleTiles != 0 {
		t.Fatalf("expected 1 hidden, 0 visible, got %+v", report.Metrics)
	}
}
