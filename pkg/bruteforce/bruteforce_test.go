package bruteforce

import (
	"testing"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// fixedSource always returns 0, picking the first ON edge and direction 0.
type fixedSource struct{}

func (fixedSource) Intn(n int) int { return 0 }

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

func twoSquares(t *testing.T) *geometry.Geometry {
	t.Helper()
	a := geometry.NewAssembler(0.01)
	left := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	right := []geometry.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	if _, err := a.AddTile(left, nil); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	if _, err := a.AddTile(right, nil); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	g, err := a.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestSolveRejectsWithNoInitialON(t *testing.T) {
	g := unitSquare(t)
	p := puzzle.New(g)
	if _, err := Solve(p, fixedSource{}); err != ErrNoInitialON {
		t.Fatalf("expected ErrNoInitialON, got %v", err)
	}
}

func TestSolveRejectsAlreadyClosedLoop(t *testing.T) {
	g := unitSquare(t)
	p := puzzle.New(g)
	for _, e := range g.Tiles[0].Edges {
		p.States[e] = geometry.On
	}
	if _, err := Solve(p, fixedSource{}); err != ErrLoopAttemptedOnClosed {
		t.Fatalf("expected ErrLoopAttemptedOnClosed, got %v", err)
	}
}

func TestSolveCompletesThreeSidesOfASquare(t *testing.T) {
	g := unitSquare(t)
	p := puzzle.New(g)
	edges := g.Tiles[0].Edges
	p.States[edges[0]] = geometry.On
	p.States[edges[1]] = geometry.On
	p.States[edges[2]] = geometry.On

	n, err := Solve(p, fixedSource{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one completion of a 3-sided chain into a square, got %d", n)
	}
}

func TestCheckValidRejectsOverfullVertex(t *testing.T) {
	g := twoSquares(t)
	p := puzzle.New(g)
	var v geometry.VertexID
	for _, e := range g.Edges {
		if len(e.Tiles) == 2 {
			v = e.Ends[0]
			break
		}
	}
	for _, e := range g.Vertices[v].Edges {
		p.States[e] = geometry.On
	}
	if checkValid(p) {
		t.Fatal("expected a 3-ON junction vertex to be invalid")
	}
}

func TestCheckLoopRejectsOpenChain(t *testing.T) {
	g := unitSquare(t)
	p := puzzle.New(g)
	edges := g.Tiles[0].Edges
	p.States[edges[0]] = geometry.On
	p.States[edges[1]] = geometry.On
	if checkLoop(p) {
		t.Fatal("expected an open 2-edge chain not to satisfy checkLoop")
	}
}

func TestCheckLoopAcceptsClosedSquare(t *testing.T) {
	g := unitSquare(t)
	p := puzzle.New(g)
	for _, e := range g.Tiles[0].Edges {
		p.States[e] = geometry.On
	}
	if !checkLoop(p) {
		t.Fatal("expected a fully-ON square to satisfy checkLoop")
	}
}
