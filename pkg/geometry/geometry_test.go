package geometry

import "testing"

// twoSquares builds two unit squares sharing one edge:
//
//	(0,0)-(1,0)-(1,1)-(0,1)   and   (1,0)-(2,0)-(2,1)-(1,1)
func twoSquares(t *testing.T, opts ...Option) *Geometry {
	t.Helper()
	a := NewAssembler(0.1, opts...)
	a.SetBoard(10, 1)
	_, err := a.AddTile([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, nil)
	if err != nil {
		t.Fatalf("AddTile 1: %v", err)
	}
	_, err = a.AddTile([]Point{{1, 0}, {2, 0}, {2, 1}, {1, 1}}, nil)
	if err != nil {
		t.Fatalf("AddTile 2: %v", err)
	}
	g, err := a.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestAssemblerDedup(t *testing.T) {
	g := twoSquares(t)
	if len(g.Vertices) != 6 {
		t.Fatalf("want 6 vertices, got %d", len(g.Vertices))
	}
	if len(g.Edges) != 7 {
		t.Fatalf("want 7 edges, got %d", len(g.Edges))
	}
	if len(g.Tiles) != 2 {
		t.Fatalf("want 2 tiles, got %d", len(g.Tiles))
	}
}

func TestEveryEdgeOneOrTwoTiles(t *testing.T) {
	g := twoSquares(t)
	for _, e := range g.Edges {
		if len(e.Tiles) != 1 && len(e.Tiles) != 2 {
			t.Fatalf("edge %d has %d tiles", e.ID, len(e.Tiles))
		}
	}
}

func TestTileEdgeVertexCyclesMatch(t *testing.T) {
	g := twoSquares(t)
	for _, tl := range g.Tiles {
		n := len(tl.Vertices)
		if len(tl.Edges) != n {
			t.Fatalf("tile %d: %d vertices but %d edges", tl.ID, n, len(tl.Edges))
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			e := g.Edges[tl.Edges[i]]
			if e.EndIndex(tl.Vertices[i]) < 0 || e.EndIndex(tl.Vertices[j]) < 0 {
				t.Fatalf("tile %d edge %d does not join vertex %d and %d", tl.ID, i, i, j)
			}
		}
	}
}

func TestContinuationsPartitionStar(t *testing.T) {
	g := twoSquares(t)
	for _, e := range g.Edges {
		v0, v1 := g.Vertices[e.Ends[0]], g.Vertices[e.Ends[1]]
		if len(e.In) != len(v0.Edges)-1 {
			t.Fatalf("edge %d: In has %d, want %d", e.ID, len(e.In), len(v0.Edges)-1)
		}
		if len(e.Out) != len(v1.Edges)-1 {
			t.Fatalf("edge %d: Out has %d, want %d", e.ID, len(e.Out), len(v1.Edges)-1)
		}
		seen := map[EdgeID]bool{}
		for _, id := range e.In {
			if id == e.ID {
				t.Fatalf("edge %d: In contains itself", e.ID)
			}
			seen[id] = true
		}
		for _, id := range e.Out {
			if seen[id] {
				t.Fatalf("edge %d: In and Out overlap at %d", e.ID, id)
			}
		}
	}
}

func TestSharedEdgeHasTwoTiles(t *testing.T) {
	g := twoSquares(t)
	shared := 0
	for _, e := range g.Edges {
		if len(e.Tiles) == 2 {
			shared++
		}
	}
	if shared != 1 {
		t.Fatalf("want exactly 1 shared edge, got %d", shared)
	}
}

func TestThirdTileOnEdgeFails(t *testing.T) {
	a := NewAssembler(0.1)
	if _, err := a.AddTile([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := a.AddTile([]Point{{0, 0}, {1, 0}, {1, -1}, {0, -1}}, nil); err != nil {
		t.Fatal(err)
	}
	// A third tile reusing the same (0,0)-(1,0) edge must fail.
	_, err := a.AddTile([]Point{{1, 0}, {0, 0}, {0, -2}, {1, -2}}, nil)
	if err == nil {
		t.Fatal("want error for third tile on shared edge")
	}
}

func TestAreaOfInfluenceOptIn(t *testing.T) {
	g := twoSquares(t)
	for _, e := range g.Edges {
		if e.AreaOfInfluence != nil {
			t.Fatalf("edge %d: AreaOfInfluence should be nil by default", e.ID)
		}
	}
	g2 := twoSquares(t, WithAreaOfInfluence())
	for _, e := range g2.Edges {
		if len(e.AreaOfInfluence) != 4 {
			t.Fatalf("edge %d: want 4-point area of influence, got %d", e.ID, len(e.AreaOfInfluence))
		}
	}
}
