package tiling

import "testing"

func TestBuildAllKindsProduceValidGeometry(t *testing.T) {
	kinds := []Kind{Square, Triangular, Hexagonal, Qbert, Cairo, Snub, Trihex, Penrose, Cartwheel}
	for _, k := range kinds {
		size := 1
		if k.IsSubstitution() {
			size = 2
		}
		g, err := Build(GameInfo{Kind: k, Size: size})
		if err != nil {
			t.Fatalf("%s: Build failed: %v", k, err)
		}
		if g.NumTiles() == 0 {
			t.Fatalf("%s: no tiles produced", k)
		}
		if g.NumEdges() == 0 {
			t.Fatalf("%s: no edges produced", k)
		}
		for _, e := range g.Edges {
			if len(e.Tiles) == 0 || len(e.Tiles) > 2 {
				t.Fatalf("%s: edge %d has %d tiles, want 1 or 2", k, e.ID, len(e.Tiles))
			}
		}
		for _, tl := range g.Tiles {
			if len(tl.Edges) != len(tl.Vertices) {
				t.Fatalf("%s: tile %d has %d edges but %d vertices", k, tl.ID, len(tl.Edges), len(tl.Vertices))
			}
			if tl.Sides() < 3 {
				t.Fatalf("%s: tile %d has fewer than 3 sides", k, tl.ID)
			}
		}
	}
}

func TestBuildNegativeSizeRejected(t *testing.T) {
	if _, err := Build(GameInfo{Kind: Square, Size: -1}); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestBuildSubstitutionSizeCapped(t *testing.T) {
	if _, err := Build(GameInfo{Kind: Penrose, Size: 5}); err == nil {
		t.Fatal("expected error for substitution size above 4")
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{Square, Penrose, Triangular, Qbert, Hexagonal, Snub, Cairo, Cartwheel, Trihex} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%s): %v", k, err)
		}
		if got != k {
			t.Fatalf("ParseKind(%s) = %v, want %v", k, got, k)
		}
	}
	if _, err := ParseKind("nonsense"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
