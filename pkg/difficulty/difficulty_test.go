package difficulty

import "testing"

func TestResolveIsCaseInsensitive(t *testing.T) {
	a, ok := Resolve("hard")
	if !ok {
		t.Fatal("expected to resolve 'hard'")
	}
	b, _ := Resolve("Hard")
	if a != b {
		t.Fatalf("expected case-insensitive match, got %v vs %v", a, b)
	}
}

func TestResolveRejectsUnknownBand(t *testing.T) {
	if _, ok := Resolve("Nightmare"); ok {
		t.Fatal("expected Nightmare to be unknown")
	}
}

func TestBandForCoversFullRange(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{-1, "Beginner"},
		{0, "Beginner"},
		{2, "Easy"},
		{4, "Normal"},
		{6, "Hard"},
		{9, "Expert"},
		{100, "Expert"},
	}
	for _, c := range cases {
		if got := BandFor(c.score); got != c.want {
			t.Errorf("BandFor(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}
