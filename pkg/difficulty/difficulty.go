package difficulty

import "fmt"

// Band names a named difficulty preset, paralleling the reference
// implementation's gameinfo.diff_index (0:Beginner,1:Easy,...) over its
// documented 0-10 difficulty scale. The reference source names the bands
// but never publishes numeric boundaries for them; the ranges below are
// this module's own split of that scale, with wider bands toward the top.
type Band struct {
	Name     string
	Min, Max float64
}

// Bands lists every named preset in increasing order of difficulty.
var Bands = []Band{
	{Name: "Beginner", Min: 0.0, Max: 1.5},
	{Name: "Easy", Min: 1.5, Max: 3.0},
	{Name: "Normal", Min: 3.0, Max: 5.0},
	{Name: "Hard", Min: 5.0, Max: 7.5},
	{Name: "Expert", Min: 7.5, Max: 10.0},
}

// Resolve looks up a band by name (case-insensitive) and returns its
// midpoint as a target difficulty for pkg/generator.
func Resolve(name string) (target float64, ok bool) {
	for _, b := range Bands {
		if equalFold(b.Name, name) {
			return (b.Min + b.Max) / 2, true
		}
	}
	return 0, false
}

// BandFor returns the name of the band containing score, or the nearest
// band if score falls outside every range (e.g. a rejected solve's
// penalized score).
func BandFor(score float64) string {
	for _, b := range Bands {
		if score >= b.Min && score < b.Max {
			return b.Name
		}
	}
	if score < Bands[0].Min {
		return Bands[0].Name
	}
	return Bands[len(Bands)-1].Name
}

func (b Band) String() string {
	return fmt.Sprintf("%s[%.1f,%.1f)", b.Name, b.Min, b.Max)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
