package puzzle

import "github.com/fencesgen/fences/pkg/geometry"

// CheckValid reports whether the current state is still consistent with
// every visible hint and with single-loop vertex degree, without requiring a
// finished solution. Grounded on
// _examples/original_source/src/solve-tools.c's solve_check_valid_game: a
// numbered tile is broken once more lines are ON than its hint, or once too
// few sides remain available to reach the hint; a vertex is broken once it
// has more than two ON lines, or exactly one ON line and no OFF line left to
// continue the loop.
func CheckValid(p *Puzzle) bool {
	for t := range p.Geo.Tiles {
		if p.Numbers[t] == HiddenHint {
			continue
		}
		on, off := p.CountAround(geometry.TileID(t))
		if on > p.Numbers[t] {
			return false
		}
		if on+off < p.Numbers[t] {
			return false
		}
	}

	for v := range p.Geo.Vertices {
		on, off := 0, 0
		for _, e := range p.Geo.Vertices[v].Edges {
			switch p.States[e] {
			case geometry.On:
				on++
			case geometry.Off:
				off++
			}
		}
		if on == 1 && off == 0 {
			return false
		}
		if on > 2 {
			return false
		}
	}
	return true
}

// MaxNumber reports whether tile t's hint equals its maximum possible value
// (sides - 1), the condition the reference implementation calls MAX_NUMBER.
func MaxNumber(geo *geometry.Geometry, numbers []int, t geometry.TileID) bool {
	return numbers[t] == geo.Tiles[t].Sides()-1
}
