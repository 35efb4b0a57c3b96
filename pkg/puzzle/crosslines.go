package puzzle

import "github.com/fencesgen/fences/pkg/geometry"

// CrossLines repeatedly crosses out OFF lines that can no longer be part of
// the loop: a vertex with two ON lines has every other line crossed (the
// loop doesn't visit a vertex twice), a vertex with no ON line and exactly
// one OFF line is a dead end and that OFF line gets crossed, and a tile whose
// ON-line count already matches its hint has its remaining OFF lines
// crossed. It repeats
// until a pass makes no further change, then returns the total number of
// lines crossed. Grounded on
// _examples/original_source/src/game-solver.c's solve_cross_lines.
func CrossLines(p *Puzzle) int {
	total := 0
	for {
		changed := 0
		for v := range p.Geo.Vertices {
			on, off, offIdx := 0, 0, -1
			for _, e := range p.Geo.Vertices[v].Edges {
				switch p.States[e] {
				case geometry.On:
					on++
				case geometry.Off:
					off++
					offIdx = int(e)
				}
			}
			if on == 2 {
				for _, e := range p.Geo.Vertices[v].Edges {
					if p.States[e] == geometry.Off {
						p.States[e] = geometry.Crossed
						changed++
					}
				}
			} else if on == 0 && off == 1 {
				p.States[geometry.EdgeID(offIdx)] = geometry.Crossed
				changed++
			}
		}
		total += changed
		if changed == 0 {
			break
		}
	}

	beforeTiles := total
	for t := range p.Geo.Tiles {
		if p.Numbers[t] == HiddenHint {
			continue
		}
		on, _ := p.CountAround(geometry.TileID(t))
		if on != p.Numbers[t] {
			continue
		}
		for _, e := range p.Geo.Tiles[t].Edges {
			if p.States[e] == geometry.Off {
				p.States[e] = geometry.Crossed
				total++
			}
		}
	}
	if total > beforeTiles {
		return total + CrossLines(p)
	}
	return total
}
