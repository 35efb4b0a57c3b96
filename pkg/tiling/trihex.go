package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// trihexUnit emits the 12-sided symmetry unit of the trihex tiling centered at c: six
// inner triangles forming a hexagon, then a ring of six squares (one per hexagon edge,
// extruded outward) alternating with six gap triangles filling the wedges between them.
//
// Grounded on _examples/original_source/src/trihex-tile.c's trihex_symmetry_unit (inner
// triangle fan via 60-degree rotation, alternating ring squares/triangles). That file
// skips ring shapes already emitted by a previously placed neighbor unit via a static
// neighbor bitmask (NEIGHBOR_NW/NEIGHBOR_NE/NEIGHBOR_W); here the same "never emit a
// shape twice" invariant is enforced with a dynamic seen-set keyed by rounded centroid,
// which works regardless of raster order and needs no per-direction bit bookkeeping.
func trihexUnit(a *geometry.Assembler, c geometry.Point, side float64, seen map[[2]int64]bool, left, top, right, bottom float64) error {
	hv := make([]geometry.Point, 6)
	for k := 0; k < 6; k++ {
		hv[k] = c.Add(dir(float64(k) * 60).Scale(side))
	}

	add := func(pts []geometry.Point, dedupe bool) error {
		if !insideRect(pts, left, top, right, bottom) {
			return nil
		}
		if dedupe {
			k := centroidKey(pts)
			if seen[k] {
				return nil
			}
			seen[k] = true
		}
		_, err := a.AddTile(pts, nil)
		return err
	}

	for k := 0; k < 6; k++ {
		tri := []geometry.Point{c, hv[k], hv[(k+1)%6]}
		if err := add(tri, false); err != nil {
			return err
		}
	}

	outward := make([]geometry.Point, 6)
	for k := 0; k < 6; k++ {
		mid := geometry.Point{X: (hv[k].X + hv[(k+1)%6].X) / 2, Y: (hv[k].Y + hv[(k+1)%6].Y) / 2}
		n := mid.Sub(c)
		norm := math.Hypot(n.X, n.Y)
		outward[k] = n.Scale(side / norm)
	}

	for k := 0; k < 6; k++ {
		a0, a1 := hv[k], hv[(k+1)%6]
		sq := []geometry.Point{a0, a1, a1.Add(outward[k]), a0.Add(outward[k])}
		if err := add(sq, true); err != nil {
			return err
		}
		next := (k + 1) % 6
		gap := []geometry.Point{a1, a1.Add(outward[k]), a1.Add(outward[next])}
		if err := add(gap, true); err != nil {
			return err
		}
	}
	return nil
}

func centroidKey(pts []geometry.Point) [2]int64 {
	var c geometry.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Scale(1.0 / float64(len(pts)))
	return [2]int64{int64(math.Round(c.X * 1000)), int64(math.Round(c.Y * 1000))}
}

// buildTrihex lays out the trihex tiling on a hex lattice of symmetry units.
func buildTrihex(size int) (*geometry.Geometry, error) {
	units := size + 2
	side := DefaultGameSize / (float64(units) * 2 * math.Sqrt(3))

	a := geometry.NewAssembler(side / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	dx := side * math.Sqrt(3)
	dy := side * 1.5

	left, top := DefaultMargin, DefaultMargin
	right, bottom := DefaultBoardSize-DefaultMargin, DefaultBoardSize-DefaultMargin

	seen := map[[2]int64]bool{}
	for r := -1; r <= units; r++ {
		cy := DefaultBoardSize/2 + float64(r)*dy
		rowOffset := 0.0
		if r%2 != 0 {
			rowOffset = dx / 2
		}
		for q := -1; q <= units; q++ {
			cx := DefaultBoardSize/2 + float64(q)*dx + rowOffset
			if err := trihexUnit(a, geometry.Point{X: cx, Y: cy}, side, seen, left, top, right, bottom); err != nil {
				return nil, err
			}
		}
	}
	return a.Build()
}
