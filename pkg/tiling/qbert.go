package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// buildQbert lays out the quasiregular rhombic (rhombille) tiling: three 60/120-degree
// rhombs meeting at a common vertex, oriented 120 degrees apart, grounded on
// _examples/original_source/src/qbert-tile.c's qbert_fill_unit_with_rhombs and its
// rectangle-containment clip (qbert_is_rhomb_inside).
func buildQbert(size int) (*geometry.Geometry, error) {
	units := size + 2
	sqrt3 := math.Sqrt(3)
	// Lattice spacing chosen so adjacent units' rhombs share full edges.
	side := DefaultGameSize / (float64(units+1) * 1.5)

	a := geometry.NewAssembler(side / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	left, right := DefaultMargin, DefaultBoardSize-DefaultMargin
	top, bottom := DefaultMargin, DefaultBoardSize-DefaultMargin

	ax := geometry.Point{X: 1.5 * side, Y: sqrt3 / 2 * side}
	ay := geometry.Point{X: 0, Y: sqrt3 * side}
	origin := geometry.Point{X: DefaultBoardSize / 2, Y: DefaultBoardSize / 2}

	inside := func(pts []geometry.Point) bool {
		for _, p := range pts {
			if p.X < left || p.X > right || p.Y < top || p.Y > bottom {
				return false
			}
		}
		return true
	}

	for u := -units; u <= units; u++ {
		for v := -units; v <= units; v++ {
			pos := origin.Add(ax.Scale(float64(u))).Add(ay.Scale(float64(v)))
			for k := 0; k < 3; k++ {
				theta := float64(k) * 120 * math.Pi / 180
				theta2 := theta + 60*math.Pi/180
				p1 := pos.Add(geometry.Point{X: side * math.Cos(theta), Y: side * math.Sin(theta)})
				p2 := pos.Add(geometry.Point{X: side * math.Cos(theta2), Y: side * math.Sin(theta2)})
				p3 := p1.Add(p2).Sub(pos)
				pts := []geometry.Point{pos, p1, p3, p2}
				if !inside(pts) {
					continue
				}
				if _, err := a.AddTile(pts, nil); err != nil {
					return nil, err
				}
			}
		}
	}
	return a.Build()
}
