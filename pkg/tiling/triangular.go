package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// buildTriangular lays out rows of alternating up/down triangles, grounded on
// _examples/original_source/src/triangle-tile.c: side = GAME_SIZE/(dimx+0.5),
// height = side*sqrt(3)/2, orientation alternates by (i+j)%2.
func buildTriangular(size int) (*geometry.Geometry, error) {
	dimx := size + 3
	dimy := dimx
	side := DefaultGameSize / (float64(dimx) + 0.5)
	height := side * math.Sqrt(3) / 2

	a := geometry.NewAssembler(side / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	x0, y0 := DefaultMargin, DefaultMargin
	for j := 0; j < dimy; j++ {
		y := y0 + float64(j)*height
		for i := 0; i < dimx; i++ {
			x := x0 + float64(i)*side/2
			var pts []geometry.Point
			if (i+j)%2 == 0 {
				// pointing up
				pts = []geometry.Point{
					{X: x, Y: y + height},
					{X: x + side/2, Y: y},
					{X: x + side, Y: y + height},
				}
			} else {
				// pointing down
				pts = []geometry.Point{
					{X: x, Y: y},
					{X: x + side, Y: y},
					{X: x + side/2, Y: y + height},
				}
			}
			if _, err := a.AddTile(pts, nil); err != nil {
				return nil, err
			}
		}
	}
	return a.Build()
}
