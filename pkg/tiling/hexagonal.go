package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// buildHexagonal lays out a column-offset hex grid, grounded on
// _examples/original_source/src/hex-tile.c: dimy columns of hexagons offset by height/2
// on alternating columns, dimx derived from the game width divided by 1.5 side-lengths.
func buildHexagonal(size int) (*geometry.Geometry, error) {
	dimy := size + 3
	numY := math.Sqrt(3) * float64(dimy)
	side := DefaultGameSize / numY
	height := math.Sqrt(3) * side

	numX := float64(dimy/2) * 3
	if dimy%2 == 1 {
		numX += 2
	} else {
		numX += 0.5
	}
	extra := int(math.Floor((numY - numX) / 1.5))
	dimx := dimy + extra

	a := geometry.NewAssembler(side / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	x0 := DefaultMargin
	y0 := DefaultMargin

	for i := 0; i < dimx; i++ {
		x := x0 + float64(i)*(side+side/2)
		yoffset := 0.0
		if i%2 == 1 {
			yoffset = height / 2
		}
		for j := 0; j < dimy; j++ {
			if j == 0 && i%2 == 0 {
				continue
			}
			y := y0 + yoffset + float64(j)*height
			pts := []geometry.Point{
				{X: x, Y: y},
				{X: x + side/2, Y: y - height/2},
				{X: x + side*3/2, Y: y - height/2},
				{X: x + 2*side, Y: y},
				{X: x + side*3/2, Y: y + height/2},
				{X: x + side/2, Y: y + height/2},
			}
			if _, err := a.AddTile(pts, nil); err != nil {
				return nil, err
			}
		}
	}
	return a.Build()
}
