package tiling

import "github.com/fencesgen/fences/pkg/geometry"

// buildSquare lays out a dim x dim grid of unit squares, axis-aligned, grounded on
// _examples/original_source/src/square-tile.c's sizing (GAME_SIZE/dim side length) but
// routed through the shared generic Assembler contract rather than that file's
// hand-rolled indexed construction.
func buildSquare(size int) (*geometry.Geometry, error) {
	dim := size + 3
	side := DefaultGameSize / float64(dim)

	a := geometry.NewAssembler(side / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	x0, y0 := DefaultMargin, DefaultMargin
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			x := x0 + float64(i)*side
			y := y0 + float64(j)*side
			pts := []geometry.Point{
				{X: x, Y: y},
				{X: x + side, Y: y},
				{X: x + side, Y: y + side},
				{X: x, Y: y + side},
			}
			if _, err := a.AddTile(pts, nil); err != nil {
				return nil, err
			}
		}
	}
	return a.Build()
}
