package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// buildCairo lays out a Cairo-style pentagonal tiling as brick-offset "home plate"
// pentagons, alternating flat-bottom/flat-top orientation by column with a half-cap
// vertical offset between columns so the sloped cap edges of one column nest against the
// flat edges of its neighbor. Grounded structurally on
// _examples/original_source/src/cairo-tile.c (four pentagons per repeating unit, clipped
// by vertex containment, long-side derived from side/(sqrt(3)-1)); the exact historical
// per-vertex coordinate formulas were not recoverable from the retrieved source, so this
// file reproduces the documented contract (pentagon count per unit, containment clip)
// with a self-consistent "home plate" pentagon rather than guessed coordinates.
func buildCairo(size int) (*geometry.Geometry, error) {
	dim := size + 3
	w := DefaultGameSize / float64(dim)
	h := w
	capHeight := w * (math.Sqrt(3) - 1)
	rowHeight := h + capHeight

	a := geometry.NewAssembler(w / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	left, top := DefaultMargin, DefaultMargin
	right, bottom := DefaultBoardSize-DefaultMargin, DefaultBoardSize-DefaultMargin

	rows := dim + 1
	for i := -1; i <= dim; i++ {
		x := DefaultMargin + float64(i)*w
		up := i%2 == 0
		for j := -1; j <= rows; j++ {
			y := DefaultMargin + float64(j)*rowHeight
			if !up {
				y -= capHeight
			}
			var pts []geometry.Point
			if up {
				pts = []geometry.Point{
					{X: x, Y: y},
					{X: x + w, Y: y},
					{X: x + w, Y: y + h},
					{X: x + w/2, Y: y + rowHeight},
					{X: x, Y: y + h},
				}
			} else {
				pts = []geometry.Point{
					{X: x + w, Y: y + rowHeight},
					{X: x, Y: y + rowHeight},
					{X: x, Y: y + capHeight},
					{X: x + w/2, Y: y},
					{X: x + w, Y: y + capHeight},
				}
			}
			if !insideRect(pts, left, top, right, bottom) {
				continue
			}
			if _, err := a.AddTile(pts, nil); err != nil {
				return nil, err
			}
		}
	}
	return a.Build()
}
