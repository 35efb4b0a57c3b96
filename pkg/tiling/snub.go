package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// fillSnubUnit emits the 8 triangles and 4 squares of one snub-square symmetry unit,
// ported directly from _examples/original_source/src/snub-tile.c's
// snub_fill_unit_with_tiles (pos is the point on the unit's left edge, vertically
// centered — the "eye" position).
func fillSnubUnit(a *geometry.Assembler, pos geometry.Point, side, left, top, right, bottom float64) error {
	halfSide := side / 2
	height := side * math.Sqrt(3) / 2
	sqWide := height + halfSide

	add := func(pts []geometry.Point) error {
		if !insideRect(pts, left, top, right, bottom) {
			return nil
		}
		_, err := a.AddTile(pts, nil)
		return err
	}
	shift := func(pts []geometry.Point, dx, dy float64) []geometry.Point {
		out := make([]geometry.Point, len(pts))
		for i, p := range pts {
			out[i] = geometry.Point{X: p.X + dx, Y: p.Y + dy}
		}
		return out
	}

	// triangle left (looking up)
	t1 := []geometry.Point{
		{X: pos.X, Y: pos.Y},
		{X: pos.X + halfSide, Y: pos.Y - height},
		{X: pos.X + side, Y: pos.Y},
	}
	if err := add(t1); err != nil {
		return err
	}
	// triangle bottom middle (looking up)
	t2 := shift(t1, sqWide, sqWide)
	if err := add(t2); err != nil {
		return err
	}

	// triangle left (looking down)
	t3 := []geometry.Point{
		{X: pos.X, Y: pos.Y},
		{X: pos.X + side, Y: pos.Y},
		{X: pos.X + halfSide, Y: pos.Y + height},
	}
	if err := add(t3); err != nil {
		return err
	}
	// triangle top center (looking down)
	t4 := shift(t3, sqWide, -sqWide)
	if err := add(t4); err != nil {
		return err
	}

	// triangle center (looking left)
	t5 := []geometry.Point{
		{X: pos.X + side, Y: pos.Y},
		{X: pos.X + height + side, Y: pos.Y - halfSide},
		{X: pos.X + height + side, Y: pos.Y + halfSide},
	}
	if err := add(t5); err != nil {
		return err
	}
	// triangle bottom right (looking left)
	t6 := shift(t5, sqWide, sqWide)
	if err := add(t6); err != nil {
		return err
	}

	// triangle bottom left (looking right)
	t7 := []geometry.Point{
		{X: pos.X + halfSide, Y: pos.Y + height},
		{X: pos.X + sqWide, Y: pos.Y + sqWide},
		{X: pos.X + halfSide, Y: pos.Y + height + side},
	}
	if err := add(t7); err != nil {
		return err
	}
	// triangle center (looking right)
	t8 := shift(t7, sqWide, -sqWide)
	if err := add(t8); err != nil {
		return err
	}

	// square top left
	s1 := []geometry.Point{
		{X: pos.X + halfSide, Y: pos.Y - height},
		{X: pos.X + sqWide, Y: pos.Y - sqWide},
		{X: pos.X + sqWide + halfSide, Y: pos.Y - halfSide},
		{X: pos.X + side, Y: pos.Y},
	}
	if err := add(s1); err != nil {
		return err
	}
	// square bottom right
	s2 := shift(s1, sqWide, sqWide)
	if err := add(s2); err != nil {
		return err
	}

	// square bottom left
	s3 := []geometry.Point{
		{X: pos.X + side, Y: pos.Y},
		{X: pos.X + sqWide + halfSide, Y: pos.Y + halfSide},
		{X: pos.X + sqWide, Y: pos.Y + sqWide},
		{X: pos.X + halfSide, Y: pos.Y + height},
	}
	if err := add(s3); err != nil {
		return err
	}
	// square top right
	s4 := shift(s3, sqWide, -sqWide)
	return add(s4)
}

// buildSnub lays out the snub-square tiling, grounded on
// _examples/original_source/src/snub-tile.c's build_snub_tile_geometry sizing.
func buildSnub(size int) (*geometry.Geometry, error) {
	numEyes := size + 2
	side := DefaultGameSize / (float64(numEyes+1) + float64(numEyes)*math.Sqrt(3))

	a := geometry.NewAssembler(side / 10)
	a.SetBoard(DefaultBoardSize, DefaultMargin)

	x0 := DefaultMargin
	y0 := (DefaultGameSize - (math.Sqrt(3)+1)*side*float64(numEyes)) / 2
	y0 = DefaultMargin + y0 + (math.Sqrt(3)+1)*side/2

	left, top := DefaultMargin-1, DefaultMargin+2
	right, bottom := DefaultBoardSize-DefaultMargin+1, DefaultBoardSize-DefaultMargin-2

	for j := 0; j < numEyes; j++ {
		y := y0 + float64(j)*(math.Sqrt(3)+1)*side
		for i := 0; i <= numEyes; i++ {
			x := x0 + float64(i)*(math.Sqrt(3)+1)*side
			if err := fillSnubUnit(a, geometry.Point{X: x, Y: y}, side, left, top, right, bottom); err != nil {
				return nil, err
			}
		}
	}
	return a.Build()
}
