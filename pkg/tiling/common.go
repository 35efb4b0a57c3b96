package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// insideRect reports whether every point lies within the closed rectangle
// [left,right]x[top,bottom], grounded on the vertex-containment clip used throughout
// _examples/original_source/src/*-tile.c (e.g. qbert_is_rhomb_inside,
// cairotile_is_tile_inside, snub_is_tile_inside).
func insideRect(pts []geometry.Point, left, top, right, bottom float64) bool {
	for _, p := range pts {
		if p.X < left || p.X > right || p.Y < top || p.Y > bottom {
			return false
		}
	}
	return true
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

// dir returns the unit vector at angle degrees (standard math convention).
func dir(degrees float64) geometry.Point {
	r := degToRad(degrees)
	return geometry.Point{X: math.Cos(r), Y: math.Sin(r)}
}
