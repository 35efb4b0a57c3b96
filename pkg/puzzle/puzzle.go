package puzzle

import (
	"fmt"

	"github.com/fencesgen/fences/pkg/geometry"
)

// HiddenHint marks a tile whose hint number is not shown to the solver,
// mirroring the reference implementation's game.numbers[i] == -1 convention.
const HiddenHint = -1

// Puzzle is a geometry paired with per-tile hint numbers and per-edge line
// states. It owns its own state slice so multiple puzzles can share one
// Geometry (e.g. a generator trying several hint sets against one board).
type Puzzle struct {
	Geo     *geometry.Geometry
	Numbers []int
	States  []geometry.LineState
}

// New creates a puzzle over geo with every edge OFF and every tile hidden.
func New(geo *geometry.Geometry) *Puzzle {
	numbers := make([]int, geo.NumTiles())
	for i := range numbers {
		numbers[i] = HiddenHint
	}
	return &Puzzle{
		Geo:     geo,
		Numbers: numbers,
		States:  make([]geometry.LineState, geo.NumEdges()),
	}
}

// Clone returns a deep copy sharing the same Geo.
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{
		Geo:     p.Geo,
		Numbers: make([]int, len(p.Numbers)),
		States:  make([]geometry.LineState, len(p.States)),
	}
	copy(c.Numbers, p.Numbers)
	copy(c.States, p.States)
	return c
}

// CountAround returns how many sides of tile t are ON and how many are OFF.
func (p *Puzzle) CountAround(t geometry.TileID) (on, off int) {
	for _, e := range p.Geo.Tiles[t].Edges {
		switch p.States[e] {
		case geometry.On:
			on++
		case geometry.Off:
			off++
		}
	}
	return on, off
}

// TouchesTile reports whether edge e is one of tile t's sides.
func (p *Puzzle) TouchesTile(e geometry.EdgeID, t geometry.TileID) bool {
	for _, te := range p.Geo.Tiles[t].Edges {
		if te == e {
			return true
		}
	}
	return false
}

func (p *Puzzle) String() string {
	on, off, crossed := 0, 0, 0
	for _, s := range p.States {
		switch s {
		case geometry.On:
			on++
		case geometry.Off:
			off++
		case geometry.Crossed:
			crossed++
		}
	}
	return fmt.Sprintf("puzzle{tiles=%d on=%d off=%d crossed=%d}", len(p.Numbers), on, off, crossed)
}
