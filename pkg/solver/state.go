package solver

import (
	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// State layers the "still needs attention" bookkeeping the reference
// implementation calls sq_mask over a puzzle.Puzzle: a visible tile starts
// active, and handlers that fully pin its remaining sides deactivate it so
// later passes skip it.
type State struct {
	P      *puzzle.Puzzle
	Active []bool
}

// NewState marks every visible (non-hidden) tile active.
func NewState(p *puzzle.Puzzle) *State {
	active := make([]bool, len(p.Numbers))
	for i, n := range p.Numbers {
		active[i] = n != puzzle.HiddenHint
	}
	return &State{P: p, Active: active}
}

func (s *State) set(e geometry.EdgeID) int {
	if s.P.States[e] != geometry.On {
		s.P.States[e] = geometry.On
		return 1
	}
	return 0
}

func (s *State) cross(e geometry.EdgeID) int {
	if s.P.States[e] != geometry.Crossed {
		s.P.States[e] = geometry.Crossed
		return 1
	}
	return 0
}

func isVertexCornered(s *State, t geometry.TileID, v geometry.VertexID) bool {
	for _, e := range s.P.Geo.Vertices[v].Edges {
		if s.P.TouchesTile(e, t) {
			continue
		}
		if s.P.States[e] != geometry.Crossed {
			return false
		}
	}
	return true
}
