package solver

import (
	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// handleZeroTiles crosses every side of a 0-hint tile and deactivates it.
// Run once before the level loop, as in
// _examples/original_source/src/game-solver.c's solve_handle_zero_squares.
func handleZeroTiles(s *State) int {
	count := 0
	for i, n := range s.P.Numbers {
		if n != 0 {
			continue
		}
		s.Active[i] = false
		for _, e := range s.P.Geo.Tiles[i].Edges {
			count += s.cross(e)
		}
	}
	return count
}

// handleMaxNumberTiles enables lines around corner vertices of a (sides-1)
// tile, and the shared or diagonal lines between two neighboring
// (sides-1) tiles. Run once before the level loop, as in
// solve_handle_maxnumber_squares.
func handleMaxNumberTiles(s *State) int {
	count := 0
	geo := s.P.Geo
	for i, n := range s.P.Numbers {
		t := geometry.TileID(i)
		if !s.Active[i] || n != geo.Tiles[t].Sides()-1 {
			continue
		}
		for _, v := range geo.Tiles[t].Vertices {
			if len(geo.Vertices[v].Edges) == 2 {
				for _, e := range geo.Vertices[v].Edges {
					count += s.set(e)
				}
				continue
			}
			var other geometry.TileID
			foundOther := false
			for _, t2 := range geo.Vertices[v].Tiles {
				if t2 == t {
					continue
				}
				if puzzle.MaxNumber(geo, s.P.Numbers, t2) {
					other, foundOther = t2, true
					break
				}
			}
			if !foundOther {
				continue
			}
			shared, hasShared := sharedEdge(geo, t, other)
			if hasShared {
				count += s.set(shared)
				count += setAllExcept(s, t, shared)
				count += setAllExcept(s, other, shared)
			} else {
				count += setAllAwayFromVertex(s, t, v)
				count += setAllAwayFromVertex(s, other, v)
			}
		}
	}
	return count
}

func sharedEdge(geo *geometry.Geometry, a, b geometry.TileID) (geometry.EdgeID, bool) {
	for _, ea := range geo.Tiles[a].Edges {
		for _, eb := range geo.Tiles[b].Edges {
			if ea == eb {
				return ea, true
			}
		}
	}
	return 0, false
}

// setAllExcept sets ON every side of t that shares no endpoint with except
// (so except itself and the two sides meeting it are left alone).
func setAllExcept(s *State, t geometry.TileID, except geometry.EdgeID) int {
	count := 0
	for _, e := range s.P.Geo.Tiles[t].Edges {
		if _, touches := s.P.Geo.SharedVertex(e, except); touches {
			continue
		}
		count += s.set(e)
	}
	return count
}

func setAllAwayFromVertex(s *State, t geometry.TileID, v geometry.VertexID) int {
	count := 0
	for _, e := range s.P.Geo.Tiles[t].Edges {
		if s.P.Geo.Edges[e].Ends[0] == v || s.P.Geo.Edges[e].Ends[1] == v {
			continue
		}
		count += s.set(e)
	}
	return count
}

// handleTrivialVertex (L0) sets a vertex's lone remaining OFF line ON when
// exactly one of its lines is already ON. Grounded on
// solve_handle_trivial_vertex.
func handleTrivialVertex(s *State) int {
	count := 0
	for v := range s.P.Geo.Vertices {
		on, off, offIdx := 0, 0, geometry.EdgeID(-1)
		for _, e := range s.P.Geo.Vertices[v].Edges {
			switch s.P.States[e] {
			case geometry.On:
				on++
			case geometry.Off:
				off++
				offIdx = e
			}
		}
		if on == 1 && off == 1 {
			count += s.set(offIdx)
		}
	}
	return count
}

// handleTrivialTiles (L1) completes an active tile once enough of its sides
// are crossed that the remaining OFF sides must all be ON. Grounded on
// solve_handle_trivial_squares.
func handleTrivialTiles(s *State) int {
	count := 0
	for i, n := range s.P.Numbers {
		if n == puzzle.HiddenHint || !s.Active[i] {
			continue
		}
		t := geometry.TileID(i)
		crossed := 0
		for _, e := range s.P.Geo.Tiles[t].Edges {
			if s.P.States[e] == geometry.Crossed {
				crossed++
			}
		}
		if s.P.Geo.Tiles[t].Sides()-crossed != n {
			continue
		}
		s.Active[i] = false
		for _, e := range s.P.Geo.Tiles[t].Edges {
			if s.P.States[e] == geometry.Off {
				count += s.set(e)
			}
		}
	}
	return count
}

// handleCorner (L2) resolves tiles with hint 1 or (sides-1) whenever one of
// their vertices is "cornered" (every other line touching it is crossed).
// Grounded on solve_handle_corner.
func handleCorner(s *State) int {
	count := 0
	geo := s.P.Geo
	for i, n := range s.P.Numbers {
		t := geometry.TileID(i)
		if !s.Active[i] || (n != geo.Tiles[t].Sides()-1 && n != 1) {
			continue
		}
		for _, v := range geo.Tiles[t].Vertices {
			if !isVertexCornered(s, t, v) {
				continue
			}
			for _, e := range geo.Tiles[t].Edges {
				if !s.P.TouchesTile(e, t) {
					continue
				}
				if geo.Edges[e].Ends[0] != v && geo.Edges[e].Ends[1] != v {
					continue
				}
				if n == 1 {
					count += s.cross(e)
				} else {
					count += s.set(e)
				}
			}
		}
	}
	return count
}

// handleMaxNumberIncomingLine (L3) propagates a lone incoming ON line at a
// (sides-1) tile's vertex: the loop must continue into the tile and around
// it, so every other OFF line at that vertex outside the tile is crossed and
// every tile side not touching the vertex is set ON. Grounded on
// solve_handle_maxnumber_incoming_line.
func handleMaxNumberIncomingLine(s *State) int {
	count := 0
	geo := s.P.Geo
	for i, n := range s.P.Numbers {
		t := geometry.TileID(i)
		if !s.Active[i] || n != geo.Tiles[t].Sides()-1 {
			continue
		}
		for _, v := range geo.Tiles[t].Vertices {
			var on geometry.EdgeID
			nOn := 0
			for _, e := range geo.Vertices[v].Edges {
				if s.P.States[e] == geometry.On {
					on = e
					nOn++
				}
			}
			if nOn != 1 || s.P.TouchesTile(on, t) {
				continue
			}
			for _, e := range geo.Vertices[v].Edges {
				if s.P.States[e] == geometry.Off && !s.P.TouchesTile(e, t) {
					count += s.cross(e)
				}
			}
			count += setAllAwayFromVertex(s, t, v)
			break
		}
	}
	return count
}

// handleNetOne (L5) applies to an active tile whose hint minus its ON count
// is exactly 1: if one vertex has a single incoming ON line not touching the
// tile and no other OFF exit away from the tile, the loop must continue
// straight through the tile, so the rest of the tile's OFF sides away from
// that vertex are crossed. Grounded on solve_handle_squares_net_1.
func handleNetOne(s *State) int {
	count := 0
	geo := s.P.Geo
	for i := range s.P.Numbers {
		if !s.Active[i] {
			continue
		}
		t := geometry.TileID(i)
		on, _ := s.P.CountAround(t)
		if s.P.Numbers[i]-on != 1 {
			continue
		}
		for _, v := range geo.Tiles[t].Vertices {
			nOn, numExits := 0, 0
			var onEdge geometry.EdgeID
			for _, e := range geo.Vertices[v].Edges {
				if s.P.States[e] == geometry.On {
					onEdge = e
					nOn++
					continue
				}
				if s.P.States[e] == geometry.Off && !s.P.TouchesTile(e, t) {
					numExits++
				}
			}
			if nOn != 1 || s.P.TouchesTile(onEdge, t) || numExits > 0 {
				continue
			}
			for _, e := range geo.Tiles[t].Edges {
				if geo.Edges[e].Ends[0] == v || geo.Edges[e].Ends[1] == v {
					continue
				}
				if s.P.States[e] == geometry.Off {
					count += s.cross(e)
				}
			}
		}
	}
	return count
}
