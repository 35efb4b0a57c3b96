package solver

import (
	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// handleLoopBottleneck (L4) walks every ON chain from both ends until each
// end gets stuck (no further ON continuation). If the two stuck ends are
// separated by exactly one OFF/CROSSED line, following that line would close
// a loop early, so it is crossed out. Returns 1 if a line was crossed this
// call, 0 otherwise (an already-closed loop, found mid-scan, also reports 0
// immediately). Grounded on
// _examples/original_source/src/game-solver.c's solve_handle_loop_bottleneck.
func handleLoopBottleneck(s *State) int {
	geo := s.P.Geo
	visited := make([]bool, len(s.P.States))

	for i, st := range s.P.States {
		if st != geometry.On || visited[i] {
			continue
		}
		visited[i] = true

		end1, dir1 := geometry.EdgeID(i), 0
		end2, dir2 := geometry.EdgeID(i), 1
		stuck := 0
		closedLoop := false

		for stuck != 3 {
			if stuck&1 == 0 {
				next, nextDir, ok := puzzle.FollowLine(s.P, end1, dir1)
				if ok && next == end2 {
					closedLoop = true
					break
				}
				if ok {
					end1, dir1 = next, nextDir
					visited[next] = true
				} else {
					stuck |= 1
				}
			}
			if stuck&2 == 0 {
				next, nextDir, ok := puzzle.FollowLine(s.P, end2, dir2)
				if ok && next == end1 {
					closedLoop = true
					break
				}
				if ok {
					end2, dir2 = next, nextDir
					visited[next] = true
				} else {
					stuck |= 2
				}
			}
		}

		if closedLoop {
			return 0
		}

		vertex := geo.Edges[end1].Ends[dir1]
		list := geo.NextEdges(end2, dir2)
		for _, cand := range list {
			if geo.Edges[cand].Ends[0] != vertex && geo.Edges[cand].Ends[1] != vertex {
				continue
			}
			if s.P.States[cand] != geometry.Crossed {
				s.cross(cand)
				return 1
			}
			break
		}
	}
	return 0
}
