package puzzle

import "github.com/fencesgen/fences/pkg/geometry"

// GotoNextLine walks from edge e, exiting via end exitEnd (0 or 1), to the
// which'th candidate continuation, regardless of that edge's state. It
// reports the continuation edge and the exit end to use from it to keep
// moving away from e. Grounded on
// _examples/original_source/src/game-solver.c's goto_next_line.
func GotoNextLine(geo *geometry.Geometry, e geometry.EdgeID, exitEnd, which int) (next geometry.EdgeID, nextExitEnd int, ok bool) {
	list := geo.NextEdges(e, exitEnd)
	if which >= len(list) {
		return 0, 0, false
	}
	next = list[which]
	via := geo.Edges[e].Ends[exitEnd]
	entry := geo.EntryEnd(next, via)
	return next, 1 - entry, true
}

// FollowLine walks from edge e, exiting via end exitEnd, along the single ON
// continuation if one exists. Grounded on game-solver.c's follow_line.
func FollowLine(p *Puzzle, e geometry.EdgeID, exitEnd int) (next geometry.EdgeID, nextExitEnd int, ok bool) {
	list := p.Geo.NextEdges(e, exitEnd)
	via := p.Geo.Edges[e].Ends[exitEnd]
	for _, cand := range list {
		if p.States[cand] == geometry.On {
			entry := p.Geo.EntryEnd(cand, via)
			return cand, 1 - entry, true
		}
	}
	return 0, 0, false
}

// IsSingleLoop reports whether every ON edge belongs to exactly one closed
// loop (no partial chains, no second disjoint loop). Grounded on
// solve_check_solution plus brute-force.c's brute_force_check_loop, which
// this engine merges into one walk-the-ON-graph routine. An empty ON set is
// the trivial single loop (e.g. an all-zero-hint puzzle, where L-init
// crosses every edge): whether that trivial loop is actually consistent
// with the hints is allHintsSatisfied's job, not this one.
func IsSingleLoop(p *Puzzle) bool {
	visited := make([]bool, len(p.States))
	var onCount int
	for _, s := range p.States {
		if s == geometry.On {
			onCount++
		}
	}
	if onCount == 0 {
		return true
	}

	var start geometry.EdgeID
	found := false
	for e, s := range p.States {
		if s == geometry.On {
			start = geometry.EdgeID(e)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	e, exitEnd := start, 0
	visited[start] = true
	walked := 1
	for {
		next, nextExit, ok := FollowLine(p, e, exitEnd)
		if !ok {
			return false // loop ends without closing: a dangling chain
		}
		if next == start {
			break // closed the loop
		}
		if visited[next] {
			return false // revisited an edge before closing: a branch or second loop
		}
		visited[next] = true
		walked++
		e, exitEnd = next, nextExit
	}
	return walked == onCount
}
