package loopbuilder

import "github.com/fencesgen/fences/pkg/geometry"

// Source is the randomness this package needs: a starting tile and, at each
// growth step, which available line to try next and which of its two tiles
// to attempt first.
type Source interface {
	Intn(n int) int
}

// maxStuckRounds bounds the "every line available again" reset: the reset
// fires once more than maxStuckRounds consecutive picks leave the count of
// available lines unchanged (or when none is left). Grounded on
// build-loop.c's literal stuck>3 threshold.
const maxStuckRounds = 3

// maxResets is how many times the mask can be fully reset before the loop
// is accepted as final. Grounded on build-loop.c's num_stuck<3 outer bound.
const maxResets = 3

type builder struct {
	geo    *geometry.Geometry
	state  []geometry.LineState
	mask   []bool
	nlines int
	navail int
}

// Build grows a single random closed loop over geo's edges and returns the
// resulting line states (Off/On only; never Crossed). Grounded on
// build-loop.c's build_loop.
func Build(geo *geometry.Geometry, rng Source) []geometry.LineState {
	b := &builder{
		geo:   geo,
		state: make([]geometry.LineState, geo.NumEdges()),
		mask:  make([]bool, geo.NumEdges()),
	}
	for i := range b.mask {
		b.mask[i] = true
	}

	start := geo.Tiles[rng.Intn(len(geo.Tiles))]
	for _, e := range start.Edges {
		b.state[e] = geometry.On
	}
	b.nlines = len(start.Edges)
	b.navail = len(start.Edges)

	prevAvail := 0
	stuck := 0
	numStuck := 0

	for numStuck < maxResets {
		index := b.pickAvailableOnLine(rng)
		e := geo.Edges[index]

		progressed := false
		if len(e.Tiles) == 2 {
			first := rng.Intn(2)
			if tile, ok := b.pickGrowableTile(e, index, first); ok {
				b.toggleTile(tile)
				progressed = true
			}
		}
		if !progressed {
			b.mask[index] = false
			b.navail--
		}

		if b.navail == prevAvail {
			stuck++
		} else {
			stuck = 0
		}
		prevAvail = b.navail

		if stuck > maxStuckRounds || b.navail == 0 {
			numStuck++
			b.navail = 0
			for i := range b.mask {
				b.mask[i] = true
				if b.state[i] == geometry.On {
					b.navail++
				}
			}
		}
	}

	return b.state
}

func (b *builder) pickAvailableOnLine(rng Source) geometry.EdgeID {
	count := rng.Intn(b.navail)
	for i := range b.state {
		if b.state[i] == geometry.On && b.mask[i] {
			count--
		}
		if count < 0 {
			return geometry.EdgeID(i)
		}
	}
	panic("loopbuilder: navail count did not match available ON lines")
}

// pickGrowableTile tries both tiles touching e, starting with Tiles[first],
// and returns the first one available for growth.
func (b *builder) pickGrowableTile(e geometry.Edge, index geometry.EdgeID, first int) (geometry.Tile, bool) {
	for j := 0; j < 2; j++ {
		t := b.geo.Tiles[e.Tiles[(first+j)%2]]
		if b.isTileAvailable(t, index) {
			return t, true
		}
	}
	return geometry.Tile{}, false
}

// isTileAvailable reports whether t is a valid growth point: every side is
// mask-available, toggling it would not create a non-incoming corner, and
// its current run of ON sides is contiguous and at most half its sides.
// Grounded on is_square_available.
func (b *builder) isTileAvailable(t geometry.Tile, index geometry.EdgeID) bool {
	for _, e := range t.Edges {
		if !b.mask[e] {
			return false
		}
	}

	prev := b.state[index]
	b.state[index] = geometry.Off
	corner := b.tileHasCorner(t)
	b.state[index] = prev
	if corner {
		return false
	}

	n := b.contiguousOnRun(t)
	if n == 0 || n > t.Sides()/2 {
		return false
	}
	return true
}

// tileHasCorner reports whether any vertex of t has two or more ON lines
// not belonging to t itself. Grounded on square_has_corner.
func (b *builder) tileHasCorner(t geometry.Tile) bool {
	isSide := make(map[geometry.EdgeID]bool, len(t.Edges))
	for _, e := range t.Edges {
		isSide[e] = true
	}
	for _, v := range t.Vertices {
		count := 0
		for _, e := range b.geo.Vertices[v].Edges {
			if isSide[e] {
				continue
			}
			if b.state[e] == geometry.On {
				if count == 1 {
					return true
				}
				count++
			}
		}
	}
	return false
}

// contiguousOnRun returns the length of t's single contiguous run of ON
// sides, or 0 if the ON sides are split into more than one run. Grounded on
// count_contiguous_lines (deliberately non-circular, matching the source).
func (b *builder) contiguousOnRun(t geometry.Tile) int {
	totalOn, run, max := 0, 0, 0
	for _, e := range t.Edges {
		if b.state[e] == geometry.On {
			totalOn++
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}
	if max != totalOn {
		return 0
	}
	return max
}

// toggleTile flips every side of t: ON sides turn OFF and lock, OFF sides
// turn ON and unlock.
func (b *builder) toggleTile(t geometry.Tile) {
	for _, e := range t.Edges {
		if b.state[e] == geometry.On {
			b.state[e] = geometry.Off
			b.mask[e] = false
			b.nlines--
			b.navail--
		} else {
			b.state[e] = geometry.On
			b.mask[e] = true
			b.nlines++
			b.navail++
		}
	}
}
