package tiling

import (
	"math"

	"github.com/fencesgen/fences/pkg/geometry"
)

// substKind distinguishes the two rhombus/kite-dart families used by both substitution
// generators (Fat/Thin for Penrose, Kite/Dart for cartwheel share the same mechanics).
type substKind int

const (
	fatOrKite substKind = iota
	thinOrDart
)

// substFamily picks which vertex/unfold formulas a shape's kind is interpreted by.
type substFamily int

const (
	penroseFamily substFamily = iota
	cartwheelFamily
)

// phi is the golden ratio, reproduced to the same precision as
// _examples/original_source/src/cartwheel-tile.c's RATIO constant.
const phi = 1.6180339887

var (
	cos18 = math.Cos(degToRad(18))
	cos36 = math.Cos(degToRad(36))
	sin18 = math.Sin(degToRad(18))
)

// substShape is one shape in a substitution tiling's working list, carried as a pose
// (apex/tip position, side length, orientation) rather than baked-out vertices, since
// the per-child unfold formulas in
// _examples/original_source/src/penrose-tile.c and cartwheel-tile.c are expressed
// entirely in terms of a parent pose, not its corners. center is stored alongside the
// pose because both sources compute and stash it once at child-creation time rather
// than re-derive it from vertices on demand.
type substShape struct {
	family substFamily
	kind   substKind
	pos    geometry.Point
	side   float64
	angle  float64 // degrees
	ctr    geometry.Point
}

func (s substShape) center() geometry.Point { return s.ctr }

// vertices reproduces get_romb_vertices (Penrose) or get_kite_vertices (cartwheel).
func (s substShape) vertices() []geometry.Point {
	if s.family == penroseFamily {
		return penroseVertices(s.kind, s.pos, s.angle, s.side)
	}
	return cartwheelVertices(s.kind, s.pos, s.angle, s.side)
}

// unfold reproduces the type-dispatch at the top of penrose_unfold/cartwheel_unfold:
// each shape is expanded by the unfold routine matching its own family and kind.
func (s substShape) unfold() []substShape {
	switch s.family {
	case penroseFamily:
		if s.kind == fatOrKite {
			return penroseUnfoldFat(s)
		}
		return penroseUnfoldThin(s)
	default:
		if s.kind == fatOrKite {
			return cartwheelUnfoldKite(s)
		}
		return cartwheelUnfoldDart(s)
	}
}

// penroseVertices reproduces get_romb_vertices: a fat rhomb spans a 72-degree apex with
// its far vertex at distance phi*side; a thin rhomb spans a 36-degree apex with its far
// vertex at distance 2*side*cos(18deg).
func penroseVertices(kind substKind, apex geometry.Point, angle, side float64) []geometry.Point {
	if kind == fatOrKite {
		return []geometry.Point{
			apex,
			apex.Add(dir(angle - 36).Scale(side)),
			apex.Add(dir(angle).Scale(phi * side)),
			apex.Add(dir(angle + 36).Scale(side)),
		}
	}
	far := 2 * side * cos18
	return []geometry.Point{
		apex,
		apex.Add(dir(angle - 18).Scale(side)),
		apex.Add(dir(angle).Scale(far)),
		apex.Add(dir(angle + 18).Scale(side)),
	}
}

// penroseCenter reproduces get_romb_center.
func penroseCenter(kind substKind, apex geometry.Point, angle, side float64) geometry.Point {
	if kind == fatOrKite {
		return apex.Add(dir(angle).Scale(side * phi / 2))
	}
	return apex.Add(dir(angle).Scale(side * cos18))
}

// cartwheelVertices reproduces get_kite_vertices: both kite and dart share the same
// three-point frame (tip, two 36-degree shoulders) and differ only in how far the
// fourth vertex sits along the spine.
func cartwheelVertices(kind substKind, pos geometry.Point, angle, side float64) []geometry.Point {
	v1 := pos.Add(dir(angle - 36).Scale(side))
	v3 := pos.Add(dir(angle + 36).Scale(side))
	length := side*cos36 + (side/phi)*sin18
	if kind == thinOrDart {
		length = side*cos36 - (side/phi)*sin18
	}
	v2 := pos.Add(dir(angle).Scale(length))
	return []geometry.Point{pos, v1, v2, v3}
}

// penroseUnfoldFat reproduces penrose_unfold_fatromb exactly: a fat rhomb unfolds into
// 5 children (fat, thin, fat, thin, fat) at side/phi scale.
func penroseUnfoldFat(s substShape) []substShape {
	nside := s.side / phi
	p, a := s.pos, s.angle
	mk := func(kind substKind, pos geometry.Point, angle float64) substShape {
		return substShape{family: penroseFamily, kind: kind, pos: pos, side: nside, angle: angle,
			ctr: penroseCenter(kind, pos, angle, nside)}
	}
	return []substShape{
		mk(fatOrKite, p.Add(dir(a-36).Scale(s.side)), a+144),
		mk(thinOrDart, p.Add(dir(a).Scale(nside)), a+306),
		mk(fatOrKite, p.Add(dir(a).Scale(nside+s.side)), a+180),
		mk(thinOrDart, p.Add(dir(a).Scale(nside)).Add(dir(a+54).Scale(2*nside*cos18)), a+234),
		mk(fatOrKite, p.Add(dir(a+36).Scale(s.side)), a+216),
	}
}

// penroseUnfoldThin reproduces penrose_unfold_thinromb exactly: a thin rhomb unfolds
// into 4 children (fat, fat, thin, thin) at side/phi scale.
func penroseUnfoldThin(s substShape) []substShape {
	nside := s.side / phi
	p, a := s.pos, s.angle
	mk := func(kind substKind, pos geometry.Point, angle float64) substShape {
		return substShape{family: penroseFamily, kind: kind, pos: pos, side: nside, angle: angle,
			ctr: penroseCenter(kind, pos, angle, nside)}
	}
	return []substShape{
		mk(fatOrKite, p, a-18),
		mk(fatOrKite, p.Add(dir(a).Scale(2*s.side*cos18)), a+198),
		mk(thinOrDart, p.Add(dir(a+18).Scale(s.side)).Add(dir(a+54).Scale(nside)), a+252),
		mk(thinOrDart, p.Add(dir(a-18).Scale(s.side)), a+108),
	}
}

// cartwheelUnfoldKite reproduces cartwheel_unfold_kite exactly: a kite unfolds into 6
// children (2 darts at the tip, 4 kites at its shoulders) at side/phi scale.
func cartwheelUnfoldKite(s substShape) []substShape {
	nside := s.side / phi
	middle := nside * cos36
	p, a := s.pos, s.angle
	mkDart := func(pos geometry.Point, angle float64) substShape {
		return substShape{family: cartwheelFamily, kind: thinOrDart, pos: pos, side: nside, angle: angle,
			ctr: pos.Add(dir(angle).Scale(middle / 2))}
	}
	mkKite := func(pos geometry.Point, angle float64) substShape {
		return substShape{family: cartwheelFamily, kind: fatOrKite, pos: pos, side: nside, angle: angle,
			ctr: pos.Add(dir(angle).Scale(middle * 3 / 4))}
	}
	top := p.Add(dir(a - 36).Scale(s.side))
	bottom := p.Add(dir(a + 36).Scale(s.side))
	return []substShape{
		mkDart(p, a-36),
		mkDart(p, a+36),
		mkKite(top, a+108),
		mkKite(top, a+180),
		mkKite(bottom, a-108),
		mkKite(bottom, a-180),
	}
}

// cartwheelUnfoldDart reproduces cartwheel_unfold_dart exactly: a dart unfolds into 5
// children (3 kites at the tip, 2 darts at its shoulders) at side/phi scale.
func cartwheelUnfoldDart(s substShape) []substShape {
	nside := s.side / phi
	middle := nside * cos36
	p, a := s.pos, s.angle
	mkKite := func(pos geometry.Point, angle float64) substShape {
		return substShape{family: cartwheelFamily, kind: fatOrKite, pos: pos, side: nside, angle: angle,
			ctr: pos.Add(dir(angle).Scale(middle * 3 / 4))}
	}
	mkDart := func(pos geometry.Point, angle float64) substShape {
		return substShape{family: cartwheelFamily, kind: thinOrDart, pos: pos, side: nside, angle: angle,
			ctr: pos.Add(dir(angle).Scale(middle / 2))}
	}
	top := p.Add(dir(a - 36).Scale(s.side))
	bottom := p.Add(dir(a + 36).Scale(s.side))
	return []substShape{
		mkKite(p, a),
		mkKite(p, a-72),
		mkKite(p, a+72),
		mkDart(top, a+144),
		mkDart(bottom, a-144),
	}
}

// dedupeByCenter drops shapes whose center lies within tol of one already kept,
// reproducing trim_repeated_rombs/trim_repeated_kites's center-distance dedup.
func dedupeByCenter(shapes []substShape, tol float64) []substShape {
	tol2 := tol * tol
	out := make([]substShape, 0, len(shapes))
	for _, s := range shapes {
		c := s.center()
		dup := false
		for _, k := range out {
			if c.SqDist(k.center()) < tol2 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// clipByRadius keeps only shapes whose center lies within radius of origin, reproducing
// trim_outside_kites's radius clip.
func clipByRadius(shapes []substShape, origin geometry.Point, radius float64) []substShape {
	out := make([]substShape, 0, len(shapes))
	for _, s := range shapes {
		if s.center().SqDist(origin) <= radius*radius {
			out = append(out, s)
		}
	}
	return out
}

// runUnfold repeats each shape's own unfold+dedupe nfolds times starting from seed,
// matching cartwheel_unfold/penrose_unfold's "for i in 0..nfolds: expand every current
// shape, then trim duplicates by center" driving loop. The dedupe tolerance is derived
// from the freshly unfolded side length each pass, reproducing cartwheel_unfold's
// separate_distance= newcartwheel->side/10.
func runUnfold(seed []substShape, nfolds int) []substShape {
	shapes := seed
	for i := 0; i < nfolds; i++ {
		next := make([]substShape, 0, len(shapes)*6)
		for _, s := range shapes {
			next = append(next, s.unfold()...)
		}
		if len(next) == 0 {
			return next
		}
		shapes = dedupeByCenter(next, next[0].side/10)
	}
	return shapes
}

func emitShapes(shapes []substShape, epsilon float64) (*geometry.Geometry, error) {
	a := geometry.NewAssembler(epsilon)
	a.SetBoard(DefaultBoardSize, DefaultMargin)
	for _, s := range shapes {
		c := s.center()
		if _, err := a.AddTile(s.vertices(), &c); err != nil {
			return nil, err
		}
	}
	return a.Build()
}
