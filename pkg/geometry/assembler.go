package geometry

import "fmt"

// Option configures an Assembler at construction time.
type Option func(*Assembler)

// WithAreaOfInfluence enables computing the per-edge hit-test quad (spec §4.B step 5).
// Off by default: it exists only for an external interactive/hit-test layer and is never
// needed by the solver, brute-force, loop builder, or generator.
func WithAreaOfInfluence() Option {
	return func(a *Assembler) { a.areaOfInfluence = true }
}

// Assembler ingests a stream of polygons (candidate tiles) and assembles a fully linked
// Geometry: vertices and edges are deduplicated within a fixed tolerance, and every tile
// is cross-linked to its edges and vertices as it is ingested.
//
// The tolerance must be set at construction and never changed mid-ingestion (spec §9):
// inconsistent tolerance makes vertex dedup order-dependent.
type Assembler struct {
	epsilon2 float64

	vertices []Vertex
	edges    []Edge
	tiles    []Tile

	board, margin, game float64
	areaOfInfluence     bool
}

// NewAssembler creates an Assembler with point-equality tolerance epsilon (typically
// side-length/10, per spec §4.A).
func NewAssembler(epsilon float64, opts ...Option) *Assembler {
	a := &Assembler{epsilon2: epsilon * epsilon}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetBoard records the abstract board/margin extents tile generators lay polygons out
// against. Purely descriptive metadata copied onto the built Geometry.
func (a *Assembler) SetBoard(boardSize, margin float64) {
	a.board = boardSize
	a.margin = margin
	a.game = boardSize - 2*margin
}

func (a *Assembler) findOrAddVertex(p Point) VertexID {
	for i := range a.vertices {
		if a.vertices[i].Pos.SqDist(p) < a.epsilon2 {
			return a.vertices[i].ID
		}
	}
	id := VertexID(len(a.vertices))
	a.vertices = append(a.vertices, Vertex{ID: id, Pos: p})
	return id
}

func (a *Assembler) findOrAddEdge(v0, v1 VertexID) EdgeID {
	for i := range a.edges {
		e := a.edges[i].Ends
		if (e[0] == v0 && e[1] == v1) || (e[0] == v1 && e[1] == v0) {
			return a.edges[i].ID
		}
	}
	id := EdgeID(len(a.edges))
	a.edges = append(a.edges, Edge{ID: id, Ends: [2]VertexID{v0, v1}})
	return id
}

// AddTile ingests one polygon: an ordered cycle of points. center is optional; if nil,
// the centroid of points is used. Returns the new tile's id, or ErrInvalid if an edge
// would accumulate a third tile.
func (a *Assembler) AddTile(points []Point, center *Point) (TileID, error) {
	n := len(points)
	vertexIDs := make([]VertexID, n)
	for i, p := range points {
		vertexIDs[i] = a.findOrAddVertex(p)
	}

	edgeIDs := make([]EdgeID, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edgeIDs[i] = a.findOrAddEdge(vertexIDs[i], vertexIDs[j])
	}

	c := centroid(points)
	if center != nil {
		c = *center
	}

	tileID := TileID(len(a.tiles))
	a.tiles = append(a.tiles, Tile{ID: tileID, Vertices: vertexIDs, Edges: edgeIDs, Center: c})

	for _, eid := range edgeIDs {
		e := &a.edges[eid]
		e.Tiles = append(e.Tiles, tileID)
		if len(e.Tiles) > 2 {
			return 0, fmt.Errorf("geometry: edge %d shared by more than two tiles: %w", eid, ErrInvalid)
		}
	}
	for _, vid := range vertexIDs {
		v := &a.vertices[vid]
		v.Tiles = append(v.Tiles, tileID)
	}
	return tileID, nil
}

func centroid(points []Point) Point {
	var c Point
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Scale(1.0 / float64(len(points)))
}

// Build finalizes the Geometry: attaches each vertex's incident edge list and computes
// the per-edge in/out continuation lists, per spec §4.B step 4.
func (a *Assembler) Build() (*Geometry, error) {
	for i := range a.edges {
		e := &a.edges[i]
		for _, end := range e.Ends {
			a.vertices[end].Edges = append(a.vertices[end].Edges, e.ID)
		}
	}

	for i := range a.edges {
		e := &a.edges[i]
		e.In = otherEdgesAt(a.vertices[e.Ends[0]], e.ID)
		e.Out = otherEdgesAt(a.vertices[e.Ends[1]], e.ID)
		if a.areaOfInfluence {
			e.AreaOfInfluence = a.areaOfInfluenceFor(*e)
		}
	}

	return &Geometry{
		Vertices:    a.vertices,
		Edges:       a.edges,
		Tiles:       a.tiles,
		BoardSize:   a.board,
		BoardMargin: a.margin,
		GameSize:    a.game,
	}, nil
}

func otherEdgesAt(v Vertex, self EdgeID) []EdgeID {
	out := make([]EdgeID, 0, len(v.Edges)-1)
	for _, eid := range v.Edges {
		if eid != self {
			out = append(out, eid)
		}
	}
	return out
}

// areaOfInfluenceFor computes the four-point hit-test quad for an edge: its two
// endpoints and the centers of its one or two adjacent tiles. For a boundary edge (one
// tile) the missing neighbor's center is synthesized as the reflection of the present
// tile's center through the edge midpoint (spec §4.B step 5).
func (a *Assembler) areaOfInfluenceFor(e Edge) []Point {
	p0, p1 := a.vertices[e.Ends[0]].Pos, a.vertices[e.Ends[1]].Pos
	var c0, c1 Point
	switch len(e.Tiles) {
	case 2:
		c0 = a.tiles[e.Tiles[0]].Center
		c1 = a.tiles[e.Tiles[1]].Center
	case 1:
		c0 = a.tiles[e.Tiles[0]].Center
		mid := Point{(p0.X + p1.X) / 2, (p0.Y + p1.Y) / 2}
		c1 = mid.Scale(2).Sub(c0)
	}
	return []Point{p0, p1, c0, c1}
}
