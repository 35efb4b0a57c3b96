package export

import (
	"encoding/json"
	"os"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// Document is a directly serializable mirror of a puzzle's geometry and
// state, for consumers outside this module.
type Document struct {
	Vertices []VertexDoc `json:"vertices"`
	Edges    []EdgeDoc   `json:"edges"`
	Tiles    []TileDoc   `json:"tiles"`
}

// VertexDoc mirrors geometry.Vertex.
type VertexDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EdgeDoc mirrors geometry.Edge plus its current puzzle state.
type EdgeDoc struct {
	Ends  [2]int `json:"ends"`
	State int    `json:"state"` // 0=off, 1=on, 2=crossed
}

// TileDoc mirrors geometry.Tile plus its current hint.
type TileDoc struct {
	Vertices []int `json:"vertices"`
	Edges    []int `json:"edges"`
	Hint     int   `json:"hint"` // -1 when hidden
}

// ToDocument builds a Document from geo and p's current state.
func ToDocument(geo *geometry.Geometry, p *puzzle.Puzzle) *Document {
	doc := &Document{
		Vertices: make([]VertexDoc, len(geo.Vertices)),
		Edges:    make([]EdgeDoc, len(geo.Edges)),
		Tiles:    make([]TileDoc, len(geo.Tiles)),
	}
	for i, v := range geo.Vertices {
		doc.Vertices[i] = VertexDoc{X: v.Pos.X, Y: v.Pos.Y}
	}
	for i, e := range geo.Edges {
		doc.Edges[i] = EdgeDoc{
			Ends:  [2]int{int(e.Ends[0]), int(e.Ends[1])},
			State: int(p.States[i]),
		}
	}
	for i, t := range geo.Tiles {
		td := TileDoc{
			Vertices: make([]int, len(t.Vertices)),
			Edges:    make([]int, len(t.Edges)),
			Hint:     p.Numbers[i],
		}
		for j, v := range t.Vertices {
			td.Vertices[j] = int(v)
		}
		for j, e := range t.Edges {
			td.Edges[j] = int(e)
		}
		doc.Tiles[i] = td
	}
	return doc
}

// JSON serializes geo/p to indented JSON.
func JSON(geo *geometry.Geometry, p *puzzle.Puzzle) ([]byte, error) {
	return json.MarshalIndent(ToDocument(geo, p), "", "  ")
}

// JSONCompact serializes geo/p to compact JSON.
func JSONCompact(geo *geometry.Geometry, p *puzzle.Puzzle) ([]byte, error) {
	return json.Marshal(ToDocument(geo, p))
}

// SaveJSON writes geo/p as indented JSON to path, mode 0644.
func SaveJSON(geo *geometry.Geometry, p *puzzle.Puzzle, path string) error {
	data, err := JSON(geo, p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
