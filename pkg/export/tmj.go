package export

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// TMJ (Tiled Map JSON) types, adapted from the teacher's pkg/export/tmj.go: the
// teacher's TMJMap carries a raster tile grid (tilelayer + tileset), which has no
// analogue here since this module's boards are assembled from arbitrary polygons, not
// a fixed tile grid. What does carry over directly is the object-layer half of the
// format (TMJLayer.Type == "objectgroup", TMJObject.Polygon/Polyline), which maps onto
// this engine's tiles and lines without any rasterization: one "tiles" object layer
// (one polygon object per puzzle tile, with its hint as a custom property) and one
// "lines" object layer (one polyline object per edge, with its line state as a custom
// property).

type tmjMap struct {
	Type         string       `json:"type"`
	Version      string       `json:"version"`
	TiledVersion string       `json:"tiledversion"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	TileWidth    int          `json:"tilewidth"`
	TileHeight   int          `json:"tileheight"`
	Orientation  string       `json:"orientation"`
	RenderOrder  string       `json:"renderorder"`
	Infinite     bool         `json:"infinite"`
	NextLayerID  int          `json:"nextlayerid"`
	NextObjectID int          `json:"nextobjectid"`
	Layers       []tmjLayer   `json:"layers"`
	Tilesets     []tmjTileset `json:"tilesets"`
}

// tmjTileset is always emitted empty: this module never references a tile GID, so the
// tileset list exists only to satisfy readers that expect the field.
type tmjTileset struct {
	FirstGID int    `json:"firstgid"`
	Name     string `json:"name"`
}

type tmjLayer struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Visible   bool        `json:"visible"`
	Opacity   float64     `json:"opacity"`
	DrawOrder string      `json:"draworder,omitempty"`
	Objects   []tmjObject `json:"objects"`
}

type tmjObject struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Class      string        `json:"class,omitempty"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Visible    bool          `json:"visible"`
	Polygon    []tmjPoint    `json:"polygon,omitempty"`
	Polyline   []tmjPoint    `json:"polyline,omitempty"`
	Properties []tmjProperty `json:"properties,omitempty"`
}

// tmjPoint is relative to its object's x/y, per the TMJ object-layer convention.
type tmjPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type tmjProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// ToTMJ builds a TMJ map mirroring geo/p's current state: a "tiles" object layer and a
// "lines" object layer.
func ToTMJ(geo *geometry.Geometry, p *puzzle.Puzzle) *tmjMap {
	minX, minY, maxX, maxY := boundingBox(geo)

	m := &tmjMap{
		Type:         "map",
		Version:      "1.10",
		TiledVersion: "1.10.2",
		Width:        int(math.Ceil(maxX - minX)),
		Height:       int(math.Ceil(maxY - minY)),
		TileWidth:    1,
		TileHeight:   1,
		Orientation:  "orthogonal",
		RenderOrder:  "right-down",
		Infinite:     false,
		NextLayerID:  1,
		Tilesets:     []tmjTileset{},
	}

	nextObjID := 1

	tiles := tmjLayer{ID: 1, Name: "tiles", Type: "objectgroup", Visible: true, Opacity: 1, DrawOrder: "topdown"}
	for i, t := range geo.Tiles {
		poly := make([]tmjPoint, len(t.Vertices))
		for j, v := range t.Vertices {
			pos := geo.Vertices[v].Pos
			poly[j] = tmjPoint{X: pos.X - t.Center.X, Y: pos.Y - t.Center.Y}
		}
		tiles.Objects = append(tiles.Objects, tmjObject{
			ID:         nextObjID,
			Name:       fmt.Sprintf("tile-%d", i),
			Class:      "tile",
			X:          t.Center.X,
			Y:          t.Center.Y,
			Visible:    true,
			Polygon:    poly,
			Properties: hintProperties(p.Numbers[i]),
		})
		nextObjID++
	}
	m.Layers = append(m.Layers, tiles)
	m.NextLayerID++

	lines := tmjLayer{ID: 2, Name: "lines", Type: "objectgroup", Visible: true, Opacity: 1, DrawOrder: "topdown"}
	for i, e := range geo.Edges {
		a := geo.Vertices[e.Ends[0]].Pos
		b := geo.Vertices[e.Ends[1]].Pos
		lines.Objects = append(lines.Objects, tmjObject{
			ID:       nextObjID,
			Name:     fmt.Sprintf("line-%d", i),
			Class:    "line",
			X:        a.X,
			Y:        a.Y,
			Visible:  true,
			Polyline: []tmjPoint{{X: 0, Y: 0}, {X: b.X - a.X, Y: b.Y - a.Y}},
			Properties: []tmjProperty{
				{Name: "state", Type: "string", Value: lineStateName(p.States[i])},
			},
		})
		nextObjID++
	}
	m.Layers = append(m.Layers, lines)
	m.NextLayerID++
	m.NextObjectID = nextObjID

	return m
}

func hintProperties(n int) []tmjProperty {
	if n == puzzle.HiddenHint {
		return []tmjProperty{{Name: "hidden", Type: "bool", Value: true}}
	}
	return []tmjProperty{{Name: "hint", Type: "int", Value: n}}
}

func lineStateName(s geometry.LineState) string {
	switch s {
	case geometry.On:
		return "on"
	case geometry.Crossed:
		return "crossed"
	default:
		return "off"
	}
}

func boundingBox(geo *geometry.Geometry) (minX, minY, maxX, maxY float64) {
	if len(geo.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = geo.Vertices[0].Pos.X, geo.Vertices[0].Pos.Y
	maxX, maxY = minX, minY
	for _, v := range geo.Vertices[1:] {
		minX = math.Min(minX, v.Pos.X)
		minY = math.Min(minY, v.Pos.Y)
		maxX = math.Max(maxX, v.Pos.X)
		maxY = math.Max(maxY, v.Pos.Y)
	}
	return minX, minY, maxX, maxY
}

// TMJ serializes geo/p to indented TMJ (Tiled Map JSON).
func TMJ(geo *geometry.Geometry, p *puzzle.Puzzle) ([]byte, error) {
	return json.MarshalIndent(ToTMJ(geo, p), "", "  ")
}

// TMJCompact serializes geo/p to compact TMJ.
func TMJCompact(geo *geometry.Geometry, p *puzzle.Puzzle) ([]byte, error) {
	return json.Marshal(ToTMJ(geo, p))
}

// SaveTMJ writes geo/p as indented TMJ to path, mode 0644.
func SaveTMJ(geo *geometry.Geometry, p *puzzle.Puzzle, path string) error {
	data, err := TMJ(geo, p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
