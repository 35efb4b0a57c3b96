package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
)

// SVGOptions configures the rendered output.
type SVGOptions struct {
	Width, Height int
	Margin        int
	Scale         float64 // board-units to pixels
	ShowHints     bool
}

// DefaultSVGOptions returns sensible defaults sized for the default board.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:     800,
		Height:    800,
		Margin:    20,
		Scale:     7.0,
		ShowHints: true,
	}
}

// SVG renders geo/p: tile outlines in light gray, lines colored by state
// (off: faint, on: solid black, crossed: dashed red), and hint numbers
// centered on tiles that still show one.
func SVG(geo *geometry.Geometry, p *puzzle.Puzzle, opts SVGOptions) []byte {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Scale <= 0 {
		opts.Scale = 7.0
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	project := func(pt geometry.Point) (int, int) {
		return opts.Margin + int(pt.X*opts.Scale), opts.Margin + int(pt.Y*opts.Scale)
	}

	for _, t := range geo.Tiles {
		xs := make([]int, len(t.Vertices))
		ys := make([]int, len(t.Vertices))
		for i, v := range t.Vertices {
			xs[i], ys[i] = project(geo.Vertices[v].Pos)
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:#cccccc;stroke-width:1")
	}

	for i, e := range geo.Edges {
		x1, y1 := project(geo.Vertices[e.Ends[0]].Pos)
		x2, y2 := project(geo.Vertices[e.Ends[1]].Pos)
		style := lineStyle(p.States[i])
		canvas.Line(x1, y1, x2, y2, style)
	}

	if opts.ShowHints {
		for i, t := range geo.Tiles {
			if p.Numbers[i] == puzzle.HiddenHint {
				continue
			}
			x, y := project(t.Center)
			canvas.Text(x, y, fmt.Sprintf("%d", p.Numbers[i]),
				"text-anchor:middle;dominant-baseline:middle;font-size:14px;font-family:monospace;fill:#000000")
		}
	}

	canvas.End()
	return buf.Bytes()
}

func lineStyle(s geometry.LineState) string {
	switch s {
	case geometry.On:
		return "stroke:#000000;stroke-width:3"
	case geometry.Crossed:
		return "stroke:#cc3333;stroke-width:1;stroke-dasharray:4,4"
	default:
		return "stroke:#eeeeee;stroke-width:1"
	}
}

// SaveSVG renders geo/p and writes the result to path, mode 0644.
func SaveSVG(geo *geometry.Geometry, p *puzzle.Puzzle, opts SVGOptions, path string) error {
	return os.WriteFile(path, SVG(geo, p, opts), 0644)
}
