// Package export turns a solved or in-progress (Geometry, Puzzle) pair into
// external formats: a JSON mirror for other renderers, a TMJ (Tiled Map JSON)
// object-layer map, and an SVG rendering for visual debugging. None of these
// formats is required by the solver, brute-
// force search, or generator — this package only ever imports the public
// geometry/puzzle types, never the other way around.
package export
