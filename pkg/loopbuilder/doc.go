// Package loopbuilder grows a single random closed loop over a tiling's edge
// set, the way a generator plants the "true solution" before hiding hints.
// It knows nothing about hints or difficulty; it only produces a valid
// single-loop line assignment for pkg/generator to build a puzzle around.
package loopbuilder
