// Package generator builds a playable puzzle from a raw tiling: it plants a
// random single loop with pkg/loopbuilder, then hides hints one at a time,
// re-running the deductive solver after each hide to make sure the true
// loop is still the unique, difficulty-bounded solution.
package generator
