// Package difficulty names bands of deductive-solver score as player-facing
// presets, the way a difficulty slider would, instead of asking callers to
// pick a raw score.
package difficulty
