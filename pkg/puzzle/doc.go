// Package puzzle holds the mutable solving state laid over an immutable
// geometry.Geometry: per-edge line states, per-tile hint numbers, and the
// checks that decide whether a state is still consistent and whether it is a
// finished single-loop solution.
package puzzle
