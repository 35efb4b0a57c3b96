// Package tiling generates the nine supported planar tilings (square, triangular,
// hexagonal, Qbert rhombic, Cairo pentagonal, snub square, trihex, Penrose rhombs, and
// cartwheel kites/darts) as polygon streams fed into a geometry.Assembler.
//
// Seven of the nine generators lay out tiles directly from closed-form coordinate
// formulas. Penrose and cartwheel are substitution systems: a small seed shape list is
// repeatedly unfolded into child shapes at scale 1/φ, deduplicated by center distance,
// and optionally clipped to a radius.
package tiling
