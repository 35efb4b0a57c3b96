// Package geometry builds and represents the planar incidence topology of a loop-puzzle
// tiling: vertices, edges, and tiles held as flat slices indexed by newtyped integer ids,
// plus the per-edge continuation graph used for loop tracing and brute-force routing.
//
// A Geometry is produced once by an Assembler fed a stream of polygons and is immutable
// afterward; solvers and generators only ever read it.
package geometry
