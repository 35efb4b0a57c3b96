package geometry

import "errors"

// ErrInvalid is returned by Assembler.AddTile when an edge would accumulate more than two
// tiles. Assembler.Build runs no separate post-assembly topology check and does not
// return it.
var ErrInvalid = errors.New("geometry: invalid topology")
