package generator

import "errors"

// ErrEmptyGeometry is returned when asked to generate over a tiling with no
// tiles to hint.
var ErrEmptyGeometry = errors.New("generator: geometry has no tiles")
