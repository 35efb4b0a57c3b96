package puzzle

import "errors"

// ErrDegreeOverflow names the condition of a vertex with more than two ON
// lines, which no single loop can produce since it passes through a vertex
// at most once. No function in this module returns it: CheckValid reports
// that condition by returning false.
var ErrDegreeOverflow = errors.New("puzzle: vertex has more than two ON lines")
