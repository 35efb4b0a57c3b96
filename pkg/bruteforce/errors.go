package bruteforce

import "errors"

// ErrNoInitialON is returned when the puzzle has no ON line to anchor the
// search on. Grounded on brute-force.c's brute_force g_error("we need at
// least one line ON to start").
var ErrNoInitialON = errors.New("bruteforce: need at least one ON line to start")

// ErrLoopAttemptedOnClosed is returned when the starting ON line already
// belongs to a closed loop, so there is no open end to extend. Grounded on
// brute_force's g_error("attempted to start brute force on a closed loop").
var ErrLoopAttemptedOnClosed = errors.New("bruteforce: starting line is already part of a closed loop")

// ErrTooManyRoutes is returned when a line's continuation list exceeds the
// 32-bit route bitmask this search tracks per step, mirroring the reference
// implementation's documented "struct step.routes is highly arch dependent,
// 32 (or 64) connections" limit.
var ErrTooManyRoutes = errors.New("bruteforce: more than 32 continuations at a single step")
