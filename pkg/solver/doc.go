// Package solver implements the layered deductive solver: a sequence of
// increasingly expensive rules (L0 trivial vertex through L6 combinations)
// tried in order, restarting from L0 whenever a rule fires, with a
// cross-lines cleanup pass run after every rule that fires. A run also produces a
// weighted difficulty score describing how far the puzzle forced the solver
// to escalate.
package solver
