// Package bruteforce implements the exhaustive loop-extension search used as
// an oracle against the deductive solver: starting from whatever lines are
// already ON, it extends one open end of the chain step by step, backtracking
// whenever a choice makes the puzzle invalid, and counts how many distinct
// single-loop completions exist.
package bruteforce
