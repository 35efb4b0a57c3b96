// Package validation post-checks a finished puzzle independently of the
// solver's internal validity checks: is it a single closed loop, do the
// visible hints match it, and what do the solver's own metrics say about
// its difficulty.
package validation
