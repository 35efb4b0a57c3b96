// Package config loads and validates the YAML parameters driving a single
// generate/solve run: which tiling, what size, what difficulty, and where
// to export the result.
package config
