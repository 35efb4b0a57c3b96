package tiling

import (
	"fmt"

	"github.com/fencesgen/fences/pkg/geometry"
)

// Build dispatches to the generator named by info.Kind and returns the assembled
// Geometry. This realizes the core's build_geometry(tile_kind, size) entry point
// (spec §6).
func Build(info GameInfo) (*geometry.Geometry, error) {
	if info.Size < 0 {
		return nil, fmt.Errorf("tiling: negative size %d", info.Size)
	}
	if info.Kind.IsSubstitution() && info.Size > 4 {
		return nil, fmt.Errorf("tiling: %s size must be 0-4, got %d", info.Kind, info.Size)
	}

	switch info.Kind {
	case Square:
		return buildSquare(info.Size)
	case Triangular:
		return buildTriangular(info.Size)
	case Hexagonal:
		return buildHexagonal(info.Size)
	case Qbert:
		return buildQbert(info.Size)
	case Cairo:
		return buildCairo(info.Size)
	case Snub:
		return buildSnub(info.Size)
	case Trihex:
		return buildTrihex(info.Size)
	case Penrose:
		return buildPenrose(info.Size)
	case Cartwheel:
		return buildCartwheel(info.Size)
	default:
		return nil, fmt.Errorf("tiling: unknown kind %d", int(info.Kind))
	}
}
