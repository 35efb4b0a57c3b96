package tiling

import "fmt"

// Kind names one of the nine tiling families, in the same order as the reference
// implementation's gameinfo.type enum.
type Kind int

const (
	Square Kind = iota
	Penrose
	Triangular
	Qbert
	Hexagonal
	Snub
	Cairo
	Cartwheel
	Trihex
)

var kindNames = [...]string{
	Square:     "square",
	Penrose:    "penrose",
	Triangular: "triangular",
	Qbert:      "qbert",
	Hexagonal:  "hexagonal",
	Snub:       "snub",
	Cairo:      "cairo",
	Cartwheel:  "cartwheel",
	Trihex:     "trihex",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a case-insensitive tiling name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if equalFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("tiling: unknown kind %q", name)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// IsSubstitution reports whether k is a substitution system (Penrose, cartwheel), whose
// size parameter selects one of five preset seed/unfold configurations rather than a
// grid dimension.
func (k Kind) IsSubstitution() bool {
	return k == Penrose || k == Cartwheel
}

// GameInfo parallels the reference implementation's struct gameinfo: which tiling and at
// what size. Size is a grid dimension for the seven direct generators, or a preset index
// 0-4 for the two substitution systems.
type GameInfo struct {
	Kind Kind
	Size int
}

const (
	// DefaultBoardSize is the abstract board edge length shared by every generator.
	DefaultBoardSize = 100.0
	// DefaultMargin is the border kept empty around the game area.
	DefaultMargin = 5.0
	// DefaultGameSize is the usable board area after removing the margin on both sides.
	DefaultGameSize = DefaultBoardSize - 2*DefaultMargin
)
