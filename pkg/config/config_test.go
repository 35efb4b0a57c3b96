package config

import "testing"

func TestLoadBytesAssignsSeedWhenZero(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
tiling: square
size: 5
targetDifficulty: 3.0
export:
  format: json
  path: out.json
`))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cfg.Seed == 0 {
		t.Fatal("expected a non-zero auto-generated seed")
	}
}

func TestLoadBytesRejectsUnknownTiling(t *testing.T) {
	_, err := LoadBytes([]byte(`
tiling: octagon
size: 5
targetDifficulty: 3.0
`))
	if err == nil {
		t.Fatal("expected an error for an unknown tiling kind")
	}
}

func TestLoadBytesRejectsUnknownDifficultyBand(t *testing.T) {
	_, err := LoadBytes([]byte(`
tiling: square
size: 5
difficultyBand: nightmare
`))
	if err == nil {
		t.Fatal("expected an error for an unknown difficulty band")
	}
}

func TestResolvedDifficultyPrefersBandOverTarget(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
tiling: square
size: 5
targetDifficulty: 1.0
difficultyBand: Hard
`))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if got := cfg.ResolvedDifficulty(); got == 1.0 {
		t.Fatalf("expected DifficultyBand to override TargetDifficulty, got %v", got)
	}
}

func TestHashIsStableForIdenticalConfig(t *testing.T) {
	data := []byte("tiling: square\nseed: 7\nsize: 5\ntargetDifficulty: 3.0\n")
	a, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	b, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	ha, hb := a.Hash(), b.Hash()
	if len(ha) != len(hb) {
		t.Fatal("expected hashes of equal length")
	}
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatal("expected identical configs to hash identically")
		}
	}
}

func TestExportConfigAllowsEmptyFormat(t *testing.T) {
	e := ExportConfig{}
	if err := e.Validate(); err != nil {
		t.Fatalf("expected empty export config to be valid, got %v", err)
	}
}

func TestExportConfigRequiresPathWhenFormatSet(t *testing.T) {
	e := ExportConfig{Format: "json"}
	if err := e.Validate(); err == nil {
		t.Fatal("expected an error when format is set without a path")
	}
}
