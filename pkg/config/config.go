package config

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fencesgen/fences/pkg/difficulty"
	"github.com/fencesgen/fences/pkg/tiling"
)

// Config specifies all parameters for one generation or solve run. It
// supports YAML parsing and carries its own validation, the way the
// teacher's dungeon config does.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Tiling names one of the nine tile kinds, case-insensitive.
	Tiling string `yaml:"tiling" json:"tiling"`

	// Size is the grid dimension (direct generators) or preset index 0-4
	// (substitution tilings).
	Size int `yaml:"size" json:"size"`

	// TargetDifficulty bounds the deductive solver's score during
	// generation. Ignored when DifficultyBand is set.
	TargetDifficulty float64 `yaml:"targetDifficulty" json:"targetDifficulty"`

	// DifficultyBand optionally names a preset band (see pkg/difficulty)
	// that resolves to a TargetDifficulty, taking precedence over it.
	DifficultyBand string `yaml:"difficultyBand,omitempty" json:"difficultyBand,omitempty"`

	// Export controls where and how the result is written.
	Export ExportConfig `yaml:"export" json:"export"`
}

// ExportConfig selects an output encoding and destination.
type ExportConfig struct {
	// Format is one of "json", "svg", "tmj".
	Format string `yaml:"format" json:"format"`
	// Path is the output file path.
	Path string `yaml:"path" json:"path"`
}

var validExportFormats = map[string]bool{"json": true, "svg": true, "tmj": true}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates YAML configuration from a byte slice.
func LoadBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	if _, err := tiling.ParseKind(c.Tiling); err != nil {
		return fmt.Errorf("tiling: %w", err)
	}
	if c.Size < 0 {
		return fmt.Errorf("size must be non-negative, got %d", c.Size)
	}
	if c.DifficultyBand != "" {
		if _, ok := difficulty.Resolve(c.DifficultyBand); !ok {
			return fmt.Errorf("difficultyBand: unknown band %q", c.DifficultyBand)
		}
	} else if c.TargetDifficulty < 0 {
		return fmt.Errorf("targetDifficulty must be non-negative, got %f", c.TargetDifficulty)
	}
	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Validate checks ExportConfig constraints.
func (e *ExportConfig) Validate() error {
	if e.Format == "" {
		return nil // export is optional
	}
	if !validExportFormats[e.Format] {
		return fmt.Errorf("format must be one of json, svg, tmj, got %q", e.Format)
	}
	if e.Path == "" {
		return errors.New("path must not be empty when format is set")
	}
	return nil
}

// ResolvedDifficulty returns the target difficulty to pass to
// generator.Generate: the resolved band midpoint when DifficultyBand is
// set, otherwise TargetDifficulty directly.
func (c *Config) ResolvedDifficulty() float64 {
	if c.DifficultyBand != "" {
		if target, ok := difficulty.Resolve(c.DifficultyBand); ok {
			return target
		}
	}
	return c.TargetDifficulty
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to derive
// per-stage RNG seeds alongside the master seed.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
