package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fencesgen/fences/pkg/bruteforce"
	"github.com/fencesgen/fences/pkg/config"
	"github.com/fencesgen/fences/pkg/export"
	"github.com/fencesgen/fences/pkg/generator"
	"github.com/fencesgen/fences/pkg/geometry"
	"github.com/fencesgen/fences/pkg/puzzle"
	"github.com/fencesgen/fences/pkg/rng"
	"github.com/fencesgen/fences/pkg/solver"
	"github.com/fencesgen/fences/pkg/tiling"
	"github.com/fencesgen/fences/pkg/validation"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	verify     = flag.Bool("verify", false, "Run brute-force and deductive verification on the generated puzzle")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("fencegen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Tiling: %s size=%d\n", cfg.Tiling, cfg.Size)
		fmt.Printf("Target difficulty: %.2f\n", cfg.ResolvedDifficulty())
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kind, err := tiling.ParseKind(cfg.Tiling)
	if err != nil {
		return fmt.Errorf("failed to resolve tiling: %w", err)
	}

	geo, err := tiling.Build(tiling.GameInfo{Kind: kind, Size: cfg.Size})
	if err != nil {
		return fmt.Errorf("failed to build geometry: %w", err)
	}

	configHash := cfg.Hash()
	loopRNG := rng.New(cfg.Seed, rng.StageLoop, configHash)
	hideRNG := rng.New(cfg.Seed, rng.StageHide, configHash)

	start := time.Now()
	if *verbose {
		fmt.Println("Generating puzzle...")
	}

	result, err := generator.Generate(ctx, geo, cfg.ResolvedDifficulty(), loopRNG, hideRNG)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Generation completed in %v (score=%.2f)\n", elapsed, result.Score)
	}

	if *verify {
		if err := verifyResult(ctx, geo, result, cfg, configHash); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	if cfg.Export.Format == "" {
		fmt.Printf("Successfully generated puzzle (seed=%d) in %v, score=%.2f\n", cfg.Seed, elapsed, result.Score)
		return nil
	}

	path := cfg.Export.Path
	if path == "" {
		path = filepath.Join(*outputDir, fmt.Sprintf("puzzle_%d.%s", cfg.Seed, cfg.Export.Format))
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(*outputDir, path)
	}

	switch cfg.Export.Format {
	case "json":
		if err := export.SaveJSON(geo, result.Puzzle, path); err != nil {
			return fmt.Errorf("failed to export JSON: %w", err)
		}
	case "svg":
		if err := export.SaveSVG(geo, result.Puzzle, export.DefaultSVGOptions(), path); err != nil {
			return fmt.Errorf("failed to export SVG: %w", err)
		}
	case "tmj":
		if err := export.SaveTMJ(geo, result.Puzzle, path); err != nil {
			return fmt.Errorf("failed to export TMJ: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", cfg.Export.Format)
	}

	if *verbose {
		info, statErr := os.Stat(path)
		if statErr == nil {
			fmt.Printf("Wrote %d bytes to %s\n", info.Size(), path)
		}
	}

	fmt.Printf("Successfully generated puzzle (seed=%d) in %v, score=%.2f\n", cfg.Seed, elapsed, result.Score)
	return nil
}

// verifyResult runs a fresh deductive solve plus a brute-force completion
// count over result's hints as an independent check that the puzzle has
// exactly one solution and that it matches the planted loop, using the
// "bruteforce"-stage RNG so a run is reproducible from the same seed.
func verifyResult(ctx context.Context, geo *geometry.Geometry, result *generator.Result, cfg *config.Config, configHash []byte) error {
	report, err := validation.Validate(ctx, geo, result.Puzzle, result.TrueLoop)
	if err != nil {
		return err
	}
	if *verbose {
		for _, c := range report.Checks {
			fmt.Printf("verify: %s satisfied=%v\n", c.Name, c.Satisfied)
		}
	}
	if !report.Passed {
		return fmt.Errorf("validation did not pass: %v", report.Errors)
	}

	trial := puzzle.New(geo)
	copy(trial.Numbers, result.Puzzle.Numbers)
	solver.Solve(ctx, trial)

	bruteRNG := rng.New(cfg.Seed, rng.StageBruteForce, configHash)
	n, err := bruteforce.Solve(trial, bruteRNG)
	if err != nil {
		return fmt.Errorf("brute-force verification failed: %w", err)
	}
	if *verbose {
		fmt.Printf("verify: brute force found %d solution(s) from the deduced skeleton\n", n)
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one solution, brute force found %d", n)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: fencegen -config <path> [options]")
	fmt.Fprintln(os.Stderr, "Run 'fencegen -help' for more information.")
}

func printHelp() {
	fmt.Println("fencegen - generate loop puzzles from a YAML configuration")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fencegen -config <path> [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}

