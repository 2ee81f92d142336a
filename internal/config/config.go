// Package config defines the application configuration and its resolution
// chain: CLI flags take precedence over environment variables, which take
// precedence over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/bigtune/internal/errors"
	"github.com/agbru/bigtune/internal/tuner"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "BIGTUNE_"

// Search parameter bounds. StartExp is an exponent: the search begins at
// 2^StartExp + 1 bits, so values outside this range are either degenerate or
// would overflow the probe arithmetic.
const (
	MinStartExp = 1
	MaxStartExp = 30
)

// AppConfig holds the resolved configuration for one invocation.
type AppConfig struct {
	// Pair selects the operation pair to tune, or "all".
	Pair string
	// StartExp sets the initial search frontier to 2^StartExp + 1 bits.
	StartExp int
	// Accuracy is the refinement resolution floor in bits.
	Accuracy int
	// MinDuration is the calibration floor per comparison.
	MinDuration time.Duration
	// Seed pins the operand streams for reproducible runs; 0 draws a fresh
	// seed per comparison.
	Seed int64
	// Quick disables calibration, probing with single paired measurements.
	Quick bool
	// Quiet suppresses progress display.
	Quiet bool
	// NoColor disables colored output.
	NoColor bool
	// Verbose enables debug logging.
	Verbose bool
	// ListPairs prints the available pairs and exits.
	ListPairs bool
	// Completion selects a shell to generate a completion script for.
	Completion string
}

// defaultConfig returns the built-in defaults.
func defaultConfig() AppConfig {
	return AppConfig{
		Pair:        "all",
		StartExp:    tuner.DefaultStartExp,
		Accuracy:    tuner.DefaultAccuracy,
		MinDuration: tuner.DefaultMinDuration,
	}
}

// ParseConfig parses command-line arguments and environment overrides into an
// AppConfig, validating the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and parse errors.
//   - availablePairs: The pair names accepted by -pair.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A parse error, flag.ErrHelp, or a ConfigError from validation.
func ParseConfig(programName string, args []string, errWriter io.Writer, availablePairs []string) (AppConfig, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Pair, "pair", cfg.Pair, fmt.Sprintf("operation pair to tune (%v or all)", availablePairs))
	fs.IntVar(&cfg.StartExp, "start", cfg.StartExp, "initial frontier exponent: the search starts at 2^start + 1 bits")
	fs.IntVar(&cfg.Accuracy, "accuracy", cfg.Accuracy, "resolution floor of the crossover boundary, in bits")
	fs.DurationVar(&cfg.MinDuration, "min-duration", cfg.MinDuration, "calibration floor per comparison")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "pin the operand streams for reproducible runs (0 = fresh per comparison)")
	fs.BoolVar(&cfg.Quick, "quick", cfg.Quick, "skip calibration and probe with single measurements (fast, noisy)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress progress display")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.ListPairs, "list", cfg.ListPairs, "list available operation pairs and exit")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "generate a completion script (bash, zsh, fish, powershell)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availablePairs); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks the resolved configuration for consistency.
func validate(cfg AppConfig, availablePairs []string) error {
	if cfg.StartExp < MinStartExp || cfg.StartExp > MaxStartExp {
		return apperrors.NewConfigError("start exponent %d out of range [%d, %d]", cfg.StartExp, MinStartExp, MaxStartExp)
	}
	if cfg.Accuracy < 1 {
		return apperrors.NewConfigError("accuracy must be at least 1 bit, got %d", cfg.Accuracy)
	}
	if cfg.MinDuration <= 0 {
		return apperrors.NewConfigError("min-duration must be positive, got %s", cfg.MinDuration)
	}
	if cfg.Pair != "all" {
		found := false
		for _, name := range availablePairs {
			if cfg.Pair == name {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown pair %q (available: %v or all)", cfg.Pair, availablePairs)
		}
	}
	return nil
}
