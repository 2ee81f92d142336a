package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride describes one environment variable and the flags it maps to.
// The override applies only when none of the listed flags was set explicitly
// on the command line, keeping the precedence flags > env > defaults.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(cfg *AppConfig, value string)
}

var envOverrides = []envOverride{
	{
		envKey: EnvPrefix + "PAIR",
		flags:  []string{"pair"},
		apply: func(cfg *AppConfig, value string) {
			cfg.Pair = value
		},
	},
	{
		envKey: EnvPrefix + "START",
		flags:  []string{"start"},
		apply: func(cfg *AppConfig, value string) {
			if v, err := strconv.Atoi(value); err == nil {
				cfg.StartExp = v
			}
		},
	},
	{
		envKey: EnvPrefix + "ACCURACY",
		flags:  []string{"accuracy"},
		apply: func(cfg *AppConfig, value string) {
			if v, err := strconv.Atoi(value); err == nil {
				cfg.Accuracy = v
			}
		},
	},
	{
		envKey: EnvPrefix + "MIN_DURATION",
		flags:  []string{"min-duration"},
		apply: func(cfg *AppConfig, value string) {
			if v, err := time.ParseDuration(value); err == nil {
				cfg.MinDuration = v
			}
		},
	},
	{
		envKey: EnvPrefix + "SEED",
		flags:  []string{"seed"},
		apply: func(cfg *AppConfig, value string) {
			if v, err := strconv.ParseInt(value, 10, 64); err == nil {
				cfg.Seed = v
			}
		},
	},
	{
		envKey: EnvPrefix + "QUICK",
		flags:  []string{"quick"},
		apply: func(cfg *AppConfig, value string) {
			cfg.Quick = parseBoolEnv(value)
		},
	},
	{
		envKey: EnvPrefix + "QUIET",
		flags:  []string{"quiet", "q"},
		apply: func(cfg *AppConfig, value string) {
			cfg.Quiet = parseBoolEnv(value)
		},
	},
	{
		envKey: EnvPrefix + "NO_COLOR",
		flags:  []string{"no-color"},
		apply: func(cfg *AppConfig, value string) {
			cfg.NoColor = parseBoolEnv(value)
		},
	},
	{
		envKey: EnvPrefix + "VERBOSE",
		flags:  []string{"v"},
		apply: func(cfg *AppConfig, value string) {
			cfg.Verbose = parseBoolEnv(value)
		},
	},
}

// parseBoolEnv interprets the common truthy spellings.
func parseBoolEnv(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// isFlagSet reports whether the named flag was explicitly provided.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// isFlagSetAny reports whether any of the named flags was explicitly provided.
func isFlagSetAny(fs *flag.FlagSet, names []string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// applyEnvOverrides applies environment variable overrides to cfg, skipping
// any value whose flag was set explicitly on the command line.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, ov := range envOverrides {
		value, ok := os.LookupEnv(ov.envKey)
		if !ok || value == "" {
			continue
		}
		if isFlagSetAny(fs, ov.flags) {
			continue
		}
		ov.apply(cfg, value)
	}
}
