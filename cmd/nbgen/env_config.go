package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-nbgen/internal/config"
)

// envPrefix namespaces every recognized environment variable.
const envPrefix = "NBGEN_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // NBGEN_CONFIG: config file name or path
	Input      string        // NBGEN_INPUT: record file or database
	OutputDir  string        // NBGEN_OUTPUT_DIR: notebook directory
	Language   string        // NBGEN_LANGUAGE: code language
	LogLevel   string        // NBGEN_LOG_LEVEL: debug, info, warn, error
	Workers    int           // NBGEN_WORKERS: parallel workers
	Timeout    time.Duration // NBGEN_TIMEOUT: overall build timeout
}

// knownEnvVars lists valid NBGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NBGEN_CONFIG":     true,
	"NBGEN_INPUT":      true,
	"NBGEN_OUTPUT_DIR": true,
	"NBGEN_LANGUAGE":   true,
	"NBGEN_LOG_LEVEL":  true,
	"NBGEN_WORKERS":    true,
	"NBGEN_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable or non-positive workers and timeout values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("NBGEN_CONFIG"),
		Input:      getenv("NBGEN_INPUT"),
		OutputDir:  getenv("NBGEN_OUTPUT_DIR"),
		Language:   getenv("NBGEN_LANGUAGE"),
		LogLevel:   getenv("NBGEN_LOG_LEVEL"),
	}

	if timeout := getenv("NBGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("NBGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized NBGEN_* variable.
// Helps catch typos like NBGEN_OUTPUTDIR instead of NBGEN_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" && cfg.Input.Path == "" {
		cfg.Input.Path = env.Input
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Language != "" && cfg.Code.Language == "" {
		cfg.Code.Language = env.Language
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
