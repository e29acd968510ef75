package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nbgen/internal/fileutil"
	"github.com/alnah/go-nbgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxNameLength     = 255  // File name component
	MaxTableLength    = 128  // SQLite identifier
	MaxLanguageLength = 32   // "python", "typescript"
	MaxHeadingLength  = 200  // Bibliography heading line
	MaxWorkers        = 16
)

// Defaults applied by ApplyDefaults for fields left empty.
const (
	DefaultOutputDir  = "outputs/nbs"
	DefaultOutputName = "aai_notebook"
	DefaultFormat     = FormatYAML
	DefaultTable      = "records"
	DefaultLanguage   = "python"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// Record source formats.
const (
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// Config holds all configuration for notebook generation.
type Config struct {
	Input        InputConfig        `yaml:"input"`
	Output       OutputConfig       `yaml:"output"`
	Code         CodeConfig         `yaml:"code"`
	Bibliography BibliographyConfig `yaml:"bibliography"`
	Log          LogConfig          `yaml:"log"`
	Workers      int                `yaml:"workers"` // 0 = GOMAXPROCS
}

// InputConfig defines where records are read from.
type InputConfig struct {
	Path   string `yaml:"path"`   // Record file or SQLite database
	Format string `yaml:"format"` // "yaml" or "sqlite" (default: inferred from path)
	Table  string `yaml:"table"`  // SQLite table (default: "records")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir  string `yaml:"dir"`  // Default: outputs/nbs
	Name string `yaml:"name"` // File name without extension (default: aai_notebook)
	HTML bool   `yaml:"html"` // Also export HTML next to the notebook
	PDF  bool   `yaml:"pdf"`  // Also export PDF (requires Chrome)

	Style  string `yaml:"style"`  // Page stylesheet for exports (default: notebook)
	Assets string `yaml:"assets"` // Directory with custom styles/{name}.css
}

// CodeConfig defines how code records are validated.
type CodeConfig struct {
	Language string `yaml:"language"` // Formatter language (default: python)
}

// BibliographyConfig defines the trailing references block.
type BibliographyConfig struct {
	Heading string `yaml:"heading"` // Default: "## References"
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// that construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.table", c.Input.Table, MaxTableLength); err != nil {
		return err
	}
	if err := validateEnum("input.format", c.Input.Format, FormatYAML, FormatSQLite); err != nil {
		return err
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.name", c.Output.Name, MaxNameLength); err != nil {
		return err
	}
	if fileutil.IsFilePath(c.Output.Name) {
		return fmt.Errorf("%w: output.name %q must not contain path separators", ErrInvalidValue, c.Output.Name)
	}

	if err := validateFieldLength("output.style", c.Output.Style, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.assets", c.Output.Assets, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("code.language", c.Code.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("bibliography.heading", c.Bibliography.Heading, MaxHeadingLength); err != nil {
		return err
	}

	if err := validateEnum("log.level", c.Log.Level, "debug", "info", "warn", "warning", "error"); err != nil {
		return err
	}
	if err := validateEnum("log.format", c.Log.Format, "text", "json"); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns a configuration with every field empty.
// Empty fields are filled by ApplyDefaults once env vars and flags
// have been merged.
func DefaultConfig() *Config {
	return &Config{}
}

// ApplyDefaults fills empty fields with their default values.
// An empty input format is inferred from the input path extension.
func (c *Config) ApplyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Name == "" {
		c.Output.Name = DefaultOutputName
	}
	if c.Input.Format == "" {
		c.Input.Format = InferFormat(c.Input.Path)
	}
	c.Input.Format = strings.ToLower(c.Input.Format)
	if c.Input.Table == "" {
		c.Input.Table = DefaultTable
	}
	if c.Code.Language == "" {
		c.Code.Language = DefaultLanguage
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// InferFormat guesses the record source format from a file name.
func InferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return DefaultFormat
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-nbgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-nbgen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
