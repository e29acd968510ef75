package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
	if cfg.Output.HTML || cfg.Output.PDF {
		t.Error("exports should be disabled by default")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.ApplyDefaults()

		if cfg.Output.Dir != "outputs/nbs" {
			t.Errorf("Output.Dir = %q, want outputs/nbs", cfg.Output.Dir)
		}
		if cfg.Output.Name != "aai_notebook" {
			t.Errorf("Output.Name = %q, want aai_notebook", cfg.Output.Name)
		}
		if cfg.Input.Format != FormatYAML {
			t.Errorf("Input.Format = %q, want %q", cfg.Input.Format, FormatYAML)
		}
		if cfg.Input.Table != "records" {
			t.Errorf("Input.Table = %q, want records", cfg.Input.Table)
		}
		if cfg.Code.Language != "python" {
			t.Errorf("Code.Language = %q, want python", cfg.Code.Language)
		}
		if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
			t.Errorf("Log = %+v, want warn/text", cfg.Log)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			Output: OutputConfig{Dir: "build", Name: "course"},
			Code:   CodeConfig{Language: "go"},
		}
		cfg.ApplyDefaults()

		if cfg.Output.Dir != "build" || cfg.Output.Name != "course" {
			t.Errorf("Output = %+v, want build/course", cfg.Output)
		}
		if cfg.Code.Language != "go" {
			t.Errorf("Code.Language = %q, want go", cfg.Code.Language)
		}
	})

	t.Run("infers sqlite from database path", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Input: InputConfig{Path: "data/records.db"}}
		cfg.ApplyDefaults()

		if cfg.Input.Format != FormatSQLite {
			t.Errorf("Input.Format = %q, want %q", cfg.Input.Format, FormatSQLite)
		}
	})

	t.Run("normalizes format case", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Input: InputConfig{Format: "SQLite"}}
		cfg.ApplyDefaults()

		if cfg.Input.Format != FormatSQLite {
			t.Errorf("Input.Format = %q, want %q", cfg.Input.Format, FormatSQLite)
		}
	})
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"records.yaml", FormatYAML},
		{"records.yaml.xz", FormatYAML},
		{"records.db", FormatSQLite},
		{"records.SQLITE", FormatSQLite},
		{"records.sqlite3", FormatSQLite},
		{"", FormatYAML},
	}

	for _, tt := range tests {
		if got := InferFormat(tt.path); got != tt.want {
			t.Errorf("InferFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid full config",
			cfg: Config{
				Input:        InputConfig{Path: "records.yaml", Format: "yaml"},
				Output:       OutputConfig{Dir: "outputs/nbs", Name: "aai_notebook", HTML: true, Style: "compact", Assets: "theme"},
				Code:         CodeConfig{Language: "python"},
				Bibliography: BibliographyConfig{Heading: "## Sources"},
				Log:          LogConfig{Level: "debug", Format: "json"},
				Workers:      4,
			},
		},
		{name: "zero config", cfg: Config{}},
		{name: "warning alias", cfg: Config{Log: LogConfig{Level: "warning"}}},
		{
			name:    "style too long",
			cfg:     Config{Output: OutputConfig{Style: strings.Repeat("s", MaxNameLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{name: "enum is case-insensitive", cfg: Config{Log: LogConfig{Level: "INFO"}}},
		{
			name:    "unknown input format",
			cfg:     Config{Input: InputConfig{Format: "csv"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log level",
			cfg:     Config{Log: LogConfig{Level: "trace"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log format",
			cfg:     Config{Log: LogConfig{Format: "xml"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "output name with separator",
			cfg:     Config{Output: OutputConfig{Name: "../escape"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative workers",
			cfg:     Config{Workers: -1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "language too long",
			cfg:     Config{Code: CodeConfig{Language: strings.Repeat("x", MaxLanguageLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "heading too long",
			cfg:     Config{Bibliography: BibliographyConfig{Heading: strings.Repeat("#", MaxHeadingLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "table too long",
			cfg:     Config{Input: InputConfig{Table: strings.Repeat("t", MaxTableLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "nbgen.yaml")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		return path
	}

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `input:
  path: "records.db"
  format: "sqlite"
  table: "lesson_1"
output:
  dir: "build/nbs"
  name: "lesson_1"
  html: true
code:
  language: "python"
bibliography:
  heading: "## Sources"
log:
  level: "info"
workers: 2
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Table != "lesson_1" || cfg.Input.Format != "sqlite" {
			t.Errorf("Input = %+v", cfg.Input)
		}
		if cfg.Output.Dir != "build/nbs" || !cfg.Output.HTML || cfg.Output.PDF {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Bibliography.Heading != "## Sources" {
			t.Errorf("Bibliography.Heading = %q, want ## Sources", cfg.Bibliography.Heading)
		}
		if cfg.Workers != 2 {
			t.Errorf("Workers = %d, want 2", cfg.Workers)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/nbgen.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "output: [unclosed"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "output:\n  directory: x\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation errors are returned", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "input:\n  format: csv\n"))
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound with tried paths", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("nbgen-config-that-does-not-exist")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nbgen-config-that-does-not-exist.yaml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}
