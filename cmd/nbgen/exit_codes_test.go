package main

// Notes:
// - exitCodeFor: we test the sentinel errors of every package the CLI
//   touches, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	nbgen "github.com/alnah/go-nbgen"
	"github.com/alnah/go-nbgen/internal/assets"
	"github.com/alnah/go-nbgen/internal/codefmt"
	"github.com/alnah/go-nbgen/internal/config"
	"github.com/alnah/go-nbgen/internal/export"
	"github.com/alnah/go-nbgen/internal/logging"
	"github.com/alnah/go-nbgen/internal/notebook"
	"github.com/alnah/go-nbgen/internal/source"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},
		{"help shown", errHelpShown, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", export.ErrBrowserConnect, ExitBrowser},
		{"page create", export.ErrPageCreate, ExitBrowser},
		{"page load", export.ErrPageLoad, ExitBrowser},
		{"pdf generation", export.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", export.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read records", source.ErrReadRecords, ExitIO},
		{"no input", source.ErrNoInput, ExitIO},
		{"write notebook", notebook.ErrWriteNotebook, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"asset read", assets.ErrAssetRead, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"malformed unit", fmt.Errorf("record 3: %w", nbgen.ErrMalformedUnit), ExitUsage},
		{"invalid content", nbgen.ErrInvalidContent, ExitUsage},
		{"code validation", nbgen.ErrCodeValidation, ExitUsage},
		{"unsupported language", codefmt.ErrUnsupportedLanguage, ExitUsage},
		{"unsupported format", source.ErrUnsupportedFormat, ExitUsage},
		{"missing column", source.ErrMissingColumn, ExitUsage},
		{"invalid table", source.ErrInvalidTable, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"invalid asset name", assets.ErrInvalidAssetName, ExitUsage},
		{"invalid assets dir", assets.ErrInvalidBasePath, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
		{"unknown log level", logging.ErrUnknownLevel, ExitUsage},
		{"unknown log format", logging.ErrUnknownFormat, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something went wrong"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("custom exit code %d should be below 126", code)
		}
	}
}
