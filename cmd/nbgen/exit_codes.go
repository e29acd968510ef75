package main

import (
	"errors"
	"os"

	nbgen "github.com/alnah/go-nbgen"
	"github.com/alnah/go-nbgen/internal/assets"
	"github.com/alnah/go-nbgen/internal/codefmt"
	"github.com/alnah/go-nbgen/internal/config"
	"github.com/alnah/go-nbgen/internal/export"
	"github.com/alnah/go-nbgen/internal/logging"
	"github.com/alnah/go-nbgen/internal/notebook"
	"github.com/alnah/go-nbgen/internal/source"
)

// Exit codes for the nbgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Notebook built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, records or validation
	ExitIO      = 3 // Input unreadable, output unwritable
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, errHelpShown) {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, export.ErrBrowserConnect) ||
		errors.Is(err, export.ErrPageCreate) ||
		errors.Is(err, export.ErrPageLoad) ||
		errors.Is(err, export.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, source.ErrReadRecords) ||
		errors.Is(err, source.ErrNoInput) ||
		errors.Is(err, notebook.ErrWriteNotebook) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, nbgen.ErrMalformedUnit) ||
		errors.Is(err, nbgen.ErrInvalidContent) ||
		errors.Is(err, nbgen.ErrCodeValidation) ||
		errors.Is(err, codefmt.ErrUnsupportedLanguage) ||
		errors.Is(err, source.ErrUnsupportedFormat) ||
		errors.Is(err, source.ErrMissingColumn) ||
		errors.Is(err, source.ErrInvalidTable) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, logging.ErrUnknownLevel) ||
		errors.Is(err, logging.ErrUnknownFormat) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
