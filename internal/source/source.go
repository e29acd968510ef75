// Package source reads raw notebook records from files and databases.
//
// A Source returns records in document order. Records are not validated
// here: unit parsing, content checks and code formatting happen when the
// caller constructs them.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	nbgen "github.com/alnah/go-nbgen"
)

// Sentinel errors for record sources.
var (
	ErrReadRecords       = errors.New("failed to read records")
	ErrUnsupportedFormat = errors.New("unsupported record format")
	ErrNoInput           = errors.New("no input path")
	ErrMissingColumn     = errors.New("required column missing")
	ErrInvalidTable      = errors.New("invalid table name")
)

// Record formats accepted by New.
const (
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// Source produces the ordered record list for one notebook.
type Source interface {
	Read(ctx context.Context) ([]nbgen.Record, error)
}

// New returns the Source for format reading from path. table is only used
// by the SQLite source.
func New(path, format, table string) (Source, error) {
	if path == "" {
		return nil, ErrNoInput
	}
	switch strings.ToLower(format) {
	case "", FormatYAML:
		return NewYAMLSource(path), nil
	case FormatSQLite:
		return NewSQLiteSource(path, table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
