package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-nbgen/internal/export"
)

// pdfExporter renders an HTML page to PDF bytes.
type pdfExporter interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ pdfExporter = (*export.PDFExporter)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and the PDF backend.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	NewPDF  func(timeout time.Duration) pdfExporter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPDF: func(timeout time.Duration) pdfExporter {
			return export.NewPDFExporter(timeout)
		},
	}
}
