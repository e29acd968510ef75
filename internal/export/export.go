// Package export renders an assembled notebook document to HTML and PDF.
//
// Both exporters start from the document's flat Markdown rendering:
//
//	Markdown -> goldmark (GFM + chroma classes) -> HTML5 page
//	HTML5 page -> temp file -> headless Chrome (go-rod) -> PDF
//
// Relative image references are rewritten to file:// URLs against the record
// file's directory so Chrome can load them.
package export

import "errors"

// Sentinel errors for export operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)

// Output file extensions.
const (
	HTMLExtension = ".html"
	PDFExtension  = ".pdf"
)
