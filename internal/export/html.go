package export

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// DefaultStyle is the chroma style used for code cells.
const DefaultStyle = "github"

// htmlTemplate wraps goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
%s</style>
</head>
<body>
%s
</body>
</html>`

// HTMLExporter converts document Markdown to a standalone HTML page.
type HTMLExporter struct {
	md      goldmark.Markdown
	pageCSS string
	codeCSS string
}

// NewHTMLExporter creates an HTMLExporter with GFM extensions and chroma
// highlighting. pageCSS styles the page; highlighting uses CSS classes whose
// stylesheet for the chroma style is embedded after it. An unknown chroma
// style falls back to chroma's default.
func NewHTMLExporter(style, pageCSS string) (*HTMLExporter, error) {
	if style == "" {
		style = DefaultStyle
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)

	codeCSS, err := stylesheet(styles.Get(style))
	if err != nil {
		return nil, err
	}
	return &HTMLExporter{md: md, pageCSS: strings.TrimSpace(pageCSS), codeCSS: codeCSS}, nil
}

func stylesheet(style *chroma.Style) (string, error) {
	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: writing stylesheet: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// ToHTML converts markdown to an HTML5 document titled title. When baseDir
// is set, relative image paths are resolved against it.
// Supports context cancellation via goroutine + select since goldmark does
// not take a context.
func (e *HTMLExporter) ToHTML(ctx context.Context, markdown, title, baseDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := e.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		body, err := RewriteRelativePaths(buf.String(), baseDir)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: rewriting paths: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, html.EscapeString(strings.TrimSpace(title)), e.pageCSS, e.codeCSS, body)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
