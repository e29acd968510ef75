// Package codefmt validates code snippets and rewrites them in a canonical
// layout before they are placed in a notebook.
//
// Go code is formatted with go/format (gofmt rules). Every other language is
// tokenized with a chroma lexer: lexer error tokens and unbalanced brackets
// reject the snippet, and whitespace is normalized.
package codefmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for formatting.
var (
	ErrUnparsable          = errors.New("code cannot be parsed")
	ErrUnsupportedLanguage = errors.New("unsupported code language")
	ErrEmptyCode           = errors.New("code is empty")
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "python"

// Formatter validates and formats code in a single language.
// Implementations are safe for concurrent use.
type Formatter interface {
	Format(code string) (string, error)
	Language() string
	CommentPrefix() string
}

// New returns the formatter for language (case-insensitive).
// An empty language selects DefaultLanguage.
func New(language string) (Formatter, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		lang = DefaultLanguage
	}

	if lang == "go" || lang == "golang" {
		return GoFormatter{}, nil
	}

	f, err := NewChromaFormatter(lang)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// normalizeWhitespace converts line endings to \n, strips trailing spaces on
// every line, drops leading and trailing blank lines, and ends the text with
// exactly one newline.
func normalizeWhitespace(code string) string {
	code = strings.ReplaceAll(code, "\r\n", "\n")
	code = strings.ReplaceAll(code, "\r", "\n")

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Trim(strings.Join(lines, "\n"), "\n")
	return out + "\n"
}

func unparsable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnparsable, fmt.Sprintf(format, args...))
}
