package codefmt

import (
	"go/format"
	"strings"
)

// GoFormatter formats Go code with gofmt rules. It accepts complete files
// as well as bare lists of declarations or statements.
type GoFormatter struct{}

// Language returns "go".
func (GoFormatter) Language() string { return "go" }

// CommentPrefix returns "//".
func (GoFormatter) CommentPrefix() string { return "//" }

// Format returns the gofmt rendering of code.
func (GoFormatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	out, err := format.Source([]byte(code))
	if err != nil {
		return "", unparsable("go: %v", err)
	}
	return normalizeWhitespace(string(out)), nil
}
