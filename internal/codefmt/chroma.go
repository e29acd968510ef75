package codefmt

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// commentPrefixes maps chroma lexer names (lowercase) to line-comment markers.
// Languages not listed use "#".
var commentPrefixes = map[string]string{
	"c":          "//",
	"c++":        "//",
	"c#":         "//",
	"java":       "//",
	"javascript": "//",
	"typescript": "//",
	"kotlin":     "//",
	"rust":       "//",
	"scala":      "//",
	"swift":      "//",
	"haskell":    "--",
	"lua":        "--",
	"sql":        "--",
}

// closers pairs each closing bracket with its opener.
var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// ChromaFormatter validates code with a chroma lexer.
type ChromaFormatter struct {
	lexer  chroma.Lexer
	name   string
	prefix string
}

// NewChromaFormatter looks up the chroma lexer for language by name or alias.
func NewChromaFormatter(language string) (*ChromaFormatter, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	name := strings.ToLower(lexer.Config().Name)
	prefix, ok := commentPrefixes[name]
	if !ok {
		prefix = "#"
	}

	return &ChromaFormatter{
		lexer:  chroma.Coalesce(lexer),
		name:   name,
		prefix: prefix,
	}, nil
}

// Language returns the lexer's canonical name, lowercased.
func (f *ChromaFormatter) Language() string { return f.name }

// CommentPrefix returns the language's line-comment marker.
func (f *ChromaFormatter) CommentPrefix() string { return f.prefix }

// Format rejects code containing lexer error tokens or unbalanced brackets
// and returns it with normalized whitespace.
func (f *ChromaFormatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	it, err := f.lexer.Tokenise(nil, code)
	if err != nil {
		return "", unparsable("%s lexer: %v", f.name, err)
	}

	var stack []rune
	for _, tok := range it.Tokens() {
		if tok.Type == chroma.Error {
			return "", unparsable("unexpected %q", tok.Value)
		}
		if tok.Type.InCategory(chroma.Comment) || tok.Type.InSubCategory(chroma.LiteralString) {
			continue
		}
		for _, r := range tok.Value {
			switch r {
			case '(', '[', '{':
				stack = append(stack, r)
			case ')', ']', '}':
				if len(stack) == 0 || stack[len(stack)-1] != closers[r] {
					return "", unparsable("unmatched %q", r)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) > 0 {
		return "", unparsable("unclosed %q", stack[len(stack)-1])
	}

	return normalizeWhitespace(code), nil
}
