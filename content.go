package nbgen

import (
	"errors"
	"fmt"
	"strings"
)

// CodeFormatter validates and canonically formats code in one language.
// Format returns an error when the code cannot be parsed.
type CodeFormatter interface {
	Format(code string) (string, error)
	Language() string
	CommentPrefix() string
}

// Content is a validated record ready for rendering. The set of variants
// is closed: TextPoint, CodeBlock and ImageReference.
type Content interface {
	// Position returns the record's normalized unit.
	Position() Unit
	// Citation returns the record's source key, or "" when uncited.
	Citation() string

	content()
}

// TextPoint is a prose point.
type TextPoint struct {
	Unit   Unit
	Text   string
	Source string
}

// CodeBlock is a code example. Code holds the formatter's canonical output.
type CodeBlock struct {
	Unit          Unit
	Code          string
	Language      string
	CommentPrefix string
	Source        string
}

// ImageReference embeds an image by path or URL.
type ImageReference struct {
	Unit      Unit
	Reference string
	Source    string
}

func (p TextPoint) Position() Unit      { return p.Unit }
func (c CodeBlock) Position() Unit      { return c.Unit }
func (i ImageReference) Position() Unit { return i.Unit }

func (p TextPoint) Citation() string      { return p.Source }
func (c CodeBlock) Citation() string      { return c.Source }
func (i ImageReference) Citation() string { return i.Source }

func (TextPoint) content()      {}
func (CodeBlock) content()      {}
func (ImageReference) content() {}

// NewTextPoint builds a TextPoint from a dotted unit string.
func NewTextPoint(unit, text, source string) (TextPoint, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return TextPoint{}, err
	}
	if strings.TrimSpace(text) == "" {
		return TextPoint{}, fmt.Errorf("%w: text point at %s has empty text", ErrInvalidContent, u)
	}
	return TextPoint{Unit: u, Text: text, Source: source}, nil
}

// NewImageReference builds an ImageReference from a dotted unit string.
func NewImageReference(unit, reference, source string) (ImageReference, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return ImageReference{}, err
	}
	if strings.TrimSpace(reference) == "" {
		return ImageReference{}, fmt.Errorf("%w: image at %s has empty reference", ErrInvalidContent, u)
	}
	return ImageReference{Unit: u, Reference: reference, Source: source}, nil
}

// NewCodeBlock validates and formats code with f. Unparsable code fails
// with ErrCodeValidation; callers treat that as "no record", not as fatal.
func NewCodeBlock(unit, code, source string, f CodeFormatter) (CodeBlock, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return CodeBlock{}, err
	}
	if f == nil {
		return CodeBlock{}, ErrNilFormatter
	}

	formatted, err := f.Format(code)
	if err != nil {
		return CodeBlock{}, fmt.Errorf("%w: unit %s: %v", ErrCodeValidation, u, err)
	}

	return CodeBlock{
		Unit:          u,
		Code:          formatted,
		Language:      f.Language(),
		CommentPrefix: f.CommentPrefix(),
		Source:        source,
	}, nil
}

// Kind names the variant of a raw Record.
type Kind string

// Record kinds.
const (
	KindText  Kind = "text"
	KindCode  Kind = "code"
	KindImage Kind = "image"
)

// Record is the raw shape supplied by record sources, before validation.
// Body holds the text, the code, or the image reference depending on Kind.
type Record struct {
	Kind   Kind   `yaml:"kind"`
	Unit   string `yaml:"unit"`
	Body   string `yaml:"body"`
	Source string `yaml:"source,omitempty"`
}

// Construct validates a raw record and returns its Content variant.
// On error the returned Content is nil.
func Construct(rec Record, f CodeFormatter) (Content, error) {
	var (
		c   Content
		err error
	)
	switch Kind(strings.ToLower(string(rec.Kind))) {
	case KindText:
		c, err = NewTextPoint(rec.Unit, rec.Body, rec.Source)
	case KindCode:
		c, err = NewCodeBlock(rec.Unit, rec.Body, rec.Source, f)
	case KindImage:
		c, err = NewImageReference(rec.Unit, rec.Body, rec.Source)
	default:
		err = fmt.Errorf("%w: unknown record kind %q", ErrInvalidContent, rec.Kind)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Result is the outcome of constructing the record at Index.
// Exactly one of Content and Err is set.
type Result struct {
	Index   int
	Content Content
	Err     error
}

// Skippable reports whether the result failed in a way that omits the record
// from the document instead of aborting assembly.
func (r Result) Skippable() bool {
	return r.Err != nil && errors.Is(r.Err, ErrCodeValidation)
}
