package nbgen

import "errors"

// Sentinel errors for record construction and assembly.
var (
	// ErrMalformedUnit reports a unit that is not 2 or 3 dot-separated
	// non-negative integers.
	ErrMalformedUnit = errors.New("malformed unit")

	// ErrInvalidContent reports a record whose fields fail their basic checks
	// (empty text, empty image reference, unknown record kind).
	ErrInvalidContent = errors.New("invalid content")

	// ErrCodeValidation reports code the formatter could not parse.
	// Records failing with it are omitted from the document, not fatal.
	ErrCodeValidation = errors.New("code validation failed")

	// ErrNilFormatter is returned when a code record is constructed without a formatter.
	ErrNilFormatter = errors.New("code formatter is nil")

	// Citation registry errors.
	ErrDuplicateCitation = errors.New("citation key already registered")
	ErrInvalidCitation   = errors.New("citation number must be positive")
)
