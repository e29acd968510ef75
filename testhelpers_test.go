package nbgen

import (
	"errors"
	"strings"
	"sync/atomic"
)

var errUnbalanced = errors.New("unbalanced brackets")

// stubFormatter accepts code with balanced square brackets, trims it and
// appends a newline. It counts calls so tests can check concurrency.
type stubFormatter struct {
	calls atomic.Int64
}

func (f *stubFormatter) Format(code string) (string, error) {
	f.calls.Add(1)
	if strings.Count(code, "[") != strings.Count(code, "]") {
		return "", errUnbalanced
	}
	return strings.TrimSpace(code) + "\n", nil
}

func (f *stubFormatter) Language() string      { return "python" }
func (f *stubFormatter) CommentPrefix() string { return "#" }

func textRecord(unit, body, source string) Record {
	return Record{Kind: KindText, Unit: unit, Body: body, Source: source}
}

func codeRecord(unit, body, source string) Record {
	return Record{Kind: KindCode, Unit: unit, Body: body, Source: source}
}

func imageRecord(unit, body, source string) Record {
	return Record{Kind: KindImage, Unit: unit, Body: body, Source: source}
}

func mustText(unit, text, source string) TextPoint {
	p, err := NewTextPoint(unit, text, source)
	if err != nil {
		panic(err)
	}
	return p
}

func mustImage(unit, ref, source string) ImageReference {
	i, err := NewImageReference(unit, ref, source)
	if err != nil {
		panic(err)
	}
	return i
}
