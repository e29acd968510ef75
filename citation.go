package nbgen

import "fmt"

// Citation is one bibliography entry: a source key and its number.
type Citation struct {
	Source string
	Number int
}

// CitationRegistry assigns a stable number to each distinct source, in
// first-seen order. Entries are never removed or renumbered.
//
// A registry belongs to a single assembly run and is not safe for
// concurrent use.
type CitationRegistry struct {
	numbers map[string]int
	order   []string
	max     int
}

// NewCitationRegistry returns an empty registry.
func NewCitationRegistry() *CitationRegistry {
	return &CitationRegistry{numbers: make(map[string]int)}
}

// Assign returns the number for source, registering it as max+1 on first
// sight. Callers only assign non-empty sources.
func (r *CitationRegistry) Assign(source string) int {
	if n, ok := r.numbers[source]; ok {
		return n
	}

	r.max++
	r.numbers[source] = r.max
	r.order = append(r.order, source)
	return r.max
}

// Preload registers source with an explicit number, so that numbering can
// continue from an existing bibliography. Later Assign calls continue from
// the largest number seen.
func (r *CitationRegistry) Preload(source string, number int) error {
	if number < 1 {
		return fmt.Errorf("%w: %q -> %d", ErrInvalidCitation, source, number)
	}
	if _, ok := r.numbers[source]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCitation, source)
	}

	r.numbers[source] = number
	r.order = append(r.order, source)
	r.max = max(r.max, number)
	return nil
}

// Lookup returns the number assigned to source, if any.
func (r *CitationRegistry) Lookup(source string) (int, bool) {
	n, ok := r.numbers[source]
	return n, ok
}

// Len returns the number of registered sources.
func (r *CitationRegistry) Len() int {
	return len(r.order)
}

// Entries returns the registered citations in assignment order.
func (r *CitationRegistry) Entries() []Citation {
	entries := make([]Citation, 0, len(r.order))
	for _, src := range r.order {
		entries = append(entries, Citation{Source: src, Number: r.numbers[src]})
	}
	return entries
}
