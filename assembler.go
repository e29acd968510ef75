package nbgen

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultBibliographyHeading opens the bibliography block.
const DefaultBibliographyHeading = "## References"

// Document is the output of one assembly run.
type Document struct {
	Blocks      []Block
	Citations   []Citation
	Diagnostics []Diagnostic
}

// Diagnostic records a record omitted from the document.
type Diagnostic struct {
	Index int
	Err   error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("record %d skipped: %v", d.Index, d.Err)
}

// Count returns the number of blocks of kind k.
func (d *Document) Count(k BlockKind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == k {
			n++
		}
	}
	return n
}

// Markdown concatenates the document into a single Markdown text, fencing
// code blocks. Used by exporters that need one flat source.
func (d *Document) Markdown() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		switch b.Kind {
		case BlockCode:
			sb.WriteString("```" + b.Language + "\n")
			sb.WriteString(strings.TrimRight(b.Text, "\n"))
			sb.WriteString("\n```\n\n")
		case BlockImage:
			sb.WriteString(b.Text)
		default:
			sb.WriteString(strings.TrimSpace(b.Text))
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// Assembler drives the pipeline: section tracking, rendering and the
// closing bibliography. Each Assemble call owns a fresh registry and tracker,
// so an Assembler can be reused but not shared across goroutines mid-call.
type Assembler struct {
	cfg    assemblerConfig
	logger *slog.Logger
}

// NewAssembler creates an Assembler. Use options to change the bibliography
// heading, preload citations, or attach a logger.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		cfg:    assemblerConfig{bibHeading: DefaultBibliographyHeading},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble consumes construction results in order. Results that failed code
// validation are skipped with a warning; any other construction error aborts
// assembly and is returned wrapped with the record index.
func (a *Assembler) Assemble(results []Result) (*Document, error) {
	refs := NewCitationRegistry()
	for _, c := range a.cfg.preload {
		if err := refs.Preload(c.Source, c.Number); err != nil {
			return nil, err
		}
	}

	renderer := NewRenderer(refs)
	var tracker SectionTracker
	doc := &Document{Blocks: make([]Block, 0, len(results)*2+1)}

	for _, res := range results {
		if res.Err != nil {
			if res.Skippable() {
				a.logger.Warn("skipping record", "index", res.Index, "error", res.Err)
				doc.Diagnostics = append(doc.Diagnostics, Diagnostic{Index: res.Index, Err: res.Err})
				continue
			}
			return nil, fmt.Errorf("record %d: %w", res.Index, res.Err)
		}
		if res.Content == nil {
			return nil, fmt.Errorf("record %d: %w: no content", res.Index, ErrInvalidContent)
		}

		if header, ok := tracker.MaybeHeader(res.Content.Position()); ok {
			doc.Blocks = append(doc.Blocks, header)
		}
		doc.Blocks = append(doc.Blocks, renderer.Render(res.Content))
	}

	doc.Citations = refs.Entries()
	doc.Blocks = append(doc.Blocks, bibliography(a.cfg.bibHeading, doc.Citations))

	a.logger.Debug("document assembled",
		"blocks", len(doc.Blocks),
		"citations", len(doc.Citations),
		"skipped", len(doc.Diagnostics))
	return doc, nil
}

// AssembleContent is Assemble for callers that already hold validated content.
func (a *Assembler) AssembleContent(items []Content) (*Document, error) {
	results := make([]Result, len(items))
	for i, c := range items {
		results[i] = Result{Index: i, Content: c}
	}
	return a.Assemble(results)
}

// bibliography renders the heading followed by one "[N] source" line per
// citation, separated by blank lines.
func bibliography(heading string, citations []Citation) Block {
	lines := make([]string, 0, len(citations)+1)
	lines = append(lines, "\n\n"+heading)
	for _, c := range citations {
		lines = append(lines, fmt.Sprintf("[%d] %s", c.Number, c.Source))
	}
	return Block{Kind: BlockBibliography, Text: strings.Join(lines, "\n\n")}
}
