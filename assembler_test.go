package nbgen

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func buildResults(t *testing.T, records ...Record) []Result {
	t.Helper()
	f := &stubFormatter{}
	results := make([]Result, len(records))
	for i, rec := range records {
		c, err := Construct(rec, f)
		results[i] = Result{Index: i, Content: c, Err: err}
	}
	return results
}

func blockKinds(blocks []Block) []BlockKind {
	kinds := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind
	}
	return kinds
}

// ---------------------------------------------------------------------------
// TestAssembler_Assemble - End-to-end block sequence
// ---------------------------------------------------------------------------

func TestAssembler_Assemble(t *testing.T) {
	t.Parallel()

	results := buildResults(t,
		textRecord("1.1", "first point", "www.some.source"),
		codeRecord("1.1", "[i for i in range(10)]", ""),
		imageRecord("1.2", "some_image.png", "www.someother_site.com"),
		textRecord("1.2", "second point.", "www.some.source"),
	)

	doc, err := NewAssembler().Assemble(results)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}

	wantKinds := []BlockKind{BlockHeader, BlockText, BlockCode, BlockHeader, BlockImage, BlockText, BlockBibliography}
	if got := blockKinds(doc.Blocks); !reflect.DeepEqual(got, wantKinds) {
		t.Fatalf("block kinds = %v, want %v", got, wantKinds)
	}

	wantTexts := []string{
		"# 1.1.0",
		"First point [[1]](www.some.source). ",
		"# source: none\n[i for i in range(10)]\n",
		"# 1.2.0",
		"![image](some_image.png) [[2]](www.someother_site.com)\n\n",
		"Second point [[1]](www.some.source). ",
		"\n\n## References\n\n[1] www.some.source\n\n[2] www.someother_site.com",
	}
	for i, want := range wantTexts {
		if doc.Blocks[i].Text != want {
			t.Errorf("block %d text = %q, want %q", i, doc.Blocks[i].Text, want)
		}
	}

	wantCitations := []Citation{{"www.some.source", 1}, {"www.someother_site.com", 2}}
	if !reflect.DeepEqual(doc.Citations, wantCitations) {
		t.Errorf("Citations = %v, want %v", doc.Citations, wantCitations)
	}
	if doc.Count(BlockHeader) != 2 {
		t.Errorf("Count(header) = %d, want 2", doc.Count(BlockHeader))
	}
}

// ---------------------------------------------------------------------------
// TestAssembler_Bibliography - Entries match the rendered markers
// ---------------------------------------------------------------------------

var markerRe = regexp.MustCompile(`\[\[(\d+)\]\]\(([^)]*)\)`)

func TestAssembler_BibliographyMatchesMarkers(t *testing.T) {
	t.Parallel()

	results := buildResults(t,
		textRecord("1.1", "a", "s1"),
		textRecord("1.1", "b", "s2"),
		textRecord("1.2", "c", "s1"),
		imageRecord("1.2", "x.png", "s3"),
		codeRecord("1.3", "print(1)", "s4"),
		textRecord("1.3", "d", ""),
		imageRecord("2.1", "y.png", "s2"),
	)

	doc, err := NewAssembler().Assemble(results)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}

	cited := make(map[string]string)
	for _, b := range doc.Blocks {
		if b.Kind == BlockBibliography {
			continue
		}
		for _, m := range markerRe.FindAllStringSubmatch(b.Text, -1) {
			cited[m[2]] = m[1]
		}
	}

	bib := doc.Blocks[len(doc.Blocks)-1].Text
	lines := strings.Split(strings.TrimPrefix(bib, "\n\n## References\n\n"), "\n\n")
	if len(lines) != len(cited) {
		t.Fatalf("bibliography has %d entries, markers cite %d sources: %q", len(lines), len(cited), bib)
	}
	for i, line := range lines {
		c := doc.Citations[i]
		if want := "[" + cited[c.Source] + "] " + c.Source; line != want {
			t.Errorf("entry %d = %q, want %q", i, line, want)
		}
		if c.Number != i+1 {
			t.Errorf("entry %d number = %d, want %d", i, c.Number, i+1)
		}
	}
	if _, ok := cited["s4"]; ok {
		t.Error("code block sources must not produce markers")
	}
}

func TestAssembler_EmptyInput(t *testing.T) {
	t.Parallel()

	doc, err := NewAssembler().Assemble(nil)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockBibliography {
		t.Fatalf("blocks = %v, want only the bibliography", blockKinds(doc.Blocks))
	}
	if doc.Blocks[0].Text != "\n\n## References" {
		t.Errorf("bibliography = %q", doc.Blocks[0].Text)
	}
}

// ---------------------------------------------------------------------------
// TestAssembler_Failures - Skipped and fatal records
// ---------------------------------------------------------------------------

func TestAssembler_SkipsCodeValidationFailures(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	results := buildResults(t,
		textRecord("1.1", "before", "s1"),
		codeRecord("1.2", "[i for i in range(10)", "s2"),
		textRecord("1.3", "after", "s3"),
	)

	doc, err := NewAssembler(WithLogger(logger)).Assemble(results)
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}

	wantKinds := []BlockKind{BlockHeader, BlockText, BlockHeader, BlockText, BlockBibliography}
	if got := blockKinds(doc.Blocks); !reflect.DeepEqual(got, wantKinds) {
		t.Errorf("block kinds = %v, want %v", got, wantKinds)
	}
	if doc.Blocks[2].Text != "# 1.3.0" {
		t.Errorf("skipped record must not open a section, got %q", doc.Blocks[2].Text)
	}
	if doc.Blocks[3].Text != "After [[2]](s3). " {
		t.Errorf("numbering should continue past the skipped record, got %q", doc.Blocks[3].Text)
	}

	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Index != 1 {
		t.Fatalf("Diagnostics = %v, want one for record 1", doc.Diagnostics)
	}
	if !errors.Is(doc.Diagnostics[0].Err, ErrCodeValidation) {
		t.Errorf("diagnostic error = %v, want %v", doc.Diagnostics[0].Err, ErrCodeValidation)
	}
	if !strings.HasPrefix(doc.Diagnostics[0].String(), "record 1 skipped: ") {
		t.Errorf("Diagnostic.String() = %q", doc.Diagnostics[0].String())
	}

	out := logs.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "index=1") {
		t.Errorf("missing warning log, got %q", out)
	}
}

func TestAssembler_FatalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []Result
		wantErr error
		wantMsg string
	}{
		{
			name:    "malformed unit",
			results: buildResults(t, textRecord("1.1", "ok", ""), textRecord("x", "bad", "")),
			wantErr: ErrMalformedUnit,
			wantMsg: "record 1: ",
		},
		{
			name:    "invalid content",
			results: buildResults(t, imageRecord("1.1", "", "")),
			wantErr: ErrInvalidContent,
			wantMsg: "record 0: ",
		},
		{
			name:    "missing content",
			results: []Result{{Index: 4}},
			wantErr: ErrInvalidContent,
			wantMsg: "record 4: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := NewAssembler().Assemble(tt.results)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Assemble() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should start with %q", err, tt.wantMsg)
			}
			if doc != nil {
				t.Error("document should be nil on fatal error")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssembler_Options - Heading, preloads and reuse
// ---------------------------------------------------------------------------

func TestAssembler_Options(t *testing.T) {
	t.Parallel()

	a := NewAssembler(
		WithBibliographyHeading("## Sources"),
		WithPreloadedCitations(Citation{Source: "site_1", Number: 1}),
		WithLogger(nil),
	)

	doc, err := a.AssembleContent([]Content{mustText("1.1", "this is a point", "www.some.source")})
	if err != nil {
		t.Fatalf("AssembleContent() unexpected error: %v", err)
	}

	if got := doc.Blocks[1].Text; got != "This is a point [[2]](www.some.source). " {
		t.Errorf("text = %q", got)
	}
	want := "\n\n## Sources\n\n[1] site_1\n\n[2] www.some.source"
	if got := doc.Blocks[len(doc.Blocks)-1].Text; got != want {
		t.Errorf("bibliography = %q, want %q", got, want)
	}

	// A second run starts from the preload again, not from the first run's state.
	again, err := a.AssembleContent([]Content{mustText("1.1", "x", "other")})
	if err != nil {
		t.Fatal(err)
	}
	if got := again.Blocks[1].Text; got != "X [[2]](other). " {
		t.Errorf("second run text = %q, want numbering from preload", got)
	}
}

func TestAssembler_PreloadConflict(t *testing.T) {
	t.Parallel()

	a := NewAssembler(WithPreloadedCitations(
		Citation{Source: "a", Number: 1},
		Citation{Source: "a", Number: 2},
	))
	if _, err := a.Assemble(nil); !errors.Is(err, ErrDuplicateCitation) {
		t.Errorf("Assemble() error = %v, want %v", err, ErrDuplicateCitation)
	}
}

func TestWithBibliographyHeading_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty heading")
		}
	}()
	WithBibliographyHeading("")
}

// ---------------------------------------------------------------------------
// TestDocument_Markdown - Flat rendering for exporters
// ---------------------------------------------------------------------------

func TestDocument_Markdown(t *testing.T) {
	t.Parallel()

	doc := &Document{Blocks: []Block{
		{Kind: BlockHeader, Text: "# 1.1.0"},
		{Kind: BlockText, Text: "A point. "},
		{Kind: BlockCode, Text: "# source: none\nx = 1\n", Language: "python"},
		{Kind: BlockImage, Text: "![image](a.png)\n\n"},
		{Kind: BlockBibliography, Text: "\n\n## References\n\n[1] s"},
	}}

	want := "# 1.1.0\n\n" +
		"A point.\n\n" +
		"```python\n# source: none\nx = 1\n```\n\n" +
		"![image](a.png)\n\n" +
		"## References\n\n[1] s\n\n"
	if got := doc.Markdown(); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}
