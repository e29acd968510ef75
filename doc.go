// Package nbgen assembles ordered content records into a notebook document
// with section headers and a numbered bibliography.
//
// # Quick Start
//
// Build a document from raw records with a code formatter:
//
//	f, err := codefmt.New("python")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := nbgen.Build(ctx, []nbgen.Record{
//	    {Kind: nbgen.KindText, Unit: "1.1", Body: "this is a point", Source: "www.some.source"},
//	    {Kind: nbgen.KindCode, Unit: "1.1", Body: "[i for i in range(10)]"},
//	    {Kind: nbgen.KindImage, Unit: "1.2", Body: "some_image.png"},
//	}, f, 0)
//
// The document holds the ordered blocks, the citations in number order and
// one diagnostic per skipped record.
//
// # Assembly Pipeline
//
//  1. Construction: each record's unit is normalized to three components
//     ("1.2" becomes 1.2.0) and its content validated. Code goes through the
//     formatter. Construction runs in parallel; results keep input order.
//  2. Sectioning: a "# u.s.s" header block is emitted whenever the unit
//     differs from the previous record's unit.
//  3. Rendering: text points and images cite their source inline as
//     "[[N]](source)", numbering sources in first-seen order. Code blocks
//     start with a "source:" comment instead.
//  4. Bibliography: a final block lists "[N] source" for every cited source.
//
// # Failure Handling
//
// A malformed unit or invalid content aborts assembly with an error wrapping
// ErrMalformedUnit or ErrInvalidContent. Code the formatter rejects fails
// with ErrCodeValidation: the record is omitted, a warning is logged, and
// the rest of the document is assembled unaffected.
//
// # Configuration
//
// Use functional options to customize the assembler:
//
//	doc, err := nbgen.NewAssembler(
//	    nbgen.WithBibliographyHeading("## Sources"),
//	    nbgen.WithPreloadedCitations(nbgen.Citation{Source: "site_1", Number: 1}),
//	    nbgen.WithLogger(slog.Default()),
//	).Assemble(results)
//
// Serializing the document as an nbformat 4 notebook and exporting it to
// HTML or PDF is done by the nbgen command.
package nbgen
