// Package notebook serializes assembled documents as Jupyter notebooks
// (nbformat 4.5) and writes them to disk.
package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	nbgen "github.com/alnah/go-nbgen"
)

// nbformat version written by this package.
const (
	FormatMajor = 4
	FormatMinor = 5
)

// Cell types.
const (
	CellMarkdown = "markdown"
	CellCode     = "code"
)

// cellNamespace seeds name-based cell IDs, so the same document always
// produces the same notebook bytes.
var cellNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/alnah/go-nbgen/cell"))

// Notebook is the nbformat v4 top-level object. Fields are declared in key
// order so the JSON matches nbformat's sorted output.
type Notebook struct {
	Cells         []Cell   `json:"cells"`
	Metadata      Metadata `json:"metadata"`
	NBFormat      int      `json:"nbformat"`
	NBFormatMinor int      `json:"nbformat_minor"`
}

// Metadata is the notebook-level metadata.
type Metadata struct {
	LanguageInfo LanguageInfo `json:"language_info"`
}

// LanguageInfo names the language of the notebook's code cells.
type LanguageInfo struct {
	Name string `json:"name"`
}

// Cell is a markdown or code cell. ExecutionCount and Outputs are only
// emitted for code cells.
type Cell struct {
	CellType       string         `json:"cell_type"`
	ExecutionCount *int           `json:"execution_count,omitempty"`
	ID             string         `json:"id"`
	Metadata       map[string]any `json:"metadata"`
	Outputs        []any          `json:"outputs,omitempty"`
	Source         []string       `json:"source"`
}

// MarshalJSON keeps "execution_count": null on code cells, which
// omitempty would otherwise drop.
func (c Cell) MarshalJSON() ([]byte, error) {
	type plain Cell
	if c.CellType != CellCode {
		return marshalRaw(plain(c))
	}

	outputs := c.Outputs
	if outputs == nil {
		outputs = []any{}
	}
	return marshalRaw(struct {
		CellType       string         `json:"cell_type"`
		ExecutionCount *int           `json:"execution_count"`
		ID             string         `json:"id"`
		Metadata       map[string]any `json:"metadata"`
		Outputs        []any          `json:"outputs"`
		Source         []string       `json:"source"`
	}{
		CellType:       c.CellType,
		ExecutionCount: c.ExecutionCount,
		ID:             c.ID,
		Metadata:       c.Metadata,
		Outputs:        outputs,
		Source:         c.Source,
	})
}

// marshalRaw is json.Marshal without HTML escaping, so "<" and "&" in cell
// sources stay readable in the file.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Text returns the cell text joined back into a single string.
func (c Cell) Text() string {
	return strings.Join(c.Source, "")
}

// FromDocument converts an assembled document into a notebook. Code blocks
// become code cells; every other block becomes a markdown cell.
func FromDocument(doc *nbgen.Document, language string) *Notebook {
	nb := &Notebook{
		Cells:         make([]Cell, 0, len(doc.Blocks)),
		Metadata:      Metadata{LanguageInfo: LanguageInfo{Name: language}},
		NBFormat:      FormatMajor,
		NBFormatMinor: FormatMinor,
	}

	for i, b := range doc.Blocks {
		cell := Cell{
			ID:       cellID(i, b.Text),
			Metadata: map[string]any{},
			Source:   splitLines(b.Text),
		}
		if b.Kind.IsCode() {
			cell.CellType = CellCode
			cell.Outputs = []any{}
		} else {
			cell.CellType = CellMarkdown
		}
		nb.Cells = append(nb.Cells, cell)
	}

	return nb
}

// Marshal encodes nb the way nbformat writes files: one-space indentation,
// no HTML escaping, trailing newline.
func Marshal(nb *Notebook) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(nb); err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes notebook JSON.
func Unmarshal(data []byte) (*Notebook, error) {
	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("decoding notebook: %w", err)
	}
	return &nb, nil
}

func cellID(index int, text string) string {
	return uuid.NewSHA1(cellNamespace, fmt.Appendf(nil, "%d\x00%s", index, text)).String()
}

// splitLines splits s after every newline, keeping the newline, as nbformat
// stores multi-line strings.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
