package nbgen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// noSource is printed in a code block's provenance comment when the record
// is uncited.
const noSource = "none"

// Renderer turns content records into blocks, numbering citations through
// the registry it was created with.
type Renderer struct {
	refs *CitationRegistry
}

// NewRenderer creates a Renderer bound to refs.
func NewRenderer(refs *CitationRegistry) *Renderer {
	return &Renderer{refs: refs}
}

// Render produces exactly one block for c.
func (r *Renderer) Render(c Content) Block {
	switch v := c.(type) {
	case TextPoint:
		return Block{Kind: BlockText, Unit: v.Unit, Text: r.renderText(v)}
	case ImageReference:
		return Block{Kind: BlockImage, Unit: v.Unit, Text: r.renderImage(v)}
	case CodeBlock:
		return Block{Kind: BlockCode, Unit: v.Unit, Text: renderCode(v), Language: v.Language}
	default:
		panic(fmt.Sprintf("nbgen: unhandled content type %T", c))
	}
}

func (r *Renderer) renderText(p TextPoint) string {
	text := capitalize(strings.TrimRight(p.Text, "."))
	if p.Source == "" {
		return text + ". "
	}
	return text + r.marker(p.Source) + ". "
}

func (r *Renderer) renderImage(i ImageReference) string {
	embed := "![image](" + i.Reference + ")"
	if i.Source == "" {
		return embed + "\n\n"
	}
	return embed + r.marker(i.Source) + "\n\n"
}

// marker formats the inline citation " [[N]](source)".
func (r *Renderer) marker(source string) string {
	return fmt.Sprintf(" [[%d]](%s)", r.refs.Assign(source), source)
}

func renderCode(c CodeBlock) string {
	src := c.Source
	if src == "" {
		src = noSource
	}
	prefix := c.CommentPrefix
	if prefix == "" {
		prefix = "#"
	}
	return prefix + " source: " + src + "\n" + c.Code
}

// capitalize uppercases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
