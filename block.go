package nbgen

// BlockKind tags a rendered block.
type BlockKind int

// Block kinds, in no particular order.
const (
	BlockHeader BlockKind = iota
	BlockText
	BlockImage
	BlockCode
	BlockBibliography
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeader:
		return "header"
	case BlockText:
		return "text"
	case BlockImage:
		return "image"
	case BlockCode:
		return "code"
	case BlockBibliography:
		return "bibliography"
	default:
		return "unknown"
	}
}

// IsCode reports whether the block holds executable code rather than Markdown.
func (k BlockKind) IsCode() bool {
	return k == BlockCode
}

// Block is one rendered unit of output.
// Text is Markdown for every kind except BlockCode, where it is source code
// in Language.
type Block struct {
	Kind     BlockKind
	Unit     Unit
	Text     string
	Language string
}
