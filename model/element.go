package model

// BlockType represents the kind of a block node
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeading
	BlockTypeParagraph
	BlockTypeList
	BlockTypeQuote
	BlockTypeCodeBlock
	BlockTypeTable
	BlockTypeHorizontalRule
	BlockTypeAlign
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeading:
		return "heading"
	case BlockTypeParagraph:
		return "paragraph"
	case BlockTypeList:
		return "list"
	case BlockTypeQuote:
		return "quote"
	case BlockTypeCodeBlock:
		return "code_block"
	case BlockTypeTable:
		return "table"
	case BlockTypeHorizontalRule:
		return "horizontal_rule"
	case BlockTypeAlign:
		return "align"
	default:
		return "unknown"
	}
}

// InlineType represents the kind of an inline node
type InlineType int

const (
	InlineTypeUnknown InlineType = iota
	InlineTypeText
	InlineTypeBold
	InlineTypeItalic
	InlineTypeCode
	InlineTypeLink
	InlineTypeImage
)

func (it InlineType) String() string {
	switch it {
	case InlineTypeText:
		return "text"
	case InlineTypeBold:
		return "bold"
	case InlineTypeItalic:
		return "italic"
	case InlineTypeCode:
		return "code"
	case InlineTypeLink:
		return "link"
	case InlineTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Node is implemented by every block and inline node. Mixed content
// (quote bodies, align bodies, list items) is stored as []Node.
type Node interface {
	node()
}

// Block is the interface for all block nodes
type Block interface {
	Node
	Type() BlockType
	block()
}

// Inline is the interface for all inline nodes
type Inline interface {
	Node
	Type() InlineType
	// Literal returns the node's textual content without markup
	Literal() string
	inline()
}

// Alignment is a horizontal alignment of an align block or table column
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// ParseAlignment maps "left", "center" or "right" to an Alignment.
// Matching is exact; callers fold case first.
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "left":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	default:
		return AlignNone, false
	}
}
