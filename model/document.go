package model

import "strings"

// Document represents a parsed markdown document
type Document struct {
	Blocks []Block
}

// NewDocument creates a document from its blocks
func NewDocument(blocks []Block) *Document {
	if blocks == nil {
		blocks = make([]Block, 0)
	}
	return &Document{Blocks: blocks}
}

// BlockCount returns the number of top-level blocks
func (d *Document) BlockCount() int {
	return len(d.Blocks)
}

// Headings returns all top-level headings in document order
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, b := range d.Blocks {
		if h, ok := b.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Tables returns all top-level tables in document order
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// TableOfContents returns headings organized as a document outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	for i, b := range d.Blocks {
		h, ok := b.(*Heading)
		if !ok {
			continue
		}
		toc = append(toc, TOCEntry{
			Level: h.Level,
			Text:  InlineText(h.Content),
			Block: i,
		})
	}
	return toc
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level int    // Heading level (1-6)
	Text  string // Heading text
	Block int    // Index of the heading in Document.Blocks
}

// PlainText returns the literal text of all blocks, one block per paragraph
func (d *Document) PlainText() string {
	var parts []string
	for _, b := range d.Blocks {
		if text := blockText(b); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func blockText(b Block) string {
	switch b := b.(type) {
	case *Heading:
		return InlineText(b.Content)
	case *Paragraph:
		return InlineText(b.Content)
	case *List:
		var lines []string
		for _, item := range b.Items {
			lines = append(lines, itemText(item)...)
		}
		return strings.Join(lines, "\n")
	case *Quote:
		return nodesText(b.Content)
	case *CodeBlock:
		return b.Code
	case *Table:
		return strings.TrimSuffix(b.GetText(), "\n")
	case *Align:
		return nodesText(b.Content)
	default:
		return ""
	}
}

func itemText(item *ListItem) []string {
	lines := []string{InlineText(item.Inlines())}
	for _, sub := range item.Sublists() {
		for _, subItem := range sub.Items {
			lines = append(lines, itemText(subItem)...)
		}
	}
	return lines
}

func nodesText(nodes []Node) string {
	var parts []string
	for _, n := range nodes {
		switch n := n.(type) {
		case Inline:
			parts = append(parts, n.Literal())
		case Block:
			parts = append(parts, blockText(n))
		}
	}
	return strings.Join(parts, "")
}

// Stats holds node counts for a document
type Stats struct {
	Blocks  map[BlockType]int
	Inlines map[InlineType]int
}

// BlockCount returns the total number of blocks, nested lists included
func (s Stats) BlockCount() int {
	n := 0
	for _, c := range s.Blocks {
		n += c
	}
	return n
}

// InlineCount returns the total number of inline nodes
func (s Stats) InlineCount() int {
	n := 0
	for _, c := range s.Inlines {
		n += c
	}
	return n
}

// Stats counts every node of the document by kind
func (d *Document) Stats() Stats {
	stats := Stats{
		Blocks:  make(map[BlockType]int),
		Inlines: make(map[InlineType]int),
	}
	for _, b := range d.Blocks {
		Walk(b, func(n Node, _ int) bool {
			switch n := n.(type) {
			case Block:
				stats.Blocks[n.Type()]++
			case Inline:
				stats.Inlines[n.Type()]++
			}
			return true
		})
	}
	return stats
}
