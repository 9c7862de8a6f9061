package export

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/marktree/model"
)

// jsonNode is the tagged representation of a block or inline node. Type
// holds the node kind as returned by BlockType.String or InlineType.String.
type jsonNode struct {
	Type string `json:"type"`

	// headings and quotes
	Level int `json:"level,omitempty"`

	// lists
	Ordered bool       `json:"ordered,omitempty"`
	Start   *int       `json:"start,omitempty"`
	Items   []jsonItem `json:"items,omitempty"`

	// code blocks
	Language string `json:"language,omitempty"`
	Filename string `json:"filename,omitempty"`
	Code     string `json:"code,omitempty"`

	// tables
	Alignments []string     `json:"alignments,omitempty"`
	Header     []jsonCell   `json:"header,omitempty"`
	Rows       [][]jsonCell `json:"rows,omitempty"`

	// align blocks
	Alignment string `json:"alignment,omitempty"`

	// inlines
	Text  string   `json:"text,omitempty"`
	URL   string   `json:"url,omitempty"`
	Title string   `json:"title,omitempty"`
	Size  *float64 `json:"size,omitempty"`
	CSS   string   `json:"css,omitempty"`

	Content []jsonNode `json:"content,omitempty"`
}

type jsonItem struct {
	IndentLevel int        `json:"indent_level"`
	Content     []jsonNode `json:"content"`
}

type jsonCell struct {
	Alignment string     `json:"alignment,omitempty"`
	Content   []jsonNode `json:"content"`
}

type jsonDocument struct {
	Type   string     `json:"type"`
	Blocks []jsonNode `json:"blocks"`
}

// JSON encodes doc as a tree of tagged objects:
//
//	{"type":"document","blocks":[{"type":"heading","level":1,"content":[...]}]}
//
// Use WithIndent for pretty-printed output.
func JSON(doc *model.Document, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	out := jsonDocument{Type: "document", Blocks: make([]jsonNode, 0, len(doc.Blocks))}
	for _, b := range doc.Blocks {
		out.Blocks = append(out.Blocks, blockJSON(b))
	}

	var data []byte
	var err error
	if cfg.indent != "" {
		data, err = json.MarshalIndent(out, "", cfg.indent)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

func blockJSON(b model.Block) jsonNode {
	n := jsonNode{Type: b.Type().String()}
	switch b := b.(type) {
	case *model.Heading:
		n.Level = b.Level
		n.Content = inlinesJSON(b.Content)
	case *model.Paragraph:
		n.Content = inlinesJSON(b.Content)
	case *model.List:
		n.Ordered = b.Ordered
		n.Start = b.Start
		for _, item := range b.Items {
			n.Items = append(n.Items, jsonItem{
				IndentLevel: item.IndentLevel,
				Content:     nodesJSON(item.Content),
			})
		}
	case *model.Quote:
		n.Level = b.Level
		n.Content = nodesJSON(b.Content)
	case *model.CodeBlock:
		n.Language = b.Language
		n.Filename = b.Filename
		n.Code = b.Code
	case *model.Table:
		for _, a := range b.Alignments {
			n.Alignments = append(n.Alignments, a.String())
		}
		n.Header = rowJSON(b.Header)
		for _, row := range b.Rows {
			n.Rows = append(n.Rows, rowJSON(row))
		}
	case *model.Align:
		n.Alignment = b.Alignment.String()
		n.Content = nodesJSON(b.Content)
	}
	return n
}

func rowJSON(row model.TableRow) []jsonCell {
	cells := make([]jsonCell, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = jsonCell{
			Alignment: c.Alignment.String(),
			Content:   inlinesJSON(c.Content),
		}
	}
	return cells
}

func nodesJSON(nodes []model.Node) []jsonNode {
	out := make([]jsonNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case model.Block:
			out = append(out, blockJSON(n))
		case model.Inline:
			out = append(out, inlineJSON(n))
		}
	}
	return out
}

func inlinesJSON(inlines []model.Inline) []jsonNode {
	out := make([]jsonNode, len(inlines))
	for i, in := range inlines {
		out[i] = inlineJSON(in)
	}
	return out
}

func inlineJSON(in model.Inline) jsonNode {
	n := jsonNode{Type: in.Type().String(), Text: in.Literal()}
	switch in := in.(type) {
	case *model.Link:
		n.URL = in.URL
		n.Title = in.Title
	case *model.Image:
		n.URL = in.URL
		n.Title = in.Title
		n.Size = in.Size
		n.CSS = in.CSS
	}
	return n
}
