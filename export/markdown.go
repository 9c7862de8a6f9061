package export

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tsawler/marktree/model"
)

// Markdown serializes doc as canonical markdown. Blocks are separated by a
// blank line, except that a block following a horizontal rule starts on
// the next line.
func Markdown(doc *model.Document, opts ...Option) string {
	w := markdownWriter{cfg: newConfig(opts)}
	return w.blocks(doc.Blocks)
}

type markdownWriter struct {
	cfg config
}

func (w markdownWriter) blocks(blocks []model.Block) string {
	var sb strings.Builder
	var prev model.Block
	for _, b := range blocks {
		text := w.block(b)
		if text == "" {
			continue
		}
		if prev != nil {
			sb.WriteString("\n")
			if _, rule := prev.(*model.HorizontalRule); !rule {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(text)
		prev = b
	}
	return sb.String()
}

func (w markdownWriter) block(b model.Block) string {
	switch b := b.(type) {
	case *model.Heading:
		return strings.Repeat("#", b.Level) + " " + w.inlines(b.Content)
	case *model.Paragraph:
		return w.inlines(b.Content)
	case *model.List:
		return strings.Join(w.list(b), "\n")
	case *model.Quote:
		return w.quote(b)
	case *model.CodeBlock:
		return w.code(b)
	case *model.Table:
		return strings.Join(w.table(b), "\n")
	case *model.HorizontalRule:
		return "---"
	case *model.Align:
		return w.align(b)
	default:
		return ""
	}
}

// list writes one line per item line. Items are indented two spaces per
// indent level; continuation lines get one more level.
func (w markdownWriter) list(l *model.List) []string {
	var lines []string
	for i, item := range l.Items {
		marker := "-"
		if l.Ordered {
			marker = strconv.Itoa(l.StartNumber()+i) + "."
		}
		indent := strings.Repeat("  ", item.IndentLevel)

		first := true
		writeText := func(text string) {
			for _, line := range strings.Split(text, "\n") {
				switch {
				case first:
					lines = append(lines, indent+marker+" "+line)
					first = false
				case line == "":
					lines = append(lines, "")
				default:
					lines = append(lines, indent+"  "+line)
				}
			}
		}

		var run []model.Inline
		for _, n := range item.Content {
			switch n := n.(type) {
			case *model.List:
				if len(run) > 0 {
					writeText(w.inlines(run))
					run = nil
				}
				if first {
					lines = append(lines, indent+marker+" ")
					first = false
				}
				lines = append(lines, w.list(n)...)
			case model.Inline:
				run = append(run, n)
			}
		}
		if len(run) > 0 {
			writeText(w.inlines(run))
		}
		if first {
			lines = append(lines, indent+marker+" ")
		}
	}
	return lines
}

func (w markdownWriter) quote(q *model.Quote) string {
	prefix := strings.Repeat(">", q.Level)
	var chunks []string
	for _, n := range q.Content {
		var text string
		switch n := n.(type) {
		case *model.Paragraph:
			text = w.inlines(n.Content)
		case model.Block:
			text = w.block(n)
		case model.Inline:
			text = w.inline(n)
		}
		if text != "" {
			chunks = append(chunks, text)
		}
	}

	var lines []string
	for i, chunk := range chunks {
		if i > 0 {
			lines = append(lines, prefix)
		}
		for _, line := range strings.Split(chunk, "\n") {
			lines = append(lines, prefix+" "+line)
		}
	}
	if len(lines) == 0 {
		return prefix
	}
	return strings.Join(lines, "\n")
}

func (w markdownWriter) code(c *model.CodeBlock) string {
	lines := strings.Split(c.Code, "\n")
	// indented code cannot start or end with a blank line, nor be empty
	indentable := c.Code != "" && !isBlankLine(lines[0]) && !isBlankLine(lines[len(lines)-1])
	if !c.Fenced() && indentable {
		for i, line := range lines {
			lines[i] = "    " + line
		}
		return strings.Join(lines, "\n")
	}

	var info []string
	if c.Language != "" {
		info = append(info, c.Language)
	}
	if w.cfg.extensions && c.Filename != "" {
		info = append(info, c.Filename)
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, "```"+strings.Join(info, " "))
	if c.Code != "" {
		out = append(out, lines...)
	}
	out = append(out, "```")
	return strings.Join(out, "\n")
}

func separatorCell(a model.Alignment, width int) string {
	switch a {
	case model.AlignLeft:
		return ":" + strings.Repeat("-", width-1)
	case model.AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	case model.AlignRight:
		return strings.Repeat("-", width-1) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

// minSeparatorWidth is the narrowest separator cell that still has three
// dashes
func minSeparatorWidth(a model.Alignment) int {
	switch a {
	case model.AlignLeft, model.AlignRight:
		return 4
	case model.AlignCenter:
		return 5
	default:
		return 3
	}
}

func (w markdownWriter) table(t *model.Table) []string {
	cols := t.ColCount()
	alignment := func(col int) model.Alignment {
		if col < len(t.Alignments) {
			return t.Alignments[col]
		}
		return model.AlignNone
	}

	rows := make([][]string, 0, len(t.Rows)+1)
	for _, row := range t.AllRows() {
		cells := make([]string, cols)
		for j := 0; j < cols && j < len(row.Cells); j++ {
			cells[j] = w.inlines(row.Cells[j].Content)
		}
		rows = append(rows, cells)
	}

	widths := make([]int, cols)
	for j := range widths {
		widths[j] = minSeparatorWidth(alignment(j))
		if !w.cfg.paddedTables {
			continue
		}
		for _, cells := range rows {
			if cw := runewidth.StringWidth(cells[j]); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	line := func(cells []string) string {
		if w.cfg.paddedTables {
			padded := make([]string, len(cells))
			for j, c := range cells {
				padded[j] = runewidth.FillRight(c, widths[j])
			}
			cells = padded
		}
		return "| " + strings.Join(cells, " | ") + " |"
	}

	seps := make([]string, cols)
	for j := range seps {
		seps[j] = separatorCell(alignment(j), widths[j])
	}

	lines := []string{line(rows[0]), "| " + strings.Join(seps, " | ") + " |"}
	for _, cells := range rows[1:] {
		lines = append(lines, line(cells))
	}
	return lines
}

var alignTags = map[model.Alignment]string{
	model.AlignLeft:   "Left",
	model.AlignCenter: "Center",
	model.AlignRight:  "Right",
}

func (w markdownWriter) align(a *model.Align) string {
	body, multiline := w.nodes(a.Content)
	tag, ok := alignTags[a.Alignment]
	if !w.cfg.extensions || !ok {
		return body
	}
	if multiline {
		return "<" + tag + ">\n" + body + "\n</" + tag + ">"
	}
	return "<" + tag + ">" + body + "</" + tag + ">"
}

// nodes writes mixed content. Runs of inlines are joined into one line of
// text; blocks are separated by blank lines. It reports whether any block
// was written.
func (w markdownWriter) nodes(nodes []model.Node) (string, bool) {
	var blocks []model.Block
	var run []model.Inline
	hasBlock := false
	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, &model.Paragraph{Content: run})
			run = nil
		}
	}
	for _, n := range nodes {
		switch n := n.(type) {
		case model.Block:
			flush()
			blocks = append(blocks, n)
			hasBlock = true
		case model.Inline:
			run = append(run, n)
		}
	}
	if !hasBlock {
		return w.inlines(run), false
	}
	flush()
	return w.blocks(blocks), true
}

func (w markdownWriter) inlines(inlines []model.Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		sb.WriteString(w.inline(in))
	}
	return sb.String()
}

func (w markdownWriter) inline(in model.Inline) string {
	switch in := in.(type) {
	case *model.Text:
		return in.Content
	case *model.Bold:
		return "**" + in.Content + "**"
	case *model.Italic:
		return "*" + in.Content + "*"
	case *model.Code:
		return "`" + in.Content + "`"
	case *model.Link:
		s := "[" + in.Content + "](" + in.URL
		if in.Title != "" {
			s += ` "` + in.Title + `"`
		}
		return s + ")"
	case *model.Image:
		s := "![" + in.Content + "](" + in.URL + ")"
		if !w.cfg.extensions {
			return s
		}
		var attrs []string
		if in.Size != nil {
			attrs = append(attrs, "size="+strconv.FormatFloat(*in.Size, 'f', -1, 64))
		}
		if in.CSS != "" {
			attrs = append(attrs, `css="`+in.CSS+`"`)
		}
		if len(attrs) > 0 {
			s += "{" + strings.Join(attrs, ", ") + "}"
		}
		return s
	default:
		return ""
	}
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
