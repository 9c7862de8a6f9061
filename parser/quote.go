package parser

import (
	"strings"

	"github.com/tsawler/marktree/inline"
	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

func isQuoteLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ">")
}

// parseQuote collects a block quote. Blank lines continue the quote only if
// another quote line follows; lines without '>' continue it when indented
// by at least two spaces.
func parseQuote(lines []string, start int) (model.Block, int, bool) {
	if !isQuoteLine(lines[start]) {
		return nil, start, false
	}

	var quoted []string
	i := start
	for i < len(lines) {
		line := lines[i]
		switch {
		case isBlank(line):
			if i+1 < len(lines) && isQuoteLine(lines[i+1]) {
				quoted = append(quoted, "")
				i++
				continue
			}
		case isQuoteLine(line):
			quoted = append(quoted, line)
			i++
			continue
		case leadingWhitespace(line) >= 2:
			quoted = append(quoted, line)
			i++
			continue
		}
		break
	}

	level := quoteLevel(quoted[0])
	stripped := make([]string, len(quoted))
	for j, line := range quoted {
		for k := 0; k < level; k++ {
			line = patterns.RemoveQuotePrefix(line)
		}
		stripped[j] = line
	}

	return &model.Quote{
		Level:   level,
		Content: quoteParagraphs(stripped),
	}, i, true
}

// quoteLevel counts the leading '>' markers of line, allowing whitespace
// between them.
func quoteLevel(line string) int {
	level := 0
	rest := strings.TrimSpace(line)
	for strings.HasPrefix(rest, ">") {
		level++
		rest = strings.TrimSpace(rest[1:])
	}
	if level < 1 {
		return 1
	}
	return level
}

// quoteParagraphs splits the quote body at blank lines and tokenizes each
// chunk as one paragraph.
func quoteParagraphs(lines []string) []model.Node {
	var nodes []model.Node
	var chunk []string
	flush := func() {
		if len(chunk) == 0 {
			return
		}
		nodes = append(nodes, &model.Paragraph{Content: inline.Parse(strings.Join(chunk, " "))})
		chunk = nil
	}
	for _, line := range lines {
		if isBlank(line) {
			flush()
			continue
		}
		chunk = append(chunk, strings.TrimSpace(line))
	}
	flush()
	return nodes
}
