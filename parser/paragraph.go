package parser

import (
	"strings"

	"github.com/tsawler/marktree/inline"
	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// parseParagraph is the fallback block parser. It always takes the first
// line and then continues until a blank line or a line that starts another
// block. The lines are trimmed and joined with single spaces.
func (p *Parser) parseParagraph(lines []string, start int) (model.Block, int, bool) {
	if start >= len(lines) {
		return nil, start, false
	}

	text := []string{strings.TrimSpace(lines[start])}
	i := start + 1
	for i < len(lines) && !isBlank(lines[i]) && !p.startsBlock(lines, i) {
		text = append(text, strings.TrimSpace(lines[i]))
		i++
	}

	return &model.Paragraph{Content: inline.Parse(strings.Join(text, " "))}, i, true
}

// startsBlock reports whether lines[i] would open a block other than a
// paragraph and therefore ends a running paragraph.
func (p *Parser) startsBlock(lines []string, i int) bool {
	line := lines[i]
	if isHorizontalRule(line) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	switch {
	case patterns.Heading.MatchString(trimmed),
		strings.HasPrefix(trimmed, ">"),
		strings.HasPrefix(trimmed, "```"),
		patterns.IsIndented(line),
		patterns.IsListItem(line),
		couldStartTable(lines, i):
		return true
	}
	return p.extensions && patterns.IsCustomTag(line)
}

// couldStartTable reports whether lines[i] has a pipe and the next line
// looks like a separator row.
func couldStartTable(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") || i+1 >= len(lines) {
		return false
	}
	next := strings.TrimSpace(lines[i+1])
	return strings.Contains(next, "|") && strings.Contains(next, "-")
}
