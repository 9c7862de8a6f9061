package parser

import (
	"strconv"
	"strings"

	"github.com/tsawler/marktree/inline"
	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// itemMatch describes a line that has the shape of a list item
type itemMatch struct {
	ordered bool
	indent  int    // leading whitespace in bytes
	marker  string // "-", "*", "+", or the number with its "." or ")"
	number  int
	content string
}

// markerWidth is the marker length plus the following space
func (m itemMatch) markerWidth() int {
	return len(m.marker) + 1
}

func matchListItem(line string) (itemMatch, bool) {
	if m := patterns.UnorderedItem.FindStringSubmatch(line); m != nil {
		return itemMatch{
			indent:  len(m[1]),
			marker:  m[2],
			content: m[3],
		}, true
	}
	if m := patterns.OrderedItem.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			// digit runs too long for an int still make an item
			n = 0
		}
		return itemMatch{
			ordered: true,
			indent:  len(m[1]),
			marker:  m[2] + m[3],
			number:  n,
			content: m[4],
		}, true
	}
	return itemMatch{}, false
}

func parseListBlock(lines []string, i int) (model.Block, int, bool) {
	list, next, ok := parseList(lines, i, 0)
	if !ok {
		return nil, i, false
	}
	return list, next, true
}

// parseList parses a list starting at lines[start]. level is the indent
// level of an item written without leading whitespace.
func parseList(lines []string, start, level int) (*model.List, int, bool) {
	if start >= len(lines) {
		return nil, start, false
	}
	first, ok := matchListItem(lines[start])
	if !ok {
		return nil, start, false
	}

	var items []*model.ListItem
	i := start
	for i < len(lines) {
		line := lines[i]
		m, ok := matchListItem(line)
		if !ok {
			// text indented past the first marker belongs to the last item;
			// anything else goes back to the dispatcher
			if !isBlank(line) && len(items) > 0 && leadingWhitespace(line) > first.indent {
				last := items[len(items)-1]
				last.Content = append(last.Content, inlineNodes(inline.Parse(strings.TrimSpace(line)))...)
				i++
				continue
			}
			break
		}
		if m.ordered != first.ordered {
			break
		}
		item, next := parseListItem(lines, i, m, level)
		items = append(items, item)
		i = next
	}

	if len(items) == 0 {
		return nil, start, false
	}

	list := &model.List{Ordered: first.ordered, Items: items}
	if first.ordered {
		n := first.number
		list.Start = &n
	}
	return list, i, true
}

// parseListItem collects the item at lines[start] with its continuation
// lines and parses the merged content.
func parseListItem(lines []string, start int, m itemMatch, level int) (*model.ListItem, int) {
	base := m.indent
	content := []string{m.content}

	i := start + 1
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			// a blank line belongs to the item only if the item goes on
			if i+1 < len(lines) && leadingWhitespace(lines[i+1]) > base {
				content = append(content, "")
				i++
				continue
			}
			break
		}

		indent := leadingWhitespace(line)
		if indent <= base {
			break
		}
		content = append(content, dedent(line, base+m.markerWidth()))
		i++
	}

	item := &model.ListItem{IndentLevel: level + base/2}
	item.Content = parseItemContent(strings.TrimSpace(strings.Join(content, "\n")), item.IndentLevel)
	return item, i
}

// parseItemContent tokenizes item text. Multi-line content with list-shaped
// lines is walked line by line and the list-shaped runs become nested lists.
// Otherwise the lines are tokenized together, so Text nodes of a wrapped item
// keep their "\n" separators, unlike paragraphs which join lines with spaces.
func parseItemContent(text string, level int) []model.Node {
	if !strings.Contains(text, "\n") || !hasListItem(text) {
		return inlineNodes(inline.Parse(text))
	}

	var nodes []model.Node
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		if patterns.IsListItem(lines[i]) {
			if nested, next, ok := parseList(lines, i, level+1); ok {
				nodes = append(nodes, nested)
				i = next
				continue
			}
		}
		if !isBlank(lines[i]) {
			nodes = append(nodes, inlineNodes(inline.Parse(strings.TrimSpace(lines[i])))...)
		}
		i++
	}
	return nodes
}

func hasListItem(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if patterns.IsListItem(line) {
			return true
		}
	}
	return false
}

// dedent removes up to n bytes of leading whitespace
func dedent(line string, n int) string {
	if ws := leadingWhitespace(line); ws < n {
		n = ws
	}
	return line[n:]
}

func inlineNodes(inlines []model.Inline) []model.Node {
	nodes := make([]model.Node, len(inlines))
	for i, in := range inlines {
		nodes[i] = in
	}
	return nodes
}
