package parser

import (
	"strings"

	"github.com/tsawler/marktree/inline"
	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// parseHeading parses an ATX heading from a single line. A closing run of
// '#' characters is dropped.
func parseHeading(line string) (*model.Heading, bool) {
	m := patterns.Heading.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, false
	}
	text := strings.TrimSpace(m[2])
	text = patterns.HeadingTrailingHash.ReplaceAllString(text, "")
	return &model.Heading{
		Level:   len(m[1]),
		Content: inline.Parse(text),
	}, true
}

func parseHeadingBlock(lines []string, i int) (model.Block, int, bool) {
	h, ok := parseHeading(lines[i])
	if !ok {
		return nil, i, false
	}
	return h, i + 1, true
}

// isHorizontalRule reports whether line consists of three or more '-', '*'
// or '_' characters, optionally separated by spaces.
func isHorizontalRule(line string) bool {
	line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
	if len(line) < 3 {
		return false
	}
	for _, marker := range []string{"-", "*", "_"} {
		if strings.Trim(line, marker) == "" {
			return true
		}
	}
	return false
}

func parseHorizontalRule(lines []string, i int) (model.Block, int, bool) {
	if !isHorizontalRule(lines[i]) {
		return nil, i, false
	}
	return &model.HorizontalRule{}, i + 1, true
}
