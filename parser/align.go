package parser

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/marktree/inline"
	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// alignOpening is a recognized opening alignment tag
type alignOpening struct {
	tag       string // lower-case tag name: "align", "left", "center" or "right"
	alignment model.Alignment
	rest      string // text after the opening tag
}

// matchAlignOpening recognizes <Align left|center|right> and the shorthand
// <Left>, <Center> and <Right>, ignoring case.
func matchAlignOpening(line string) (alignOpening, bool) {
	line = strings.TrimSpace(line)
	var tag, keyword, rest string
	if m := patterns.AlignTag.FindStringSubmatch(line); m != nil {
		tag, keyword, rest = "align", m[1], m[2]
	} else if m := patterns.ShortAlignTag.FindStringSubmatch(line); m != nil {
		keyword, rest = m[1], m[2]
		tag = cases.Fold().String(keyword)
	} else {
		return alignOpening{}, false
	}

	alignment, ok := model.ParseAlignment(cases.Fold().String(keyword))
	if !ok {
		return alignOpening{}, false
	}
	return alignOpening{tag: tag, alignment: alignment, rest: rest}, true
}

// parseAlign parses an alignment block. Content closed on the opening line
// is tokenized inline; a multi-line body is parsed as blocks. Without a
// closing tag there is no match.
//
// Text after the closing tag replaces the closing line in lines, and the
// returned index points at that line so the dispatcher parses it next.
func (p *Parser) parseAlign(lines []string, start int) (model.Block, int, bool) {
	open, ok := matchAlignOpening(lines[start])
	if !ok {
		return nil, start, false
	}
	closing := patterns.ClosingTags[open.tag]

	if loc := closing.FindStringSubmatchIndex(open.rest); loc != nil {
		a := &model.Align{
			Alignment: open.alignment,
			Content:   inlineNodes(inline.Parse(strings.TrimSpace(open.rest[loc[2]:loc[3]]))),
		}
		return a, keepTail(lines, start, open.rest[loc[1]:]), true
	}

	var body []string
	if open.rest != "" {
		body = append(body, open.rest)
	}
	for i := start + 1; i < len(lines); i++ {
		if loc := closing.FindStringSubmatchIndex(lines[i]); loc != nil {
			line := lines[i]
			body = append(body, line[loc[2]:loc[3]])
			blocks := p.parseBlocks(strings.Split(strings.TrimSpace(strings.Join(body, "\n")), "\n"))
			nodes := make([]model.Node, len(blocks))
			for j, b := range blocks {
				nodes[j] = b
			}
			return &model.Align{Alignment: open.alignment, Content: nodes}, keepTail(lines, i, line[loc[1]:]), true
		}
		body = append(body, strings.TrimRight(lines[i], " \t\r"))
	}

	tracer().Debugf("parser: <%s> at line %d is never closed", open.tag, start)
	return nil, start, false
}

// keepTail stores non-blank text that followed a closing tag in lines[i] and
// returns i, or returns i+1 when there is none.
func keepTail(lines []string, i int, tail string) int {
	tail = strings.TrimSpace(tail)
	if tail == "" {
		return i + 1
	}
	lines[i] = tail
	return i
}
