package parser

import (
	"strings"

	"github.com/tsawler/marktree/model"
	"github.com/tsawler/marktree/tables"
)

// blockFunc tries to parse a block starting at lines[i]. On success it
// returns the block and the index of the first line after it.
type blockFunc func(lines []string, i int) (model.Block, int, bool)

type blockParser struct {
	name  string
	parse blockFunc
}

// Parser parses markdown documents
type Parser struct {
	extensions bool
	tabWidth   int
	parsers    []blockParser
}

// Option configures a Parser
type Option func(*Parser)

// WithoutExtensions disables alignment tags. Lines that would open an
// alignment block are read as ordinary text.
func WithoutExtensions() Option {
	return func(p *Parser) {
		p.extensions = false
	}
}

// WithTabExpansion replaces every tab in a line's leading whitespace with
// width spaces before parsing. A width of zero or less leaves tabs alone.
func WithTabExpansion(width int) Option {
	return func(p *Parser) {
		p.tabWidth = width
	}
}

// New creates a parser with the given options
func New(opts ...Option) *Parser {
	p := &Parser{extensions: true}
	for _, opt := range opts {
		opt(p)
	}

	if p.extensions {
		p.parsers = append(p.parsers, blockParser{"align", p.parseAlign})
	}
	p.parsers = append(p.parsers,
		blockParser{"code", parseCodeBlock},
		blockParser{"heading", parseHeadingBlock},
		blockParser{"rule", parseHorizontalRule},
		blockParser{"table", parseTable},
		blockParser{"list", parseListBlock},
		blockParser{"quote", parseQuote},
		blockParser{"paragraph", p.parseParagraph},
	)
	return p
}

var defaultParser = New()

// Parse parses markdown text with the default options
func Parse(text string) *model.Document {
	return defaultParser.Parse(text)
}

// Parse parses markdown text into a document
func (p *Parser) Parse(text string) *model.Document {
	lines := p.splitLines(text)
	return model.NewDocument(p.parseBlocks(lines))
}

func (p *Parser) splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if p.tabWidth > 0 {
		for i, line := range lines {
			lines[i] = expandLeadingTabs(line, p.tabWidth)
		}
	}
	return lines
}

// parseBlocks runs the dispatcher over lines
func (p *Parser) parseBlocks(lines []string) []model.Block {
	blocks := make([]model.Block, 0)
	i := 0
	for i < len(lines) {
		if isBlank(lines[i]) {
			i++
			continue
		}

		matched := false
		line := lines[i]
		for _, bp := range p.parsers {
			block, next, ok := bp.parse(lines, i)
			if !ok {
				continue
			}
			tracer().Debugf("parser: %s at lines %d-%d", bp.name, i, next-1)
			blocks = append(blocks, block)
			// a parser may hand back the rest of a line it rewrote
			if next < i || (next == i && lines[i] == line) {
				next = i + 1
			}
			i = next
			matched = true
			break
		}
		if !matched {
			tracer().Errorf("parser: no block parser matched line %d", i)
			i++
		}
	}
	return blocks
}

func parseTable(lines []string, i int) (model.Block, int, bool) {
	table, next, ok := tables.Parse(lines, i)
	if !ok {
		return nil, i, false
	}
	return table, next, true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// leadingWhitespace returns the number of leading whitespace bytes
func leadingWhitespace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t\r\n\v\f"))
}

func expandLeadingTabs(line string, width int) string {
	n := leadingWhitespace(line)
	if n == 0 || !strings.Contains(line[:n], "\t") {
		return line
	}
	return strings.ReplaceAll(line[:n], "\t", strings.Repeat(" ", width)) + line[n:]
}
