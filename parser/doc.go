// Package parser turns markdown text into a [model.Document].
//
// # Block Dispatch
//
// [Parse] splits the input into lines and walks them once. Blank lines
// between blocks are skipped; at every other line the block parsers are
// tried in a fixed order and the first match wins:
//
//  1. alignment tags (<Align center>, <Center>, ...)
//  2. code blocks (fenced or indented)
//  3. headings
//  4. horizontal rules
//  5. tables
//  6. lists
//  7. quotes
//  8. paragraphs
//
// The order matters: a line such as "- item" is always a list item because
// lists are tried before the paragraph fallback. The paragraph parser always
// consumes at least one line, so parsing terminates on any input.
//
// # Options
//
// A [Parser] can be configured with options:
//
//	p := parser.New(parser.WithoutExtensions(), parser.WithTabExpansion(4))
//	doc := p.Parse(text)
//
// [Parse] uses a parser with default options. Parsers hold no mutable state
// and may be shared between goroutines.
//
// # Degenerate Input
//
// Parsing never fails. An unterminated code fence runs to the end of the
// input, an unterminated alignment tag is read as ordinary text, and empty
// input yields a document without blocks.
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'marktree.parser'.
func tracer() tracing.Trace {
	return tracing.Select("marktree.parser")
}
