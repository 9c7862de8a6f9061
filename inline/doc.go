// Package inline converts a span of markdown text into a flat, ordered list
// of inline nodes.
//
// # Tokenizing
//
// [Parse] is pure and total: it never fails, and text without markup comes
// back as a single [model.Text]:
//
//	nodes := inline.Parse("This has **bold** and [a link](url)")
//
// # Candidate Resolution
//
// Five candidate kinds are searched independently in the remaining text:
// images, links, bold, italic and inline code. At each step the candidate
// with the lowest start offset wins; on equal starts the longer span wins,
// then the kind listed first. Text before the winner becomes a [model.Text]
// (merged with a preceding Text), the winner becomes its typed node and the
// scan continues behind it.
//
// Matched content is never tokenized again, so "*a **b** c*" yields one
// [model.Italic] whose content is the literal "a **b** c".
//
// # Extended Image Attributes
//
// Images accept a trailing attribute block:
//
//	![alt](photo.png){size=0.5, css="rounded"}
//
// size is parsed as a float and clamped to [0,1]; an unparsable value leaves
// it unset. css is copied verbatim.
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'marktree.inline'.
func tracer() tracing.Trace {
	return tracing.Select("marktree.inline")
}
