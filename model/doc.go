// Package model provides the document tree produced by the markdown parser.
//
// This package defines the user-facing data structures that represent the
// semantic structure of a markdown document. All parsing operations produce
// these types, and all exporters consume them, making them the primary API
// for working with parsed content.
//
// # Document Structure
//
// The [Document] type holds an ordered list of [Block] values:
//
//	doc := parser.Parse(text)
//	for _, block := range doc.Blocks {
//	    switch b := block.(type) {
//	    case *model.Heading:
//	        fmt.Println(b.Level, model.InlineText(b.Content))
//	    }
//	}
//
// # Blocks
//
// Blocks are line-spanning units. The concrete types are:
//
//   - [Heading] - ATX headings (levels 1-6)
//   - [Paragraph] - runs of text lines
//   - [List] - ordered or unordered lists, possibly nested
//   - [Quote] - block quotes with a nesting level
//   - [CodeBlock] - fenced or indented code, with optional language and filename
//   - [Table] - pipe tables with per-column alignment
//   - [HorizontalRule] - thematic breaks
//   - [Align] - explicit left/center/right alignment blocks
//
// # Inlines
//
// Inline nodes are span-level units inside a block: [Text], [Bold], [Italic],
// [Code], [Link] and [Image]. Inline content is flat: a [Bold] inside an
// [Italic] is kept as literal text of the outer node.
//
// # Closed Variants
//
// [Block], [Inline] and [Node] carry an unexported marker method, so the set
// of variants is fixed to the types in this package. Consumers type-switch
// over them; [Walk] visits every node in insertion order.
//
// Nodes are built once by the parser and are not modified afterwards.
package model
