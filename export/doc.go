// Package export serializes parsed markdown documents.
//
// Three output formats are supported:
//
//   - Markdown: canonical markdown text that parses back to the same tree
//   - HTML: a fragment or a complete page rendered with golang.org/x/net/html
//   - JSON: a tagged tree with one object per node
//
// All exporters take the same functional options; options that do not
// apply to a format are ignored.
//
// # Basic Usage
//
//	doc := parser.Parse(src)
//	md := export.Markdown(doc, export.WithPaddedTables())
//	page, err := export.HTML(doc, export.WithFragment(false), export.WithTitle("Notes"))
//
// To write to a stream in a format chosen at runtime:
//
//	f, err := export.ParseFormat("html")
//	err = export.Write(os.Stdout, doc, f)
package export
