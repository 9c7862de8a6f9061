// Package marktree provides a fluent API for parsing markdown into a typed
// document tree and exporting it again.
//
// Basic usage:
//
//	doc, warnings, err := marktree.Open("README.md").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", marktree.FormatWarnings(warnings))
//	}
//
// With options:
//
//	html, _, err := marktree.Open("notes.md").
//	    WithoutExtensions().
//	    FullPage("Notes").
//	    HTML()
//
// Chunks for retrieval pipelines:
//
//	chunks, _, err := marktree.Open("guide.md").Chunks()
//	jsonl, err := chunks.ToJSONL()
//
// For lower-level access, the parser, model, export and rag packages are
// also available.
package marktree

import (
	"io"
	"strings"
)

// Open reads a markdown file and returns an Extractor for fluent
// configuration. The file is read when a terminal operation runs.
//
// Example:
//
//	doc, warnings, err := marktree.Open("README.md").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		loaded:   &source{},
		options:  defaultOptions(),
	}
}

// FromString creates an Extractor for markdown text already in memory.
//
// Example:
//
//	html, _, err := marktree.FromString("# Hello").HTML()
func FromString(text string) *Extractor {
	return FromReader(strings.NewReader(text))
}

// FromReader creates an Extractor that reads markdown from r. The reader is
// consumed by the first terminal operation; the caller is responsible for
// closing it.
//
// Example:
//
//	doc, _, err := marktree.FromReader(os.Stdin).Document()
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		loaded:  &source{},
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	stats := marktree.Must(marktree.Open("README.md").Stats())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a call to a terminal operation returning
// warnings, such as Document() or HTML(), and panics if the error is
// non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	md := marktree.MustValue(marktree.FromString(src).Markdown())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
