package marktree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tsawler/marktree/export"
	"github.com/tsawler/marktree/format"
	"github.com/tsawler/marktree/internal/words"
	"github.com/tsawler/marktree/model"
	"github.com/tsawler/marktree/parser"
	"github.com/tsawler/marktree/rag"
)

func tracer() tracing.Trace {
	return tracing.Select("marktree")
}

// source holds the input text. It is shared by all Extractors derived from
// the same Open or FromReader call, so the input is read only once.
type source struct {
	once     sync.Once
	text     string
	format   format.Format
	warnings []Warning
	err      error
}

// Extractor provides a fluent interface for parsing markdown and exporting
// the document tree. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Input
	filename string
	reader   io.Reader
	loaded   *source

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		reader:   e.reader,
		loaded:   e.loaded,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// input returns the shared input, creating it on first use.
func (e *Extractor) input() *source {
	if e.loaded == nil {
		e.loaded = &source{}
	}
	return e.loaded
}

// load reads the input once and checks that it can be parsed as markdown.
func (e *Extractor) load() (*source, error) {
	src := e.input()
	src.once.Do(func() {
		src.text, src.format, src.warnings, src.err = e.read()
	})
	return src, src.err
}

func (e *Extractor) read() (string, format.Format, []Warning, error) {
	var data []byte
	var err error
	switch {
	case e.filename != "":
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return "", format.Unknown, nil, fmt.Errorf("failed to read %s: %w", e.filename, err)
		}
	case e.reader != nil:
		data, err = io.ReadAll(e.reader)
		if err != nil {
			return "", format.Unknown, nil, fmt.Errorf("failed to read input: %w", err)
		}
	default:
		return "", format.Unknown, nil, fmt.Errorf("no input specified")
	}

	detected := format.DetectFromContent(data)
	byName := format.Unknown
	if e.filename != "" {
		byName = format.Detect(e.filename)
	}
	switch {
	case byName != format.Unknown && !byName.Parseable():
		return "", byName, nil, fmt.Errorf("unsupported file format: %s", byName)
	case detected == format.HTML && byName.Parseable():
		// markdown files may open with raw HTML
	case !detected.Parseable():
		return "", detected, nil, fmt.Errorf("unsupported input format: %s", detected)
	}

	var warnings []Warning
	if e.filename != "" && byName == format.Unknown {
		warnings = append(warnings, Warning{
			Code:    WarnUnrecognizedExtension,
			Message: fmt.Sprintf("%s: format detected from content as %s", e.filename, detected),
		})
	}
	if detected == format.Text && len(bytes.TrimSpace(data)) > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnPlainText,
			Message: "no markdown block syntax found",
		})
	}
	f := detected
	if byName.Parseable() {
		f = byName
	}
	tracer().Debugf("marktree: read %d bytes as %s", len(data), f)
	return string(data), f, warnings, nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithoutExtensions disables the extended syntax. Alignment tags are read
// as text, and exports leave out code block filenames, image attributes and
// alignment wrappers.
//
// Example:
//
//	md, _, err := marktree.Open("doc.md").WithoutExtensions().Markdown()
func (e *Extractor) WithoutExtensions() *Extractor {
	newExt := e.clone()
	newExt.options.extensions = false
	return newExt
}

// ExpandTabs replaces tabs in leading whitespace with width spaces before
// parsing, so tab-indented lists nest as expected.
//
// Example:
//
//	doc, _, err := marktree.Open("doc.md").ExpandTabs(4).Document()
func (e *Extractor) ExpandTabs(width int) *Extractor {
	newExt := e.clone()
	if width < 0 {
		newExt.err = fmt.Errorf("invalid tab width %d", width)
		return newExt
	}
	newExt.options.tabWidth = width
	return newExt
}

// PaddedTables pads markdown table columns to equal display width.
//
// Example:
//
//	md, _, err := marktree.Open("doc.md").PaddedTables().Markdown()
func (e *Extractor) PaddedTables() *Extractor {
	newExt := e.clone()
	newExt.options.paddedTables = true
	return newExt
}

// FullPage makes HTML() return a complete page instead of a fragment. An
// empty title selects the text of the first heading.
//
// Example:
//
//	page, _, err := marktree.Open("doc.md").FullPage("").HTML()
func (e *Extractor) FullPage(title string) *Extractor {
	newExt := e.clone()
	newExt.options.fullPage = true
	newExt.options.title = title
	return newExt
}

// Indent pretty-prints JSON() output with the given indent string.
func (e *Extractor) Indent(indent string) *Extractor {
	newExt := e.clone()
	newExt.options.indent = indent
	return newExt
}

// ============================================================================
// Terminal Operations (parse and return results)
// ============================================================================

// Document parses the input and returns the document tree.
//
// Returns the document, any warnings encountered while reading the input,
// and an error if the input could not be read or is not markdown.
//
// Example:
//
//	doc, warnings, err := marktree.Open("README.md").Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", marktree.FormatWarnings(warnings))
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	src, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	doc := e.newParser().Parse(src.text)
	warnings := append([]Warning(nil), src.warnings...)
	if len(doc.Blocks) == 0 {
		warnings = append(warnings, Warning{Code: WarnEmptyDocument, Message: "input has no content"})
	}
	return doc, warnings, nil
}

func (e *Extractor) newParser() *parser.Parser {
	var opts []parser.Option
	if !e.options.extensions {
		opts = append(opts, parser.WithoutExtensions())
	}
	if e.options.tabWidth > 0 {
		opts = append(opts, parser.WithTabExpansion(e.options.tabWidth))
	}
	return parser.New(opts...)
}

// Markdown parses the input and writes it back as canonical markdown.
//
// Example:
//
//	md, _, err := marktree.Open("messy.md").Markdown()
func (e *Extractor) Markdown() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	return export.Markdown(doc, e.options.exportOptions()...), warnings, nil
}

// HTML parses the input and renders it as HTML.
//
// Example:
//
//	html, _, err := marktree.Open("README.md").HTML()
func (e *Extractor) HTML() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	out, err := export.HTML(doc, e.options.exportOptions()...)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// JSON parses the input and encodes the document tree as JSON.
//
// Example:
//
//	data, _, err := marktree.Open("README.md").Indent("  ").JSON()
func (e *Extractor) JSON() ([]byte, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, nil, err
	}
	out, err := export.JSON(doc, e.options.exportOptions()...)
	if err != nil {
		return nil, warnings, err
	}
	return out, warnings, nil
}

// Text parses the input and returns its plain text, one block per
// paragraph, without any markup.
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}
	return doc.PlainText(), warnings, nil
}

// Export parses the input and writes it to w in the given format.
//
// Example:
//
//	_, err := marktree.Open("README.md").Export(os.Stdout, export.FormatHTML)
func (e *Extractor) Export(w io.Writer, f export.Format) ([]Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, err
	}
	if err := export.Write(w, doc, f, e.options.exportOptions()...); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// Outline returns the headings of the document arranged as a tree.
//
// Example:
//
//	for _, node := range marktree.Must(marktree.Open("README.md").Outline()) {
//	    fmt.Println(node.Text)
//	}
func (e *Extractor) Outline() ([]*model.OutlineNode, error) {
	doc, _, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Outline(), nil
}

// Format returns the detected format of the input.
//
// Example:
//
//	f, err := marktree.Open("notes.txt").Format()
func (e *Extractor) Format() (format.Format, error) {
	if e.err != nil {
		return format.Unknown, e.err
	}
	src, err := e.load()
	if err != nil {
		return format.Unknown, err
	}
	return src.format, nil
}

// Tables returns the top-level tables of the document.
func (e *Extractor) Tables() ([]*model.Table, error) {
	doc, _, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Tables(), nil
}

// Chunks parses the input and splits it into heading based chunks for
// retrieval pipelines. The chunk text follows the export options of the
// Extractor.
//
// Example:
//
//	chunks, _, err := marktree.Open("guide.md").Chunks()
//	jsonl, err := chunks.ToJSONL()
func (e *Extractor) Chunks() (*rag.ChunkCollection, []Warning, error) {
	return e.ChunksWithConfig(rag.DefaultChunkerConfig())
}

// ChunksWithConfig is Chunks with a custom chunker configuration.
//
// Example:
//
//	config := rag.DefaultChunkerConfig()
//	config.MaxWords = 100
//	chunks, _, err := marktree.Open("guide.md").ChunksWithConfig(config)
func (e *Extractor) ChunksWithConfig(config rag.ChunkerConfig) (*rag.ChunkCollection, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, nil, err
	}
	config.ExportOptions = append(e.options.exportOptions(), config.ExportOptions...)
	return rag.NewChunkerWithConfig(config).Chunk(doc), warnings, nil
}

// Stats describes the size and shape of a document.
type Stats struct {
	model.Stats

	// Bytes is the size of the input.
	Bytes int
	// Words counts the words of the plain text.
	Words int
	// Characters counts the runes of the plain text.
	Characters int
	// Headings counts the top-level headings.
	Headings int
}

// Stats parses the input and counts its nodes and words.
//
// Example:
//
//	stats := marktree.Must(marktree.Open("README.md").Stats())
//	fmt.Println(stats.Words, "words")
func (e *Extractor) Stats() (Stats, error) {
	doc, _, err := e.Document()
	if err != nil {
		return Stats{}, err
	}
	text := doc.PlainText()
	return Stats{
		Stats:      doc.Stats(),
		Bytes:      len(e.loaded.text),
		Words:      words.Count(text),
		Characters: utf8.RuneCountInString(text),
		Headings:   len(doc.Headings()),
	}, nil
}
