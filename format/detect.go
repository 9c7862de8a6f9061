// Package format detects whether an input file is markdown source.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/marktree/internal/patterns"
)

// Format represents a kind of input file.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markdown indicates markdown source.
	Markdown
	// Text indicates plain text, which parses as markdown.
	Text
	// HTML indicates an HTML document.
	HTML
	// PDF indicates a PDF document.
	PDF
	// Archive indicates a ZIP archive such as DOCX or EPUB.
	Archive
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	case Archive:
		return "Archive"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	case PDF:
		return ".pdf"
	case Archive:
		return ".zip"
	default:
		return ""
	}
}

// Parseable reports whether files of this format can be parsed as markdown.
func (f Format) Parseable() bool {
	return f == Markdown || f == Text
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".mdown", ".mkd", ".mkdn":
		return Markdown
	case ".txt", ".text":
		return Text
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".pdf":
		return PDF
	case ".zip", ".docx", ".odt", ".xlsx", ".pptx", ".epub":
		return Archive
	default:
		return Unknown
	}
}

// sniffLen is the number of leading bytes inspected by DetectFromContent.
const sniffLen = 4096

// DetectFromContent inspects the leading bytes of a file. Binary formats
// are recognized by their magic bytes. Valid UTF-8 text is Markdown when a
// line has block syntax such as a heading, list item or code fence, and
// Text otherwise.
func DetectFromContent(data []byte) Format {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}):
		return Archive
	case detectHTMLMagic(data):
		return HTML
	case !looksLikeText(data):
		return Unknown
	}

	for _, line := range strings.Split(string(data), "\n") {
		if hasBlockSyntax(line) {
			return Markdown
		}
	}
	return Text
}

// DetectFromReader reads the leading bytes of r and inspects them with
// DetectFromContent.
func DetectFromReader(r io.Reader) (Format, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromContent(buf[:n]), nil
}

func hasBlockSyntax(line string) bool {
	trimmed := strings.TrimSpace(line)
	return patterns.Heading.MatchString(trimmed) ||
		patterns.FenceStart.MatchString(trimmed) ||
		patterns.IsListItem(line) ||
		strings.HasPrefix(trimmed, ">") ||
		patterns.IsCustomTag(trimmed) ||
		(strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") >= 2)
}

// looksLikeText reports whether data is UTF-8 without control characters
// other than whitespace. A rune cut off at the end of the sniffed window is
// tolerated.
func looksLikeText(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		switch {
		case r == utf8.RuneError && size == 1:
			return len(data) < utf8.UTFMax && !utf8.FullRune(data)
		case r < 0x20 && r != '\t' && r != '\n' && r != '\r' && r != '\f':
			return false
		}
		data = data[size:]
	}
	return true
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
