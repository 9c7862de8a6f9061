package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Markdown, "Markdown"},
		{Text, "Text"},
		{HTML, "HTML"},
		{PDF, "PDF"},
		{Archive, "Archive"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Markdown, ".md"},
		{Text, ".txt"},
		{HTML, ".html"},
		{PDF, ".pdf"},
		{Archive, ".zip"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Parseable(t *testing.T) {
	for _, f := range []Format{Markdown, Text} {
		if !f.Parseable() {
			t.Errorf("%v.Parseable() = false, want true", f)
		}
	}
	for _, f := range []Format{Unknown, HTML, PDF, Archive} {
		if f.Parseable() {
			t.Errorf("%v.Parseable() = true, want false", f)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"README.md", Markdown},
		{"README.MD", Markdown},
		{"notes.markdown", Markdown},
		{"notes.mkd", Markdown},
		{"notes.txt", Text},
		{"page.html", HTML},
		{"page.HTM", HTML},
		{"paper.pdf", PDF},
		{"report.docx", Archive},
		{"book.epub", Archive},
		{"document", Unknown},
		{"", Unknown},
		{"archive.tar.gz", Unknown},
		{"/path/to/file.md", Markdown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PDF magic bytes",
			data: []byte("%PDF-1.4"),
			want: PDF,
		},
		{
			name: "ZIP magic bytes",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00},
			want: Archive,
		},
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with whitespace before DOCTYPE",
			data: []byte("  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "binary data",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			want: Unknown,
		},
		{
			name: "invalid utf-8",
			data: []byte{'a', 0xff, 0xfe, 'b'},
			want: Unknown,
		},
		{
			name: "heading",
			data: []byte("# Title\n\ntext"),
			want: Markdown,
		},
		{
			name: "list after prose",
			data: []byte("Intro\n\n- one\n- two"),
			want: Markdown,
		},
		{
			name: "code fence",
			data: []byte("```go\nx\n```"),
			want: Markdown,
		},
		{
			name: "table",
			data: []byte("| a | b |\n|---|---|"),
			want: Markdown,
		},
		{
			name: "plain prose",
			data: []byte("Hello, World!\nSecond line."),
			want: Text,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Text,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromContent(tt.data); got != tt.want {
				t.Errorf("DetectFromContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromContent_TruncatedRune(t *testing.T) {
	// a multi-byte rune cut by the sniff window is still text
	data := []byte(strings.Repeat("a", sniffLen-1) + "é")
	if got := DetectFromContent(data); got != Text {
		t.Errorf("DetectFromContent() = %v, want Text", got)
	}
}

func TestDetectFromReader(t *testing.T) {
	format, err := DetectFromReader(bytes.NewReader([]byte("## Notes\n")))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Markdown {
		t.Errorf("DetectFromReader() = %v, want Markdown", format)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDetectFromReader_Error(t *testing.T) {
	if _, err := DetectFromReader(errReader{}); err == nil {
		t.Error("DetectFromReader() error = nil, want error")
	}
}
