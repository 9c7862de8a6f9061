package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/derekparker/trie"

	"github.com/tsawler/marktree/model"
)

// Format is an output format
type Format int

const (
	// FormatMarkdown writes canonical markdown
	FormatMarkdown Format = iota
	// FormatHTML writes HTML
	FormatHTML
	// FormatJSON writes the tagged JSON tree
	FormatJSON
)

// String returns the name of the format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FileExtension returns the usual file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

var formatNames = newFormatIndex()

func newFormatIndex() *trie.Trie {
	t := trie.New()
	for _, f := range []Format{FormatMarkdown, FormatHTML, FormatJSON} {
		t.Add(f.String(), f)
	}
	t.Add("md", FormatMarkdown)
	t.Add("htm", FormatHTML)
	return t
}

// ParseFormat resolves a format name. Any unambiguous prefix of a name is
// accepted, so "j" selects JSON. Matching ignores case.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, fmt.Errorf("empty format name")
	}
	if node, ok := formatNames.Find(name); ok {
		return node.Meta().(Format), nil
	}

	candidates := make(map[Format]bool)
	for _, key := range formatNames.PrefixSearch(name) {
		if node, ok := formatNames.Find(key); ok {
			candidates[node.Meta().(Format)] = true
		}
	}
	switch len(candidates) {
	case 0:
		return 0, fmt.Errorf("unknown format %q", name)
	case 1:
		for f := range candidates {
			return f, nil
		}
	}
	var names []string
	for f := range candidates {
		names = append(names, f.String())
	}
	sort.Strings(names)
	return 0, fmt.Errorf("ambiguous format %q: %s", name, strings.Join(names, ", "))
}

// Write exports doc to w in the given format
func Write(w io.Writer, doc *model.Document, f Format, opts ...Option) error {
	var out []byte
	switch f {
	case FormatMarkdown:
		out = []byte(Markdown(doc, opts...))
	case FormatHTML:
		s, err := HTML(doc, opts...)
		if err != nil {
			return err
		}
		out = []byte(s)
	case FormatJSON:
		b, err := JSON(doc, opts...)
		if err != nil {
			return err
		}
		out = b
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write %s output: %w", f, err)
	}
	return nil
}
