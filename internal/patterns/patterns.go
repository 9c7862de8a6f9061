// Package patterns holds the compiled regular expressions shared by the
// block and inline parsers.
//
// All patterns are compiled once at package initialization and are only read
// afterwards, so they are safe for concurrent use.
package patterns

import "regexp"

// Inline elements
var (
	// Image matches ![alt](url) with an optional {attrs} suffix
	Image = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)(\{[^}]+\})?`)
	// Link matches [text](url) or [text](url "title")
	Link = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+?)(?:\s+"([^"]+)")?\)`)
	// Bold matches **text** or __text__; group 1 or 2 holds the content
	Bold = regexp.MustCompile(`\*\*([^*_]+?)\*\*|__([^*_]+?)__`)
	// InlineCode matches `code`
	InlineCode = regexp.MustCompile("`([^`]+)`")

	ImageSizeAttr = regexp.MustCompile(`size\s*=\s*([0-9.]+)`)
	ImageCSSAttr  = regexp.MustCompile(`css\s*=\s*"([^"]+)"`)
)

// Block elements
var (
	Heading             = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	HeadingTrailingHash = regexp.MustCompile(`\s*#+\s*$`)

	FenceStart    = regexp.MustCompile("^```\\s*(.*)$")
	FenceEnd      = regexp.MustCompile("^```\\s*$")
	Indent        = regexp.MustCompile(`^(    |\t)`)
	IndentCapture = regexp.MustCompile(`^(    |\t)(.*)$`)

	UnorderedItem = regexp.MustCompile(`^(\s*)([-*+])\s+(.*)$`)
	OrderedItem   = regexp.MustCompile(`^(\s*)(\d+)([.)])\s+(.*)$`)

	UnorderedItemStart = regexp.MustCompile(`^\s*[-*+]\s+`)
	OrderedItemStart   = regexp.MustCompile(`^\s*\d+[.)]\s+`)

	QuotePrefix = regexp.MustCompile(`^\s*>\s?`)

	TableSeparator = regexp.MustCompile(`^:?-{3,}:?$`)

	// AlignTag matches <Align left|center|right> and captures the keyword and
	// the rest of the line
	AlignTag = regexp.MustCompile(`(?i)^<Align\s+(left|center|right)>(.*)$`)
	// ShortAlignTag matches <Left>, <Center> or <Right> and the rest of the line
	ShortAlignTag = regexp.MustCompile(`(?i)^<(left|center|right)>(.*)$`)
	// CustomTag matches the start of any alignment tag
	CustomTag = regexp.MustCompile(`(?i)^<(Align|Left|Center|Right)`)

	// ClosingTags maps a lower-case tag name to the pattern of its closing
	// tag; group 1 holds the text before the tag
	ClosingTags = map[string]*regexp.Regexp{
		"align":  regexp.MustCompile(`(?i)^(.*?)</Align>`),
		"left":   regexp.MustCompile(`(?i)^(.*?)</Left>`),
		"center": regexp.MustCompile(`(?i)^(.*?)</Center>`),
		"right":  regexp.MustCompile(`(?i)^(.*?)</Right>`),
	}
)

// IsIndented reports whether line starts with 4 spaces or a tab
func IsIndented(line string) bool {
	return Indent.MatchString(line)
}

// IsListItem reports whether line has the shape of a list item
func IsListItem(line string) bool {
	return UnorderedItemStart.MatchString(line) || OrderedItemStart.MatchString(line)
}

// IsCustomTag reports whether line starts with an alignment tag
func IsCustomTag(line string) bool {
	return CustomTag.MatchString(line)
}

// RemoveQuotePrefix strips one quote marker from the start of line
func RemoveQuotePrefix(line string) string {
	loc := QuotePrefix.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[loc[1]:]
}
