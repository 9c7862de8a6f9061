package model

import "strings"

// Text represents plain text
type Text struct {
	Content string
}

func (t *Text) Type() InlineType { return InlineTypeText }
func (t *Text) Literal() string  { return t.Content }
func (t *Text) node()            {}
func (t *Text) inline()          {}

// Bold represents strongly emphasized text
type Bold struct {
	Content string
}

func (b *Bold) Type() InlineType { return InlineTypeBold }
func (b *Bold) Literal() string  { return b.Content }
func (b *Bold) node()            {}
func (b *Bold) inline()          {}

// Italic represents emphasized text
type Italic struct {
	Content string
}

func (i *Italic) Type() InlineType { return InlineTypeItalic }
func (i *Italic) Literal() string  { return i.Content }
func (i *Italic) node()            {}
func (i *Italic) inline()          {}

// Code represents an inline code span
type Code struct {
	Content string
}

func (c *Code) Type() InlineType { return InlineTypeCode }
func (c *Code) Literal() string  { return c.Content }
func (c *Code) node()            {}
func (c *Code) inline()          {}

// Link represents a hyperlink
type Link struct {
	Content string
	URL     string
	Title   string // empty if none
}

func (l *Link) Type() InlineType { return InlineTypeLink }
func (l *Link) Literal() string  { return l.Content }
func (l *Link) node()            {}
func (l *Link) inline()          {}

// Image represents an image with optional extended attributes
type Image struct {
	Content string // alt text
	URL     string
	Title   string // empty if none
	// Size is the relative display width, clamped to [0,1]
	Size *float64
	// CSS is copied verbatim from the css="..." attribute
	CSS string
}

func (i *Image) Type() InlineType { return InlineTypeImage }
func (i *Image) Literal() string  { return i.Content }
func (i *Image) node()            {}
func (i *Image) inline()          {}

// Alt returns the alternative text of the image
func (i *Image) Alt() string { return i.Content }

// InlineText concatenates the literal content of inline nodes
func InlineText(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		sb.WriteString(in.Literal())
	}
	return sb.String()
}
