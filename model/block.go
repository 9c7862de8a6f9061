package model

// Heading represents an ATX heading
type Heading struct {
	Level   int // 1-6
	Content []Inline
}

func (h *Heading) Type() BlockType { return BlockTypeHeading }
func (h *Heading) node()           {}
func (h *Heading) block()          {}

// Paragraph represents a run of text lines joined into one block
type Paragraph struct {
	Content []Inline
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }
func (p *Paragraph) node()           {}
func (p *Paragraph) block()          {}

// List represents a list (ordered or unordered)
type List struct {
	Ordered bool
	Items   []*ListItem
	// Start is the number of the first item of an ordered list, nil otherwise
	Start *int
}

func (l *List) Type() BlockType { return BlockTypeList }
func (l *List) node()           {}
func (l *List) block()          {}

// StartNumber returns the first item number, 1 when the list has none.
func (l *List) StartNumber() int {
	if l.Start == nil {
		return 1
	}
	return *l.Start
}

// ListItem represents a single list item. Content holds Inline nodes and
// nested *List values in source order.
type ListItem struct {
	Content     []Node
	IndentLevel int // nesting level, not raw spaces
}

// Inlines returns the inline content of the item, skipping nested lists
func (li *ListItem) Inlines() []Inline {
	var inlines []Inline
	for _, n := range li.Content {
		if in, ok := n.(Inline); ok {
			inlines = append(inlines, in)
		}
	}
	return inlines
}

// Sublists returns the nested lists of the item
func (li *ListItem) Sublists() []*List {
	var lists []*List
	for _, n := range li.Content {
		if l, ok := n.(*List); ok {
			lists = append(lists, l)
		}
	}
	return lists
}

// Quote represents a block quote
type Quote struct {
	Level   int // count of leading '>' markers, at least 1
	Content []Node
}

func (q *Quote) Type() BlockType { return BlockTypeQuote }
func (q *Quote) node()           {}
func (q *Quote) block()          {}

// CodeBlock represents a fenced or indented code block
type CodeBlock struct {
	Language string // empty if none
	Filename string // empty if none
	Code     string
}

func (c *CodeBlock) Type() BlockType { return BlockTypeCodeBlock }
func (c *CodeBlock) node()           {}
func (c *CodeBlock) block()          {}

// Fenced reports whether the block carries an info string and is
// therefore exported as a fenced block.
func (c *CodeBlock) Fenced() bool {
	return c.Language != "" || c.Filename != ""
}

// HorizontalRule represents a thematic break
type HorizontalRule struct{}

func (hr *HorizontalRule) Type() BlockType { return BlockTypeHorizontalRule }
func (hr *HorizontalRule) node()           {}
func (hr *HorizontalRule) block()          {}

// Align represents an explicit alignment block
type Align struct {
	Alignment Alignment
	Content   []Node
}

func (a *Align) Type() BlockType { return BlockTypeAlign }
func (a *Align) node()           {}
func (a *Align) block()          {}
