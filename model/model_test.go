package model

import (
	"strings"
	"testing"
)

// ============================================================================
// Helpers
// ============================================================================

func text(s string) *Text { return &Text{Content: s} }

func cell(s string) TableCell { return TableCell{Content: []Inline{text(s)}} }

func sampleDocument() *Document {
	start := 3
	return NewDocument([]Block{
		&Heading{Level: 1, Content: []Inline{text("Title")}},
		&Paragraph{Content: []Inline{text("Intro "), &Bold{Content: "bold"}, text(".")}},
		&Heading{Level: 2, Content: []Inline{&Code{Content: "Install"}}},
		&List{
			Ordered: true,
			Start:   &start,
			Items: []*ListItem{
				{Content: []Node{text("one")}},
				{Content: []Node{
					text("two"),
					&List{Items: []*ListItem{{Content: []Node{&Italic{Content: "nested"}}, IndentLevel: 1}}},
				}},
			},
		},
		&Quote{Level: 1, Content: []Node{&Paragraph{Content: []Inline{text("quoted")}}}},
		&CodeBlock{Language: "go", Code: "x := 1"},
		&Table{
			Header:     TableRow{Cells: []TableCell{cell("a"), cell("b")}},
			Alignments: []Alignment{AlignLeft, AlignRight},
			Rows: []TableRow{
				{Cells: []TableCell{cell("1"), cell("x, y")}},
			},
		},
		&HorizontalRule{},
		&Align{Alignment: AlignCenter, Content: []Node{&Link{Content: "home", URL: "/"}}},
	})
}

// ============================================================================
// Kind Tests
// ============================================================================

func TestBlockTypeString(t *testing.T) {
	tests := []struct {
		bt   BlockType
		want string
	}{
		{BlockTypeHeading, "heading"},
		{BlockTypeParagraph, "paragraph"},
		{BlockTypeList, "list"},
		{BlockTypeQuote, "quote"},
		{BlockTypeCodeBlock, "code_block"},
		{BlockTypeTable, "table"},
		{BlockTypeHorizontalRule, "horizontal_rule"},
		{BlockTypeAlign, "align"},
		{BlockTypeUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.bt.String(); got != tt.want {
			t.Errorf("BlockType(%d).String() = %q, want %q", tt.bt, got, tt.want)
		}
	}
}

func TestInlineTypeString(t *testing.T) {
	inlines := []Inline{text("t"), &Bold{}, &Italic{}, &Code{}, &Link{}, &Image{}}
	want := []string{"text", "bold", "italic", "code", "link", "image"}
	for i, in := range inlines {
		if got := in.Type().String(); got != want[i] {
			t.Errorf("%T.Type().String() = %q, want %q", in, got, want[i])
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
		ok   bool
	}{
		{"left", AlignLeft, true},
		{"center", AlignCenter, true},
		{"right", AlignRight, true},
		{"Left", AlignNone, false},
		{"justify", AlignNone, false},
		{"", AlignNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseAlignment(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAlignment(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && got.String() != tt.in {
			t.Errorf("Alignment.String() = %q, want %q", got.String(), tt.in)
		}
	}
	if AlignNone.String() != "" {
		t.Errorf("AlignNone.String() = %q, want empty", AlignNone.String())
	}
}

// ============================================================================
// Block Tests
// ============================================================================

func TestListStartNumber(t *testing.T) {
	l := &List{}
	if l.StartNumber() != 1 {
		t.Errorf("StartNumber() = %d, want 1", l.StartNumber())
	}
	n := 7
	l.Start = &n
	if l.StartNumber() != 7 {
		t.Errorf("StartNumber() = %d, want 7", l.StartNumber())
	}
}

func TestListItemAccessors(t *testing.T) {
	sub := &List{Items: []*ListItem{{Content: []Node{text("b")}}}}
	item := &ListItem{Content: []Node{text("a "), &Bold{Content: "x"}, sub}}

	if got := InlineText(item.Inlines()); got != "a x" {
		t.Errorf("Inlines() text = %q, want %q", got, "a x")
	}
	if subs := item.Sublists(); len(subs) != 1 || subs[0] != sub {
		t.Errorf("Sublists() = %v, want [%p]", subs, sub)
	}
}

func TestCodeBlockFenced(t *testing.T) {
	tests := []struct {
		cb   CodeBlock
		want bool
	}{
		{CodeBlock{Code: "x"}, false},
		{CodeBlock{Language: "go"}, true},
		{CodeBlock{Filename: "main.go"}, true},
	}
	for _, tt := range tests {
		if got := tt.cb.Fenced(); got != tt.want {
			t.Errorf("%+v.Fenced() = %v, want %v", tt.cb, got, tt.want)
		}
	}
}

func TestInlineText(t *testing.T) {
	inlines := []Inline{
		text("a "),
		&Link{Content: "link", URL: "http://x"},
		text(" "),
		&Image{Content: "alt", URL: "i.png"},
	}
	if got := InlineText(inlines); got != "a link alt" {
		t.Errorf("InlineText() = %q, want %q", got, "a link alt")
	}
	if got := InlineText(nil); got != "" {
		t.Errorf("InlineText(nil) = %q, want empty", got)
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestTableAccessors(t *testing.T) {
	table := sampleDocument().Tables()[0]

	if table.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", table.RowCount())
	}
	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}
	if c := table.GetCell(-1, 1); c == nil || c.Text() != "b" {
		t.Errorf("GetCell(-1, 1) = %v, want header cell b", c)
	}
	if c := table.GetCell(0, 0); c == nil || c.Text() != "1" {
		t.Errorf("GetCell(0, 0) = %v, want 1", c)
	}
	for _, rc := range [][2]int{{1, 0}, {0, 2}, {-2, 0}, {0, -1}} {
		if c := table.GetCell(rc[0], rc[1]); c != nil {
			t.Errorf("GetCell(%d, %d) = %v, want nil", rc[0], rc[1], c)
		}
	}
	if n := len(table.AllRows()); n != 2 {
		t.Errorf("AllRows() has %d rows, want 2", n)
	}
}

func TestTableText(t *testing.T) {
	table := sampleDocument().Tables()[0]

	if got, want := table.GetText(), "a\tb\n1\tx, y\n"; got != want {
		t.Errorf("GetText() = %q, want %q", got, want)
	}
	if got, want := table.ToCSV(), "a,b\n1,\"x, y\"\n"; got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestNewDocument(t *testing.T) {
	doc := NewDocument(nil)
	if doc.Blocks == nil {
		t.Fatal("NewDocument(nil).Blocks is nil")
	}
	if doc.BlockCount() != 0 {
		t.Errorf("BlockCount() = %d, want 0", doc.BlockCount())
	}
	if sampleDocument().BlockCount() != 9 {
		t.Errorf("BlockCount() = %d, want 9", sampleDocument().BlockCount())
	}
}

func TestDocumentHeadings(t *testing.T) {
	doc := sampleDocument()
	headings := doc.Headings()
	if len(headings) != 2 {
		t.Fatalf("Headings() returned %d headings, want 2", len(headings))
	}
	if headings[0].Level != 1 || headings[1].Level != 2 {
		t.Errorf("heading levels = %d, %d, want 1, 2", headings[0].Level, headings[1].Level)
	}
}

func TestDocumentTableOfContents(t *testing.T) {
	toc := sampleDocument().TableOfContents()
	want := []TOCEntry{
		{Level: 1, Text: "Title", Block: 0},
		{Level: 2, Text: "Install", Block: 2},
	}
	if len(toc) != len(want) {
		t.Fatalf("TableOfContents() has %d entries, want %d", len(toc), len(want))
	}
	for i := range want {
		if toc[i] != want[i] {
			t.Errorf("toc[%d] = %+v, want %+v", i, toc[i], want[i])
		}
	}
}

func TestDocumentPlainText(t *testing.T) {
	got := sampleDocument().PlainText()
	want := strings.Join([]string{
		"Title",
		"Intro bold.",
		"Install",
		"one\ntwo\nnested",
		"quoted",
		"x := 1",
		"a\tb\n1\tx, y",
		"home",
	}, "\n\n")
	if got != want {
		t.Errorf("PlainText() =\n%q\nwant\n%q", got, want)
	}
}

func TestDocumentStats(t *testing.T) {
	stats := sampleDocument().Stats()

	blocks := map[BlockType]int{
		BlockTypeHeading:        2,
		BlockTypeParagraph:      2,
		BlockTypeList:           2,
		BlockTypeQuote:          1,
		BlockTypeCodeBlock:      1,
		BlockTypeTable:          1,
		BlockTypeHorizontalRule: 1,
		BlockTypeAlign:          1,
	}
	for bt, want := range blocks {
		if got := stats.Blocks[bt]; got != want {
			t.Errorf("Blocks[%s] = %d, want %d", bt, got, want)
		}
	}
	if stats.BlockCount() != 11 {
		t.Errorf("BlockCount() = %d, want 11", stats.BlockCount())
	}

	inlines := map[InlineType]int{
		InlineTypeText:   10,
		InlineTypeBold:   1,
		InlineTypeItalic: 1,
		InlineTypeCode:   1,
		InlineTypeLink:   1,
	}
	for it, want := range inlines {
		if got := stats.Inlines[it]; got != want {
			t.Errorf("Inlines[%s] = %d, want %d", it, got, want)
		}
	}
	if stats.InlineCount() != 14 {
		t.Errorf("InlineCount() = %d, want 14", stats.InlineCount())
	}
}

// ============================================================================
// Walk Tests
// ============================================================================

func TestWalkOrderAndDepth(t *testing.T) {
	list := sampleDocument().Blocks[3]

	var visited []string
	var depths []int
	Walk(list, func(n Node, depth int) bool {
		switch n := n.(type) {
		case Block:
			visited = append(visited, n.Type().String())
		case Inline:
			visited = append(visited, n.Literal())
		}
		depths = append(depths, depth)
		return true
	})

	wantVisited := []string{"list", "one", "two", "list", "nested"}
	wantDepths := []int{0, 1, 1, 1, 2}
	if strings.Join(visited, ",") != strings.Join(wantVisited, ",") {
		t.Errorf("visited %v, want %v", visited, wantVisited)
	}
	for i := range wantDepths {
		if i < len(depths) && depths[i] != wantDepths[i] {
			t.Errorf("depth[%d] = %d, want %d", i, depths[i], wantDepths[i])
		}
	}
}

func TestWalkSkipChildren(t *testing.T) {
	count := 0
	for _, b := range sampleDocument().Blocks {
		Walk(b, func(n Node, depth int) bool {
			count++
			return false
		})
	}
	if count != 9 {
		t.Errorf("visited %d nodes, want 9", count)
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(Node, int) bool {
		called = true
		return true
	})
	if called {
		t.Error("Walk(nil) called fn")
	}
}

// ============================================================================
// Outline Tests
// ============================================================================

func TestOutline(t *testing.T) {
	h := func(level int, s string) Block {
		return &Heading{Level: level, Content: []Inline{text(s)}}
	}
	doc := NewDocument([]Block{
		h(1, "A"),
		h(2, "A.1"),
		&Paragraph{Content: []Inline{text("p")}},
		h(4, "A.1.x"),
		h(2, "A.2"),
		h(1, "B"),
		h(3, "B.deep"),
	})

	roots := doc.Outline()
	if len(roots) != 2 {
		t.Fatalf("Outline() has %d roots, want 2", len(roots))
	}
	a, b := roots[0], roots[1]
	if a.Text != "A" || len(a.Children) != 2 {
		t.Fatalf("root A = %q with %d children, want 2", a.Text, len(a.Children))
	}
	if a.Children[0].Text != "A.1" || a.Children[1].Text != "A.2" {
		t.Errorf("A children = %q, %q", a.Children[0].Text, a.Children[1].Text)
	}
	if sub := a.Children[0].Children; len(sub) != 1 || sub[0].Text != "A.1.x" || sub[0].Block != 3 {
		t.Errorf("A.1 children = %+v, want A.1.x at block 3", sub)
	}
	if len(b.Children) != 1 || b.Children[0].Level != 3 {
		t.Errorf("B children = %+v, want one level 3 heading", b.Children)
	}
	if a.Depth() != 3 || b.Depth() != 2 {
		t.Errorf("Depth() = %d, %d, want 3, 2", a.Depth(), b.Depth())
	}
}

func TestOutlineStartsBelowTopLevel(t *testing.T) {
	doc := NewDocument([]Block{
		&Heading{Level: 3, Content: []Inline{text("c")}},
		&Heading{Level: 2, Content: []Inline{text("b")}},
	})
	roots := doc.Outline()
	if len(roots) != 2 {
		t.Fatalf("Outline() has %d roots, want 2", len(roots))
	}
	if len(NewDocument(nil).Outline()) != 0 {
		t.Error("Outline() of empty document is not empty")
	}
}
