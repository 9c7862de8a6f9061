package export

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/assert"

	"github.com/tsawler/marktree/model"
	"github.com/tsawler/marktree/parser"
)

func roundTrip(src string, opts ...Option) string {
	return Markdown(parser.Parse(src), opts...)
}

func assertMarkdown(t *testing.T, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("markdown differs (-want +got):\n%s", diff.Diff(want, got))
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	canonical := strings.Join([]string{
		"# Title",
		"",
		"A paragraph with **bold**, *italic* and `code`.",
		"",
		"## Second",
		"",
		"- one",
		"- two",
		"- three",
		"",
		"3. c",
		"4. d",
		"",
		"```go main.go",
		"package main",
		"",
		"func main() {}",
		"```",
		"",
		"    indented",
		"    code",
	}, "\n")

	assertMarkdown(t, canonical, roundTrip(canonical))
}

func TestMarkdownIsIdempotent(t *testing.T) {
	messy := strings.Join([]string{
		"#   Spaced heading ##",
		"a paragraph",
		"  spread over",
		"lines",
		"",
		"",
		"* star",
		"+ plus",
		"",
		"1) one",
		"",
		"```python",
		"print('x')   ",
	}, "\n")

	once := roundTrip(messy)
	twice := roundTrip(once)
	assertMarkdown(t, once, twice)
	assert.Contains(t, once, "# Spaced heading\n\na paragraph spread over lines")
	assert.Contains(t, once, "- star\n- plus")
	assert.Contains(t, once, "1. one")
}

func TestMarkdownBareFenceIsIdempotent(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"```\n```", "```\n```"},
		{"```\n\nfoo\n```", "```\n\nfoo\n```"},
		{"```\nfoo\n\n```", "```\nfoo\n\n```"},
	}
	for _, tt := range tests {
		once := roundTrip(tt.src)
		assertMarkdown(t, tt.want, once)
		assertMarkdown(t, once, roundTrip(once))
	}
}

func TestMarkdownListAndAlignKeepText(t *testing.T) {
	assert.Contains(t, roundTrip("- a\n    - b\n    c"), "c")
	assertMarkdown(t, "  - a\n\ntext", roundTrip("  - a\n  text"))
	assertMarkdown(t, "<Center>x</Center>\n\ntail", roundTrip("<Center>x</Center> tail"))
}

func TestMarkdownNestedList(t *testing.T) {
	src := "- a\n  - b\n    - c\n- d"
	assertMarkdown(t, src, roundTrip(src))

	src = "- first\n  wrapped\n- second"
	assertMarkdown(t, src, roundTrip(src))
}

func TestMarkdownOrderedNumbering(t *testing.T) {
	assertMarkdown(t, "3. a\n4. b", roundTrip("3. a\n7. b"))

	doc := model.NewDocument([]model.Block{
		&model.List{Ordered: true, Items: []*model.ListItem{
			{Content: []model.Node{&model.Text{Content: "x"}}},
			{Content: []model.Node{&model.Text{Content: "y"}}},
		}},
	})
	assertMarkdown(t, "1. x\n2. y", Markdown(doc))
}

func TestMarkdownQuote(t *testing.T) {
	src := "> a b\n>\n> c"
	assertMarkdown(t, src, roundTrip(src))

	assertMarkdown(t, ">> deep", roundTrip("> > deep"))
}

func TestMarkdownRuleSpacing(t *testing.T) {
	src := "para\n\n---\n# H"
	assertMarkdown(t, src, roundTrip(src))
	assertMarkdown(t, src, roundTrip("para\n\n***\n\n# H"))
}

func TestMarkdownTable(t *testing.T) {
	src := "| a | b | c |\n| :--- | :---: | ---: |\n| 1 | 2 | 3 |"
	assertMarkdown(t, src, roundTrip(src))

	// rows shorter than the header get empty cells
	doc := model.NewDocument([]model.Block{&model.Table{
		Header: model.TableRow{Cells: []model.TableCell{
			{Content: []model.Inline{&model.Text{Content: "a"}}},
			{Content: []model.Inline{&model.Text{Content: "b"}}},
		}},
		Rows: []model.TableRow{{Cells: []model.TableCell{
			{Content: []model.Inline{&model.Text{Content: "1"}}},
		}}},
	}})
	assertMarkdown(t, "| a | b |\n| --- | --- |\n| 1 |  |", Markdown(doc))
}

func TestMarkdownPlainFenceBecomesIndented(t *testing.T) {
	assertMarkdown(t, "    plain\n    code", roundTrip("```\nplain\ncode\n```"))
}

func TestMarkdownPaddedTable(t *testing.T) {
	src := "| h | value |\n|---|:---:|\n| long cell | 1 |"
	want := strings.Join([]string{
		"| h         | value |",
		"| --------- | :---: |",
		"| long cell | 1     |",
	}, "\n")
	got := roundTrip(src, WithPaddedTables())
	assertMarkdown(t, want, got)

	// padding is stable under reparsing
	assertMarkdown(t, want, roundTrip(got, WithPaddedTables()))
}

func TestMarkdownPaddedTableWideRunes(t *testing.T) {
	src := "| 名前 |\n|---|\n| ab |"
	want := "| 名前 |\n| ---- |\n| ab   |"
	assertMarkdown(t, want, roundTrip(src, WithPaddedTables()))
}

func TestMarkdownExtensions(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		without string
	}{
		{
			"image attributes",
			`![a](i.png){size=0.5, css="border: 0"}`,
			"![a](i.png)",
		},
		{
			"align inline",
			"<Center>hi **there**</Center>",
			"hi **there**",
		},
		{
			"align blocks",
			"<Right>\n# T\n\nbody\n</Right>",
			"# T\n\nbody",
		},
		{
			"code filename",
			"```go main.go\nx\n```",
			"```go\nx\n```",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMarkdown(t, tt.src, roundTrip(tt.src))
			assertMarkdown(t, tt.without, roundTrip(tt.src, WithoutExtensions()))
		})
	}
}

func TestMarkdownAlignLongForm(t *testing.T) {
	assertMarkdown(t, "<Left>x</Left>", roundTrip("<Align left>x</Align>"))
}

func TestMarkdownImageSizeFormatting(t *testing.T) {
	assertMarkdown(t, "![a](u){size=1}", roundTrip("![a](u){size=1.0}"))
	assertMarkdown(t, "![a](u){size=0}", roundTrip("![a](u){size=0}"))
	// out of range sizes are clamped
	assertMarkdown(t, "![a](u){size=1}", roundTrip("![a](u){size=7}"))
}

func TestMarkdownLinkTitle(t *testing.T) {
	src := `see [docs](http://x "The Docs")`
	assertMarkdown(t, src, roundTrip(src))
}

func TestMarkdownEmptyDocument(t *testing.T) {
	assert.Equal(t, "", Markdown(model.NewDocument(nil)))
}
