package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/marktree/model"
)

func TestAlignForms(t *testing.T) {
	tests := []struct {
		input     string
		alignment model.Alignment
	}{
		{"<Align left>text</Align>", model.AlignLeft},
		{"<Align center>text</Align>", model.AlignCenter},
		{"<Align right>text</Align>", model.AlignRight},
		{"<align CENTER>text</ALIGN>", model.AlignCenter},
		{"<Left>text</Left>", model.AlignLeft},
		{"<center>text</CENTER>", model.AlignCenter},
		{"<RIGHT> text </right>", model.AlignRight},
	}
	for _, tt := range tests {
		doc := Parse(tt.input)
		require.Len(t, doc.Blocks, 1, tt.input)
		a, ok := doc.Blocks[0].(*model.Align)
		require.True(t, ok, "%q parsed as %T", tt.input, doc.Blocks[0])
		assert.Equal(t, tt.alignment, a.Alignment, tt.input)
		require.Len(t, a.Content, 1, tt.input)
		text, ok := a.Content[0].(*model.Text)
		require.True(t, ok, tt.input)
		assert.Equal(t, "text", text.Content, tt.input)
	}
}

func TestAlignMultiLine(t *testing.T) {
	input := "<Center>\n# Title\n\nSome *text*.\n</Center>\nafter"
	doc := Parse(input)
	require.Len(t, doc.Blocks, 2)

	a := doc.Blocks[0].(*model.Align)
	assert.Equal(t, model.AlignCenter, a.Alignment)
	require.Len(t, a.Content, 2)
	assert.IsType(t, &model.Heading{}, a.Content[0])
	assert.IsType(t, &model.Paragraph{}, a.Content[1])

	assert.Equal(t, model.BlockTypeParagraph, doc.Blocks[1].Type())
}

func TestAlignClosingTagMustMatch(t *testing.T) {
	doc := Parse("<Left>text</Right>")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, model.BlockTypeParagraph, doc.Blocks[0].Type())
}

func TestMatchAlignOpening(t *testing.T) {
	open, ok := matchAlignOpening("  <ALIGN Right>rest")
	require.True(t, ok)
	assert.Equal(t, "align", open.tag)
	assert.Equal(t, model.AlignRight, open.alignment)
	assert.Equal(t, "rest", open.rest)

	open, ok = matchAlignOpening("<Center>")
	require.True(t, ok)
	assert.Equal(t, "center", open.tag)
	assert.Equal(t, "", open.rest)

	_, ok = matchAlignOpening("<Align middle>")
	assert.False(t, ok)
	_, ok = matchAlignOpening("<Justify>")
	assert.False(t, ok)
}

func TestAlignTextAfterClosingTag(t *testing.T) {
	doc := Parse("<Center>x</Center> tail")
	require.Len(t, doc.Blocks, 2)
	a := doc.Blocks[0].(*model.Align)
	assert.Equal(t, "x", a.Content[0].(*model.Text).Content)
	p, ok := doc.Blocks[1].(*model.Paragraph)
	require.True(t, ok, "got %T", doc.Blocks[1])
	assert.Equal(t, "tail", model.InlineText(p.Content))

	doc = Parse("<Left>\nbody\n</Left> after\nmore")
	require.Len(t, doc.Blocks, 2)
	a = doc.Blocks[0].(*model.Align)
	require.Len(t, a.Content, 1)
	assert.IsType(t, &model.Paragraph{}, a.Content[0])
	p, ok = doc.Blocks[1].(*model.Paragraph)
	require.True(t, ok, "got %T", doc.Blocks[1])
	assert.Equal(t, "after more", model.InlineText(p.Content))
}

func TestAlignTailStartsAnotherAlign(t *testing.T) {
	doc := Parse("<Left>a</Left><Right>b</Right>")
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, model.AlignLeft, doc.Blocks[0].(*model.Align).Alignment)
	assert.Equal(t, model.AlignRight, doc.Blocks[1].(*model.Align).Alignment)
}

func TestAlignBlankTailIsDropped(t *testing.T) {
	doc := Parse("<Right>r</Right>   \nnext")
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "next", model.InlineText(doc.Blocks[1].(*model.Paragraph).Content))
}
