package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/marktree/model"
)

func parseCode(t *testing.T, input string) *model.CodeBlock {
	t.Helper()
	doc := Parse(input)
	require.NotEmpty(t, doc.Blocks, input)
	cb, ok := doc.Blocks[0].(*model.CodeBlock)
	require.True(t, ok, "%q parsed as %T", input, doc.Blocks[0])
	return cb
}

func TestFenceInfo(t *testing.T) {
	tests := []struct {
		info     string
		language string
		filename string
	}{
		{"", "", ""},
		{"go", "go", ""},
		{"python script.py", "python", "script.py"},
		{"main.go", "", "main.go"},
		{"cmd/run", "", "cmd/run"},
		{"  sh   build.sh  ", "sh", "build.sh"},
	}
	for _, tt := range tests {
		cb := parseCode(t, "```"+tt.info+"\nx\n```")
		assert.Equal(t, tt.language, cb.Language, tt.info)
		assert.Equal(t, tt.filename, cb.Filename, tt.info)
		assert.Equal(t, "x", cb.Code)
		assert.Equal(t, tt.language != "" || tt.filename != "", cb.Fenced(), tt.info)
	}
}

func TestFencedCodeKeepsContent(t *testing.T) {
	cb := parseCode(t, "```\n# not a heading\n  indented   \n\n- not a list\n```\nafter")
	assert.Equal(t, "# not a heading\n  indented\n\n- not a list", cb.Code)
}

func TestUnterminatedFence(t *testing.T) {
	doc := Parse("```go\nline one\n\nline two")
	require.Len(t, doc.Blocks, 1)
	cb := doc.Blocks[0].(*model.CodeBlock)
	assert.Equal(t, "go", cb.Language)
	assert.Equal(t, "line one\n\nline two", cb.Code)
}

func TestIndentedCode(t *testing.T) {
	doc := Parse("    a := 1\n\tb := 2\n\n    c := 3\n\nafter")
	require.Len(t, doc.Blocks, 2)
	cb := doc.Blocks[0].(*model.CodeBlock)
	assert.Equal(t, "a := 1\nb := 2\n\nc := 3", cb.Code)
	assert.False(t, cb.Fenced())
	assert.Equal(t, model.BlockTypeParagraph, doc.Blocks[1].Type())
}

func TestIndentedCodeDropsTrailingBlank(t *testing.T) {
	doc := Parse("    x\n\n")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "x", doc.Blocks[0].(*model.CodeBlock).Code)
}
