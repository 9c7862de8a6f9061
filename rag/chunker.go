package rag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/marktree/export"
	"github.com/tsawler/marktree/internal/words"
	"github.com/tsawler/marktree/model"
)

// ChunkLevel describes how much of a section a chunk covers
type ChunkLevel int

const (
	// ChunkLevelDocument is a chunk of a document without headings
	ChunkLevelDocument ChunkLevel = iota
	// ChunkLevelSection is a chunk holding a whole section
	ChunkLevelSection
	// ChunkLevelBlock is one part of a section that was split
	ChunkLevelBlock
)

// String returns the level name
func (l ChunkLevel) String() string {
	switch l {
	case ChunkLevelDocument:
		return "document"
	case ChunkLevelSection:
		return "section"
	case ChunkLevelBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ChunkMetadata contains information about a chunk's origin and content
type ChunkMetadata struct {
	// DocumentTitle is the text of the first level 1 heading
	DocumentTitle string

	// SectionPath holds the heading texts from the top level down to the
	// section of this chunk
	SectionPath []string

	// SectionTitle is the last entry of SectionPath
	SectionTitle string

	// HeadingLevel is the level of the section heading, 0 before the
	// first heading
	HeadingLevel int

	// ChunkIndex is the position of this chunk in the collection
	ChunkIndex int

	// TotalChunks is the number of chunks in the collection
	TotalChunks int

	Level ChunkLevel

	// BlockStart and BlockEnd delimit the covered blocks of the document,
	// BlockEnd exclusive
	BlockStart int
	BlockEnd   int

	// ElementTypes lists the block types in the chunk, without repeats
	ElementTypes []string

	HasTable bool
	HasList  bool
	HasCode  bool
	HasImage bool

	CharCount       int
	WordCount       int
	EstimatedTokens int
}

// Chunk is a piece of a document sized for retrieval
type Chunk struct {
	// ID is unique within the collection
	ID string

	// Text is the chunk content as markdown
	Text string

	// TextWithContext prefixes Text with the section path when the chunk
	// does not start with its own heading
	TextWithContext string

	Metadata ChunkMetadata
}

// GetSectionPathString returns the section path joined with " > "
func (c *Chunk) GetSectionPathString() string {
	return strings.Join(c.Metadata.SectionPath, " > ")
}

// ChunkerConfig holds configuration options for the chunker
type ChunkerConfig struct {
	// MaxWords is the word limit above which a section is split between
	// blocks. A single block larger than the limit is kept whole.
	// Zero disables splitting.
	// Default: 300
	MaxWords int

	// MinWords merges a trailing piece of a split section that has fewer
	// words into the piece before it.
	// Default: 20
	MinWords int

	// IDPrefix is a prefix for generated chunk IDs
	// Default: "chunk"
	IDPrefix string

	// ExportOptions are passed to the markdown exporter for the chunk text
	ExportOptions []export.Option
}

// DefaultChunkerConfig returns sensible default configuration
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		MaxWords: 300,
		MinWords: 20,
		IDPrefix: "chunk",
	}
}

// Chunker splits documents into heading based chunks
type Chunker struct {
	config ChunkerConfig
}

// NewChunker creates a new chunker with default configuration
func NewChunker() *Chunker {
	return &Chunker{config: DefaultChunkerConfig()}
}

// NewChunkerWithConfig creates a chunker with custom configuration
func NewChunkerWithConfig(config ChunkerConfig) *Chunker {
	if config.IDPrefix == "" {
		config.IDPrefix = "chunk"
	}
	return &Chunker{config: config}
}

// ChunkCollection holds the chunks of one document in reading order
type ChunkCollection struct {
	Chunks        []*Chunk
	DocumentTitle string
}

// Len returns the number of chunks
func (cc *ChunkCollection) Len() int {
	return len(cc.Chunks)
}

// TotalWords sums the word counts of all chunks
func (cc *ChunkCollection) TotalWords() int {
	total := 0
	for _, c := range cc.Chunks {
		total += c.Metadata.WordCount
	}
	return total
}

// section is a run of blocks under one heading
type section struct {
	path   []string
	level  int
	start  int
	blocks []model.Block
}

// piece is a run of blocks that becomes one chunk
type piece struct {
	start  int
	blocks []model.Block
	words  int
}

// Chunk splits doc into chunks
func (c *Chunker) Chunk(doc *model.Document) *ChunkCollection {
	collection := &ChunkCollection{}
	if doc == nil {
		return collection
	}

	hasHeadings := false
	var path []string
	var levels []int
	current := &section{}
	var sections []*section

	for i, b := range doc.Blocks {
		h, ok := b.(*model.Heading)
		if !ok {
			current.blocks = append(current.blocks, b)
			continue
		}
		hasHeadings = true
		if collection.DocumentTitle == "" && h.Level == 1 {
			collection.DocumentTitle = model.InlineText(h.Content)
		}
		sections = append(sections, current)

		for len(levels) > 0 && levels[len(levels)-1] >= h.Level {
			levels = levels[:len(levels)-1]
			path = path[:len(path)-1]
		}
		levels = append(levels, h.Level)
		path = append(path, model.InlineText(h.Content))

		current = &section{
			path:   append([]string(nil), path...),
			level:  h.Level,
			start:  i,
			blocks: []model.Block{b},
		}
	}
	sections = append(sections, current)

	for _, s := range sections {
		if len(s.blocks) == 0 {
			continue
		}
		pieces := c.split(s)
		for _, p := range pieces {
			level := ChunkLevelSection
			switch {
			case !hasHeadings:
				level = ChunkLevelDocument
			case len(pieces) > 1:
				level = ChunkLevelBlock
			}
			collection.Chunks = append(collection.Chunks, c.newChunk(s, p, level))
		}
	}

	for i, chunk := range collection.Chunks {
		chunk.ID = fmt.Sprintf("%s-%d", c.config.IDPrefix, i)
		chunk.Metadata.ChunkIndex = i
		chunk.Metadata.TotalChunks = len(collection.Chunks)
		chunk.Metadata.DocumentTitle = collection.DocumentTitle
	}
	return collection
}

// split cuts a section into pieces of at most MaxWords words. A heading
// always stays with the block after it.
func (c *Chunker) split(s *section) []*piece {
	var pieces []*piece
	current := &piece{start: s.start}
	for i, b := range s.blocks {
		n := words.Count(model.NewDocument([]model.Block{b}).PlainText())
		onlyHeading := len(current.blocks) == 1 && isHeading(current.blocks[0])
		if c.config.MaxWords > 0 && len(current.blocks) > 0 && !onlyHeading &&
			current.words+n > c.config.MaxWords {
			pieces = append(pieces, current)
			current = &piece{start: s.start + i}
		}
		current.blocks = append(current.blocks, b)
		current.words += n
	}
	pieces = append(pieces, current)

	if len(pieces) > 1 && pieces[len(pieces)-1].words < c.config.MinWords {
		last := pieces[len(pieces)-1]
		prev := pieces[len(pieces)-2]
		prev.blocks = append(prev.blocks, last.blocks...)
		prev.words += last.words
		pieces = pieces[:len(pieces)-1]
	}
	return pieces
}

func isHeading(b model.Block) bool {
	_, ok := b.(*model.Heading)
	return ok
}

func (c *Chunker) newChunk(s *section, p *piece, level ChunkLevel) *Chunk {
	doc := model.NewDocument(p.blocks)
	text := strings.TrimSuffix(export.Markdown(doc, c.config.ExportOptions...), "\n")
	plain := doc.PlainText()

	meta := ChunkMetadata{
		SectionPath:     s.path,
		HeadingLevel:    s.level,
		Level:           level,
		BlockStart:      p.start,
		BlockEnd:        p.start + len(p.blocks),
		CharCount:       utf8.RuneCountInString(plain),
		WordCount:       p.words,
		EstimatedTokens: estimateTokens(plain),
	}
	if len(s.path) > 0 {
		meta.SectionTitle = s.path[len(s.path)-1]
	}

	seen := make(map[model.BlockType]bool)
	for _, b := range p.blocks {
		model.Walk(b, func(n model.Node, depth int) bool {
			switch n := n.(type) {
			case model.Block:
				if depth == 0 && !seen[n.Type()] {
					seen[n.Type()] = true
					meta.ElementTypes = append(meta.ElementTypes, n.Type().String())
				}
				switch n.(type) {
				case *model.Table:
					meta.HasTable = true
				case *model.List:
					meta.HasList = true
				case *model.CodeBlock:
					meta.HasCode = true
				}
			case *model.Image:
				meta.HasImage = true
			}
			return true
		})
	}

	chunk := &Chunk{Text: text, TextWithContext: text, Metadata: meta}
	if len(s.path) > 0 && !isHeading(p.blocks[0]) {
		chunk.TextWithContext = fmt.Sprintf("[%s]\n\n%s", chunk.GetSectionPathString(), text)
	}
	return chunk
}

// estimateTokens approximates the token count at four characters per token
func estimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + 3) / 4
}
