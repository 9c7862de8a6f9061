package rag

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExportFormat specifies the output format for chunk export
type ExportFormat int

const (
	// ExportFormatJSONL writes one JSON object per line
	ExportFormatJSONL ExportFormat = iota
	// ExportFormatJSON writes an indented JSON array
	ExportFormatJSON
	// ExportFormatCSV writes a header row and one row per chunk
	ExportFormatCSV
)

// String returns the format name
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatJSON:
		return "json"
	case ExportFormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the file extension for the format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatJSON:
		return ".json"
	case ExportFormatCSV:
		return ".csv"
	default:
		return ""
	}
}

// ExportedChunk is the serialized form of a chunk
type ExportedChunk struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	TextWithContext string   `json:"text_with_context,omitempty"`
	DocumentTitle   string   `json:"document_title,omitempty"`
	SectionPath     []string `json:"section_path,omitempty"`
	SectionTitle    string   `json:"section_title,omitempty"`
	HeadingLevel    int      `json:"heading_level,omitempty"`
	ChunkIndex      int      `json:"chunk_index"`
	TotalChunks     int      `json:"total_chunks"`
	Level           string   `json:"level"`
	BlockStart      int      `json:"block_start"`
	BlockEnd        int      `json:"block_end"`
	ElementTypes    []string `json:"element_types,omitempty"`
	HasTable        bool     `json:"has_table,omitempty"`
	HasList         bool     `json:"has_list,omitempty"`
	HasCode         bool     `json:"has_code,omitempty"`
	HasImage        bool     `json:"has_image,omitempty"`
	CharCount       int      `json:"char_count"`
	WordCount       int      `json:"word_count"`
	EstimatedTokens int      `json:"estimated_tokens"`
}

func exportChunk(c *Chunk) ExportedChunk {
	m := c.Metadata
	out := ExportedChunk{
		ID:              c.ID,
		Text:            c.Text,
		DocumentTitle:   m.DocumentTitle,
		SectionPath:     m.SectionPath,
		SectionTitle:    m.SectionTitle,
		HeadingLevel:    m.HeadingLevel,
		ChunkIndex:      m.ChunkIndex,
		TotalChunks:     m.TotalChunks,
		Level:           m.Level.String(),
		BlockStart:      m.BlockStart,
		BlockEnd:        m.BlockEnd,
		ElementTypes:    m.ElementTypes,
		HasTable:        m.HasTable,
		HasList:         m.HasList,
		HasCode:         m.HasCode,
		HasImage:        m.HasImage,
		CharCount:       m.CharCount,
		WordCount:       m.WordCount,
		EstimatedTokens: m.EstimatedTokens,
	}
	if c.TextWithContext != c.Text {
		out.TextWithContext = c.TextWithContext
	}
	return out
}

// Export writes the collection to w in the given format
func (cc *ChunkCollection) Export(w io.Writer, format ExportFormat) error {
	switch format {
	case ExportFormatJSONL:
		enc := json.NewEncoder(w)
		for _, c := range cc.Chunks {
			if err := enc.Encode(exportChunk(c)); err != nil {
				return fmt.Errorf("failed to encode chunk %s: %w", c.ID, err)
			}
		}
		return nil
	case ExportFormatJSON:
		chunks := make([]ExportedChunk, len(cc.Chunks))
		for i, c := range cc.Chunks {
			chunks[i] = exportChunk(c)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(chunks); err != nil {
			return fmt.Errorf("failed to encode chunks: %w", err)
		}
		return nil
	case ExportFormatCSV:
		return cc.exportCSV(w)
	default:
		return fmt.Errorf("unsupported export format: %d", format)
	}
}

var csvColumns = []string{
	"id", "text", "section_path", "heading_level", "level",
	"block_start", "block_end", "element_types", "word_count", "estimated_tokens",
}

func (cc *ChunkCollection) exportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, c := range cc.Chunks {
		m := c.Metadata
		row := []string{
			c.ID,
			c.Text,
			c.GetSectionPathString(),
			strconv.Itoa(m.HeadingLevel),
			m.Level.String(),
			strconv.Itoa(m.BlockStart),
			strconv.Itoa(m.BlockEnd),
			strings.Join(m.ElementTypes, ";"),
			strconv.Itoa(m.WordCount),
			strconv.Itoa(m.EstimatedTokens),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToJSONL exports the collection as JSON Lines
func (cc *ChunkCollection) ToJSONL() (string, error) {
	var sb strings.Builder
	err := cc.Export(&sb, ExportFormatJSONL)
	return sb.String(), err
}

// ToJSON exports the collection as an indented JSON array
func (cc *ChunkCollection) ToJSON() (string, error) {
	var sb strings.Builder
	err := cc.Export(&sb, ExportFormatJSON)
	return sb.String(), err
}

// ToCSV exports the collection as CSV
func (cc *ChunkCollection) ToCSV() (string, error) {
	var sb strings.Builder
	err := cc.Export(&sb, ExportFormatCSV)
	return sb.String(), err
}
