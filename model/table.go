package model

import (
	"strings"
)

// Table represents a pipe table with a header row and data rows
type Table struct {
	Header TableRow
	// Alignments has one entry per header cell
	Alignments []Alignment
	Rows       []TableRow
}

func (t *Table) Type() BlockType { return BlockTypeTable }
func (t *Table) node()           {}
func (t *Table) block()          {}

// GetText returns the table as tab-separated literal text, header first
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.AllRows() {
		for j, cell := range row.Cells {
			sb.WriteString(cell.Text())
			if j < len(row.Cells)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// AllRows returns the header followed by the data rows
func (t *Table) AllRows() []TableRow {
	rows := make([]TableRow, 0, len(t.Rows)+1)
	rows = append(rows, t.Header)
	return append(rows, t.Rows...)
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns, taken from the header
func (t *Table) ColCount() int {
	return len(t.Header.Cells)
}

// GetCell returns the data cell at the given row and column (0-indexed).
// Row -1 addresses the header.
func (t *Table) GetCell(row, col int) *TableCell {
	var r *TableRow
	switch {
	case row == -1:
		r = &t.Header
	case row >= 0 && row < len(t.Rows):
		r = &t.Rows[row]
	default:
		return nil
	}
	if col < 0 || col >= len(r.Cells) {
		return nil
	}
	return &r.Cells[col]
}

// ToCSV converts the table to CSV format using the cells' literal text
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.AllRows() {
		for j, cell := range row.Cells {
			// Escape quotes and wrap in quotes if necessary
			text := cell.Text()
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row.Cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// TableRow represents one row of a table
type TableRow struct {
	Cells []TableCell
}

// TableCell represents a table cell
type TableCell struct {
	Content   []Inline
	Alignment Alignment
}

// Text returns the literal text of the cell
func (c TableCell) Text() string {
	return InlineText(c.Content)
}
