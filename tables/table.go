package tables

import (
	"github.com/tsawler/marktree/inline"
	"github.com/tsawler/marktree/model"
)

// Parse parses a table whose header is at lines[start]. It returns the
// table and the index of the first line after it, or false if no table
// begins at start.
func Parse(lines []string, start int) (*model.Table, int, bool) {
	if start >= len(lines) {
		return nil, start, false
	}
	regions := Locate(lines[start:])
	if len(regions) == 0 || regions[0].Start != 0 {
		return nil, start, false
	}
	region := regions[0]
	if region.Lines() < 2 {
		return nil, start, false
	}

	table := Build(lines[start : start+region.End+1])
	if table == nil {
		return nil, start, false
	}
	tracer().Debugf("tables: %d columns, %d rows at line %d", table.ColCount(), table.RowCount(), start)
	return table, start + region.End + 1, true
}

// Build constructs a table from a header line, a separator line and any
// number of data lines. It returns nil if there are fewer than two lines or
// the header has no cells.
func Build(tableLines []string) *model.Table {
	if len(tableLines) < 2 {
		return nil
	}
	headerCells := SplitRow(tableLines[0])
	if len(headerCells) == 0 {
		return nil
	}
	width := len(headerCells)

	alignments := ParseAlignments(tableLines[1])
	for len(alignments) < width {
		alignments = append(alignments, model.AlignNone)
	}
	alignments = alignments[:width]

	table := &model.Table{
		Header:     buildRow(headerCells, alignments),
		Alignments: alignments,
		Rows:       make([]model.TableRow, 0, len(tableLines)-2),
	}
	for _, line := range tableLines[2:] {
		cells := SplitRow(line)
		if len(cells) == 0 {
			continue
		}
		for len(cells) < width {
			cells = append(cells, "")
		}
		table.Rows = append(table.Rows, buildRow(cells[:width], alignments))
	}
	return table
}

func buildRow(cells []string, alignments []model.Alignment) model.TableRow {
	row := model.TableRow{Cells: make([]model.TableCell, len(cells))}
	for i, text := range cells {
		row.Cells[i] = model.TableCell{
			Content:   inline.Parse(text),
			Alignment: alignments[i],
		}
	}
	return row
}
