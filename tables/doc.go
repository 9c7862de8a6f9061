// Package tables locates and parses pipe tables in markdown lines.
//
// # Locating Tables
//
// [Locate] runs a three-state machine over raw lines and returns the line
// ranges that form tables:
//
//	regions := tables.Locate(lines)
//	for _, r := range regions {
//	    fmt.Println(r.Start, r.End) // inclusive line indices
//	}
//
// The states are:
//
//  1. [StateOutside] - looking for a candidate header (a line with '|' that
//     is not itself a separator)
//  2. [StateHeader] - the next line must be a separator with the header's
//     column count, otherwise the candidate is dropped and the line is
//     examined again from [StateOutside]
//  3. [StateInside] - rows with '|' and the same column count extend the
//     table; a blank line, a count mismatch or the end of input closes it
//
// # Separator Grammar
//
// Every separator cell, with inner spaces removed, must match ^:?-{3,}:?$.
// The colons give the column alignment:
//
//   - ":---" - left
//   - ":---:" - center
//   - "---:" - right
//   - "---" - none
//
// # Parsing
//
// [Parse] turns the region starting at a given line into a [model.Table].
// Short data rows are padded with empty cells and long rows are cut to the
// header width, so every row has exactly one cell per column.
package tables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'marktree.tables'.
func tracer() tracing.Trace {
	return tracing.Select("marktree.tables")
}
