package tables

import (
	"strings"

	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// State is a state of the table region locator
type State int

const (
	StateOutside State = iota
	StateHeader
	StateInside
)

// String returns a string representation of the state
func (s State) String() string {
	switch s {
	case StateOutside:
		return "outside"
	case StateHeader:
		return "header"
	case StateInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Region is a located table, given as inclusive line indices. Start is the
// header line, Start+1 the separator.
type Region struct {
	Start int
	End   int
}

// Lines returns the number of lines in the region
func (r Region) Lines() int {
	return r.End - r.Start + 1
}

// Locate finds all tables in lines
func Locate(lines []string) []Region {
	var regions []Region
	state := StateOutside
	start, cols := 0, 0

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch state {
		case StateOutside:
			if trimmed == "" || !strings.Contains(line, "|") || IsSeparator(line, 0) {
				i++
				continue
			}
			n := len(SplitRow(line))
			if n < 1 {
				i++
				continue
			}
			start, cols = i, n
			state = StateHeader
			i++

		case StateHeader:
			if trimmed == "" {
				state = StateOutside
				i++
				continue
			}
			if IsSeparator(line, cols) {
				state = StateInside
				i++
				continue
			}
			// drop the candidate and look at this line again
			tracer().Debugf("tables: header candidate at line %d has no separator", start)
			state = StateOutside

		case StateInside:
			if trimmed == "" {
				regions = append(regions, Region{Start: start, End: i - 1})
				state = StateOutside
				i++
				continue
			}
			if strings.Contains(line, "|") && len(SplitRow(line)) == cols {
				i++
				continue
			}
			regions = append(regions, Region{Start: start, End: i - 1})
			state = StateOutside
		}
	}

	if state == StateInside {
		regions = append(regions, Region{Start: start, End: len(lines) - 1})
	}
	return regions
}

// SplitRow splits a table row into trimmed cells. Empty fields produced by
// optional outer pipes are dropped.
func SplitRow(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// IsSeparator reports whether line is a separator row. A positive columns
// value also requires that many cells.
func IsSeparator(line string, columns int) bool {
	cells := SplitRow(line)
	if len(cells) < 1 {
		return false
	}
	if columns > 0 && len(cells) != columns {
		return false
	}
	for _, cell := range cells {
		if !patterns.TableSeparator.MatchString(strings.ReplaceAll(cell, " ", "")) {
			return false
		}
	}
	return true
}

// ParseAlignments derives column alignments from a separator row
func ParseAlignments(separator string) []model.Alignment {
	cells := SplitRow(separator)
	alignments := make([]model.Alignment, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			alignments[i] = model.AlignCenter
		case right:
			alignments[i] = model.AlignRight
		case left:
			alignments[i] = model.AlignLeft
		default:
			alignments[i] = model.AlignNone
		}
	}
	return alignments
}
