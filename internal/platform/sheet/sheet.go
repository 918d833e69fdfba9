// Package sheet parses the delimited text published by externally
// maintained league sheets. The sheets are hand-edited, so the parser is
// deliberately total: malformed quoting degrades instead of erroring.
package sheet

import "strings"

// Table is the parsed form of one resource: ordered rows of trimmed cells.
type Table [][]string

// Parse splits raw delimited text into rows of cells. Carriage returns are
// stripped before splitting on newlines, blank and whitespace-only lines
// are skipped, and the delimiter is ignored inside quoted spans. Quote
// state toggles on every literal quote character; an unterminated quote
// treats the rest of the line as quoted.
func Parse(text string, delim rune) Table {
	text = strings.ReplaceAll(text, "\r", "")

	var rows Table
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line, delim))
	}

	return rows
}

func splitLine(line string, delim rune) []string {
	var (
		cells  []string
		cell   strings.Builder
		quoted bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delim && !quoted:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(cell.String()))

	return cells
}

// Row returns the row at index i, or nil when the table is shorter.
func (t Table) Row(i int) []string {
	if i < 0 || i >= len(t) {
		return nil
	}
	return t[i]
}

// Cell returns the cell at (row, col), or "" when either is out of range.
// Positional access is schema-fragile; keep call sites behind named
// accessors so a sheet format change touches one function.
func (t Table) Cell(row, col int) string {
	r := t.Row(row)
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// DataRows returns the rows after the given header position.
func (t Table) DataRows(headerRow int) Table {
	if headerRow < 0 || headerRow+1 >= len(t) {
		return nil
	}
	return t[headerRow+1:]
}
