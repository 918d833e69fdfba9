package sheet

// HeaderIndex maps column names, exactly as they appear in a header row,
// to zero-based positions. Lookups by name keep the entity builders
// working when the upstream sheet reorders its columns.
type HeaderIndex map[string]int

// NewHeaderIndex indexes a header row. The first occurrence of a
// duplicated column name wins.
func NewHeaderIndex(headerRow []string) HeaderIndex {
	idx := make(HeaderIndex, len(headerRow))
	for i, name := range headerRow {
		if _, ok := idx[name]; ok {
			continue
		}
		idx[name] = i
	}
	return idx
}

// Cell returns the named column's cell in row, or "" when the column is
// absent from the header or the row is too short.
func (idx HeaderIndex) Cell(row []string, column string) string {
	i, ok := idx[column]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
