package usecase

import (
	"strconv"
	"strings"
)

// Sheet cells are hand-maintained, so numeric parsing is forgiving:
// blanks and garbage become zero rather than failing the row. Row-level
// validity (a team name, a sane week number) is decided per builder.

func cellInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

func cellFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// divByZeroMarker is what published sheets emit for a win percentage
// formula with zero games played.
const divByZeroMarker = "#DIV/0!"

func cellWinPct(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, divByZeroMarker) {
		return 0
	}
	return cellFloat(raw)
}

func joinName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
