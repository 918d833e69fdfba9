package usecase

import (
	"strings"

	"github.com/puckboard/league-engine/internal/domain/division"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

const (
	divColConference      = "CONFERENCE"
	divColDivision        = "DIVISION"
	divColAbbreviation    = "ABBREVIATION"
	divColPrimaryColor    = "PRIMARY COLOR"
	divColSecondaryColor  = "SECONDARY COLOR"
	divColShortName       = "SHORT NAME"
	divColConferenceColor = "CONFERENCE COLOR"
	divColTimeZone        = "TIME ZONE"
	divColLocation        = "LOCATION"
)

func buildDivisions(tbl sheet.Table) []division.Division {
	if len(tbl) == 0 {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(0))

	var out []division.Division
	for _, row := range tbl.DataRows(0) {
		name := strings.TrimSpace(idx.Cell(row, divColDivision))
		if name == "" {
			continue
		}
		out = append(out, division.Division{
			Conference:     strings.TrimSpace(idx.Cell(row, divColConference)),
			Name:           name,
			Abbreviation:   strings.TrimSpace(idx.Cell(row, divColAbbreviation)),
			PrimaryColor:   strings.TrimSpace(idx.Cell(row, divColPrimaryColor)),
			SecondaryColor: strings.TrimSpace(idx.Cell(row, divColSecondaryColor)),
			ShortName:      strings.TrimSpace(idx.Cell(row, divColShortName)),
		})
	}

	return out
}

// buildConferences de-duplicates the conference column of the division
// sheet; the first occurrence supplies color, time zone, and location.
func buildConferences(tbl sheet.Table) []division.Conference {
	if len(tbl) == 0 {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(0))

	seen := make(map[string]struct{})
	var out []division.Conference
	for _, row := range tbl.DataRows(0) {
		name := strings.TrimSpace(idx.Cell(row, divColConference))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, division.Conference{
			Name:     name,
			Color:    strings.TrimSpace(idx.Cell(row, divColConferenceColor)),
			TimeZone: strings.TrimSpace(idx.Cell(row, divColTimeZone)),
			Location: strings.TrimSpace(idx.Cell(row, divColLocation)),
		})
	}

	return out
}
