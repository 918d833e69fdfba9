package usecase

import (
	"strings"

	"github.com/puckboard/league-engine/internal/domain/team"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

const (
	teamColConference     = "CONFERENCE"
	teamColDivision       = "DIVISION"
	teamColAbbreviation   = "ABBREVIATION"
	teamColCity           = "CITY"
	teamColName           = "NAME"
	teamColPrimaryColor   = "PRIMARY COLOR"
	teamColSecondaryColor = "SECONDARY COLOR"
)

func buildTeams(tbl sheet.Table) []team.Team {
	if len(tbl) == 0 {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(0))

	var out []team.Team
	for _, row := range tbl.DataRows(0) {
		name := strings.TrimSpace(idx.Cell(row, teamColName))
		if name == "" {
			continue
		}
		city := strings.TrimSpace(idx.Cell(row, teamColCity))
		out = append(out, team.Team{
			Conference:     strings.TrimSpace(idx.Cell(row, teamColConference)),
			Division:       strings.TrimSpace(idx.Cell(row, teamColDivision)),
			Abbreviation:   strings.TrimSpace(idx.Cell(row, teamColAbbreviation)),
			City:           city,
			Name:           name,
			FullName:       joinName(city, name),
			PrimaryColor:   strings.TrimSpace(idx.Cell(row, teamColPrimaryColor)),
			SecondaryColor: strings.TrimSpace(idx.Cell(row, teamColSecondaryColor)),
		})
	}

	return out
}
