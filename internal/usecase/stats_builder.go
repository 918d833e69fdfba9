package usecase

import (
	"strings"

	"github.com/puckboard/league-engine/internal/domain/stats"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

const (
	statColFirstName = "FIRST NAME"
	statColLastName  = "LAST NAME"
	statColTeam      = "TEAM"
	statColDivision  = "DIVISION"
	statColGoals     = "GOALS"
	statColAssists   = "ASSISTS"
	statColPoints    = "POINTS"
	statColPPG       = "PPG"
	statColGA        = "GA"
	statColGAA       = "GAA"
	statColGP        = "GP"
)

// backupGoaliePlaceholder marks the roster-filler rows some leagues keep
// in their goalie sheet; they carry no real season line.
const backupGoaliePlaceholder = "backup goalie"

func buildPlayerStats(tbl sheet.Table) []stats.PlayerLine {
	if len(tbl) == 0 {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(0))

	var out []stats.PlayerLine
	for _, row := range tbl.DataRows(0) {
		teamName := strings.TrimSpace(idx.Cell(row, statColTeam))
		if teamName == "" {
			continue
		}
		first := strings.TrimSpace(idx.Cell(row, statColFirstName))
		last := strings.TrimSpace(idx.Cell(row, statColLastName))
		out = append(out, stats.PlayerLine{
			FirstName:     first,
			LastName:      last,
			FullName:      joinName(first, last),
			Team:          teamName,
			Division:      strings.TrimSpace(idx.Cell(row, statColDivision)),
			Goals:         cellInt(idx.Cell(row, statColGoals)),
			Assists:       cellInt(idx.Cell(row, statColAssists)),
			Points:        cellInt(idx.Cell(row, statColPoints)),
			PointsPerGame: cellFloat(idx.Cell(row, statColPPG)),
		})
	}

	return out
}

func buildGoalieStats(tbl sheet.Table) []stats.GoalieLine {
	if len(tbl) == 0 {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(0))

	var out []stats.GoalieLine
	for _, row := range tbl.DataRows(0) {
		teamName := strings.TrimSpace(idx.Cell(row, statColTeam))
		if teamName == "" {
			continue
		}
		first := strings.TrimSpace(idx.Cell(row, statColFirstName))
		last := strings.TrimSpace(idx.Cell(row, statColLastName))
		fullName := joinName(first, last)
		if strings.EqualFold(fullName, backupGoaliePlaceholder) {
			continue
		}
		out = append(out, stats.GoalieLine{
			FirstName:    first,
			LastName:     last,
			FullName:     fullName,
			Team:         teamName,
			Division:     strings.TrimSpace(idx.Cell(row, statColDivision)),
			GoalsAgainst: cellInt(idx.Cell(row, statColGA)),
			GAA:          cellFloat(idx.Cell(row, statColGAA)),
			GamesPlayed:  cellInt(idx.Cell(row, statColGP)),
		})
	}

	return out
}
