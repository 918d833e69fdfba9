package usecase

import (
	"strings"

	"github.com/puckboard/league-engine/internal/domain/standings"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

const (
	standColTeam     = "TEAM"
	standColDivision = "DIVISION"
	standColGP       = "GP"
	standColWins     = "W"
	standColOTW      = "OTW"
	standColOTL      = "OTL"
	standColLosses   = "L"
	standColPoints   = "PTS"
	standColDiff     = "DIFF"
	standColWinPct   = "WIN %"
	standColGF       = "GF"
	standColGA       = "GA"
	standColRank     = "RANK"
)

func buildStandings(tbl sheet.Table) []standings.Row {
	if len(tbl) == 0 {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(0))

	var out []standings.Row
	for _, row := range tbl.DataRows(0) {
		teamName := strings.TrimSpace(idx.Cell(row, standColTeam))
		if teamName == "" {
			continue
		}
		out = append(out, standings.Row{
			TeamFullName: teamName,
			Division:     strings.TrimSpace(idx.Cell(row, standColDivision)),
			GamesPlayed:  cellInt(idx.Cell(row, standColGP)),
			Wins:         cellInt(idx.Cell(row, standColWins)),
			OvertimeWins: cellInt(idx.Cell(row, standColOTW)),
			OvertimeLoss: cellInt(idx.Cell(row, standColOTL)),
			Losses:       cellInt(idx.Cell(row, standColLosses)),
			Points:       cellInt(idx.Cell(row, standColPoints)),
			GoalDiff:     cellInt(idx.Cell(row, standColDiff)),
			WinPct:       cellWinPct(idx.Cell(row, standColWinPct)),
			GoalsFor:     cellInt(idx.Cell(row, standColGF)),
			GoalsAgainst: cellInt(idx.Cell(row, standColGA)),
			Rank:         cellInt(idx.Cell(row, standColRank)),
		})
	}

	return out
}
