package usecase

import (
	"strconv"
	"strings"

	"github.com/puckboard/league-engine/internal/domain/division"
	"github.com/puckboard/league-engine/internal/domain/schedule"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

// The schedule sheet carries week/year metadata above its column header:
// rows 0-1 are metadata, the header lives on row 2.
const scheduleHeaderRow = 2

const (
	schedColWeek         = "WEEK"
	schedColType         = "TYPE"
	schedColSeason       = "SEASON"
	schedColDate         = "DATE"
	schedColShortDate    = "SHORT DATE"
	schedColDay          = "DAY"
	schedColTime         = "TIME"
	schedColHomeTeam     = "HOME TEAM"
	schedColAwayTeam     = "AWAY TEAM"
	schedColHomeDivision = "HOME DIVISION"
	schedColAwayDivision = "AWAY DIVISION"
	schedColHomeScore    = "HOME SCORE"
	schedColAwayScore    = "AWAY SCORE"
	schedColFinal        = "FINAL"
	schedColLocation     = "LOCATION"
	schedColHomeSeed     = "HOME SEED"
	schedColAwaySeed     = "AWAY SEED"
	schedColRound        = "ROUND"
)

// scheduleMeta reads the fixed-position week/year cells above the header.
// Schema-fragile: a sheet layout change must be absorbed here and nowhere
// else.
func scheduleMeta(tbl sheet.Table) schedule.Meta {
	return schedule.Meta{
		Week: strings.TrimSpace(tbl.Cell(1, 2)),
		Year: strings.TrimSpace(tbl.Cell(1, 3)),
	}
}

func buildSchedule(tbl sheet.Table, divisions []division.Division) []schedule.Game {
	if len(tbl) <= scheduleHeaderRow {
		return nil
	}
	idx := sheet.NewHeaderIndex(tbl.Row(scheduleHeaderRow))

	var out []schedule.Game
	for _, row := range tbl.DataRows(scheduleHeaderRow) {
		week, err := strconv.Atoi(strings.TrimSpace(idx.Cell(row, schedColWeek)))
		if err != nil || week < 0 {
			continue
		}

		game := schedule.Game{
			Week:         week,
			Type:         schedule.ParseGameType(idx.Cell(row, schedColType)),
			Season:       strings.TrimSpace(idx.Cell(row, schedColSeason)),
			Date:         strings.TrimSpace(idx.Cell(row, schedColDate)),
			ShortDate:    strings.TrimSpace(idx.Cell(row, schedColShortDate)),
			Day:          strings.TrimSpace(idx.Cell(row, schedColDay)),
			Time:         strings.TrimSpace(idx.Cell(row, schedColTime)),
			HomeTeam:     strings.TrimSpace(idx.Cell(row, schedColHomeTeam)),
			AwayTeam:     strings.TrimSpace(idx.Cell(row, schedColAwayTeam)),
			HomeDivision: resolveDivisionRef(idx.Cell(row, schedColHomeDivision), divisions),
			AwayDivision: resolveDivisionRef(idx.Cell(row, schedColAwayDivision), divisions),
			HomeScore:    strings.TrimSpace(idx.Cell(row, schedColHomeScore)),
			AwayScore:    strings.TrimSpace(idx.Cell(row, schedColAwayScore)),
			Final:        strings.TrimSpace(idx.Cell(row, schedColFinal)),
			Location:     strings.TrimSpace(idx.Cell(row, schedColLocation)),
		}

		if game.Type == schedule.Playoff {
			game.HomeSeed = cellInt(idx.Cell(row, schedColHomeSeed))
			game.AwaySeed = cellInt(idx.Cell(row, schedColAwaySeed))
			game.Round = strings.TrimSpace(idx.Cell(row, schedColRound))
		}

		out = append(out, game)
	}

	return out
}

// resolveDivisionRef enriches a free-text division label. A miss leaves
// every field empty; exhibition and bye rows do this routinely.
func resolveDivisionRef(label string, divisions []division.Division) schedule.DivisionRef {
	d, ok := division.ResolveLabel(strings.TrimSpace(label), divisions)
	if !ok {
		return schedule.DivisionRef{}
	}
	return schedule.DivisionRef{
		Name:         d.Name,
		Abbreviation: d.Abbreviation,
		Conference:   d.Conference,
	}
}
