package usecase

import (
	"testing"

	"github.com/puckboard/league-engine/internal/domain/division"
	"github.com/puckboard/league-engine/internal/domain/schedule"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

func scheduleTable(dataRows ...[]string) sheet.Table {
	tbl := sheet.Table{
		{"Schedule", "", "", ""},
		{"Current", "", "14", "2026"},
		{"WEEK", "TYPE", "SEASON", "DATE", "SHORT DATE", "DAY", "TIME", "HOME TEAM", "AWAY TEAM", "HOME DIVISION", "AWAY DIVISION", "HOME SCORE", "AWAY SCORE", "FINAL", "LOCATION", "HOME SEED", "AWAY SEED", "ROUND"},
	}
	return append(tbl, dataRows...)
}

func testDivisions() []division.Division {
	return []division.Division{
		{Conference: "Northern", Name: "Coastal", Abbreviation: "NC"},
		{Conference: "Southern", Name: "Coastal", Abbreviation: "SC"},
	}
}

func TestScheduleMeta_ReadsFixedCells(t *testing.T) {
	t.Parallel()

	meta := scheduleMeta(scheduleTable())
	if meta.Week != "14" || meta.Year != "2026" {
		t.Fatalf("meta = %+v, want week 14 year 2026", meta)
	}
}

func TestBuildSchedule_DropsBadWeeks(t *testing.T) {
	t.Parallel()

	tbl := scheduleTable(
		[]string{"3", "Regular Season", "2025-26", "January 17", "1/17", "Sat", "7:00 PM", "Home A", "Away A", "Northern Coastal", "Southern Coastal", "4", "2", "Final", "Rink 1", "", "", ""},
		[]string{"abc", "Regular Season", "2025-26", "January 18", "1/18", "Sun", "1:00 PM", "Home B", "Away B", "Northern Coastal", "Northern Coastal", "", "", "", "Rink 1", "", "", ""},
		[]string{"-1", "Regular Season", "2025-26", "January 18", "1/18", "Sun", "3:00 PM", "Home C", "Away C", "Northern Coastal", "Northern Coastal", "", "", "", "Rink 2", "", "", ""},
		[]string{"0", "Regular Season", "2025-26", "January 10", "1/10", "Sat", "5:00 PM", "Home D", "Away D", "Northern Coastal", "Northern Coastal", "", "", "", "Rink 2", "", "", ""},
	)

	games := buildSchedule(tbl, testDivisions())
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2 (week abc and -1 dropped, week 0 kept)", len(games))
	}
	if games[0].Week != 3 || games[1].Week != 0 {
		t.Fatalf("weeks = %d, %d", games[0].Week, games[1].Week)
	}
}

func TestBuildSchedule_ResolvesDivisionLabels(t *testing.T) {
	t.Parallel()

	tbl := scheduleTable(
		[]string{"1", "Regular Season", "2025-26", "January 3", "1/3", "Sat", "7:00 PM", "Home A", "Away A", "Northern Coastal", "Exhibition", "", "", "", "Rink 1", "", "", ""},
	)

	games := buildSchedule(tbl, testDivisions())
	if len(games) != 1 {
		t.Fatalf("got %d games", len(games))
	}

	home := games[0].HomeDivision
	if home.Abbreviation != "NC" || home.Conference != "Northern" || home.Name != "Coastal" {
		t.Fatalf("home division = %+v", home)
	}

	// Unmatched label resolves silently to empty fields.
	away := games[0].AwayDivision
	if away != (schedule.DivisionRef{}) {
		t.Fatalf("away division = %+v, want zero", away)
	}
}

func TestBuildSchedule_PlayoffFields(t *testing.T) {
	t.Parallel()

	tbl := scheduleTable(
		[]string{"15", "Playoffs", "2025-26", "March 7", "3/7", "Sat", "7:00 PM", "Home A", "Away A", "Northern Coastal", "Northern Coastal", "", "", "", "Rink 1", "1", "4", "Semifinal"},
		[]string{"2", "Regular Season", "2025-26", "January 10", "1/10", "Sat", "7:00 PM", "Home B", "Away B", "Northern Coastal", "Northern Coastal", "", "", "", "Rink 1", "9", "9", "ignored"},
	)

	games := buildSchedule(tbl, testDivisions())

	playoff := games[0]
	if playoff.Type != schedule.Playoff || playoff.HomeSeed != 1 || playoff.AwaySeed != 4 || playoff.Round != "Semifinal" {
		t.Fatalf("playoff game = %+v", playoff)
	}

	regular := games[1]
	if regular.Type != schedule.RegularSeason || regular.HomeSeed != 0 || regular.Round != "" {
		t.Fatalf("regular game should have zero playoff fields: %+v", regular)
	}
}

func TestBuildSchedule_TableTooShort(t *testing.T) {
	t.Parallel()

	if games := buildSchedule(sheet.Table{{"only"}, {"two"}}, nil); games != nil {
		t.Fatalf("got %v, want nil", games)
	}
}
