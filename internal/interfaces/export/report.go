// Package export assembles the renderer hand-off document and encodes it
// to JSON. The renderer is a pure consumer of this output; everything it
// pages over is pre-chunked here.
package export

import (
	"time"

	"github.com/puckboard/league-engine/internal/domain/layout"
	"github.com/puckboard/league-engine/internal/domain/schedule"
	"github.com/puckboard/league-engine/internal/domain/standings"
	"github.com/puckboard/league-engine/internal/domain/stats"
	"github.com/puckboard/league-engine/internal/domain/team"
	"github.com/puckboard/league-engine/internal/usecase"
)

const (
	defaultMaxStandingsRows = 8
	defaultMaxGamesPerPage  = 6
	defaultLeaderboardSize  = 10
)

// Options controls page sizes in the assembled report. Zero values fall
// back to the template defaults.
type Options struct {
	MaxStandingsRows int `json:"max_standings_rows"`
	MaxGamesPerPage  int `json:"max_games_per_page"`
	LeaderboardSize  int `json:"leaderboard_size"`
}

func (o Options) withDefaults() Options {
	if o.MaxStandingsRows < 1 {
		o.MaxStandingsRows = defaultMaxStandingsRows
	}
	if o.MaxGamesPerPage < 1 {
		o.MaxGamesPerPage = defaultMaxGamesPerPage
	}
	if o.LeaderboardSize < 1 {
		o.LeaderboardSize = defaultLeaderboardSize
	}
	return o
}

// Report is the complete document for one league's weekly graphics run.
type Report struct {
	League      string                                      `json:"league"`
	Week        string                                      `json:"week"`
	Year        string                                      `json:"year"`
	GeneratedAt time.Time                                   `json:"generated_at"`
	Divisions   []DivisionSection                           `json:"divisions"`
	Leaders     Leaderboards                                `json:"leaders"`
	Schedule    [][]schedule.Game                           `json:"schedule_pages"`
	Unavailable []usecase.Resource                          `json:"unavailable,omitempty"`
	Status      map[usecase.Resource]usecase.ResourceStatus `json:"status"`
}

// DivisionSection carries one division's pre-paged tables. Team lists are
// split into two columns with the longer column first.
type DivisionSection struct {
	Label          string            `json:"label"`
	Abbreviation   string            `json:"abbreviation"`
	PrimaryColor   string            `json:"primary_color"`
	SecondaryColor string            `json:"secondary_color"`
	StandingsPages [][]standings.Row `json:"standings_pages"`
	TeamsLeft      []team.Team       `json:"teams_left"`
	TeamsRight     []team.Team       `json:"teams_right"`
}

// Leaderboards holds the fixed-size boards, sentinel-padded so the
// renderer always has exactly the configured number of rows.
type Leaderboards struct {
	Points          []stats.PlayerLine `json:"points"`
	Goals           []stats.PlayerLine `json:"goals"`
	PointsPerGame   []stats.PlayerLine `json:"points_per_game"`
	GoalsAgainstAvg []stats.GoalieLine `json:"goals_against_avg"`
}

// BuildReport assembles the hand-off document from a loaded snapshot.
func BuildReport(data *usecase.LeagueData, opts Options) Report {
	opts = opts.withDefaults()

	report := Report{
		League:      data.League,
		Week:        data.Meta.Week,
		Year:        data.Meta.Year,
		GeneratedAt: time.Now().UTC(),
		Status:      data.Status,
		Leaders: Leaderboards{
			Points:          usecase.TopPoints(data.Players, opts.LeaderboardSize),
			Goals:           usecase.TopGoals(data.Players, opts.LeaderboardSize),
			PointsPerGame:   usecase.TopPointsPerGame(data.Players, opts.LeaderboardSize),
			GoalsAgainstAvg: usecase.TopGoalsAgainstAverage(data.Goalies, opts.LeaderboardSize),
		},
		Schedule: layout.Chunk(data.Games, opts.MaxGamesPerPage),
	}

	for _, d := range data.Divisions {
		left, right := layout.SplitHead(data.TeamsByDivision(d.Name))
		report.Divisions = append(report.Divisions, DivisionSection{
			Label:          d.Label(),
			Abbreviation:   d.Abbreviation,
			PrimaryColor:   d.PrimaryColor,
			SecondaryColor: d.SecondaryColor,
			StandingsPages: layout.Chunk(data.StandingsByDivision(d.Name), opts.MaxStandingsRows),
			TeamsLeft:      left,
			TeamsRight:     right,
		})
	}

	for resource, status := range data.Status {
		if status == usecase.StatusUnavailable {
			report.Unavailable = append(report.Unavailable, resource)
		}
	}

	return report
}
