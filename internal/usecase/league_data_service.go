package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/puckboard/league-engine/internal/domain/division"
	"github.com/puckboard/league-engine/internal/domain/schedule"
	"github.com/puckboard/league-engine/internal/domain/standings"
	"github.com/puckboard/league-engine/internal/domain/stats"
	"github.com/puckboard/league-engine/internal/domain/team"
	"github.com/puckboard/league-engine/internal/platform/cache"
	"github.com/puckboard/league-engine/internal/platform/logging"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

// Resource names the six per-league data sheets.
type Resource string

const (
	ResourceDivisions Resource = "divisions"
	ResourceTeams     Resource = "teams"
	ResourceSchedule  Resource = "schedule"
	ResourceStandings Resource = "standings"
	ResourceGoalies   Resource = "goalie_stats"
	ResourcePlayers   Resource = "player_stats"
)

// ResourceStatus distinguishes "loaded zero rows" from "could not load".
// The renderer surfaces Unavailable as missing data, never as a legitimate
// zero.
type ResourceStatus string

const (
	StatusLoaded      ResourceStatus = "loaded"
	StatusUnavailable ResourceStatus = "unavailable"
)

// LeagueData is the immutable per-run snapshot of one league. A fresh
// Load replaces it wholesale; nothing updates it in place.
type LeagueData struct {
	League      string
	Sources     Sources
	Divisions   []division.Division
	Conferences []division.Conference
	Teams       []team.Team
	Standings   []standings.Row
	Games       []schedule.Game
	Meta        schedule.Meta
	Players     []stats.PlayerLine
	Goalies     []stats.GoalieLine
	Status      map[Resource]ResourceStatus
}

// LeagueDataService loads and joins everything a report run needs for one
// league. Raw parsed sheets are cached; built entities never are.
type LeagueDataService struct {
	registry *RegistryService
	fetcher  SheetFetcher
	store    *cache.Store
	logger   *logging.Logger
}

func NewLeagueDataService(registry *RegistryService, fetcher SheetFetcher, store *cache.Store, logger *logging.Logger) *LeagueDataService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueDataService{
		registry: registry,
		fetcher:  fetcher,
		store:    store,
		logger:   logger,
	}
}

// Load resolves the league's sources and builds all entity collections.
// Registry resolution is the hard prerequisite; the resource fetches fan
// out concurrently once it completes. A single failing resource degrades
// to an empty collection and an Unavailable status, not an error.
func (s *LeagueDataService) Load(ctx context.Context, leagueName string) (*LeagueData, error) {
	ctx, span := startUsecaseSpan(ctx, "leaguedata.Load")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	sources, err := s.registry.Resolve(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("resolve league sources: %w", err)
	}

	data := &LeagueData{
		League:  leagueName,
		Sources: sources,
		Status:  make(map[Resource]ResourceStatus, 6),
	}

	// Divisions come first: the schedule build joins against them, and
	// conferences derive from the same sheet.
	divTbl, divOK := s.fetchResource(ctx, leagueName, ResourceDivisions, sources.DivisionURL)
	if divOK {
		data.Divisions = buildDivisions(divTbl)
		data.Conferences = buildConferences(divTbl)
	}

	var mu sync.Mutex
	setStatus := func(r Resource, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		if ok {
			data.Status[r] = StatusLoaded
		} else {
			data.Status[r] = StatusUnavailable
		}
	}
	setStatus(ResourceDivisions, divOK)

	var wg conc.WaitGroup
	wg.Go(func() {
		tbl, ok := s.fetchResource(ctx, leagueName, ResourceTeams, sources.TeamURL)
		if ok {
			data.Teams = buildTeams(tbl)
		}
		setStatus(ResourceTeams, ok)
	})
	wg.Go(func() {
		tbl, ok := s.fetchResource(ctx, leagueName, ResourceStandings, sources.StandingsURL)
		if ok {
			data.Standings = buildStandings(tbl)
		}
		setStatus(ResourceStandings, ok)
	})
	wg.Go(func() {
		tbl, ok := s.fetchResource(ctx, leagueName, ResourceSchedule, sources.ScheduleURL)
		if ok {
			data.Meta = scheduleMeta(tbl)
			data.Games = buildSchedule(tbl, data.Divisions)
		}
		setStatus(ResourceSchedule, ok)
	})
	wg.Go(func() {
		tbl, ok := s.fetchResource(ctx, leagueName, ResourcePlayers, sources.PlayerURL)
		if ok {
			data.Players = buildPlayerStats(tbl)
		}
		setStatus(ResourcePlayers, ok)
	})
	wg.Go(func() {
		tbl, ok := s.fetchResource(ctx, leagueName, ResourceGoalies, sources.GoalieURL)
		if ok {
			data.Goalies = buildGoalieStats(tbl)
		}
		setStatus(ResourceGoalies, ok)
	})
	wg.Wait()

	allUnavailable := true
	for _, status := range data.Status {
		if status == StatusLoaded {
			allUnavailable = false
			break
		}
	}
	if allUnavailable {
		return nil, fmt.Errorf("%w: no resource loaded for league %s", ErrDependencyUnavailable, leagueName)
	}

	return data, nil
}

// Invalidate drops every cached payload for one league, forcing the next
// Load to fetch fresh.
func (s *LeagueDataService) Invalidate(ctx context.Context, leagueName string) {
	leagueName = strings.TrimSpace(leagueName)
	s.registry.Invalidate(ctx, leagueName)
	s.store.DeletePrefix(ctx, sheetCachePrefix(leagueName))
}

// InvalidateAll flushes the whole per-run cache. Called once at the start
// of a run.
func (s *LeagueDataService) InvalidateAll(ctx context.Context) {
	s.store.Flush(ctx)
}

// fetchResource returns the parsed table for one resource, caching the
// raw payload per (league, resource). The bool is false when the fetch
// failed; builders are never fed a partial table.
func (s *LeagueDataService) fetchResource(ctx context.Context, leagueName string, resource Resource, url string) (sheet.Table, bool) {
	key := sheetCachePrefix(leagueName) + string(resource)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.fetcher.FetchTable(ctx, url)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "resource unavailable, continuing with empty collection",
			"league", leagueName,
			"resource", string(resource),
			"error", err,
		)
		return nil, false
	}

	tbl, ok := value.(sheet.Table)
	if !ok {
		return nil, false
	}
	return tbl, true
}

func sheetCachePrefix(leagueName string) string {
	return "sheet:" + strings.ToLower(leagueName) + ":"
}

// TeamByFullName resolves the join key every sheet uses back to a team.
func (d *LeagueData) TeamByFullName(fullName string) (team.Team, bool) {
	for _, t := range d.Teams {
		if t.FullName == fullName {
			return t, true
		}
	}
	return team.Team{}, false
}

// TeamsByDivision returns the teams in a division, in sheet order.
func (d *LeagueData) TeamsByDivision(divisionName string) []team.Team {
	var out []team.Team
	for _, t := range d.Teams {
		if t.Division == divisionName {
			out = append(out, t)
		}
	}
	return out
}

// StandingsByDivision returns the standings rows for a division.
func (d *LeagueData) StandingsByDivision(divisionName string) []standings.Row {
	var out []standings.Row
	for _, r := range d.Standings {
		if r.Division == divisionName {
			out = append(out, r)
		}
	}
	return out
}

// GamesForWeek returns the games scheduled in a week, in sheet order.
func (d *LeagueData) GamesForWeek(week int) []schedule.Game {
	var out []schedule.Game
	for _, g := range d.Games {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out
}

// PlayersByDivision filters the player stat pool to one division.
func (d *LeagueData) PlayersByDivision(divisionName string) []stats.PlayerLine {
	var out []stats.PlayerLine
	for _, p := range d.Players {
		if p.Division == divisionName {
			out = append(out, p)
		}
	}
	return out
}

// GoaliesByDivision filters the goalie stat pool to one division.
func (d *LeagueData) GoaliesByDivision(divisionName string) []stats.GoalieLine {
	var out []stats.GoalieLine
	for _, g := range d.Goalies {
		if g.Division == divisionName {
			out = append(out, g)
		}
	}
	return out
}
