package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/puckboard/league-engine/internal/platform/cache"
	"github.com/puckboard/league-engine/internal/platform/logging"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

// Master registry columns. The registry is one shared sheet keyed by
// league name; every non-key column holds a fetchable resource location.
const (
	registryColLeague    = "LEAGUE"
	registryColDivisions = "DIVISION INFO"
	registryColTeams     = "TEAM INFO"
	registryColSchedule  = "SCHEDULE"
	registryColStandings = "STANDINGS"
	registryColGoalies   = "GOALIE STATS"
	registryColPlayers   = "PLAYER STATS"
)

// SheetFetcher is the engine's view of the sheets client.
type SheetFetcher interface {
	FetchTable(ctx context.Context, url string) (sheet.Table, error)
}

// Sources holds the six resource locations backing one league.
type Sources struct {
	DivisionURL  string
	TeamURL      string
	ScheduleURL  string
	StandingsURL string
	GoalieURL    string
	PlayerURL    string
}

func (s Sources) complete() bool {
	return s.DivisionURL != "" && s.TeamURL != "" && s.ScheduleURL != "" &&
		s.StandingsURL != "" && s.GoalieURL != "" && s.PlayerURL != ""
}

// RegistryService resolves a league name to its resource locations.
// Resolutions are cached for the rest of the run; concurrent first
// resolutions for the same league share one registry fetch.
type RegistryService struct {
	fetcher     SheetFetcher
	registryURL string
	store       *cache.Store
	logger      *logging.Logger
}

func NewRegistryService(fetcher SheetFetcher, registryURL string, store *cache.Store, logger *logging.Logger) *RegistryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RegistryService{
		fetcher:     fetcher,
		registryURL: strings.TrimSpace(registryURL),
		store:       store,
		logger:      logger,
	}
}

// Resolve returns the resource locations for leagueName. Every failure
// mode maps to ErrLeagueNotConfigured.
func (s *RegistryService) Resolve(ctx context.Context, leagueName string) (Sources, error) {
	ctx, span := startUsecaseSpan(ctx, "registry.Resolve")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return Sources{}, fmt.Errorf("%w: empty league name", ErrLeagueNotConfigured)
	}

	key := registryCacheKey(leagueName)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.resolveFromRegistry(ctx, leagueName)
	})
	if err != nil {
		return Sources{}, err
	}

	sources, ok := value.(Sources)
	if !ok {
		return Sources{}, fmt.Errorf("%w: league=%s", ErrLeagueNotConfigured, leagueName)
	}

	return sources, nil
}

// Invalidate drops the cached resolution for one league.
func (s *RegistryService) Invalidate(ctx context.Context, leagueName string) {
	s.store.Delete(ctx, registryCacheKey(strings.TrimSpace(leagueName)))
}

func (s *RegistryService) resolveFromRegistry(ctx context.Context, leagueName string) (Sources, error) {
	tbl, err := s.fetcher.FetchTable(ctx, s.registryURL)
	if err != nil {
		s.logger.WarnContext(ctx, "registry fetch failed", "error", err)
		return Sources{}, fmt.Errorf("%w: league=%s: %v", ErrLeagueNotConfigured, leagueName, err)
	}
	if len(tbl) < 2 {
		return Sources{}, fmt.Errorf("%w: registry is empty", ErrLeagueNotConfigured)
	}

	idx := sheet.NewHeaderIndex(tbl.Row(0))
	for _, row := range tbl.DataRows(0) {
		if !strings.EqualFold(strings.TrimSpace(idx.Cell(row, registryColLeague)), leagueName) {
			continue
		}

		sources := Sources{
			DivisionURL:  strings.TrimSpace(idx.Cell(row, registryColDivisions)),
			TeamURL:      strings.TrimSpace(idx.Cell(row, registryColTeams)),
			ScheduleURL:  strings.TrimSpace(idx.Cell(row, registryColSchedule)),
			StandingsURL: strings.TrimSpace(idx.Cell(row, registryColStandings)),
			GoalieURL:    strings.TrimSpace(idx.Cell(row, registryColGoalies)),
			PlayerURL:    strings.TrimSpace(idx.Cell(row, registryColPlayers)),
		}
		if !sources.complete() {
			return Sources{}, fmt.Errorf("%w: league=%s has blank registry columns", ErrLeagueNotConfigured, leagueName)
		}
		return sources, nil
	}

	return Sources{}, fmt.Errorf("%w: league=%s", ErrLeagueNotConfigured, leagueName)
}

func registryCacheKey(leagueName string) string {
	return "registry:" + strings.ToLower(leagueName)
}
