package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/puckboard/league-engine/internal/platform/logging"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	defaultRefreshWorkers = 4
	maxRefreshWorkers     = 16
)

type RefreshResult struct {
	LeagueCount  int               `json:"league_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
	Leagues      []RefreshedLeague `json:"leagues"`
}

type RefreshedLeague struct {
	League     string `json:"league"`
	Status     string `json:"status"`
	Teams      int    `json:"teams"`
	Games      int    `json:"games"`
	Players    int    `json:"players"`
	Goalies    int    `json:"goalies"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// RefreshService reloads a set of leagues on a worker pool. One
// misconfigured league fails its own row; the rest still refresh.
type RefreshService struct {
	loader *LeagueDataService
	logger *logging.Logger
}

func NewRefreshService(loader *LeagueDataService, logger *logging.Logger) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RefreshService{loader: loader, logger: logger}
}

// Refresh invalidates the whole cache, then reloads every named league
// concurrently. Rows come back sorted by league name.
func (s *RefreshService) Refresh(ctx context.Context, leagues []string, maxWorkers int) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "refresh.Refresh")
	defer span.End()

	if len(leagues) == 0 {
		return RefreshResult{}, fmt.Errorf("%w: at least one league is required", ErrInvalidInput)
	}

	workerCount := maxWorkers
	if workerCount < 1 {
		workerCount = defaultRefreshWorkers
	}
	if workerCount > maxRefreshWorkers {
		workerCount = maxRefreshWorkers
	}
	if workerCount > len(leagues) {
		workerCount = len(leagues)
	}

	s.loader.InvalidateAll(ctx)

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan RefreshedLeague, len(leagues))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, league := range leagues {
		league := league
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshedLeague{League: league}

			data, loadErr := s.loader.Load(ctx, league)
			if loadErr != nil {
				row.Status = refreshStatusFailed
				row.Message = loadErr.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "league refresh failed", "league", league, "error", loadErr)
			} else {
				row.Status = refreshStatusSuccess
				row.Teams = len(data.Teams)
				row.Games = len(data.Games)
				row.Players = len(data.Players)
				row.Goalies = len(data.Goalies)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit league to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	result := RefreshResult{
		LeagueCount: len(leagues),
		WorkerCount: workerCount,
	}
	for row := range rows {
		result.Leagues = append(result.Leagues, row)
	}
	sort.SliceStable(result.Leagues, func(i, j int) bool {
		return result.Leagues[i].League < result.Leagues[j].League
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}
