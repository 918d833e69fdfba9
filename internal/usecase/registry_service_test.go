package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/puckboard/league-engine/internal/platform/cache"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

type fakeFetcher struct {
	mu     sync.Mutex
	tables map[string]sheet.Table
	errs   map[string]error
	hits   map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		tables: make(map[string]sheet.Table),
		errs:   make(map[string]error),
		hits:   make(map[string]int),
	}
}

func (f *fakeFetcher) FetchTable(_ context.Context, url string) (sheet.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits[url]++
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	tbl, ok := f.tables[url]
	if !ok {
		return nil, fmt.Errorf("no table for %s", url)
	}
	return tbl, nil
}

func (f *fakeFetcher) hitCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[url]
}

const registryURL = "https://sheets.test/registry"

func registryTable(rows ...[]string) sheet.Table {
	tbl := sheet.Table{{"LEAGUE", "DIVISION INFO", "TEAM INFO", "SCHEDULE", "STANDINGS", "GOALIE STATS", "PLAYER STATS"}}
	return append(tbl, rows...)
}

func fullRegistryRow(league string) []string {
	return []string{league, "u/div", "u/team", "u/sched", "u/stand", "u/goalie", "u/player"}
}

func newRegistry(f *fakeFetcher) *RegistryService {
	return NewRegistryService(f, registryURL, cache.NewStore(0), nil)
}

func TestRegistryService_ResolveHappyPath(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	fetcher.tables[registryURL] = registryTable(fullRegistryRow("NPHL"))
	svc := newRegistry(fetcher)

	got, err := svc.Resolve(context.Background(), "NPHL")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Sources{
		DivisionURL:  "u/div",
		TeamURL:      "u/team",
		ScheduleURL:  "u/sched",
		StandingsURL: "u/stand",
		GoalieURL:    "u/goalie",
		PlayerURL:    "u/player",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRegistryService_MatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	fetcher.tables[registryURL] = registryTable(fullRegistryRow("NPHL"))
	svc := newRegistry(fetcher)

	if _, err := svc.Resolve(context.Background(), "nphl"); err != nil {
		t.Fatalf("lowercase resolve: %v", err)
	}
}

func TestRegistryService_BlankRequiredColumn(t *testing.T) {
	t.Parallel()

	row := fullRegistryRow("NPHL")
	row[4] = "" // STANDINGS

	fetcher := newFakeFetcher()
	fetcher.tables[registryURL] = registryTable(row)
	svc := newRegistry(fetcher)

	if _, err := svc.Resolve(context.Background(), "NPHL"); !errors.Is(err, ErrLeagueNotConfigured) {
		t.Fatalf("got %v, want ErrLeagueNotConfigured", err)
	}
}

func TestRegistryService_FailureModesCollapse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(*fakeFetcher)
		query string
	}{
		{"empty league name", func(f *fakeFetcher) {
			f.tables[registryURL] = registryTable(fullRegistryRow("NPHL"))
		}, "   "},
		{"registry fetch fails", func(f *fakeFetcher) {
			f.errs[registryURL] = errors.New("unreachable")
		}, "NPHL"},
		{"registry empty", func(f *fakeFetcher) {
			f.tables[registryURL] = registryTable()
		}, "NPHL"},
		{"no matching row", func(f *fakeFetcher) {
			f.tables[registryURL] = registryTable(fullRegistryRow("OTHER"))
		}, "NPHL"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fetcher := newFakeFetcher()
			tc.setup(fetcher)
			svc := newRegistry(fetcher)

			if _, err := svc.Resolve(context.Background(), tc.query); !errors.Is(err, ErrLeagueNotConfigured) {
				t.Fatalf("got %v, want ErrLeagueNotConfigured", err)
			}
		})
	}
}

func TestRegistryService_CachesResolution(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	fetcher.tables[registryURL] = registryTable(fullRegistryRow("NPHL"))
	svc := newRegistry(fetcher)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := svc.Resolve(ctx, "NPHL"); err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
	}
	if got := fetcher.hitCount(registryURL); got != 1 {
		t.Fatalf("registry fetched %d times, want 1", got)
	}

	svc.Invalidate(ctx, "NPHL")
	if _, err := svc.Resolve(ctx, "NPHL"); err != nil {
		t.Fatalf("resolve after invalidate: %v", err)
	}
	if got := fetcher.hitCount(registryURL); got != 2 {
		t.Fatalf("registry fetched %d times after invalidate, want 2", got)
	}
}

func TestRegistryService_FailedResolutionIsNotCached(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	fetcher.errs[registryURL] = errors.New("down")
	svc := newRegistry(fetcher)

	ctx := context.Background()
	if _, err := svc.Resolve(ctx, "NPHL"); !errors.Is(err, ErrLeagueNotConfigured) {
		t.Fatalf("got %v, want ErrLeagueNotConfigured", err)
	}

	delete(fetcher.errs, registryURL)
	fetcher.tables[registryURL] = registryTable(fullRegistryRow("NPHL"))

	if _, err := svc.Resolve(ctx, "NPHL"); err != nil {
		t.Fatalf("resolve after recovery: %v", err)
	}
}
