// Package app wires configuration into the engine's services.
package app

import (
	"github.com/puckboard/league-engine/external/sheets"
	"github.com/puckboard/league-engine/internal/config"
	"github.com/puckboard/league-engine/internal/platform/cache"
	"github.com/puckboard/league-engine/internal/platform/logging"
	"github.com/puckboard/league-engine/internal/platform/resilience"
	"github.com/puckboard/league-engine/internal/usecase"
)

// Engine bundles the services a run needs. Construct one per process.
type Engine struct {
	Config   config.Config
	Logger   *logging.Logger
	Store    *cache.Store
	Client   *sheets.Client
	Registry *usecase.RegistryService
	Loader   *usecase.LeagueDataService
	Refresh  *usecase.RefreshService
}

func New(cfg config.Config, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}

	store := cache.NewStore(cfg.CacheTTL)

	client := sheets.NewClient(sheets.ClientConfig{
		Timeout:    cfg.FetchTimeout,
		MaxRetries: cfg.FetchMaxRetries,
		Delimiter:  cfg.SheetDelimiter,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CircuitEnabled,
			FailureThreshold: cfg.CircuitFailureCount,
			OpenTimeout:      cfg.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CircuitHalfOpenMaxReq,
		},
	})

	registry := usecase.NewRegistryService(client, cfg.RegistryURL, store, logger)
	loader := usecase.NewLeagueDataService(registry, client, store, logger)
	refresh := usecase.NewRefreshService(loader, logger)

	return &Engine{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Client:   client,
		Registry: registry,
		Loader:   loader,
		Refresh:  refresh,
	}
}
