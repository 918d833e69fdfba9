package app

import (
	"testing"
	"time"

	"github.com/puckboard/league-engine/internal/config"
	"github.com/puckboard/league-engine/internal/platform/logging"
)

func TestNew_WiresServices(t *testing.T) {
	cfg := config.Config{
		AppEnv:       config.EnvDev,
		ServiceName:  "league-engine",
		RegistryURL:  "https://sheets.example.com/registry",
		FetchTimeout: 5 * time.Second,
		Leagues:      []string{"NPHL"},
	}

	engine := New(cfg, logging.NewNop())
	if engine.Store == nil || engine.Client == nil {
		t.Fatal("platform pieces not wired")
	}
	if engine.Registry == nil || engine.Loader == nil || engine.Refresh == nil {
		t.Fatal("services not wired")
	}
}
