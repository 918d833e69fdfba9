package observability

import (
	"context"
	"testing"
	"time"

	"github.com/puckboard/league-engine/internal/config"
	"github.com/puckboard/league-engine/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "league-engine",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	shutdown, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := shutdown(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatal("expected no server when disabled")
	}
	if err := StopPprofServer(nil, logging.NewNop(), time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}
