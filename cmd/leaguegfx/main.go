package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/puckboard/league-engine/internal/app"
	"github.com/puckboard/league-engine/internal/config"
	"github.com/puckboard/league-engine/internal/interfaces/export"
	"github.com/puckboard/league-engine/internal/observability"
	"github.com/puckboard/league-engine/internal/platform/logging"
)

func main() {
	league := flag.String("league", "", "league to export; defaults to the first configured league")
	refresh := flag.Bool("refresh", false, "reload every configured league and print the refresh summary")
	out := flag.String("out", "", "write output to a file instead of stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := app.New(cfg, logger)

	exitCode := 0
	if *refresh {
		exitCode = runRefresh(ctx, engine, *out)
	} else {
		target := *league
		if target == "" {
			target = cfg.Leagues[0]
		}
		exitCode = runExport(ctx, engine, target, *out)
	}

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownUptrace(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
	if err := stopPyroscope(); err != nil {
		logger.Error("stop pyroscope", "error", err)
	}
	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		logger.Error("stop pprof", "error", err)
	}

	os.Exit(exitCode)
}

func runExport(ctx context.Context, engine *app.Engine, league, out string) int {
	logger := engine.Logger

	data, err := engine.Loader.Load(ctx, league)
	if err != nil {
		logger.ErrorContext(ctx, "load league", "league", league, "error", err)
		return 1
	}

	report := export.BuildReport(data, export.Options{})
	raw, err := export.EncodeReport(report)
	if err != nil {
		logger.ErrorContext(ctx, "encode report", "league", league, "error", err)
		return 1
	}

	if err := writeOutput(out, raw); err != nil {
		logger.ErrorContext(ctx, "write report", "league", league, "error", err)
		return 1
	}

	logger.InfoContext(ctx, "report exported",
		"league", league,
		"week", report.Week,
		"teams", len(data.Teams),
		"games", len(data.Games),
		"unavailable", len(report.Unavailable),
	)
	return 0
}

func runRefresh(ctx context.Context, engine *app.Engine, out string) int {
	logger := engine.Logger

	result, err := engine.Refresh.Refresh(ctx, engine.Config.Leagues, engine.Config.RefreshMaxWorkers)
	if err != nil {
		logger.ErrorContext(ctx, "refresh leagues", "error", err)
		return 1
	}

	raw, err := export.Encode(result)
	if err != nil {
		logger.ErrorContext(ctx, "encode refresh summary", "error", err)
		return 1
	}
	if err := writeOutput(out, raw); err != nil {
		logger.ErrorContext(ctx, "write refresh summary", "error", err)
		return 1
	}

	logger.InfoContext(ctx, "refresh finished",
		"leagues", result.LeagueCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	if result.FailedCount > 0 {
		return 1
	}
	return 0
}

func writeOutput(path string, raw []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(raw)
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
