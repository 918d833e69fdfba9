// Command sheetserver serves a directory of sheet fixtures over HTTP so
// a full league run can execute against local data. Point REGISTRY_URL
// at http://localhost:<port>/registry.csv and keep the per-league sheet
// files next to it.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"

	"github.com/puckboard/league-engine/internal/platform/logging"
)

func main() {
	addr := flag.String("addr", ":8090", "listen address")
	root := flag.String("root", "./fixtures", "directory of sheet fixture files")
	flag.Parse()

	logger := logging.NewJSON(logging.LevelInfo)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if info, err := os.Stat(*root); err != nil || !info.IsDir() {
		logger.Error("fixture root is not a directory", "root", *root, "error", err)
		os.Exit(1)
	}

	fs := &fasthttp.FS{
		Root:               *root,
		AcceptByteRange:    false,
		GenerateIndexPages: true,
	}
	handler := fs.NewRequestHandler()

	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			handler(ctx)
			logger.Info("served fixture",
				"path", string(ctx.Path()),
				"status", ctx.Response.StatusCode(),
			)
		},
		Name: "sheetserver",
	}

	go func() {
		logger.Info("sheet fixture server starting", "addr", *addr, "root", *root)
		if err := srv.ListenAndServe(*addr); err != nil {
			logger.Error("sheet fixture server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := srv.Shutdown(); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("sheet fixture server stopped")
}
