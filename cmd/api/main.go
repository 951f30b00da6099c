package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pidgraph-labs/pidgraph/internal/artifacts"
	"github.com/pidgraph-labs/pidgraph/internal/config"
	api "github.com/pidgraph-labs/pidgraph/internal/httpapi"
	"github.com/pidgraph-labs/pidgraph/internal/jobqueue"
	"github.com/pidgraph-labs/pidgraph/internal/persistence"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := persistence.NewPool(ctx, cfg.Database.DSN(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	s := persistence.NewStore(pool)

	deps := &api.RouterDeps{PipelineCfg: cfg.Pipeline}

	artifactClient, err := artifacts.NewClient(cfg.MinIO)
	if err != nil {
		logger.Warn("minio connection failed, submissions disabled", slog.String("error", err.Error()))
	} else if err := artifactClient.EnsureBucket(ctx); err != nil {
		logger.Warn("minio bucket check failed, submissions disabled", slog.String("error", err.Error()))
	} else {
		deps.Artifacts = artifactClient
		logger.Info("connected to minio")
	}

	vkClient, err := jobqueue.NewClient(cfg.Valkey)
	if err != nil {
		logger.Warn("valkey connection failed, submissions disabled", slog.String("error", err.Error()))
	} else {
		deps.Producer = jobqueue.NewProducer(vkClient)
		defer vkClient.Close()
		logger.Info("connected to valkey")
	}

	router := api.NewRouter(logger, s, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting API server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
