package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/pidgraph-labs/pidgraph/internal/artifacts"
	"github.com/pidgraph-labs/pidgraph/internal/config"
	"github.com/pidgraph-labs/pidgraph/internal/graphcore"
	"github.com/pidgraph-labs/pidgraph/internal/jobqueue"
	"github.com/pidgraph-labs/pidgraph/internal/persistence"
	"github.com/pidgraph-labs/pidgraph/pkg/models"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := persistence.NewPool(ctx, cfg.Database.DSN(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	s := persistence.NewStore(pool)

	artifactClient, err := artifacts.NewClient(cfg.MinIO)
	if err != nil {
		logger.Error("failed to connect to minio", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := artifactClient.EnsureBucket(ctx); err != nil {
		logger.Error("failed to ensure minio bucket", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("connected to minio")

	vkClient, err := jobqueue.NewClient(cfg.Valkey)
	if err != nil {
		logger.Error("failed to connect to valkey", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer vkClient.Close()
	logger.Info("connected to valkey")

	pipeline := graphcore.NewPipeline(logger)

	w := &worker{
		logger:                 logger,
		store:                  s,
		artifact:               artifactClient,
		pipeline:               pipeline,
		connectorLabelPrefixes: cfg.Pipeline.SymbolLabelForConnectors,
	}

	consumer := jobqueue.NewConsumer(vkClient, "worker-1", logger)
	if err := consumer.EnsureGroup(ctx); err != nil {
		logger.Error("failed to ensure consumer group", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("starting worker, consuming from stream", slog.String("stream", jobqueue.StreamName))
	if err := consumer.Consume(ctx, w.handle); err != nil {
		if ctx.Err() == nil {
			logger.Error("consumer error", slog.String("error", err.Error()))
		}
	}

	logger.Info("worker stopped")
}

// worker runs one graph-construction job end to end: load the submitted
// input, run the pipeline, and persist the result or the failure.
type worker struct {
	logger                 *slog.Logger
	store                  *persistence.Store
	artifact               *artifacts.Client
	pipeline               *graphcore.Pipeline
	connectorLabelPrefixes []string
}

func (w *worker) handle(ctx context.Context, msg jobqueue.JobMessage) error {
	w.logger.Info("processing job", slog.String("pid", msg.PID), slog.String("job_id", msg.JobID.String()))

	if existing, err := w.store.GetJobStatus(ctx, msg.JobID); err == nil && existing.Status == models.JobStatusDone {
		w.logger.Info("job already done, skipping redelivery", slog.String("job_id", msg.JobID.String()))
		return nil
	}

	if err := w.markStatus(ctx, msg.JobID, msg.PID, models.JobStatusInProgress, "running pipeline", ""); err != nil {
		w.logger.Warn("mark in_progress failed", slog.String("error", err.Error()))
	}

	input, err := w.artifact.LoadRequest(ctx, msg.PID)
	if err != nil {
		return w.fail(ctx, msg, "load request artifact", err)
	}

	out, err := w.pipeline.Run(ctx, input)
	if err != nil {
		return w.fail(ctx, msg, "run pipeline", err)
	}

	if err := w.artifact.SaveResult(ctx, msg.PID, out); err != nil {
		return w.fail(ctx, msg, "save result artifact", err)
	}

	if err := w.store.WithTx(ctx, func(q *persistence.Queries) error {
		return persistence.WriteOutput(ctx, q, msg.PID, msg.PID, out, w.connectorLabelPrefixes)
	}); err != nil {
		return w.fail(ctx, msg, "write graph to database", err)
	}

	if err := w.markStatus(ctx, msg.JobID, msg.PID, models.JobStatusDone, "", ""); err != nil {
		w.logger.Warn("mark done failed", slog.String("error", err.Error()))
	}

	return nil
}

// fail records the job as failed with the triggering error's message and no
// partial graph is persisted, then returns nil so the message is ACKed
// rather than retried forever against the same bad input.
func (w *worker) fail(ctx context.Context, msg jobqueue.JobMessage, step string, cause error) error {
	w.logger.Error("job failed", slog.String("pid", msg.PID), slog.String("step", step), slog.String("error", cause.Error()))
	if err := w.markStatus(ctx, msg.JobID, msg.PID, models.JobStatusFailure, step, cause.Error()); err != nil {
		w.logger.Warn("mark failure failed", slog.String("error", err.Error()))
	}
	return nil
}

func (w *worker) markStatus(ctx context.Context, jobID uuid.UUID, pidName string, status models.JobStatus, step, message string) error {
	rec := models.JobStatusRecord{
		JobID: jobID, PID: pidName, Status: status, Step: step, Message: message, UpdatedAt: time.Now(),
	}
	if err := w.store.UpsertJobStatus(ctx, rec); err != nil {
		return err
	}
	if err := w.artifact.SaveJobStatus(ctx, pidName, rec); err != nil {
		w.logger.Warn("save job status artifact", slog.String("error", err.Error()), slog.String("pid", pidName))
	}
	return nil
}
