package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pidgraph-labs/pidgraph/internal/artifacts"
	"github.com/pidgraph-labs/pidgraph/internal/config"
	"github.com/pidgraph-labs/pidgraph/internal/jobqueue"
	"github.com/pidgraph-labs/pidgraph/internal/persistence"
	"github.com/pidgraph-labs/pidgraph/pkg/apierr"
	"github.com/pidgraph-labs/pidgraph/pkg/models"
)

// GraphConstructionHandler exposes the three graph-construction routes:
// submit a job, poll its status, and fetch its result. It never runs the
// pipeline itself — that happens in cmd/worker, driven by jobqueue.Consumer.
type GraphConstructionHandler struct {
	logger      *slog.Logger
	store       *persistence.Store
	artifacts   *artifacts.Client
	producer    *jobqueue.Producer
	pipelineCfg config.PipelineConfig
}

func NewGraphConstructionHandler(logger *slog.Logger, store *persistence.Store, art *artifacts.Client, producer *jobqueue.Producer, pipelineCfg config.PipelineConfig) *GraphConstructionHandler {
	return &GraphConstructionHandler{logger: logger, store: store, artifacts: art, producer: producer, pipelineCfg: pipelineCfg}
}

// Submit handles POST /pids/{pid}/graph-construction.
func (h *GraphConstructionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	pidName := chi.URLParam(r, "pid")
	if pidName == "" {
		writeAPIError(w, h.logger, apierr.MissingField("pid"))
		return
	}

	var req models.JobSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, h.logger, apierr.InvalidRequestBody())
		return
	}

	if apiErr := validateJobSubmitRequest(req); apiErr != nil {
		writeAPIError(w, h.logger, apiErr)
		return
	}

	if existing, err := h.store.GetJobStatusByPID(r.Context(), pidName); err == nil &&
		(existing.Status == models.JobStatusSubmitted || existing.Status == models.JobStatusInProgress) {
		writeAPIError(w, h.logger, apierr.JobAlreadyRunning(pidName))
		return
	}

	jobID := uuid.New()
	now := time.Now()

	input := toGraphcoreInput(req, h.pipelineCfg.Thresholds(req.Image.MaxDimension()))
	if err := h.artifacts.SaveRequest(r.Context(), pidName, input); err != nil {
		writeAPIError(w, h.logger, apierr.DependencyFailure("artifact storage", err))
		return
	}

	rec := models.JobStatusRecord{JobID: jobID, PID: pidName, Status: models.JobStatusSubmitted, UpdatedAt: now}
	if err := h.store.UpsertJobStatus(r.Context(), rec); err != nil {
		writeAPIError(w, h.logger, apierr.DependencyFailure("database", err))
		return
	}
	if err := h.artifacts.SaveJobStatus(r.Context(), pidName, rec); err != nil {
		h.logger.Warn("save job status artifact", slog.String("error", err.Error()), slog.String("pid", pidName))
	}

	msg := jobqueue.JobMessage{JobID: jobID, PID: pidName, Trigger: "manual"}
	if _, err := h.producer.Enqueue(r.Context(), msg); err != nil {
		writeAPIError(w, h.logger, apierr.DependencyFailure("job queue", err))
		return
	}

	writeJSON(w, http.StatusAccepted, models.JobSubmitResponse{
		JobID: jobID, PID: pidName, Status: models.JobStatusSubmitted, CreatedAt: now,
	})
}

// Status handles GET /pids/{pid}/graph-construction/status.
func (h *GraphConstructionHandler) Status(w http.ResponseWriter, r *http.Request) {
	pidName := chi.URLParam(r, "pid")

	rec, err := h.store.GetJobStatusByPID(r.Context(), pidName)
	if err != nil {
		if apierr.IsNotFound(err) {
			writeAPIError(w, h.logger, apierr.PIDNotFound(pidName))
			return
		}
		// Database is unavailable; fall back to the artifact store's copy
		// of the last-written status rather than failing the poll outright.
		if fallback, fbErr := h.artifacts.LoadJobStatus(r.Context(), pidName); fbErr == nil {
			h.logger.Warn("job status db lookup failed, served artifact fallback",
				slog.String("error", err.Error()), slog.String("pid", pidName))
			writeJSON(w, http.StatusOK, fallback)
			return
		}
		writeAPIError(w, h.logger, apierr.InternalError(err))
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Result handles GET /pids/{pid}/graph-construction/result.
func (h *GraphConstructionHandler) Result(w http.ResponseWriter, r *http.Request) {
	pidName := chi.URLParam(r, "pid")

	rec, err := h.store.GetJobStatusByPID(r.Context(), pidName)
	if err != nil {
		if apierr.IsNotFound(err) {
			writeAPIError(w, h.logger, apierr.PIDNotFound(pidName))
		} else {
			writeAPIError(w, h.logger, apierr.InternalError(err))
		}
		return
	}
	if rec.Status != models.JobStatusDone {
		writeAPIError(w, h.logger, apierr.ArtifactNotReady(pidName))
		return
	}

	out, err := h.artifacts.LoadResult(r.Context(), pidName)
	if err != nil {
		writeAPIError(w, h.logger, apierr.DependencyFailure("artifact storage", err))
		return
	}

	writeJSON(w, http.StatusOK, models.FromOutput(out))
}
