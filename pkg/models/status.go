package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pidgraph-labs/pidgraph/internal/graphcore"
)

// JobStatus is the lifecycle state of a graph-construction job.
type JobStatus string

const (
	JobStatusSubmitted  JobStatus = "submitted"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusDone       JobStatus = "done"
	JobStatusFailure    JobStatus = "failure"
)

// JobStatusRecord is the status record returned by
// GET /pids/{pid}/graph-construction/status, persisted on submission and
// before and after the pipeline run.
type JobStatusRecord struct {
	JobID     uuid.UUID `json:"job_id"`
	PID       string    `json:"pid"`
	Status    JobStatus `json:"status"`
	Step      string    `json:"step,omitempty"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobResultResponse is the wire body of
// GET /pids/{pid}/graph-construction/result, returned once Status==done.
type JobResultResponse struct {
	ConnectedSymbols []graphcore.ConnectedSymbolsItem `json:"connected_symbols"`
	ArrowNodes       []graphcore.ArrowRecord          `json:"arrow_nodes"`
}

// FromOutput converts a graphcore.Output into its wire representation.
func FromOutput(out graphcore.Output) JobResultResponse {
	return JobResultResponse{
		ConnectedSymbols: out.ConnectedSymbols,
		ArrowNodes:       out.ArrowNodes,
	}
}
