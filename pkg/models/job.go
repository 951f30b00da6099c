package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// JobSubmitRequest is the wire body of POST /pids/{pid}/graph-construction.
// It carries the same detected-entity streams as graphcore.Input plus any
// per-job config overrides, in the form the upstream symbol-detection and
// OCR collaborators emit.
type JobSubmitRequest struct {
	Image                    pid.ImageDetails     `json:"image"`
	BoundingBoxInclusive     pid.BoundingBox      `json:"bounding_box_inclusive"`
	AllText                  []pid.RecognizedText `json:"all_text"`
	TextAndSymbolsAssociated []pid.Symbol         `json:"text_and_symbols_associated"`
	LineSegments             []pid.LineSegment    `json:"line_segments"`
	ConfigOverrides          map[string]any       `json:"config_overrides,omitempty"`
}

// JobSubmitResponse acknowledges a newly enqueued job.
type JobSubmitResponse struct {
	JobID     uuid.UUID `json:"job_id"`
	PID       string    `json:"pid"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
