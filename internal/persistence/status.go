package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/pidgraph-labs/pidgraph/pkg/models"
)

// UpsertJobStatus writes a job's current status, step, and message. Called
// on submission, once before the pipeline runs, and once after it finishes
// or fails, so a poller sees the most recent state.
func (q *Queries) UpsertJobStatus(ctx context.Context, rec models.JobStatusRecord) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO job_status (job_id, pid, status, step, message, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (job_id) DO UPDATE SET
		   status = EXCLUDED.status, step = EXCLUDED.step,
		   message = EXCLUDED.message, updated_at = EXCLUDED.updated_at`,
		rec.JobID, rec.PID, rec.Status, rec.Step, rec.Message, rec.UpdatedAt)
	return err
}

// GetJobStatusByPID returns the most recently updated job status for a pid.
func (q *Queries) GetJobStatusByPID(ctx context.Context, pid string) (models.JobStatusRecord, error) {
	var rec models.JobStatusRecord
	err := q.db.QueryRow(ctx,
		`SELECT job_id, pid, status, step, message, updated_at
		 FROM job_status WHERE pid = $1
		 ORDER BY updated_at DESC LIMIT 1`,
		pid).Scan(&rec.JobID, &rec.PID, &rec.Status, &rec.Step, &rec.Message, &rec.UpdatedAt)
	return rec, err
}

// GetJobStatus returns a job status record by job id.
func (q *Queries) GetJobStatus(ctx context.Context, jobID uuid.UUID) (models.JobStatusRecord, error) {
	var rec models.JobStatusRecord
	err := q.db.QueryRow(ctx,
		`SELECT job_id, pid, status, step, message, updated_at
		 FROM job_status WHERE job_id = $1`,
		jobID).Scan(&rec.JobID, &rec.PID, &rec.Status, &rec.Step, &rec.Message, &rec.UpdatedAt)
	return rec, err
}
