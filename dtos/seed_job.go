package dtos

import (
	"time"

	"integrators-backend/seed"

	"github.com/google/uuid"
)

// SeedJob tracks one background catalog seed run.
type SeedJob struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"` // pending, processing, completed, failed
	Skipped     bool               `json:"skipped"`
	Batches     []SeedBatchOutcome `json:"batches,omitempty"`
	Counts      *seed.Counts       `json:"counts,omitempty"`
	Error       string             `json:"error,omitempty"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// SeedBatchOutcome is the serializable per-batch result.
type SeedBatchOutcome struct {
	Batch string `json:"batch"`
	Error string `json:"error,omitempty"`
}

const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// NewSeedBatchOutcomes flattens seeder batch results for API responses.
func NewSeedBatchOutcomes(results []seed.BatchResult) []SeedBatchOutcome {
	outcomes := make([]SeedBatchOutcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, SeedBatchOutcome{Batch: r.Batch, Error: r.Error()})
	}
	return outcomes
}
