package utils

import (
	"sync"
	"time"

	"integrators-backend/dtos"

	"github.com/google/uuid"
)

// JobStore tracks background seed jobs in memory.
type JobStore struct {
	jobs map[uuid.UUID]*dtos.SeedJob
	mu   sync.RWMutex
}

// Global job store instance
var Store = &JobStore{
	jobs: make(map[uuid.UUID]*dtos.SeedJob),
}

// CleanupOldJobs removes finished jobs older than 1 hour.
func (js *JobStore) CleanupOldJobs() {
	js.mu.Lock()
	defer js.mu.Unlock()

	cutoff := time.Now().Add(-1 * time.Hour)
	for id, job := range js.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(js.jobs, id)
		}
	}
}

// CreateJob registers a new pending seed job.
func (js *JobStore) CreateJob() *dtos.SeedJob {
	// Clean up old jobs on each new creation
	js.CleanupOldJobs()

	js.mu.Lock()
	defer js.mu.Unlock()

	job := &dtos.SeedJob{
		ID:        uuid.New(),
		Status:    dtos.JobStatusPending,
		StartedAt: time.Now(),
	}

	js.jobs[job.ID] = job
	return job
}

// GetJob returns a snapshot of the job so callers never read a struct the
// seeder goroutine is still mutating.
func (js *JobStore) GetJob(id uuid.UUID) (dtos.SeedJob, bool) {
	js.mu.RLock()
	defer js.mu.RUnlock()

	job, exists := js.jobs[id]
	if !exists {
		return dtos.SeedJob{}, false
	}
	return *job, true
}

// SetProcessing marks the job as running.
func (js *JobStore) SetProcessing(id uuid.UUID) {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobs[id]; exists {
		job.Status = dtos.JobStatusProcessing
	}
}

// CompleteJob records a finished run's outcome.
func (js *JobStore) CompleteJob(id uuid.UUID, update func(*dtos.SeedJob)) {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobs[id]; exists {
		update(job)
		now := time.Now()
		job.CompletedAt = &now
	}
}
