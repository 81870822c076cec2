package utils

import (
	"testing"
	"time"

	"integrators-backend/dtos"

	"github.com/google/uuid"
)

func TestJobStoreCreateAndGet(t *testing.T) {
	job := Store.CreateJob()
	if job.ID == uuid.Nil {
		t.Fatal("expected non-nil job ID")
	}
	if job.Status != dtos.JobStatusPending {
		t.Errorf("expected pending status, got %s", job.Status)
	}

	got, ok := Store.GetJob(job.ID)
	if !ok {
		t.Fatal("expected to find created job")
	}
	if got.ID != job.ID {
		t.Errorf("expected job %s, got %s", job.ID, got.ID)
	}
}

func TestJobStoreGetMissing(t *testing.T) {
	if _, ok := Store.GetJob(uuid.New()); ok {
		t.Fatal("expected missing job to return ok=false")
	}
}

func TestJobStoreCompleteJob(t *testing.T) {
	job := Store.CreateJob()
	Store.SetProcessing(job.ID)

	Store.CompleteJob(job.ID, func(j *dtos.SeedJob) {
		j.Status = dtos.JobStatusCompleted
		j.Skipped = true
	})

	got, ok := Store.GetJob(job.ID)
	if !ok {
		t.Fatal("job disappeared")
	}
	if got.Status != dtos.JobStatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}
	if !got.Skipped {
		t.Error("expected skipped flag to stick")
	}
	if got.CompletedAt == nil {
		t.Error("expected completion timestamp")
	}
}

func TestJobStoreCleanup(t *testing.T) {
	job := Store.CreateJob()
	old := time.Now().Add(-2 * time.Hour)
	Store.CompleteJob(job.ID, func(j *dtos.SeedJob) {
		j.Status = dtos.JobStatusCompleted
	})
	// Backdate the completion so cleanup sees it as stale.
	Store.mu.Lock()
	Store.jobs[job.ID].CompletedAt = &old
	Store.mu.Unlock()

	Store.CleanupOldJobs()

	if _, ok := Store.GetJob(job.ID); ok {
		t.Fatal("expected stale job to be cleaned up")
	}
}
