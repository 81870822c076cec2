package handlers

import (
	"log"
	"net/http"

	"integrators-backend/dtos"
	"integrators-backend/seed"
	"integrators-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedHandler exposes admin-triggered catalog reseeding. Runs execute in the
// background; clients poll the job id for per-batch outcomes.
type SeedHandler struct {
	DB *gorm.DB
}

func (h *SeedHandler) StartSeed(c *gin.Context) {
	job := utils.Store.CreateJob()

	go func(jobID uuid.UUID) {
		utils.Store.SetProcessing(jobID)

		result, err := seed.New(h.DB).Run()
		utils.Store.CompleteJob(jobID, func(j *dtos.SeedJob) {
			if err != nil {
				j.Status = dtos.JobStatusFailed
				j.Error = err.Error()
				return
			}
			j.Status = dtos.JobStatusCompleted
			j.Skipped = result.Skipped
			j.Batches = dtos.NewSeedBatchOutcomes(result.Batches)
			counts := result.Counts
			j.Counts = &counts
		})
		if err != nil {
			log.Printf("Seed job %s failed: %v", jobID, err)
		}
	}(job.ID)

	c.JSON(http.StatusAccepted, gin.H{"success": true, "job_id": job.ID})
}

func (h *SeedHandler) GetSeedJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid job ID"})
		return
	}

	job, ok := utils.Store.GetJob(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}
