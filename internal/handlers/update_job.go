package handlers

//go:generate mockgen -source=update_job.go -destination=mock_update_job.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/models"
)

// JobUpdater defines the interface that the service must implement.
type JobUpdater interface {
	Update(ctx context.Context, jobID, ownerID int64, patch models.JobPatch) (*models.JobDB, error)
}

// UpdateJobRequest represents a partial job update. Omitted or empty fields keep their value.
// swagger:model UpdateJobRequest
type UpdateJobRequest struct {
	// Role
	// default: Senior Backend Engineer
	Role *string `json:"role,omitempty"`

	// Company
	// default: Acme
	Company *string `json:"company,omitempty"`

	// Status
	// enum: pending,interview,decline
	// default: interview
	Status *string `json:"status,omitempty"`
}

// NewUpdateJobHandler returns an HTTP handler that patches a job of the caller.
// @Summary Update job
// @Description Applies the non-empty fields to the job and refreshes updated_at
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job id"
// @Param updateJobRequest body handlers.UpdateJobRequest true "Fields to change"
// @Success 200 {object} handlers.JobResponse "Updated job"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /jobs/{id} [patch]
// @Security BearerAuth
func NewUpdateJobHandler(svc JobUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		jobID, ok := parseJobID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid job id")
			return
		}

		var req UpdateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		patch := models.JobPatch{Role: req.Role, Company: req.Company}
		if req.Status != nil {
			status := models.JobStatus(*req.Status)
			patch.Status = &status
		}

		job, err := svc.Update(r.Context(), jobID, claims.AccountID, patch)
		if err != nil {
			writeServiceError(w, err, "Job")
			return
		}

		writeJSON(w, http.StatusOK, JobResponse{Job: job})
	}
}
