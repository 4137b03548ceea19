package handlers

//go:generate mockgen -source=create_job.go -destination=mock_create_job.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/models"
)

// JobCreator defines the interface that the service must implement.
type JobCreator interface {
	Create(ctx context.Context, ownerID int64, input models.JobInput) (*models.JobDB, error)
}

// CreateJobRequest represents the JSON body for a new job
// swagger:model CreateJobRequest
type CreateJobRequest struct {
	// Role
	// required: true
	// default: Backend Engineer
	Role string `json:"role"`

	// Company
	// required: true
	// default: Acme
	Company string `json:"company"`

	// Status, pending when omitted
	// enum: pending,interview,decline
	// default: pending
	Status string `json:"status"`
}

// NewCreateJobHandler returns an HTTP handler that creates a job owned by the caller.
// @Summary Create job
// @Description Creates a job application for the authenticated account
// @Tags jobs
// @Accept json
// @Produce json
// @Param createJobRequest body handlers.CreateJobRequest true "Job to create"
// @Success 201 {object} handlers.JobResponse "Created job"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /jobs [post]
// @Security BearerAuth
func NewCreateJobHandler(svc JobCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		job, err := svc.Create(r.Context(), claims.AccountID, models.JobInput{
			Role:    req.Role,
			Company: req.Company,
			Status:  models.JobStatus(req.Status),
		})
		if err != nil {
			writeServiceError(w, err, "Job")
			return
		}

		writeJSON(w, http.StatusCreated, JobResponse{Job: job})
	}
}
