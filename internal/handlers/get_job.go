package handlers

//go:generate mockgen -source=get_job.go -destination=mock_get_job.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/models"
)

// JobGetter defines the interface that the service must implement.
type JobGetter interface {
	Get(ctx context.Context, jobID, ownerID int64) (*models.JobDB, error)
}

// NewGetJobHandler returns an HTTP handler for a single job of the caller.
// @Summary Get job
// @Description Returns a job by id if it belongs to the authenticated account
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} handlers.JobResponse "Job"
// @Failure 400 {object} handlers.ErrorResponse "Invalid job id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
// @Security BearerAuth
func NewGetJobHandler(svc JobGetter) http.HandlerFunc {
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

		job, err := svc.Get(r.Context(), jobID, claims.AccountID)
		if err != nil {
			writeServiceError(w, err, "Job")
			return
		}

		writeJSON(w, http.StatusOK, JobResponse{Job: job})
	}
}
