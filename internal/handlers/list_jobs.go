package handlers

//go:generate mockgen -source=list_jobs.go -destination=mock_list_jobs.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/models"
)

// JobLister defines the interface that the service must implement.
type JobLister interface {
	List(ctx context.Context, ownerID int64) ([]models.JobDB, error)
}

// JobsResponse represents the caller's jobs
// swagger:model JobsResponse
type JobsResponse struct {
	Jobs []models.JobDB `json:"jobs"`

	// Number of jobs
	// default: 0
	Count int `json:"count"`
}

// NewListJobsHandler returns an HTTP handler listing the caller's jobs.
// @Summary List jobs
// @Description Returns all jobs created by the authenticated account, each with its creator name
// @Tags jobs
// @Produce json
// @Success 200 {object} handlers.JobsResponse "Jobs"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /jobs [get]
// @Security BearerAuth
func NewListJobsHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		jobs, err := svc.List(r.Context(), claims.AccountID)
		if err != nil {
			writeServiceError(w, err, "Job")
			return
		}
		if jobs == nil {
			jobs = []models.JobDB{}
		}

		writeJSON(w, http.StatusOK, JobsResponse{Jobs: jobs, Count: len(jobs)})
	}
}
