package handlers

//go:generate mockgen -source=delete_job.go -destination=mock_delete_job.go -package=handlers

import (
	"context"
	"net/http"
)

// JobDeleter defines the interface that the service must implement.
type JobDeleter interface {
	Delete(ctx context.Context, jobID, ownerID int64) (int64, error)
}

// DeleteJobResponse reports how many jobs were removed
// swagger:model DeleteJobResponse
type DeleteJobResponse struct {
	// default: 1
	Deleted int64 `json:"deleted"`
}

// NewDeleteJobHandler returns an HTTP handler that deletes a job of the caller.
// @Summary Delete job
// @Description Deletes a job by id if it belongs to the authenticated account
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} handlers.DeleteJobResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid job id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /jobs/{id} [delete]
// @Security BearerAuth
func NewDeleteJobHandler(svc JobDeleter) http.HandlerFunc {
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

		n, err := svc.Delete(r.Context(), jobID, claims.AccountID)
		if err != nil {
			writeServiceError(w, err, "Job")
			return
		}
		if n == 0 {
			writeError(w, http.StatusNotFound, "Job not found")
			return
		}

		writeJSON(w, http.StatusOK, DeleteJobResponse{Deleted: n})
	}
}
