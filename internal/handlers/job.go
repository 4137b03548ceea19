package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/job-tracker/internal/models"
)

// JobResponse wraps a single job
// swagger:model JobResponse
type JobResponse struct {
	Job *models.JobDB `json:"job"`
}

// parseJobID reads the {id} route parameter. Only positive integers are accepted.
func parseJobID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
