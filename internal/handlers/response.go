package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/jwt"
	"github.com/sbilibin2017/job-tracker/internal/logger"
	"github.com/sbilibin2017/job-tracker/internal/models"
	"github.com/sbilibin2017/job-tracker/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

const (
	msgInvalidBody   = "Invalid request body"
	msgUnauthorized  = "Unauthorized"
	msgInternalError = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps an error kind onto its HTTP status.
// resource names the entity in not found messages.
func writeServiceError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrConflict):
		writeError(w, http.StatusConflict, "Email already in use")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// requireClaims returns the claims verified by the auth middleware.
// Without them it writes a 401 response and returns false.
func requireClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil {
		logger.Log.Warnw("unauthorized request: no verified claims", "uri", r.RequestURI)
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return nil, false
	}
	return claims, true
}
