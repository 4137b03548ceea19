package handlers

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

import (
	"context"
	"net/http"
	"time"
)

// Logouter revokes a token until it expires.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary Logout
// @Description Revokes the bearer token used for this request
// @Tags auth
// @Success 204 "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		if err := svc.Logout(r.Context(), claims.ID, expiresAt); err != nil {
			writeServiceError(w, err, "Token")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
