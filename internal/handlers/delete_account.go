package handlers

//go:generate mockgen -source=delete_account.go -destination=mock_delete_account.go -package=handlers

import (
	"context"
	"net/http"
	"time"
)

// AccountDeleter removes an account together with its jobs and revokes the token used.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, accountID int64, tokenID string, expiresAt time.Time) error
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the caller's account.
// @Summary Delete account
// @Description Deletes the authenticated account and every job it created, and revokes the bearer token
// @Tags auth
// @Success 204 "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/account [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		if err := svc.DeleteAccount(r.Context(), claims.AccountID, claims.ID, expiresAt); err != nil {
			writeServiceError(w, err, "Account")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
