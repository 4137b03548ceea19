package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/jwt"
	"github.com/sbilibin2017/job-tracker/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token
// before they reach the handler. Verified claims are passed on in the request
// context, see jwt.ClaimsFromContext.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeErrorJSON(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeErrorJSON(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			revoked, err := revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				logger.Log.Errorw("failed to check token revocation", "account_id", claims.AccountID, "err", err)
				writeErrorJSON(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if revoked {
				logger.Log.Warnw("authorization failed: token revoked", "account_id", claims.AccountID)
				writeErrorJSON(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
