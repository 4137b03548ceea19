package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/job-tracker/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.AccountDB, string, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful register or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Authenticated account
	User *models.AccountDB `json:"user"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates a new account with a unique email and returns it with a JWT token. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Account registration request"
// @Success 201 {object} handlers.AuthResponse "Account successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		account, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err, "Account")
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			User:  account,
			Token: token,
		})
	}
}
