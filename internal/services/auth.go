package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/job-tracker/internal/logger"
	"github.com/sbilibin2017/job-tracker/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)
	ErrAccountNotFound    = fmt.Errorf("%w: account", models.ErrNotFound)
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	FindByEmail(ctx context.Context, email string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) (*models.AccountDB, error)
	Delete(ctx context.Context, accountID int64) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, accountID int64, name string) (string, error)
}

// TokenRevoker stores revoked token ids.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login, logout and account removal.
type AuthService struct {
	reader  AccountReader
	writer  AccountWriter
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register validates the input, hashes the password and stores a new account.
// It returns the account together with a freshly issued token.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.AccountDB, string, error) {
	if err := validateStruct(models.AccountInput{Name: name, Email: email, Password: password}); err != nil {
		logger.Log.Warnw("invalid registration input", "email", email, "err", err)
		return nil, "", err
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	account, err := svc.writer.Save(ctx, name, email, hashedPassword)
	if err != nil {
		logger.Log.Errorw("failed to save account", "email", email, "err", err)
		return nil, "", err
	}

	token, err := svc.IssueToken(ctx, account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Login authenticates an account by email and password and returns a token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AccountDB, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", models.ErrValidation)
	}

	account, err := svc.reader.FindByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, "", err
	}
	if account == nil {
		logger.Log.Warnw("account does not exist", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	ok, err := VerifyPassword(password, account.PasswordHash)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "account_id", account.ID, "err", err)
		return nil, "", err
	}
	if !ok {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.IssueToken(ctx, account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// IssueToken signs a token carrying the account id and name.
func (svc *AuthService) IssueToken(ctx context.Context, account *models.AccountDB) (string, error) {
	token, err := svc.jwt.Generate(ctx, account.ID, account.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "account_id", account.ID, "err", err)
		return "", err
	}
	return token, nil
}

// Logout revokes the token until its natural expiry.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}

// DeleteAccount removes the account and, through the cascade, all of its jobs.
// The token used for the request is revoked as well; a revocation failure is
// returned so the surrounding transaction rolls back.
func (svc *AuthService) DeleteAccount(ctx context.Context, accountID int64, tokenID string, expiresAt time.Time) error {
	n, err := svc.writer.Delete(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to delete account", "account_id", accountID, "err", err)
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}

	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token of deleted account", "account_id", accountID, "token_id", tokenID, "err", err)
		return err
	}
	return nil
}
