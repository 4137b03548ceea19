package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/job-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor; every hash gets its own random salt.
const PasswordCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt hash from the plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", models.ErrValidation)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether hash was derived from password.
// A mismatch is not an error; a malformed hash is.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
