package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "Alice", claims.Name)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWT_DefaultExpirationIsThirtyDays(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "Bob")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)

	window := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, window)
}

func TestJWT_UniqueTokenIDs(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	t1, err := j.Generate(ctx, 1, "Bob")
	require.NoError(t, err)
	t2, err := j.Generate(ctx, 1, "Bob")
	require.NoError(t, err)

	c1, err := j.GetClaims(ctx, t1)
	require.NoError(t, err)
	c2, err := j.GetClaims(ctx, t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 7, "Carol")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, 3, "Dave")
	require.NoError(t, err)

	claims, err := j2.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ClaimsFromContext(ctx))

	claims := &Claims{AccountID: 5, Name: "Eve"}
	assert.Same(t, claims, ClaimsFromContext(WithClaims(ctx, claims)))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrMissingHeader},
		{"InvalidFormat", "Token mytoken123", "", ErrInvalidHeader},
		{"TooManyParts", "Bearer a b c", "", ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
