package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/job-tracker/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	claims := testClaims(5)

	tests := []struct {
		name         string
		claims       *jwt.Claims
		setupMocks   func(svc *MockLogouter)
		expectedCode int
	}{
		{
			name:   "success",
			claims: claims,
			setupMocks: func(svc *MockLogouter) {
				svc.EXPECT().Logout(gomock.Any(), "token-id", claims.ExpiresAt.Time).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "unauthorized",
			setupMocks: func(svc *MockLogouter) {
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "revocation store failure",
			claims: claims,
			setupMocks: func(svc *MockLogouter) {
				svc.EXPECT().Logout(gomock.Any(), "token-id", gomock.Any()).Return(errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockLogouter(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewLogoutHandler(svc)(rr, withClaims(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), tt.claims))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
