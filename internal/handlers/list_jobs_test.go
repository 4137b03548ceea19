package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/job-tracker/internal/jwt"
	"github.com/sbilibin2017/job-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJobsHandler(t *testing.T) {
	jobs := []models.JobDB{
		{ID: 1, Role: "Backend", Company: "Acme", Status: models.JobStatusPending, CreatedBy: 7, CreatorName: "Alice"},
		{ID: 2, Role: "SRE", Company: "Globex", Status: models.JobStatusInterview, CreatedBy: 7, CreatorName: "Alice"},
	}

	tests := []struct {
		name          string
		claims        *jwt.Claims
		setupMocks    func(svc *MockJobLister)
		expectedCode  int
		expectedCount int
	}{
		{
			name:   "jobs of caller",
			claims: testClaims(7),
			setupMocks: func(svc *MockJobLister) {
				svc.EXPECT().List(gomock.Any(), int64(7)).Return(jobs, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name:   "no jobs",
			claims: testClaims(8),
			setupMocks: func(svc *MockJobLister) {
				svc.EXPECT().List(gomock.Any(), int64(8)).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name:   "storage failure",
			claims: testClaims(7),
			setupMocks: func(svc *MockJobLister) {
				svc.EXPECT().List(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "unauthorized",
			setupMocks: func(svc *MockJobLister) {
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockJobLister(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewListJobsHandler(svc)(rr, withClaims(httptest.NewRequest(http.MethodGet, "/jobs", nil), tt.claims))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			var list []models.JobDB
			require.NoError(t, json.Unmarshal(resp["jobs"], &list))
			assert.NotNil(t, list)
			assert.Len(t, list, tt.expectedCount)

			var count int
			require.NoError(t, json.Unmarshal(resp["count"], &count))
			assert.Equal(t, tt.expectedCount, count)

			for _, j := range list {
				assert.Equal(t, "Alice", j.CreatorName)
			}
		})
	}
}
