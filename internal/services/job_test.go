package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/job-tracker/internal/models"
	"github.com/sbilibin2017/job-tracker/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobMocks struct {
	reader *services.MockJobReader
	writer *services.MockJobWriter
	kafka  *services.MockKafkaWriter
}

func newJobService(t *testing.T, withKafka bool) (*services.JobService, jobMocks) {
	ctrl := gomock.NewController(t)
	m := jobMocks{
		reader: services.NewMockJobReader(ctrl),
		writer: services.NewMockJobWriter(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	if withKafka {
		return services.NewJobService(m.reader, m.writer, m.kafka, nil), m
	}
	return services.NewJobService(m.reader, m.writer, nil, nil), m
}

func strPtr(s string) *string { return &s }

func TestJobService_Create(t *testing.T) {
	tests := []struct {
		name       string
		input      models.JobInput
		wantStored models.JobInput
		wantErr    error
	}{
		{
			name:       "defaults status to pending",
			input:      models.JobInput{Role: "Engineer", Company: "Acme"},
			wantStored: models.JobInput{Role: "Engineer", Company: "Acme", Status: models.JobStatusPending},
		},
		{
			name:       "keeps explicit status",
			input:      models.JobInput{Role: "Engineer", Company: "Acme", Status: models.JobStatusInterview},
			wantStored: models.JobInput{Role: "Engineer", Company: "Acme", Status: models.JobStatusInterview},
		},
		{name: "missing role", input: models.JobInput{Company: "Acme"}, wantErr: models.ErrValidation},
		{name: "missing company", input: models.JobInput{Role: "Engineer"}, wantErr: models.ErrValidation},
		{name: "unknown status", input: models.JobInput{Role: "Engineer", Company: "Acme", Status: "hired"}, wantErr: models.ErrValidation},
		{name: "role too long", input: models.JobInput{Role: string(make([]byte, 101)), Company: "Acme"}, wantErr: models.ErrValidation},
		{name: "company too long", input: models.JobInput{Role: "Engineer", Company: string(make([]byte, 51))}, wantErr: models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newJobService(t, false)

			if tt.wantErr == nil {
				m.writer.EXPECT().Create(gomock.Any(), int64(1), tt.wantStored).
					Return(&models.JobDB{ID: 10, Role: tt.wantStored.Role, Company: tt.wantStored.Company, Status: tt.wantStored.Status, CreatedBy: 1}, nil)
			}

			job, err := svc.Create(context.Background(), 1, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, job)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), job.ID)
		})
	}
}

func TestJobService_StatusValidationMessage(t *testing.T) {
	svc, _ := newJobService(t, false)

	_, err := svc.Create(context.Background(), 1, models.JobInput{Role: "Engineer", Company: "Acme", Status: "hired"})
	require.ErrorIs(t, err, models.ErrValidation)
	assert.EqualError(t, err, "validation error: status must be one of: pending interview decline")

	bad := models.JobStatus("offer")
	_, err = svc.Update(context.Background(), 10, 1, models.JobPatch{Status: &bad})
	assert.EqualError(t, err, "validation error: status must be one of: pending interview decline")
}

func TestJobService_Create_PublishesEvent(t *testing.T) {
	svc, m := newJobService(t, true)

	m.writer.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
		Return(&models.JobDB{ID: 10, Status: models.JobStatusPending, CreatedBy: 1}, nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "10", string(msgs[0].Key))

			var event models.JobEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.JobEventCreated, event.Type)
			assert.Equal(t, int64(10), event.JobID)
			assert.Equal(t, int64(1), event.OwnerID)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	_, err := svc.Create(context.Background(), 1, models.JobInput{Role: "Engineer", Company: "Acme"})
	assert.NoError(t, err)
}

func TestJobService_EventsDeferredUntilCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockJobWriter(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)

	var pending []func()
	svc := services.NewJobService(services.NewMockJobReader(ctrl), writer, kw,
		func(_ context.Context, fn func()) { pending = append(pending, fn) })

	writer.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
		Return(&models.JobDB{ID: 10, Status: models.JobStatusPending, CreatedBy: 1}, nil)

	_, err := svc.Create(context.Background(), 1, models.JobInput{Role: "Engineer", Company: "Acme"})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	// Nothing reaches Kafka until the hook fires.
	kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	pending[0]()
}

func TestJobService_FailedWriteSchedulesNoEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockJobWriter(ctrl)

	scheduled := false
	svc := services.NewJobService(services.NewMockJobReader(ctrl), writer, services.NewMockKafkaWriter(ctrl),
		func(_ context.Context, fn func()) { scheduled = true })

	writer.EXPECT().Update(gomock.Any(), int64(10), int64(1), gomock.Any()).Return(nil, models.ErrNotFound)

	_, err := svc.Update(context.Background(), 10, 1, models.JobPatch{Role: strPtr("Lead")})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, scheduled)
}

func TestJobService_PublishFailureIsNotReturned(t *testing.T) {
	svc, m := newJobService(t, true)

	m.writer.EXPECT().Delete(gomock.Any(), int64(10), int64(1)).Return(int64(1), nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	n, err := svc.Delete(context.Background(), 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestJobService_ListAndGet(t *testing.T) {
	svc, m := newJobService(t, false)
	ctx := context.Background()

	m.reader.EXPECT().ListByOwner(gomock.Any(), int64(1)).
		Return([]models.JobDB{{ID: 10, CreatorName: "Alice"}}, nil)
	jobs, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	m.reader.EXPECT().GetByIDAndOwner(gomock.Any(), int64(10), int64(2)).Return(nil, models.ErrNotFound)
	job, err := svc.Get(ctx, 10, 2)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, job)

	m.reader.EXPECT().ListByOwner(gomock.Any(), int64(3)).Return(nil, models.ErrStorage)
	_, err = svc.List(ctx, 3)
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestJobService_Update(t *testing.T) {
	interview := models.JobStatusInterview
	empty := models.JobStatus("")
	bad := models.JobStatus("hired")

	tests := []struct {
		name      string
		patch     models.JobPatch
		wantPatch models.JobPatch
		storeErr  error
		wantErr   error
	}{
		{
			name:      "applies set fields",
			patch:     models.JobPatch{Role: strPtr("Lead"), Status: &interview},
			wantPatch: models.JobPatch{Role: strPtr("Lead"), Status: &interview},
		},
		{
			name:      "empty values are dropped",
			patch:     models.JobPatch{Role: strPtr(""), Company: strPtr(""), Status: &empty},
			wantPatch: models.JobPatch{},
		},
		{
			name:    "invalid status",
			patch:   models.JobPatch{Status: &bad},
			wantErr: models.ErrValidation,
		},
		{
			name:    "company too long",
			patch:   models.JobPatch{Company: strPtr(string(make([]byte, 51)))},
			wantErr: models.ErrValidation,
		},
		{
			name:      "not owned",
			patch:     models.JobPatch{Role: strPtr("Lead")},
			wantPatch: models.JobPatch{Role: strPtr("Lead")},
			storeErr:  models.ErrNotFound,
			wantErr:   models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newJobService(t, false)

			if !errors.Is(tt.wantErr, models.ErrValidation) {
				call := m.writer.EXPECT().Update(gomock.Any(), int64(10), int64(1), tt.wantPatch)
				if tt.storeErr != nil {
					call.Return(nil, tt.storeErr)
				} else {
					call.Return(&models.JobDB{ID: 10, CreatedBy: 1}, nil)
				}
			}

			job, err := svc.Update(context.Background(), 10, 1, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, job)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), job.ID)
		})
	}
}

func TestJobService_Delete(t *testing.T) {
	svc, m := newJobService(t, false)
	ctx := context.Background()

	gomock.InOrder(
		m.writer.EXPECT().Delete(gomock.Any(), int64(10), int64(1)).Return(int64(1), nil),
		m.writer.EXPECT().Delete(gomock.Any(), int64(10), int64(1)).Return(int64(0), nil),
	)

	n, err := svc.Delete(ctx, 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.Delete(ctx, 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
