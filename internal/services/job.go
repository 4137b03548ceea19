package services

//go:generate mockgen -source=job.go -destination=mock_job.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-tracker/internal/logger"
	"github.com/sbilibin2017/job-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// JobReader defines owner-scoped read operations for jobs.
type JobReader interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.JobDB, error)
	GetByIDAndOwner(ctx context.Context, jobID, ownerID int64) (*models.JobDB, error)
}

// JobWriter defines owner-scoped write operations for jobs.
type JobWriter interface {
	Create(ctx context.Context, ownerID int64, input models.JobInput) (*models.JobDB, error)
	Update(ctx context.Context, jobID, ownerID int64, patch models.JobPatch) (*models.JobDB, error)
	Delete(ctx context.Context, jobID, ownerID int64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AfterCommitFunc defers fn until the transaction carried by ctx commits.
type AfterCommitFunc func(ctx context.Context, fn func())

// JobService handles job operations and Kafka publishing.
type JobService struct {
	reader      JobReader
	writer      JobWriter
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewJobService creates a new JobService. kafkaWriter may be nil.
// Events are handed to afterCommit so they are only published for committed
// changes; a nil afterCommit publishes right away.
func NewJobService(reader JobReader, writer JobWriter, kafkaWriter KafkaWriter, afterCommit AfterCommitFunc) *JobService {
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &JobService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
	}
}

// emitEvent schedules a job event for publishing once the change is committed.
func (s *JobService) emitEvent(ctx context.Context, eventType string, job models.JobDB) {
	s.afterCommit(ctx, func() {
		s.publishEvent(ctx, eventType, job)
	})
}

// publishEvent publishes a job event to Kafka. Failures are logged only.
func (s *JobService) publishEvent(ctx context.Context, eventType string, job models.JobDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "job_id", job.ID)
		return
	}

	event := models.JobEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		JobID:     job.ID,
		OwnerID:   job.CreatedBy,
		Status:    job.Status,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal job event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(job.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish job event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Job event published", "event_id", event.EventID, "type", eventType, "job_id", job.ID)
	}
}

// Create validates the input and stores a new job owned by ownerID.
func (s *JobService) Create(ctx context.Context, ownerID int64, input models.JobInput) (*models.JobDB, error) {
	if err := validateStruct(input); err != nil {
		logger.Log.Warnw("invalid job input", "owner_id", ownerID, "error", err)
		return nil, err
	}
	if input.Status == "" {
		input.Status = models.JobStatusPending
	}

	job, err := s.writer.Create(ctx, ownerID, input)
	if err != nil {
		logger.Log.Errorw("failed to create job", "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.emitEvent(ctx, models.JobEventCreated, *job)
	return job, nil
}

// List returns all jobs of the owner.
func (s *JobService) List(ctx context.Context, ownerID int64) ([]models.JobDB, error) {
	jobs, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return jobs, nil
}

// Get returns a single job of the owner.
func (s *JobService) Get(ctx context.Context, jobID, ownerID int64) (*models.JobDB, error) {
	job, err := s.reader.GetByIDAndOwner(ctx, jobID, ownerID)
	if err != nil {
		logger.Log.Warnw("failed to get job", "job_id", jobID, "owner_id", ownerID, "error", err)
		return nil, err
	}
	return job, nil
}

// Update applies the non-empty fields of the patch and refreshes updated_at.
func (s *JobService) Update(ctx context.Context, jobID, ownerID int64, patch models.JobPatch) (*models.JobDB, error) {
	patch = patch.Normalize()
	if err := validateStruct(patch); err != nil {
		logger.Log.Warnw("invalid job patch", "job_id", jobID, "owner_id", ownerID, "error", err)
		return nil, err
	}

	job, err := s.writer.Update(ctx, jobID, ownerID, patch)
	if err != nil {
		logger.Log.Warnw("failed to update job", "job_id", jobID, "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.emitEvent(ctx, models.JobEventUpdated, *job)
	return job, nil
}

// Delete removes a job of the owner and returns the number of deleted rows.
func (s *JobService) Delete(ctx context.Context, jobID, ownerID int64) (int64, error) {
	n, err := s.writer.Delete(ctx, jobID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete job", "job_id", jobID, "owner_id", ownerID, "error", err)
		return 0, err
	}

	if n > 0 {
		s.emitEvent(ctx, models.JobEventDeleted, models.JobDB{ID: jobID, CreatedBy: ownerID})
	}
	return n, nil
}
