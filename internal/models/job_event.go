package models

// Job event types published on every successful mutation.
const (
	JobEventCreated = "job.created"
	JobEventUpdated = "job.updated"
	JobEventDeleted = "job.deleted"
)

// JobEvent is the message published to Kafka for a job mutation.
type JobEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	JobID     int64     `json:"job_id"`
	OwnerID   int64     `json:"owner_id"`
	Status    JobStatus `json:"status,omitempty"`
	Timestamp int64     `json:"timestamp"`
}
