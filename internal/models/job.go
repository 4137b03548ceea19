package models

import "time"

// JobStatus is the stage of a job application.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusInterview JobStatus = "interview"
	JobStatusDecline   JobStatus = "decline"
)

// JobStatuses lists the known statuses in lifecycle order.
var JobStatuses = []JobStatus{JobStatusPending, JobStatusInterview, JobStatusDecline}

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInterview, JobStatusDecline:
		return true
	}
	return false
}

// JobDB represents a job application record in the database
type JobDB struct {
	ID          int64     `json:"id" db:"id"`
	Role        string    `json:"role" db:"role"`
	Company     string    `json:"company" db:"company"`
	Status      JobStatus `json:"status" db:"status"`
	CreatedBy   int64     `json:"created_by" db:"created_by"`
	CreatorName string    `json:"creator_name,omitempty" db:"creator_name"` // Filled by joins with users
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// JobInput carries the fields of a new job.
type JobInput struct {
	Role    string    `validate:"required,max=100"`
	Company string    `validate:"required,max=50"`
	Status  JobStatus `validate:"omitempty,jobstatus"`
}

// JobPatch holds the mutable job columns of a partial update.
// A field is applied only when it is set and non-empty; an empty string is ignored, not cleared.
type JobPatch struct {
	Role    *string    `validate:"omitempty,max=100"`
	Company *string    `validate:"omitempty,max=50"`
	Status  *JobStatus `validate:"omitempty,jobstatus"`
}

// Normalize drops fields that must not be applied.
func (p JobPatch) Normalize() JobPatch {
	var out JobPatch
	if p.Role != nil && *p.Role != "" {
		out.Role = p.Role
	}
	if p.Company != nil && *p.Company != "" {
		out.Company = p.Company
	}
	if p.Status != nil && *p.Status != "" {
		out.Status = p.Status
	}
	return out
}
