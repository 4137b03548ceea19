package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-tracker/internal/models"
)

const jobSchema = `
	DO $$
	BEGIN
		CREATE TYPE job_status AS ENUM ('pending', 'interview', 'decline');
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END
	$$;

	CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		role TEXT NOT NULL CHECK (char_length(role) <= 100),
		company TEXT NOT NULL CHECK (char_length(company) <= 50),
		status job_status NOT NULL DEFAULT 'pending',
		created_by BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS jobs_created_by_idx ON jobs (created_by);
`

// JobReadRepository handles job read operations. Every query is scoped to the owner.
type JobReadRepository struct {
	db *sqlx.DB
}

func NewJobReadRepository(db *sqlx.DB) *JobReadRepository {
	return &JobReadRepository{db: db}
}

// ListByOwner returns all jobs created by the owner, joined with the owner's name.
func (r *JobReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.JobDB, error) {
	const query = `
		SELECT j.id, j.role, j.company, j.status::text AS status, j.created_by,
		       u.name AS creator_name, j.created_at, j.updated_at
		FROM jobs j
		JOIN users u ON u.id = j.created_by
		WHERE j.created_by = $1
	`

	jobs := []models.JobDB{}
	err := r.db.SelectContext(ctx, &jobs, query, ownerID)

	logQuery(query, []any{ownerID}, len(jobs), err)

	if err != nil {
		return nil, classifyError(err)
	}
	return jobs, nil
}

// GetByIDAndOwner returns the job matching both id and owner.
// A job owned by someone else is reported as models.ErrNotFound, same as a missing one.
func (r *JobReadRepository) GetByIDAndOwner(ctx context.Context, jobID, ownerID int64) (*models.JobDB, error) {
	const query = `
		SELECT j.id, j.role, j.company, j.status::text AS status, j.created_by,
		       u.name AS creator_name, j.created_at, j.updated_at
		FROM jobs j
		JOIN users u ON u.id = j.created_by
		WHERE j.id = $1 AND j.created_by = $2
	`

	var job models.JobDB
	err := r.db.GetContext(ctx, &job, query, jobID, ownerID)

	logQuery(query, []any{jobID, ownerID}, job.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &job, nil
}

// JobWriteRepository handles job write operations
type JobWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJobWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JobWriteRepository {
	return &JobWriteRepository{db: db, txGetter: txGetter}
}

// Init creates the job_status type and the jobs table if they do not exist.
// The users table must already exist.
func (r *JobWriteRepository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, jobSchema)
	logQuery(jobSchema, nil, nil, err)
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// Create inserts a job for the owner. An empty status is stored as pending.
func (r *JobWriteRepository) Create(ctx context.Context, ownerID int64, input models.JobInput) (*models.JobDB, error) {
	const query = `
		INSERT INTO jobs (role, company, status, created_by)
		VALUES ($1, $2, $3::text::job_status, $4)
		RETURNING id, role, company, status::text AS status, created_by, created_at, updated_at
	`

	status := input.Status
	if status == "" {
		status = models.JobStatusPending
	}
	args := []any{input.Role, input.Company, string(status), ownerID}

	var job models.JobDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &job, query, args...)

	logQuery(query, args, job.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &job, nil
}

// Update applies the non-empty fields of the patch to the job matching id and owner
// and always refreshes updated_at. Zero matched rows is models.ErrNotFound.
func (r *JobWriteRepository) Update(ctx context.Context, jobID, ownerID int64, patch models.JobPatch) (*models.JobDB, error) {
	const query = `
		WITH updated AS (
			UPDATE jobs
			SET role = COALESCE($3, role),
			    company = COALESCE($4, company),
			    status = COALESCE($5::text::job_status, status),
			    updated_at = NOW()
			WHERE id = $1 AND created_by = $2
			RETURNING id, role, company, status, created_by, created_at, updated_at
		)
		SELECT up.id, up.role, up.company, up.status::text AS status, up.created_by,
		       u.name AS creator_name, up.created_at, up.updated_at
		FROM updated up
		JOIN users u ON u.id = up.created_by
	`

	patch = patch.Normalize()
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	args := []any{jobID, ownerID, patch.Role, patch.Company, status}

	var job models.JobDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &job, query, args...)

	logQuery(query, args, job.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &job, nil
}

// Delete removes the job matching id and owner and returns the number of deleted rows (0 or 1).
func (r *JobWriteRepository) Delete(ctx context.Context, jobID, ownerID int64) (int64, error) {
	const query = `DELETE FROM jobs WHERE id = $1 AND created_by = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, jobID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{jobID, ownerID}, rowsAffected, err)

	if err != nil {
		return 0, classifyError(err)
	}
	return rowsAffected, nil
}

func (r *JobWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}
