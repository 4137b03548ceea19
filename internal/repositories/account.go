package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-tracker/internal/models"
)

const accountSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL CHECK (char_length(name) BETWEEN 3 AND 50),
		email TEXT NOT NULL UNIQUE CHECK (email LIKE '%@%.%'),
		password TEXT NOT NULL CHECK (char_length(password) >= 6),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// FindByEmail returns the account with the given email, or nil when there is none.
func (r *AccountReadRepository) FindByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	const query = `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE email = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, email)

	logQuery(query, []any{email}, account.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err)
	}

	return &account, nil
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Init creates the users table if it does not exist. An existing schema is left untouched.
func (r *AccountWriteRepository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, accountSchema)
	logQuery(accountSchema, nil, nil, err)
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// Save inserts a new account and returns it with the assigned id.
// A duplicate email surfaces as models.ErrConflict.
func (r *AccountWriteRepository) Save(ctx context.Context, name, email, passwordHash string) (*models.AccountDB, error) {
	const query = `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password, created_at
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, name, email, passwordHash)

	logQuery(query, []any{name, email, "[REDACTED]"}, account.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &account, nil
}

// Delete removes the account; its jobs go with it through the foreign key cascade.
// Returns the number of deleted rows.
func (r *AccountWriteRepository) Delete(ctx context.Context, accountID int64) (int64, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, accountID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{accountID}, rowsAffected, err)

	if err != nil {
		return 0, classifyError(err)
	}
	return rowsAffected, nil
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}
