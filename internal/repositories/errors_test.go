package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/job-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: sql.ErrNoRows, want: models.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}, want: models.ErrConflict},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: models.ErrValidation},
		{name: "not null violation", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: models.ErrValidation},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "jobs_created_by_fkey"}, want: models.ErrUnauthorized},
		{name: "string too long", err: &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException}, want: models.ErrValidation},
		{name: "invalid enum text", err: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, want: models.ErrValidation},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: models.ErrStorage},
		{name: "connection error", err: errors.New("connection refused"), want: models.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyError_HidesDriverMessage(t *testing.T) {
	for _, code := range []string{
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.InvalidTextRepresentation,
	} {
		err := classifyError(&pgconn.PgError{
			Code:    code,
			Message: `insert or update on table "jobs" violates foreign key constraint "jobs_created_by_fkey"`,
		})
		assert.NotContains(t, err.Error(), "violates", code)
		assert.NotContains(t, err.Error(), "jobs_created_by_fkey", code)
	}
}
