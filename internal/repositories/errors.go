package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/job-tracker/internal/logger"
	"github.com/sbilibin2017/job-tracker/internal/models"
)

// classifyError maps driver errors onto the model error kinds.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", models.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			// the only foreign key is jobs.created_by, so the caller's account is gone
			logger.Log.Warnw("foreign key violation", "constraint", pgErr.ConstraintName, "detail", pgErr.Message)
			return fmt.Errorf("%w: account no longer exists", models.ErrUnauthorized)
		case pgerrcode.CheckViolation,
			pgerrcode.NotNullViolation,
			pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.InvalidTextRepresentation:
			logger.Log.Warnw("constraint violation", "code", pgErr.Code, "constraint", pgErr.ConstraintName, "detail", pgErr.Message)
			return fmt.Errorf("%w: invalid field value", models.ErrValidation)
		}
	}

	return fmt.Errorf("%w: %v", models.ErrStorage, err)
}

// logQuery writes the query on a single line along with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
