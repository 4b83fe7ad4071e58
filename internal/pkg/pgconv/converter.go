package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

// PostgreSQL SQLSTATE codes the repositories care about
const (
	CodeUniqueViolation       = "23505"
	CodeForeignKeyViolation   = "23503"
	CodeCheckViolation        = "23514"
	CodeInvalidDatetimeFormat = "22007"
	CodeDatetimeFieldOverflow = "22008"
	CodeSerializationFailure  = "40001"
	CodeDeadlockDetected      = "40P01"
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// DateStringFromPgtype renders a DATE column as YYYY-MM-DD; invalid values render empty.
func DateStringFromPgtype(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(dateLayout)
}

// MicrosFromPgtype returns microseconds since midnight for a TIME column.
func MicrosFromPgtype(pt pgtype.Time) int64 {
	if !pt.Valid {
		return 0
	}
	return pt.Microseconds
}

func MicrosToPgtype(us int64) pgtype.Time {
	return pgtype.Time{Microseconds: us, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// PgErrorCode returns the SQLSTATE of a server error, or "" for anything else.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}

// PgConstraintName returns the violated constraint, if the server reported one.
func PgConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.ConstraintName
}
