package infra

import (
	"errors"
	"log/slog"

	"agendamento-api/internal/pkg/errs"
	"agendamento-api/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a low-level error and logs the raw detail server-side.
// An explicit kind overrides the classification.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if code := pgconv.PgErrorCode(err); code != "" {
		logArgs = append(logArgs, slog.String("sqlstate", code))
	}
	if constraint := pgconv.PgConstraintName(err); constraint != "" {
		logArgs = append(logArgs, slog.String("constraint", constraint))
	}

	switch k {
	case KindNotFound, KindDuplicateKey, KindInvalidValue:
		slog.Debug("Repository error: "+msg, logArgs...)
	default:
		if err != nil {
			logArgs = append(logArgs, slog.String("error", err.Error()))
		}
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	code := pgconv.PgErrorCode(err)
	switch {
	case code == pgconv.CodeUniqueViolation:
		return KindDuplicateKey
	case code == pgconv.CodeForeignKeyViolation:
		return KindForeignKeyViolated
	case code == pgconv.CodeInvalidDatetimeFormat, code == pgconv.CodeDatetimeFieldOverflow, code == pgconv.CodeCheckViolation:
		return KindInvalidValue
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindInvalidValue       RepositoryErrorKind = "INVALID_VALUE"
)
