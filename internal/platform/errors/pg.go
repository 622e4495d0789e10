package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrQueryCanceled        = "57014"
)

// sqlStates maps the SQLSTATEs the filter store can raise. Anything else from
// postgres is ErrorCodeDB
var sqlStates = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23503": ErrorCodeNotFound,        // foreign_key_violation: default for a deleted filter
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation, e.g. a bad uuid
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction on a replica
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now

	pgErrSerializationFailure: ErrorCodeConflict,
	pgErrDeadlockDetected:     ErrorCodeConflict,
	pgErrQueryCanceled:        ErrorCodeUnavailable,
}

// constraintFields names the request field behind a schema constraint
var constraintFields = map[string]string{
	"filters_name_type_uq":           "name",
	"filters_pkey":                   "id",
	"filter_defaults_filter_id_fkey": "filter_id",
	"filter_defaults_pkey":           "entity_type",
}

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(Root(err), &pgErr)
	return pgErr, ok
}

// IsSQLState reports whether err is a postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == state
}

// IsStatementTimeout reports a statement cancelled by statement_timeout
func IsStatementTimeout(err error) bool { return IsSQLState(err, pgErrQueryCanceled) }

// DBErrorCode maps a postgres error to an ErrorCode, ok is false for other errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, known := sqlStates[pgErr.Code]; known {
		return c, true
	}
	return ErrorCodeDB, true
}

// PgField is the request field a postgres error concerns: the reported column,
// else the field registered for the constraint
func PgField(err error) string {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ""
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return col
	}
	return constraintFields[pgErr.ConstraintName]
}

// FromPostgres wraps err with its mapped code and field. nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	out := Wrap(err, code, msg)
	if f := PgField(err); f != "" {
		out = WithField(out, f)
	}
	return out
}
