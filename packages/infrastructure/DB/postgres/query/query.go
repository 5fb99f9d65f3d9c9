package query

import (
	"context"
	"errors"
	"net/http"

	Error "registry/packages/common/errors"
	"registry/packages/common/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var queryLogger = logger.NewSource("QUERY", logger.Default)

type Query struct {
    SQL	 string
    Args []any
}

func New(sql string, args ...any) *Query {
	return &Query{
		SQL:  sql,
		Args: args,
	}
}

var errDuplicate = Error.NewStatusError(
	"Resource with such code already exists",
	http.StatusConflict,
)

var errReferenced = Error.NewStatusError(
	"Resource is referenced by another resource",
	http.StatusConflict,
)

// Converts err into *Error.Status.
// Logs the failed query with everything except pgx.ErrNoRows.
func (q *Query) ConvertError(err error) *Error.Status {
	if errors.Is(err, pgx.ErrNoRows) {
		return Error.StatusNotFound
	}

    defer queryLogger.Debug("Failed query: " + q.SQL, nil)

    if errors.Is(err, context.DeadlineExceeded) {
        queryLogger.Error("Query failed", "Operation timeout", nil)
        return Error.StatusTimeout
    }

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			queryLogger.Error("Query failed", pgErr.Error(), nil)
			return errDuplicate
		case "23503": // foreign_key_violation
			queryLogger.Error("Query failed", pgErr.Error(), nil)
			return errReferenced
		}
	}

    queryLogger.Error("Query failed", err.Error(), nil)
    return Error.StatusInternalError
}
