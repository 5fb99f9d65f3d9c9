package executor

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"registry/packages/common/config"
	Error "registry/packages/common/errors"
	"registry/packages/common/logger"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/query"

	"github.com/jackc/pgx/v5"
)

var executorLogger = logger.NewSource("EXECUTOR", logger.Default)

var conManager *connection.Manager

func Init(manager *connection.Manager) {
	if manager == nil {
		executorLogger.Panic(
			"Failed to initialize DB executor module",
			"Connection manager can't be nil",
			nil,
		)
	}
	conManager = manager
}

// Prepares query for execution by acquiring connection and creating context.
// The returned cancel function releases the connection and closes the context.
func prepare(conType connection.Type, q *query.Query) (*executionContext, context.CancelFunc, *Error.Status) {
    con, err := conManager.GetConnection(conType)
    if err != nil {
        return nil, nil, err
    }

	if config.Debug.Enabled && config.Debug.LogDbQueries {
		args := make([]string, len(q.Args))

		for i, arg := range q.Args {
			switch a := arg.(type) {
			case string:
				args[i] = a
			case []string:
				args[i] = strings.Join(a, ", ")
			case int:
				args[i] = strconv.FormatInt(int64(a), 10)
			case int64:
				args[i] = strconv.FormatInt(a, 10)
			case int32:
				args[i] = strconv.FormatInt(int64(a), 10)
			case float32:
				args[i] = strconv.FormatFloat(float64(a), 'f', 8, 32)
			case float64:
				args[i] = strconv.FormatFloat(float64(a), 'f', 11, 64)
			case time.Time:
				args[i] = a.String()
			case *time.Time:
				args[i] = a.String()
			case bool:
				args[i] = strconv.FormatBool(a)
			}
		}

		executorLogger.Debug("Running query:\n" + q.SQL + "\n * Query args: " + strings.Join(args, "; "), nil)
	}

	ctx, cancel := newExecutionContext(context.Background(), config.DB.DefaultQueryTimeout(), con)

	return ctx, cancel, nil
}

func Rows(conType connection.Type, query *query.Query) (pgx.Rows, *Error.Status) {
	ctx, cancel, err := prepare(conType, query)
	if err != nil {
		return nil, err
	}
	defer cancel()

	r, e := ctx.Connection.Query(ctx, query.SQL, query.Args...)
	if e != nil {
		return nil, query.ConvertError(e)
	}

	return r, nil
}

// Scans a row into the given destinations.
// All dests must be pointers.
// By default, dests validation is disabled,
// to enable this add "debug-safe-db-scans: true" to the config.
// (works only if app launched in debug mode)
type rowScanner = func(dests ...any) *Error.Status

// Wrapper for '*pgxpool.Con.QueryRow'
func Row(conType connection.Type, query *query.Query) (rowScanner, *Error.Status) {
	ctx, cancel, err := prepare(conType, query)
	if err != nil {
		return nil, err
	}
	defer cancel()

	row := ctx.Connection.QueryRow(ctx, query.SQL, query.Args...)

    return func (dests ...any) *Error.Status {
		if config.Debug.Enabled && config.Debug.SafeDatabaseScans {
			for _, dest := range dests {
				typeof := reflect.TypeOf(dest)

				if typeof.Kind() != reflect.Ptr {
					executorLogger.Panic(
						"Query scan failed",
						"Destination for scanning must be a pointer, but got '"+typeof.String()+"'",
						nil,
					)
				}
			}
		}

		if e := row.Scan(dests...); e != nil {
			if errors.Is(e, pgx.ErrNoRows) {
				return Error.StatusNotFound
			}
			return query.ConvertError(e)
		}

		return nil
	}, nil
}

// Wrapper for '*pgxpool.Con.Exec'
func Exec(conType connection.Type, query *query.Query) (*Error.Status) {
	ctx, cancel, err := prepare(conType, query)
	if err != nil {
		return err
	}
	defer cancel()

	if _, err := ctx.Connection.Exec(ctx, query.SQL, query.Args...); err != nil {
		return query.ConvertError(err)
	}

    return nil
}
