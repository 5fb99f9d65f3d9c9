package executor

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Carries the deadline context together with the acquired connection.
// The cancel function returned by newExecutionContext releases both.
type executionContext struct {
	context.Context
	Connection *pgxpool.Conn
}

func newExecutionContext(
	parent context.Context,
	timeout time.Duration,
	con *pgxpool.Conn,
) (*executionContext, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)

	execCtx := &executionContext{
		Context:    ctx,
		Connection: con,
	}

	return execCtx, func() {
		cancel()
		con.Release()
	}
}
