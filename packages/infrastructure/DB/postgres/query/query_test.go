package query_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	Error "registry/packages/common/errors"
	"registry/packages/infrastructure/DB/postgres/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertError(t *testing.T) {
	q := query.New(`SELECT id FROM "entity" WHERE id = $1;`, "x")

	t.Run("no rows maps to 404", func(t *testing.T) {
		err := q.ConvertError(pgx.ErrNoRows)

		assert.Equal(t, Error.StatusNotFound, err)
	})

	t.Run("deadline maps to timeout", func(t *testing.T) {
		err := q.ConvertError(context.DeadlineExceeded)

		assert.Equal(t, Error.StatusTimeout, err)
	})

	t.Run("unique violation maps to 409", func(t *testing.T) {
		err := q.ConvertError(&pgconn.PgError{Code: "23505"})

		assert.Equal(t, http.StatusConflict, err.Status())
	})

	t.Run("foreign key violation maps to 409", func(t *testing.T) {
		err := q.ConvertError(&pgconn.PgError{Code: "23503"})

		assert.Equal(t, http.StatusConflict, err.Status())
	})

	t.Run("anything else maps to 500", func(t *testing.T) {
		err := q.ConvertError(errors.New("connection reset"))

		assert.Equal(t, Error.StatusInternalError, err)
	})
}

func TestNewQuery(t *testing.T) {
	q := query.New("SELECT 1", 1, "a")

	assert.Equal(t, "SELECT 1", q.SQL)
	assert.Equal(t, []any{1, "a"}, q.Args)
}
