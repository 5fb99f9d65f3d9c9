package query_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"registry/packages/core/filter"
	"registry/packages/infrastructure/DB/postgres/query"
	filterparser "registry/packages/infrastructure/parsers/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseSql = `SELECT id, code, name FROM "entity"`

// Every placeholder must be contiguous from $1 and
// the highest one must match the number of bound values.
func assertPlaceholdersAligned(t *testing.T, q *query.Query) {
	t.Helper()

	for n := 1; n <= len(q.Args); n++ {
		assert.Contains(t, q.SQL, "$"+strconv.Itoa(n))
	}
	assert.NotContains(t, q.SQL, "$"+strconv.Itoa(len(q.Args)+1))
}

func TestCompileSingleEquality(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "code", Op: filter.Equal, Value: "WH-001"},
	}, nil)

	require.Nil(t, err)
	assert.Equal(t, baseSql+` WHERE "code" = $1 LIMIT $2 OFFSET $3`, q.SQL)
	assert.Equal(t, []any{"WH-001", 20, 0}, q.Args)
	assertPlaceholdersAligned(t, q)
}

func TestCompileLikeWrapsPattern(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "name", Op: filter.Like, Value: "warehouse"},
	}, nil)

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `"name" ILIKE $1`)
	assert.Equal(t, "%warehouse%", q.Args[0])
}

func TestCompileLikeRejectsNonString(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "name", Op: filter.Like, Value: 42},
	}, nil)

	require.Nil(t, q)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestCompileDefaultSort(t *testing.T) {
	compiler := query.NewCompiler(
		filter.SortField{Field: "created_at", Direction: filter.Desc},
	)

	q, err := compiler.Compile(baseSql, nil, nil)

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `ORDER BY "created_at" DESC`)
	// no conditions, only LIMIT/OFFSET are bound
	assert.Equal(t, []any{20, 0}, q.Args)
}

func TestCompileExplicitSortOverridesDefault(t *testing.T) {
	compiler := query.NewCompiler(
		filter.SortField{Field: "created_at", Direction: filter.Desc},
	)

	q, err := compiler.Compile(baseSql, nil, &filter.Options{
		Sort: []filter.SortField{{Field: "code", Direction: filter.Asc}},
	})

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `ORDER BY "code" ASC`)
	assert.NotContains(t, q.SQL, "created_at")
}

func TestCompileBetweenAndInContinuePlaceholders(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "version", Op: filter.Between, Value: []int{1, 5}},
		{Field: "status", Op: filter.In, Value: []string{"active", "pending"}},
	}, nil)

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `"version" BETWEEN $1 AND $2`)
	assert.Contains(t, q.SQL, `"status" IN ($3, $4)`)
	assert.Contains(t, q.SQL, "LIMIT $5 OFFSET $6")
	assert.Equal(t, []any{1, 5, "active", "pending", 20, 0}, q.Args)
	assertPlaceholdersAligned(t, q)
}

func TestCompileConditionsJoinedInOrder(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "status", Op: filter.Equal, Value: "active"},
		{Field: "version", Op: filter.Greater, Value: 2},
	}, nil)

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `WHERE "status" = $1 AND "version" > $2`)
}

func TestCompileIsNullTakesNoPlaceholder(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "deleted_at", Op: filter.IsNull},
		{Field: "status", Op: filter.Equal, Value: "active"},
	}, nil)

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `"deleted_at" IS NULL AND "status" = $1`)
	assert.Equal(t, []any{"active", 20, 0}, q.Args)
}

func TestCompileIsIdempotent(t *testing.T) {
	compiler := query.NewCompiler()

	conds := []filter.Condition{
		{Field: "status", Op: filter.In, Value: []string{"active", "inactive"}},
	}
	opts := &filter.Options{Page: 2, Limit: 10}

	first, err := compiler.Compile(baseSql, conds, opts)
	require.Nil(t, err)

	second, err := compiler.Compile(baseSql, conds, opts)
	require.Nil(t, err)

	assert.Equal(t, first.SQL, second.SQL)
	assert.Equal(t, first.Args, second.Args)
}

func TestCompilePagination(t *testing.T) {
	compiler := query.NewCompiler()

	t.Run("limit above maximum is clamped", func(t *testing.T) {
		q, err := compiler.Compile(baseSql, nil, &filter.Options{Limit: 1000})

		require.Nil(t, err)
		assert.Equal(t, []any{100, 0}, q.Args)
	})

	t.Run("omitted limit falls back to default", func(t *testing.T) {
		q, err := compiler.Compile(baseSql, nil, &filter.Options{})

		require.Nil(t, err)
		assert.Equal(t, []any{20, 0}, q.Args)
	})

	t.Run("offset derived from page and limit", func(t *testing.T) {
		q, err := compiler.Compile(baseSql, nil, &filter.Options{Page: 3, Limit: 10})

		require.Nil(t, err)
		assert.Equal(t, []any{10, 20}, q.Args)
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		q, err := compiler.Compile(baseSql, nil, &filter.Options{Page: -1})

		require.Nil(t, q)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})

	t.Run("zero page means first page", func(t *testing.T) {
		q, err := compiler.Compile(baseSql, nil, &filter.Options{Page: 0, Limit: 10})

		require.Nil(t, err)
		assert.Equal(t, []any{10, 0}, q.Args)
	})
}

// Table managers pass options straight through, so the values
// the compiler writes back are what search responses report.
func TestCompileNormalizesOptionsInPlace(t *testing.T) {
	compiler := query.NewCompiler()

	t.Run("oversized limit is written back clamped", func(t *testing.T) {
		opts := &filter.Options{Limit: 1000}

		_, err := compiler.Compile(baseSql, nil, opts)

		require.Nil(t, err)
		assert.Equal(t, 100, opts.Limit)
		assert.Equal(t, 1, opts.Page)
	})

	t.Run("negative limit is written back as 1", func(t *testing.T) {
		opts := &filter.Options{Limit: -5}

		_, err := compiler.Compile(baseSql, nil, opts)

		require.Nil(t, err)
		assert.Equal(t, 1, opts.Limit)
	})

	t.Run("omitted paging is written back with defaults", func(t *testing.T) {
		opts := &filter.Options{}

		_, err := compiler.Compile(baseSql, nil, opts)

		require.Nil(t, err)
		assert.Equal(t, 20, opts.Limit)
		assert.Equal(t, 1, opts.Page)
	})

	t.Run("valid paging is kept as is", func(t *testing.T) {
		opts := &filter.Options{Page: 3, Limit: 50}

		_, err := compiler.Compile(baseSql, nil, opts)

		require.Nil(t, err)
		assert.Equal(t, 50, opts.Limit)
		assert.Equal(t, 3, opts.Page)
	})
}

// Oversized limits coming in from a query string must be clamped,
// not rejected, all the way through the search pipeline.
func TestQueryStringOversizedLimitClamps(t *testing.T) {
	flt, opts, err := filterparser.FromQueryString("status_eq=active&limit=1000")
	require.Nil(t, err)

	conds, err := filterparser.ParseMap(flt)
	require.Nil(t, err)

	q, err := query.NewCompiler().Compile(baseSql, conds, opts)
	require.Nil(t, err)

	assert.Equal(t, []any{"active", 100, 0}, q.Args)
	assert.Equal(t, 100, opts.Limit)
	assert.Equal(t, 1, opts.Page)
	assertPlaceholdersAligned(t, q)
}

func TestCompileRejectsMalformedFieldName(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "1;drop", Op: filter.Equal, Value: "x"},
	}, nil)

	require.Nil(t, q)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestCompileRejectsMalformedSortField(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, nil, &filter.Options{
		Sort: []filter.SortField{{Field: `name";--`, Direction: filter.Asc}},
	})

	require.Nil(t, q)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestCompileRejectsEmptyInList(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "status", Op: filter.In, Value: []string{}},
	}, nil)

	require.Nil(t, q)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestCompileRejectsWrongBetweenArity(t *testing.T) {
	compiler := query.NewCompiler()

	for _, value := range [][]int{{1}, {1, 2, 3}} {
		q, err := compiler.Compile(baseSql, []filter.Condition{
			{Field: "version", Op: filter.Between, Value: value},
		}, nil)

		require.Nil(t, q)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	}
}

func TestCompileSkipsNilValues(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "status", Op: filter.Equal, Value: nil},
	}, nil)

	require.Nil(t, err)
	assert.NotContains(t, q.SQL, "WHERE")
	assert.Equal(t, []any{20, 0}, q.Args)
}

// Full pipeline: raw query string all the way to SQL.
func TestQueryStringToSql(t *testing.T) {
	rawQuery := "status_in=active,pending&name_like=ware&deleted_at_null=true&page=2&limit=10&sort=created_at:desc"

	flt, opts, err := filterparser.FromQueryString(rawQuery)
	require.Nil(t, err)

	conds, err := filterparser.ParseMap(flt)
	require.Nil(t, err)

	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, conds, opts)
	require.Nil(t, err)

	expected := baseSql +
		` WHERE "status" IN ($1, $2)` +
		` AND "name" ILIKE $3` +
		` AND "deleted_at" IS NULL` +
		` ORDER BY "created_at" DESC` +
		` LIMIT $4 OFFSET $5`

	assert.Equal(t, expected, q.SQL)
	assert.Equal(t, []any{"active", "pending", "%ware%", 10, 10}, q.Args)
	assertPlaceholdersAligned(t, q)
}

// Guards against placeholder drift when conditions are skipped mid-way.
func TestPlaceholderNumberingStaysContiguous(t *testing.T) {
	compiler := query.NewCompiler()

	q, err := compiler.Compile(baseSql, []filter.Condition{
		{Field: "status", Op: filter.Equal, Value: "active"},
		{Field: "name", Op: filter.Equal, Value: nil}, // skipped
		{Field: "code", Op: filter.NotEqual, Value: "X"},
	}, nil)

	require.Nil(t, err)
	assert.Contains(t, q.SQL, `"status" = $1 AND "code" <> $2`)
	assert.Equal(t, 4, len(q.Args))
	assert.Equal(t, 4, strings.Count(q.SQL, "$"))
	assertPlaceholdersAligned(t, q)
}
