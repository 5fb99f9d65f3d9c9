package query

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"registry/packages/common/config"
	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/filter"
)

type sqlCond string

const (
	condEqual 		   sqlCond = "="
	condNotEqual	   sqlCond = "<>"
	condLess 		   sqlCond = "<"
	condGreater 	   sqlCond = ">"
	condLessOrEqual    sqlCond = "<="
	condGreaterOrEqual sqlCond = ">="
	condLike 		   sqlCond = "ILIKE"
	condIn	  	 	   sqlCond = "IN"
	condBetween  	   sqlCond = "BETWEEN"
	condIsNull		   sqlCond = "IS NULL"
	condIsNotNull	   sqlCond = "IS NOT NULL"
)

var condMap = map[filter.Operator]sqlCond {
	filter.Equal: condEqual,
	filter.NotEqual: condNotEqual,
	filter.Less: condLess,
	filter.Greater: condGreater,
	filter.LessOrEqual: condLessOrEqual,
	filter.GreaterOrEqual: condGreaterOrEqual,
	filter.Like: condLike,
	filter.In: condIn,
	filter.Between: condBetween,
	filter.IsNull: condIsNull,
	filter.IsNotNull: condIsNotNull,
}

// Fallbacks for when config isn't loaded (e.g. in tests).
const defaultLimit = 20
const maxLimit = 100

// Compiles search conditions and pagination/sort options
// into parameterized SQL with positional placeholders.
//
// Stateless and safe for concurrent use, each table keeps
// a single instance with its own default ordering.
type Compiler struct {
	defaultSort []filter.SortField
}

// Creates a new Compiler.
// 'defaultSort' is applied when a search request specifies no ordering;
// it must reference trusted, predefined columns (e.g. primary key).
func NewCompiler(defaultSort ...filter.SortField) *Compiler {
	return &Compiler{
		defaultSort: defaultSort,
	}
}

func invalidFieldName(field string) *Error.Status {
	return Error.NewStatusError(
		"Invalid filter field name: " + field,
		http.StatusBadRequest,
	)
}

func invalidArity(field string, expected string) *Error.Status {
	return Error.NewStatusError(
		"Invalid filter value for '"+field+"': expected "+expected,
		http.StatusBadRequest,
	)
}

var errInvalidPage = Error.NewStatusError(
	"Invalid pagination: page must be greater than 0",
	http.StatusBadRequest,
)

// Compile builds the final SQL statement from 'base'
// (a plain "SELECT ... FROM ..." prefix without WHERE/ORDER BY/LIMIT),
// appending one WHERE fragment per condition (joined by AND, in the
// order given), an ORDER BY clause and LIMIT/OFFSET.
//
// Placeholders are numbered contiguously starting at $1;
// LIMIT and OFFSET always consume the final two.
//
// The effective page and limit are written back into 'opts',
// so callers can report the paging that was actually applied.
//
// Returns a 400-status error before any SQL is concatenated if a
// field name fails the identifier check, a value has wrong arity
// for its operator, or the page number is invalid.
func (c *Compiler) Compile(
	base string,
	conds []filter.Condition,
	opts *filter.Options,
) (*Query, *Error.Status) {
	page, limit, err := normalizePaging(opts)
	if err != nil {
		return nil, err
	}

	if opts != nil {
		opts.Page = page
		opts.Limit = limit
	}

	orderBy, err := c.buildOrderBy(opts)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, 0, len(conds))
	values := make([]any, 0, len(conds)+2)

	for _, cond := range conds {
		if e := validation.Identifier(cond.Field); e != nil {
			return nil, invalidFieldName(cond.Field)
		}

		fragment, args, err := buildCondition(cond, len(values)+1)
		if err != nil {
			return nil, err
		}
		if fragment == "" {
			// nil value, condition is skipped
			continue
		}

		fragments = append(fragments, fragment)
		values = append(values, args...)
	}

	var sb strings.Builder

	sb.WriteString(base)

	if len(fragments) != 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(fragments, " AND "))
	}

	sb.WriteString(orderBy)

	// LIMIT and OFFSET are always the last two placeholders
	sb.WriteString(" LIMIT $" + strconv.Itoa(len(values)+1))
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(values)+2))

	values = append(values, limit, (page-1)*limit)

	return New(sb.String(), values...), nil
}

// Builds a single WHERE fragment.
// 'n' is the number of the first placeholder this condition may consume.
// Returns an empty fragment for nil values (the condition is skipped).
func buildCondition(cond filter.Condition, n int) (string, []any, *Error.Status) {
	column := `"` + cond.Field + `"`
	sql := condMap[cond.Op]

	if sql == "" {
		return "", nil, Error.NewStatusError(
			"Unknown filter operator for '"+cond.Field+"'",
			http.StatusBadRequest,
		)
	}

	switch cond.Op {
	case filter.IsNull, filter.IsNotNull:
		return column + " " + string(sql), nil, nil

	case filter.Like:
		v, ok := cond.Value.(string)
		if !ok {
			return "", nil, invalidArity(cond.Field, "a string")
		}
		return column + " ILIKE $" + strconv.Itoa(n), []any{"%" + v + "%"}, nil

	case filter.In:
		elems, ok := expandSlice(cond.Value)
		if !ok || len(elems) == 0 {
			return "", nil, invalidArity(cond.Field, "a non-empty array")
		}

		placeholders := make([]string, len(elems))
		for i := range elems {
			placeholders[i] = "$" + strconv.Itoa(n+i)
		}

		return column + " IN (" + strings.Join(placeholders, ", ") + ")", elems, nil

	case filter.Between:
		elems, ok := expandSlice(cond.Value)
		if !ok || len(elems) != 2 {
			return "", nil, invalidArity(cond.Field, "exactly two elements")
		}

		return fmt.Sprintf("%s BETWEEN $%d AND $%d", column, n, n+1), elems, nil

	default:
		if cond.Value == nil {
			return "", nil, nil
		}
		return column + " " + string(sql) + " $" + strconv.Itoa(n), []any{cond.Value}, nil
	}
}

func (c *Compiler) buildOrderBy(opts *filter.Options) (string, *Error.Status) {
	sort := c.defaultSort
	if opts != nil && len(opts.Sort) != 0 {
		sort = opts.Sort
	}

	if len(sort) == 0 {
		return "", nil
	}

	fields := make([]string, len(sort))

	for i, s := range sort {
		if e := validation.Identifier(s.Field); e != nil {
			return "", invalidFieldName(s.Field)
		}

		direction := s.Direction
		if direction != filter.Desc {
			direction = filter.Asc
		}

		fields[i] = `"` + s.Field + `" ` + string(direction)
	}

	return " ORDER BY " + strings.Join(fields, ", "), nil
}

// Applies the pagination policy: limit is clamped to [1,max]
// (both bounds come from config, with built-in fallbacks),
// page below 1 is rejected (default 1 when omitted).
//
// This is the only place that decides paging, table managers
// must not second-guess it.
func normalizePaging(opts *filter.Options) (page int, limit int, err *Error.Status) {
	def, max := pageLimits()

	page, limit = 1, def

	if opts == nil {
		return page, limit, nil
	}

	if opts.Page != 0 {
		if opts.Page < 1 {
			return 0, 0, errInvalidPage
		}
		page = opts.Page
	}

	if opts.Limit != 0 {
		limit = opts.Limit
		if limit < 1 {
			limit = 1
		}
		if limit > max {
			limit = max
		}
	}

	return page, limit, nil
}

func pageLimits() (def int, max int) {
	def, max = defaultLimit, maxLimit

	if config.DB.DefaultSearchPageSize > 0 {
		def = config.DB.DefaultSearchPageSize
	}
	if config.DB.MaxSearchPageSize > 0 {
		max = config.DB.MaxSearchPageSize
	}

	return def, max
}

// Converts a typed slice value into []any.
// Type switch instead of reflection, same set of types
// the executor knows how to log.
func expandSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		elems := make([]any, len(s))
		for i, e := range s {
			elems[i] = e
		}
		return elems, true
	case []int:
		elems := make([]any, len(s))
		for i, e := range s {
			elems[i] = e
		}
		return elems, true
	case []int64:
		elems := make([]any, len(s))
		for i, e := range s {
			elems[i] = e
		}
		return elems, true
	case []float64:
		elems := make([]any, len(s))
		for i, e := range s {
			elems[i] = e
		}
		return elems, true
	case []time.Time:
		elems := make([]any, len(s))
		for i, e := range s {
			elems[i] = e
		}
		return elems, true
	default:
		return nil, false
	}
}
