package filterparser

import (
	"net/http"
	"strings"

	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/filter"
	parser "registry/packages/infrastructure/parsers"
)

// Operator suffix of a raw filter key.
//
// Each filter key must be a string in a following format:
//
// <field>_<operator> (e.g. "status_eq", "created_at_between")
//
// Keys without a recognized operator suffix mean equality on the whole key.
type suffixMapping struct {
	suffix string
	op     filter.Operator
}

// Ordered longest-first: the longest matching suffix wins,
// so "created_at_between" never parses as "created_at_betwee" + "_ne".
var operatorSuffixes = []suffixMapping{
	{"_between", filter.Between},
	{"_like", filter.Like},
	{"_null", filter.IsNull}, // refined to IsNotNull by the value, see Parse
	{"_gte", filter.GreaterOrEqual},
	{"_lte", filter.LessOrEqual},
	{"_eq", filter.Equal},
	{"_ne", filter.NotEqual},
	{"_gt", filter.Greater},
	{"_lt", filter.Less},
	{"_in", filter.In},
}

// Keys that carry pagination/ordering, not filter conditions.
// They are stripped before parsing.
const (
	PageKey  = "page"
	LimitKey = "limit"
	SortKey  = "sort"
)

func IsReservedKey(key string) bool {
	return key == PageKey || key == LimitKey || key == SortKey
}

func invalidKey(key string, reason string) *Error.Status {
	return Error.NewStatusError(
		"Invalid filter key '"+key+"': "+reason,
		http.StatusBadRequest,
	)
}

// Splits a raw filter key into field name and operator.
func splitKey(key string) (field string, op filter.Operator) {
	for _, m := range operatorSuffixes {
		if strings.HasSuffix(key, m.suffix) {
			return strings.TrimSuffix(key, m.suffix), m.op
		}
	}

	return key, filter.Equal
}

// Parses a single raw filter entry into a condition.
//
// Returns skip=true (and no condition) for nil values,
// except the "_null" operator which consumes its boolean value.
func Parse(key string, value any) (cond filter.Condition, skip bool, err *Error.Status) {
	var zero filter.Condition

	field, op := splitKey(key)

	if e := validation.Identifier(field); e != nil {
		err := invalidKey(key, "field name is not a valid identifier")
		parser.Logger.Error("Failed to parse filter", err.Error(), nil)
		return zero, false, err
	}

	if op == filter.IsNull {
		isNull, ok := value.(bool)
		if !ok {
			err := invalidKey(key, "expected a boolean value")
			parser.Logger.Error("Failed to parse filter", err.Error(), nil)
			return zero, false, err
		}
		if !isNull {
			op = filter.IsNotNull
		}
		return filter.Condition{Field: field, Op: op}, false, nil
	}

	if value == nil {
		return zero, true, nil
	}

	return filter.Condition{Field: field, Op: op, Value: value}, false, nil
}

// Parses all entries of a raw filter map into conditions,
// preserving insertion order. Reserved keys are stripped.
//
// Fails fast: the first invalid entry rejects the whole filter.
func ParseMap(flt filter.Map) ([]filter.Condition, *Error.Status) {
	parser.Logger.Trace("Parsing filter map...", nil)

	conds := make([]filter.Condition, 0, len(flt))

	for _, pair := range flt {
		if IsReservedKey(pair.Key) {
			continue
		}

		cond, skip, err := Parse(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}

		conds = append(conds, cond)
	}

	parser.Logger.Trace("Parsing filter map: OK", nil)

	return conds, nil
}

// Verifies that every condition and sort field references an
// allow-listed column of the target resource.
// Identifier safety alone isn't enough: filterable columns
// are an explicit per-resource contract.
func ValidateSearchable(
	conds []filter.Condition,
	opts *filter.Options,
	isSearchable func(string) bool,
) *Error.Status {
	for _, cond := range conds {
		if !isSearchable(cond.Field) {
			return Error.NewStatusError(
				"Search by '"+cond.Field+"' is not allowed",
				http.StatusBadRequest,
			)
		}
	}

	if opts != nil {
		for _, s := range opts.Sort {
			if !isSearchable(s.Field) {
				return Error.NewStatusError(
					"Sorting by '"+s.Field+"' is not allowed",
					http.StatusBadRequest,
				)
			}
		}
	}

	return nil
}
