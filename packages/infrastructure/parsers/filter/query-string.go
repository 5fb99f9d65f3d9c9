package filterparser

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	Error "registry/packages/common/errors"
	"registry/packages/core/filter"
)

func invalidParam(key string, reason string) *Error.Status {
	return Error.NewStatusError(
		"Invalid query parameter '"+key+"': "+reason,
		http.StatusBadRequest,
	)
}

// Builds a raw filter map and search options from an HTTP query string.
//
// The standard url.Values loses parameter order, so the raw query
// string is walked directly: the compiled WHERE clause must follow
// the order in which the caller wrote the filters.
//
// Value handling per operator:
//   - "_in" and "_between" values are comma-separated lists
//   - "_null" values must be "true" or "false"
//   - everything else stays a string and is bound as a parameter as-is
func FromQueryString(rawQuery string) (filter.Map, *filter.Options, *Error.Status) {
	flt := filter.Map{}
	opts := new(filter.Options)

	if rawQuery == "" {
		return flt, opts, nil
	}

	for _, rawPair := range strings.Split(rawQuery, "&") {
		if rawPair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(rawPair, "=")

		key, e := url.QueryUnescape(rawKey)
		if e != nil {
			return nil, nil, invalidParam(rawKey, "malformed key encoding")
		}

		value, e := url.QueryUnescape(rawValue)
		if e != nil {
			return nil, nil, invalidParam(key, "malformed value encoding")
		}

		switch key {
		case PageKey:
			page, e := strconv.Atoi(value)
			if e != nil {
				return nil, nil, invalidParam(key, "expected an integer")
			}
			opts.Page = page
		case LimitKey:
			limit, e := strconv.Atoi(value)
			if e != nil {
				return nil, nil, invalidParam(key, "expected an integer")
			}
			opts.Limit = limit
		case SortKey:
			sort, err := parseSort(value)
			if err != nil {
				return nil, nil, err
			}
			opts.Sort = append(opts.Sort, sort...)
		default:
			pair, err := parseFilterPair(key, value)
			if err != nil {
				return nil, nil, err
			}
			flt = append(flt, pair)
		}
	}

	return flt, opts, nil
}

// Parses "field:direction" pairs separated by commas,
// e.g. "created_at:desc,name".
// Missing or unrecognized direction falls back to ascending.
func parseSort(value string) ([]filter.SortField, *Error.Status) {
	rawFields := strings.Split(value, ",")

	sort := make([]filter.SortField, 0, len(rawFields))

	for _, rawField := range rawFields {
		field, direction, _ := strings.Cut(strings.TrimSpace(rawField), ":")
		if field == "" {
			return nil, invalidParam(SortKey, "empty sort field")
		}

		sort = append(sort, filter.SortField{
			Field: field,
			Direction: filter.ParseDirection(direction),
		})
	}

	return sort, nil
}

func parseFilterPair(key string, value string) (filter.Pair, *Error.Status) {
	var zero filter.Pair

	_, op := splitKey(key)

	switch op {
	case filter.In, filter.Between:
		elems := strings.Split(value, ",")
		for i := range elems {
			elems[i] = strings.TrimSpace(elems[i])
		}
		return filter.Pair{Key: key, Value: elems}, nil
	case filter.IsNull:
		isNull, e := strconv.ParseBool(value)
		if e != nil {
			return zero, invalidParam(key, "expected a boolean")
		}
		return filter.Pair{Key: key, Value: isNull}, nil
	default:
		return filter.Pair{Key: key, Value: value}, nil
	}
}
