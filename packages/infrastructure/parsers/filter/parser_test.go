package filterparser_test

import (
	"net/http"
	"testing"

	"registry/packages/core/filter"
	filterparser "registry/packages/infrastructure/parsers/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperatorSuffixes(t *testing.T) {
	cases := []struct {
		key      string
		expected filter.Operator
		field    string
	}{
		{"status_eq", filter.Equal, "status"},
		{"status_ne", filter.NotEqual, "status"},
		{"version_gt", filter.Greater, "version"},
		{"version_gte", filter.GreaterOrEqual, "version"},
		{"version_lt", filter.Less, "version"},
		{"version_lte", filter.LessOrEqual, "version"},
		{"name_like", filter.Like, "name"},
		{"status_in", filter.In, "status"},
		{"created_at_between", filter.Between, "created_at"},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			cond, skip, err := filterparser.Parse(c.key, "value")

			require.Nil(t, err)
			assert.False(t, skip)
			assert.Equal(t, c.expected, cond.Op)
			assert.Equal(t, c.field, cond.Field)
		})
	}
}

func TestParseBareKeyMeansEquality(t *testing.T) {
	cond, skip, err := filterparser.Parse("username", "bob")

	require.Nil(t, err)
	assert.False(t, skip)
	assert.Equal(t, filter.Equal, cond.Op)
	assert.Equal(t, "username", cond.Field)
	assert.Equal(t, "bob", cond.Value)
}

// "created_at_between" must match "_between", not "_ne" hiding at the end
// of a shorter suffix.
func TestParseLongestSuffixWins(t *testing.T) {
	cond, _, err := filterparser.Parse("created_at_between", []string{"a", "b"})

	require.Nil(t, err)
	assert.Equal(t, filter.Between, cond.Op)
	assert.Equal(t, "created_at", cond.Field)
}

func TestParseNullOperator(t *testing.T) {
	t.Run("true means IS NULL", func(t *testing.T) {
		cond, _, err := filterparser.Parse("deleted_at_null", true)

		require.Nil(t, err)
		assert.Equal(t, filter.IsNull, cond.Op)
		assert.Equal(t, "deleted_at", cond.Field)
		assert.Nil(t, cond.Value)
	})

	t.Run("false means IS NOT NULL", func(t *testing.T) {
		cond, _, err := filterparser.Parse("deleted_at_null", false)

		require.Nil(t, err)
		assert.Equal(t, filter.IsNotNull, cond.Op)
	})

	t.Run("non-boolean value is rejected", func(t *testing.T) {
		_, _, err := filterparser.Parse("deleted_at_null", "yes")

		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})
}

func TestParseRejectsMalformedFieldName(t *testing.T) {
	for _, key := range []string{"1;drop_eq", "na me_eq", `code"_eq`, "1abc"} {
		_, _, err := filterparser.Parse(key, "x")

		require.NotNil(t, err, key)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	}
}

func TestParseSkipsNilValue(t *testing.T) {
	_, skip, err := filterparser.Parse("status_eq", nil)

	require.Nil(t, err)
	assert.True(t, skip)
}

func TestParseMap(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		flt := filter.Map{
			{Key: "status_eq", Value: "active"},
			{Key: "code_like", Value: "WH"},
			{Key: "version_gt", Value: 1},
		}

		conds, err := filterparser.ParseMap(flt)

		require.Nil(t, err)
		require.Len(t, conds, 3)
		assert.Equal(t, "status", conds[0].Field)
		assert.Equal(t, "code", conds[1].Field)
		assert.Equal(t, "version", conds[2].Field)
	})

	t.Run("strips reserved keys", func(t *testing.T) {
		flt := filter.Map{
			{Key: "page", Value: 2},
			{Key: "limit", Value: 10},
			{Key: "sort", Value: "code"},
			{Key: "status_eq", Value: "active"},
		}

		conds, err := filterparser.ParseMap(flt)

		require.Nil(t, err)
		require.Len(t, conds, 1)
		assert.Equal(t, "status", conds[0].Field)
	})

	t.Run("fails fast on first invalid key", func(t *testing.T) {
		flt := filter.Map{
			{Key: "status_eq", Value: "active"},
			{Key: "1;drop_eq", Value: "x"},
		}

		conds, err := filterparser.ParseMap(flt)

		require.NotNil(t, err)
		assert.Nil(t, conds)
	})
}

func TestValidateSearchable(t *testing.T) {
	isSearchable := func(field string) bool {
		return field == "code" || field == "status"
	}

	t.Run("allows listed fields", func(t *testing.T) {
		err := filterparser.ValidateSearchable(
			[]filter.Condition{{Field: "code", Op: filter.Equal, Value: "x"}},
			&filter.Options{Sort: []filter.SortField{{Field: "status"}}},
			isSearchable,
		)

		assert.Nil(t, err)
	})

	t.Run("rejects unlisted filter field", func(t *testing.T) {
		err := filterparser.ValidateSearchable(
			[]filter.Condition{{Field: "password", Op: filter.Equal, Value: "x"}},
			nil,
			isSearchable,
		)

		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})

	t.Run("rejects unlisted sort field", func(t *testing.T) {
		err := filterparser.ValidateSearchable(
			nil,
			&filter.Options{Sort: []filter.SortField{{Field: "secret"}}},
			isSearchable,
		)

		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})
}

func TestFromQueryString(t *testing.T) {
	t.Run("splits filters and options", func(t *testing.T) {
		flt, opts, err := filterparser.FromQueryString(
			"status_eq=active&page=2&limit=50&sort=created_at:desc,code",
		)

		require.Nil(t, err)
		require.Len(t, flt, 1)
		assert.Equal(t, "status_eq", flt[0].Key)
		assert.Equal(t, "active", flt[0].Value)
		assert.Equal(t, 2, opts.Page)
		assert.Equal(t, 50, opts.Limit)
		require.Len(t, opts.Sort, 2)
		assert.Equal(t, filter.SortField{Field: "created_at", Direction: filter.Desc}, opts.Sort[0])
		assert.Equal(t, filter.SortField{Field: "code", Direction: filter.Asc}, opts.Sort[1])
	})

	t.Run("preserves filter order", func(t *testing.T) {
		flt, _, err := filterparser.FromQueryString("b_eq=2&a_eq=1")

		require.Nil(t, err)
		require.Len(t, flt, 2)
		assert.Equal(t, "b_eq", flt[0].Key)
		assert.Equal(t, "a_eq", flt[1].Key)
	})

	t.Run("splits list operators on commas", func(t *testing.T) {
		flt, _, err := filterparser.FromQueryString("status_in=active, pending&version_between=1,5")

		require.Nil(t, err)
		require.Len(t, flt, 2)
		assert.Equal(t, []string{"active", "pending"}, flt[0].Value)
		assert.Equal(t, []string{"1", "5"}, flt[1].Value)
	})

	t.Run("parses null operator value as boolean", func(t *testing.T) {
		flt, _, err := filterparser.FromQueryString("deleted_at_null=true")

		require.Nil(t, err)
		require.Len(t, flt, 1)
		assert.Equal(t, true, flt[0].Value)
	})

	t.Run("rejects non-boolean null value", func(t *testing.T) {
		_, _, err := filterparser.FromQueryString("deleted_at_null=maybe")

		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})

	t.Run("rejects non-integer page and limit", func(t *testing.T) {
		for _, raw := range []string{"page=abc", "limit=ten"} {
			_, _, err := filterparser.FromQueryString(raw)

			require.NotNil(t, err, raw)
			assert.Equal(t, http.StatusBadRequest, err.Status())
		}
	})

	t.Run("rejects empty sort field", func(t *testing.T) {
		_, _, err := filterparser.FromQueryString("sort=:desc")

		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})

	t.Run("decodes url-encoded values", func(t *testing.T) {
		flt, _, err := filterparser.FromQueryString("name_like=big%20warehouse")

		require.Nil(t, err)
		require.Len(t, flt, 1)
		assert.Equal(t, "big warehouse", flt[0].Value)
	})

	t.Run("empty query produces no filters", func(t *testing.T) {
		flt, opts, err := filterparser.FromQueryString("")

		require.Nil(t, err)
		assert.Empty(t, flt)
		assert.Equal(t, 0, opts.Page)
		assert.Equal(t, 0, opts.Limit)
	})
}
