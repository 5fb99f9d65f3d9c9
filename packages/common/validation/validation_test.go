package validation_test

import (
	"strings"
	"testing"

	Error "registry/packages/common/errors"
	"registry/packages/common/validation"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	t.Run("accepts valid identifiers", func(t *testing.T) {
		valid := []string{
			"code",
			"created_at",
			"_private",
			"Field9",
			strings.Repeat("a", 63),
		}

		for _, v := range valid {
			assert.Nil(t, validation.Identifier(v), v)
		}
	})

	t.Run("rejects empty value", func(t *testing.T) {
		assert.Equal(t, Error.NoValue, validation.Identifier(""))
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		invalid := []string{
			"1;drop",
			"1abc",
			"na me",
			`code"`,
			"code--",
			"code.name",
			strings.Repeat("a", 64),
		}

		for _, v := range invalid {
			assert.Equal(t, Error.InvalidValue, validation.Identifier(v), v)
		}
	})
}

func TestUUID(t *testing.T) {
	t.Run("accepts valid uuid", func(t *testing.T) {
		assert.Nil(t, validation.UUID("cef85e5a-5a5f-42d0-81bd-1650391c0e82"))
	})

	t.Run("rejects empty value", func(t *testing.T) {
		assert.Equal(t, Error.NoValue, validation.UUID(""))
		assert.Equal(t, Error.NoValue, validation.UUID("   "))
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		assert.Equal(t, Error.InvalidValue, validation.UUID("not-a-uuid"))
	})
}
