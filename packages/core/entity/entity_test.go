package entity_test

import (
	"strings"
	"testing"

	"registry/packages/core/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsSearchable(t *testing.T) {
	searchable := []string{
		"code", "name", "description", "status",
		"created_at", "updated_at", "deleted_at", "version",
	}

	for _, field := range searchable {
		assert.True(t, entity.IsSearchable(field), field)
	}

	assert.False(t, entity.IsSearchable("id"))
	assert.False(t, entity.IsSearchable("password"))
	assert.False(t, entity.IsSearchable(""))
}

func TestValidateStatus(t *testing.T) {
	for _, status := range []string{"active", "inactive", "pending"} {
		assert.Nil(t, entity.ValidateStatus(status), status)
	}

	assert.Equal(t, entity.ErrInvalidStatus, entity.ValidateStatus("deleted"))
	assert.Equal(t, entity.ErrInvalidStatus, entity.ValidateStatus(""))
	assert.Equal(t, entity.ErrInvalidStatus, entity.ValidateStatus("Active"))
}

func TestValidateCode(t *testing.T) {
	assert.Nil(t, entity.ValidateCode("WH"))
	assert.Nil(t, entity.ValidateCode(strings.Repeat("a", 64)))

	assert.Equal(t, entity.ErrInvalidCodeLength, entity.ValidateCode("a"))
	assert.Equal(t, entity.ErrInvalidCodeLength, entity.ValidateCode("  a  "))
	assert.Equal(t, entity.ErrInvalidCodeLength, entity.ValidateCode(strings.Repeat("a", 65)))
}

func TestValidateName(t *testing.T) {
	assert.Nil(t, entity.ValidateName("Main warehouse"))
	assert.Nil(t, entity.ValidateName(strings.Repeat("a", 256)))

	assert.Equal(t, entity.ErrInvalidNameLength, entity.ValidateName("x"))
	assert.Equal(t, entity.ErrInvalidNameLength, entity.ValidateName(strings.Repeat("a", 257)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not deleted", entity.NotDeletedState.String())
	assert.Equal(t, "deleted", entity.DeletedState.String())
	assert.Equal(t, "any", entity.AnyState.String())
}
