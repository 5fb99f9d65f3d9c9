package cache

import (
	"testing"
	"time"

	entitydto "registry/packages/core/entity/DTO"

	"github.com/stretchr/testify/assert"
)

func newEntityDTO(id string, deletedAt *time.Time) *entitydto.Full {
	return &entitydto.Full{
		ID: id,
		Code: "E-001",
		Name: "Test entity",
		Status: "active",
		DeletedAt: deletedAt,
	}
}

func TestEntityDtoInvalidatorKeys(t *testing.T) {
	id := "cef85e5a-5a5f-42d0-81bd-1650391c0e82"
	now := time.Now()

	t.Run("plain update invalidates any and live keys", func(t *testing.T) {
		inv := NewEntityDtoInvalidator(
			newEntityDTO(id, nil),
			newEntityDTO(id, nil),
		)

		keys := inv.GetInvalidKeys()

		assert.ElementsMatch(t, []string{
			KeyBase[AnyEntityById] + id,
			KeyBase[EntityById] + id,
		}, keys)
	})

	t.Run("soft deletion invalidates all three keys", func(t *testing.T) {
		inv := NewEntityDtoInvalidator(
			newEntityDTO(id, nil),
			newEntityDTO(id, &now),
		)

		keys := inv.GetInvalidKeys()

		assert.ElementsMatch(t, []string{
			KeyBase[AnyEntityById] + id,
			KeyBase[EntityById] + id,
			KeyBase[DeletedEntityById] + id,
		}, keys)
	})

	t.Run("restore invalidates all three keys", func(t *testing.T) {
		inv := NewEntityDtoInvalidator(
			newEntityDTO(id, &now),
			newEntityDTO(id, nil),
		)

		keys := inv.GetInvalidKeys()

		assert.ElementsMatch(t, []string{
			KeyBase[AnyEntityById] + id,
			KeyBase[EntityById] + id,
			KeyBase[DeletedEntityById] + id,
		}, keys)
	})

	t.Run("update of a soft deleted row targets the deleted key", func(t *testing.T) {
		inv := NewEntityDtoInvalidator(
			newEntityDTO(id, &now),
			newEntityDTO(id, &now),
		)

		keys := inv.GetInvalidKeys()

		assert.ElementsMatch(t, []string{
			KeyBase[AnyEntityById] + id,
			KeyBase[DeletedEntityById] + id,
		}, keys)
	})
}

func TestKeyBaseCoversAllKeyNames(t *testing.T) {
	names := []string{
		EntityById, AnyEntityById, DeletedEntityById,
		BusinessEntityById, AnyBusinessEntityById, DeletedBusinessEntityById,
		LocationById, AnyLocationById, DeletedLocationById,
		LocationTypeById,
	}

	for _, name := range names {
		base, ok := KeyBase[name]
		assert.True(t, ok, name)
		assert.NotEmpty(t, base, name)
	}
}
