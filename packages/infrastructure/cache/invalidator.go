package cache

import (
	"time"

	Error "registry/packages/common/errors"
	"registry/packages/common/util"
	businessentitydto "registry/packages/core/businessentity/DTO"
	entitydto "registry/packages/core/entity/DTO"
	locationdto "registry/packages/core/location/DTO"
)

// Used to automically find/delete invalid cache keys
type Invalidator interface {
	GetInvalidKeys() []string
	Invalidate() *Error.Status
}

// Computes the id-based cache keys which became stale after a resource
// changed. The "any" key is always stale; the live/deleted keys are
// both stale when the soft-deletion state changed, otherwise only the
// key matching the old state is.
func staleIdKeys(anyBase, liveBase, deletedBase, id string, oldDeletedAt, currentDeletedAt time.Time) []string {
	keys := []string{KeyBase[anyBase] + id}

	if !oldDeletedAt.Equal(currentDeletedAt) {
		return append(keys, KeyBase[liveBase]+id, KeyBase[deletedBase]+id)
	}

	if oldDeletedAt.IsZero() {
		return append(keys, KeyBase[liveBase]+id)
	}

	return append(keys, KeyBase[deletedBase]+id)
}

// Finds invalid cache keys by analyzing changes between
// 'old' and 'current' version of an entity DTO.
type EntityDtoInvalidator struct {
	old     *entitydto.Full
	current *entitydto.Full
}

func NewEntityDtoInvalidator(old *entitydto.Full, current *entitydto.Full) *EntityDtoInvalidator {
	return &EntityDtoInvalidator{old: old, current: current}
}

func (i *EntityDtoInvalidator) GetInvalidKeys() []string {
	return staleIdKeys(
		AnyEntityById,
		EntityById,
		DeletedEntityById,
		i.old.ID,
		util.SafeDereference(i.old.DeletedAt),
		util.SafeDereference(i.current.DeletedAt),
	)
}

// Deletes all invalid keys of 'old' from cache
func (i *EntityDtoInvalidator) Invalidate() *Error.Status {
	keys := i.GetInvalidKeys()
	if len(keys) == 0 {
		return nil
	}
	return Client.Delete(keys...)
}

type BusinessEntityDtoInvalidator struct {
	old     *businessentitydto.Full
	current *businessentitydto.Full
}

func NewBusinessEntityDtoInvalidator(old *businessentitydto.Full, current *businessentitydto.Full) *BusinessEntityDtoInvalidator {
	return &BusinessEntityDtoInvalidator{old: old, current: current}
}

func (i *BusinessEntityDtoInvalidator) GetInvalidKeys() []string {
	return staleIdKeys(
		AnyBusinessEntityById,
		BusinessEntityById,
		DeletedBusinessEntityById,
		i.old.ID,
		util.SafeDereference(i.old.DeletedAt),
		util.SafeDereference(i.current.DeletedAt),
	)
}

func (i *BusinessEntityDtoInvalidator) Invalidate() *Error.Status {
	keys := i.GetInvalidKeys()
	if len(keys) == 0 {
		return nil
	}
	return Client.Delete(keys...)
}

type LocationDtoInvalidator struct {
	old     *locationdto.Full
	current *locationdto.Full
}

func NewLocationDtoInvalidator(old *locationdto.Full, current *locationdto.Full) *LocationDtoInvalidator {
	return &LocationDtoInvalidator{old: old, current: current}
}

func (i *LocationDtoInvalidator) GetInvalidKeys() []string {
	return staleIdKeys(
		AnyLocationById,
		LocationById,
		DeletedLocationById,
		i.old.ID,
		util.SafeDereference(i.old.DeletedAt),
		util.SafeDereference(i.current.DeletedAt),
	)
}

func (i *LocationDtoInvalidator) Invalidate() *Error.Status {
	keys := i.GetInvalidKeys()
	if len(keys) == 0 {
		return nil
	}
	return Client.Delete(keys...)
}

// Location types have no soft-deletion state, a single key is enough.
func InvalidateLocationType(id string) *Error.Status {
	return Client.Delete(KeyBase[LocationTypeById] + id)
}
