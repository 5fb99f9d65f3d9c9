package businessentity

import (
	Error "registry/packages/common/errors"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/core/filter"
)

type Repository interface {
	FindBusinessEntityByID(id string) (*BusinessEntityDTO.Full, *Error.Status)

	FindAnyBusinessEntityByID(id string) (*BusinessEntityDTO.Full, *Error.Status)

	FindSoftDeletedBusinessEntityByID(id string) (*BusinessEntityDTO.Full, *Error.Status)

	SearchBusinessEntities(flt filter.Map, opts *filter.Options) ([]*BusinessEntityDTO.Full, *Error.Status)

	CreateBusinessEntity(payload *BusinessEntityDTO.Payload) (*BusinessEntityDTO.Full, *Error.Status)

	UpdateBusinessEntity(id string, payload *BusinessEntityDTO.Payload) (*BusinessEntityDTO.Full, *Error.Status)

	SoftDeleteBusinessEntity(id string) *Error.Status

	RestoreBusinessEntity(id string) *Error.Status

	DropBusinessEntity(id string) *Error.Status
}
