package entity

import (
	Error "registry/packages/common/errors"
	EntityDTO "registry/packages/core/entity/DTO"
	"registry/packages/core/filter"
)

type Repository interface {
	seeker
	repository
}

// Responsible for R in CRUD
type seeker interface {
	FindEntityByID(id string) (*EntityDTO.Full, *Error.Status)

	FindAnyEntityByID(id string) (*EntityDTO.Full, *Error.Status)

	FindSoftDeletedEntityByID(id string) (*EntityDTO.Full, *Error.Status)

	SearchEntities(flt filter.Map, opts *filter.Options) ([]*EntityDTO.Full, *Error.Status)
}

// Responsible for C, U and D in CRUD
type repository interface {
	CreateEntity(payload *EntityDTO.Payload) (*EntityDTO.Full, *Error.Status)

	UpdateEntity(id string, payload *EntityDTO.Payload) (*EntityDTO.Full, *Error.Status)

	SoftDeleteEntity(id string) *Error.Status

	RestoreEntity(id string) *Error.Status

	DropEntity(id string) *Error.Status
}
