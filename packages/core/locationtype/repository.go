package locationtype

import (
	Error "registry/packages/common/errors"
	"registry/packages/core/filter"
	LocationTypeDTO "registry/packages/core/locationtype/DTO"
)

type Repository interface {
	FindLocationTypeByID(id string) (*LocationTypeDTO.Full, *Error.Status)

	SearchLocationTypes(flt filter.Map, opts *filter.Options) ([]*LocationTypeDTO.Full, *Error.Status)

	CreateLocationType(payload *LocationTypeDTO.Payload) (*LocationTypeDTO.Full, *Error.Status)

	UpdateLocationType(id string, payload *LocationTypeDTO.Payload) (*LocationTypeDTO.Full, *Error.Status)

	DropLocationType(id string) *Error.Status
}
