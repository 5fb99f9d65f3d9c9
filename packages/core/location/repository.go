package location

import (
	Error "registry/packages/common/errors"
	"registry/packages/core/filter"
	LocationDTO "registry/packages/core/location/DTO"
)

type Repository interface {
	FindLocationByID(id string) (*LocationDTO.Full, *Error.Status)

	FindAnyLocationByID(id string) (*LocationDTO.Full, *Error.Status)

	FindSoftDeletedLocationByID(id string) (*LocationDTO.Full, *Error.Status)

	SearchLocations(flt filter.Map, opts *filter.Options) ([]*LocationDTO.Full, *Error.Status)

	CreateLocation(payload *LocationDTO.Payload) (*LocationDTO.Full, *Error.Status)

	UpdateLocation(id string, payload *LocationDTO.Payload) (*LocationDTO.Full, *Error.Status)

	SoftDeleteLocation(id string) *Error.Status

	RestoreLocation(id string) *Error.Status

	DropLocation(id string) *Error.Status
}
