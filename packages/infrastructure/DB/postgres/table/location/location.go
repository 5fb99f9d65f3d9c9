package locationtable

import (
	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/filter"
	"registry/packages/core/location"
	LocationDTO "registry/packages/core/location/DTO"
	"registry/packages/infrastructure/DB/postgres/query"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

const selectLocationSql = `SELECT id, code, name, business_entity_id, location_type_id, address_line, city, region, country, postal_code, latitude, longitude, status, created_at, updated_at, deleted_at, version FROM "location"`

var searchCompiler = query.NewCompiler(
	filter.SortField{Field: string(location.CreatedAtProperty), Direction: filter.Desc},
	filter.SortField{Field: string(location.IdProperty), Direction: filter.Desc},
)

func validatePayload(payload *LocationDTO.Payload) *Error.Status {
	if err := location.ValidateCode(payload.Code); err != nil {
		return err
	}
	if err := location.ValidateName(payload.Name); err != nil {
		return err
	}
	if err := location.ValidateCountry(payload.Country); err != nil {
		return err
	}
	if err := location.ValidateStatus(payload.Status); err != nil {
		return err
	}

	if err := validation.UUID(payload.BusinessEntityID); err != nil {
		return err.ToStatus(
			"business entity id isn't specified",
			"business entity id must be a UUID",
		)
	}
	if err := validation.UUID(payload.LocationTypeID); err != nil {
		return err.ToStatus(
			"location type id isn't specified",
			"location type id must be a UUID",
		)
	}

	return nil
}
