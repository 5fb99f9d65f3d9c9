package locationtypetable

import (
	Error "registry/packages/common/errors"
	"registry/packages/core/filter"
	"registry/packages/core/locationtype"
	LocationTypeDTO "registry/packages/core/locationtype/DTO"
	"registry/packages/infrastructure/DB/postgres/query"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

const selectLocationTypeSql = `SELECT id, code, name, description, created_at, updated_at FROM "location_type"`

var searchCompiler = query.NewCompiler(
	filter.SortField{Field: string(locationtype.CodeProperty), Direction: filter.Asc},
)

func validatePayload(payload *LocationTypeDTO.Payload) *Error.Status {
	if err := locationtype.ValidateCode(payload.Code); err != nil {
		return err
	}
	return locationtype.ValidateName(payload.Name)
}
