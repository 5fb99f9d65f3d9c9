package entitytable

import (
	Error "registry/packages/common/errors"
	"registry/packages/core/entity"
	EntityDTO "registry/packages/core/entity/DTO"
	"registry/packages/core/filter"
	"registry/packages/infrastructure/DB/postgres/query"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

const selectEntitySql = `SELECT id, code, name, description, status, created_at, updated_at, deleted_at, version FROM "entity"`

var searchCompiler = query.NewCompiler(
	filter.SortField{Field: string(entity.CreatedAtProperty), Direction: filter.Desc},
	filter.SortField{Field: string(entity.IdProperty), Direction: filter.Desc},
)

func validatePayload(payload *EntityDTO.Payload) *Error.Status {
	if err := entity.ValidateCode(payload.Code); err != nil {
		return err
	}
	if err := entity.ValidateName(payload.Name); err != nil {
		return err
	}
	return entity.ValidateStatus(payload.Status)
}
