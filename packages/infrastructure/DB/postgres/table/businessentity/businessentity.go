package businessentitytable

import (
	Error "registry/packages/common/errors"
	"registry/packages/core/businessentity"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/core/filter"
	"registry/packages/infrastructure/DB/postgres/query"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

const selectBusinessEntitySql = `SELECT id, code, legal_name, trade_name, tax_id, status, created_at, updated_at, deleted_at, version FROM "business_entity"`

var searchCompiler = query.NewCompiler(
	filter.SortField{Field: string(businessentity.CreatedAtProperty), Direction: filter.Desc},
	filter.SortField{Field: string(businessentity.IdProperty), Direction: filter.Desc},
)

func validatePayload(payload *BusinessEntityDTO.Payload) *Error.Status {
	if err := businessentity.ValidateCode(payload.Code); err != nil {
		return err
	}
	if err := businessentity.ValidateLegalName(payload.LegalName); err != nil {
		return err
	}
	return businessentity.ValidateStatus(payload.Status)
}
