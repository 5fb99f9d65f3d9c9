package businessentitytable

import (
	"time"

	Error "registry/packages/common/errors"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
)

func invalidateBusinessEntityDtoCache(old, current *BusinessEntityDTO.Full) {
	invalidator := cache.NewBusinessEntityDtoInvalidator(old, current)
	if err := invalidator.Invalidate(); err != nil {
		dblog.Logger.Error("Failed to invalidate business entity cache", err.Error(), nil)
	}
}

func (m *Manager) UpdateBusinessEntity(id string, payload *BusinessEntityDTO.Payload) (*BusinessEntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Updating business entity "+id+"...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to update business entity "+id, err.Error(), nil)
		return nil, err
	}

	company, err := m.FindBusinessEntityByID(id)
	if err != nil {
		return nil, err
	}

	updated := *company
	updated.Code = payload.Code
	updated.LegalName = payload.LegalName
	updated.TradeName = payload.TradeName
	updated.TaxID = payload.TaxID
	updated.Status = payload.Status
	updated.UpdatedAt = time.Now()
	updated.Version++

	updateQuery := query.New(
		`UPDATE "business_entity" SET code = $1, legal_name = $2, trade_name = $3, tax_id = $4, status = $5, updated_at = $6, version = version + 1
        WHERE id = $7 AND deleted_at IS NULL;`,
		updated.Code, updated.LegalName, updated.TradeName, updated.TaxID, updated.Status, updated.UpdatedAt, id,
	)

	auditDTO := newAuditDTO(audit.UpdateOperation, &updated)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to update business entity "+id, err.Error(), nil)
		return nil, err
	}

	invalidateBusinessEntityDtoCache(company, &updated)

	dblog.Logger.Info("Updating business entity "+id+": OK", nil)

	return &updated, nil
}
