package businessentitytable

import (
	"time"

	Error "registry/packages/common/errors"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"

	"github.com/google/uuid"
)

func (m *Manager) CreateBusinessEntity(payload *BusinessEntityDTO.Payload) (*BusinessEntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Creating business entity...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to create business entity", err.Error(), nil)
		return nil, err
	}

	now := time.Now()

	dto := &BusinessEntityDTO.Full{
		ID:        uuid.NewString(),
		Code:      payload.Code,
		LegalName: payload.LegalName,
		TradeName: payload.TradeName,
		TaxID:     payload.TaxID,
		Status:    payload.Status,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}

	insertQuery := query.New(
		`INSERT INTO "business_entity" (id, code, legal_name, trade_name, tax_id, status, created_at, updated_at, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		dto.ID, dto.Code, dto.LegalName, dto.TradeName, dto.TaxID, dto.Status, dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)

	auditDTO := newAuditDTO(audit.CreateOperation, dto)

	if err := execTxWithAudit(&auditDTO, insertQuery); err != nil {
		dblog.Logger.Error("Failed to create business entity", err.Error(), nil)
		return nil, err
	}

	dblog.Logger.Info("Creating business entity: OK", nil)

	return dto, nil
}
