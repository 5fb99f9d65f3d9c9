package entitytable

import (
	"time"

	Error "registry/packages/common/errors"
	EntityDTO "registry/packages/core/entity/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"

	"github.com/google/uuid"
)

func (m *Manager) CreateEntity(payload *EntityDTO.Payload) (*EntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Creating entity...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to create entity", err.Error(), nil)
		return nil, err
	}

	now := time.Now()

	dto := &EntityDTO.Full{
		ID:          uuid.NewString(),
		Code:        payload.Code,
		Name:        payload.Name,
		Description: payload.Description,
		Status:      payload.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}

	insertQuery := query.New(
		`INSERT INTO "entity" (id, code, name, description, status, created_at, updated_at, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		dto.ID, dto.Code, dto.Name, dto.Description, dto.Status, dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)

	auditDTO := newAuditDTO(audit.CreateOperation, dto)

	if err := execTxWithAudit(&auditDTO, insertQuery); err != nil {
		dblog.Logger.Error("Failed to create entity", err.Error(), nil)
		return nil, err
	}

	dblog.Logger.Info("Creating entity: OK", nil)

	return dto, nil
}
