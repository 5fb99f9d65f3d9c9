package entitytable

import (
	"time"

	Error "registry/packages/common/errors"
	EntityDTO "registry/packages/core/entity/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
)

func invalidateEntityDtoCache(old, current *EntityDTO.Full) {
	invalidator := cache.NewEntityDtoInvalidator(old, current)
	if err := invalidator.Invalidate(); err != nil {
		dblog.Logger.Error("Failed to invalidate entity cache", err.Error(), nil)
	}
}

func (m *Manager) UpdateEntity(id string, payload *EntityDTO.Payload) (*EntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Updating entity "+id+"...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to update entity "+id, err.Error(), nil)
		return nil, err
	}

	entity, err := m.FindEntityByID(id)
	if err != nil {
		return nil, err
	}

	updated := *entity
	updated.Code = payload.Code
	updated.Name = payload.Name
	updated.Description = payload.Description
	updated.Status = payload.Status
	updated.UpdatedAt = time.Now()
	updated.Version++

	updateQuery := query.New(
		`UPDATE "entity" SET code = $1, name = $2, description = $3, status = $4, updated_at = $5, version = version + 1
        WHERE id = $6 AND deleted_at IS NULL;`,
		updated.Code, updated.Name, updated.Description, updated.Status, updated.UpdatedAt, id,
	)

	auditDTO := newAuditDTO(audit.UpdateOperation, &updated)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to update entity "+id, err.Error(), nil)
		return nil, err
	}

	invalidateEntityDtoCache(entity, &updated)

	dblog.Logger.Info("Updating entity "+id+": OK", nil)

	return &updated, nil
}
