package entitytable

import (
	"net/http"

	Error "registry/packages/common/errors"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
)

func (m *Manager) SoftDeleteEntity(id string) *Error.Status {
	dblog.Logger.Info("Soft deleting entity "+id+"...", nil)

	entity, err := m.FindEntityByID(id)
	if err != nil {
		return err
	}

	auditDTO := newAuditDTO(audit.DeleteOperation, entity)

	updateQuery := query.New(
		`UPDATE "entity" SET deleted_at = $1, updated_at = $1, version = version + 1
        WHERE id = $2 AND deleted_at IS NULL;`,
		// deleted_at set manually instead of using NOW()
		// cuz changed_at and deleted_at should be synchronized
		auditDTO.ChangedAt, id,
	)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to soft delete entity "+id, err.Error(), nil)
		return err
	}

	updated := *entity
	updated.DeletedAt = &auditDTO.ChangedAt
	updated.UpdatedAt = auditDTO.ChangedAt
	updated.Version++
	invalidateEntityDtoCache(entity, &updated)

	dblog.Logger.Info("Soft deleting entity "+id+": OK", nil)

	return nil
}

func (m *Manager) RestoreEntity(id string) *Error.Status {
	dblog.Logger.Info("Restoring entity "+id+"...", nil)

	entity, err := m.FindSoftDeletedEntityByID(id)
	if err != nil {
		return err
	}

	auditDTO := newAuditDTO(audit.RestoreOperation, entity)

	updateQuery := query.New(
		`UPDATE "entity" SET deleted_at = NULL, updated_at = $1, version = version + 1
        WHERE id = $2 AND deleted_at IS NOT NULL;`,
		auditDTO.ChangedAt, id,
	)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to restore entity "+id, err.Error(), nil)
		return err
	}

	updated := *entity
	updated.DeletedAt = nil
	updated.UpdatedAt = auditDTO.ChangedAt
	updated.Version++
	invalidateEntityDtoCache(entity, &updated)

	dblog.Logger.Info("Restoring entity "+id+": OK", nil)

	return nil
}

func (m *Manager) DropEntity(id string) *Error.Status {
	dblog.Logger.Info("Dropping entity "+id+"...", nil)

	entity, err := m.FindSoftDeletedEntityByID(id)
	if err != nil {
		if err != Error.StatusNotFound {
			return err
		}

		if _, err := m.FindEntityByID(id); err != nil {
			return err
		}

		errMsg := "Only soft deleted entities can be dropped"
		dblog.Logger.Error("Failed to drop entity "+id, errMsg, nil)
		return Error.NewStatusError(errMsg, http.StatusBadRequest)
	}

	auditDTO := newAuditDTO(audit.DropOperation, entity)

	deleteQuery := query.New(
		`DELETE FROM "entity"
        WHERE id = $1 AND deleted_at IS NOT NULL;`,
		id,
	)

	if err := execTxWithAudit(&auditDTO, deleteQuery); err != nil {
		dblog.Logger.Error("Failed to drop entity "+id, err.Error(), nil)
		return err
	}

	cache.Client.Delete(
		cache.KeyBase[cache.AnyEntityById]+id,
		cache.KeyBase[cache.DeletedEntityById]+id,
	)

	dblog.Logger.Info("Dropping entity "+id+": OK", nil)

	return nil
}
