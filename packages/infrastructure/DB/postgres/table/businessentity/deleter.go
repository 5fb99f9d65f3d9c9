package businessentitytable

import (
	"net/http"

	Error "registry/packages/common/errors"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
)

func (m *Manager) SoftDeleteBusinessEntity(id string) *Error.Status {
	dblog.Logger.Info("Soft deleting business entity "+id+"...", nil)

	company, err := m.FindBusinessEntityByID(id)
	if err != nil {
		return err
	}

	auditDTO := newAuditDTO(audit.DeleteOperation, company)

	updateQuery := query.New(
		`UPDATE "business_entity" SET deleted_at = $1, updated_at = $1, version = version + 1
        WHERE id = $2 AND deleted_at IS NULL;`,
		// deleted_at set manually instead of using NOW()
		// cuz changed_at and deleted_at should be synchronized
		auditDTO.ChangedAt, id,
	)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to soft delete business entity "+id, err.Error(), nil)
		return err
	}

	updated := *company
	updated.DeletedAt = &auditDTO.ChangedAt
	updated.UpdatedAt = auditDTO.ChangedAt
	updated.Version++
	invalidateBusinessEntityDtoCache(company, &updated)

	dblog.Logger.Info("Soft deleting business entity "+id+": OK", nil)

	return nil
}

func (m *Manager) RestoreBusinessEntity(id string) *Error.Status {
	dblog.Logger.Info("Restoring business entity "+id+"...", nil)

	company, err := m.FindSoftDeletedBusinessEntityByID(id)
	if err != nil {
		return err
	}

	auditDTO := newAuditDTO(audit.RestoreOperation, company)

	updateQuery := query.New(
		`UPDATE "business_entity" SET deleted_at = NULL, updated_at = $1, version = version + 1
        WHERE id = $2 AND deleted_at IS NOT NULL;`,
		auditDTO.ChangedAt, id,
	)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to restore business entity "+id, err.Error(), nil)
		return err
	}

	updated := *company
	updated.DeletedAt = nil
	updated.UpdatedAt = auditDTO.ChangedAt
	updated.Version++
	invalidateBusinessEntityDtoCache(company, &updated)

	dblog.Logger.Info("Restoring business entity "+id+": OK", nil)

	return nil
}

func (m *Manager) DropBusinessEntity(id string) *Error.Status {
	dblog.Logger.Info("Dropping business entity "+id+"...", nil)

	company, err := m.FindSoftDeletedBusinessEntityByID(id)
	if err != nil {
		if err != Error.StatusNotFound {
			return err
		}

		if _, err := m.FindBusinessEntityByID(id); err != nil {
			return err
		}

		errMsg := "Only soft deleted business entities can be dropped"
		dblog.Logger.Error("Failed to drop business entity "+id, errMsg, nil)
		return Error.NewStatusError(errMsg, http.StatusBadRequest)
	}

	auditDTO := newAuditDTO(audit.DropOperation, company)

	deleteQuery := query.New(
		`DELETE FROM "business_entity"
        WHERE id = $1 AND deleted_at IS NOT NULL;`,
		id,
	)

	if err := execTxWithAudit(&auditDTO, deleteQuery); err != nil {
		dblog.Logger.Error("Failed to drop business entity "+id, err.Error(), nil)
		return err
	}

	cache.Client.Delete(
		cache.KeyBase[cache.AnyBusinessEntityById]+id,
		cache.KeyBase[cache.DeletedBusinessEntityById]+id,
	)

	dblog.Logger.Info("Dropping business entity "+id+": OK", nil)

	return nil
}
