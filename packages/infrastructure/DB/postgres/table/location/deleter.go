package locationtable

import (
	"net/http"

	Error "registry/packages/common/errors"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
)

func (m *Manager) SoftDeleteLocation(id string) *Error.Status {
	dblog.Logger.Info("Soft deleting location "+id+"...", nil)

	loc, err := m.FindLocationByID(id)
	if err != nil {
		return err
	}

	auditDTO := newAuditDTO(audit.DeleteOperation, loc)

	updateQuery := query.New(
		`UPDATE "location" SET deleted_at = $1, updated_at = $1, version = version + 1
        WHERE id = $2 AND deleted_at IS NULL;`,
		// deleted_at set manually instead of using NOW()
		// cuz changed_at and deleted_at should be synchronized
		auditDTO.ChangedAt, id,
	)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to soft delete location "+id, err.Error(), nil)
		return err
	}

	updated := *loc
	updated.DeletedAt = &auditDTO.ChangedAt
	updated.UpdatedAt = auditDTO.ChangedAt
	updated.Version++
	invalidateLocationDtoCache(loc, &updated)

	dblog.Logger.Info("Soft deleting location "+id+": OK", nil)

	return nil
}

func (m *Manager) RestoreLocation(id string) *Error.Status {
	dblog.Logger.Info("Restoring location "+id+"...", nil)

	loc, err := m.FindSoftDeletedLocationByID(id)
	if err != nil {
		return err
	}

	auditDTO := newAuditDTO(audit.RestoreOperation, loc)

	updateQuery := query.New(
		`UPDATE "location" SET deleted_at = NULL, updated_at = $1, version = version + 1
        WHERE id = $2 AND deleted_at IS NOT NULL;`,
		auditDTO.ChangedAt, id,
	)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to restore location "+id, err.Error(), nil)
		return err
	}

	updated := *loc
	updated.DeletedAt = nil
	updated.UpdatedAt = auditDTO.ChangedAt
	updated.Version++
	invalidateLocationDtoCache(loc, &updated)

	dblog.Logger.Info("Restoring location "+id+": OK", nil)

	return nil
}

func (m *Manager) DropLocation(id string) *Error.Status {
	dblog.Logger.Info("Dropping location "+id+"...", nil)

	loc, err := m.FindSoftDeletedLocationByID(id)
	if err != nil {
		if err != Error.StatusNotFound {
			return err
		}

		if _, err := m.FindLocationByID(id); err != nil {
			return err
		}

		errMsg := "Only soft deleted locations can be dropped"
		dblog.Logger.Error("Failed to drop location "+id, errMsg, nil)
		return Error.NewStatusError(errMsg, http.StatusBadRequest)
	}

	auditDTO := newAuditDTO(audit.DropOperation, loc)

	deleteQuery := query.New(
		`DELETE FROM "location"
        WHERE id = $1 AND deleted_at IS NOT NULL;`,
		id,
	)

	if err := execTxWithAudit(&auditDTO, deleteQuery); err != nil {
		dblog.Logger.Error("Failed to drop location "+id, err.Error(), nil)
		return err
	}

	cache.Client.Delete(
		cache.KeyBase[cache.AnyLocationById]+id,
		cache.KeyBase[cache.DeletedLocationById]+id,
	)

	dblog.Logger.Info("Dropping location "+id+": OK", nil)

	return nil
}
