package locationtypetable

import (
	"time"

	Error "registry/packages/common/errors"
	LocationTypeDTO "registry/packages/core/locationtype/DTO"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/executor"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"

	"github.com/google/uuid"
)

func (m *Manager) CreateLocationType(payload *LocationTypeDTO.Payload) (*LocationTypeDTO.Full, *Error.Status) {
	dblog.Logger.Info("Creating location type...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to create location type", err.Error(), nil)
		return nil, err
	}

	now := time.Now()

	dto := &LocationTypeDTO.Full{
		ID:          uuid.NewString(),
		Code:        payload.Code,
		Name:        payload.Name,
		Description: payload.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	insertQuery := query.New(
		`INSERT INTO "location_type" (id, code, name, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);`,
		dto.ID, dto.Code, dto.Name, dto.Description, dto.CreatedAt, dto.UpdatedAt,
	)

	if err := executor.Exec(connection.Primary, insertQuery); err != nil {
		dblog.Logger.Error("Failed to create location type", err.Error(), nil)
		return nil, err
	}

	dblog.Logger.Info("Creating location type: OK", nil)

	return dto, nil
}

func (m *Manager) UpdateLocationType(id string, payload *LocationTypeDTO.Payload) (*LocationTypeDTO.Full, *Error.Status) {
	dblog.Logger.Info("Updating location type "+id+"...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to update location type "+id, err.Error(), nil)
		return nil, err
	}

	locationType, err := m.FindLocationTypeByID(id)
	if err != nil {
		return nil, err
	}

	updated := *locationType
	updated.Code = payload.Code
	updated.Name = payload.Name
	updated.Description = payload.Description
	updated.UpdatedAt = time.Now()

	updateQuery := query.New(
		`UPDATE "location_type" SET code = $1, name = $2, description = $3, updated_at = $4
        WHERE id = $5;`,
		updated.Code, updated.Name, updated.Description, updated.UpdatedAt, id,
	)

	if err := executor.Exec(connection.Primary, updateQuery); err != nil {
		dblog.Logger.Error("Failed to update location type "+id, err.Error(), nil)
		return nil, err
	}

	if err := cache.InvalidateLocationType(id); err != nil {
		dblog.Logger.Error("Failed to invalidate location type cache", err.Error(), nil)
	}

	dblog.Logger.Info("Updating location type "+id+": OK", nil)

	return &updated, nil
}

// Hard delete. Fails with 409 while any location still references this type.
func (m *Manager) DropLocationType(id string) *Error.Status {
	dblog.Logger.Info("Dropping location type "+id+"...", nil)

	if _, err := m.FindLocationTypeByID(id); err != nil {
		return err
	}

	deleteQuery := query.New(
		`DELETE FROM "location_type" WHERE id = $1;`,
		id,
	)

	if err := executor.Exec(connection.Primary, deleteQuery); err != nil {
		dblog.Logger.Error("Failed to drop location type "+id, err.Error(), nil)
		return err
	}

	if err := cache.InvalidateLocationType(id); err != nil {
		dblog.Logger.Error("Failed to invalidate location type cache", err.Error(), nil)
	}

	dblog.Logger.Info("Dropping location type "+id+": OK", nil)

	return nil
}
