package locationtable

import (
	"time"

	Error "registry/packages/common/errors"
	LocationDTO "registry/packages/core/location/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
)

func invalidateLocationDtoCache(old, current *LocationDTO.Full) {
	invalidator := cache.NewLocationDtoInvalidator(old, current)
	if err := invalidator.Invalidate(); err != nil {
		dblog.Logger.Error("Failed to invalidate location cache", err.Error(), nil)
	}
}

func (m *Manager) UpdateLocation(id string, payload *LocationDTO.Payload) (*LocationDTO.Full, *Error.Status) {
	dblog.Logger.Info("Updating location "+id+"...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to update location "+id, err.Error(), nil)
		return nil, err
	}

	loc, err := m.FindLocationByID(id)
	if err != nil {
		return nil, err
	}

	updated := *loc
	updated.Code = payload.Code
	updated.Name = payload.Name
	updated.BusinessEntityID = payload.BusinessEntityID
	updated.LocationTypeID = payload.LocationTypeID
	updated.AddressLine = payload.AddressLine
	updated.City = payload.City
	updated.Region = payload.Region
	updated.Country = payload.Country
	updated.PostalCode = payload.PostalCode
	updated.Latitude = payload.Latitude
	updated.Longitude = payload.Longitude
	updated.Status = payload.Status
	updated.UpdatedAt = time.Now()
	updated.Version++

	updateQuery := query.New(
		`UPDATE "location" SET
        code = $1, name = $2, business_entity_id = $3, location_type_id = $4,
        address_line = $5, city = $6, region = $7, country = $8, postal_code = $9,
        latitude = $10, longitude = $11, status = $12, updated_at = $13, version = version + 1
        WHERE id = $14 AND deleted_at IS NULL;`,
		updated.Code, updated.Name, updated.BusinessEntityID, updated.LocationTypeID,
		updated.AddressLine, updated.City, updated.Region, updated.Country, updated.PostalCode,
		updated.Latitude, updated.Longitude, updated.Status, updated.UpdatedAt, id,
	)

	auditDTO := newAuditDTO(audit.UpdateOperation, &updated)

	if err := execTxWithAudit(&auditDTO, updateQuery); err != nil {
		dblog.Logger.Error("Failed to update location "+id, err.Error(), nil)
		return nil, err
	}

	invalidateLocationDtoCache(loc, &updated)

	dblog.Logger.Info("Updating location "+id+": OK", nil)

	return &updated, nil
}
