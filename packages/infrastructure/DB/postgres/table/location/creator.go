package locationtable

import (
	"time"

	Error "registry/packages/common/errors"
	LocationDTO "registry/packages/core/location/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"

	"github.com/google/uuid"
)

func (m *Manager) CreateLocation(payload *LocationDTO.Payload) (*LocationDTO.Full, *Error.Status) {
	dblog.Logger.Info("Creating location...", nil)

	if err := validatePayload(payload); err != nil {
		dblog.Logger.Error("Failed to create location", err.Error(), nil)
		return nil, err
	}

	now := time.Now()

	dto := &LocationDTO.Full{
		ID:               uuid.NewString(),
		Code:             payload.Code,
		Name:             payload.Name,
		BusinessEntityID: payload.BusinessEntityID,
		LocationTypeID:   payload.LocationTypeID,
		AddressLine:      payload.AddressLine,
		City:             payload.City,
		Region:           payload.Region,
		Country:          payload.Country,
		PostalCode:       payload.PostalCode,
		Latitude:         payload.Latitude,
		Longitude:        payload.Longitude,
		Status:           payload.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          1,
	}

	insertQuery := query.New(
		`INSERT INTO "location"
        (id, code, name, business_entity_id, location_type_id, address_line, city, region, country, postal_code, latitude, longitude, status, created_at, updated_at, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`,
		dto.ID, dto.Code, dto.Name, dto.BusinessEntityID, dto.LocationTypeID,
		dto.AddressLine, dto.City, dto.Region, dto.Country, dto.PostalCode,
		dto.Latitude, dto.Longitude, dto.Status, dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)

	auditDTO := newAuditDTO(audit.CreateOperation, dto)

	if err := execTxWithAudit(&auditDTO, insertQuery); err != nil {
		dblog.Logger.Error("Failed to create location", err.Error(), nil)
		return nil, err
	}

	dblog.Logger.Info("Creating location: OK", nil)

	return dto, nil
}
