package locationtable

import (
	"time"

	Error "registry/packages/common/errors"
	LocationDTO "registry/packages/core/location/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	"registry/packages/infrastructure/DB/postgres/query"
)

func newAuditDTO(op audit.Operation, dto *LocationDTO.Full) LocationDTO.Audit {
    return LocationDTO.Audit{
        ChangedLocationID: dto.ID,
        Operation:         string(op),
        Code:              dto.Code,
        Name:              dto.Name,
        BusinessEntityID:  dto.BusinessEntityID,
        LocationTypeID:    dto.LocationTypeID,
        Status:            dto.Status,
        DeletedAt:         dto.DeletedAt,
        ChangedAt:         time.Now(),
    }
}

func newAuditQuery(dto *LocationDTO.Audit) *query.Query {
    return query.New(
        `INSERT INTO "audit_location"
        (changed_location_id, operation, code, name, business_entity_id, location_type_id, status, deleted_at, changed_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
        dto.ChangedLocationID,
        dto.Operation,
        dto.Code,
        dto.Name,
        dto.BusinessEntityID,
        dto.LocationTypeID,
        dto.Status,
        dto.DeletedAt,
        dto.ChangedAt,
    )
}

func execTxWithAudit(dto *LocationDTO.Audit, queries ...*query.Query) *Error.Status {
    return audit.ExecTx(newAuditQuery(dto), queries...)
}
