package entitytable

import (
	"time"

	Error "registry/packages/common/errors"
	EntityDTO "registry/packages/core/entity/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	"registry/packages/infrastructure/DB/postgres/query"
)

func newAuditDTO(op audit.Operation, dto *EntityDTO.Full) EntityDTO.Audit {
    return EntityDTO.Audit{
        ChangedEntityID: dto.ID,
        Operation:       string(op),
        Code:            dto.Code,
        Name:            dto.Name,
        Description:     dto.Description,
        Status:          dto.Status,
        DeletedAt:       dto.DeletedAt,
        ChangedAt:       time.Now(),
    }
}

func newAuditQuery(dto *EntityDTO.Audit) *query.Query {
    return query.New(
        `INSERT INTO "audit_entity"
        (changed_entity_id, operation, code, name, description, status, deleted_at, changed_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7, $8)`,
        dto.ChangedEntityID,
        dto.Operation,
        dto.Code,
        dto.Name,
        dto.Description,
        dto.Status,
        dto.DeletedAt,
        dto.ChangedAt,
    )
}

func execTxWithAudit(dto *EntityDTO.Audit, queries ...*query.Query) *Error.Status {
    return audit.ExecTx(newAuditQuery(dto), queries...)
}
