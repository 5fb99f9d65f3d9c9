package businessentitytable

import (
	"time"

	Error "registry/packages/common/errors"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/infrastructure/DB/postgres/audit"
	"registry/packages/infrastructure/DB/postgres/query"
)

func newAuditDTO(op audit.Operation, dto *BusinessEntityDTO.Full) BusinessEntityDTO.Audit {
    return BusinessEntityDTO.Audit{
        ChangedBusinessEntityID: dto.ID,
        Operation:               string(op),
        Code:                    dto.Code,
        LegalName:               dto.LegalName,
        TradeName:               dto.TradeName,
        TaxID:                   dto.TaxID,
        Status:                  dto.Status,
        DeletedAt:               dto.DeletedAt,
        ChangedAt:               time.Now(),
    }
}

func newAuditQuery(dto *BusinessEntityDTO.Audit) *query.Query {
    return query.New(
        `INSERT INTO "audit_business_entity"
        (changed_business_entity_id, operation, code, legal_name, trade_name, tax_id, status, deleted_at, changed_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
        dto.ChangedBusinessEntityID,
        dto.Operation,
        dto.Code,
        dto.LegalName,
        dto.TradeName,
        dto.TaxID,
        dto.Status,
        dto.DeletedAt,
        dto.ChangedAt,
    )
}

func execTxWithAudit(dto *BusinessEntityDTO.Audit, queries ...*query.Query) *Error.Status {
    return audit.ExecTx(newAuditQuery(dto), queries...)
}
