package audit

import (
	Error "registry/packages/common/errors"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/DB/postgres/transaction"
)

// Mutation kind recorded in audit tables.
type Operation string

const (
	CreateOperation  Operation = "create"
	UpdateOperation  Operation = "update"
	DeleteOperation  Operation = "soft_delete"
	RestoreOperation Operation = "restore"
	DropOperation    Operation = "drop"
)

// Runs the given queries and the audit insert in a single transaction,
// so a mutation can't be applied without its audit record.
func ExecTx(auditQuery *query.Query, queries ...*query.Query) *Error.Status {
    queries = append(queries, auditQuery)

    return transaction.New(queries...).Exec(connection.Primary)
}
