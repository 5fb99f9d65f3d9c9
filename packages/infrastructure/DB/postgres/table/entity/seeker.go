package entitytable

import (
	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/entity"
	EntityDTO "registry/packages/core/entity/DTO"
	"registry/packages/core/filter"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/executor"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
	filterparser "registry/packages/infrastructure/parsers/filter"
)

func (m *Manager) findEntityBy(state entity.State, id string, cacheKey string) (*EntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Getting "+state.String()+" entity "+id+"...", nil)

	if err := validation.UUID(id); err != nil {
		e := err.ToStatus(
			"entity id isn't specified",
			"entity id must be a UUID",
		)
		dblog.Logger.Error("Failed to get "+state.String()+" entity "+id, e.Error(), nil)
		return nil, e
	}

	var selectQuery = selectEntitySql + ` WHERE id = $1`

	switch state {
	case entity.NotDeletedState:
		selectQuery += " AND deleted_at IS NULL;"
	case entity.DeletedState:
		selectQuery += " AND deleted_at IS NOT NULL;"
	case entity.AnyState:
		selectQuery += ";"
	default:
		dblog.Logger.Panic("Invalid findEntityBy() call", "Unknown entity state", nil)
		return nil, Error.StatusInternalError
	}

	dto, err := executor.EntityDTO(
		connection.Replica,
		query.New(selectQuery, id),
		cacheKey,
	)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Getting "+state.String()+" entity "+id+": OK", nil)

	return dto, nil
}

func (m *Manager) FindEntityByID(id string) (*EntityDTO.Full, *Error.Status) {
	return m.findEntityBy(
		entity.NotDeletedState,
		id,
		cache.KeyBase[cache.EntityById]+id,
	)
}

func (m *Manager) FindAnyEntityByID(id string) (*EntityDTO.Full, *Error.Status) {
	return m.findEntityBy(
		entity.AnyState,
		id,
		cache.KeyBase[cache.AnyEntityById]+id,
	)
}

func (m *Manager) FindSoftDeletedEntityByID(id string) (*EntityDTO.Full, *Error.Status) {
	return m.findEntityBy(
		entity.DeletedState,
		id,
		cache.KeyBase[cache.DeletedEntityById]+id,
	)
}

func (m *Manager) SearchEntities(flt filter.Map, opts *filter.Options) ([]*EntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Searching entities...", nil)

	conds, err := filterparser.ParseMap(flt)
	if err != nil {
		dblog.Logger.Error("Failed to search entities", err.Error(), nil)
		return nil, err
	}

	if err := filterparser.ValidateSearchable(conds, opts, entity.IsSearchable); err != nil {
		dblog.Logger.Error("Failed to search entities", err.Error(), nil)
		return nil, err
	}

	// Paging policy (clamping, defaults) belongs to the compiler
	searchQuery, err := searchCompiler.Compile(selectEntitySql, conds, opts)
	if err != nil {
		dblog.Logger.Error("Failed to search entities", err.Error(), nil)
		return nil, err
	}

	dtos, err := executor.CollectEntityDTO(connection.Replica, searchQuery)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Searching entities: OK", nil)

	return dtos, nil
}
