package businessentitytable

import (
	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/businessentity"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/core/entity"
	"registry/packages/core/filter"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/executor"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
	filterparser "registry/packages/infrastructure/parsers/filter"
)

func (m *Manager) findBusinessEntityBy(state entity.State, id string, cacheKey string) (*BusinessEntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Getting "+state.String()+" business entity "+id+"...", nil)

	if err := validation.UUID(id); err != nil {
		e := err.ToStatus(
			"business entity id isn't specified",
			"business entity id must be a UUID",
		)
		dblog.Logger.Error("Failed to get "+state.String()+" business entity "+id, e.Error(), nil)
		return nil, e
	}

	var selectQuery = selectBusinessEntitySql + ` WHERE id = $1`

	switch state {
	case entity.NotDeletedState:
		selectQuery += " AND deleted_at IS NULL;"
	case entity.DeletedState:
		selectQuery += " AND deleted_at IS NOT NULL;"
	case entity.AnyState:
		selectQuery += ";"
	default:
		dblog.Logger.Panic("Invalid findBusinessEntityBy() call", "Unknown state", nil)
		return nil, Error.StatusInternalError
	}

	dto, err := executor.BusinessEntityDTO(
		connection.Replica,
		query.New(selectQuery, id),
		cacheKey,
	)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Getting "+state.String()+" business entity "+id+": OK", nil)

	return dto, nil
}

func (m *Manager) FindBusinessEntityByID(id string) (*BusinessEntityDTO.Full, *Error.Status) {
	return m.findBusinessEntityBy(
		entity.NotDeletedState,
		id,
		cache.KeyBase[cache.BusinessEntityById]+id,
	)
}

func (m *Manager) FindAnyBusinessEntityByID(id string) (*BusinessEntityDTO.Full, *Error.Status) {
	return m.findBusinessEntityBy(
		entity.AnyState,
		id,
		cache.KeyBase[cache.AnyBusinessEntityById]+id,
	)
}

func (m *Manager) FindSoftDeletedBusinessEntityByID(id string) (*BusinessEntityDTO.Full, *Error.Status) {
	return m.findBusinessEntityBy(
		entity.DeletedState,
		id,
		cache.KeyBase[cache.DeletedBusinessEntityById]+id,
	)
}

func (m *Manager) SearchBusinessEntities(flt filter.Map, opts *filter.Options) ([]*BusinessEntityDTO.Full, *Error.Status) {
	dblog.Logger.Info("Searching business entities...", nil)

	conds, err := filterparser.ParseMap(flt)
	if err != nil {
		dblog.Logger.Error("Failed to search business entities", err.Error(), nil)
		return nil, err
	}

	if err := filterparser.ValidateSearchable(conds, opts, businessentity.IsSearchable); err != nil {
		dblog.Logger.Error("Failed to search business entities", err.Error(), nil)
		return nil, err
	}

	searchQuery, err := searchCompiler.Compile(selectBusinessEntitySql, conds, opts)
	if err != nil {
		dblog.Logger.Error("Failed to search business entities", err.Error(), nil)
		return nil, err
	}

	dtos, err := executor.CollectBusinessEntityDTO(connection.Replica, searchQuery)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Searching business entities: OK", nil)

	return dtos, nil
}
