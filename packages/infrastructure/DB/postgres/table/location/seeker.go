package locationtable

import (
	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/entity"
	"registry/packages/core/filter"
	"registry/packages/core/location"
	LocationDTO "registry/packages/core/location/DTO"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/executor"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
	filterparser "registry/packages/infrastructure/parsers/filter"
)

func (m *Manager) findLocationBy(state entity.State, id string, cacheKey string) (*LocationDTO.Full, *Error.Status) {
	dblog.Logger.Info("Getting "+state.String()+" location "+id+"...", nil)

	if err := validation.UUID(id); err != nil {
		e := err.ToStatus(
			"location id isn't specified",
			"location id must be a UUID",
		)
		dblog.Logger.Error("Failed to get "+state.String()+" location "+id, e.Error(), nil)
		return nil, e
	}

	var selectQuery = selectLocationSql + ` WHERE id = $1`

	switch state {
	case entity.NotDeletedState:
		selectQuery += " AND deleted_at IS NULL;"
	case entity.DeletedState:
		selectQuery += " AND deleted_at IS NOT NULL;"
	case entity.AnyState:
		selectQuery += ";"
	default:
		dblog.Logger.Panic("Invalid findLocationBy() call", "Unknown state", nil)
		return nil, Error.StatusInternalError
	}

	dto, err := executor.LocationDTO(
		connection.Replica,
		query.New(selectQuery, id),
		cacheKey,
	)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Getting "+state.String()+" location "+id+": OK", nil)

	return dto, nil
}

func (m *Manager) FindLocationByID(id string) (*LocationDTO.Full, *Error.Status) {
	return m.findLocationBy(
		entity.NotDeletedState,
		id,
		cache.KeyBase[cache.LocationById]+id,
	)
}

func (m *Manager) FindAnyLocationByID(id string) (*LocationDTO.Full, *Error.Status) {
	return m.findLocationBy(
		entity.AnyState,
		id,
		cache.KeyBase[cache.AnyLocationById]+id,
	)
}

func (m *Manager) FindSoftDeletedLocationByID(id string) (*LocationDTO.Full, *Error.Status) {
	return m.findLocationBy(
		entity.DeletedState,
		id,
		cache.KeyBase[cache.DeletedLocationById]+id,
	)
}

func (m *Manager) SearchLocations(flt filter.Map, opts *filter.Options) ([]*LocationDTO.Full, *Error.Status) {
	dblog.Logger.Info("Searching locations...", nil)

	conds, err := filterparser.ParseMap(flt)
	if err != nil {
		dblog.Logger.Error("Failed to search locations", err.Error(), nil)
		return nil, err
	}

	if err := filterparser.ValidateSearchable(conds, opts, location.IsSearchable); err != nil {
		dblog.Logger.Error("Failed to search locations", err.Error(), nil)
		return nil, err
	}

	searchQuery, err := searchCompiler.Compile(selectLocationSql, conds, opts)
	if err != nil {
		dblog.Logger.Error("Failed to search locations", err.Error(), nil)
		return nil, err
	}

	dtos, err := executor.CollectLocationDTO(connection.Replica, searchQuery)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Searching locations: OK", nil)

	return dtos, nil
}
