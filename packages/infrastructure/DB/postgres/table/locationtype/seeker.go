package locationtypetable

import (
	Error "registry/packages/common/errors"
	"registry/packages/common/validation"
	"registry/packages/core/filter"
	"registry/packages/core/locationtype"
	LocationTypeDTO "registry/packages/core/locationtype/DTO"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/executor"
	dblog "registry/packages/infrastructure/DB/postgres/logger"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"
	filterparser "registry/packages/infrastructure/parsers/filter"
)

func (m *Manager) FindLocationTypeByID(id string) (*LocationTypeDTO.Full, *Error.Status) {
	dblog.Logger.Info("Getting location type "+id+"...", nil)

	if err := validation.UUID(id); err != nil {
		e := err.ToStatus(
			"location type id isn't specified",
			"location type id must be a UUID",
		)
		dblog.Logger.Error("Failed to get location type "+id, e.Error(), nil)
		return nil, e
	}

	dto, err := executor.LocationTypeDTO(
		connection.Replica,
		query.New(selectLocationTypeSql+` WHERE id = $1;`, id),
		cache.KeyBase[cache.LocationTypeById]+id,
	)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Getting location type "+id+": OK", nil)

	return dto, nil
}

func (m *Manager) SearchLocationTypes(flt filter.Map, opts *filter.Options) ([]*LocationTypeDTO.Full, *Error.Status) {
	dblog.Logger.Info("Searching location types...", nil)

	conds, err := filterparser.ParseMap(flt)
	if err != nil {
		dblog.Logger.Error("Failed to search location types", err.Error(), nil)
		return nil, err
	}

	if err := filterparser.ValidateSearchable(conds, opts, locationtype.IsSearchable); err != nil {
		dblog.Logger.Error("Failed to search location types", err.Error(), nil)
		return nil, err
	}

	searchQuery, err := searchCompiler.Compile(selectLocationTypeSql, conds, opts)
	if err != nil {
		dblog.Logger.Error("Failed to search location types", err.Error(), nil)
		return nil, err
	}

	dtos, err := executor.CollectLocationTypeDTO(connection.Replica, searchQuery)
	if err != nil {
		return nil, err
	}

	dblog.Logger.Info("Searching location types: OK", nil)

	return dtos, nil
}
