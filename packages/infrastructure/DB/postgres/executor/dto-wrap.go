package executor

import (
	"database/sql"

	Error "registry/packages/common/errors"
	businessentitydto "registry/packages/core/businessentity/DTO"
	entitydto "registry/packages/core/entity/DTO"
	locationdto "registry/packages/core/location/DTO"
	locationtypedto "registry/packages/core/locationtype/DTO"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/query"
	"registry/packages/infrastructure/cache"

	"github.com/jackc/pgx/v5"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func collect[T any](
	conType connection.Type,
	q *query.Query,
	collectFunc func(pgx.CollectableRow) (T, error),
) ([]T, *Error.Status) {
    rows, err := Rows(conType, q)
    if err != nil {
        return nil, err
    }

	dtos, e := pgx.CollectRows(rows, collectFunc)
    if e != nil {
		executorLogger.Error("Failed to collect rows", e.Error(), nil)
        return nil, q.ConvertError(e)
    }

	// No matches is a valid search result
    return dtos, nil
}

// Runs the query for a single row and scans it via scanDTO,
// going through the cache first.
func fetchDTO[T any](
	conType connection.Type,
	q *query.Query,
	cacheKey string,
	scanDTO func(rowScanner) (*T, *Error.Status),
) (*T, *Error.Status) {
    if cached, hit := cache.Client.Get(cacheKey); hit {
		dto := new(T)

        if err := json.UnmarshalFromString(cached, dto); err == nil {
            return dto, nil
        }

        // if decoding failed thats mean more likely cached value was
        // invalid, so deleting it to prevent further cache errors
        if e := cache.Client.Delete(cacheKey); e != nil {
            return nil, e
        }
    }

    scan, err := Row(conType, q)
    if err != nil {
        return nil, err
    }

	dto, err := scanDTO(scan)
	if err != nil {
		return nil, err
	}

    cache.Client.EncodeAndSet(cacheKey, dto)

    return dto, nil
}

func scanEntityDTO(scan rowScanner) (*entitydto.Full, *Error.Status) {
	dto := new(entitydto.Full)

	var deletedAt sql.NullTime

	err := scan(
		&dto.ID,
		&dto.Code,
		&dto.Name,
		&dto.Description,
		&dto.Status,
		&dto.CreatedAt,
		&dto.UpdatedAt,
		&deletedAt,
		&dto.Version,
	)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		dto.DeletedAt = &deletedAt.Time
	}

	return dto, nil
}

func EntityDTO(conType connection.Type, q *query.Query, cacheKey string) (*entitydto.Full, *Error.Status) {
	return fetchDTO(conType, q, cacheKey, scanEntityDTO)
}

func CollectEntityDTO(conType connection.Type, q *query.Query) ([]*entitydto.Full, *Error.Status) {
	return collect(conType, q, func (row pgx.CollectableRow) (*entitydto.Full, error) {
		dto := new(entitydto.Full)

		var deletedAt sql.NullTime

		if err := row.Scan(
			&dto.ID,
			&dto.Code,
			&dto.Name,
			&dto.Description,
			&dto.Status,
			&dto.CreatedAt,
			&dto.UpdatedAt,
			&deletedAt,
			&dto.Version,
		); err != nil {
			return nil, err
		}
		if deletedAt.Valid {
			dto.DeletedAt = &deletedAt.Time
		}

		return dto, nil
	})
}

func scanBusinessEntityDTO(scan rowScanner) (*businessentitydto.Full, *Error.Status) {
	dto := new(businessentitydto.Full)

	var deletedAt sql.NullTime

	err := scan(
		&dto.ID,
		&dto.Code,
		&dto.LegalName,
		&dto.TradeName,
		&dto.TaxID,
		&dto.Status,
		&dto.CreatedAt,
		&dto.UpdatedAt,
		&deletedAt,
		&dto.Version,
	)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		dto.DeletedAt = &deletedAt.Time
	}

	return dto, nil
}

func BusinessEntityDTO(conType connection.Type, q *query.Query, cacheKey string) (*businessentitydto.Full, *Error.Status) {
	return fetchDTO(conType, q, cacheKey, scanBusinessEntityDTO)
}

func CollectBusinessEntityDTO(conType connection.Type, q *query.Query) ([]*businessentitydto.Full, *Error.Status) {
	return collect(conType, q, func (row pgx.CollectableRow) (*businessentitydto.Full, error) {
		dto := new(businessentitydto.Full)

		var deletedAt sql.NullTime

		if err := row.Scan(
			&dto.ID,
			&dto.Code,
			&dto.LegalName,
			&dto.TradeName,
			&dto.TaxID,
			&dto.Status,
			&dto.CreatedAt,
			&dto.UpdatedAt,
			&deletedAt,
			&dto.Version,
		); err != nil {
			return nil, err
		}
		if deletedAt.Valid {
			dto.DeletedAt = &deletedAt.Time
		}

		return dto, nil
	})
}

func scanLocationDTO(scan rowScanner) (*locationdto.Full, *Error.Status) {
	dto := new(locationdto.Full)

	var deletedAt sql.NullTime

	err := scan(
		&dto.ID,
		&dto.Code,
		&dto.Name,
		&dto.BusinessEntityID,
		&dto.LocationTypeID,
		&dto.AddressLine,
		&dto.City,
		&dto.Region,
		&dto.Country,
		&dto.PostalCode,
		&dto.Latitude,
		&dto.Longitude,
		&dto.Status,
		&dto.CreatedAt,
		&dto.UpdatedAt,
		&deletedAt,
		&dto.Version,
	)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		dto.DeletedAt = &deletedAt.Time
	}

	return dto, nil
}

func LocationDTO(conType connection.Type, q *query.Query, cacheKey string) (*locationdto.Full, *Error.Status) {
	return fetchDTO(conType, q, cacheKey, scanLocationDTO)
}

func CollectLocationDTO(conType connection.Type, q *query.Query) ([]*locationdto.Full, *Error.Status) {
	return collect(conType, q, func (row pgx.CollectableRow) (*locationdto.Full, error) {
		dto := new(locationdto.Full)

		var deletedAt sql.NullTime

		if err := row.Scan(
			&dto.ID,
			&dto.Code,
			&dto.Name,
			&dto.BusinessEntityID,
			&dto.LocationTypeID,
			&dto.AddressLine,
			&dto.City,
			&dto.Region,
			&dto.Country,
			&dto.PostalCode,
			&dto.Latitude,
			&dto.Longitude,
			&dto.Status,
			&dto.CreatedAt,
			&dto.UpdatedAt,
			&deletedAt,
			&dto.Version,
		); err != nil {
			return nil, err
		}
		if deletedAt.Valid {
			dto.DeletedAt = &deletedAt.Time
		}

		return dto, nil
	})
}

func scanLocationTypeDTO(scan rowScanner) (*locationtypedto.Full, *Error.Status) {
	dto := new(locationtypedto.Full)

	err := scan(
		&dto.ID,
		&dto.Code,
		&dto.Name,
		&dto.Description,
		&dto.CreatedAt,
		&dto.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dto, nil
}

func LocationTypeDTO(conType connection.Type, q *query.Query, cacheKey string) (*locationtypedto.Full, *Error.Status) {
	return fetchDTO(conType, q, cacheKey, scanLocationTypeDTO)
}

func CollectLocationTypeDTO(conType connection.Type, q *query.Query) ([]*locationtypedto.Full, *Error.Status) {
	return collect(conType, q, func (row pgx.CollectableRow) (*locationtypedto.Full, error) {
		dto := new(locationtypedto.Full)

		if err := row.Scan(
			&dto.ID,
			&dto.Code,
			&dto.Name,
			&dto.Description,
			&dto.CreatedAt,
			&dto.UpdatedAt,
		); err != nil {
			return nil, err
		}

		return dto, nil
	})
}
