package postgres

import (
	Error "registry/packages/common/errors"
	businessentitydto "registry/packages/core/businessentity/DTO"
	entitydto "registry/packages/core/entity/DTO"
	"registry/packages/core/filter"
	locationdto "registry/packages/core/location/DTO"
	locationtypedto "registry/packages/core/locationtype/DTO"
	"registry/packages/common/logger"
	"registry/packages/infrastructure/DB/postgres/connection"
	"registry/packages/infrastructure/DB/postgres/executor"
	BusinessEntityTable "registry/packages/infrastructure/DB/postgres/table/businessentity"
	EntityTable "registry/packages/infrastructure/DB/postgres/table/entity"
	LocationTable "registry/packages/infrastructure/DB/postgres/table/location"
	LocationTypeTable "registry/packages/infrastructure/DB/postgres/table/locationtype"
	"registry/packages/infrastructure/DB/postgres/transaction"
)

var dbLogger = logger.NewSource("DB", logger.Default)

type postgresDriver struct {
	manager *connection.Manager

	entities      *EntityTable.Manager
	companies     *BusinessEntityTable.Manager
	locations     *LocationTable.Manager
	locationTypes *LocationTypeTable.Manager
}

var driver *postgresDriver

func InitDriver() *postgresDriver {
	driver = &postgresDriver{
		manager:       new(connection.Manager),
		entities:      EntityTable.NewManager(),
		companies:     BusinessEntityTable.NewManager(),
		locations:     LocationTable.NewManager(),
		locationTypes: LocationTypeTable.NewManager(),
	}

	return driver
}

func (d *postgresDriver) Connect() {
	d.manager.Connect()

	executor.Init(d.manager)
	transaction.Init(d.manager)

	dbLogger.Info("DB driver ready", nil)
}

func (d *postgresDriver) Disconnect() error {
	return d.manager.Disconnect()
}

// Entities

func (d *postgresDriver) FindEntityByID(id string) (*entitydto.Full, *Error.Status) {
	return d.entities.FindEntityByID(id)
}

func (d *postgresDriver) FindAnyEntityByID(id string) (*entitydto.Full, *Error.Status) {
	return d.entities.FindAnyEntityByID(id)
}

func (d *postgresDriver) FindSoftDeletedEntityByID(id string) (*entitydto.Full, *Error.Status) {
	return d.entities.FindSoftDeletedEntityByID(id)
}

func (d *postgresDriver) SearchEntities(flt filter.Map, opts *filter.Options) ([]*entitydto.Full, *Error.Status) {
	return d.entities.SearchEntities(flt, opts)
}

func (d *postgresDriver) CreateEntity(payload *entitydto.Payload) (*entitydto.Full, *Error.Status) {
	return d.entities.CreateEntity(payload)
}

func (d *postgresDriver) UpdateEntity(id string, payload *entitydto.Payload) (*entitydto.Full, *Error.Status) {
	return d.entities.UpdateEntity(id, payload)
}

func (d *postgresDriver) SoftDeleteEntity(id string) *Error.Status {
	return d.entities.SoftDeleteEntity(id)
}

func (d *postgresDriver) RestoreEntity(id string) *Error.Status {
	return d.entities.RestoreEntity(id)
}

func (d *postgresDriver) DropEntity(id string) *Error.Status {
	return d.entities.DropEntity(id)
}

// Business entities

func (d *postgresDriver) FindBusinessEntityByID(id string) (*businessentitydto.Full, *Error.Status) {
	return d.companies.FindBusinessEntityByID(id)
}

func (d *postgresDriver) FindAnyBusinessEntityByID(id string) (*businessentitydto.Full, *Error.Status) {
	return d.companies.FindAnyBusinessEntityByID(id)
}

func (d *postgresDriver) FindSoftDeletedBusinessEntityByID(id string) (*businessentitydto.Full, *Error.Status) {
	return d.companies.FindSoftDeletedBusinessEntityByID(id)
}

func (d *postgresDriver) SearchBusinessEntities(flt filter.Map, opts *filter.Options) ([]*businessentitydto.Full, *Error.Status) {
	return d.companies.SearchBusinessEntities(flt, opts)
}

func (d *postgresDriver) CreateBusinessEntity(payload *businessentitydto.Payload) (*businessentitydto.Full, *Error.Status) {
	return d.companies.CreateBusinessEntity(payload)
}

func (d *postgresDriver) UpdateBusinessEntity(id string, payload *businessentitydto.Payload) (*businessentitydto.Full, *Error.Status) {
	return d.companies.UpdateBusinessEntity(id, payload)
}

func (d *postgresDriver) SoftDeleteBusinessEntity(id string) *Error.Status {
	return d.companies.SoftDeleteBusinessEntity(id)
}

func (d *postgresDriver) RestoreBusinessEntity(id string) *Error.Status {
	return d.companies.RestoreBusinessEntity(id)
}

func (d *postgresDriver) DropBusinessEntity(id string) *Error.Status {
	return d.companies.DropBusinessEntity(id)
}

// Locations

func (d *postgresDriver) FindLocationByID(id string) (*locationdto.Full, *Error.Status) {
	return d.locations.FindLocationByID(id)
}

func (d *postgresDriver) FindAnyLocationByID(id string) (*locationdto.Full, *Error.Status) {
	return d.locations.FindAnyLocationByID(id)
}

func (d *postgresDriver) FindSoftDeletedLocationByID(id string) (*locationdto.Full, *Error.Status) {
	return d.locations.FindSoftDeletedLocationByID(id)
}

func (d *postgresDriver) SearchLocations(flt filter.Map, opts *filter.Options) ([]*locationdto.Full, *Error.Status) {
	return d.locations.SearchLocations(flt, opts)
}

func (d *postgresDriver) CreateLocation(payload *locationdto.Payload) (*locationdto.Full, *Error.Status) {
	return d.locations.CreateLocation(payload)
}

func (d *postgresDriver) UpdateLocation(id string, payload *locationdto.Payload) (*locationdto.Full, *Error.Status) {
	return d.locations.UpdateLocation(id, payload)
}

func (d *postgresDriver) SoftDeleteLocation(id string) *Error.Status {
	return d.locations.SoftDeleteLocation(id)
}

func (d *postgresDriver) RestoreLocation(id string) *Error.Status {
	return d.locations.RestoreLocation(id)
}

func (d *postgresDriver) DropLocation(id string) *Error.Status {
	return d.locations.DropLocation(id)
}

// Location types

func (d *postgresDriver) FindLocationTypeByID(id string) (*locationtypedto.Full, *Error.Status) {
	return d.locationTypes.FindLocationTypeByID(id)
}

func (d *postgresDriver) SearchLocationTypes(flt filter.Map, opts *filter.Options) ([]*locationtypedto.Full, *Error.Status) {
	return d.locationTypes.SearchLocationTypes(flt, opts)
}

func (d *postgresDriver) CreateLocationType(payload *locationtypedto.Payload) (*locationtypedto.Full, *Error.Status) {
	return d.locationTypes.CreateLocationType(payload)
}

func (d *postgresDriver) UpdateLocationType(id string, payload *locationtypedto.Payload) (*locationtypedto.Full, *Error.Status) {
	return d.locationTypes.UpdateLocationType(id, payload)
}

func (d *postgresDriver) DropLocationType(id string) *Error.Status {
	return d.locationTypes.DropLocationType(id)
}
