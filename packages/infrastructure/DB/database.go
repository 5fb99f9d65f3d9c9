package DB

import (
	"registry/packages/core/businessentity"
	"registry/packages/core/entity"
	"registry/packages/core/location"
	"registry/packages/core/locationtype"
	"registry/packages/infrastructure/DB/postgres"
)

type database interface {
	connector
	entity.Repository
	businessentity.Repository
	location.Repository
	locationtype.Repository
}

type connector interface {
	Connect()
	Disconnect() error
}

// Implements all resources "Repository" interfaces
var Database database = postgres.InitDriver()

// Applies schema migrations through the active driver.
var Migration = postgres.Migrate{}
