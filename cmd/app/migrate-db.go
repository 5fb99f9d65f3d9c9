package app

import (
	"os"
	"strconv"

	"registry/packages/infrastructure/DB"
)

func MigrateDB(migrateSteps string) {
	var err error

	switch migrateSteps {
	case "Up", "up":
		err = DB.Migration.Up()
	case "Down", "down":
		err = DB.Migration.Down()
	default:
		n, e := strconv.Atoi(migrateSteps)
		if e != nil {
			Shutdown()
			println("Invalid 'migrate-db' argument value. Expected: number or 'Up' or 'Down'. Got: " + migrateSteps)
			os.Exit(1)
		}

		err = DB.Migration.Steps(n)
	}

	Shutdown()

	if err != nil {
		println("Failed to apply migration.\n" + err.Error())
		os.Exit(1)
	}

	os.Exit(0)
}
