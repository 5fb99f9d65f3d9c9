package app

import (
	"os"
	"runtime"

	"registry/packages/common/config"
	"registry/packages/common/logger"
	"registry/packages/infrastructure/DB"
	"registry/packages/infrastructure/cache"
	"registry/packages/infrastructure/cache/redis"
	"registry/packages/presentation/api/http/router"

	"github.com/labstack/echo/v4"
)

func StartInit() {
	// All init logs will be shown anyway
	if err := logger.Default.NewTransmission(logger.Stdout); err != nil {
		panic(err.Error())
	}
}

func EndInit() {
	if !config.App.ShowLogs {
		if err := logger.Default.RemoveTransmission(logger.Stdout); err != nil {
			panic(err.Error())
		}
	}
}

func InitDefault() {
	// Program wasn't tested on OS other than Linux.
	if runtime.GOOS != "linux" {
		println("[ CRITICAL ERROR ] OS is not supported. This program can be used only on Linux-based OS.")
		os.Exit(1)
	}

	config.Init()
}

func InitConnections() {
	appLogger.Info("Initializng connections...", nil)

    cache.Client = redis.New()
    cache.Client.Connect()
	DB.Database.Connect()

	appLogger.Info("Initializng connections: OK", nil)
}

func InitRouter() *echo.Echo {
	appLogger.Info("Initializng router...", nil)

	Router := router.Create()

	appLogger.Info("Initializng router: OK", nil)

    return Router
}
