package main

import (
	"time"

	"registry/cmd/app"
	"registry/packages/common/config"
	"registry/packages/common/logger"
)

var mainLogger = logger.NewSource("MAIN", logger.Default)

func main() {
	app.Args.Parse()

	app.StartInit()

	app.InitDefault()

	if *app.Args.Debug {
		config.Debug.Enabled = true
	}
	if *app.Args.ShowLogs {
		config.App.ShowLogs = true
	}
	if *app.Args.TraceLogs {
		config.App.TraceLogsEnabled = true
	}

	logger.Debug.Store(config.Debug.Enabled)
	logger.Trace.Store(config.App.TraceLogsEnabled)

	go func() {
		if err := logger.Default.Start(); err != nil {
			panic(err.Error())
		}
	}()
	defer func() {
		if err := logger.Default.Stop(); err != nil {
			mainLogger.Error("Failed to stop logger", err.Error(), nil)
		}
	}()

	// Reserve some time for logger to start up
	time.Sleep(time.Millisecond * 50)

	app.InitConnections()

	if *app.Args.MigrateDB != "" {
		app.MigrateDB(*app.Args.MigrateDB)
	}

	Router := app.InitRouter()

	app.EndInit()

	app.Start(Router)
}
