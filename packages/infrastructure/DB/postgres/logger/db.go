// This package is used only for logging things inside of the postgres module
// (/packages/infrastructure/DB/postgres)
package dblog

import "registry/packages/common/logger"

var (
	Logger    = logger.NewSource("DATABASE", logger.Default)
	Migration = logger.NewSource("MIGRATION", logger.Default)
)
