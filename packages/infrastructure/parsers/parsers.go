package parsers

import (
	"registry/packages/common/logger"
)

var Logger = logger.NewSource("PARSER", logger.Default)
