package transport

import "registry/packages/common/logger"

var Logger = logger.NewSource("TRANSPORT", logger.Default)
