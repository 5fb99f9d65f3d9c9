package middleware

import "registry/packages/common/logger"

var log = logger.NewSource("MIDDLEWARE", logger.Default)
