package cache

import (
	Error "registry/packages/common/errors"
)

// Assigned on startup, before any repository call.
var Client CacheClient

type CacheClient interface {
	Connect()
	Close() *Error.Status

	Get(key string) (string, bool)
	// Accepts only the value types the driver can handle directly:
	// string, bool, []byte, int, int64, float64, time.Time.
	// Use EncodeAndSet for everything else.
	Set(key string, value any) *Error.Status
	// Encodes value to JSON before storing it.
	EncodeAndSet(key string, value any) *Error.Status
	Delete(keys ...string) *Error.Status
	// Deletes keys only if err is nil, returns err unchanged.
	DeleteOnError(err *Error.Status, keys ...string) *Error.Status
	DeletePattern(pattern string) *Error.Status
	ProgressiveDelete(keys []string) *Error.Status
	FlushAll() *Error.Status
}
