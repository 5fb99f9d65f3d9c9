package validation

import (
	"regexp"
	Error "registry/packages/common/errors"
)

// Postgres truncates identifiers to 63 bytes, anything longer
// is either a mistake or an injection attempt.
const maxIdentifierLength = 63

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Returns nil if 'v' can be safely used as a SQL identifier
// (column or sort field name), otherwise returns either
// Error.NoValue or Error.InvalidValue.
//
// Values are always bound as query parameters, this check
// exists for the names themselves which can't be parameterized.
func Identifier(v string) *Error.Validation {
	if v == "" {
		return Error.NoValue
	}
	if len(v) > maxIdentifierLength || !identifierPattern.MatchString(v) {
		return Error.InvalidValue
	}
	return nil
}
