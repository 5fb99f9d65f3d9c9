package entity

import (
	"net/http"
	"strings"

	Error "registry/packages/common/errors"
	"registry/packages/core"
)

type Property core.ResourceProperty

const (
    IdProperty          Property = "id"
    CodeProperty        Property = "code"
    NameProperty        Property = "name"
    DescriptionProperty Property = "description"
    StatusProperty      Property = "status"
    CreatedAtProperty   Property = "created_at"
    UpdatedAtProperty   Property = "updated_at"
    DeletedAtProperty   Property = "deleted_at"
    VersionProperty     Property = "version"
)

// Columns allowed in search filters and sorting.
// Everything else is rejected before query compilation.
var searchableProperties = map[string]bool{
	string(CodeProperty):        true,
	string(NameProperty):        true,
	string(DescriptionProperty): true,
	string(StatusProperty):      true,
	string(CreatedAtProperty):   true,
	string(UpdatedAtProperty):   true,
	string(DeletedAtProperty):   true,
	string(VersionProperty):     true,
}

func IsSearchable(field string) bool {
	return searchableProperties[field]
}

// Represents entity deletion state, might be:
// deleted (DeletedState), not deleted (NotDeletedState), any (AnyState)
type State byte

const (
    NotDeletedState State = iota
    DeletedState
    AnyState
)

var stateMap = map[State]string{
	NotDeletedState: "not deleted",
	DeletedState:	 "deleted",
	AnyState:		 "any",
}

func (s State) String() string {
	return stateMap[s]
}

var statuses = []string{"active", "inactive", "pending"}

var ErrInvalidStatus = Error.NewStatusError(
	"Invalid status, expected one of: " + strings.Join(statuses, ", "),
	http.StatusBadRequest,
)

var ErrInvalidCodeLength = Error.NewStatusError(
	"Code must be between 2 and 64 characters",
	http.StatusBadRequest,
)

var ErrInvalidNameLength = Error.NewStatusError(
	"Name must be between 2 and 256 characters",
	http.StatusBadRequest,
)

func ValidateStatus(status string) *Error.Status {
	for _, s := range statuses {
		if s == status {
			return nil
		}
	}
	return ErrInvalidStatus
}

func ValidateCode(code string) *Error.Status {
	length := len(strings.TrimSpace(code))

	if length < 2 || length > 64 {
		return ErrInvalidCodeLength
	}

	return nil
}

func ValidateName(name string) *Error.Status {
	length := len(strings.TrimSpace(name))

	if length < 2 || length > 256 {
		return ErrInvalidNameLength
	}

	return nil
}
