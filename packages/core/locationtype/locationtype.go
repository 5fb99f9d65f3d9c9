// Location types are reference data: a small, rarely changing
// dictionary (warehouse, office, retail...). They have no
// soft-deletion lifecycle, deletion is hard and guarded by
// foreign keys from locations.
package locationtype

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
    CreatedAtProperty   Property = "created_at"
    UpdatedAtProperty   Property = "updated_at"
)

var searchableProperties = map[string]bool{
	string(CodeProperty):        true,
	string(NameProperty):        true,
	string(DescriptionProperty): true,
	string(CreatedAtProperty):   true,
	string(UpdatedAtProperty):   true,
}

func IsSearchable(field string) bool {
	return searchableProperties[field]
}

var ErrInvalidCodeLength = Error.NewStatusError(
	"Code must be between 2 and 64 characters",
	http.StatusBadRequest,
)

var ErrInvalidNameLength = Error.NewStatusError(
	"Name must be between 2 and 256 characters",
	http.StatusBadRequest,
)

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
