package businessentity

import (
	"net/http"
	"strings"

	Error "registry/packages/common/errors"
	"registry/packages/core"
)

type Property core.ResourceProperty

const (
    IdProperty        Property = "id"
    CodeProperty      Property = "code"
    LegalNameProperty Property = "legal_name"
    TradeNameProperty Property = "trade_name"
    TaxIdProperty     Property = "tax_id"
    StatusProperty    Property = "status"
    CreatedAtProperty Property = "created_at"
    UpdatedAtProperty Property = "updated_at"
    DeletedAtProperty Property = "deleted_at"
    VersionProperty   Property = "version"
)

var searchableProperties = map[string]bool{
	string(CodeProperty):      true,
	string(LegalNameProperty): true,
	string(TradeNameProperty): true,
	string(TaxIdProperty):     true,
	string(StatusProperty):    true,
	string(CreatedAtProperty): true,
	string(UpdatedAtProperty): true,
	string(DeletedAtProperty): true,
	string(VersionProperty):   true,
}

func IsSearchable(field string) bool {
	return searchableProperties[field]
}

var ErrInvalidLegalNameLength = Error.NewStatusError(
	"Legal name must be between 2 and 256 characters",
	http.StatusBadRequest,
)

func ValidateLegalName(name string) *Error.Status {
	length := len(strings.TrimSpace(name))

	if length < 2 || length > 256 {
		return ErrInvalidLegalNameLength
	}

	return nil
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
