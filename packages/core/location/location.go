package location

import (
	"net/http"
	"strings"

	Error "registry/packages/common/errors"
	"registry/packages/core"
)

type Property core.ResourceProperty

const (
    IdProperty               Property = "id"
    CodeProperty             Property = "code"
    NameProperty             Property = "name"
    BusinessEntityIdProperty Property = "business_entity_id"
    LocationTypeIdProperty   Property = "location_type_id"
    AddressLineProperty      Property = "address_line"
    CityProperty             Property = "city"
    RegionProperty           Property = "region"
    CountryProperty          Property = "country"
    PostalCodeProperty       Property = "postal_code"
    LatitudeProperty         Property = "latitude"
    LongitudeProperty        Property = "longitude"
    StatusProperty           Property = "status"
    CreatedAtProperty        Property = "created_at"
    UpdatedAtProperty        Property = "updated_at"
    DeletedAtProperty        Property = "deleted_at"
    VersionProperty          Property = "version"
)

var searchableProperties = map[string]bool{
	string(CodeProperty):             true,
	string(NameProperty):             true,
	string(BusinessEntityIdProperty): true,
	string(LocationTypeIdProperty):   true,
	string(CityProperty):             true,
	string(RegionProperty):           true,
	string(CountryProperty):          true,
	string(PostalCodeProperty):       true,
	string(StatusProperty):           true,
	string(CreatedAtProperty):        true,
	string(UpdatedAtProperty):        true,
	string(DeletedAtProperty):        true,
	string(VersionProperty):          true,
}

func IsSearchable(field string) bool {
	return searchableProperties[field]
}

// ISO 3166-1 alpha-2
var ErrInvalidCountry = Error.NewStatusError(
	"Country must be a two-letter uppercase code",
	http.StatusBadRequest,
)

func ValidateCountry(country string) *Error.Status {
	if len(country) != 2 || strings.ToUpper(country) != country {
		return ErrInvalidCountry
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
