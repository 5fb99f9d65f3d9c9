package requestbody

import (
	"fmt"
	"net/http"
	"strings"

	Error "registry/packages/common/errors"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	EntityDTO "registry/packages/core/entity/DTO"
	LocationDTO "registry/packages/core/location/DTO"
	LocationTypeDTO "registry/packages/core/locationtype/DTO"
)

/*
   IMPORTANT
   All kind of validation done in methods inside of this module is
   related to transport layer, which means:
   1) Validation checks only if value persist and it's not empty, cuz
      all what transport layer should do - is just be intermediary between
      user and business logic.
   2) All other kind of validation must be done on business logic layer
      e.g. - check if status has one of the allowed values
      or if referenced IDs have correct format.
*/

func missingFieldValue(field string) *Error.Status {
    return Error.NewStatusError(
        fmt.Sprintf("Invalid request body: field '%s' has no value", field),
        http.StatusBadRequest,
    )
}

func invalidFieldValue(field string) *Error.Status {
    return Error.NewStatusError(
        fmt.Sprintf("Invalid request body: field '%s' has invalid value", field),
        http.StatusBadRequest,
    )
}

func validateStr(field string, value string) *Error.Status {
    if value == "" {
        return missingFieldValue(field)
    }
    if strings.ReplaceAll(value, " ", "") == "" {
        return invalidFieldValue(field)
    }
    return nil
}

type Validator interface {
    Validate() *Error.Status
}

type EntityPayload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (b *EntityPayload) Validate() *Error.Status {
    if err := validateStr("code", b.Code); err != nil {
        return err
    }
    if err := validateStr("name", b.Name); err != nil {
        return err
    }
    return validateStr("status", b.Status)
}

func (b *EntityPayload) ToDTO() *EntityDTO.Payload {
    return &EntityDTO.Payload{
        Code: b.Code,
        Name: b.Name,
        Description: b.Description,
        Status: b.Status,
    }
}

type BusinessEntityPayload struct {
	Code      string `json:"code"`
	LegalName string `json:"legalName"`
	TradeName string `json:"tradeName"`
	TaxID     string `json:"taxId"`
	Status    string `json:"status"`
}

func (b *BusinessEntityPayload) Validate() *Error.Status {
    if err := validateStr("code", b.Code); err != nil {
        return err
    }
    if err := validateStr("legalName", b.LegalName); err != nil {
        return err
    }
    return validateStr("status", b.Status)
}

func (b *BusinessEntityPayload) ToDTO() *BusinessEntityDTO.Payload {
    return &BusinessEntityDTO.Payload{
        Code: b.Code,
        LegalName: b.LegalName,
        TradeName: b.TradeName,
        TaxID: b.TaxID,
        Status: b.Status,
    }
}

type LocationPayload struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	BusinessEntityID string   `json:"businessEntityId"`
	LocationTypeID   string   `json:"locationTypeId"`
	AddressLine      string   `json:"addressLine"`
	City             string   `json:"city"`
	Region           string   `json:"region"`
	Country          string   `json:"country"`
	PostalCode       string   `json:"postalCode"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Status           string   `json:"status"`
}

func (b *LocationPayload) Validate() *Error.Status {
    if err := validateStr("code", b.Code); err != nil {
        return err
    }
    if err := validateStr("name", b.Name); err != nil {
        return err
    }
    if err := validateStr("businessEntityId", b.BusinessEntityID); err != nil {
        return err
    }
    if err := validateStr("locationTypeId", b.LocationTypeID); err != nil {
        return err
    }
    // Coordinates must come in pairs
    if (b.Latitude == nil) != (b.Longitude == nil) {
        return invalidFieldValue("latitude/longitude")
    }
    return validateStr("status", b.Status)
}

func (b *LocationPayload) ToDTO() *LocationDTO.Payload {
    return &LocationDTO.Payload{
        Code: b.Code,
        Name: b.Name,
        BusinessEntityID: b.BusinessEntityID,
        LocationTypeID: b.LocationTypeID,
        AddressLine: b.AddressLine,
        City: b.City,
        Region: b.Region,
        Country: b.Country,
        PostalCode: b.PostalCode,
        Latitude: b.Latitude,
        Longitude: b.Longitude,
        Status: b.Status,
    }
}

type LocationTypePayload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (b *LocationTypePayload) Validate() *Error.Status {
    if err := validateStr("code", b.Code); err != nil {
        return err
    }
    return validateStr("name", b.Name)
}

func (b *LocationTypePayload) ToDTO() *LocationTypeDTO.Payload {
    return &LocationTypeDTO.Payload{
        Code: b.Code,
        Name: b.Name,
        Description: b.Description,
    }
}
