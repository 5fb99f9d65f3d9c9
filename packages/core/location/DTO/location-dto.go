package locationdto

import "time"

type Full struct {
	ID               string     `json:"id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	BusinessEntityID string     `json:"businessEntityId"`
	LocationTypeID   string     `json:"locationTypeId"`
	AddressLine      string     `json:"addressLine"`
	City             string     `json:"city"`
	Region           string     `json:"region"`
	Country          string     `json:"country"`
	PostalCode       string     `json:"postalCode"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"deletedAt,omitempty"`
	Version          int32      `json:"version"`
}

func (d *Full) IsDeleted() bool {
	return d.DeletedAt != nil && !d.DeletedAt.IsZero()
}

type Payload struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	BusinessEntityID string   `json:"businessEntityId"`
	LocationTypeID   string   `json:"locationTypeId"`
	AddressLine      string   `json:"addressLine"`
	City             string   `json:"city"`
	Region           string   `json:"region"`
	Country          string   `json:"country"`
	PostalCode       string   `json:"postalCode"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Status           string   `json:"status"`
}

type Audit struct {
	ChangedLocationID string
	Operation         string
	Code              string
	Name              string
	BusinessEntityID  string
	LocationTypeID    string
	Status            string
	DeletedAt         *time.Time
	ChangedAt         time.Time
}
