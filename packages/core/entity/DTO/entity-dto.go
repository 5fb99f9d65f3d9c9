package entitydto

import "time"

// Full entity row, including soft-deletion state.
type Full struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	Version     int32      `json:"version"`
}

func (d *Full) IsDeleted() bool {
	return d.DeletedAt != nil && !d.DeletedAt.IsZero()
}

// Mutable entity fields, used by create and update operations.
type Payload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Snapshot written into the audit table alongside every mutation.
type Audit struct {
	ChangedEntityID string
	Operation       string
	Code            string
	Name            string
	Description     string
	Status          string
	DeletedAt       *time.Time
	ChangedAt       time.Time
}
