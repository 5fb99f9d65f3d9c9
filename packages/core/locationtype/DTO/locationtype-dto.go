package locationtypedto

import "time"

type Full struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Payload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
