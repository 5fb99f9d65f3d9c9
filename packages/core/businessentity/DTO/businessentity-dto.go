package businessentitydto

import "time"

type Full struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	LegalName string     `json:"legalName"`
	TradeName string     `json:"tradeName"`
	TaxID     string     `json:"taxId"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	Version   int32      `json:"version"`
}

func (d *Full) IsDeleted() bool {
	return d.DeletedAt != nil && !d.DeletedAt.IsZero()
}

type Payload struct {
	Code      string `json:"code"`
	LegalName string `json:"legalName"`
	TradeName string `json:"tradeName"`
	TaxID     string `json:"taxId"`
	Status    string `json:"status"`
}

type Audit struct {
	ChangedBusinessEntityID string
	Operation               string
	Code                    string
	LegalName               string
	TradeName               string
	TaxID                   string
	Status                  string
	DeletedAt               *time.Time
	ChangedAt               time.Time
}
