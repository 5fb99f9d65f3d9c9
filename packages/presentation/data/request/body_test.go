package requestbody_test

import (
	"net/http"
	"testing"

	RequestBody "registry/packages/presentation/data/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPayloadValidate(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		body := &RequestBody.EntityPayload{
			Code: "WH-001",
			Name: "Main warehouse",
			Status: "active",
		}

		assert.Nil(t, body.Validate())
	})

	t.Run("description is optional", func(t *testing.T) {
		body := &RequestBody.EntityPayload{
			Code: "WH-001",
			Name: "Main warehouse",
			Description: "",
			Status: "active",
		}

		assert.Nil(t, body.Validate())
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		bodies := []*RequestBody.EntityPayload{
			{Name: "n", Status: "active"},
			{Code: "c", Status: "active"},
			{Code: "c", Name: "n"},
		}

		for _, body := range bodies {
			err := body.Validate()

			require.NotNil(t, err)
			assert.Equal(t, http.StatusBadRequest, err.Status())
		}
	})

	t.Run("whitespace-only value is rejected", func(t *testing.T) {
		body := &RequestBody.EntityPayload{
			Code: "   ",
			Name: "Main warehouse",
			Status: "active",
		}

		require.NotNil(t, body.Validate())
	})
}

func TestEntityPayloadToDTO(t *testing.T) {
	body := &RequestBody.EntityPayload{
		Code: "WH-001",
		Name: "Main warehouse",
		Description: "Primary storage",
		Status: "active",
	}

	dto := body.ToDTO()

	assert.Equal(t, body.Code, dto.Code)
	assert.Equal(t, body.Name, dto.Name)
	assert.Equal(t, body.Description, dto.Description)
	assert.Equal(t, body.Status, dto.Status)
}

func TestBusinessEntityPayloadValidate(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		body := &RequestBody.BusinessEntityPayload{
			Code: "ACME",
			LegalName: "Acme Holdings Ltd",
			Status: "active",
		}

		assert.Nil(t, body.Validate())
	})

	t.Run("trade name and tax id are optional", func(t *testing.T) {
		body := &RequestBody.BusinessEntityPayload{
			Code: "ACME",
			LegalName: "Acme Holdings Ltd",
			TradeName: "",
			TaxID: "",
			Status: "active",
		}

		assert.Nil(t, body.Validate())
	})

	t.Run("missing legal name is rejected", func(t *testing.T) {
		body := &RequestBody.BusinessEntityPayload{
			Code: "ACME",
			Status: "active",
		}

		require.NotNil(t, body.Validate())
	})
}

func TestLocationPayloadValidate(t *testing.T) {
	lat := 52.52
	lon := 13.405

	valid := func() *RequestBody.LocationPayload {
		return &RequestBody.LocationPayload{
			Code: "BER-01",
			Name: "Berlin site",
			BusinessEntityID: "cef85e5a-5a5f-42d0-81bd-1650391c0e82",
			LocationTypeID: "9bc87af1-5f92-4d8c-bf41-7ade642c5a91",
			Status: "active",
		}
	}

	t.Run("valid body passes", func(t *testing.T) {
		assert.Nil(t, valid().Validate())
	})

	t.Run("coordinates are optional as a pair", func(t *testing.T) {
		body := valid()
		body.Latitude = &lat
		body.Longitude = &lon

		assert.Nil(t, body.Validate())
	})

	t.Run("single coordinate is rejected", func(t *testing.T) {
		body := valid()
		body.Latitude = &lat

		err := body.Validate()

		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.Status())
	})

	t.Run("missing references are rejected", func(t *testing.T) {
		body := valid()
		body.BusinessEntityID = ""

		require.NotNil(t, body.Validate())

		body = valid()
		body.LocationTypeID = ""

		require.NotNil(t, body.Validate())
	})
}

func TestLocationTypePayloadValidate(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		body := &RequestBody.LocationTypePayload{
			Code: "warehouse",
			Name: "Warehouse",
		}

		assert.Nil(t, body.Validate())
	})

	t.Run("missing code or name is rejected", func(t *testing.T) {
		require.NotNil(t, (&RequestBody.LocationTypePayload{Name: "Warehouse"}).Validate())
		require.NotNil(t, (&RequestBody.LocationTypePayload{Code: "warehouse"}).Validate())
	})
}
