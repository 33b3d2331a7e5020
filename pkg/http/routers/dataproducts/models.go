package dataproducts

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dataproducts-io/catalog/pkg/database/models"
)

const (
	maxSchemaNameLength  = 255
	maxDescriptionLength = 1000
	maxOwnerLength       = 255
)

type RequestPostDataProduct struct {
	SchemaName   string     `json:"schema_name"`
	Description  *string    `json:"description,omitempty"`
	Owner        string     `json:"owner"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
}

func (r *RequestPostDataProduct) Bind(request *http.Request) error {
	r.SchemaName = strings.TrimSpace(r.SchemaName)
	r.Owner = strings.TrimSpace(r.Owner)

	if len(r.SchemaName) == 0 {
		return fmt.Errorf("schema_name may not be empty")
	}
	if len(r.SchemaName) > maxSchemaNameLength {
		return fmt.Errorf("schema_name may not be longer than %d characters", maxSchemaNameLength)
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		return fmt.Errorf("description may not be longer than %d characters", maxDescriptionLength)
	}
	if len(r.Owner) == 0 {
		return fmt.Errorf("owner may not be empty")
	}
	if len(r.Owner) > maxOwnerLength {
		return fmt.Errorf("owner may not be longer than %d characters", maxOwnerLength)
	}

	return nil
}

type RequestPatchDataProduct struct {
	SchemaName   *string    `json:"schema_name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Owner        *string    `json:"owner,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
}

func (r *RequestPatchDataProduct) Bind(request *http.Request) error {
	if r.SchemaName != nil {
		trimmed := strings.TrimSpace(*r.SchemaName)
		if len(trimmed) == 0 {
			return fmt.Errorf("schema_name may not be empty")
		}
		if len(trimmed) > maxSchemaNameLength {
			return fmt.Errorf("schema_name may not be longer than %d characters", maxSchemaNameLength)
		}
		r.SchemaName = &trimmed
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		return fmt.Errorf("description may not be longer than %d characters", maxDescriptionLength)
	}
	if r.Owner != nil {
		trimmed := strings.TrimSpace(*r.Owner)
		if len(trimmed) == 0 {
			return fmt.Errorf("owner may not be empty")
		}
		if len(trimmed) > maxOwnerLength {
			return fmt.Errorf("owner may not be longer than %d characters", maxOwnerLength)
		}
		r.Owner = &trimmed
	}

	return nil
}

func (r *RequestPatchDataProduct) updates() models.DataProductUpdate {
	return models.DataProductUpdate{
		SchemaName:   r.SchemaName,
		Description:  r.Description,
		Owner:        r.Owner,
		CreationDate: r.CreationDate,
	}
}

type ResponseDataProduct struct {
	ID           int64     `json:"id"`
	SchemaName   string    `json:"schema_name"`
	Description  *string   `json:"description"`
	Owner        string    `json:"owner"`
	CreationDate time.Time `json:"creation_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *ResponseDataProduct) Render(writer http.ResponseWriter, request *http.Request) error {
	return nil
}

func newResponseDataProduct(product *models.DataProduct) *ResponseDataProduct {
	return &ResponseDataProduct{
		ID:           product.ID,
		SchemaName:   product.SchemaName,
		Description:  product.Description,
		Owner:        product.Owner,
		CreationDate: product.CreationDate,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

type ResponseGetDataProducts []ResponseDataProduct

func (r *ResponseGetDataProducts) Render(writer http.ResponseWriter, request *http.Request) error {
	return nil
}

type ResponseDataProductCount struct {
	Count int64 `json:"count"`
}

func (r *ResponseDataProductCount) Render(writer http.ResponseWriter, request *http.Request) error {
	return nil
}
