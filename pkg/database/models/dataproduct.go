package models

import (
	"time"
)

// DataProduct is a catalog entry describing a Unity Catalog style schema.
type DataProduct struct {
	ID           int64
	SchemaName   string
	Description  *string
	Owner        string
	CreationDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DataProductCreate carries caller supplied fields for a new data product.
// CreationDate may be nil, it defaults to the time of creation.
type DataProductCreate struct {
	SchemaName   string
	Description  *string
	Owner        string
	CreationDate *time.Time
}

// DataProductUpdate is a partial update, nil fields are left untouched.
type DataProductUpdate struct {
	SchemaName   *string
	Description  *string
	Owner        *string
	CreationDate *time.Time
}
