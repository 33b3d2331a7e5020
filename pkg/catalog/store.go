package catalog

import (
	"context"
	"errors"

	"github.com/dataproducts-io/catalog/pkg/database/models"
)

// ErrSchemaNameExists signals the one business rule every caller must observe:
// no two data products may share a schema name. Match with errors.Is.
var ErrSchemaNameExists = errors.New("schema name already exists")

// Store is the only layer allowed to talk to persistent storage. Lookups
// report absence with a nil record and a nil error, never gorm.ErrRecordNotFound
// or similar driver errors.
type Store interface {
	// GetAll returns every data product ordered by creation date descending.
	GetAll(ctx context.Context) ([]models.DataProduct, error)

	// GetByID returns nil for an unknown or non-positive id.
	GetByID(ctx context.Context, id int64) (*models.DataProduct, error)

	// GetBySchemaName is an exact, case-sensitive match. An empty name
	// returns nil.
	GetBySchemaName(ctx context.Context, name string) (*models.DataProduct, error)

	// SearchBySchemaName matches schema names containing term, ignoring
	// case, ordered like GetAll.
	SearchBySchemaName(ctx context.Context, term string) ([]models.DataProduct, error)

	// Insert persists a new data product, assigning its id and stamping
	// created_at and updated_at to the same instant. A unique index
	// violation on schema_name surfaces as ErrSchemaNameExists.
	Insert(ctx context.Context, product *models.DataProduct) (*models.DataProduct, error)

	// ApplyUpdate merges only the non-nil fields of updates onto the stored
	// record and stamps a new updated_at. Returns nil for an unknown id.
	ApplyUpdate(ctx context.Context, id int64, updates models.DataProductUpdate) (*models.DataProduct, error)

	// Delete reports whether a record existed and was removed.
	Delete(ctx context.Context, id int64) (bool, error)

	// Count returns the total number of data products.
	Count(ctx context.Context) (int64, error)
}
