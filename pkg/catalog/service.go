package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataproducts-io/catalog/pkg/database/models"
)

// Service layers the catalog business rules on top of a Store. It is the
// contract external callers (HTTP, scripts) depend on. Absent records are
// reported as nil results, never as errors.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListAll(ctx context.Context) ([]models.DataProduct, error) {
	return s.store.GetAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*models.DataProduct, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) FindBySchemaName(ctx context.Context, name string) (*models.DataProduct, error) {
	return s.store.GetBySchemaName(ctx, name)
}

// Create persists a new data product. The schema name pre-check runs here in
// addition to the storage unique index, which remains the last line of
// defense against two concurrent creations with the same name.
func (s *Service) Create(ctx context.Context, request models.DataProductCreate) (*models.DataProduct, error) {
	existing, err := s.store.GetBySchemaName(ctx, request.SchemaName)
	if err != nil {
		return nil, fmt.Errorf("error checking for existing schema name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("data product with schema name %q: %w", request.SchemaName, ErrSchemaNameExists)
	}

	creationDate := time.Now().UTC()
	if request.CreationDate != nil {
		creationDate = *request.CreationDate
	}

	return s.store.Insert(ctx, &models.DataProduct{
		SchemaName:   request.SchemaName,
		Description:  request.Description,
		Owner:        request.Owner,
		CreationDate: creationDate,
	})
}

// Update applies only the fields present in request. Renaming a record to its
// own current schema name is not a duplicate; renaming to another record's
// name is.
func (s *Service) Update(ctx context.Context, id int64, request models.DataProductUpdate) (*models.DataProduct, error) {
	if id <= 0 {
		return nil, nil
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if request.SchemaName != nil && *request.SchemaName != existing.SchemaName {
		other, err := s.store.GetBySchemaName(ctx, *request.SchemaName)
		if err != nil {
			return nil, fmt.Errorf("error checking for existing schema name: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("data product with schema name %q: %w", *request.SchemaName, ErrSchemaNameExists)
		}
	}

	return s.store.ApplyUpdate(ctx, id, request)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	return s.store.Delete(ctx, id)
}

// SearchBySchemaName is a case-insensitive substring match. An empty or
// whitespace-only term matches every record.
func (s *Service) SearchBySchemaName(ctx context.Context, term string) ([]models.DataProduct, error) {
	term = strings.TrimSpace(term)
	if len(term) == 0 {
		return s.store.GetAll(ctx)
	}

	return s.store.SearchBySchemaName(ctx, term)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
