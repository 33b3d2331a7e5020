package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dataproducts-io/catalog/pkg/database/models"
)

// MemoryStore is a Store backed by a map, for tests and for consumers that
// want to exercise the service without a database. It enforces the same
// schema name unique constraint the database index does.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]models.DataProduct
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]models.DataProduct),
	}
}

// cloneProduct copies the description so map entries and returned records
// never alias memory the caller can mutate.
func cloneProduct(product models.DataProduct) models.DataProduct {
	if product.Description != nil {
		description := *product.Description
		product.Description = &description
	}
	return product
}

func (s *MemoryStore) GetAll(ctx context.Context) ([]models.DataProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked(func(p models.DataProduct) bool { return true }), nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*models.DataProduct, error) {
	if id <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}

	product = cloneProduct(product)
	return &product, nil
}

func (s *MemoryStore) GetBySchemaName(ctx context.Context, name string) (*models.DataProduct, error) {
	if len(name) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, product := range s.products {
		if product.SchemaName == name {
			product := cloneProduct(product)
			return &product, nil
		}
	}

	return nil, nil
}

func (s *MemoryStore) SearchBySchemaName(ctx context.Context, term string) ([]models.DataProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(term)
	return s.sortedLocked(func(p models.DataProduct) bool {
		return strings.Contains(strings.ToLower(p.SchemaName), term)
	}), nil
}

func (s *MemoryStore) Insert(ctx context.Context, product *models.DataProduct) (*models.DataProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.SchemaName == product.SchemaName {
			return nil, fmt.Errorf("data product with schema name %q: %w", product.SchemaName, ErrSchemaNameExists)
		}
	}

	now := time.Now().UTC()
	s.nextID++
	product.ID = s.nextID
	product.CreatedAt = now
	product.UpdatedAt = now

	s.products[product.ID] = cloneProduct(*product)
	return product, nil
}

func (s *MemoryStore) ApplyUpdate(ctx context.Context, id int64, updates models.DataProductUpdate) (*models.DataProduct, error) {
	if id <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}

	if updates.SchemaName != nil {
		for _, existing := range s.products {
			if existing.ID != id && existing.SchemaName == *updates.SchemaName {
				return nil, fmt.Errorf("data product with schema name %q: %w", *updates.SchemaName, ErrSchemaNameExists)
			}
		}
		product.SchemaName = *updates.SchemaName
	}
	if updates.Description != nil {
		description := *updates.Description
		product.Description = &description
	}
	if updates.Owner != nil {
		product.Owner = *updates.Owner
	}
	if updates.CreationDate != nil {
		product.CreationDate = *updates.CreationDate
	}
	now := time.Now().UTC()
	if !now.After(product.UpdatedAt) {
		now = product.UpdatedAt.Add(time.Microsecond)
	}
	product.UpdatedAt = now

	s.products[id] = product

	product = cloneProduct(product)
	return &product, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}

	delete(s.products, id)
	return true, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.products)), nil
}

// sortedLocked returns matching products ordered by creation date descending,
// newest id first on ties. Callers must hold mu.
func (s *MemoryStore) sortedLocked(match func(models.DataProduct) bool) []models.DataProduct {
	products := make([]models.DataProduct, 0, len(s.products))
	for _, product := range s.products {
		if match(product) {
			products = append(products, cloneProduct(product))
		}
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].CreationDate.Equal(products[j].CreationDate) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreationDate.After(products[j].CreationDate)
	})

	return products
}
