package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dataproducts-io/catalog/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

func forceIndexHint(index string) hints.Hints {
	forceIndexHint := hints.CommentBefore("where", fmt.Sprintf("FORCE_INDEX = %s", index))
	forceIndexHint.Prefix = "/*@ "
	return forceIndexHint
}

// GormStore persists data products through gorm. Open the database with
// TranslateError enabled so unique index violations map to
// gorm.ErrDuplicatedKey across drivers.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetAll(ctx context.Context) ([]models.DataProduct, error) {
	var products []models.DataProduct

	err := s.db.WithContext(ctx).
		Order("creation_date desc").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("error listing data products: %w", err)
	}

	return products, nil
}

func (s *GormStore) GetByID(ctx context.Context, id int64) (*models.DataProduct, error) {
	if id <= 0 {
		return nil, nil
	}

	product := &models.DataProduct{}
	err := s.db.WithContext(ctx).Where("id = ?", id).First(product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding data product %d: %w", id, err)
	}

	return product, nil
}

func (s *GormStore) GetBySchemaName(ctx context.Context, name string) (*models.DataProduct, error) {
	if len(name) == 0 {
		return nil, nil
	}

	product := &models.DataProduct{}
	err := s.db.WithContext(ctx).Clauses(forceIndexHint("idx_data_products_schema_name")).
		Where("schema_name = ?", name).First(product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding data product %s: %w", name, err)
	}

	return product, nil
}

func (s *GormStore) SearchBySchemaName(ctx context.Context, term string) ([]models.DataProduct, error) {
	var products []models.DataProduct

	err := s.db.WithContext(ctx).
		Where("LOWER(schema_name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("creation_date desc").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("error searching data products: %w", err)
	}

	return products, nil
}

func (s *GormStore) Insert(ctx context.Context, product *models.DataProduct) (*models.DataProduct, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	err := s.db.WithContext(ctx).Create(product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("data product with schema name %q: %w", product.SchemaName, ErrSchemaNameExists)
		}
		return nil, fmt.Errorf("error creating data product %s: %w", product.SchemaName, err)
	}

	return product, nil
}

func (s *GormStore) ApplyUpdate(ctx context.Context, id int64, updates models.DataProductUpdate) (*models.DataProduct, error) {
	if id <= 0 {
		return nil, nil
	}

	product := &models.DataProduct{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(product).Error
		if err != nil {
			return err
		}

		// updated_at must strictly increase even on coarse clocks
		now := time.Now().UTC()
		if !now.After(product.UpdatedAt) {
			now = product.UpdatedAt.Add(time.Microsecond)
		}

		fields := map[string]interface{}{
			"updated_at": now,
		}
		if updates.SchemaName != nil {
			fields["schema_name"] = *updates.SchemaName
		}
		if updates.Description != nil {
			fields["description"] = *updates.Description
		}
		if updates.Owner != nil {
			fields["owner"] = *updates.Owner
		}
		if updates.CreationDate != nil {
			fields["creation_date"] = *updates.CreationDate
		}

		if err := tx.Model(product).Updates(fields).Error; err != nil {
			return err
		}

		// reload so callers see exactly what was stored
		return tx.Where("id = ?", id).First(product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			name := product.SchemaName
			if updates.SchemaName != nil {
				name = *updates.SchemaName
			}
			return nil, fmt.Errorf("data product with schema name %q: %w", name, ErrSchemaNameExists)
		}
		return nil, fmt.Errorf("error updating data product %d: %w", id, err)
	}

	return product, nil
}

func (s *GormStore) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DataProduct{})
	if result.Error != nil {
		return false, fmt.Errorf("error deleting data product %d: %w", id, result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var count int64

	err := s.db.WithContext(ctx).Model(&models.DataProduct{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("error counting data products: %w", err)
	}

	return count, nil
}
