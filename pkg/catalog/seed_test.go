package catalog

import (
	"context"
	"os"
	"testing"

	"github.com/dataproducts-io/catalog/pkg/database/models"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	db, dbFile := TempDatabase(t)
	defer func() {
		err := os.Remove(dbFile)
		if err != nil {
			t.Error("db file remove error:", err)
		}
	}()

	ctx := context.Background()
	service := NewService(NewGormStore(db))

	assert.NoError(t, Seed(ctx, service, logr.Discard()))

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), count)

	// every sample record is complete
	products, err := service.ListAll(ctx)
	assert.NoError(t, err)
	for _, product := range products {
		assert.NotEmpty(t, product.SchemaName)
		assert.NotNil(t, product.Description)
		assert.NotEmpty(t, product.Owner)
		assert.False(t, product.CreationDate.IsZero())
	}

	// newest creation date first
	for index := 1; index < len(products); index++ {
		assert.True(t, products[index-1].CreationDate.After(products[index].CreationDate))
	}

	// seeding is idempotent, a non-empty catalog is left alone
	assert.NoError(t, Seed(ctx, service, logr.Discard()))

	count, err = service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), count)
}

func TestSeedSkipsExistingData(t *testing.T) {
	db, dbFile := TempDatabase(t)
	defer func() {
		err := os.Remove(dbFile)
		if err != nil {
			t.Error("db file remove error:", err)
		}
	}()

	ctx := context.Background()
	service := NewService(NewGormStore(db))

	_, err := service.Create(ctx, models.DataProductCreate{
		SchemaName: "existing_schema",
		Owner:      "owner@company.com",
	})
	assert.NoError(t, err)

	assert.NoError(t, Seed(ctx, service, logr.Discard()))

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
