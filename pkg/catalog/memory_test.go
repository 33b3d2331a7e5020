package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/dataproducts-io/catalog/pkg/database/models"
	"github.com/stretchr/testify/assert"
)

// The memory store has to satisfy the same contract the gorm store does, so
// consumers can test against the service without a database.
func TestMemoryStoreContract(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	products, err := store.GetAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, products)

	product, err := store.GetByID(ctx, 0)
	assert.NoError(t, err)
	assert.Nil(t, product)

	product, err = store.GetBySchemaName(ctx, "")
	assert.NoError(t, err)
	assert.Nil(t, product)

	oldDate := time.Now().UTC().AddDate(0, 0, -2)
	recentDate := time.Now().UTC().AddDate(0, 0, -1)

	oldProduct, err := store.Insert(ctx, &models.DataProduct{
		SchemaName:   "sales_analytics",
		Owner:        "owner@company.com",
		CreationDate: oldDate,
	})
	assert.NoError(t, err)
	assert.NotZero(t, oldProduct.ID)
	assert.True(t, oldProduct.CreatedAt.Equal(oldProduct.UpdatedAt))

	recentProduct, err := store.Insert(ctx, &models.DataProduct{
		SchemaName:   "SALES_reports",
		Owner:        "owner@company.com",
		CreationDate: recentDate,
	})
	assert.NoError(t, err)

	// same unique constraint the database index enforces
	_, err = store.Insert(ctx, &models.DataProduct{
		SchemaName:   "sales_analytics",
		Owner:        "another@company.com",
		CreationDate: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrSchemaNameExists)

	// creation date descending
	products, err = store.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, recentProduct.ID, products[0].ID)
	assert.Equal(t, oldProduct.ID, products[1].ID)

	// case-insensitive substring search, same ordering
	products, err = store.SearchBySchemaName(ctx, "sales")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "SALES_reports", products[0].SchemaName)
	assert.Equal(t, "sales_analytics", products[1].SchemaName)

	// partial update keeps the rest
	newOwner := "new-owner@company.com"
	product, err = store.ApplyUpdate(ctx, oldProduct.ID, models.DataProductUpdate{
		Owner: &newOwner,
	})
	assert.NoError(t, err)
	assert.Equal(t, "sales_analytics", product.SchemaName)
	assert.Equal(t, "new-owner@company.com", product.Owner)
	assert.True(t, product.UpdatedAt.After(oldProduct.UpdatedAt))

	// renaming onto the other record is rejected
	takenName := "SALES_reports"
	_, err = store.ApplyUpdate(ctx, oldProduct.ID, models.DataProductUpdate{
		SchemaName: &takenName,
	})
	assert.ErrorIs(t, err, ErrSchemaNameExists)

	count, err := store.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	deleted, err := store.Delete(ctx, oldProduct.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, oldProduct.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	count, err = store.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// Stored records must not share description memory with callers in either
// direction, matching how a database round trip behaves.
func TestMemoryStoreDescriptionIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	description := "first"
	created, err := store.Insert(ctx, &models.DataProduct{
		SchemaName:   "sales_analytics",
		Description:  &description,
		Owner:        "owner@company.com",
		CreationDate: time.Now().UTC(),
	})
	assert.NoError(t, err)

	// mutating the caller's string after insert doesn't reach the store
	description = "scribbled"
	product, err := store.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "first", *product.Description)

	// same for the update request
	newDescription := "second"
	_, err = store.ApplyUpdate(ctx, created.ID, models.DataProductUpdate{
		Description: &newDescription,
	})
	assert.NoError(t, err)

	newDescription = "scribbled"
	product, err = store.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "second", *product.Description)

	// and returned records don't alias the store either
	*product.Description = "scribbled"
	stored, err := store.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "second", *stored.Description)
}

func TestServiceOnMemoryStore(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewMemoryStore())

	created, err := service.Create(ctx, models.DataProductCreate{
		SchemaName: "sales_analytics",
		Owner:      "john.doe@company.com",
	})
	assert.NoError(t, err)

	_, err = service.Create(ctx, models.DataProductCreate{
		SchemaName: "sales_analytics",
		Owner:      "another@company.com",
	})
	assert.ErrorIs(t, err, ErrSchemaNameExists)

	description := "updated"
	product, err := service.Update(ctx, created.ID, models.DataProductUpdate{
		Description: &description,
	})
	assert.NoError(t, err)
	assert.Equal(t, "updated", *product.Description)
	assert.Equal(t, "john.doe@company.com", product.Owner)

	deleted, err := service.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
