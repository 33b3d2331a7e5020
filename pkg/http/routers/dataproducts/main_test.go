package dataproducts

import (
	"os"
	"testing"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/database/migrations"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TempDatabase(t *testing.T) (*gorm.DB, string) {
	dbFile, err := os.CreateTemp("", "catalog-*.db")
	assert.NoError(t, err)
	assert.NoError(t, dbFile.Close())

	db, err := gorm.Open(sqlite.Open(dbFile.Name()), &gorm.Config{
		DisableNestedTransaction: true,
		TranslateError:           true,
	})
	assert.NoError(t, err)
	assert.NoError(t, migrations.RunMigrations(db))

	return db, dbFile.Name()
}

func TempService(t *testing.T) (*catalog.Service, string) {
	db, dbFile := TempDatabase(t)
	return catalog.NewService(catalog.NewGormStore(db)), dbFile
}
