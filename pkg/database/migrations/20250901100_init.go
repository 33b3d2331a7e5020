package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func migration20250901100Init() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "20250901100_init",
		Migrate: func(tx *gorm.DB) error {
			type DataProduct struct {
				ID           int64     `gorm:"primaryKey;autoIncrement"`
				SchemaName   string    `gorm:"type:varchar(255);uniqueIndex:idx_data_products_schema_name;not null"`
				Description  *string   `gorm:"type:varchar(1000)"`
				Owner        string    `gorm:"type:varchar(255);not null"`
				CreationDate time.Time `gorm:"index:idx_data_products_creation_date;not null"`
				CreatedAt    time.Time `gorm:"not null"`
				UpdatedAt    time.Time `gorm:"not null"`
			}

			return tx.AutoMigrate(&DataProduct{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable("data_products")
		},
	}
}
