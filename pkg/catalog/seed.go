package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dataproducts-io/catalog/pkg/database/models"
	"github.com/go-logr/logr"
)

func strPtr(s string) *string {
	return &s
}

func sampleDataProducts() []models.DataProductCreate {
	daysAgo := func(days int) *time.Time {
		t := time.Now().UTC().AddDate(0, 0, -days)
		return &t
	}

	return []models.DataProductCreate{
		{
			SchemaName:   "customer_analytics",
			Description:  strPtr("Customer behavior and segmentation analysis data"),
			Owner:        "analytics-team@company.com",
			CreationDate: daysAgo(30),
		},
		{
			SchemaName:   "sales_performance",
			Description:  strPtr("Sales metrics, targets, and performance tracking"),
			Owner:        "sales-ops@company.com",
			CreationDate: daysAgo(25),
		},
		{
			SchemaName:   "marketing_campaigns",
			Description:  strPtr("Campaign performance, attribution, and ROI analysis"),
			Owner:        "marketing-team@company.com",
			CreationDate: daysAgo(20),
		},
		{
			SchemaName:   "product_usage",
			Description:  strPtr("Product feature usage, user engagement metrics"),
			Owner:        "product-team@company.com",
			CreationDate: daysAgo(15),
		},
		{
			SchemaName:   "financial_reporting",
			Description:  strPtr("Revenue, costs, and financial KPI tracking"),
			Owner:        "finance-team@company.com",
			CreationDate: daysAgo(10),
		},
		{
			SchemaName:   "operational_metrics",
			Description:  strPtr("System performance, uptime, and operational data"),
			Owner:        "devops-team@company.com",
			CreationDate: daysAgo(5),
		},
	}
}

// Seed inserts sample data products when the catalog is empty. A record that
// fails to insert is logged and skipped, seeding never fails the startup.
func Seed(ctx context.Context, service *Service, log logr.Logger) error {
	count, err := service.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting data products before seeding: %w", err)
	}
	if count > 0 {
		log.Info("catalog already contains data products, skipping seed", "count", count)
		return nil
	}

	seeded := 0
	for _, request := range sampleDataProducts() {
		if _, err := service.Create(ctx, request); err != nil {
			log.Error(err, "error seeding sample data product", "schemaName", request.SchemaName)
			continue
		}
		seeded++
	}

	log.Info("seeded sample data products", "count", seeded)
	return nil
}
