package dataproducts

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/http/routers"
)

func deleteDataProduct(ctx context.Context, service *catalog.Service, id int64) error {
	deleted, err := service.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting data product %d: %w", id, err)
	}
	if !deleted {
		return routers.NewAPIError(http.StatusNotFound, 40401, fmt.Errorf("data product not found"))
	}

	return nil
}
