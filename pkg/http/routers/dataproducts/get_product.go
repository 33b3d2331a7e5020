package dataproducts

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/http/routers"
)

func getDataProduct(ctx context.Context, service *catalog.Service, id int64) (*ResponseDataProduct, error) {
	product, err := service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding data product %d: %w", id, err)
	}
	if product == nil {
		return nil, routers.NewAPIError(http.StatusNotFound, 40401, fmt.Errorf("data product not found"))
	}

	return newResponseDataProduct(product), nil
}
