package dataproducts

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/http/routers"
)

func patchDataProduct(ctx context.Context, service *catalog.Service, id int64, data *RequestPatchDataProduct) (*ResponseDataProduct, error) {
	product, err := service.Update(ctx, id, data.updates())
	if err != nil {
		if errors.Is(err, catalog.ErrSchemaNameExists) {
			return nil, routers.NewAPIError(http.StatusConflict, 40901, err)
		}
		return nil, fmt.Errorf("error updating data product %d: %w", id, err)
	}
	if product == nil {
		return nil, routers.NewAPIError(http.StatusNotFound, 40401, fmt.Errorf("data product not found"))
	}

	return newResponseDataProduct(product), nil
}
