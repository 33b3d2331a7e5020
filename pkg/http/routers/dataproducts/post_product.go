package dataproducts

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/database/models"
	"github.com/dataproducts-io/catalog/pkg/http/routers"
)

func postDataProduct(ctx context.Context, service *catalog.Service, data *RequestPostDataProduct) (*ResponseDataProduct, error) {
	product, err := service.Create(ctx, models.DataProductCreate{
		SchemaName:   data.SchemaName,
		Description:  data.Description,
		Owner:        data.Owner,
		CreationDate: data.CreationDate,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrSchemaNameExists) {
			return nil, routers.NewAPIError(http.StatusConflict, 40901, err)
		}
		return nil, fmt.Errorf("error creating data product %s: %w", data.SchemaName, err)
	}

	return newResponseDataProduct(product), nil
}
