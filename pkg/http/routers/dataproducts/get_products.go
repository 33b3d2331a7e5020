package dataproducts

import (
	"context"
	"fmt"

	"github.com/dataproducts-io/catalog/pkg/catalog"
)

func getDataProducts(ctx context.Context, service *catalog.Service, term string) (*ResponseGetDataProducts, error) {
	products, err := service.SearchBySchemaName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error listing data products: %w", err)
	}

	list := make(ResponseGetDataProducts, len(products))
	for index := range products {
		list[index] = *newResponseDataProduct(&products[index])
	}

	return &list, nil
}
