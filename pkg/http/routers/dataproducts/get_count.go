package dataproducts

import (
	"context"
	"fmt"

	"github.com/dataproducts-io/catalog/pkg/catalog"
)

func getDataProductCount(ctx context.Context, service *catalog.Service) (*ResponseDataProductCount, error) {
	count, err := service.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting data products: %w", err)
	}

	return &ResponseDataProductCount{Count: count}, nil
}
