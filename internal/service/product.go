package service

import (
	"context"
	"strings"

	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/logger"
)

type ProductService interface {
	// SearchProducts looks up catalog products by label. An empty query
	// returns no results without hitting the API.
	SearchProducts(ctx context.Context, query string) ([]*product.Product, error)
}

type productService struct {
	logger      *logger.Logger
	productRepo product.Repository
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		logger:      params.Logger,
		productRepo: params.ProductRepo,
	}
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]*product.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*product.Product{}, nil
	}
	return s.productRepo.Search(ctx, query)
}
