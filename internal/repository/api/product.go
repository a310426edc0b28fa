package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/billfold/billfold/internal/config"
	domainProduct "github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
)

type productRepository struct {
	*client
}

func NewProductRepository(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) domainProduct.Repository {
	return &productRepository{
		client: newClient(httpClient, cfg, logger),
	}
}

func (r *productRepository) Search(ctx context.Context, searchQuery string) ([]*domainProduct.Product, error) {
	query := url.Values{}
	query.Set("query", searchQuery)

	var result struct {
		Products []*domainProduct.Product `json:"products"`
	}
	if err := r.do(ctx, http.MethodGet, "/search/products", query, nil, &result); err != nil {
		return nil, err
	}
	return result.Products, nil
}
