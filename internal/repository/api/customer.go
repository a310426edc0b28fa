package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/billfold/billfold/internal/config"
	domainCustomer "github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
)

type customerRepository struct {
	*client
}

func NewCustomerRepository(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) domainCustomer.Repository {
	return &customerRepository{
		client: newClient(httpClient, cfg, logger),
	}
}

func (r *customerRepository) Search(ctx context.Context, searchQuery string) ([]*domainCustomer.Customer, error) {
	query := url.Values{}
	query.Set("query", searchQuery)

	var result struct {
		Customers []*domainCustomer.Customer `json:"customers"`
	}
	if err := r.do(ctx, http.MethodGet, "/search/customers", query, nil, &result); err != nil {
		return nil, err
	}
	return result.Customers, nil
}
