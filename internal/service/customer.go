package service

import (
	"context"
	"strings"

	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/logger"
)

type CustomerService interface {
	// SearchCustomers looks up customers by name. An empty query returns no
	// results without hitting the API.
	SearchCustomers(ctx context.Context, query string) ([]*customer.Customer, error)
}

type customerService struct {
	logger       *logger.Logger
	customerRepo customer.Repository
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		logger:       params.Logger,
		customerRepo: params.CustomerRepo,
	}
}

func (s *customerService) SearchCustomers(ctx context.Context, query string) ([]*customer.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*customer.Customer{}, nil
	}
	return s.customerRepo.Search(ctx, query)
}
