package repository

import (
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/invoice"
	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	apiRepo "github.com/billfold/billfold/internal/repository/api"
)

func NewInvoiceRepository(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) invoice.Repository {
	return apiRepo.NewInvoiceRepository(httpClient, cfg, logger)
}

func NewCustomerRepository(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) customer.Repository {
	return apiRepo.NewCustomerRepository(httpClient, cfg, logger)
}

func NewProductRepository(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) product.Repository {
	return apiRepo.NewProductRepository(httpClient, cfg, logger)
}
