package service

import (
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/invoice"
	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
)

// ServiceParams holds the dependencies shared by the services.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Clock  types.Clock

	InvoiceRepo  invoice.Repository
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
}
