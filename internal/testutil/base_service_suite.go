package testutil

import (
	"context"
	"time"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/invoice"
	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/logger"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	InvoiceRepo  invoice.Repository
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
}

// BaseServiceTestSuite provides common functionality for all service test
// suites: in-memory stores, a silent logger, a default configuration and a
// fixed clock.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	clock  *FixedClock
}

// SetupTest initializes fresh dependencies before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = logger.NewNopLogger()
	s.config = config.GetDefaultConfig()
	s.clock = NewFixedClock(time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC))
	s.stores = Stores{
		InvoiceRepo:  NewInMemoryInvoiceStore(),
		CustomerRepo: NewInMemoryCustomerStore(),
		ProductRepo:  NewInMemoryProductStore(),
	}
}

// TearDownTest cleans up after each test.
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

// ClearStores resets all the in-memory stores.
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.stores.ProductRepo.(*InMemoryProductStore).Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetClock() *FixedClock {
	return s.clock
}
