package service

import (
	"testing"

	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type SearchServiceSuite struct {
	testutil.BaseServiceTestSuite
	customers CustomerService
	products  ProductService
}

func TestSearchServices(t *testing.T) {
	suite.Run(t, new(SearchServiceSuite))
}

func (s *SearchServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Clock:        s.GetClock(),
		CustomerRepo: s.GetStores().CustomerRepo,
		ProductRepo:  s.GetStores().ProductRepo,
	}
	s.customers = NewCustomerService(params)
	s.products = NewProductService(params)

	s.GetStores().CustomerRepo.(*testutil.InMemoryCustomerStore).Add(
		&customer.Customer{ID: 1, FirstName: "Jean", LastName: "Dupont"})
	s.GetStores().CustomerRepo.(*testutil.InMemoryCustomerStore).Add(
		&customer.Customer{ID: 2, FirstName: "Marie", LastName: "Martin"})
	s.GetStores().ProductRepo.(*testutil.InMemoryProductStore).Add(
		&product.Product{ID: 1, Label: "Tesla Model S", UnitPrice: "100000"})
}

func (s *SearchServiceSuite) TestSearchCustomers() {
	found, err := s.customers.SearchCustomers(s.GetContext(), "dupont")
	s.NoError(err)
	s.Len(found, 1)
	s.Equal("Dupont", found[0].LastName)
}

func (s *SearchServiceSuite) TestSearchCustomersEmptyQuerySkipsLookup() {
	found, err := s.customers.SearchCustomers(s.GetContext(), "   ")
	s.NoError(err)
	s.Empty(found)
}

func (s *SearchServiceSuite) TestSearchProducts() {
	found, err := s.products.SearchProducts(s.GetContext(), "tesla")
	s.NoError(err)
	s.Len(found, 1)
	s.Equal("Tesla Model S", found[0].Label)
}

func (s *SearchServiceSuite) TestSearchProductsEmptyQuerySkipsLookup() {
	found, err := s.products.SearchProducts(s.GetContext(), "")
	s.NoError(err)
	s.Empty(found)
}
