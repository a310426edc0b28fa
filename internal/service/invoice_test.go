package service

import (
	"testing"

	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/invoice"
	"github.com/billfold/billfold/internal/domain/product"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/testutil"
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Clock:        s.GetClock(),
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		CustomerRepo: s.GetStores().CustomerRepo,
		ProductRepo:  s.GetStores().ProductRepo,
	})
}

func (s *InvoiceServiceSuite) customer() *customer.Customer {
	return &customer.Customer{ID: 1, FirstName: "Jean", LastName: "Dupont"}
}

func (s *InvoiceServiceSuite) product(id int, price, vatRate, unitTax string) product.Product {
	return product.Product{
		ID:        id,
		Label:     "Product",
		Unit:      "piece",
		VATRate:   vatRate,
		UnitPrice: price,
		UnitTax:   unitTax,
	}
}

func (s *InvoiceServiceSuite) newForm() *invoice.Form {
	form := invoice.NewForm()
	form.SelectCustomer(s.customer())
	form.AddProduct(s.product(1, "100", "20", "20"), 2)
	form.DueDate = "2024-12-31"
	return form
}

func (s *InvoiceServiceSuite) TestSaveDraftCreatesInvoice() {
	inv, err := s.service.SaveDraft(s.GetContext(), s.newForm(), nil)
	s.NoError(err)
	s.NotZero(inv.ID)
	s.False(inv.Finalized)
	s.False(inv.Paid)
	s.Equal(1, inv.CustomerID)
	s.Equal("2024-12-31", inv.Deadline)
	// Issue date comes from the injected clock.
	s.Equal("2024-12-01", inv.Date)

	s.Len(inv.Lines, 1)
	s.Equal("40.00", inv.Lines[0].Tax)
	s.Equal("100", inv.Lines[0].Price)
	s.Equal(2, inv.Lines[0].Quantity)
}

func (s *InvoiceServiceSuite) TestSubmitFinalizes() {
	inv, err := s.service.Submit(s.GetContext(), s.newForm(), nil)
	s.NoError(err)
	s.True(inv.Finalized)
	s.False(inv.Paid)
	s.Equal(types.InvoiceStatusFinalized, inv.Status())
}

func (s *InvoiceServiceSuite) TestSubmitRequiresCustomer() {
	form := s.newForm()
	form.Customer = nil

	inv, err := s.service.Submit(s.GetContext(), form, nil)
	s.Error(err)
	s.Nil(inv)
	s.True(ierr.IsInvalidOperation(err))
	s.ErrorIs(err, invoice.ErrNoCustomer)
}

func (s *InvoiceServiceSuite) TestSubmitRequiresLines() {
	form := invoice.NewForm()
	form.SelectCustomer(s.customer())

	inv, err := s.service.Submit(s.GetContext(), form, nil)
	s.Error(err)
	s.Nil(inv)
	s.True(ierr.IsInvalidOperation(err))
	s.ErrorIs(err, invoice.ErrNoLines)
}

func (s *InvoiceServiceSuite) TestSubmitRejectsMalformedPrice() {
	form := invoice.NewForm()
	form.SelectCustomer(s.customer())
	form.AddProduct(s.product(9, "not-a-price", "20", "20"), 1)

	inv, err := s.service.SaveDraft(s.GetContext(), form, nil)
	s.Error(err)
	s.Nil(inv)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestUpdateAppliesDeletions() {
	form := s.newForm()
	form.AddProduct(s.product(2, "50", "10", "5"), 1)

	created, err := s.service.SaveDraft(s.GetContext(), form, nil)
	s.NoError(err)
	s.Len(created.Lines, 2)

	edit := invoice.NewFormFromInvoice(created)
	edit.Customer = s.customer()
	edit.RemoveLine(0)
	s.Len(edit.DeletedLines(), 1)

	updated, err := s.service.SaveDraft(s.GetContext(), edit, lo.ToPtr(created.ID))
	s.NoError(err)
	s.Len(updated.Lines, 1)
	s.Equal(2, updated.Lines[0].ProductID)

	// The destroy log is consumed by a successful submit.
	s.Empty(edit.DeletedLines())
}

func (s *InvoiceServiceSuite) TestUpdateRejectsFinalizedInvoice() {
	created, err := s.service.Submit(s.GetContext(), s.newForm(), nil)
	s.NoError(err)

	edit := invoice.NewFormFromInvoice(created)
	edit.Customer = s.customer()

	_, err = s.service.SaveDraft(s.GetContext(), edit, lo.ToPtr(created.ID))
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.ErrorIs(err, invoice.ErrNotDraft)
}

func (s *InvoiceServiceSuite) TestPayRejectsPaidInvoice() {
	created, err := s.service.Submit(s.GetContext(), s.newForm(), nil)
	s.NoError(err)

	_, err = s.service.PayInvoice(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.PayInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.ErrorIs(err, invoice.ErrAlreadyPaid)
}

func (s *InvoiceServiceSuite) TestFinalizeAndPay() {
	created, err := s.service.SaveDraft(s.GetContext(), s.newForm(), nil)
	s.NoError(err)
	s.True(created.IsDraft())

	finalized, err := s.service.FinalizeInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	s.True(finalized.Finalized)
	s.False(finalized.Paid)
	s.Equal("2024-12-31", finalized.Deadline)

	paid, err := s.service.PayInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	s.True(paid.Paid)
	s.Equal(types.InvoiceStatusPaid, paid.Status())
}

func (s *InvoiceServiceSuite) TestFinalizeMissingInvoice() {
	_, err := s.service.FinalizeInvoice(s.GetContext(), 999)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestDeleteInvoice() {
	created, err := s.service.SaveDraft(s.GetContext(), s.newForm(), nil)
	s.NoError(err)

	s.NoError(s.service.DeleteInvoice(s.GetContext(), created.ID))

	_, err = s.service.GetInvoice(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestListInvoicesByStatus() {
	_, err := s.service.SaveDraft(s.GetContext(), s.newForm(), nil)
	s.NoError(err)
	_, err = s.service.Submit(s.GetContext(), s.newForm(), nil)
	s.NoError(err)

	filter := types.NewInvoiceFilter().WithStatus(types.InvoiceStatusDraft)
	result, err := s.service.ListInvoices(s.GetContext(), filter)
	s.NoError(err)
	s.Len(result.Invoices, 1)
	s.True(result.Invoices[0].IsDraft())
	s.Equal(1, result.Pagination.TotalCount)
	s.False(result.Pagination.HasNextPage())
}

func (s *InvoiceServiceSuite) TestListInvoicesPagination() {
	for i := 0; i < 3; i++ {
		_, err := s.service.SaveDraft(s.GetContext(), s.newForm(), nil)
		s.NoError(err)
	}

	result, err := s.service.ListInvoices(s.GetContext(), &types.InvoiceFilter{Page: 1, PageSize: 2})
	s.NoError(err)
	s.Len(result.Invoices, 2)
	s.Equal(3, result.Pagination.TotalCount)
	s.Equal(2, result.Pagination.TotalPages)
	s.True(result.Pagination.HasNextPage())

	second, err := s.service.ListInvoices(s.GetContext(), &types.InvoiceFilter{Page: 2, PageSize: 2})
	s.NoError(err)
	s.Len(second.Invoices, 1)
	s.False(second.Pagination.HasNextPage())
}

func (s *InvoiceServiceSuite) TestListInvoicesRejectsInvalidStatus() {
	_, err := s.service.ListInvoices(s.GetContext(), &types.InvoiceFilter{
		Statuses: []types.InvoiceStatus{types.InvoiceStatus("overdue")},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestListInvoicesNilFilterDefaults() {
	result, err := s.service.ListInvoices(s.GetContext(), nil)
	s.NoError(err)
	s.Empty(result.Invoices)
	s.Equal(types.FILTER_DEFAULT_PAGE_SIZE, result.Pagination.PageSize)
}

func (s *InvoiceServiceSuite) TestPreviewTotals() {
	form := s.newForm()
	form.AddProduct(s.product(2, "50", "10", "5"), 1)

	totals, err := s.service.PreviewTotals(form)
	s.NoError(err)
	s.Equal(invoice.Totals{Subtotal: "250.00", Tax: "45.00", Total: "295.00"}, totals)
}

func (s *InvoiceServiceSuite) TestPreviewTotalsMalformed() {
	form := invoice.NewForm()
	form.AddProduct(s.product(1, "100", "20", "bad"), 1)

	_, err := s.service.PreviewTotals(form)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
