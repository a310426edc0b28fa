package service

import (
	"context"

	"github.com/billfold/billfold/internal/domain/invoice"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
)

type InvoiceService interface {
	GetInvoice(ctx context.Context, id int) (*invoice.Invoice, error)
	ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*invoice.ListResult, error)

	// SaveDraft creates or updates the invoice as an editable draft.
	SaveDraft(ctx context.Context, form *invoice.Form, invoiceID *int) (*invoice.Invoice, error)
	// Submit creates or updates the invoice and finalizes it in one call.
	Submit(ctx context.Context, form *invoice.Form, invoiceID *int) (*invoice.Invoice, error)

	FinalizeInvoice(ctx context.Context, id int) (*invoice.Invoice, error)
	PayInvoice(ctx context.Context, id int) (*invoice.Invoice, error)
	DeleteInvoice(ctx context.Context, id int) error

	// PreviewTotals computes the live display totals for an in-progress form.
	PreviewTotals(form *invoice.Form) (invoice.Totals, error)
}

type invoiceService struct {
	logger      *logger.Logger
	clock       types.Clock
	invoiceRepo invoice.Repository
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		logger:      params.Logger,
		clock:       params.Clock,
		invoiceRepo: params.InvoiceRepo,
	}
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int) (*invoice.Invoice, error) {
	return s.invoiceRepo.Get(ctx, id)
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*invoice.ListResult, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.invoiceRepo.List(ctx, filter)
}

func (s *invoiceService) SaveDraft(ctx context.Context, form *invoice.Form, invoiceID *int) (*invoice.Invoice, error) {
	return s.submit(ctx, form, invoiceID, false)
}

func (s *invoiceService) Submit(ctx context.Context, form *invoice.Form, invoiceID *int) (*invoice.Invoice, error) {
	return s.submit(ctx, form, invoiceID, true)
}

// submit builds the payload from the form snapshot and hands it to the
// repository. The payload is fully built, destroy entries included, before
// any network call happens; a validation failure means nothing is sent.
//
// The builder itself does not reject incomplete forms, so the preconditions
// are enforced here: a customer must be selected and the form must carry at
// least one active line or pending destroy instruction.
func (s *invoiceService) submit(ctx context.Context, form *invoice.Form, invoiceID *int, finalized bool) (*invoice.Invoice, error) {
	if form.Customer == nil {
		return nil, ierr.WithError(invoice.ErrNoCustomer).
			WithHint("Select a customer before submitting the invoice").
			Mark(ierr.ErrInvalidOperation)
	}
	if form.IsEmpty() {
		return nil, ierr.WithError(invoice.ErrNoLines).
			WithHint("Add at least one product before submitting the invoice").
			Mark(ierr.ErrInvalidOperation)
	}

	if invoiceID != nil {
		existing, err := s.invoiceRepo.Get(ctx, *invoiceID)
		if err != nil {
			return nil, err
		}
		if !existing.IsDraft() {
			return nil, ierr.WithError(invoice.ErrNotDraft).
				WithHintf("Invoice %d is finalized and can no longer be edited", *invoiceID).
				Mark(ierr.ErrInvalidOperation)
		}
	}

	payload, err := invoice.BuildPayload(form, form.DeletedLines(), invoice.PayloadOptions{
		Finalized: finalized,
		InvoiceID: invoiceID,
	}, s.clock.Now())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invoice form contains invalid line items").
			Mark(ierr.ErrValidation)
	}

	var result *invoice.Invoice
	if invoiceID != nil {
		result, err = s.invoiceRepo.Update(ctx, *invoiceID, payload)
	} else {
		result, err = s.invoiceRepo.Create(ctx, payload)
	}
	if err != nil {
		return nil, err
	}

	// The destroy log has been consumed by the server; a subsequent submit
	// of the same form must not replay it.
	form.ClearDeletedLines()

	s.logger.Infow("submitted invoice form",
		"invoice_id", result.ID,
		"finalized", finalized,
		"lines", len(payload.LineAttributes))
	return result, nil
}

func (s *invoiceService) FinalizeInvoice(ctx context.Context, id int) (*invoice.Invoice, error) {
	return s.invoiceRepo.Patch(ctx, id, &invoice.Patch{
		ID:        id,
		Finalized: lo.ToPtr(true),
	})
}

func (s *invoiceService) PayInvoice(ctx context.Context, id int) (*invoice.Invoice, error) {
	existing, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Paid {
		return nil, ierr.WithError(invoice.ErrAlreadyPaid).
			WithHintf("Invoice %d has already been paid", id).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.invoiceRepo.Patch(ctx, id, &invoice.Patch{
		ID:   id,
		Paid: lo.ToPtr(true),
	})
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int) error {
	return s.invoiceRepo.Delete(ctx, id)
}

func (s *invoiceService) PreviewTotals(form *invoice.Form) (invoice.Totals, error) {
	totals, err := invoice.ComputeTotals(form.Lines)
	if err != nil {
		return invoice.Totals{}, ierr.WithError(err).
			WithHint("Invoice form contains invalid line items").
			Mark(ierr.ErrValidation)
	}
	return totals, nil
}
