package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/billfold/billfold/internal/config"
	domainInvoice "github.com/billfold/billfold/internal/domain/invoice"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
)

type invoiceRepository struct {
	*client
}

func NewInvoiceRepository(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{
		client: newClient(httpClient, cfg, logger),
	}
}

// invoiceEnvelope wraps an invoice payload the way the API expects request
// bodies: {"invoice": {...}}.
type invoiceEnvelope struct {
	Invoice any `json:"invoice"`
}

func (r *invoiceRepository) Get(ctx context.Context, id int) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	if err := r.do(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d", id), nil, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) (*domainInvoice.ListResult, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.GetPage()))
	query.Set("per_page", strconv.Itoa(filter.GetPageSize()))
	if conditions := filter.Conditions(); len(conditions) > 0 {
		encoded, err := json.Marshal(conditions)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to encode list filters").
				Mark(ierr.ErrInternal)
		}
		query.Set("filter", string(encoded))
	}

	var result domainInvoice.ListResult
	if err := r.do(ctx, http.MethodGet, "/invoices", query, nil, &result); err != nil {
		return nil, err
	}

	r.logger.Debugw("listed invoices",
		"page", result.Pagination.Page,
		"total_pages", result.Pagination.TotalPages,
		"count", len(result.Invoices))
	return &result, nil
}

func (r *invoiceRepository) Create(ctx context.Context, payload *domainInvoice.Payload) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	if err := r.do(ctx, http.MethodPost, "/invoices", nil, invoiceEnvelope{Invoice: payload}, &inv); err != nil {
		return nil, err
	}

	r.logger.Infow("created invoice", "invoice_id", inv.ID, "finalized", inv.Finalized)
	return &inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, id int, payload *domainInvoice.Payload) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	if err := r.do(ctx, http.MethodPut, fmt.Sprintf("/invoices/%d", id), nil, invoiceEnvelope{Invoice: payload}, &inv); err != nil {
		return nil, err
	}

	r.logger.Infow("updated invoice", "invoice_id", id)
	return &inv, nil
}

func (r *invoiceRepository) Patch(ctx context.Context, id int, patch *domainInvoice.Patch) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	if err := r.do(ctx, http.MethodPut, fmt.Sprintf("/invoices/%d", id), nil, invoiceEnvelope{Invoice: patch}, &inv); err != nil {
		return nil, err
	}

	r.logger.Infow("patched invoice", "invoice_id", id)
	return &inv, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id int) error {
	if err := r.do(ctx, http.MethodDelete, fmt.Sprintf("/invoices/%d", id), nil, nil, nil); err != nil {
		return err
	}

	r.logger.Infow("deleted invoice", "invoice_id", id)
	return nil
}
