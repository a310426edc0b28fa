package invoice

import (
	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/types"
)

// Invoice is the server-side representation returned by the invoicing API on
// get and list operations.
type Invoice struct {
	ID         int                `json:"id"`
	CustomerID int                `json:"customer_id"`
	Finalized  bool               `json:"finalized"`
	Paid       bool               `json:"paid"`
	Date       string             `json:"date"`
	Deadline   string             `json:"deadline"`
	Total      string             `json:"total"`
	Tax        string             `json:"tax"`
	Customer   *customer.Customer `json:"customer,omitempty"`
	Lines      []*Line            `json:"invoice_lines,omitempty"`
}

// Line is a persisted invoice line item as returned by the API.
type Line struct {
	ID        int             `json:"id"`
	InvoiceID int             `json:"invoice_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Label     string          `json:"label"`
	Unit      string          `json:"unit"`
	VATRate   string          `json:"vat_rate"`
	Price     string          `json:"price"`
	Tax       string          `json:"tax"`
	Product   product.Product `json:"product"`
}

// Status projects the finalized/paid flags onto the user-facing status.
func (i *Invoice) Status() types.InvoiceStatus {
	switch {
	case i.Paid:
		return types.InvoiceStatusPaid
	case i.Finalized:
		return types.InvoiceStatusFinalized
	default:
		return types.InvoiceStatusDraft
	}
}

// IsDraft reports whether the invoice can still be edited.
func (i *Invoice) IsDraft() bool {
	return !i.Finalized
}

// ListResult is a page of invoices plus the pagination block the API
// returned with it.
type ListResult struct {
	Invoices   []*Invoice               `json:"invoices"`
	Pagination types.PaginationResponse `json:"pagination"`
}
