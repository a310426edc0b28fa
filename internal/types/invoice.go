package types

import (
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus is the lifecycle state an invoice can be filtered by.
// The API stores the state as two booleans (finalized, paid); the status
// values here are the user-facing projection of those flags.
type InvoiceStatus string

const (
	// InvoiceStatusDraft is an editable invoice not yet finalized
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusFinalized is an immutable, billable invoice
	InvoiceStatusFinalized InvoiceStatus = "finalized"
	// InvoiceStatusPaid is a finalized invoice that has been paid
	InvoiceStatusPaid InvoiceStatus = "paid"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusFinalized,
		InvoiceStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
