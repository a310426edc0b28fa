package invoice

import (
	"context"

	"github.com/billfold/billfold/internal/types"
)

// Patch is a partial invoice update, used for finalize and pay transitions
// which flip a single flag without resubmitting the whole payload.
type Patch struct {
	ID        int   `json:"id"`
	Finalized *bool `json:"finalized,omitempty"`
	Paid      *bool `json:"paid,omitempty"`
}

// Repository defines the interface for invoice operations against the
// remote API. The core never performs network calls itself; it hands a fully
// built payload to an implementation of this interface.
type Repository interface {
	// Get retrieves an invoice by ID
	Get(ctx context.Context, id int) (*Invoice, error)

	// List retrieves a page of invoices based on filter criteria
	List(ctx context.Context, filter *types.InvoiceFilter) (*ListResult, error)

	// Create creates a new invoice from a built payload
	Create(ctx context.Context, payload *Payload) (*Invoice, error)

	// Update replaces an existing invoice with a built payload
	Update(ctx context.Context, id int, payload *Payload) (*Invoice, error)

	// Patch applies a partial update, e.g. finalize or pay
	Patch(ctx context.Context, id int, patch *Patch) (*Invoice, error)

	// Delete removes an invoice
	Delete(ctx context.Context, id int) error
}
