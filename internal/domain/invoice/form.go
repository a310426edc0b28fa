package invoice

import (
	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/product"
)

// FormLine is one active product-and-quantity entry on an invoice form.
// ExistingLineID is set when the line is already persisted server-side, in
// which case submitting the form updates that line instead of creating one.
type FormLine struct {
	Product        product.Product
	Quantity       int
	ExistingLineID *int
}

// DeletedLine captures enough of a removed, previously persisted line to emit
// a destroy instruction on the next submit. Lines that were never persisted
// simply vanish from the form and leave no record.
type DeletedLine struct {
	LineID    int
	ProductID int
	Label     string
	Unit      string
	VATRate   string
	UnitPrice string
}

// Form is the editable snapshot of an invoice: selected customer, ordered
// line items and due date. It also owns the deletion log accumulated while
// the user removes persisted lines.
type Form struct {
	Customer *customer.Customer
	Lines    []FormLine
	DueDate  string

	deleted []DeletedLine
}

// NewForm returns an empty form for a brand-new invoice.
func NewForm() *Form {
	return &Form{}
}

// NewFormFromInvoice loads an existing invoice for editing. Every loaded line
// carries its server line id so edits become updates rather than creations.
func NewFormFromInvoice(inv *Invoice) *Form {
	form := &Form{
		Customer: inv.Customer,
		DueDate:  inv.Deadline,
	}
	for _, line := range inv.Lines {
		lineID := line.ID
		form.Lines = append(form.Lines, FormLine{
			Product:        line.Product,
			Quantity:       line.Quantity,
			ExistingLineID: &lineID,
		})
	}
	return form
}

// SelectCustomer sets the invoice customer.
func (f *Form) SelectCustomer(c *customer.Customer) {
	f.Customer = c
}

// AddProduct appends a line for the given product. A quantity below 1 is
// clamped to 1; active lines always carry a positive quantity.
func (f *Form) AddProduct(p product.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	f.Lines = append(f.Lines, FormLine{Product: p, Quantity: quantity})
}

// SetQuantity updates the quantity of the line at the given index.
func (f *Form) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(f.Lines) {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	f.Lines[index].Quantity = quantity
}

// RemoveLine removes the line at the given index. If the line was already
// persisted server-side its destroy instruction is recorded in the deletion
// log, in removal order.
func (f *Form) RemoveLine(index int) {
	if index < 0 || index >= len(f.Lines) {
		return
	}
	line := f.Lines[index]
	if line.ExistingLineID != nil {
		f.deleted = append(f.deleted, DeletedLine{
			LineID:    *line.ExistingLineID,
			ProductID: line.Product.ID,
			Label:     line.Product.Label,
			Unit:      line.Product.Unit,
			VATRate:   line.Product.VATRate,
			UnitPrice: line.Product.UnitPrice,
		})
	}
	f.Lines = append(f.Lines[:index], f.Lines[index+1:]...)
}

// DeletedLines returns the destroy log in the order lines were removed.
func (f *Form) DeletedLines() []DeletedLine {
	return f.deleted
}

// ClearDeletedLines resets the destroy log, typically after a successful
// submit.
func (f *Form) ClearDeletedLines() {
	f.deleted = nil
}

// IsEmpty reports whether the form has neither active lines nor pending
// destroy instructions.
func (f *Form) IsEmpty() bool {
	return len(f.Lines) == 0 && len(f.deleted) == 0
}
