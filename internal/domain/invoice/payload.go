package invoice

import (
	"encoding/json"
	"time"
)

// Payload is the wire-ready invoice representation the API accepts on create
// and update. Field names are the wire contract and must not change.
type Payload struct {
	ID             *int             `json:"id,omitempty"`
	CustomerID     *int             `json:"customer_id,omitempty"`
	Finalized      bool             `json:"finalized"`
	Paid           bool             `json:"paid"`
	Deadline       string           `json:"deadline"`
	Date           string           `json:"date"`
	LineAttributes []LineAttributes `json:"invoice_lines_attributes"`
}

// LineAttributes is one entry of invoice_lines_attributes. ID is present for
// update and destroy targets only; Destroy is present only on destroy
// entries.
//
// Price is a string on active lines and a bare number on destroy entries.
// The asymmetry is part of the server contract and is reproduced on purpose;
// do not unify the two representations without confirming the server accepts
// both forms.
type LineAttributes struct {
	ID        *int   `json:"id,omitempty"`
	Destroy   bool   `json:"_destroy,omitempty"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Label     string `json:"label"`
	Unit      string `json:"unit"`
	VATRate   string `json:"vat_rate"`
	Price     any    `json:"price"`
	Tax       string `json:"tax"`
}

// PayloadOptions carries the submission options that are not part of the
// form itself.
type PayloadOptions struct {
	// Finalized marks the invoice as billable; defaults to false (draft).
	Finalized bool
	// InvoiceID, when set, makes the payload an update of that invoice.
	InvoiceID *int
}

// BuildPayload derives the API-ready invoice payload from a form snapshot and
// the log of deleted persisted lines. It is a pure transform: given the same
// inputs and the same now, it yields the same payload.
//
// Active lines come first in form order, followed by destroy entries in
// removal order. The issue date is stamped from now; paid is always false at
// submission time since payment is a separate, later action.
//
// The builder does not enforce customer presence or a non-empty line list;
// those preconditions belong to the caller (see service.InvoiceService).
func BuildPayload(form *Form, deleted []DeletedLine, opts PayloadOptions, now time.Time) (*Payload, error) {
	lines := make([]LineAttributes, 0, len(form.Lines)+len(deleted))

	for _, line := range form.Lines {
		attrs, err := normalizeLine(line)
		if err != nil {
			return nil, err
		}
		lines = append(lines, attrs)
	}

	for _, del := range deleted {
		attrs, err := normalizeDeletedLine(del)
		if err != nil {
			return nil, err
		}
		lines = append(lines, attrs)
	}

	payload := &Payload{
		Finalized:      opts.Finalized,
		Paid:           false,
		Deadline:       form.DueDate,
		Date:           now.Format("2006-01-02"),
		LineAttributes: lines,
	}
	if form.Customer != nil {
		customerID := form.Customer.ID
		payload.CustomerID = &customerID
	}
	if opts.InvoiceID != nil {
		invoiceID := *opts.InvoiceID
		payload.ID = &invoiceID
	}
	return payload, nil
}

// normalizeLine turns one active form line into its outbound attributes.
// Price and VAT rate are re-emitted as plain numeric strings; only the tax
// figure is rounded, to exactly two decimal places.
func normalizeLine(line FormLine) (LineAttributes, error) {
	unitPrice, err := parseDecimal(line.Product.UnitPrice)
	if err != nil {
		return LineAttributes{}, NewValidationError(line.Product.ID, "unit_price", "must be a decimal string")
	}
	vatRate, err := parseDecimal(line.Product.VATRate)
	if err != nil {
		return LineAttributes{}, NewValidationError(line.Product.ID, "vat_rate", "must be a decimal string")
	}

	return LineAttributes{
		ID:        line.ExistingLineID,
		ProductID: line.Product.ID,
		Quantity:  line.Quantity,
		Label:     line.Product.Label,
		Unit:      line.Product.Unit,
		VATRate:   vatRate.String(),
		Price:     unitPrice.String(),
		Tax:       formatAmount(lineTax(unitPrice, vatRate, line.Quantity)),
	}, nil
}

// normalizeDeletedLine emits the destroy instruction for a removed persisted
// line: quantity zero and zero tax, whatever the line looked like in the UI.
func normalizeDeletedLine(del DeletedLine) (LineAttributes, error) {
	unitPrice, err := parseDecimal(del.UnitPrice)
	if err != nil {
		return LineAttributes{}, NewValidationError(del.ProductID, "unit_price", "must be a decimal string")
	}
	vatRate, err := parseDecimal(del.VATRate)
	if err != nil {
		return LineAttributes{}, NewValidationError(del.ProductID, "vat_rate", "must be a decimal string")
	}

	lineID := del.LineID
	return LineAttributes{
		ID:        &lineID,
		Destroy:   true,
		ProductID: del.ProductID,
		Quantity:  0,
		Label:     del.Label,
		Unit:      del.Unit,
		VATRate:   vatRate.String(),
		Price:     json.Number(unitPrice.String()),
		Tax:       "0.00",
	}, nil
}
