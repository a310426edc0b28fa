package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/billfold/billfold/internal/domain/invoice"
	"github.com/billfold/billfold/internal/domain/product"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
)

// InMemoryInvoiceStore implements invoice.Repository with the same payload
// semantics as the real API: line attributes without an id create lines,
// with an id update them, and _destroy entries remove them.
type InMemoryInvoiceStore struct {
	mu         sync.RWMutex
	invoices   map[int]*invoice.Invoice
	nextID     int
	nextLineID int
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices:   make(map[int]*invoice.Invoice),
		nextID:     1,
		nextLineID: 1,
	}
}

func (s *InMemoryInvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make(map[int]*invoice.Invoice)
	s.nextID = 1
	s.nextLineID = 1
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id int) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ierr.NewError(fmt.Sprintf("invoice %d not found", id)).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) (*invoice.ListResult, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := make([]*invoice.Invoice, 0)
	for _, inv := range s.invoices {
		if matchesConditions(inv, filter.Conditions()) {
			matching = append(matching, copyInvoice(inv))
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].ID < matching[j].ID })

	page := filter.GetPage()
	pageSize := filter.GetPageSize()
	totalPages := (len(matching) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > len(matching) {
		start = len(matching)
	}
	end := start + pageSize
	if end > len(matching) {
		end = len(matching)
	}

	return &invoice.ListResult{
		Invoices: matching[start:end],
		Pagination: types.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalCount: len(matching),
		},
	}, nil
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, payload *invoice.Payload) (*invoice.Invoice, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv := &invoice.Invoice{
		ID:        s.nextID,
		Finalized: payload.Finalized,
		Paid:      payload.Paid,
		Date:      payload.Date,
		Deadline:  payload.Deadline,
	}
	s.nextID++
	if payload.CustomerID != nil {
		inv.CustomerID = *payload.CustomerID
	}

	s.applyLineAttributes(inv, payload.LineAttributes)
	s.recomputeTotals(inv)
	s.invoices[inv.ID] = inv
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, id int, payload *invoice.Payload) (*invoice.Invoice, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ierr.NewError(fmt.Sprintf("invoice %d not found", id)).
			Mark(ierr.ErrNotFound)
	}

	inv.Finalized = payload.Finalized
	inv.Paid = payload.Paid
	inv.Date = payload.Date
	inv.Deadline = payload.Deadline
	if payload.CustomerID != nil {
		inv.CustomerID = *payload.CustomerID
	}

	s.applyLineAttributes(inv, payload.LineAttributes)
	s.recomputeTotals(inv)
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) Patch(ctx context.Context, id int, patch *invoice.Patch) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ierr.NewError(fmt.Sprintf("invoice %d not found", id)).
			Mark(ierr.ErrNotFound)
	}

	if patch.Finalized != nil {
		inv.Finalized = *patch.Finalized
	}
	if patch.Paid != nil {
		inv.Paid = *patch.Paid
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[id]; !ok {
		return ierr.NewError(fmt.Sprintf("invoice %d not found", id)).
			Mark(ierr.ErrNotFound)
	}
	delete(s.invoices, id)
	return nil
}

// applyLineAttributes mutates the stored lines the way the API applies
// invoice_lines_attributes.
func (s *InMemoryInvoiceStore) applyLineAttributes(inv *invoice.Invoice, attributes []invoice.LineAttributes) {
	for _, attrs := range attributes {
		switch {
		case attrs.Destroy:
			if attrs.ID == nil {
				continue
			}
			for i, line := range inv.Lines {
				if line.ID == *attrs.ID {
					inv.Lines = append(inv.Lines[:i], inv.Lines[i+1:]...)
					break
				}
			}
		case attrs.ID != nil:
			for _, line := range inv.Lines {
				if line.ID == *attrs.ID {
					line.ProductID = attrs.ProductID
					line.Quantity = attrs.Quantity
					line.Label = attrs.Label
					line.Unit = attrs.Unit
					line.VATRate = attrs.VATRate
					line.Price = priceString(attrs.Price)
					line.Tax = attrs.Tax
					line.Product = lineProduct(attrs)
					break
				}
			}
		default:
			inv.Lines = append(inv.Lines, &invoice.Line{
				ID:        s.nextLineID,
				InvoiceID: inv.ID,
				ProductID: attrs.ProductID,
				Quantity:  attrs.Quantity,
				Label:     attrs.Label,
				Unit:      attrs.Unit,
				VATRate:   attrs.VATRate,
				Price:     priceString(attrs.Price),
				Tax:       attrs.Tax,
				Product:   lineProduct(attrs),
			})
			s.nextLineID++
		}
	}
}

func (s *InMemoryInvoiceStore) recomputeTotals(inv *invoice.Invoice) {
	total := decimal.Zero
	tax := decimal.Zero
	for _, line := range inv.Lines {
		price, err := decimal.NewFromString(line.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		if lineTax, err := decimal.NewFromString(line.Tax); err == nil {
			tax = tax.Add(lineTax)
		}
	}
	inv.Total = total.StringFixed(2)
	inv.Tax = tax.StringFixed(2)
}

// lineProduct rebuilds the nested product the API serves inside each
// invoice line, so a stored invoice can be loaded back into a form.
func lineProduct(attrs invoice.LineAttributes) product.Product {
	p := product.Product{
		ID:        attrs.ProductID,
		Label:     attrs.Label,
		Unit:      attrs.Unit,
		VATRate:   attrs.VATRate,
		UnitPrice: priceString(attrs.Price),
	}
	price, err := decimal.NewFromString(p.UnitPrice)
	if err != nil {
		return p
	}
	rate, err := decimal.NewFromString(p.VATRate)
	if err != nil {
		return p
	}
	p.UnitTax = price.Mul(rate).Div(decimal.NewFromInt(100)).String()
	return p
}

// priceString renders the asymmetric price attribute (string on active
// lines, number on destroy entries) back into the API's storage form.
func priceString(price any) string {
	switch v := price.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func matchesConditions(inv *invoice.Invoice, conditions []types.FilterCondition) bool {
	for _, cond := range conditions {
		switch cond.Field {
		case "paid":
			if want, ok := cond.Value.(bool); !ok || inv.Paid != want {
				return false
			}
		case "finalized":
			if want, ok := cond.Value.(bool); !ok || inv.Finalized != want {
				return false
			}
		case "customer.last_name":
			want, ok := cond.Value.(string)
			if !ok || inv.Customer == nil || inv.Customer.LastName != want {
				return false
			}
		}
	}
	return true
}

// copyInvoice returns a deep copy via JSON round-trip so callers cannot
// mutate stored state.
func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	data, err := json.Marshal(inv)
	if err != nil {
		return nil
	}
	var out invoice.Invoice
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}
