package types

import (
	"github.com/samber/lo"
)

const (
	FILTER_DEFAULT_PAGE      = 1
	FILTER_DEFAULT_PAGE_SIZE = 10

	OperatorEq = "eq"
)

// FilterCondition is one predicate of the filter query parameter the
// invoicing API accepts on list endpoints, serialized as a JSON array of
// {field, operator, value} objects.
type FilterCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// InvoiceFilter describes which invoices to list: an optional customer
// last-name search plus any combination of status chips.
type InvoiceFilter struct {
	Page          int
	PageSize      int
	CustomerQuery string
	Statuses      []InvoiceStatus
}

// NewInvoiceFilter returns a filter with default pagination.
func NewInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		Page:     FILTER_DEFAULT_PAGE,
		PageSize: FILTER_DEFAULT_PAGE_SIZE,
	}
}

func (f *InvoiceFilter) Validate() error {
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetPage returns the requested page, defaulting to the first one.
func (f *InvoiceFilter) GetPage() int {
	if f == nil || f.Page < 1 {
		return FILTER_DEFAULT_PAGE
	}
	return f.Page
}

// GetPageSize returns the requested page size, defaulting when unset.
func (f *InvoiceFilter) GetPageSize() int {
	if f == nil || f.PageSize < 1 {
		return FILTER_DEFAULT_PAGE_SIZE
	}
	return f.PageSize
}

// Conditions expands the filter into the API's condition list. Status chips
// map onto the finalized/paid booleans: draft means not finalized, finalized
// and paid assert their respective flags.
func (f *InvoiceFilter) Conditions() []FilterCondition {
	conditions := make([]FilterCondition, 0)
	if f == nil {
		return conditions
	}

	if f.CustomerQuery != "" {
		conditions = append(conditions, FilterCondition{
			Field:    "customer.last_name",
			Operator: OperatorEq,
			Value:    f.CustomerQuery,
		})
	}

	statusConditions := map[InvoiceStatus]FilterCondition{
		InvoiceStatusPaid:      {Field: "paid", Operator: OperatorEq, Value: true},
		InvoiceStatusFinalized: {Field: "finalized", Operator: OperatorEq, Value: true},
		InvoiceStatusDraft:     {Field: "finalized", Operator: OperatorEq, Value: false},
	}

	for _, status := range f.Statuses {
		if cond, ok := statusConditions[status]; ok {
			conditions = append(conditions, cond)
		}
	}

	return conditions
}

// WithStatus returns a copy of the filter with the given status toggled,
// matching the chip behavior of the client UI.
func (f *InvoiceFilter) WithStatus(status InvoiceStatus) *InvoiceFilter {
	out := *f
	if lo.Contains(f.Statuses, status) {
		out.Statuses = lo.Without(f.Statuses, status)
	} else {
		out.Statuses = append(append([]InvoiceStatus{}, f.Statuses...), status)
	}
	return &out
}
