package invoice

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCustomer is returned when a form is submitted without a selected customer
	ErrNoCustomer = errors.New("no customer selected")

	// ErrNoLines is returned when a form is submitted without any line items
	ErrNoLines = errors.New("invoice has no line items")

	// ErrNotDraft is returned when an edit is attempted on a finalized invoice
	ErrNotDraft = errors.New("invoice is not a draft")

	// ErrAlreadyPaid indicates that the invoice has already been paid
	ErrAlreadyPaid = errors.New("invoice already paid")
)

// ValidationError represents an error that occurs while normalizing a form
// line into its outbound payload attributes. It identifies the offending
// product line so the caller can surface it.
type ValidationError struct {
	ProductID int
	Field     string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s on product %d: %s", e.Field, e.ProductID, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(productID int, field, message string) error {
	return &ValidationError{
		ProductID: productID,
		Field:     field,
		Message:   message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
