package customer

import "context"

// Repository defines the interface for customer lookups against the API
type Repository interface {
	// Search retrieves customers matching the given query string
	Search(ctx context.Context, query string) ([]*Customer, error)
}
