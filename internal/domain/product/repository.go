package product

import "context"

// Repository defines the interface for product lookups against the API
type Repository interface {
	// Search retrieves catalog products matching the given query string
	Search(ctx context.Context, query string) ([]*Product, error)
}
