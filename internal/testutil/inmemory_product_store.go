package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/billfold/billfold/internal/domain/product"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	mu       sync.RWMutex
	products []*product.Product
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{}
}

func (s *InMemoryProductStore) Add(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

func (s *InMemoryProductStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
}

func (s *InMemoryProductStore) Search(ctx context.Context, query string) ([]*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	matching := make([]*product.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Label), query) {
			matching = append(matching, p)
		}
	}
	return matching, nil
}
