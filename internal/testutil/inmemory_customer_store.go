package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/billfold/billfold/internal/domain/customer"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	mu        sync.RWMutex
	customers []*customer.Customer
}

// NewInMemoryCustomerStore creates a new in-memory customer store
func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{}
}

func (s *InMemoryCustomerStore) Add(c *customer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
}

func (s *InMemoryCustomerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = nil
}

func (s *InMemoryCustomerStore) Search(ctx context.Context, query string) ([]*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	matching := make([]*customer.Customer, 0)
	for _, c := range s.customers {
		name := strings.ToLower(c.FirstName + " " + c.LastName)
		if strings.Contains(name, query) {
			matching = append(matching, c)
		}
	}
	return matching, nil
}
