package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"interior-billing/go_backend/internal/domain/quote"
)

// Store keeps everything in process memory. Slices preserve creation order.
type Store struct {
	mu         sync.Mutex
	quotations []quote.Quotation
	products   []quote.Product
	now        func() time.Time
}

func New() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) Close() error { return nil }

func (s *Store) CreateQuotation(_ context.Context, q quote.Quotation) (quote.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = uuid.NewString()
	q.CreatedAt = s.now()
	q.UpdatedAt = q.CreatedAt
	s.quotations = append(s.quotations, q)
	return q, nil
}

func (s *Store) ListQuotations(_ context.Context) ([]quote.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quote.Quotation{}, s.quotations...), nil
}

func (s *Store) GetQuotation(_ context.Context, id string) (quote.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findQuotation(id)
	if i < 0 {
		return quote.Quotation{}, quote.ErrNotFound
	}
	return s.quotations[i], nil
}

func (s *Store) UpdateQuotation(_ context.Context, q quote.Quotation) (quote.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findQuotation(q.ID)
	if i < 0 {
		return quote.Quotation{}, quote.ErrNotFound
	}
	q.CreatedAt = s.quotations[i].CreatedAt
	q.UpdatedAt = s.now()
	s.quotations[i] = q
	return q, nil
}

func (s *Store) DeleteQuotation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findQuotation(id)
	if i < 0 {
		return quote.ErrNotFound
	}
	s.quotations = append(s.quotations[:i], s.quotations[i+1:]...)
	return nil
}

func (s *Store) findQuotation(id string) int {
	for i, q := range s.quotations {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) CreateProduct(_ context.Context, p quote.Product) (quote.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt
	s.products = append(s.products, p)
	return p, nil
}

func (s *Store) ListProducts(_ context.Context) ([]quote.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quote.Product{}, s.products...), nil
}

func (s *Store) GetProduct(_ context.Context, id string) (quote.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findProduct(id)
	if i < 0 {
		return quote.Product{}, quote.ErrNotFound
	}
	return s.products[i], nil
}

func (s *Store) UpdateProduct(_ context.Context, p quote.Product) (quote.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findProduct(p.ID)
	if i < 0 {
		return quote.Product{}, quote.ErrNotFound
	}
	p.CreatedAt = s.products[i].CreatedAt
	p.UpdatedAt = s.now()
	s.products[i] = p
	return p, nil
}

func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findProduct(id)
	if i < 0 {
		return quote.ErrNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

func (s *Store) findProduct(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
