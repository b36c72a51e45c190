package quote

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Service applies the quotation rules on top of a store: required fields,
// server-side totals and partial updates. Index is optional.
type Service struct {
	store Store
	index Index
	log   *zap.Logger
}

func NewService(store Store, index Index, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, index: index, log: log.Named("quote")}
}

func (s *Service) Create(ctx context.Context, f QuotationFields) (Quotation, error) {
	if err := f.checkRequired(); err != nil {
		return Quotation{}, err
	}
	var q Quotation
	if err := f.merge(&q); err != nil {
		return Quotation{}, err
	}
	created, err := s.store.CreateQuotation(ctx, q)
	if err != nil {
		return Quotation{}, err
	}
	s.reindex(created)
	s.log.Info("quotation created",
		zap.String("id", created.ID),
		zap.String("customer", created.CustomerName),
		zap.String("total", created.TotalAmount.StringFixed(2)))
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Quotation, error) {
	return s.store.ListQuotations(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Quotation, error) {
	return s.store.GetQuotation(ctx, id)
}

// Update merges f into the stored quotation. Concurrent updates of the same
// record are last-write-wins.
func (s *Service) Update(ctx context.Context, id string, f QuotationFields) (Quotation, error) {
	q, err := s.store.GetQuotation(ctx, id)
	if err != nil {
		return Quotation{}, err
	}
	if err := f.merge(&q); err != nil {
		return Quotation{}, err
	}
	updated, err := s.store.UpdateQuotation(ctx, q)
	if err != nil {
		return Quotation{}, err
	}
	s.reindex(updated)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteQuotation(ctx, id); err != nil {
		return err
	}
	if s.index != nil {
		if err := s.index.RemoveQuotation(id); err != nil {
			s.log.Warn("search index remove failed", zap.String("id", id), zap.Error(err))
		}
	}
	s.log.Info("quotation deleted", zap.String("id", id))
	return nil
}

// Search returns the quotations matching text, in creation order. An empty
// text lists everything.
func (s *Service) Search(ctx context.Context, text string) ([]Quotation, error) {
	all, err := s.store.ListQuotations(ctx)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return all, nil
	}

	if s.index == nil {
		needle := strings.ToLower(text)
		out := make([]Quotation, 0)
		for _, q := range all {
			hay := strings.ToLower(strings.Join([]string{
				q.CustomerName, q.CustomerMobile, q.ProductName, q.Brand, q.QuotationNumber,
			}, " "))
			if strings.Contains(hay, needle) {
				out = append(out, q)
			}
		}
		return out, nil
	}

	ids, err := s.index.Search(text)
	if err != nil {
		return nil, err
	}
	hit := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		hit[id] = struct{}{}
	}
	out := make([]Quotation, 0, len(ids))
	for _, q := range all {
		if _, ok := hit[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// Reindex loads every stored quotation into the index.
func (s *Service) Reindex(ctx context.Context) error {
	if s.index == nil {
		return nil
	}
	all, err := s.store.ListQuotations(ctx)
	if err != nil {
		return err
	}
	for _, q := range all {
		if err := s.index.IndexQuotation(q); err != nil {
			return err
		}
	}
	s.log.Info("search index rebuilt", zap.Int("count", len(all)))
	return nil
}

// reindex never fails the write; the store is the source of truth.
func (s *Service) reindex(q Quotation) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexQuotation(q); err != nil {
		s.log.Warn("search index update failed", zap.String("id", q.ID), zap.Error(err))
	}
}

func (s *Service) CreateProduct(ctx context.Context, f ProductFields) (Product, error) {
	if f.Name == nil {
		return Product{}, invalid("name", "is required")
	}
	var p Product
	if err := f.merge(&p); err != nil {
		return Product{}, err
	}
	return s.store.CreateProduct(ctx, p)
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (Product, error) {
	return s.store.GetProduct(ctx, id)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, f ProductFields) (Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if err := f.merge(&p); err != nil {
		return Product{}, err
	}
	return s.store.UpdateProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.DeleteProduct(ctx, id)
}
