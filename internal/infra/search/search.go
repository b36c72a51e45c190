// Package search keeps an in-memory bleve index over quotation text so the
// list page can filter by customer, mobile, product or brand.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"

	"interior-billing/go_backend/internal/domain/quote"
)

type document struct {
	QuotationNumber string `json:"quotationNumber"`
	CustomerName    string `json:"customerName"`
	CustomerMobile  string `json:"customerMobile"`
	ProductName     string `json:"productName"`
	Brand           string `json:"brand"`
	Size            string `json:"size"`
}

type Index struct {
	idx bleve.Index
	log *zap.Logger
}

// New builds an empty memory-only index. The store stays the source of
// truth, so nothing is persisted.
func New(log *zap.Logger) (*Index, error) {
	if log == nil {
		log = zap.NewNop()
	}
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}
	return &Index{idx: idx, log: log.Named("search")}, nil
}

func (i *Index) IndexQuotation(q quote.Quotation) error {
	doc := document{
		QuotationNumber: q.QuotationNumber,
		CustomerName:    q.CustomerName,
		CustomerMobile:  q.CustomerMobile,
		ProductName:     q.ProductName,
		Brand:           q.Brand,
		Size:            q.Size,
	}
	if err := i.idx.Index(q.ID, doc); err != nil {
		i.log.Error("index quotation", zap.String("id", q.ID), zap.Error(err))
		return err
	}
	return nil
}

func (i *Index) RemoveQuotation(id string) error {
	return i.idx.Delete(id)
}

// Search matches every word of text as a term or a term prefix, so "kir
// 9876" finds Kiran with mobile 9876543210. Hits come back unordered.
func (i *Index) Search(text string) ([]string, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return nil, nil
	}

	parts := make([]query.Query, 0, len(words))
	for _, w := range words {
		parts = append(parts, bleve.NewDisjunctionQuery(
			bleve.NewMatchQuery(w),
			bleve.NewPrefixQuery(w),
		))
	}

	count, err := i.idx.DocCount()
	if err != nil {
		return nil, err
	}
	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(parts...), int(count)+1, 0, false)
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search quotations: %w", err)
	}

	ids := make([]string, 0, len(res.Hits))
	for _, h := range res.Hits {
		ids = append(ids, h.ID)
	}
	i.log.Debug("search", zap.String("text", text), zap.Int("hits", len(ids)))
	return ids, nil
}

func (i *Index) Close() error {
	return i.idx.Close()
}
