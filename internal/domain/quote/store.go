package quote

import "context"

// QuotationStore persists quotations exactly as given; it never recomputes
// derived fields. Unknown or malformed ids yield ErrNotFound.
type QuotationStore interface {
	CreateQuotation(ctx context.Context, q Quotation) (Quotation, error)
	ListQuotations(ctx context.Context) ([]Quotation, error)
	GetQuotation(ctx context.Context, id string) (Quotation, error)
	UpdateQuotation(ctx context.Context, q Quotation) (Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p Product) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	UpdateProduct(ctx context.Context, p Product) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Store is what a data backend provides.
type Store interface {
	QuotationStore
	ProductStore
	Close() error
}

// Index keeps a searchable view of quotations. Search returns matching ids.
type Index interface {
	IndexQuotation(q Quotation) error
	RemoveQuotation(id string) error
	Search(text string) ([]string, error)
}
