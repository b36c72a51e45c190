package pdf

import (
	"context"

	"interior-billing/go_backend/internal/domain/quote"
)

// Generator renders the bill of one quotation as a PDF document.
type Generator interface {
	Generate(ctx context.Context, q quote.Quotation) ([]byte, error)
}
