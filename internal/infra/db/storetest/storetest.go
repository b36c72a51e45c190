// Package storetest holds the behaviour every quote.Store must share.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"interior-billing/go_backend/internal/domain/quote"
)

func Sample(customer string) quote.Quotation {
	rate := decimal.RequireFromString("100")
	sqft := decimal.RequireFromString("50.5")
	t, _ := quote.ComputeTotals(rate, sqft, true, decimal.NewFromInt(200), decimal.NewFromInt(300))
	return quote.Quotation{
		QuotationNumber:      "Q-7",
		CustomerName:         customer,
		CustomerMobile:       "9876543210",
		ProductName:          "Wallpaper",
		Brand:                "Asian Paints",
		Size:                 "10x12",
		RatePerSqft:          rate,
		TotalSqft:            sqft,
		Price:                t.Price,
		WithGST:              true,
		TransportationCharge: decimal.NewFromInt(200),
		LabourCharge:         decimal.NewFromInt(300),
		TotalAmount:          t.TotalAmount,
	}
}

// Run exercises s through the quote.Store contract. s must start empty.
func Run(t *testing.T, s quote.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("quotation round trip", func(t *testing.T) {
		in := Sample("Asha")
		created, err := s.CreateQuotation(ctx, in)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("store did not assign id/createdAt: %+v", created)
		}
		got, err := s.GetQuotation(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		assertSame(t, created, got)
		if err := s.DeleteQuotation(ctx, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		names := []string{"first", "second", "third"}
		var ids []string
		for _, n := range names {
			q, err := s.CreateQuotation(ctx, Sample(n))
			if err != nil {
				t.Fatalf("create %s: %v", n, err)
			}
			ids = append(ids, q.ID)
		}
		list, err := s.ListQuotations(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != len(names) {
			t.Fatalf("got %d quotations, want %d", len(list), len(names))
		}
		for i, q := range list {
			if q.CustomerName != names[i] {
				t.Fatalf("position %d: got %q, want %q", i, q.CustomerName, names[i])
			}
		}
		for _, id := range ids {
			if err := s.DeleteQuotation(ctx, id); err != nil {
				t.Fatalf("cleanup: %v", err)
			}
		}
	})

	t.Run("update replaces fields", func(t *testing.T) {
		created, err := s.CreateQuotation(ctx, Sample("Ravi"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		created.CustomerName = "Ravi Kumar"
		created.LabourCharge = decimal.NewFromInt(0)
		updated, err := s.UpdateQuotation(ctx, created)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.GetQuotation(ctx, created.ID)
		if got.CustomerName != "Ravi Kumar" || !got.LabourCharge.IsZero() {
			t.Fatalf("update not persisted: %+v", got)
		}
		if !updated.CreatedAt.Equal(got.CreatedAt) {
			t.Fatalf("createdAt changed: %v vs %v", updated.CreatedAt, got.CreatedAt)
		}
		_ = s.DeleteQuotation(ctx, created.ID)
	})

	t.Run("missing ids", func(t *testing.T) {
		for _, id := range []string{"00000000-0000-0000-0000-000000000000", "not-an-id"} {
			if _, err := s.GetQuotation(ctx, id); !errors.Is(err, quote.ErrNotFound) {
				t.Fatalf("get %q: got %v, want ErrNotFound", id, err)
			}
			if err := s.DeleteQuotation(ctx, id); !errors.Is(err, quote.ErrNotFound) {
				t.Fatalf("delete %q: got %v, want ErrNotFound", id, err)
			}
			if _, err := s.UpdateQuotation(ctx, quote.Quotation{ID: id}); !errors.Is(err, quote.ErrNotFound) {
				t.Fatalf("update %q: got %v, want ErrNotFound", id, err)
			}
		}
	})

	t.Run("delete twice", func(t *testing.T) {
		created, err := s.CreateQuotation(ctx, Sample("Meera"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := s.DeleteQuotation(ctx, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := s.DeleteQuotation(ctx, created.ID); !errors.Is(err, quote.ErrNotFound) {
			t.Fatalf("second delete: got %v, want ErrNotFound", err)
		}
	})

	t.Run("products", func(t *testing.T) {
		p, err := s.CreateProduct(ctx, quote.Product{
			Name:        "Vinyl flooring",
			Brand:       "Tarkett",
			RatePerSqft: decimal.RequireFromString("85.50"),
		})
		if err != nil {
			t.Fatalf("create product: %v", err)
		}
		p.Size = "6x4"
		if _, err := s.UpdateProduct(ctx, p); err != nil {
			t.Fatalf("update product: %v", err)
		}
		got, err := s.GetProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("get product: %v", err)
		}
		if got.Size != "6x4" || !got.RatePerSqft.Equal(decimal.RequireFromString("85.5")) {
			t.Fatalf("unexpected product: %+v", got)
		}
		list, err := s.ListProducts(ctx)
		if err != nil || len(list) != 1 {
			t.Fatalf("list products: %v %v", list, err)
		}
		if err := s.DeleteProduct(ctx, p.ID); err != nil {
			t.Fatalf("delete product: %v", err)
		}
		if _, err := s.GetProduct(ctx, p.ID); !errors.Is(err, quote.ErrNotFound) {
			t.Fatalf("get deleted product: %v", err)
		}
	})
}

func assertSame(t *testing.T, want, got quote.Quotation) {
	t.Helper()
	if want.ID != got.ID || want.QuotationNumber != got.QuotationNumber ||
		want.CustomerName != got.CustomerName || want.CustomerMobile != got.CustomerMobile ||
		want.ProductName != got.ProductName || want.Brand != got.Brand || want.Size != got.Size ||
		want.WithGST != got.WithGST {
		t.Fatalf("text fields differ:\nwant %+v\ngot  %+v", want, got)
	}
	amounts := []struct {
		name      string
		want, got decimal.Decimal
	}{
		{"ratePerSqft", want.RatePerSqft, got.RatePerSqft},
		{"totalSqft", want.TotalSqft, got.TotalSqft},
		{"price", want.Price, got.Price},
		{"transportationCharge", want.TransportationCharge, got.TransportationCharge},
		{"labourCharge", want.LabourCharge, got.LabourCharge},
		{"totalAmount", want.TotalAmount, got.TotalAmount},
	}
	for _, a := range amounts {
		if !a.want.Equal(a.got) {
			t.Fatalf("%s: want %s, got %s", a.name, a.want, a.got)
		}
	}
	if !want.CreatedAt.Equal(got.CreatedAt) {
		t.Fatalf("createdAt: want %v, got %v", want.CreatedAt, got.CreatedAt)
	}
}
