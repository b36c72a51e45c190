package raster

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"interior-billing/go_backend/internal/domain/quote"
)

type stubGenerator struct{ calls int }

func (s *stubGenerator) Generate(context.Context, quote.Quotation) ([]byte, error) {
	s.calls++
	return []byte("%PDF-vector"), nil
}

func TestBillURL(t *testing.T) {
	g := New("http://127.0.0.1:8080/", time.Second, nil, nil)
	if got := g.BillURL("a b"); got != "http://127.0.0.1:8080/quotation-view/a%20b?print=1" {
		t.Fatalf("BillURL = %q", got)
	}
}

func TestGenerateEmbedsSnapshot(t *testing.T) {
	var img bytes.Buffer
	if err := png.Encode(&img, image.NewGray(image.Rect(0, 0, 100, 50))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	g := New("http://localhost", time.Second, nil, nil)
	var visited string
	g.snap = func(_ context.Context, pageURL string) ([]byte, error) {
		visited = pageURL
		return img.Bytes(), nil
	}

	out, err := g.Generate(context.Background(), quote.Quotation{ID: "q1"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if visited != "http://localhost/quotation-view/q1?print=1" {
		t.Fatalf("snapshot of %q", visited)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("not a PDF")
	}
}

func TestGenerateFallsBack(t *testing.T) {
	fallback := &stubGenerator{}
	g := New("http://localhost", time.Second, fallback, nil)
	g.snap = func(context.Context, string) ([]byte, error) { return nil, errors.New("chrome not found") }

	out, err := g.Generate(context.Background(), quote.Quotation{ID: "q1"})
	if err != nil || string(out) != "%PDF-vector" || fallback.calls != 1 {
		t.Fatalf("fallback not used: out=%q err=%v calls=%d", out, err, fallback.calls)
	}

	g = New("http://localhost", time.Second, nil, nil)
	g.snap = func(context.Context, string) ([]byte, error) { return nil, errors.New("chrome not found") }
	if _, err := g.Generate(context.Background(), quote.Quotation{ID: "q1"}); err == nil {
		t.Fatalf("expected error without fallback")
	}
}
