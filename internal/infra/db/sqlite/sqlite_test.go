package sqlite

import (
	"path/filepath"
	"testing"

	"interior-billing/go_backend/internal/infra/db/storetest"
)

func TestSQLiteStore(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "data", "quotations.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	storetest.Run(t, s)
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotations.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	created, err := s.CreateQuotation(t.Context(), storetest.Sample("Nisha"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Close()

	s, err = New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.GetQuotation(t.Context(), created.ID)
	if err != nil || got.CustomerName != "Nisha" || !got.TotalAmount.Equal(created.TotalAmount) {
		t.Fatalf("after reopen: %+v %v", got, err)
	}
}
