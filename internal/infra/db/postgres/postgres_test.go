package postgres

import (
	"context"
	"os"
	"testing"

	"interior-billing/go_backend/internal/infra/db/storetest"
)

// Runs against a disposable database only; the tables are truncated first.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if _, err := db.Pool.Exec(ctx, `TRUNCATE quotations, products`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	storetest.Run(t, db)
}
