package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"interior-billing/go_backend/internal/domain/quote"
)

const productColumns = `id::text, name, brand, size, rate_per_sqft::text, description, created_at, updated_at`

func (db *DB) CreateProduct(ctx context.Context, p quote.Product) (quote.Product, error) {
	row := db.Pool.QueryRow(ctx, `
		INSERT INTO products (id, name, brand, size, rate_per_sqft, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		uuid.NewString(), p.Name, p.Brand, p.Size, p.RatePerSqft.String(), p.Description,
	)
	created, err := scanProduct(row)
	if err != nil {
		return quote.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (db *DB) ListProducts(ctx context.Context) ([]quote.Product, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]quote.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (db *DB) GetProduct(ctx context.Context, id string) (quote.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return quote.Product{}, quote.ErrNotFound
	}
	p, err := scanProduct(db.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.Product{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (db *DB) UpdateProduct(ctx context.Context, p quote.Product) (quote.Product, error) {
	if _, err := uuid.Parse(p.ID); err != nil {
		return quote.Product{}, quote.ErrNotFound
	}
	row := db.Pool.QueryRow(ctx, `
		UPDATE products SET name = $2, brand = $3, size = $4, rate_per_sqft = $5, description = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns,
		p.ID, p.Name, p.Brand, p.Size, p.RatePerSqft.String(), p.Description,
	)
	updated, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.Product{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Product{}, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

func (db *DB) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return quote.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (quote.Product, error) {
	var (
		p    quote.Product
		rate string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Size, &rate, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return quote.Product{}, err
	}
	if err := parseDecimals(decimalField{&p.RatePerSqft, rate}); err != nil {
		return quote.Product{}, err
	}
	return p, nil
}
