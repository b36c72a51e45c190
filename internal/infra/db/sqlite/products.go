package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"interior-billing/go_backend/internal/domain/quote"
)

const productColumns = `id, name, brand, size, rate_per_sqft, description, created_at, updated_at`

func (s *Store) CreateProduct(ctx context.Context, p quote.Product) (quote.Product, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt
	_, err := s.db.ExecContext(ctx, `INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Brand, p.Size, p.RatePerSqft.String(), p.Description,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return quote.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]quote.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
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

func (s *Store) GetProduct(ctx context.Context, id string) (quote.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return quote.Product{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p quote.Product) (quote.Product, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products SET name = ?, brand = ?, size = ?, rate_per_sqft = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Brand, p.Size, p.RatePerSqft.String(), p.Description, formatTime(s.now()), p.ID)
	if err != nil {
		return quote.Product{}, fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return quote.Product{}, quote.ErrNotFound
	}
	return s.GetProduct(ctx, p.ID)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func scanProduct(row rowScanner) (quote.Product, error) {
	var (
		p                    quote.Product
		rate                 string
		createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Size, &rate, &p.Description, &createdAt, &updatedAt); err != nil {
		return quote.Product{}, err
	}
	err := scanned{
		decimals: []decimalField{{&p.RatePerSqft, rate}},
		times:    []timeField{{&p.CreatedAt, createdAt}, {&p.UpdatedAt, updatedAt}},
	}.parse()
	return p, err
}
