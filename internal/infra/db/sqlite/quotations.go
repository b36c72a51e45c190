package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"interior-billing/go_backend/internal/domain/quote"
)

const quotationColumns = `id, quotation_number, customer_name, customer_mobile, product_name, brand, size,
	rate_per_sqft, total_sqft, price, with_gst, transportation_charge, labour_charge, total_amount,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) CreateQuotation(ctx context.Context, q quote.Quotation) (quote.Quotation, error) {
	q.ID = uuid.NewString()
	q.CreatedAt = s.now()
	q.UpdatedAt = q.CreatedAt
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quotations (`+quotationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.QuotationNumber, q.CustomerName, q.CustomerMobile, q.ProductName, q.Brand, q.Size,
		q.RatePerSqft.String(), q.TotalSqft.String(), q.Price.String(), q.WithGST,
		q.TransportationCharge.String(), q.LabourCharge.String(), q.TotalAmount.String(),
		formatTime(q.CreatedAt), formatTime(q.UpdatedAt),
	)
	if err != nil {
		return quote.Quotation{}, fmt.Errorf("insert quotation: %w", err)
	}
	return q, nil
}

func (s *Store) ListQuotations(ctx context.Context) ([]quote.Quotation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+quotationColumns+` FROM quotations ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	out := make([]quote.Quotation, 0)
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *Store) GetQuotation(ctx context.Context, id string) (quote.Quotation, error) {
	q, err := scanQuotation(s.db.QueryRowContext(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return quote.Quotation{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Quotation{}, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

func (s *Store) UpdateQuotation(ctx context.Context, q quote.Quotation) (quote.Quotation, error) {
	updatedAt := s.now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE quotations SET
			quotation_number = ?, customer_name = ?, customer_mobile = ?, product_name = ?, brand = ?, size = ?,
			rate_per_sqft = ?, total_sqft = ?, price = ?, with_gst = ?,
			transportation_charge = ?, labour_charge = ?, total_amount = ?, updated_at = ?
		WHERE id = ?`,
		q.QuotationNumber, q.CustomerName, q.CustomerMobile, q.ProductName, q.Brand, q.Size,
		q.RatePerSqft.String(), q.TotalSqft.String(), q.Price.String(), q.WithGST,
		q.TransportationCharge.String(), q.LabourCharge.String(), q.TotalAmount.String(),
		formatTime(updatedAt), q.ID,
	)
	if err != nil {
		return quote.Quotation{}, fmt.Errorf("update quotation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return quote.Quotation{}, quote.ErrNotFound
	}
	return s.GetQuotation(ctx, q.ID)
}

func (s *Store) DeleteQuotation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func scanQuotation(row rowScanner) (quote.Quotation, error) {
	var (
		q                                           quote.Quotation
		rate, sqft, price, transport, labour, total string
		createdAt, updatedAt                        string
	)
	err := row.Scan(&q.ID, &q.QuotationNumber, &q.CustomerName, &q.CustomerMobile, &q.ProductName, &q.Brand, &q.Size,
		&rate, &sqft, &price, &q.WithGST, &transport, &labour, &total, &createdAt, &updatedAt)
	if err != nil {
		return quote.Quotation{}, err
	}
	err = scanned{
		decimals: []decimalField{
			{&q.RatePerSqft, rate},
			{&q.TotalSqft, sqft},
			{&q.Price, price},
			{&q.TransportationCharge, transport},
			{&q.LabourCharge, labour},
			{&q.TotalAmount, total},
		},
		times: []timeField{{&q.CreatedAt, createdAt}, {&q.UpdatedAt, updatedAt}},
	}.parse()
	return q, err
}
