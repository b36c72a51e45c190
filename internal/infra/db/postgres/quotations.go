package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"interior-billing/go_backend/internal/domain/quote"
)

const quotationColumns = `id::text, quotation_number, customer_name, customer_mobile, product_name, brand, size,
	rate_per_sqft::text, total_sqft::text, price::text, with_gst,
	transportation_charge::text, labour_charge::text, total_amount::text, created_at, updated_at`

func (db *DB) CreateQuotation(ctx context.Context, q quote.Quotation) (quote.Quotation, error) {
	row := db.Pool.QueryRow(ctx, `
		INSERT INTO quotations (id, quotation_number, customer_name, customer_mobile, product_name, brand, size,
			rate_per_sqft, total_sqft, price, with_gst, transportation_charge, labour_charge, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+quotationColumns,
		uuid.NewString(), q.QuotationNumber, q.CustomerName, q.CustomerMobile, q.ProductName, q.Brand, q.Size,
		q.RatePerSqft.String(), q.TotalSqft.String(), q.Price.String(), q.WithGST,
		q.TransportationCharge.String(), q.LabourCharge.String(), q.TotalAmount.String(),
	)
	created, err := scanQuotation(row)
	if err != nil {
		return quote.Quotation{}, fmt.Errorf("insert quotation: %w", err)
	}
	return created, nil
}

func (db *DB) ListQuotations(ctx context.Context) ([]quote.Quotation, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+quotationColumns+` FROM quotations ORDER BY seq`)
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

func (db *DB) GetQuotation(ctx context.Context, id string) (quote.Quotation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return quote.Quotation{}, quote.ErrNotFound
	}
	row := db.Pool.QueryRow(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id)
	q, err := scanQuotation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.Quotation{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Quotation{}, fmt.Errorf("get quotation: %w", err)
	}
	return q, nil
}

func (db *DB) UpdateQuotation(ctx context.Context, q quote.Quotation) (quote.Quotation, error) {
	if _, err := uuid.Parse(q.ID); err != nil {
		return quote.Quotation{}, quote.ErrNotFound
	}
	row := db.Pool.QueryRow(ctx, `
		UPDATE quotations SET
			quotation_number = $2, customer_name = $3, customer_mobile = $4, product_name = $5, brand = $6, size = $7,
			rate_per_sqft = $8, total_sqft = $9, price = $10, with_gst = $11,
			transportation_charge = $12, labour_charge = $13, total_amount = $14, updated_at = now()
		WHERE id = $1
		RETURNING `+quotationColumns,
		q.ID, q.QuotationNumber, q.CustomerName, q.CustomerMobile, q.ProductName, q.Brand, q.Size,
		q.RatePerSqft.String(), q.TotalSqft.String(), q.Price.String(), q.WithGST,
		q.TransportationCharge.String(), q.LabourCharge.String(), q.TotalAmount.String(),
	)
	updated, err := scanQuotation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.Quotation{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Quotation{}, fmt.Errorf("update quotation: %w", err)
	}
	return updated, nil
}

func (db *DB) DeleteQuotation(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return quote.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func scanQuotation(row pgx.Row) (quote.Quotation, error) {
	var (
		q                                           quote.Quotation
		rate, sqft, price, transport, labour, total string
	)
	err := row.Scan(&q.ID, &q.QuotationNumber, &q.CustomerName, &q.CustomerMobile, &q.ProductName, &q.Brand, &q.Size,
		&rate, &sqft, &price, &q.WithGST, &transport, &labour, &total, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return quote.Quotation{}, err
	}
	err = parseDecimals(
		decimalField{&q.RatePerSqft, rate},
		decimalField{&q.TotalSqft, sqft},
		decimalField{&q.Price, price},
		decimalField{&q.TransportationCharge, transport},
		decimalField{&q.LabourCharge, labour},
		decimalField{&q.TotalAmount, total},
	)
	return q, err
}

type decimalField struct {
	dst *decimal.Decimal
	raw string
}

func parseDecimals(fields ...decimalField) error {
	for _, f := range fields {
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("parse numeric %q: %w", f.raw, err)
		}
		*f.dst = v
	}
	return nil
}
