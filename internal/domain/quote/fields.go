package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// QuotationFields is a create or update request. Nil fields are absent:
// on create the required ones are reported, on update they keep the stored
// value. Price and TotalAmount are optional client-side totals that must
// agree with the server's computation.
type QuotationFields struct {
	QuotationNumber      *string          `json:"quotationNumber"`
	CustomerName         *string          `json:"customerName"`
	CustomerMobile       *string          `json:"customerMobile"`
	ProductName          *string          `json:"productName"`
	Brand                *string          `json:"brand"`
	Size                 *string          `json:"size"`
	RatePerSqft          *decimal.Decimal `json:"ratePerSqft"`
	TotalSqft            *decimal.Decimal `json:"totalSqft"`
	WithGST              *bool            `json:"withGST"`
	TransportationCharge *decimal.Decimal `json:"transportationCharge"`
	LabourCharge         *decimal.Decimal `json:"labourCharge"`
	Price                *decimal.Decimal `json:"price"`
	TotalAmount          *decimal.Decimal `json:"totalAmount"`
}

// checkRequired reports the first required field missing from a create request.
func (f QuotationFields) checkRequired() error {
	switch {
	case f.CustomerName == nil:
		return invalid("customerName", "is required")
	case f.CustomerMobile == nil:
		return invalid("customerMobile", "is required")
	case f.ProductName == nil:
		return invalid("productName", "is required")
	case f.RatePerSqft == nil:
		return invalid("ratePerSqft", "is required")
	case f.TotalSqft == nil:
		return invalid("totalSqft", "is required")
	}
	return nil
}

// merge copies present fields onto q and recomputes its totals.
func (f QuotationFields) merge(q *Quotation) error {
	setText(&q.QuotationNumber, f.QuotationNumber)
	setText(&q.CustomerName, f.CustomerName)
	setText(&q.CustomerMobile, f.CustomerMobile)
	setText(&q.ProductName, f.ProductName)
	setText(&q.Brand, f.Brand)
	setText(&q.Size, f.Size)
	setDecimal(&q.RatePerSqft, f.RatePerSqft)
	setDecimal(&q.TotalSqft, f.TotalSqft)
	setDecimal(&q.TransportationCharge, f.TransportationCharge)
	setDecimal(&q.LabourCharge, f.LabourCharge)
	if f.WithGST != nil {
		q.WithGST = *f.WithGST
	}

	for _, req := range []struct{ field, v string }{
		{"customerName", q.CustomerName},
		{"customerMobile", q.CustomerMobile},
		{"productName", q.ProductName},
	} {
		if req.v == "" {
			return invalid(req.field, "must not be empty")
		}
	}

	t, err := ComputeTotals(q.RatePerSqft, q.TotalSqft, q.WithGST, q.TransportationCharge, q.LabourCharge)
	if err != nil {
		return err
	}
	for _, c := range []struct {
		field string
		v     *decimal.Decimal
	}{{"price", f.Price}, {"totalAmount", f.TotalAmount}} {
		if c.v == nil {
			continue
		}
		if err := checkAmount(c.field, *c.v, maxTotal); err != nil {
			return err
		}
	}
	if f.Price != nil && !sameAmount(*f.Price, t.Price) {
		return invalid("price", "does not match ratePerSqft × totalSqft ("+FormatAmount(t.Price)+")")
	}
	if f.TotalAmount != nil && !sameAmount(*f.TotalAmount, t.TotalAmount) {
		return invalid("totalAmount", "does not match computed total ("+FormatAmount(t.TotalAmount)+")")
	}
	q.Price = t.Price
	q.TotalAmount = t.TotalAmount
	return nil
}

// sameAmount compares at display precision, which is all a client can show.
func sameAmount(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}

type ProductFields struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Size        *string          `json:"size"`
	RatePerSqft *decimal.Decimal `json:"ratePerSqft"`
	Description *string          `json:"description"`
}

func (f ProductFields) merge(p *Product) error {
	setText(&p.Name, f.Name)
	setText(&p.Brand, f.Brand)
	setText(&p.Size, f.Size)
	setText(&p.Description, f.Description)
	setDecimal(&p.RatePerSqft, f.RatePerSqft)
	if p.Name == "" {
		return invalid("name", "must not be empty")
	}
	return checkAmount("ratePerSqft", p.RatePerSqft, maxMeasure)
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}
