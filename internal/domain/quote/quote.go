package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, the way the form and the list expect them.
	decimal.MarshalJSONWithoutQuotes = true
}

// GSTRate is the flat tax applied to the base price when WithGST is set.
var GSTRate = decimal.RequireFromString("0.18")

// Input bounds. Decimals carry an arbitrary exponent, so one is checked
// before any arithmetic or formatting touches the value.
const (
	minExponent = -10
	maxExponent = 12
)

var (
	maxMeasure = decimal.New(1, 9)  // ratePerSqft, totalSqft
	maxCharge  = decimal.New(1, 12) // transport, labour
	maxTotal   = decimal.New(1, 19) // client-supplied price, totalAmount
)

// checkAmount rejects negative, oversized or overly precise inputs.
func checkAmount(field string, v, max decimal.Decimal) error {
	switch {
	case v.Exponent() > maxExponent:
		return invalid(field, "is too large")
	case v.Exponent() < minExponent:
		return invalid(field, "has too many decimal places")
	case v.IsNegative():
		return invalid(field, "must not be negative")
	case v.GreaterThan(max):
		return invalid(field, "is too large")
	}
	return nil
}

type Quotation struct {
	ID              string `json:"id"`
	QuotationNumber string `json:"quotationNumber,omitempty"`

	CustomerName   string `json:"customerName"`
	CustomerMobile string `json:"customerMobile"`

	ProductName string `json:"productName"`
	Brand       string `json:"brand,omitempty"`
	Size        string `json:"size,omitempty"`

	RatePerSqft          decimal.Decimal `json:"ratePerSqft"`
	TotalSqft            decimal.Decimal `json:"totalSqft"`
	Price                decimal.Decimal `json:"price"`
	WithGST              bool            `json:"withGST"`
	TransportationCharge decimal.Decimal `json:"transportationCharge"`
	LabourCharge         decimal.Decimal `json:"labourCharge"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GSTAmount is the tax part of TotalAmount.
func (q Quotation) GSTAmount() decimal.Decimal {
	if !q.WithGST {
		return decimal.Zero
	}
	return q.Price.Mul(GSTRate)
}

// Totals holds the derived pricing of a quotation. Price keeps full
// precision; callers round for display.
type Totals struct {
	Price       decimal.Decimal
	GST         decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeTotals derives price, GST and the grand total from the raw inputs.
func ComputeTotals(ratePerSqft, totalSqft decimal.Decimal, withGST bool, transportationCharge, labourCharge decimal.Decimal) (Totals, error) {
	inputs := []struct {
		field string
		v     decimal.Decimal
		max   decimal.Decimal
	}{
		{"ratePerSqft", ratePerSqft, maxMeasure},
		{"totalSqft", totalSqft, maxMeasure},
		{"transportationCharge", transportationCharge, maxCharge},
		{"labourCharge", labourCharge, maxCharge},
	}
	for _, in := range inputs {
		if err := checkAmount(in.field, in.v, in.max); err != nil {
			return Totals{}, err
		}
	}

	price := ratePerSqft.Mul(totalSqft)
	gst := decimal.Zero
	if withGST {
		gst = price.Mul(GSTRate)
	}
	return Totals{
		Price:       price,
		GST:         gst,
		TotalAmount: price.Add(gst).Add(transportationCharge).Add(labourCharge),
	}, nil
}

// Product is a catalog entry used to prefill the quotation form.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Size        string          `json:"size,omitempty"`
	RatePerSqft decimal.Decimal `json:"ratePerSqft"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
