package quote

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const CurrencySymbol = "₹"

// FormatCurrency renders an amount as ₹1234.50.
func FormatCurrency(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(2)
}

// FormatAmount renders an amount with two decimals and no symbol.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate renders DD/MM/YYYY, used by the list.
func FormatDate(t time.Time) string {
	return t.Local().Format("02/01/2006")
}

// FormatShortDate renders DD/MM/YY, used by the bill.
func FormatShortDate(t time.Time) string {
	return t.Local().Format("02/01/06")
}

func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// PDFFilename is the download name of an exported bill.
func PDFFilename(id string) string {
	return "quotation_" + id + ".pdf"
}
