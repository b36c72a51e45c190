package gofpdf

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"interior-billing/go_backend/internal/domain/quote"
)

const (
	pageWidth = 210.0
	margin    = 15.0
	bodyWidth = pageWidth - 2*margin
)

// Generator draws the bill with vector text. Without a font directory the
// core Helvetica font is used and amounts are prefixed with "Rs." because
// the rupee sign is outside its code page.
type Generator struct {
	fontDir string
	log     *zap.Logger
}

func New(fontDir string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{fontDir: fontDir, log: log.Named("pdf")}
}

type writer struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
	symbol string
}

func (g *Generator) Generate(_ context.Context, q quote.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation Bill", true)
	pdf.SetCreator("interior-billing", true)
	pdf.SetMargins(margin, margin, margin)

	w := &writer{pdf: pdf, family: "Helvetica", tr: func(s string) string { return s }, symbol: "Rs. "}
	if g.fontDir != "" {
		regularFont := filepath.Join(g.fontDir, "DejaVuSans.ttf")
		boldFont := filepath.Join(g.fontDir, "DejaVuSans-Bold.ttf")
		g.log.Debug("load fonts", zap.String("regular", regularFont), zap.String("bold", boldFont))
		pdf.AddUTF8Font("DejaVu", "", regularFont)
		pdf.AddUTF8Font("DejaVu", "B", boldFont)
		w.family = "DejaVu"
		w.symbol = quote.CurrencySymbol
	} else {
		w.tr = g.logReplaced(q.ID, pdf.UnicodeTranslatorFromDescriptor(""))
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf fonts: %w", err)
	}
	pdf.AddPage()

	w.title()
	w.details(q)
	w.charges(q)
	w.signature()

	pdf.SetY(-20)
	w.font("", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(bodyWidth, 5, w.tr("Generated: "+time.Now().Format("02/01/2006 15:04")), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.log.Error("output failed", zap.String("id", q.ID), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

// logReplaced wraps the cp1252 translator, which prints "." for every rune
// outside the code page, and notes each text that lost characters.
func (g *Generator) logReplaced(id string, tr func(string) string) func(string) string {
	return func(s string) string {
		out := tr(s)
		if n := replacedRunes(s, out); n > 0 {
			g.log.Debug("characters outside cp1252 replaced, set PDF_FONT_DIR for unicode text",
				zap.String("id", id), zap.String("text", s), zap.Int("replaced", n))
		}
		return out
	}
}

// replacedRunes counts non-ASCII runes of in that came out as '.'. The
// translator writes exactly one byte per rune.
func replacedRunes(in, out string) int {
	n, i := 0, 0
	for _, r := range in {
		if r >= 0x80 && i < len(out) && out[i] == '.' {
			n++
		}
		i++
	}
	return n
}

func (w *writer) font(style string, size float64) {
	w.pdf.SetFont(w.family, style, size)
}

func (w *writer) money(d decimal.Decimal) string {
	return w.symbol + quote.FormatAmount(d)
}

func (w *writer) title() {
	w.font("B", 18)
	w.pdf.SetTextColor(44, 62, 80)
	w.pdf.CellFormat(bodyWidth, 10, "Quotation Bill", "", 1, "C", false, 0, "")
	x := margin + bodyWidth/2 - 15
	w.pdf.SetDrawColor(52, 152, 219)
	w.pdf.SetLineWidth(1)
	w.pdf.Line(x, w.pdf.GetY()+1, x+30, w.pdf.GetY()+1)
	w.pdf.SetLineWidth(0.2)
	w.pdf.Ln(8)
}

func (w *writer) heading(x, width float64, text string) {
	w.pdf.SetX(x)
	w.font("B", 12)
	w.pdf.SetTextColor(52, 152, 219)
	w.pdf.CellFormat(width, 7, text, "B", 1, "L", false, 0, "")
	w.pdf.Ln(1)
}

func (w *writer) row(x, width float64, label, value string) {
	w.pdf.SetX(x)
	w.font("B", 10)
	w.pdf.SetTextColor(51, 51, 51)
	w.pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	w.font("", 10)
	w.pdf.SetTextColor(85, 85, 85)
	w.pdf.CellFormat(width-40, 6, w.tr(trim(value, 40)), "", 1, "L", false, 0, "")
}

func (w *writer) details(q quote.Quotation) {
	half := bodyWidth/2 - 5
	right := margin + bodyWidth/2 + 5
	top := w.pdf.GetY()

	w.heading(margin, half, "Customer Details")
	w.row(margin, half, "Name:", q.CustomerName)
	w.row(margin, half, "Mobile:", q.CustomerMobile)
	bottom := w.pdf.GetY()

	w.pdf.SetY(top)
	w.heading(right, half, "Quotation Info")
	w.row(right, half, "Date:", quote.FormatShortDate(q.CreatedAt))
	w.row(right, half, "Quotation No.:", quote.OrNA(q.QuotationNumber))
	if w.pdf.GetY() < bottom {
		w.pdf.SetY(bottom)
	}
	w.pdf.Ln(6)

	w.heading(margin, bodyWidth, "Product Details")
	w.row(margin, bodyWidth, "Product:", q.ProductName)
	w.row(margin, bodyWidth, "Brand:", quote.OrNA(q.Brand))
	w.row(margin, bodyWidth, "Size:", quote.OrNA(q.Size))
	w.pdf.Ln(6)
}

func (w *writer) charges(q quote.Quotation) {
	labelWidth := bodyWidth * 0.65
	amountWidth := bodyWidth - labelWidth

	w.font("B", 11)
	w.pdf.SetFillColor(110, 142, 251)
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.SetDrawColor(224, 230, 237)
	w.pdf.CellFormat(labelWidth, 9, "Description", "1", 0, "L", true, 0, "")
	w.pdf.CellFormat(amountWidth, 9, "Amount", "1", 1, "R", true, 0, "")

	lines := [][2]string{
		{"Rate per Sq. Ft", w.money(q.RatePerSqft)},
		{"Total Sq. Ft", quote.FormatAmount(q.TotalSqft)},
		{"Base Price", w.money(q.Price)},
	}
	if q.WithGST {
		lines = append(lines, [2]string{"GST (18%)", w.money(q.GSTAmount())})
	}
	lines = append(lines,
		[2]string{"Transportation Charge", w.money(q.TransportationCharge)},
		[2]string{"Labour Charge", w.money(q.LabourCharge)},
	)

	w.font("", 10)
	w.pdf.SetTextColor(85, 85, 85)
	w.pdf.SetFillColor(249, 250, 252)
	for i, l := range lines {
		fill := i%2 == 1
		w.pdf.CellFormat(labelWidth, 8, l[0], "1", 0, "L", fill, 0, "")
		w.pdf.CellFormat(amountWidth, 8, w.tr(l[1]), "1", 1, "R", fill, 0, "")
	}

	w.font("B", 11)
	w.pdf.SetTextColor(51, 51, 51)
	w.pdf.CellFormat(labelWidth, 9, "Total Amount", "1", 0, "L", false, 0, "")
	w.pdf.CellFormat(amountWidth, 9, w.tr(w.money(q.TotalAmount)), "1", 1, "R", false, 0, "")
}

func (w *writer) signature() {
	w.pdf.Ln(14)
	w.font("", 10)
	w.pdf.SetTextColor(85, 85, 85)
	w.pdf.CellFormat(bodyWidth, 6, "For Interior Designer", "", 1, "R", false, 0, "")
	w.pdf.Ln(14)
	w.pdf.CellFormat(bodyWidth, 6, "_________________________", "", 1, "R", false, 0, "")
	w.pdf.SetTextColor(51, 51, 51)
	w.pdf.CellFormat(bodyWidth, 6, "Authorized Signature", "", 1, "R", false, 0, "")
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
