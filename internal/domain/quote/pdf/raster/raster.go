// Package raster exports a bill the way a browser prints it: headless Chrome
// snapshots the rendered bill at 2x scale and the image becomes the page.
package raster

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"interior-billing/go_backend/internal/domain/quote"
	"interior-billing/go_backend/internal/domain/quote/pdf"
	"interior-billing/go_backend/internal/domain/quote/pdf/gofpdf"
)

const (
	billSelector  = "#bill"
	snapshotScale = 2
)

type Generator struct {
	baseURL  string
	timeout  time.Duration
	fallback pdf.Generator
	log      *zap.Logger
	snap     func(ctx context.Context, pageURL string) ([]byte, error)
}

// New snapshots bills served under baseURL. When Chrome cannot produce a
// snapshot and fallback is set, the fallback renders the document instead.
func New(baseURL string, timeout time.Duration, fallback pdf.Generator, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Generator{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		fallback: fallback,
		log:      log.Named("raster"),
	}
	g.snap = g.snapshot
	return g
}

// BillURL is the print-only bill page of a quotation.
func (g *Generator) BillURL(id string) string {
	return g.baseURL + "/quotation-view/" + url.PathEscape(id) + "?print=1"
}

func (g *Generator) Generate(ctx context.Context, q quote.Quotation) ([]byte, error) {
	shot, err := g.snap(ctx, g.BillURL(q.ID))
	if err != nil {
		if g.fallback == nil {
			return nil, err
		}
		g.log.Warn("snapshot failed, using vector bill", zap.String("id", q.ID), zap.Error(err))
		return g.fallback.Generate(ctx, q)
	}
	return gofpdf.EmbedPNG(shot)
}

func (g *Generator) snapshot(ctx context.Context, pageURL string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	taskCtx, cancel := context.WithTimeout(taskCtx, g.timeout)
	defer cancel()

	var buf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(billSelector, chromedp.ByQuery),
		chromedp.ScreenshotScale(billSelector, snapshotScale, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}
	g.log.Debug("bill snapshot", zap.String("url", pageURL), zap.Int("bytes", len(buf)))
	return buf, nil
}
