package http

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"interior-billing/go_backend/internal/app/config"
	"interior-billing/go_backend/internal/app/http/handlers"
	"interior-billing/go_backend/internal/app/http/middleware"
	"interior-billing/go_backend/internal/domain/quote"
	"interior-billing/go_backend/internal/domain/quote/pdf"
	"interior-billing/go_backend/web"
)

func NewRouter(cfg config.Config, svc *quote.Service, gen pdf.Generator, log *zap.Logger) (http.Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	h, err := handlers.New(svc, gen, log)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	r.NotFound(h.NotFound)

	r.Get("/health", h.Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get("/", h.Home)
	r.Get("/quotation-form", h.QuotationFormPage)
	r.Get("/quotation-edit/{id}", h.QuotationEditPage)
	r.Get("/quotation-list", h.QuotationListPage)
	r.Get("/quotation-view/{id}", h.QuotationViewPage)

	r.Route("/api", func(r chi.Router) {
		r.Route("/quotations", func(r chi.Router) {
			r.Get("/", h.ListQuotations)
			r.Post("/", h.CreateQuotation)
			r.Get("/export.xlsx", h.ExportQuotations)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetQuotation)
				r.Put("/", h.UpdateQuotation)
				r.Patch("/", h.UpdateQuotation)
				r.Delete("/", h.DeleteQuotation)
				r.Get("/pdf", h.QuotationPDF)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetProduct)
				r.Put("/", h.UpdateProduct)
				r.Patch("/", h.UpdateProduct)
				r.Delete("/", h.DeleteProduct)
			})
		})
	})

	return r, nil
}
