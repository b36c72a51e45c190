package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interior-billing/go_backend/internal/domain/quote"
	"interior-billing/go_backend/web"
)

var pageNames = []string{"form", "list", "view", "not_found"}

var funcs = template.FuncMap{
	"currency":  quote.FormatCurrency,
	"amount":    quote.FormatAmount,
	"date":      quote.FormatDate,
	"shortDate": quote.FormatShortDate,
	"orNA":      quote.OrNA,
	"inc":       func(i int) int { return i + 1 },
}

// parsePages gives every page its own copy of the layout, since each one
// defines the "content" block.
func parsePages() (map[string]*template.Template, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(web.FS, "templates/layout.html")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(web.FS, "templates/"+name+".html"); err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return pages, nil
}

type pageData struct {
	Title      string
	Active     string
	Error      string
	Print      bool
	Edit       bool
	Search     string
	Quotation  quote.Quotation
	Quotations []quote.Quotation
	Products   []quote.Product
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	t, ok := h.pages[page]
	if !ok {
		h.log.Error("unknown page", zap.String("page", page))
		http.Error(w, "Something went wrong!", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("render page", zap.String("page", page), zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "Something went wrong!", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// pageError renders a lookup failure as the 404 page or as an error banner.
func (h *Handlers) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, quote.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.log.Error("page failed", zap.String("path", r.URL.Path), zap.Error(err))
	h.render(w, r, http.StatusInternalServerError, "not_found", pageData{
		Title: "Error",
		Error: "Something went wrong! Please try again.",
	})
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/quotation-list", http.StatusFound)
}

func (h *Handlers) QuotationFormPage(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "form", pageData{
		Title:    "Quotation Form",
		Active:   "form",
		Products: products,
	})
}

func (h *Handlers) QuotationEditPage(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "form", pageData{
		Title:     "Edit Quotation",
		Active:    "form",
		Edit:      true,
		Quotation: q,
		Products:  products,
	})
}

func (h *Handlers) QuotationListPage(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	data := pageData{Title: "Client (Quotation) List", Active: "list", Search: search}

	qs, err := h.svc.Search(r.Context(), search)
	if err != nil {
		h.log.Error("list quotations", zap.Error(err))
		data.Error = "Could not load quotations. Please try again."
		h.render(w, r, http.StatusInternalServerError, "list", data)
		return
	}
	data.Quotations = qs
	h.render(w, r, http.StatusOK, "list", data)
}

// QuotationViewPage renders the bill; ?print=1 drops the navigation so the
// raster exporter can snapshot the bill alone.
func (h *Handlers) QuotationViewPage(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "view", pageData{
		Title:     "Quotation Bill",
		Active:    "list",
		Print:     r.URL.Query().Get("print") == "1",
		Quotation: q,
	})
}

// NotFound answers JSON under /api and the 404 page elsewhere.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
		return
	}
	h.render(w, r, http.StatusNotFound, "not_found", pageData{Title: "Not Found"})
}
