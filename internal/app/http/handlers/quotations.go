package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interior-billing/go_backend/internal/domain/quote"
	"interior-billing/go_backend/internal/infra/export/xlsx"
)

func (h *Handlers) ListQuotations(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, qs)
}

func (h *Handlers) GetQuotation(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req quote.QuotationFields
	if err := decodeJSON(w, r, &req); err != nil {
		badJSON(w, err)
		return
	}
	q, err := h.svc.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/quotations/"+q.ID)
	writeJSON(w, http.StatusCreated, q)
}

// UpdateQuotation serves both PUT and PATCH; absent fields keep their
// stored values either way.
func (h *Handlers) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	var req quote.QuotationFields
	if err := decodeJSON(w, r, &req); err != nil {
		badJSON(w, err)
		return
	}
	q, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) QuotationPDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, err := h.pdf.Generate(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.log.Info("pdf exported", zap.String("id", q.ID), zap.Int("bytes", len(data)))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+quote.PDFFilename(q.ID)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportQuotations downloads the list, filtered like ListQuotations, as a
// spreadsheet.
func (h *Handlers) ExportQuotations(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := xlsx.WriteQuotations(&buf, qs); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="quotations.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
