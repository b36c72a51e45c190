package handlers

import (
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"interior-billing/go_backend/internal/domain/quote"
	"interior-billing/go_backend/internal/domain/quote/pdf"
)

type Handlers struct {
	svc   *quote.Service
	pdf   pdf.Generator
	pages map[string]*template.Template
	log   *zap.Logger
}

func New(svc *quote.Service, gen pdf.Generator, log *zap.Logger) (*Handlers, error) {
	if log == nil {
		log = zap.NewNop()
	}
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handlers{svc: svc, pdf: gen, pages: pages, log: log.Named("handlers")}, nil
}
