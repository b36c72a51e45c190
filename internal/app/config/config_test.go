package config

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "DATA_BACKEND", "DATABASE_URL", "SQLITE_PATH", "CORS_ALLOW_ORIGINS",
		"PDF_MODE", "PDF_FONT_DIR", "PDF_TIMEOUT", "PUBLIC_BASE_URL", "SEARCH_ENABLED",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.DataBackend != BackendMemory || cfg.PDFMode != PDFVector {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.PDFTimeout != 20*time.Second || !cfg.SearchEnabled {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !slices.Equal(cfg.CORSAllowOrigins, []string{"*"}) {
		t.Errorf("origins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.SQLitePath != "./data/quotations.db" || cfg.PublicBaseURL != "http://127.0.0.1:8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("DATA_BACKEND", "SQLite")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("PDF_MODE", "raster")
	t.Setenv("PDF_TIMEOUT", "5s")
	t.Setenv("PUBLIC_BASE_URL", "http://billing.local/")
	t.Setenv("SEARCH_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataBackend != BackendSQLite || cfg.PDFMode != PDFRaster || cfg.PDFTimeout != 5*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.CORSAllowOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("origins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.PublicBaseURL != "http://billing.local" || cfg.SearchEnabled {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadReportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("DATA_BACKEND", "postgres")
	t.Setenv("PDF_MODE", "bitmap")
	t.Setenv("PDF_TIMEOUT", "soon")
	t.Setenv("SEARCH_ENABLED", "maybe")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"DATABASE_URL", "PDF_MODE", "PDF_TIMEOUT", "SEARCH_ENABLED"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidateBackend(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{HTTPAddr: ":1", DataBackend: BackendMemory, PDFMode: PDFVector, PDFTimeout: time.Second}, false},
		{"postgres with url", Config{HTTPAddr: ":1", DataBackend: BackendPostgres, DatabaseURL: "postgres://x", PDFMode: PDFVector, PDFTimeout: time.Second}, false},
		{"sqlite without path", Config{HTTPAddr: ":1", DataBackend: BackendSQLite, PDFMode: PDFVector, PDFTimeout: time.Second}, true},
		{"unknown backend", Config{HTTPAddr: ":1", DataBackend: "mongo", PDFMode: PDFVector, PDFTimeout: time.Second}, true},
		{"pdf timeout at write timeout", Config{HTTPAddr: ":1", DataBackend: BackendMemory, PDFMode: PDFRaster, PDFTimeout: WriteTimeout}, true},
		{"pdf timeout below write timeout", Config{HTTPAddr: ":1", DataBackend: BackendMemory, PDFMode: PDFRaster, PDFTimeout: WriteTimeout - 10*time.Second}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
