package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"

	PDFVector = "vector"
	PDFRaster = "raster"
)

// WriteTimeout bounds every response. A raster export must time out early
// enough to still send the vector fallback.
const WriteTimeout = 30 * time.Second

type Config struct {
	HTTPAddr         string
	DataBackend      string
	DatabaseURL      string
	SQLitePath       string
	CORSAllowOrigins []string
	PDFMode          string
	PDFFontDir       string
	PDFTimeout       time.Duration
	PublicBaseURL    string
	SearchEnabled    bool
	LogLevel         string
	LogFile          string
}

// Load reads the environment, after merging an optional .env file, and
// validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	var errs []error
	cfg := Config{
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		DataBackend:      strings.ToLower(env("DATA_BACKEND", BackendMemory)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SQLitePath:       env("SQLITE_PATH", "./data/quotations.db"),
		CORSAllowOrigins: splitList(env("CORS_ALLOW_ORIGINS", "*")),
		PDFMode:          strings.ToLower(env("PDF_MODE", PDFVector)),
		PDFFontDir:       os.Getenv("PDF_FONT_DIR"),
		PDFTimeout:       getEnvDuration("PDF_TIMEOUT", 20*time.Second, &errs),
		PublicBaseURL:    strings.TrimRight(env("PUBLIC_BASE_URL", "http://127.0.0.1:8080"), "/"),
		SearchEnabled:    getEnvBool("SEARCH_ENABLED", true, &errs),
		LogLevel:         strings.ToLower(env("LOG_LEVEL", "info")),
		LogFile:          os.Getenv("LOG_FILE"),
	}
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []string
	switch c.DataBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when DATA_BACKEND=postgres")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH is required when DATA_BACKEND=sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("DATA_BACKEND %q is not one of memory, postgres, sqlite", c.DataBackend))
	}
	if c.PDFMode != PDFVector && c.PDFMode != PDFRaster {
		problems = append(problems, fmt.Sprintf("PDF_MODE %q is not one of vector, raster", c.PDFMode))
	}
	if c.PDFTimeout <= 0 {
		problems = append(problems, "PDF_TIMEOUT must be positive")
	}
	if c.PDFTimeout >= WriteTimeout {
		problems = append(problems, fmt.Sprintf("PDF_TIMEOUT must be shorter than the %s write timeout", WriteTimeout))
	}
	if c.HTTPAddr == "" {
		problems = append(problems, "HTTP_ADDR must not be empty")
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvDuration(k string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return d
}

func getEnvBool(k string, def bool, errs *[]error) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
