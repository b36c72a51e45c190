package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"interior-billing/go_backend/internal/app/config"
	apphttp "interior-billing/go_backend/internal/app/http"
	"interior-billing/go_backend/internal/app/logger"
	"interior-billing/go_backend/internal/domain/quote"
	"interior-billing/go_backend/internal/domain/quote/pdf"
	"interior-billing/go_backend/internal/domain/quote/pdf/gofpdf"
	"interior-billing/go_backend/internal/domain/quote/pdf/raster"
	"interior-billing/go_backend/internal/infra/db/memory"
	"interior-billing/go_backend/internal/infra/db/postgres"
	"interior-billing/go_backend/internal/infra/db/sqlite"
	"interior-billing/go_backend/internal/infra/search"
)

const shutdownTimeout = 10 * time.Second

// App owns the server and everything it closes on shutdown.
type App struct {
	cfg    config.Config
	log    *zap.Logger
	store  quote.Store
	index  *search.Index
	server *http.Server
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{cfg: cfg, log: log}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.store = store
	log.Info("store ready", zap.String("backend", cfg.DataBackend))

	var index quote.Index
	if cfg.SearchEnabled {
		a.index, err = search.New(log)
		if err != nil {
			a.closeResources()
			return nil, err
		}
		index = a.index
	}

	svc := quote.NewService(store, index, log)
	if err := svc.Reindex(ctx); err != nil {
		a.closeResources()
		return nil, fmt.Errorf("build search index: %w", err)
	}

	router, err := apphttp.NewRouter(cfg, svc, pdfGenerator(cfg, log), log)
	if err != nil {
		a.closeResources()
		return nil, err
	}

	a.server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return a, nil
}

func openStore(ctx context.Context, cfg config.Config) (quote.Store, error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return db, nil
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		return s, nil
	case config.BackendMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
}

func pdfGenerator(cfg config.Config, log *zap.Logger) pdf.Generator {
	vector := gofpdf.New(cfg.PDFFontDir, log)
	if cfg.PDFMode == config.PDFRaster {
		return raster.New(cfg.PublicBaseURL, cfg.PDFTimeout, vector, log)
	}
	return vector
}

// Run serves until the listener fails or Shutdown is called.
func (a *App) Run() error {
	a.log.Info("listening", zap.String("addr", a.cfg.HTTPAddr))
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, then the search index, then the store.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	return errors.Join(err, a.closeResources())
}

func (a *App) closeResources() error {
	var errs []error
	if a.index != nil {
		errs = append(errs, a.index.Close())
	}
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	return errors.Join(errs...)
}

// Run is the process entry point: it serves until SIGINT or SIGTERM.
func Run() {
	cfg := config.MustLoad()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("startup failed", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.Run)
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zl.Error("server stopped", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}
