package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/khrees2412/quickcv/internal/config"
	"github.com/khrees2412/quickcv/internal/export"
	"github.com/khrees2412/quickcv/internal/export/docx"
	"github.com/khrees2412/quickcv/internal/export/pdf"
	"github.com/khrees2412/quickcv/internal/logging"
	"github.com/khrees2412/quickcv/internal/session"
	"github.com/khrees2412/quickcv/internal/store"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/rs/zerolog"
)

// App is the dependency container for the CLI application
type App struct {
	Config   *config.Config
	Store    *store.Store
	Autosave *store.Autosaver
	Session  *session.Session
	Exporter *export.Exporter
	Logger   zerolog.Logger

	// Recovered holds the load error when a stored resume was discarded
	// because it did not match the expected shape
	Recovered error

	background sync.WaitGroup
}

// NewApp loads the configuration and wires every component
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v (fix it with 'quickcv config set')", ErrInvalidArgument, err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	return Open(ctx, cfg, logger)
}

// Open wires the application from an already loaded configuration
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// an unusable snapshot starts an empty resume; any other read failure
	// stops here so a broken database is never overwritten
	var recovered error
	initial, err := loadInitial(ctx, st)
	switch {
	case errors.Is(err, ErrSchemaMismatch):
		logger.Warn().Err(err).Msg("stored resume has an unexpected shape, starting from an empty resume")
		initial, recovered = models.Default(), err
	case err != nil:
		st.Close()
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	engine, err := pdf.NewEngine(cfg.PDFEngine, cfg.ChromeTimeout, logger)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	autosave := store.NewAutosaver(st, cfg.AutosaveInterval, logger)

	return &App{
		Config:    cfg,
		Store:     st,
		Autosave:  autosave,
		Session:   session.New(initial, autosave, logger),
		Exporter:  export.NewExporter(pdf.NewEncoder(engine), docx.NewEncoder(), logger),
		Logger:    logger,
		Recovered: recovered,
	}, nil
}

// loadInitial returns the stored resume, or the default one when nothing
// is stored
func loadInitial(ctx context.Context, st *store.Store) (models.Resume, error) {
	r, ok, err := st.Load(ctx)
	if err != nil {
		return models.Resume{}, err
	}
	if !ok {
		return models.Default(), nil
	}
	return r, nil
}

// Dispatch applies an action to the session
func (a *App) Dispatch(action session.Action) models.Resume {
	return a.Session.Dispatch(action)
}

// Resume returns the resume being edited
func (a *App) Resume() models.Resume {
	return a.Session.Resume()
}

// ExporterFor returns the exporter to use for a pdf engine override. An
// empty name keeps the configured engine.
func (a *App) ExporterFor(engine string) (*export.Exporter, error) {
	if engine == "" || engine == a.Config.PDFEngine {
		return a.Exporter, nil
	}
	e, err := pdf.NewEngine(engine, a.Config.ChromeTimeout, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return a.Exporter.WithPDF(pdf.NewEncoder(e)), nil
}

// Go runs fn in the background. Close waits for it.
func (a *App) Go(fn func()) {
	a.background.Add(1)
	go func() {
		defer a.background.Done()
		fn()
	}()
}

// Close waits for background exports, flushes the pending save and closes
// the store
func (a *App) Close() error {
	a.background.Wait()

	var errs []error
	if a.Autosave != nil {
		if err := a.Autosave.Close(); err != nil {
			errs = append(errs, fmt.Errorf("final save failed: %w", err))
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
