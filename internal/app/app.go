package app

import (
	"context"
	"fmt"
	"log/slog"

	"NewsBridge/internal/config"
	"NewsBridge/internal/domain"
	"NewsBridge/internal/infrastructure/fetch"
	"NewsBridge/internal/infrastructure/pacing"
	"NewsBridge/internal/infrastructure/sites"
	"NewsBridge/internal/infrastructure/storage"
	"NewsBridge/internal/infrastructure/wordpress"
	"NewsBridge/internal/logging"
	"NewsBridge/internal/scraper"
	"NewsBridge/internal/server"
	"NewsBridge/internal/usecase"
)

// Application owns the wired object graph and its lifecycle.
type Application struct {
	logger *slog.Logger
	store  *storage.PostgresStore
	runner *usecase.Runner
	server *server.Server
}

// New connects storage, registers every site extractor, and assembles the
// pipeline, runner, and HTTP server.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Application, error) {
	store, err := storage.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	registry := scraper.NewRegistry()
	for _, source := range sites.All() {
		registry.Register(source)
	}

	publisher := wordpress.New(domain.Credentials{
		BaseURL:     cfg.WordPress.URL,
		Username:    cfg.WordPress.Username,
		AppPassword: cfg.WordPress.AppPassword,
		PostStatus:  cfg.WordPress.PostStatus,
	}, nil)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:   fetch.New(nil),
		Store:     store,
		Publisher: publisher,
		Pacer:     pacing.NewFixedDelay(cfg.Scrape.Delay()),
		Logger:    logging.Component(logger, "pipeline"),
	})

	runner := usecase.NewRunner(pipeline, registry, cfg.Scrape.Sources, store,
		logging.Component(logger, "runner"))

	srv := server.New(runner, cfg.Server, logging.Component(logger, "server"))

	return &Application{
		logger: logger,
		store:  store,
		runner: runner,
		server: srv,
	}, nil
}

// RunOnce executes a single pass over every configured source with the
// process-level credentials and returns the per-source summaries.
func (a *Application) RunOnce(ctx context.Context) []domain.RunSummary {
	a.logger.Info("starting one-shot run", "sources", len(a.runner.Sources()))
	return a.runner.RunAll(ctx, domain.Credentials{})
}

// Serve blocks on the trigger HTTP server until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases held resources.
func (a *Application) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing storage failed", "error", err)
	}
}
