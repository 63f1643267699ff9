package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"NewsBridge/internal/contentfilter"
	"NewsBridge/internal/domain"
	"NewsBridge/internal/ports"
	"NewsBridge/internal/scraper"
)

// Runner iterates the pipeline over every configured source. One source's
// failure, fatal or otherwise, never prevents the remaining sources from
// running.
type Runner struct {
	pipeline *Pipeline
	registry *scraper.Registry
	sources  []string
	store    ports.Store
	logger   *slog.Logger
}

// NewRunner wires the pipeline with the configured source order. An empty
// source list means "every registered source, in registration order".
func NewRunner(pipeline *Pipeline, registry *scraper.Registry, sources []string, store ports.Store, logger *slog.Logger) *Runner {
	if len(sources) == 0 {
		sources = registry.Names()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		pipeline: pipeline,
		registry: registry,
		sources:  sources,
		store:    store,
		logger:   logger,
	}
}

// Sources returns the configured run order.
func (r *Runner) Sources() []string {
	names := make([]string, len(r.sources))
	copy(names, r.sources)
	return names
}

// RunAll executes every configured source sequentially and returns one
// summary per source, in configured order.
func (r *Runner) RunAll(ctx context.Context, creds domain.Credentials) []domain.RunSummary {
	blacklist := r.loadBlacklist(ctx)

	summaries := make([]domain.RunSummary, 0, len(r.sources))
	for _, name := range r.sources {
		summaries = append(summaries, r.runSource(ctx, name, creds, blacklist))
	}
	return summaries
}

// runSource is the defensive boundary around a single source: the pipeline
// should not let anything escape, but the runner degrades to an error-only
// summary regardless.
func (r *Runner) runSource(ctx context.Context, name string, creds domain.Credentials, blacklist []string) (summary domain.RunSummary) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("source run panicked", "source", name, "panic", rec)
			summary = domain.RunSummary{SourceID: name, FatalError: fmt.Sprintf("%v", rec)}
		}
	}()

	source, err := r.registry.Resolve(name)
	if err != nil {
		return domain.RunSummary{SourceID: name, FatalError: err.Error()}
	}
	return r.pipeline.Run(ctx, source, creds, blacklist)
}

// loadBlacklist pulls the configurable keyword list from the store, falling
// back to the built-in list when the store fails or has nothing.
func (r *Runner) loadBlacklist(ctx context.Context) []string {
	keywords, err := r.store.FilterKeywords(ctx)
	if err != nil {
		r.logger.Warn("loading filter keywords failed, using defaults", "error", err)
		return contentfilter.DefaultBlacklist
	}
	if len(keywords) == 0 {
		return contentfilter.DefaultBlacklist
	}
	return keywords
}
