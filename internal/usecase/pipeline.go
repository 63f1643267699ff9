package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/classifier"
	"NewsBridge/internal/contentfilter"
	"NewsBridge/internal/domain"
	"NewsBridge/internal/ports"
	"NewsBridge/internal/scraper"
)

// PipelineDeps wires all driven adapters into the per-source pipeline.
type PipelineDeps struct {
	Fetcher   ports.Fetcher
	Store     ports.Store
	Publisher ports.Publisher
	Pacer     ports.Pacer
	Logger    *slog.Logger
}

// Pipeline runs one source end to end: listing fetch, link extraction, and
// the per-article dedup/fetch/extract/filter/classify/publish sequence.
type Pipeline struct {
	fetcher   ports.Fetcher
	store     ports.Store
	publisher ports.Publisher
	pacer     ports.Pacer
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		fetcher:   deps.Fetcher,
		store:     deps.Store,
		publisher: deps.Publisher,
		pacer:     deps.Pacer,
		logger:    logger,
	}
}

// Run drives a single source and always returns a RunSummary. A listing
// failure is fatal for this source only; per-article failures are absorbed
// into the filtered counter. Run-level telemetry is recorded unconditionally.
func (p *Pipeline) Run(ctx context.Context, source scraper.Source, creds domain.Credentials, blacklist []string) domain.RunSummary {
	summary := domain.RunSummary{SourceID: source.Name()}

	doc, err := p.fetchPaced(ctx, source.ListingURL())
	if err != nil {
		summary.FatalError = "failed to fetch listing page"
		p.logger.Error("listing fetch failed", "source", source.Name(), "error", err)
		p.recordSummary(ctx, summary)
		return summary
	}

	links, err := extractLinksSafe(source, doc)
	if err != nil {
		summary.FatalError = err.Error()
		p.logger.Error("link extraction failed", "source", source.Name(), "error", err)
		p.recordSummary(ctx, summary)
		return summary
	}
	summary.ArticlesFound = len(links)

	for _, link := range links {
		item, published := p.processArticle(ctx, source, link, creds, blacklist)
		if published {
			summary.ArticlesPublished++
			summary.PublishedItems = append(summary.PublishedItems, item)
		} else {
			summary.ArticlesFiltered++
		}
	}

	p.logger.Info("source run complete",
		"source", source.Name(),
		"found", summary.ArticlesFound,
		"published", summary.ArticlesPublished,
		"filtered", summary.ArticlesFiltered)
	p.recordSummary(ctx, summary)
	return summary
}

// extractLinksSafe keeps a panicking extractor fatal for its source only.
func extractLinksSafe(source scraper.Source, doc *goquery.Document) (links []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			links = nil
			err = fmt.Errorf("extract links: %v", r)
		}
	}()
	return source.ExtractLinks(doc), nil
}

// processArticle runs the per-article sequence. Every failure path, panics
// included, reports "not published" so the caller counts the article as
// filtered and moves on.
func (p *Pipeline) processArticle(ctx context.Context, source scraper.Source, link string, creds domain.Credentials, blacklist []string) (item domain.PublishedItem, published bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while processing article", "source", source.Name(), "url", link, "panic", r)
			published = false
		}
	}()

	already, err := p.store.IsPublished(ctx, link)
	if err != nil {
		p.logger.Warn("dedup check failed", "url", link, "error", err)
		return item, false
	}
	if already {
		p.logger.Debug("skipping already published url", "url", link)
		return item, false
	}

	doc, err := p.fetchPaced(ctx, link)
	if err != nil {
		p.logger.Warn("article fetch failed", "url", link, "error", err)
		return item, false
	}

	article, err := source.ExtractArticle(doc, link)
	if err != nil {
		p.logger.Debug("article extraction failed", "url", link, "error", err)
		return item, false
	}

	if contentfilter.Blocked(article.Title, article.Body, blacklist) {
		p.logger.Debug("article blocked by content filter", "url", link, "title", article.Title)
		return item, false
	}

	category := classifier.Classify(article.Title, article.Excerpt())

	var mediaID int64
	if article.ImageURL != "" {
		mediaID, err = p.publisher.UploadImage(ctx, article.ImageURL, imageFilename(article.ImageURL), creds)
		if err != nil {
			p.logger.Warn("image upload failed, publishing without featured image", "url", link, "error", err)
			mediaID = 0
		}
	}

	postID, err := p.publisher.CreatePost(ctx, domain.Post{
		Title:           article.Title,
		Body:            article.Body,
		Category:        category,
		FeaturedMediaID: mediaID,
		SourceURL:       link,
	}, creds)
	if err != nil {
		p.logger.Warn("post creation failed", "url", link, "error", err)
		return item, false
	}

	// The post exists remotely at this point; a failed store write is
	// reported, never rolled back.
	if err := p.store.RecordPublished(ctx, domain.PublishedRecord{
		URL:      link,
		Title:    article.Title,
		SourceID: source.Name(),
		Category: category,
		PostID:   postID,
	}); err != nil {
		p.logger.Warn("failed to record published url", "url", link, "error", err)
	}

	return domain.PublishedItem{URL: link, Title: article.Title, Category: category}, true
}

// fetchPaced funnels every document fetch through the pacer so requests to a
// source stay at least one interval apart.
func (p *Pipeline) fetchPaced(ctx context.Context, url string) (*goquery.Document, error) {
	if err := p.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("pacing wait: %w", err)
	}
	return p.fetcher.Fetch(ctx, url)
}

func (p *Pipeline) recordSummary(ctx context.Context, summary domain.RunSummary) {
	if err := p.store.RecordRunSummary(ctx, summary); err != nil {
		p.logger.Warn("failed to record run summary", "source", summary.SourceID, "error", err)
	}
}

func imageFilename(imageURL string) string {
	trimmed := imageURL
	if idx := strings.IndexByte(trimmed, '?'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if idx := strings.LastIndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return "image.jpg"
	}
	return trimmed
}
