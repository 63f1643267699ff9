package usecase

import (
	"context"
	"fmt"
	"strings"

	"NewsBridge/internal/classifier"
	"NewsBridge/internal/contentfilter"
	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

const (
	previewMaxArticles = 5
	previewBodyRunes   = 200
)

// PreviewEntry describes what the pipeline would do with one candidate link.
type PreviewEntry struct {
	URL         string          `json:"url"`
	Status      string          `json:"status"`
	Reason      string          `json:"reason,omitempty"`
	Title       string          `json:"title,omitempty"`
	Category    domain.Category `json:"category,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	BodyPreview string          `json:"body_preview,omitempty"`
}

// PreviewResult is the dry-run outcome for one source.
type PreviewResult struct {
	Site       string         `json:"site"`
	ListingURL string         `json:"listing_url"`
	LinksFound int            `json:"links_found"`
	Articles   []PreviewEntry `json:"articles"`
	Error      string         `json:"error,omitempty"`
}

// Preview walks a source like Run does but publishes nothing and writes
// nothing, reporting the decision each article would get.
func (p *Pipeline) Preview(ctx context.Context, source scraper.Source, blacklist []string) PreviewResult {
	result := PreviewResult{
		Site:       source.Name(),
		ListingURL: source.ListingURL(),
		Articles:   []PreviewEntry{},
	}

	doc, err := p.fetchPaced(ctx, source.ListingURL())
	if err != nil {
		result.Error = "failed to fetch listing page"
		return result
	}

	links, err := extractLinksSafe(source, doc)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.LinksFound = len(links)

	if len(links) > previewMaxArticles {
		links = links[:previewMaxArticles]
	}
	for _, link := range links {
		result.Articles = append(result.Articles, p.previewArticle(ctx, source, link, blacklist))
	}
	return result
}

func (p *Pipeline) previewArticle(ctx context.Context, source scraper.Source, link string, blacklist []string) (entry PreviewEntry) {
	entry = PreviewEntry{URL: link}
	defer func() {
		if r := recover(); r != nil {
			entry.Status = "error"
			entry.Reason = fmt.Sprintf("%v", r)
		}
	}()

	already, err := p.store.IsPublished(ctx, link)
	if err != nil {
		entry.Status = "error"
		entry.Reason = err.Error()
		return entry
	}
	if already {
		entry.Status = "skip"
		entry.Reason = "already published"
		return entry
	}

	doc, err := p.fetchPaced(ctx, link)
	if err != nil {
		entry.Status = "skip"
		entry.Reason = "fetch failed"
		return entry
	}

	article, err := source.ExtractArticle(doc, link)
	if err != nil {
		entry.Status = "skip"
		entry.Reason = "parse failed"
		return entry
	}
	entry.Title = article.Title

	if contentfilter.Blocked(article.Title, article.Body, blacklist) {
		entry.Status = "filtered"
		entry.Reason = "violence/police content"
		return entry
	}

	entry.Status = "would_publish"
	entry.Category = classifier.Classify(article.Title, article.Excerpt())
	entry.ImageURL = article.ImageURL
	entry.BodyPreview = bodyPreview(article.Body)
	return entry
}

func bodyPreview(body string) string {
	preview := strings.ReplaceAll(body, "\n", " ")
	runes := []rune(preview)
	if len(runes) > previewBodyRunes {
		return string(runes[:previewBodyRunes])
	}
	return preview
}

// PreviewAll dry-runs every configured source, or just the named one.
// An unknown name is an error listing the valid options.
func (r *Runner) PreviewAll(ctx context.Context, site string) ([]PreviewResult, error) {
	names := r.sources
	if site != "" {
		if _, err := r.registry.Resolve(site); err != nil {
			return nil, fmt.Errorf("unknown site %q, options: %s", site, strings.Join(r.sources, ", "))
		}
		names = []string{site}
	}

	blacklist := r.loadBlacklist(ctx)
	results := make([]PreviewResult, 0, len(names))
	for _, name := range names {
		source, err := r.registry.Resolve(name)
		if err != nil {
			results = append(results, PreviewResult{Site: name, Error: err.Error()})
			continue
		}
		results = append(results, r.pipeline.Preview(ctx, source, blacklist))
	}
	return results, nil
}
