package scraper

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
)

// Source captures the site-specific half of the pipeline: which listing page
// to read, which anchors on it are articles, and how to pull title/body/image
// out of an article page. One implementation per configured news site.
type Source interface {
	Name() string
	ListingURL() string
	ExtractLinks(doc *goquery.Document) []string
	ExtractArticle(doc *goquery.Document, url string) (domain.Article, error)
}

// Registry keeps a mapping from source names to their implementations.
type Registry struct {
	sources map[string]Source
	order   []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Register adds or replaces a source implementation. Registration order is
// remembered and used as the default run order.
func (r *Registry) Register(source Source) {
	if r.sources == nil {
		r.sources = map[string]Source{}
	}
	if _, exists := r.sources[source.Name()]; !exists {
		r.order = append(r.order, source.Name())
	}
	r.sources[source.Name()] = source
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Source, error) {
	if source, ok := r.sources[name]; ok {
		return source, nil
	}
	return nil, fmt.Errorf("source %s is not registered", name)
}

// Names lists registered source names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
