package sites

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

const agoraBase = "https://agoraalagoas.com"

// AgoraAlagoas extracts from agoraalagoas.com. The site is rendered by
// Elementor, so the static HTML carries little markup; article URLs are
// discovered from the schema.org JSON-LD blocks first, with plain anchors as
// a fallback.
type AgoraAlagoas struct{}

var _ scraper.Source = (*AgoraAlagoas)(nil)

func (s *AgoraAlagoas) Name() string       { return "agoraalagoas.com" }
func (s *AgoraAlagoas) ListingURL() string { return "https://agoraalagoas.com/" }

func (s *AgoraAlagoas) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()

	doc.Find("script[type='application/ld+json']").Each(func(_ int, script *goquery.Selection) {
		collectJSONLDLinks(set, script.Text())
	})

	if len(set.links) == 0 {
		doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if strings.HasPrefix(href, "/") {
				href = agoraBase + href
			}
			if !strings.Contains(href, "agoraalagoas.com") || len(href) <= 30 {
				return
			}
			for _, skip := range []string{"#", "sobre", "contato", "anuncie", "whatsapp"} {
				if strings.Contains(href, skip) {
					return
				}
			}
			set.add(href)
		})
	}

	links := make([]string, 0, len(set.links))
	for _, link := range set.links {
		if strings.Contains(link, "#") || strings.TrimRight(link, "/") == agoraBase {
			continue
		}
		links = append(links, link)
	}
	return links
}

// collectJSONLDLinks pulls article URLs out of one JSON-LD block, which may
// be a single object, a list, or an ItemList.
func collectJSONLDLinks(set *linkSet, raw string) {
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return
	}

	items, ok := data.([]any)
	if !ok {
		items = []any{data}
	}

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		addCandidate(set, stringField(obj, "url"), stringField(obj, "@id"))

		entries, _ := obj["itemListElement"].([]any)
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			candidate := stringField(entry, "url")
			if candidate == "" {
				if inner, ok := entry["item"].(map[string]any); ok {
					candidate = stringField(inner, "url")
				}
			}
			addCandidate(set, candidate)
		}
	}
}

func addCandidate(set *linkSet, candidates ...string) {
	for _, candidate := range candidates {
		if strings.Contains(candidate, "agoraalagoas.com") && len(candidate) > 30 {
			set.add(candidate)
			return
		}
	}
}

func stringField(obj map[string]any, key string) string {
	value, _ := obj[key].(string)
	return value
}

func (s *AgoraAlagoas) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	title := firstMatch(doc, "h1", "h2.entry-title", "h2")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	if content := firstMatch(doc, ".entry-content", "article", ".elementor-widget-text-editor"); content != nil {
		body = paragraphsText(content)
	}

	return domain.Article{
		URL:   url,
		Title: strings.TrimSpace(title.Text()),
		Body:  body,
		ImageURL: imageSrc(doc,
			".wp-post-image",
			".entry-content img",
			"article img",
			"img[src*='agoraalagoas']"),
		FirstParagraph: firstLine(body),
	}, nil
}
