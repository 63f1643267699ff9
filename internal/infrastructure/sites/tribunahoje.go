package sites

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

const tribunaBase = "https://tribunahoje.com"

// Article URLs carry a /YYYY/MM/DD/ path segment.
var datePath = regexp.MustCompile(`/20\d{2}/\d{2}/\d{2}/`)

// TribunaHoje extracts from tribunahoje.com.
type TribunaHoje struct{}

var _ scraper.Source = (*TribunaHoje)(nil)

func (s *TribunaHoje) Name() string       { return "tribunahoje.com" }
func (s *TribunaHoje) ListingURL() string { return "https://tribunahoje.com/" }

func (s *TribunaHoje) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "/noticias/") {
			href = tribunaBase + href
		}
		if strings.Contains(href, "/noticias/") && datePath.MatchString(href) {
			set.add(href)
		}
	})
	return set.links
}

func (s *TribunaHoje) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	// A bare h1 picks up the category name on this site; only the
	// news-header title is the real headline.
	title := firstMatch(doc, "h1.news-header__title")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	if content := firstMatch(doc, "section.news-content", "article"); content != nil {
		body = paragraphsText(content)
	}

	return domain.Article{
		URL:   url,
		Title: strings.TrimSpace(title.Text()),
		Body:  body,
		ImageURL: imageSrc(doc,
			"header.news-header figure picture img",
			"figure picture img",
			"img[src*='s3.tribunahoje.com']"),
		FirstParagraph: firstLine(body),
	}, nil
}
