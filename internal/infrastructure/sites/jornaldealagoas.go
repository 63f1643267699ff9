package sites

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

const jornalBase = "https://www.jornaldealagoas.com.br"

// JornalDeAlagoas extracts from jornaldealagoas.com.br.
type JornalDeAlagoas struct{}

var _ scraper.Source = (*JornalDeAlagoas)(nil)

func (s *JornalDeAlagoas) Name() string       { return "jornaldealagoas.com.br" }
func (s *JornalDeAlagoas) ListingURL() string { return "https://jornaldealagoas.com.br/" }

func (s *JornalDeAlagoas) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "/") && datePath.MatchString(href) {
			href = jornalBase + href
		}
		if strings.Contains(href, "jornaldealagoas.com.br") && datePath.MatchString(href) {
			set.add(href)
		}
	})
	return set.links
}

func (s *JornalDeAlagoas) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	title := firstMatch(doc, "h1", "h2.title", "h2")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	if content := firstMatch(doc, "article", ".news-body", "main"); content != nil {
		body = paragraphsText(content)
	}

	return domain.Article{
		URL:   url,
		Title: strings.TrimSpace(title.Text()),
		Body:  body,
		ImageURL: imageSrc(doc,
			"img[src*='digitaloceanspaces.com']",
			"article img",
			".news-img img"),
		FirstParagraph: firstLine(body),
	}, nil
}
