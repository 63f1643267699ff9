package sites

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

// Alagoas24Horas extracts from alagoas24horas.com.br.
type Alagoas24Horas struct{}

var _ scraper.Source = (*Alagoas24Horas)(nil)

func (s *Alagoas24Horas) Name() string       { return "alagoas24horas.com.br" }
func (s *Alagoas24Horas) ListingURL() string { return "https://www.alagoas24horas.com.br/" }

func (s *Alagoas24Horas) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.Contains(href, "alagoas24horas.com.br/") && len(href) > 35 {
			set.add(href)
		}
	})
	return set.links
}

func (s *Alagoas24Horas) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	title := firstMatch(doc, "h1", ".entry-title", ".news-title")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	if content := firstMatch(doc, ".entry-content", ".news-body", "article"); content != nil {
		body = paragraphsText(content)
	}

	firstPara := ""
	if p := firstMatch(doc, ".entry-content p", "article p"); p != nil {
		firstPara = strings.TrimSpace(p.Text())
	}

	return domain.Article{
		URL:            url,
		Title:          strings.TrimSpace(title.Text()),
		Body:           body,
		ImageURL:       imageSrc(doc, ".wp-post-image", ".entry-content img", "article img"),
		FirstParagraph: firstPara,
	}, nil
}
