package sites

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

// TNH1 extracts from tnh1.com.br.
type TNH1 struct{}

var _ scraper.Source = (*TNH1)(nil)

func (s *TNH1) Name() string       { return "tnh1.com.br" }
func (s *TNH1) ListingURL() string { return "https://tnh1.com.br/" }

func (s *TNH1) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "https://tnh1.com.br/") && len(href) > 25 {
			set.add(href)
		}
	})
	return set.links
}

func (s *TNH1) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	title := firstMatch(doc, "h1.entry-title", "h1", ".titulo")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	content := firstMatch(doc, ".entry-content", ".texto-noticia", "article")
	if content != nil {
		body = paragraphsText(content)
	}

	firstPara := ""
	if content != nil {
		if p := content.Find("p").First(); p.Length() > 0 {
			firstPara = strings.TrimSpace(p.Text())
		}
	}

	return domain.Article{
		URL:            url,
		Title:          strings.TrimSpace(title.Text()),
		Body:           body,
		ImageURL:       imageSrc(doc, ".wp-post-image", ".entry-content img", "article img"),
		FirstParagraph: firstPara,
	}, nil
}
