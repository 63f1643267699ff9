package sites

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

// CadaMinuto extracts from cadaminuto.com.br, a stock WordPress theme.
type CadaMinuto struct{}

var _ scraper.Source = (*CadaMinuto)(nil)

func (s *CadaMinuto) Name() string       { return "cadaminuto.com.br" }
func (s *CadaMinuto) ListingURL() string { return "https://www.cadaminuto.com.br/" }

func (s *CadaMinuto) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		// Anything shorter is the homepage or a section index.
		if strings.HasPrefix(href, "https://www.cadaminuto.com.br/") && len(href) > 35 {
			set.add(href)
		}
	})
	return set.links
}

func (s *CadaMinuto) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	title := firstMatch(doc, "h1", ".entry-title", "title")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	if content := firstMatch(doc, ".entry-content", "article", ".post-content"); content != nil {
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
		ImageURL:       imageSrc(doc, ".wp-post-image", "article img", ".entry-content img"),
		FirstParagraph: firstPara,
	}, nil
}
