package sites

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

const gazetaBase = "https://www.gazetaweb.com"

// Article URLs end with a 5-7 digit numeric ID.
var gazetaIDSuffix = regexp.MustCompile(`-\d{5,7}$`)

// GazetaWeb extracts from gazetaweb.com.
type GazetaWeb struct{}

var _ scraper.Source = (*GazetaWeb)(nil)

func (s *GazetaWeb) Name() string       { return "gazetaweb.com" }
func (s *GazetaWeb) ListingURL() string { return "https://www.gazetaweb.com/" }

func (s *GazetaWeb) ExtractLinks(doc *goquery.Document) []string {
	set := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "/noticias/") {
			href = gazetaBase + href
		}
		if strings.Contains(href, "/noticias/") && gazetaIDSuffix.MatchString(href) {
			set.add(href)
		}
	})
	return set.links
}

func (s *GazetaWeb) ExtractArticle(doc *goquery.Document, url string) (domain.Article, error) {
	title := firstMatch(doc, ".gzw-article h1", "header h1", "h1")
	if title == nil || strings.TrimSpace(title.Text()) == "" {
		return domain.Article{}, fmt.Errorf("%s: article title not found", s.Name())
	}

	body := ""
	if content := firstMatch(doc, "#article", "article"); content != nil {
		body = paragraphsText(content)
	}

	return domain.Article{
		URL:            url,
		Title:          strings.TrimSpace(title.Text()),
		Body:           body,
		ImageURL:       imageSrc(doc, ".article-destaque img", ".article-destaque picture img", "article img"),
		FirstParagraph: firstLine(body),
	}, nil
}
