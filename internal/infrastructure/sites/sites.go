// Package sites holds one extractor per configured news site. Each one knows
// the listing page, which anchors are article links, and the selector chains
// that locate title, body, and featured image on an article page.
package sites

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/scraper"
)

// maxLinks bounds per-run cost: no source yields more than this many
// candidates from a single listing page.
const maxLinks = 20

// All returns every site extractor in the order sources are run by default.
func All() []scraper.Source {
	return []scraper.Source{
		&CadaMinuto{},
		&TNH1{},
		&GazetaWeb{},
		&TribunaHoje{},
		&JornalDeAlagoas{},
		&Alagoas24Horas{},
		&AgoraAlagoas{},
	}
}

// linkSet accumulates unique links up to maxLinks, keeping discovery order.
type linkSet struct {
	seen  map[string]struct{}
	links []string
}

func newLinkSet() *linkSet {
	return &linkSet{seen: map[string]struct{}{}}
}

func (s *linkSet) add(link string) {
	if len(s.links) >= maxLinks {
		return
	}
	if _, ok := s.seen[link]; ok {
		return
	}
	s.seen[link] = struct{}{}
	s.links = append(s.links, link)
}

// firstMatch walks a selector fallback chain and returns the first selection
// that exists in the document.
func firstMatch(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, selector := range selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// paragraphsText joins the non-empty <p> texts under sel with newlines,
// matching the plain-text body format the publish sink expects.
func paragraphsText(sel *goquery.Selection) string {
	var paragraphs []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n")
}

func firstLine(body string) string {
	if body == "" {
		return ""
	}
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		return body[:idx]
	}
	return body
}

// imageSrc resolves the src of the first image matching the fallback chain.
func imageSrc(doc *goquery.Document, selectors ...string) string {
	img := firstMatch(doc, selectors...)
	if img == nil {
		return ""
	}
	src, _ := img.Attr("src")
	return src
}
