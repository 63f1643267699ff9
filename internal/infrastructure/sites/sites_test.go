package sites

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func TestTribunaHojeExtractLinks(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
	<body>
	  <a href="/noticias/cidades/2025/08/30/1234-obra-entregue">Obra</a>
	  <a href="https://tribunahoje.com/noticias/politica/2025/08/29/5678-sessao">Sessão</a>
	  <a href="/noticias/cidades/">Seção</a>
	  <a href="https://tribunahoje.com/sobre">Sobre</a>
	</body>`)

	links := (&TribunaHoje{}).ExtractLinks(doc)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d: %v", len(links), links)
	}
	if links[0] != "https://tribunahoje.com/noticias/cidades/2025/08/30/1234-obra-entregue" {
		t.Fatalf("relative link not resolved: %s", links[0])
	}
}

func TestTribunaHojeExtractArticle(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
	<header class="news-header">
	  <h1 class="news-header__title">Título da matéria</h1>
	  <figure><picture><img src="https://s3.tribunahoje.com/img/1.jpg"></picture></figure>
	</header>
	<section class="news-content">
	  <p>Primeiro parágrafo.</p>
	  <p>Segundo parágrafo.</p>
	  <p>  </p>
	</section>`)

	article, err := (&TribunaHoje{}).ExtractArticle(doc, "https://tribunahoje.com/noticias/x")
	if err != nil {
		t.Fatalf("ExtractArticle error: %v", err)
	}
	if article.Title != "Título da matéria" {
		t.Fatalf("unexpected title: %q", article.Title)
	}
	if article.Body != "Primeiro parágrafo.\nSegundo parágrafo." {
		t.Fatalf("unexpected body: %q", article.Body)
	}
	if article.FirstParagraph != "Primeiro parágrafo." {
		t.Fatalf("unexpected first paragraph: %q", article.FirstParagraph)
	}
	if article.ImageURL != "https://s3.tribunahoje.com/img/1.jpg" {
		t.Fatalf("unexpected image: %q", article.ImageURL)
	}
}

func TestTribunaHojeMissingTitleFails(t *testing.T) {
	t.Parallel()

	// A bare h1 holds the category name; extraction must fail rather than
	// produce an article titled after the section.
	doc := mustDoc(t, `<h1>Cidades</h1><section class="news-content"><p>texto</p></section>`)
	if _, err := (&TribunaHoje{}).ExtractArticle(doc, "https://tribunahoje.com/noticias/x"); err == nil {
		t.Fatal("expected error when headline selector misses")
	}
}

func TestCadaMinutoLinkCap(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<body>")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, `<a href="https://www.cadaminuto.com.br/noticia/2025/artigo-%02d">n</a>`, i)
	}
	b.WriteString("</body>")

	links := (&CadaMinuto{}).ExtractLinks(mustDoc(t, b.String()))
	if len(links) != maxLinks {
		t.Fatalf("expected cap at %d links, got %d", maxLinks, len(links))
	}
}

func TestCadaMinutoDeduplicatesLinks(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
	<a href="https://www.cadaminuto.com.br/noticia/2025/mesma-materia">a</a>
	<a href="https://www.cadaminuto.com.br/noticia/2025/mesma-materia">b</a>`)

	links := (&CadaMinuto{}).ExtractLinks(doc)
	if len(links) != 1 {
		t.Fatalf("expected deduplicated links, got %v", links)
	}
}

func TestGazetaWebLinksRequireNumericSuffix(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
	<a href="/noticias/cotidiano/ponte-liberada-123456">ok</a>
	<a href="/noticias/cotidiano/">seção</a>
	<a href="https://www.gazetaweb.com/noticias/esportes/final-987654">ok</a>`)

	links := (&GazetaWeb{}).ExtractLinks(doc)
	if len(links) != 2 {
		t.Fatalf("expected 2 article links, got %v", links)
	}
	if links[0] != "https://www.gazetaweb.com/noticias/cotidiano/ponte-liberada-123456" {
		t.Fatalf("relative link not resolved: %s", links[0])
	}
}

func TestAgoraAlagoasJSONLDDiscovery(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
	<script type="application/ld+json">
	{"@type":"ItemList","itemListElement":[
	  {"url":"https://agoraalagoas.com/2025/08/30/nova-escola-inaugurada"},
	  {"item":{"url":"https://agoraalagoas.com/2025/08/29/feira-do-agreste"}}
	]}
	</script>
	<a href="/2025/08/28/materia-ancora-longa-o-suficiente">fallback</a>`)

	links := (&AgoraAlagoas{}).ExtractLinks(doc)
	if len(links) != 2 {
		t.Fatalf("expected JSON-LD links only, got %v", links)
	}
	if links[0] != "https://agoraalagoas.com/2025/08/30/nova-escola-inaugurada" {
		t.Fatalf("unexpected first link: %s", links[0])
	}
}

func TestAgoraAlagoasAnchorFallback(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
	<a href="/2025/08/28/materia-ancora-longa-o-suficiente">ok</a>
	<a href="https://agoraalagoas.com/sobre-nos-e-nossa-historia">institucional</a>
	<a href="https://agoraalagoas.com/">home</a>`)

	links := (&AgoraAlagoas{}).ExtractLinks(doc)
	if len(links) != 1 {
		t.Fatalf("expected 1 fallback link, got %v", links)
	}
	if links[0] != "https://agoraalagoas.com/2025/08/28/materia-ancora-longa-o-suficiente" {
		t.Fatalf("unexpected link: %s", links[0])
	}
}

func TestAllSourcesHaveDistinctNames(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, source := range All() {
		if source.Name() == "" || source.ListingURL() == "" {
			t.Fatalf("source %T missing name or listing URL", source)
		}
		if seen[source.Name()] {
			t.Fatalf("duplicate source name %s", source.Name())
		}
		seen[source.Name()] = true
	}
}
