package usecase

import (
	"context"
	"errors"
	"testing"

	"NewsBridge/internal/domain"
	"NewsBridge/internal/scraper"
)

func newTestRunner(t *testing.T, store *fakeStore, sources ...*fakeSource) *Runner {
	t.Helper()

	registry := scraper.NewRegistry()
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		registry.Register(src)
		names = append(names, src.Name())
	}

	pipeline := newTestPipeline(&fakeFetcher{doc: emptyDoc(t)}, store, &fakePublisher{}, &countingPacer{})
	return NewRunner(pipeline, registry, names, store, nil)
}

func TestRunAllOneSummaryPerSource(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	runner := newTestRunner(t, store,
		sourceWithArticles("um.com", 2),
		sourceWithArticles("dois.com", 3),
		sourceWithArticles("tres.com", 0),
	)

	summaries := runner.RunAll(context.Background(), domain.Credentials{})

	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	wantOrder := []string{"um.com", "dois.com", "tres.com"}
	for i, want := range wantOrder {
		if summaries[i].SourceID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, summaries[i].SourceID)
		}
	}
}

func TestRunAllIsolatesFailingSource(t *testing.T) {
	t.Parallel()

	broken := sourceWithArticles("quebrado.com", 2)
	broken.panicOn = true

	store := newFakeStore()
	runner := newTestRunner(t, store, broken, sourceWithArticles("saudavel.com", 2))

	summaries := runner.RunAll(context.Background(), domain.Credentials{})

	if summaries[0].FatalError == "" {
		t.Fatal("expected error summary for broken source")
	}
	if summaries[1].ArticlesPublished != 2 {
		t.Fatalf("healthy source must still run, got %+v", summaries[1])
	}
}

func TestRunAllUnknownSourceDegenerateSummary(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	registry := scraper.NewRegistry()
	registry.Register(sourceWithArticles("real.com", 1))

	pipeline := newTestPipeline(&fakeFetcher{doc: emptyDoc(t)}, store, &fakePublisher{}, &countingPacer{})
	runner := NewRunner(pipeline, registry, []string{"real.com", "fantasma.com"}, store, nil)

	summaries := runner.RunAll(context.Background(), domain.Credentials{})

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[1].SourceID != "fantasma.com" || summaries[1].FatalError == "" {
		t.Fatalf("expected degenerate summary for unknown source, got %+v", summaries[1])
	}
}

func TestRunAllFallsBackToDefaultBlacklist(t *testing.T) {
	t.Parallel()

	src := sourceWithArticles("exemplo.com", 1)
	src.articles[src.links[0]] = domain.Article{
		URL:   src.links[0],
		Title: "Polícia faz operação no bairro",
		Body:  "texto",
	}

	store := newFakeStore()
	store.keywordErr = errors.New("table missing")
	runner := newTestRunner(t, store, src)

	summaries := runner.RunAll(context.Background(), domain.Credentials{})

	// Built-in blacklist must still block police content.
	if summaries[0].ArticlesFiltered != 1 || summaries[0].ArticlesPublished != 0 {
		t.Fatalf("expected default blacklist to apply, got %+v", summaries[0])
	}
}

func TestRunAllUsesStoredKeywords(t *testing.T) {
	t.Parallel()

	src := sourceWithArticles("exemplo.com", 2)
	src.articles[src.links[0]] = domain.Article{URL: src.links[0], Title: "Festa do padroeiro", Body: "texto"}
	src.articles[src.links[1]] = domain.Article{URL: src.links[1], Title: "Interdição na rodovia", Body: "texto"}

	store := newFakeStore()
	store.keywords = []string{"interdição"}
	runner := newTestRunner(t, store, src)

	summaries := runner.RunAll(context.Background(), domain.Credentials{})

	if summaries[0].ArticlesPublished != 1 || summaries[0].ArticlesFiltered != 1 {
		t.Fatalf("expected stored keywords to filter one article, got %+v", summaries[0])
	}
}

func TestPreviewPublishesNothing(t *testing.T) {
	t.Parallel()

	src := sourceWithArticles("exemplo.com", 3)
	store := newFakeStore()
	publisher := &fakePublisher{}
	registry := scraper.NewRegistry()
	registry.Register(src)

	pipeline := newTestPipeline(&fakeFetcher{doc: emptyDoc(t)}, store, publisher, &countingPacer{})
	runner := NewRunner(pipeline, registry, nil, store, nil)

	results, err := runner.PreviewAll(context.Background(), "")
	if err != nil {
		t.Fatalf("PreviewAll error: %v", err)
	}

	if len(results) != 1 || results[0].LinksFound != 3 {
		t.Fatalf("unexpected preview result: %+v", results)
	}
	for _, entry := range results[0].Articles {
		if entry.Status != "would_publish" {
			t.Fatalf("expected would_publish, got %+v", entry)
		}
	}
	if len(publisher.posts) != 0 || len(store.records) != 0 {
		t.Fatal("preview must not publish or write")
	}
}

func TestPreviewUnknownSite(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	runner := newTestRunner(t, store, sourceWithArticles("real.com", 1))

	if _, err := runner.PreviewAll(context.Background(), "nope.com"); err == nil {
		t.Fatal("expected error for unknown site")
	}
}

func TestPreviewCapsArticles(t *testing.T) {
	t.Parallel()

	src := sourceWithArticles("exemplo.com", 9)
	store := newFakeStore()
	runner := newTestRunner(t, store, src)

	results, err := runner.PreviewAll(context.Background(), "exemplo.com")
	if err != nil {
		t.Fatalf("PreviewAll error: %v", err)
	}
	if results[0].LinksFound != 9 {
		t.Fatalf("expected 9 links found, got %d", results[0].LinksFound)
	}
	if len(results[0].Articles) != previewMaxArticles {
		t.Fatalf("expected %d previewed articles, got %d", previewMaxArticles, len(results[0].Articles))
	}
}
