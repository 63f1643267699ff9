package ports

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"NewsBridge/internal/domain"
)

// Fetcher turns a URL into a parsed document. Blocking, timeout-bounded by
// the underlying HTTP client.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Store is the deduplication oracle and telemetry sink backing the pipeline.
// RecordPublished failures must not undo a publish; callers report and move on.
type Store interface {
	IsPublished(ctx context.Context, url string) (bool, error)
	RecordPublished(ctx context.Context, rec domain.PublishedRecord) error
	RecordRunSummary(ctx context.Context, summary domain.RunSummary) error
	FilterKeywords(ctx context.Context) ([]string, error)
}

// Publisher is the remote content API accepting media and posts.
type Publisher interface {
	UploadImage(ctx context.Context, imageURL, filename string, creds domain.Credentials) (int64, error)
	CreatePost(ctx context.Context, post domain.Post, creds domain.Credentials) (int64, error)
}

// Pacer spaces out fetches toward scraped sites. Wait blocks until the next
// request is allowed.
type Pacer interface {
	Wait(ctx context.Context) error
}
