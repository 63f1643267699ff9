package domain

// Article is the structured result of extracting a single news page.
// Extractors must fail instead of producing an Article without a title.
type Article struct {
	URL            string
	Title          string
	Body           string
	ImageURL       string
	FirstParagraph string
}

const excerptRunes = 300

// Excerpt returns the text the classifier looks at: the first paragraph when
// the extractor found one, otherwise the opening of the body.
func (a Article) Excerpt() string {
	if a.FirstParagraph != "" {
		return a.FirstParagraph
	}
	runes := []rune(a.Body)
	if len(runes) > excerptRunes {
		return string(runes[:excerptRunes])
	}
	return a.Body
}

// Category is one of the fixed editorial categories plus the fallback.
type Category string

const (
	CategoryMaceio    Category = "Maceió"
	CategoryArapiraca Category = "Arapiraca"
	CategoryInterior  Category = "Interior"
	CategoryPolitica  Category = "Política"
	CategoryEsporte   Category = "Esporte"
	CategoryCultura   Category = "Cultura"

	// CategoryCidades is assigned when no keyword set matches.
	CategoryCidades Category = "Cidades"
)

// PublishedItem records one successfully republished article inside a RunSummary.
type PublishedItem struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
}

// RunSummary is the outcome of one pipeline run over a single source.
// When FatalError is empty, ArticlesFound == ArticlesPublished + ArticlesFiltered.
type RunSummary struct {
	SourceID          string          `json:"site"`
	ArticlesFound     int             `json:"found"`
	ArticlesPublished int             `json:"published"`
	ArticlesFiltered  int             `json:"filtered"`
	FatalError        string          `json:"error,omitempty"`
	PublishedItems    []PublishedItem `json:"published_items,omitempty"`
}

// PublishedRecord is what the store keeps about a republished article so that
// later runs skip the URL.
type PublishedRecord struct {
	URL      string
	Title    string
	SourceID string
	Category Category
	PostID   int64
}

// Post carries everything the publish sink needs to create a remote post.
type Post struct {
	Title           string
	Body            string
	Category        Category
	FeaturedMediaID int64
	SourceURL       string
}

// Credentials identify a WordPress install and the account posting to it.
// A zero value means "use the process-wide configured credentials".
type Credentials struct {
	BaseURL     string
	Username    string
	AppPassword string
	PostStatus  string
}

// IsZero reports whether no per-request override was supplied.
func (c Credentials) IsZero() bool {
	return c.BaseURL == "" && c.Username == "" && c.AppPassword == ""
}
