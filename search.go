package orgdocs

import "context"

// DefaultSearchLimit is the number of results returned when no limit is given.
const DefaultSearchLimit = 5

// MaxSearchLimit caps the limit accepted from tool callers.
const MaxSearchLimit = 20

// SearchResult represents a document matching a query.
type SearchResult struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Score    float64  `json:"score"`
}

// Searcher provides full-text search over the whole catalog.
type Searcher interface {
	// Search returns results ranked by descending score, at most limit.
	// Documents that fail to fetch are skipped, not reported.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
