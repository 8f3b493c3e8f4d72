package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fwojciec/orgdocs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of documents fetched at once.
const DefaultConcurrency = 4

var _ orgdocs.Searcher = (*Engine)(nil)

// Engine searches every document of a catalog. Documents are fetched through
// the DocFetcher, so repeated searches are served from its cache.
type Engine struct {
	Catalog     orgdocs.Catalog
	Fetcher     orgdocs.DocFetcher
	Logger      *slog.Logger
	Concurrency int
}

// NewEngine creates a new Engine.
func NewEngine(catalog orgdocs.Catalog, fetcher orgdocs.DocFetcher, logger *slog.Logger) *Engine {
	return &Engine{
		Catalog:     catalog,
		Fetcher:     fetcher,
		Logger:      logger,
		Concurrency: DefaultConcurrency,
	}
}

// Search returns up to limit results ordered by descending score. Equal
// scores keep catalog order. Documents that fail to fetch are logged and
// left out; only a catalog failure is returned as an error.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]orgdocs.SearchResult, error) {
	if limit <= 0 {
		limit = orgdocs.DefaultSearchLimit
	}

	descs, err := e.Catalog.Descriptors(ctx)
	if err != nil {
		return nil, err
	}

	terms := Terms(query)
	if len(terms) == 0 {
		return []orgdocs.SearchResult{}, nil
	}

	contents := e.fetchAll(ctx, descs)

	results := make([]orgdocs.SearchResult, 0, len(descs))
	for i, d := range descs {
		content, ok := contents[i]
		if !ok {
			continue
		}
		score := Score(d, content, terms)
		if score <= 0 {
			continue
		}
		results = append(results, orgdocs.SearchResult{
			Topic:    d.Topic,
			Title:    d.Title,
			Category: d.Category,
			Excerpt:  Excerpt(content, query),
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// fetchAll fetches documents concurrently, keyed by catalog position.
func (e *Engine) fetchAll(ctx context.Context, descs []*orgdocs.Descriptor) map[int]string {
	type fetched struct {
		content string
		ok      bool
	}
	out := make([]fetched, len(descs))

	var g errgroup.Group
	g.SetLimit(max(e.Concurrency, 1))
	for i, d := range descs {
		g.Go(func() error {
			content, err := e.Fetcher.FetchDoc(ctx, d)
			if err != nil {
				e.logger().Warn("skipping document", "topic", d.Topic, "error", orgdocs.ErrorMessage(err))
				return nil
			}
			out[i] = fetched{content: content, ok: true}
			return nil
		})
	}
	_ = g.Wait()

	contents := make(map[int]string, len(descs))
	for i, f := range out {
		if f.ok {
			contents[i] = f.content
		}
	}
	return contents
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
