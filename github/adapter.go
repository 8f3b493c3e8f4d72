package github

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/orgdocs"
)

var _ orgdocs.Adapter[*orgdocs.GitHubSource] = (*Adapter)(nil)

// Adapter fetches GitHub files, choosing the authentication method anew on
// every fetch so that a later `gh auth login` or exported token is picked up
// without a restart.
type Adapter struct {
	CLI   *CLI
	API   *APIClient
	Cache orgdocs.Cache

	// Token returns the API token. Defaults to reading GITHUB_TOKEN.
	Token func() string
}

// NewAdapter creates an Adapter using the gh CLI and api.github.com.
func NewAdapter(cache orgdocs.Cache) *Adapter {
	return &Adapter{
		CLI:   NewCLI(),
		API:   NewAPIClient(),
		Cache: cache,
	}
}

// CacheKey returns the cache key of a GitHub source.
func CacheKey(src *orgdocs.GitHubSource) string {
	return fmt.Sprintf("github:%s:%s:%s", src.Repo, src.Path, src.Ref())
}

func (a *Adapter) token() string {
	if a.Token != nil {
		return a.Token()
	}
	return os.Getenv("GITHUB_TOKEN")
}

func (a *Adapter) Fetch(ctx context.Context, src *orgdocs.GitHubSource) (string, error) {
	key := CacheKey(src)
	if content, ok := a.Cache.Get(key); ok {
		return content, nil
	}

	token := a.token()
	method, err := SelectAuth(a.CLI.Available(ctx), token)
	if err != nil {
		return "", err
	}

	var content string
	switch method {
	case AuthCLI:
		content, err = a.CLI.Contents(ctx, src)
	case AuthToken:
		content, err = a.API.Contents(ctx, token, src)
	}
	if err != nil {
		return "", err
	}

	a.Cache.Set(key, content)
	return content, nil
}

// CheckAccess reports true when gh is authenticated, or when a token is set
// and the API accepts it.
func (a *Adapter) CheckAccess(ctx context.Context) bool {
	if a.CLI.Available(ctx) {
		return true
	}
	token := a.token()
	if token == "" {
		return false
	}
	return a.API.CheckToken(ctx, token)
}
