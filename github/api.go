package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/orgdocs"
	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds each REST API request.
const DefaultTimeout = 10 * time.Second

// APIClient reads repository contents from the GitHub REST API.
type APIClient struct {
	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	BaseURL string
	Timeout time.Duration
}

// NewAPIClient creates an APIClient for api.github.com.
func NewAPIClient() *APIClient {
	return &APIClient{Timeout: DefaultTimeout}
}

func (c *APIClient) client(ctx context.Context, token string) (*gh.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = c.Timeout

	client := gh.NewClient(tc)
	if c.BaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(c.BaseURL, "/") + "/")
		if err != nil {
			return nil, orgdocs.Errorf(orgdocs.EINVALID, "invalid GitHub API URL %q: %v", c.BaseURL, err)
		}
		client.BaseURL = u
	}
	return client, nil
}

// Contents returns the decoded file at the source's path and ref.
func (c *APIClient) Contents(ctx context.Context, token string, src *orgdocs.GitHubSource) (string, error) {
	client, err := c.client(ctx, token)
	if err != nil {
		return "", err
	}

	owner, repo := src.Owner()
	opts := &gh.RepositoryContentGetOptions{Ref: src.Ref()}
	file, _, _, err := client.Repositories.GetContents(ctx, owner, repo, src.Path, opts)
	if err != nil {
		return "", wrapError(err, src)
	}
	if file == nil {
		// A directory listing has no file content.
		return "", notFound(src)
	}

	content, err := file.GetContent()
	if err != nil {
		return "", orgdocs.Errorf(orgdocs.EUNAVAILABLE, "GitHub API error: decode content: %v", err)
	}
	return content, nil
}

// CheckToken reports whether the token is accepted by the rate limit endpoint.
func (c *APIClient) CheckToken(ctx context.Context, token string) bool {
	client, err := c.client(ctx, token)
	if err != nil {
		return false
	}
	_, _, err = client.RateLimit.Get(ctx)
	return err == nil
}

func wrapError(err error, src *orgdocs.GitHubSource) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return rateLimited()
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return notFound(src)
		case http.StatusForbidden:
			return rateLimited()
		}
		return orgdocs.Errorf(orgdocs.EUNAVAILABLE, "GitHub API error: %s", respErr.Response.Status)
	}

	return orgdocs.Errorf(orgdocs.EUNAVAILABLE, "GitHub API error: %v", err)
}

func rateLimited() error {
	return orgdocs.Errorf(orgdocs.EUNAVAILABLE, "GitHub API rate limit exceeded.")
}
