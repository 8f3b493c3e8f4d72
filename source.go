package orgdocs

import (
	"context"
	"strings"
)

// SourceKind identifies the origin protocol of a document.
type SourceKind string

// Supported source kinds.
const (
	SourceGitHub    SourceKind = "github"
	SourceGCP       SourceKind = "gcp"
	SourceTerraform SourceKind = "terraform"
	SourceTekton    SourceKind = "tekton"
	SourceURL       SourceKind = "url"
)

// SourceKinds lists every supported source kind.
func SourceKinds() []SourceKind {
	return []SourceKind{SourceGitHub, SourceGCP, SourceTerraform, SourceTekton, SourceURL}
}

// Source locates the content of a document at its origin. The set of
// implementations is closed: only the source types in this package satisfy it.
type Source interface {
	// Kind returns the source discriminant.
	Kind() SourceKind

	// Validate returns an error if required locating fields are missing.
	Validate() error

	source()
}

// IsNilSource reports whether s is nil or a nil pointer to a variant.
func IsNilSource(s Source) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *GitHubSource:
		return v == nil
	case *GCPSource:
		return v == nil
	case *TerraformSource:
		return v == nil
	case *TektonSource:
		return v == nil
	case *URLSource:
		return v == nil
	}
	return false
}

// DefaultBranch is the branch used when a GitHubSource does not name one.
const DefaultBranch = "main"

// GitHubSource is a markdown file in a GitHub repository.
type GitHubSource struct {
	Repo   string `json:"repo"` // owner/name
	Path   string `json:"path"`
	Branch string `json:"branch,omitempty"`
}

func (s *GitHubSource) Kind() SourceKind { return SourceGitHub }
func (s *GitHubSource) source()          {}

// Ref returns the branch to read from, defaulting to DefaultBranch.
func (s *GitHubSource) Ref() string {
	if s.Branch == "" {
		return DefaultBranch
	}
	return s.Branch
}

// Owner splits the repository into owner and name.
func (s *GitHubSource) Owner() (owner, name string) {
	owner, name, _ = strings.Cut(s.Repo, "/")
	return owner, name
}

func (s *GitHubSource) Validate() error {
	if owner, name := s.Owner(); owner == "" || name == "" {
		return Errorf(EINVALID, "github source repo must be owner/name, got %q", s.Repo)
	}
	if s.Path == "" {
		return Errorf(EINVALID, "github source path required")
	}
	return nil
}

// GCPSource is a page of the Google Cloud documentation site.
type GCPSource struct {
	Product string `json:"product"`
	Page    string `json:"page"`
}

func (s *GCPSource) Kind() SourceKind { return SourceGCP }
func (s *GCPSource) source()          {}

func (s *GCPSource) Validate() error {
	if s.Product == "" || s.Page == "" {
		return Errorf(EINVALID, "gcp source product and page required")
	}
	return nil
}

// TerraformSource is a resource page of the Terraform registry.
type TerraformSource struct {
	Provider string `json:"provider"`
	Resource string `json:"resource"`
}

func (s *TerraformSource) Kind() SourceKind { return SourceTerraform }
func (s *TerraformSource) source()          {}

func (s *TerraformSource) Validate() error {
	if s.Provider == "" || s.Resource == "" {
		return Errorf(EINVALID, "terraform source provider and resource required")
	}
	return nil
}

// TektonSource is a page of the Tekton documentation site.
type TektonSource struct {
	DocPath string `json:"docPath"`
}

func (s *TektonSource) Kind() SourceKind { return SourceTekton }
func (s *TektonSource) source()          {}

func (s *TektonSource) Validate() error {
	if s.DocPath == "" {
		return Errorf(EINVALID, "tekton source doc path required")
	}
	return nil
}

// URLSource is any document reachable over HTTP(S).
type URLSource struct {
	URL string `json:"url"`
}

func (s *URLSource) Kind() SourceKind { return SourceURL }
func (s *URLSource) source()          {}

func (s *URLSource) Validate() error {
	if !strings.HasPrefix(s.URL, "http://") && !strings.HasPrefix(s.URL, "https://") {
		return Errorf(EINVALID, "url source must be an http(s) URL, got %q", s.URL)
	}
	return nil
}

// Adapter translates one source kind's origin protocol into normalized text.
type Adapter[S Source] interface {
	// Fetch returns the normalized content for the source, consulting the
	// cache first. A missing resource is reported as ENOTFOUND, origin and
	// transport failures as EUNAVAILABLE. Nothing is retried.
	Fetch(ctx context.Context, src S) (string, error)

	// CheckAccess probes the origin. It never fails; any error means false.
	CheckAccess(ctx context.Context) bool
}

// DocFetcher fetches documents by descriptor, whatever their source kind.
type DocFetcher interface {
	// FetchDoc returns the normalized content of the descriptor's document.
	// Adapter errors are returned unchanged.
	FetchDoc(ctx context.Context, d *Descriptor) (string, error)

	// CheckSourceHealth reports origin reachability per source kind.
	CheckSourceHealth(ctx context.Context) map[SourceKind]bool
}
