package source

import (
	"context"
	"sync"

	"github.com/fwojciec/orgdocs"
	"golang.org/x/sync/errgroup"
)

var _ orgdocs.DocFetcher = (*Router)(nil)

// Router dispatches descriptors to the adapter of their source kind.
// An adapter left nil is treated as unsupported.
type Router struct {
	GitHub    orgdocs.Adapter[*orgdocs.GitHubSource]
	GCP       orgdocs.Adapter[*orgdocs.GCPSource]
	Terraform orgdocs.Adapter[*orgdocs.TerraformSource]
	Tekton    orgdocs.Adapter[*orgdocs.TektonSource]
	URL       orgdocs.Adapter[*orgdocs.URLSource]
}

// FetchDoc fetches the descriptor's document through exactly one adapter.
// Adapter errors are returned unchanged.
func (r *Router) FetchDoc(ctx context.Context, d *orgdocs.Descriptor) (string, error) {
	if d == nil || orgdocs.IsNilSource(d.Source) {
		return "", unknownSource()
	}

	switch src := d.Source.(type) {
	case *orgdocs.GitHubSource:
		if r.GitHub != nil {
			return r.GitHub.Fetch(ctx, src)
		}
	case *orgdocs.GCPSource:
		if r.GCP != nil {
			return r.GCP.Fetch(ctx, src)
		}
	case *orgdocs.TerraformSource:
		if r.Terraform != nil {
			return r.Terraform.Fetch(ctx, src)
		}
	case *orgdocs.TektonSource:
		if r.Tekton != nil {
			return r.Tekton.Fetch(ctx, src)
		}
	case *orgdocs.URLSource:
		if r.URL != nil {
			return r.URL.Fetch(ctx, src)
		}
	}
	return "", unknownSource()
}

func unknownSource() error {
	return orgdocs.Errorf(orgdocs.EINTERNAL, "unknown source type")
}

// CheckSourceHealth probes every configured adapter concurrently.
func (r *Router) CheckSourceHealth(ctx context.Context) map[orgdocs.SourceKind]bool {
	checks := make(map[orgdocs.SourceKind]func(context.Context) bool)
	if r.GitHub != nil {
		checks[orgdocs.SourceGitHub] = r.GitHub.CheckAccess
	}
	if r.GCP != nil {
		checks[orgdocs.SourceGCP] = r.GCP.CheckAccess
	}
	if r.Terraform != nil {
		checks[orgdocs.SourceTerraform] = r.Terraform.CheckAccess
	}
	if r.Tekton != nil {
		checks[orgdocs.SourceTekton] = r.Tekton.CheckAccess
	}
	if r.URL != nil {
		checks[orgdocs.SourceURL] = r.URL.CheckAccess
	}

	var mu sync.Mutex
	health := make(map[orgdocs.SourceKind]bool, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	for kind, check := range checks {
		g.Go(func() error {
			ok := check(gctx)
			mu.Lock()
			health[kind] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return health
}
