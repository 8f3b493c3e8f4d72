package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/orgdocs"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a catalog file.
//
//	docs:
//	  - topic: naming-standards
//	    title: Resource Naming Standards
//	    description: Required naming conventions
//	    category: internal
//	    priority: 1.0
//	    source:
//	      type: github
//	      repo: acme/cloud-standards
//	      path: gcp/naming-conventions.md
type File struct {
	Docs []FileDoc `yaml:"docs"`
}

// FileDoc is one descriptor entry of a catalog file.
type FileDoc struct {
	Topic       string     `yaml:"topic"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Category    string     `yaml:"category"`
	Priority    float64    `yaml:"priority"`
	Source      FileSource `yaml:"source"`
}

// FileSource holds the fields of every source kind; Type selects which
// apply.
type FileSource struct {
	Type     string `yaml:"type"`
	Repo     string `yaml:"repo,omitempty"`
	Path     string `yaml:"path,omitempty"`
	Branch   string `yaml:"branch,omitempty"`
	Product  string `yaml:"product,omitempty"`
	Page     string `yaml:"page,omitempty"`
	Provider string `yaml:"provider,omitempty"`
	Resource string `yaml:"resource,omitempty"`
	DocPath  string `yaml:"docPath,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

// Source converts the entry into its typed source.
func (s FileSource) Source() (orgdocs.Source, error) {
	switch orgdocs.SourceKind(s.Type) {
	case orgdocs.SourceGitHub:
		return &orgdocs.GitHubSource{Repo: s.Repo, Path: s.Path, Branch: s.Branch}, nil
	case orgdocs.SourceGCP:
		return &orgdocs.GCPSource{Product: s.Product, Page: s.Page}, nil
	case orgdocs.SourceTerraform:
		return &orgdocs.TerraformSource{Provider: s.Provider, Resource: s.Resource}, nil
	case orgdocs.SourceTekton:
		return &orgdocs.TektonSource{DocPath: s.DocPath}, nil
	case orgdocs.SourceURL:
		return &orgdocs.URLSource{URL: s.URL}, nil
	}
	return nil, orgdocs.Errorf(orgdocs.EINVALID, "unknown source type %q", s.Type)
}

// LoadFile reads descriptors from a YAML catalog file.
func LoadFile(path string) ([]*orgdocs.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads descriptors from YAML. Every descriptor is validated and
// topics must be unique.
func Decode(r io.Reader) ([]*orgdocs.Descriptor, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "invalid catalog file: %v", err)
	}

	seen := make(map[string]bool, len(file.Docs))
	descs := make([]*orgdocs.Descriptor, 0, len(file.Docs))
	for _, doc := range file.Docs {
		src, err := doc.Source.Source()
		if err != nil {
			return nil, orgdocs.Errorf(orgdocs.EINVALID, "catalog topic %q: %s", doc.Topic, orgdocs.ErrorMessage(err))
		}
		d := &orgdocs.Descriptor{
			Topic:       doc.Topic,
			Title:       doc.Title,
			Description: doc.Description,
			Category:    orgdocs.Category(doc.Category),
			Priority:    doc.Priority,
			Source:      src,
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seen[d.Topic] {
			return nil, orgdocs.Errorf(orgdocs.EINVALID, "duplicate catalog topic %q", d.Topic)
		}
		seen[d.Topic] = true
		descs = append(descs, d)
	}
	return descs, nil
}
