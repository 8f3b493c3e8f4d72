// Package fs exports documents as markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/orgdocs"
	"gopkg.in/yaml.v3"
)

// TopicPath returns the file path of a descriptor relative to the export
// directory: <category>/<topic>.md.
func TopicPath(d *orgdocs.Descriptor) (string, error) {
	topic := d.Topic
	if topic == "" || topic == "." || topic == ".." || strings.ContainsAny(topic, `/\`) {
		return "", orgdocs.Errorf(orgdocs.EINVALID, "topic %q cannot be used as a file name", topic)
	}
	return filepath.Join(string(d.Category), topic+".md"), nil
}

// frontmatter is the YAML header written above each document.
type frontmatter struct {
	Topic    string `yaml:"topic"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Source   string `yaml:"source"`
	URL      string `yaml:"url,omitempty"`
	Exported string `yaml:"exported"`
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *orgdocs.Document, exported time.Time) (string, error) {
	d := doc.Descriptor
	fm := frontmatter{
		Topic:    d.Topic,
		Title:    d.Title,
		Category: string(d.Category),
		Exported: exported.Format("2006-01-02"),
	}
	if d.Source != nil {
		fm.Source = string(d.Source.Kind())
	}
	if src, ok := d.Source.(*orgdocs.URLSource); ok {
		fm.URL = src.URL
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(doc.Content)
	if !strings.HasSuffix(doc.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements orgdocs.DocumentWriter at compile time.
var _ orgdocs.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string

	// Now returns the export time. Defaults to time.Now.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteDocument writes a document to disk, replacing an existing file.
func (w *Writer) WriteDocument(ctx context.Context, doc *orgdocs.Document) error {
	if doc == nil || doc.Descriptor == nil {
		return orgdocs.Errorf(orgdocs.EINVALID, "document descriptor required")
	}

	relPath, err := TopicPath(doc.Descriptor)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatDocument(doc, w.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
