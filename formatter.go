package orgdocs

import (
	"fmt"
	"sort"
	"strings"
)

// FormatTopics lists descriptors grouped by category.
// The user section is omitted when there are no user docs.
func FormatTopics(descs []*Descriptor) string {
	var b strings.Builder
	b.WriteString("# Available Documentation\n\n")

	b.WriteString("## Internal Standards (Organization-specific)\n")
	writeTopicLines(&b, FilterByCategory(descs, CategoryInternal))

	b.WriteString("\n## Public Reference Documentation\n")
	writeTopicLines(&b, FilterByCategory(descs, CategoryPublic))

	if user := FilterByCategory(descs, CategoryUser); len(user) > 0 {
		b.WriteString("\n## User-Added Documentation\n")
		writeTopicLines(&b, user)
	}

	b.WriteString("\n---\nUse `get_doc` with a topic name to retrieve full documentation.\n")
	b.WriteString("Use `search_docs` to search across all documentation.")
	return b.String()
}

func writeTopicLines(b *strings.Builder, descs []*Descriptor) {
	for _, d := range descs {
		fmt.Fprintf(b, "- **%s**: %s\n", d.Topic, d.Description)
	}
}

// FormatDocument renders a retrieved document with a short header.
func FormatDocument(doc *Document) string {
	d := doc.Descriptor
	var kind SourceKind
	if d.Source != nil {
		kind = d.Source.Kind()
	}
	return fmt.Sprintf("# %s\n**Category**: %s\n**Source**: %s\n\n---\n\n%s", d.Title, d.Category, kind, doc.Content)
}

// FormatSearchResults renders ranked results for a query.
func FormatSearchResults(query string, results []SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q.\n\nTry using different search terms or call list_topics to see available documentation.", query)
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		parts = append(parts, fmt.Sprintf("## %d. %s\n**Topic**: %s\n**Category**: %s\n**Relevance**: %.1f\n\n> %s\n",
			i+1, r.Title, r.Topic, r.Category, r.Score, r.Excerpt))
	}

	return fmt.Sprintf("# Search Results for %q\n\nFound %d matching document(s):\n\n%s\n---\nUse `get_doc` with a topic name to retrieve the full document.",
		query, len(results), strings.Join(parts, "\n"))
}

// FormatUserDocs renders the user-added documents as a table.
func FormatUserDocs(docs []*UserDoc) string {
	if len(docs) == 0 {
		return "No user documentation sources found.\n\nUse `add_doc` to add documentation sources."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# User Documentation Sources\n\nFound %d user-added documentation source(s):\n\n", len(docs))
	b.WriteString("| Topic | Title | URL | Added |\n|-------|-------|-----|-------|\n")
	for _, d := range docs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", d.Topic, d.Title, d.URL, d.AddedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\nUse `get_doc('<topic>')` to fetch a specific document.\n")
	b.WriteString("Use `remove_doc('<topic>')` to remove a document.")
	return b.String()
}

// FormatPreview renders a URL preview.
func FormatPreview(p *Preview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# URL Preview: %s\n\n**URL**: %s\n**Title**: %s\n", p.Title, p.URL, p.Title)
	if p.Description != "" {
		fmt.Fprintf(&b, "**Description**: %s\n", p.Description)
	}
	fmt.Fprintf(&b, "\n**Content Preview**:\n%s\n\n---\nUse `add_doc` to add this as a documentation source.", p.ContentPreview)
	return b.String()
}

// FormatHealth renders source reachability, one line per kind in name order.
func FormatHealth(health map[SourceKind]bool) string {
	kinds := make([]string, 0, len(health))
	for k := range health {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	var b strings.Builder
	b.WriteString("# Source Health\n\n")
	for _, k := range kinds {
		status := "unreachable"
		if health[SourceKind(k)] {
			status = "ok"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", k, status)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
