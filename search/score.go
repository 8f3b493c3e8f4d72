// Package search ranks the documents of the catalog against a free-text
// query.
package search

import (
	"strings"

	"github.com/fwojciec/orgdocs"
)

// Score bonuses for a term found in descriptor metadata.
const (
	TitleBonus       = 10
	TopicBonus       = 5
	DescriptionBonus = 3
)

// Terms splits a query into lowercase terms on whitespace.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// CategoryMultiplier boosts organization-owned and user-added documents.
func CategoryMultiplier(c orgdocs.Category) float64 {
	switch c {
	case orgdocs.CategoryInternal:
		return 1.2
	case orgdocs.CategoryUser:
		return 1.1
	}
	return 1.0
}

// Score computes the relevance of a document for lowercase terms. For each
// term it counts case-insensitive occurrences in content and adds bonuses
// for the title, topic and description; the sum is weighted by priority and
// category.
func Score(d *orgdocs.Descriptor, content string, terms []string) float64 {
	body := strings.ToLower(content)
	title := strings.ToLower(d.Title)
	topic := strings.ToLower(d.Topic)
	description := strings.ToLower(d.Description)

	var raw int
	for _, term := range terms {
		raw += strings.Count(body, term)
		if strings.Contains(title, term) {
			raw += TitleBonus
		}
		if strings.Contains(topic, term) {
			raw += TopicBonus
		}
		if strings.Contains(description, term) {
			raw += DescriptionBonus
		}
	}

	return float64(raw) * d.Priority * CategoryMultiplier(d.Category)
}
