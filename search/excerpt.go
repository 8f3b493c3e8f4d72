package search

import (
	"strings"
	"unicode/utf8"
)

// ExcerptContext is the number of characters kept on each side of a match.
const ExcerptContext = 150

const ellipsis = "..."

// Excerpt returns the passage of content around the first occurrence of the
// whole query, or of its first term when the query does not occur as a
// whole. Without any match the opening of the content is returned.
// Whitespace runs are collapsed and clipped ends are marked with "...".
func Excerpt(content, query string) string {
	lower := strings.ToLower(content)
	runes := []rune(content)

	if start, n, ok := find(lower, strings.ToLower(strings.TrimSpace(query))); ok {
		return around(runes, start, n)
	}
	if terms := Terms(query); len(terms) > 0 {
		if start, n, ok := find(lower, terms[0]); ok {
			return around(runes, start, n)
		}
	}
	return clip(runes, 0, 2*ExcerptContext)
}

// find returns the rune offset and rune length of needle in haystack.
// strings.ToLower maps rune by rune, so offsets in the lowered text are
// offsets in the original.
func find(haystack, needle string) (start, n int, ok bool) {
	if needle == "" {
		return 0, 0, false
	}
	i := strings.Index(haystack, needle)
	if i < 0 {
		return 0, 0, false
	}
	return utf8.RuneCountInString(haystack[:i]), utf8.RuneCountInString(needle), true
}

func around(runes []rune, start, n int) string {
	return clip(runes, start-ExcerptContext, start+n+ExcerptContext)
}

func clip(runes []rune, start, end int) string {
	start = max(start, 0)
	end = min(end, len(runes))

	excerpt := strings.Join(strings.Fields(string(runes[start:end])), " ")
	if start > 0 {
		excerpt = ellipsis + excerpt
	}
	if end < len(runes) {
		excerpt += ellipsis
	}
	return excerpt
}
