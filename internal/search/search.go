package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits contents on "\n" or "\r\n". A final line ending does not produce an empty
// line, and a "\r" not followed by "\n" stays in the line. The returned strings share
// memory with contents.
func Lines(contents string) []string {
	var out []string
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			out = append(out, contents)
			break
		}
		out = append(out, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return out
}

// Search returns, in order, every line of contents that contains query.
func Search(query, contents string) []string {
	var matches []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// SearchCaseInsensitive is Search with query and lines lowercased before comparison.
// Matches are returned as they appear in contents.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)
	var matches []string
	for _, line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			matches = append(matches, line)
		}
	}
	return matches
}
