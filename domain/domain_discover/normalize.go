package domain_discover

import (
	"strings"
	"unicode"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldTitle lowercases and strips diacritics (NFD decomposition, combining
// marks removed) so curated match substrings compare against a stable form.
// A fresh transformer chain per call keeps the function safe for concurrent
// requests.
func FoldTitle(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// NormalizeToken trims and lowercases one genre or tag label.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GameTokens returns the deduplicated affinity tokens of a game: the genre
// field split on commas, then every tag, each normalized. Order is first
// occurrence, which fixes the order matched tags are reported in.
func GameTokens(game domain_catalog.GameRecord) []string {
	seen := make(map[string]bool)
	var tokens []string
	appendToken := func(raw string) {
		token := NormalizeToken(raw)
		if token == "" || seen[token] {
			return
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	for _, part := range strings.Split(game.Genre, ",") {
		appendToken(part)
	}
	for _, tag := range game.Tags {
		appendToken(tag)
	}
	return tokens
}

// matchesFilters reports whether a game's combined genre+tags text contains
// both active filter substrings. Empty filters pass everything. Filters must
// already be lowercased.
func matchesFilters(game domain_catalog.GameRecord, genreFilter, tagFilter string) bool {
	if genreFilter == "" && tagFilter == "" {
		return true
	}
	haystack := strings.ToLower(game.Genre + " " + strings.Join(game.Tags, " "))
	if genreFilter != "" && !strings.Contains(haystack, genreFilter) {
		return false
	}
	if tagFilter != "" && !strings.Contains(haystack, tagFilter) {
		return false
	}
	return true
}
