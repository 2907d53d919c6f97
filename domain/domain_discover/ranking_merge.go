package domain_discover

import (
	"sort"
	"strings"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
)

// CatalogSliceLimit bounds the catalog slice fed to the curated ranking.
// Same completeness/cost trade-off as CandidatePoolLimit.
const CatalogSliceLimit = 800

// ComputeCuratedRanking front-loads the curated entries that fuzzy-match a
// catalog title, then fills with the remaining catalog sorted by popularity.
// The claimed-set check is the sole enforcement of the no-duplicate-app_id
// invariant, so remainder rows are claimed too. Pure function over its
// inputs.
func ComputeCuratedRanking(
	curated []CuratedEntry,
	catalog []domain_catalog.GameRecord,
	genreFilter string,
	tagFilter string,
	limit int,
) []RankedGame {
	genreFilter = strings.ToLower(strings.TrimSpace(genreFilter))
	tagFilter = strings.ToLower(strings.TrimSpace(tagFilter))

	foldedTitles := make([]string, len(catalog))
	for i := range catalog {
		foldedTitles[i] = FoldTitle(catalog[i].Title)
	}

	claimed := make(map[int64]bool)
	ranked := make([]RankedGame, 0, len(catalog))

	// Curated entries claim in list order; each takes the first unclaimed
	// catalog row whose folded title contains one of its match substrings.
	// Entries with no match contribute nothing.
	for _, entry := range curated {
		for i := range catalog {
			game := catalog[i]
			if claimed[game.AppID] {
				continue
			}
			if !matchesFilters(game, genreFilter, tagFilter) {
				continue
			}
			if !titleMatches(foldedTitles[i], entry.Match) {
				continue
			}
			claimed[game.AppID] = true
			ranked = append(ranked, RankedGame{GameRecord: game, IsCurated: true})
			break
		}
	}

	remainder := make([]domain_catalog.GameRecord, 0, len(catalog))
	for i := range catalog {
		game := catalog[i]
		if claimed[game.AppID] {
			continue
		}
		if !matchesFilters(game, genreFilter, tagFilter) {
			continue
		}
		claimed[game.AppID] = true
		remainder = append(remainder, game)
	}
	sort.SliceStable(remainder, func(i, j int) bool {
		if remainder[i].ActivePlayers != remainder[j].ActivePlayers {
			return remainder[i].ActivePlayers > remainder[j].ActivePlayers
		}
		return remainder[i].CommunityRating > remainder[j].CommunityRating
	})

	for _, game := range remainder {
		ranked = append(ranked, RankedGame{GameRecord: game, IsCurated: false})
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func titleMatches(foldedTitle string, matches []string) bool {
	for _, m := range matches {
		if m == "" {
			continue
		}
		if strings.Contains(foldedTitle, FoldTitle(m)) {
			return true
		}
	}
	return false
}
