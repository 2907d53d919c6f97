package domain_discover

import (
	"math"
	"sort"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
)

// CandidatePoolLimit bounds the catalog slice fed to the recommender: the
// top-rated rows only. Raising it widens completeness at CPU cost and shifts
// the scoring distribution (more candidates compete for the same token
// weights).
const CandidatePoolLimit = 500

// DefaultRecommendLimit is used when the caller passes limit <= 0.
const DefaultRecommendLimit = 12

// MaxMatchedTags caps how many matched tokens a recommendation reports.
const MaxMatchedTags = 3

// Token weight contributions per library entry.
const (
	weightOwnedBase      = 2.0
	weightFavorite       = 2.0
	weightPlatinumed     = 3.0
	weightCompleted      = 1.0
	weightHoursCap       = 3.0
	weightHoursDivisor   = 40.0
	weightReviewPositive = 2.0
	weightReviewNegative = -1.0
)

const ratingScoreFactor = 0.08
const popularityScoreFactor = 3.0

// ComputeRecommendations ranks the unowned candidates by the user's
// genre/tag affinity. Pure function over its inputs: no I/O, no mutation of
// the snapshots, safe for concurrent invocation.
//
// ownedGames supplies the genre/tags of the games referenced by the user's
// library entries; candidates is the bounded top-rated catalog slice.
func ComputeRecommendations(
	library []domain_interaction.LibraryEntry,
	reviews []domain_interaction.ReviewEntry,
	ownedGames []domain_catalog.GameRecord,
	candidates []domain_catalog.GameRecord,
	limit int,
) []RecommendedGame {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	owned := make(map[int64]bool, len(library))
	for _, entry := range library {
		owned[entry.AppID] = true
	}

	tokensByApp := make(map[int64][]string, len(ownedGames))
	for _, game := range ownedGames {
		tokensByApp[game.AppID] = GameTokens(game)
	}

	weights := make(map[string]float64)
	for _, entry := range library {
		w := libraryEntryWeight(entry)
		for _, token := range tokensByApp[entry.AppID] {
			weights[token] += w
		}
	}

	// Reviews only reinforce or suppress tokens of games whose records were
	// supplied; a review of a game with unknown tokens carries no signal.
	for _, review := range reviews {
		tokens, known := tokensByApp[review.AppID]
		if !known {
			continue
		}
		w := weightReviewNegative
		if reviewIsPositive(review) {
			w = weightReviewPositive
		}
		for _, token := range tokens {
			weights[token] += w
		}
	}

	scored := make([]RecommendedGame, 0, limit)
	for _, game := range candidates {
		if owned[game.AppID] {
			continue
		}
		tokens := GameTokens(game)
		if len(tokens) == 0 {
			continue
		}

		tagScore := 0.0
		matched := make([]string, 0, MaxMatchedTags)
		for _, token := range tokens {
			w := weights[token]
			if w <= 0 {
				continue
			}
			tagScore += w
			if len(matched) < MaxMatchedTags {
				matched = append(matched, token)
			}
		}
		// A candidate needs at least one positively weighted token.
		if tagScore <= 0 {
			continue
		}

		score := tagScore +
			float64(game.CommunityRating)*ratingScoreFactor +
			popularityScore(game.ActivePlayers)
		scored = append(scored, RecommendedGame{
			GameRecord:          game,
			RecommendationScore: score,
			MatchedTags:         matched,
		})
	}

	if len(scored) == 0 {
		return popularityFallback(candidates, owned, limit)
	}

	// Ties keep catalog iteration order, so the sort must be stable.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func libraryEntryWeight(entry domain_interaction.LibraryEntry) float64 {
	w := weightOwnedBase
	if entry.IsFavorite {
		w += weightFavorite
	}
	if entry.IsPlatinumed {
		w += weightPlatinumed
	}
	if entry.Status == domain_interaction.LibraryStatusCompleted {
		w += weightCompleted
	}
	if entry.HoursPlayed > 0 {
		w += math.Min(weightHoursCap, entry.HoursPlayed/weightHoursDivisor)
	}
	return w
}

func reviewIsPositive(review domain_interaction.ReviewEntry) bool {
	if review.Score > 0 {
		return review.Score >= 3
	}
	return review.IsPositive
}

func popularityScore(activePlayers int64) float64 {
	if activePlayers <= 0 {
		return 0
	}
	return math.Log10(float64(activePlayers)+1) * popularityScoreFactor
}

// popularityFallback activates only when scoring yields zero survivors:
// the top unowned candidates by active players, score 0, no matched tags.
func popularityFallback(candidates []domain_catalog.GameRecord, owned map[int64]bool, limit int) []RecommendedGame {
	unowned := make([]domain_catalog.GameRecord, 0, len(candidates))
	for _, game := range candidates {
		if !owned[game.AppID] {
			unowned = append(unowned, game)
		}
	}
	sort.SliceStable(unowned, func(i, j int) bool {
		return unowned[i].ActivePlayers > unowned[j].ActivePlayers
	})
	if len(unowned) > limit {
		unowned = unowned[:limit]
	}
	results := make([]RecommendedGame, 0, len(unowned))
	for _, game := range unowned {
		results = append(results, RecommendedGame{
			GameRecord:          game,
			RecommendationScore: 0,
			MatchedTags:         []string{},
		})
	}
	return results
}
