package domain_discover

import (
	"math"
	"testing"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func game(appID int64, title, genre string, tags []string, players int64, rating int) domain_catalog.GameRecord {
	return domain_catalog.GameRecord{
		AppID:           appID,
		Title:           title,
		Genre:           genre,
		Tags:            tags,
		ActivePlayers:   players,
		CommunityRating: rating,
	}
}

func TestComputeRecommendationsExcludesOwnedGames(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
	}
	owned := []domain_catalog.GameRecord{
		game(10, "Dead Cells", "Action", []string{"Roguelike"}, 5000, 90),
	}
	candidates := []domain_catalog.GameRecord{
		game(10, "Dead Cells", "Action", []string{"Roguelike"}, 5000, 90),
		game(20, "Hades", "Action", []string{"Roguelike"}, 30000, 97),
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Len(t, results, 1)
	assert.Equal(t, int64(20), results[0].AppID)
}

func TestComputeRecommendationsScoreBreakdown(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying, IsFavorite: true, IsPlatinumed: true},
	}
	owned := []domain_catalog.GameRecord{
		game(10, "Dead Cells", "", []string{"roguelike"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(20, "Hades", "", []string{"roguelike"}, 100, 0),
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Len(t, results, 1)
	// base 2 + favorite 2 + platinumed 3 = 7, plus popularity log10(101)*3.
	want := 7.0 + math.Log10(101)*3
	assert.InDelta(t, want, results[0].RecommendationScore, 1e-9)
	assert.Equal(t, []string{"roguelike"}, results[0].MatchedTags)
}

func TestComputeRecommendationsHoursWeightIsCapped(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusCompleted, HoursPlayed: 400},
	}
	owned := []domain_catalog.GameRecord{
		game(10, "Factorio", "", []string{"automation"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(20, "satisfactory", "", []string{"automation"}, 0, 0),
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Len(t, results, 1)
	// base 2 + completed 1 + hours capped at 3 = 6; no rating, no players.
	assert.InDelta(t, 6.0, results[0].RecommendationScore, 1e-9)
}

func TestComputeRecommendationsOrderingIsNonIncreasingAndStable(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 1, Status: domain_interaction.LibraryStatusPlaying},
	}
	owned := []domain_catalog.GameRecord{
		game(1, "Owned", "", []string{"strategy"}, 0, 0),
	}
	// Identical scores for 30 and 40: catalog order must be preserved.
	candidates := []domain_catalog.GameRecord{
		game(30, "Alpha", "", []string{"strategy"}, 0, 0),
		game(40, "Beta", "", []string{"strategy"}, 0, 0),
		game(50, "Gamma", "", []string{"strategy"}, 0, 50),
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].RecommendationScore, results[i].RecommendationScore)
	}
	assert.Equal(t, int64(50), results[0].AppID)
	assert.Equal(t, int64(30), results[1].AppID)
	assert.Equal(t, int64(40), results[2].AppID)
}

func TestNegativeReviewSuppressesCandidates(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
	}
	reviews := []domain_interaction.ReviewEntry{
		{UserID: "u1", AppID: 11, Score: 1, IsPositive: false},
	}
	// Game 11 was reviewed but never added to the library: its tokens are
	// known, yet only the -1 review penalty lands on "horror".
	owned := []domain_catalog.GameRecord{
		game(10, "Portal 2", "", []string{"puzzle"}, 0, 0),
		game(11, "Outlast", "", []string{"horror"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(20, "Amnesia", "", []string{"horror"}, 900, 80),
		game(21, "The Talos Principle", "", []string{"puzzle"}, 100, 85),
	}

	results := ComputeRecommendations(library, reviews, owned, candidates, 10)

	require.Len(t, results, 1)
	assert.Equal(t, int64(21), results[0].AppID)
}

func TestPositiveReviewReinforcesTokens(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
		{UserID: "u1", AppID: 11, Status: domain_interaction.LibraryStatusPlaying},
	}
	reviews := []domain_interaction.ReviewEntry{
		{UserID: "u1", AppID: 11, Score: 5},
	}
	owned := []domain_catalog.GameRecord{
		game(10, "A", "", []string{"puzzle"}, 0, 0),
		game(11, "B", "", []string{"horror"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(20, "C", "", []string{"puzzle"}, 0, 0),
		game(21, "D", "", []string{"horror"}, 0, 0),
	}

	results := ComputeRecommendations(library, reviews, owned, candidates, 10)

	// horror carries 2 (library) + 2 (positive review) = 4 vs puzzle's 2.
	require.Len(t, results, 2)
	assert.Equal(t, int64(21), results[0].AppID)
	assert.Equal(t, int64(20), results[1].AppID)
}

func TestComputeRecommendationsFallbackOnZeroTokenCandidates(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
	}
	owned := []domain_catalog.GameRecord{
		game(10, "Owned", "", []string{"roguelike"}, 0, 0),
	}
	// No candidate has genre or tags, so scoring yields zero survivors and
	// the popularity fallback must activate.
	candidates := []domain_catalog.GameRecord{
		game(20, "Quiet", "", nil, 50, 0),
		game(21, "Loud", "", nil, 5000, 0),
		game(22, "Middling", "", nil, 500, 0),
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Len(t, results, 3)
	assert.Equal(t, int64(21), results[0].AppID)
	assert.Equal(t, int64(22), results[1].AppID)
	assert.Equal(t, int64(20), results[2].AppID)
	for _, r := range results {
		assert.Zero(t, r.RecommendationScore)
		assert.Empty(t, r.MatchedTags)
	}
}

func TestComputeRecommendationsFallbackForEmptyLibrary(t *testing.T) {
	candidates := []domain_catalog.GameRecord{
		game(20, "A", "Action", []string{"fps"}, 100, 90),
		game(21, "B", "Action", []string{"fps"}, 200, 80),
	}

	results := ComputeRecommendations(nil, nil, nil, candidates, 10)

	require.Len(t, results, 2)
	assert.Equal(t, int64(21), results[0].AppID)
}

func TestFallbackRequiresZeroSurvivors(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
	}
	owned := []domain_catalog.GameRecord{
		game(10, "Owned", "", []string{"roguelike"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(20, "Match", "", []string{"roguelike"}, 0, 0),
		game(21, "NoMatch", "", []string{"racing"}, 99999, 99),
	}

	// One survivor is enough: the result is short, not padded by fallback.
	results := ComputeRecommendations(library, nil, owned, candidates, 5)

	require.Len(t, results, 1)
	assert.Equal(t, int64(20), results[0].AppID)
	assert.Positive(t, results[0].RecommendationScore)
}

func TestComputeRecommendationsDefaultLimit(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 1, Status: domain_interaction.LibraryStatusPlaying},
	}
	owned := []domain_catalog.GameRecord{
		game(1, "Owned", "", []string{"indie"}, 0, 0),
	}
	var candidates []domain_catalog.GameRecord
	for i := int64(2); i < 30; i++ {
		candidates = append(candidates, game(i, "Candidate", "", []string{"indie"}, i, 0))
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 0)

	assert.Len(t, results, DefaultRecommendLimit)
}

func TestComputeRecommendationsMatchedTagOrderAndCap(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 1, Status: domain_interaction.LibraryStatusPlaying},
	}
	owned := []domain_catalog.GameRecord{
		game(1, "Owned", "RPG, Adventure", []string{"open world", "fantasy", "crafting"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(2, "Candidate", "RPG, Adventure", []string{"open world", "fantasy", "crafting"}, 0, 0),
	}

	results := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Len(t, results, 1)
	// First three tokens in encounter order: genre parts before tags.
	assert.Equal(t, []string{"rpg", "adventure", "open world"}, results[0].MatchedTags)
}

func TestComputeRecommendationsIdempotent(t *testing.T) {
	library := []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 1, Status: domain_interaction.LibraryStatusCompleted, IsFavorite: true, HoursPlayed: 80},
	}
	owned := []domain_catalog.GameRecord{
		game(1, "Owned", "Action, RPG", []string{"souls-like"}, 0, 0),
	}
	candidates := []domain_catalog.GameRecord{
		game(2, "A", "Action", []string{"souls-like"}, 1200, 88),
		game(3, "B", "RPG", []string{"turn-based"}, 340, 91),
		game(4, "C", "Action, RPG", nil, 88000, 95),
	}

	first := ComputeRecommendations(library, nil, owned, candidates, 10)
	second := ComputeRecommendations(library, nil, owned, candidates, 10)

	require.Equal(t, first, second)
}
