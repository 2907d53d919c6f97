package domain_discover

import (
	"testing"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedAppIDs(results []RankedGame) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.AppID)
	}
	return ids
}

func TestCuratedRankingNeverDuplicates(t *testing.T) {
	curated := []CuratedEntry{
		{Label: "Hades", Match: []string{"hades"}},
		{Label: "Hades again", Match: []string{"hades"}},
	}
	// The snapshot itself carries a duplicated app_id row.
	catalog := []domain_catalog.GameRecord{
		game(1, "Hades", "Action", []string{"roguelike"}, 100, 90),
		game(1, "Hades", "Action", []string{"roguelike"}, 100, 90),
		game(2, "Hades II", "Action", []string{"roguelike"}, 200, 92),
		game(3, "Celeste", "Platformer", []string{"indie"}, 50, 94),
	}

	results := ComputeCuratedRanking(curated, catalog, "", "", 0)

	seen := make(map[int64]bool)
	for _, r := range results {
		assert.False(t, seen[r.AppID], "app_id %d emitted twice", r.AppID)
		seen[r.AppID] = true
	}
}

func TestCuratedEntryClaimsFirstCatalogMatch(t *testing.T) {
	curated := []CuratedEntry{
		{Label: "Hades", Match: []string{"hades"}},
	}
	catalog := []domain_catalog.GameRecord{
		game(1, "Hades", "Action", nil, 100, 90),
		game(2, "Hades II", "Action", nil, 99999, 92),
	}

	results := ComputeCuratedRanking(curated, catalog, "", "", 0)

	require.Len(t, results, 2)
	// First catalog row wins the curated slot; the second stays available
	// for the remainder pool.
	assert.Equal(t, int64(1), results[0].AppID)
	assert.True(t, results[0].IsCurated)
	assert.Equal(t, int64(2), results[1].AppID)
	assert.False(t, results[1].IsCurated)
}

func TestCuratedOrderPrecedesPopularityOrder(t *testing.T) {
	curated := []CuratedEntry{
		{Label: "Celeste", Match: []string{"celeste"}},
		{Label: "Hades", Match: []string{"hades"}},
	}
	catalog := []domain_catalog.GameRecord{
		game(1, "Hades", "Action", nil, 90000, 90),
		game(2, "Celeste", "Platformer", nil, 10, 94),
		game(3, "Terraria", "Sandbox", nil, 50000, 96),
		game(4, "Niche Puzzler", "Puzzle", nil, 5, 70),
	}

	results := ComputeCuratedRanking(curated, catalog, "", "", 0)

	// Curated hits keep their configured order even when far less popular.
	require.Equal(t, []int64{2, 1, 3, 4}, rankedAppIDs(results))
	assert.True(t, results[0].IsCurated)
	assert.True(t, results[1].IsCurated)
	assert.False(t, results[2].IsCurated)
}

func TestCuratedMatchFoldsDiacritics(t *testing.T) {
	curated := []CuratedEntry{
		{Label: "God of War Ragnarök", Match: []string{"god of war ragnarok"}},
	}
	catalog := []domain_catalog.GameRecord{
		game(1, "God of War Ragnarök", "Action", nil, 100, 93),
	}

	results := ComputeCuratedRanking(curated, catalog, "", "", 0)

	require.Len(t, results, 1)
	assert.True(t, results[0].IsCurated)
}

func TestCuratedRankingFilters(t *testing.T) {
	curated := []CuratedEntry{
		{Label: "Hades", Match: []string{"hades"}},
	}
	catalog := []domain_catalog.GameRecord{
		game(1, "Hades", "Action Roguelike", []string{"indie"}, 100, 90),
		game(2, "Baldur's Gate 3", "RPG", []string{"fantasy", "turn-based"}, 800, 96),
		game(3, "Disco Elysium", "RPG", []string{"detective"}, 300, 92),
		game(4, "Rocket League", "Sports", []string{"cars"}, 5000, 88),
	}

	results := ComputeCuratedRanking(curated, catalog, "rpg", "", 0)

	// Hades fails the genre filter, so its curated entry claims nothing.
	require.Equal(t, []int64{2, 3}, rankedAppIDs(results))
	for _, r := range results {
		assert.False(t, r.IsCurated)
	}

	filtered := ComputeCuratedRanking(curated, catalog, "rpg", "turn-based", 0)
	require.Equal(t, []int64{2}, rankedAppIDs(filtered))
}

func TestRemainderSortedByPlayersThenRating(t *testing.T) {
	catalog := []domain_catalog.GameRecord{
		game(1, "A", "Action", nil, 100, 70),
		game(2, "B", "Action", nil, 500, 60),
		game(3, "C", "Action", nil, 100, 95),
		game(4, "D", "Action", nil, 0, 99),
	}

	results := ComputeCuratedRanking(nil, catalog, "", "", 0)

	require.Equal(t, []int64{2, 3, 1, 4}, rankedAppIDs(results))
}

func TestCuratedRankingLimitTruncates(t *testing.T) {
	catalog := []domain_catalog.GameRecord{
		game(1, "A", "Action", nil, 400, 70),
		game(2, "B", "Action", nil, 300, 60),
		game(3, "C", "Action", nil, 200, 95),
	}

	results := ComputeCuratedRanking(nil, catalog, "", "", 2)

	require.Equal(t, []int64{1, 2}, rankedAppIDs(results))
}

func TestUnmatchedCuratedEntriesContributeNothing(t *testing.T) {
	curated := []CuratedEntry{
		{Label: "Missing Game", Match: []string{"definitely not in catalog"}},
	}
	catalog := []domain_catalog.GameRecord{
		game(1, "A", "Action", nil, 400, 70),
	}

	results := ComputeCuratedRanking(curated, catalog, "", "", 0)

	require.Len(t, results, 1)
	assert.False(t, results[0].IsCurated)
}

func TestCuratedRankingIdempotent(t *testing.T) {
	catalog := []domain_catalog.GameRecord{
		game(1, "Hades", "Action", []string{"roguelike"}, 100, 90),
		game(2, "Hades II", "Action", []string{"roguelike"}, 100, 90),
		game(3, "Celeste", "Platformer", []string{"indie"}, 100, 94),
	}

	first := ComputeCuratedRanking(DefaultCuratedList, catalog, "", "", 0)
	second := ComputeCuratedRanking(DefaultCuratedList, catalog, "", "", 0)

	require.Equal(t, first, second)
}
