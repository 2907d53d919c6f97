package usecase_discover

import (
	"context"
	"testing"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_discover"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGameRepo struct {
	domain_catalog.GameRepository
	games         map[int64]domain_catalog.GameRecord
	topRated      []domain_catalog.GameRecord
	catalogSlice  []domain_catalog.GameRecord
	topRatedCalls int
}

func (f *fakeGameRepo) GetByAppIDs(_ context.Context, appIDs []int64) ([]domain_catalog.GameRecord, error) {
	var result []domain_catalog.GameRecord
	for _, id := range appIDs {
		if g, ok := f.games[id]; ok {
			result = append(result, g)
		}
	}
	return result, nil
}

func (f *fakeGameRepo) GetTopRated(_ context.Context, _ int64) ([]domain_catalog.GameRecord, error) {
	f.topRatedCalls++
	return f.topRated, nil
}

func (f *fakeGameRepo) GetCatalogSlice(_ context.Context, _ int64) ([]domain_catalog.GameRecord, error) {
	return f.catalogSlice, nil
}

type fakeLibraryRepo struct {
	domain_interaction.LibraryRepository
	entries []domain_interaction.LibraryEntry
}

func (f *fakeLibraryRepo) GetByUser(_ context.Context, _ string) ([]domain_interaction.LibraryEntry, error) {
	return f.entries, nil
}

type fakeReviewRepo struct {
	domain_interaction.ReviewRepository
	reviews []domain_interaction.ReviewEntry
}

func (f *fakeReviewRepo) GetByUser(_ context.Context, _ string) ([]domain_interaction.ReviewEntry, error) {
	return f.reviews, nil
}

type fakeCache struct {
	store map[string]string
	sets  int
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	f.store[key] = value
	f.sets++
	return nil
}

func newTestUsecase(gameRepo *fakeGameRepo, libraryRepo *fakeLibraryRepo, reviewRepo *fakeReviewRepo, cache RecommendCache) *DiscoverUsecase {
	return NewDiscoverUsecase(
		gameRepo, libraryRepo, reviewRepo, cache, time.Minute,
		domain_discover.DefaultCuratedList, zap.NewNop(), 5*time.Second,
	)
}

func TestGetRecommendationsComputesAndCaches(t *testing.T) {
	gameRepo := &fakeGameRepo{
		games: map[int64]domain_catalog.GameRecord{
			10: {AppID: 10, Title: "Owned", Tags: []string{"roguelike"}},
		},
		topRated: []domain_catalog.GameRecord{
			{AppID: 20, Title: "Hades", Tags: []string{"roguelike"}, ActivePlayers: 100},
		},
	}
	libraryRepo := &fakeLibraryRepo{entries: []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
	}}
	reviewRepo := &fakeReviewRepo{}
	cache := &fakeCache{store: map[string]string{}}

	uc := newTestUsecase(gameRepo, libraryRepo, reviewRepo, cache)

	first, err := uc.GetRecommendations(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, int64(20), first[0].AppID)
	assert.Equal(t, 1, cache.sets)

	// Second call with unchanged interactions hits the cache: the candidate
	// pool is not fetched again.
	second, err := uc.GetRecommendations(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gameRepo.topRatedCalls)
}

func TestGetRecommendationsCacheMissesAfterLibraryChange(t *testing.T) {
	gameRepo := &fakeGameRepo{
		games: map[int64]domain_catalog.GameRecord{
			10: {AppID: 10, Tags: []string{"roguelike"}},
		},
		topRated: []domain_catalog.GameRecord{
			{AppID: 20, Tags: []string{"roguelike"}},
		},
	}
	libraryRepo := &fakeLibraryRepo{entries: []domain_interaction.LibraryEntry{
		{UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying},
	}}
	reviewRepo := &fakeReviewRepo{}
	cache := &fakeCache{store: map[string]string{}}

	uc := newTestUsecase(gameRepo, libraryRepo, reviewRepo, cache)

	_, err := uc.GetRecommendations(context.Background(), "u1", 10)
	require.NoError(t, err)

	// Favoriting the game changes the fingerprint, so the next call must
	// recompute rather than serve the stale entry.
	libraryRepo.entries[0].IsFavorite = true
	_, err = uc.GetRecommendations(context.Background(), "u1", 10)
	require.NoError(t, err)

	assert.Equal(t, 2, gameRepo.topRatedCalls)
	assert.Equal(t, 2, cache.sets)
}

func TestGetCuratedRanking(t *testing.T) {
	gameRepo := &fakeGameRepo{
		catalogSlice: []domain_catalog.GameRecord{
			{AppID: 1, Title: "Hades", Genre: "Action", ActivePlayers: 10},
			{AppID: 2, Title: "Obscure Shooter", Genre: "Action", ActivePlayers: 900},
		},
	}
	uc := newTestUsecase(gameRepo, &fakeLibraryRepo{}, &fakeReviewRepo{}, nil)

	results, err := uc.GetCuratedRanking(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Hades is on the curated list and leads despite fewer players.
	assert.Equal(t, int64(1), results[0].AppID)
	assert.True(t, results[0].IsCurated)
}
