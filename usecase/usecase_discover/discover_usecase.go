package usecase_discover

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_discover"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"go.uber.org/zap"
)

type DiscoverUsecase struct {
	gameRepo    domain_catalog.GameRepository
	libraryRepo domain_interaction.LibraryRepository
	reviewRepo  domain_interaction.ReviewRepository
	cache       RecommendCache
	cacheTTL    time.Duration
	curated     []domain_discover.CuratedEntry
	logger      *zap.Logger
	timeout     time.Duration
}

func NewDiscoverUsecase(
	gameRepo domain_catalog.GameRepository,
	libraryRepo domain_interaction.LibraryRepository,
	reviewRepo domain_interaction.ReviewRepository,
	cache RecommendCache,
	cacheTTL time.Duration,
	curated []domain_discover.CuratedEntry,
	logger *zap.Logger,
	timeout time.Duration,
) *DiscoverUsecase {
	return &DiscoverUsecase{
		gameRepo:    gameRepo,
		libraryRepo: libraryRepo,
		reviewRepo:  reviewRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		curated:     curated,
		logger:      logger,
		timeout:     timeout,
	}
}

// GetRecommendations assembles the user's interaction snapshot and the
// bounded candidate pool, then runs the affinity engine. Results are cached
// keyed by an interaction fingerprint, so any library or review mutation
// naturally misses the cache.
func (uc *DiscoverUsecase) GetRecommendations(ctx context.Context, userID string, limit int) ([]domain_discover.RecommendedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	library, err := uc.libraryRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("library snapshot failed: %w", err)
	}
	reviews, err := uc.reviewRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("review snapshot failed: %w", err)
	}

	cacheKey := fmt.Sprintf("spotlight:recommend:%s:%s:%d", userID, interactionFingerprint(library, reviews), limit)
	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, cacheKey); err == nil && payload != "" {
			var cached []domain_discover.RecommendedGame
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return cached, nil
			}
		} else if err != nil {
			uc.logger.Warn("recommendation cache read failed", zap.Error(err))
		}
	}

	ownedGames, err := uc.gameRepo.GetByAppIDs(ctx, interactionAppIDs(library, reviews))
	if err != nil {
		return nil, fmt.Errorf("owned game lookup failed: %w", err)
	}
	candidates, err := uc.gameRepo.GetTopRated(ctx, domain_discover.CandidatePoolLimit)
	if err != nil {
		return nil, fmt.Errorf("candidate pool query failed: %w", err)
	}

	results := domain_discover.ComputeRecommendations(library, reviews, ownedGames, candidates, limit)

	if uc.cache != nil {
		if payload, err := json.Marshal(results); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(payload), uc.cacheTTL); err != nil {
				uc.logger.Warn("recommendation cache write failed", zap.Error(err))
			}
		}
	}
	return results, nil
}

// GetCuratedRanking merges the shipped curation list with the bounded
// catalog slice.
func (uc *DiscoverUsecase) GetCuratedRanking(ctx context.Context, genreFilter, tagFilter string, limit int) ([]domain_discover.RankedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	snapshot, err := uc.gameRepo.GetCatalogSlice(ctx, domain_discover.CatalogSliceLimit)
	if err != nil {
		return nil, fmt.Errorf("catalog slice query failed: %w", err)
	}

	return domain_discover.ComputeCuratedRanking(uc.curated, snapshot, genreFilter, tagFilter, limit), nil
}

// interactionAppIDs returns the distinct app_ids across library and review
// rows. Reviewed-only games are included so the engine knows their tokens.
func interactionAppIDs(library []domain_interaction.LibraryEntry, reviews []domain_interaction.ReviewEntry) []int64 {
	seen := make(map[int64]bool, len(library)+len(reviews))
	var appIDs []int64
	for _, entry := range library {
		if !seen[entry.AppID] {
			seen[entry.AppID] = true
			appIDs = append(appIDs, entry.AppID)
		}
	}
	for _, review := range reviews {
		if !seen[review.AppID] {
			seen[review.AppID] = true
			appIDs = append(appIDs, review.AppID)
		}
	}
	return appIDs
}

// interactionFingerprint hashes every scoring-relevant interaction field in
// a deterministic order.
func interactionFingerprint(library []domain_interaction.LibraryEntry, reviews []domain_interaction.ReviewEntry) string {
	lines := make([]string, 0, len(library)+len(reviews))
	for _, entry := range library {
		lines = append(lines, fmt.Sprintf("l|%d|%s|%t|%t|%s",
			entry.AppID, entry.Status, entry.IsFavorite, entry.IsPlatinumed,
			strconv.FormatFloat(entry.HoursPlayed, 'f', -1, 64)))
	}
	for _, review := range reviews {
		lines = append(lines, fmt.Sprintf("r|%d|%t|%d", review.AppID, review.IsPositive, review.Score))
	}
	sort.Strings(lines)

	sum := sha1.Sum([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}
