package usecase_interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/spotlight-app/spotlight-backend/mongo"
)

const maxReviewPageSize = 50

type ReviewUsecase struct {
	reviewRepo domain_interaction.ReviewRepository
	gameRepo   domain_catalog.GameRepository
	timeout    time.Duration
}

func NewReviewUsecase(
	reviewRepo domain_interaction.ReviewRepository,
	gameRepo domain_catalog.GameRepository,
	timeout time.Duration,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
		timeout:    timeout,
	}
}

// SubmitReview creates or replaces the user's review of one game. Score 0
// means no star rating, in which case the body must carry the review.
func (uc *ReviewUsecase) SubmitReview(ctx context.Context, review *domain_interaction.ReviewEntry) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	review.Body = strings.TrimSpace(review.Body)
	if review.Score < 0 || review.Score > 5 {
		return domain_interaction.ErrInvalidScore
	}
	if review.Score == 0 && review.Body == "" {
		return domain_interaction.ErrEmptyReview
	}

	if _, err := uc.gameRepo.GetByAppID(ctx, review.AppID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain_catalog.ErrGameNotFound
		}
		return fmt.Errorf("game lookup failed: %w", err)
	}

	if err := uc.reviewRepo.Upsert(ctx, review); err != nil {
		return fmt.Errorf("review upsert failed: %w", err)
	}
	return nil
}

func (uc *ReviewUsecase) RemoveReview(ctx context.Context, userID string, appID int64) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.reviewRepo.Delete(ctx, userID, appID); err != nil {
		return fmt.Errorf("review delete failed: %w", err)
	}
	return nil
}

func (uc *ReviewUsecase) GetGameReviews(ctx context.Context, appID int64, page, pageSize int64) ([]domain_interaction.ReviewEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxReviewPageSize {
		pageSize = maxReviewPageSize
	}

	reviews, err := uc.reviewRepo.GetByApp(ctx, appID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("review query failed: %w", err)
	}
	return reviews, nil
}
