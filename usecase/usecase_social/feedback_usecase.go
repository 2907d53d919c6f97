package usecase_social

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
)

const maxFeedbackPageSize = 100

type FeedbackUsecase struct {
	feedbackRepo domain_social.FeedbackRepository
	admins       map[string]bool
	timeout      time.Duration
}

// NewFeedbackUsecase takes the admin principal set from configuration. Only
// listed principals may read the inbox.
func NewFeedbackUsecase(
	feedbackRepo domain_social.FeedbackRepository,
	admins map[string]bool,
	timeout time.Duration,
) *FeedbackUsecase {
	return &FeedbackUsecase{
		feedbackRepo: feedbackRepo,
		admins:       admins,
		timeout:      timeout,
	}
}

func (uc *FeedbackUsecase) Submit(ctx context.Context, feedback *domain_social.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	feedback.Subject = strings.TrimSpace(feedback.Subject)
	feedback.Body = strings.TrimSpace(feedback.Body)
	if feedback.Body == "" {
		return fmt.Errorf("feedback body must not be empty")
	}

	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return fmt.Errorf("feedback create failed: %w", err)
	}
	return nil
}

func (uc *FeedbackUsecase) GetInbox(ctx context.Context, principalID string, page, pageSize int64) ([]domain_social.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !uc.admins[principalID] {
		return nil, domain_social.ErrNotAdmin
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxFeedbackPageSize {
		pageSize = maxFeedbackPageSize
	}

	feedback, err := uc.feedbackRepo.GetAll(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("feedback inbox query failed: %w", err)
	}
	return feedback, nil
}
