package usecase_social

import (
	"context"
	"testing"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	domain_social.FeedbackRepository
	created []*domain_social.Feedback
	stored  []domain_social.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *domain_social.Feedback) error {
	f.created = append(f.created, feedback)
	return nil
}

func (f *fakeFeedbackRepo) GetAll(_ context.Context, _, _ int64) ([]domain_social.Feedback, error) {
	return f.stored, nil
}

func TestSubmitFeedbackRejectsEmptyBody(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	uc := NewFeedbackUsecase(repo, nil, 5*time.Second)

	err := uc.Submit(context.Background(), &domain_social.Feedback{UserID: "u1", Body: "   "})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestInboxGatedByAdminAllowlist(t *testing.T) {
	repo := &fakeFeedbackRepo{stored: []domain_social.Feedback{{UserID: "u1", Body: "hi"}}}
	uc := NewFeedbackUsecase(repo, map[string]bool{"admin-1": true}, 5*time.Second)

	_, err := uc.GetInbox(context.Background(), "u1", 1, 10)
	assert.ErrorIs(t, err, domain_social.ErrNotAdmin)

	inbox, err := uc.GetInbox(context.Background(), "admin-1", 1, 10)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
}
