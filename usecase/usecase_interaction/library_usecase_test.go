package usecase_interaction

import (
	"context"
	"testing"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGameRepo struct {
	domain_catalog.GameRepository
	known map[int64]bool
}

func (f *fakeGameRepo) GetByAppID(_ context.Context, appID int64) (*domain_catalog.GameRecord, error) {
	if !f.known[appID] {
		return nil, mongo.ErrNoDocuments
	}
	return &domain_catalog.GameRecord{AppID: appID}, nil
}

type fakeLibraryRepo struct {
	domain_interaction.LibraryRepository
	upserted []*domain_interaction.LibraryEntry
}

func (f *fakeLibraryRepo) Upsert(_ context.Context, entry *domain_interaction.LibraryEntry) error {
	f.upserted = append(f.upserted, entry)
	return nil
}

func TestSetEntryValidatesStatus(t *testing.T) {
	libraryRepo := &fakeLibraryRepo{}
	uc := NewLibraryUsecase(libraryRepo, &fakeGameRepo{known: map[int64]bool{10: true}}, 5*time.Second)

	err := uc.SetEntry(context.Background(), &domain_interaction.LibraryEntry{
		UserID: "u1", AppID: 10, Status: "abandoned",
	})
	assert.ErrorIs(t, err, domain_interaction.ErrInvalidStatus)
	assert.Empty(t, libraryRepo.upserted)
}

func TestSetEntryRequiresKnownGame(t *testing.T) {
	uc := NewLibraryUsecase(&fakeLibraryRepo{}, &fakeGameRepo{known: map[int64]bool{}}, 5*time.Second)

	err := uc.SetEntry(context.Background(), &domain_interaction.LibraryEntry{
		UserID: "u1", AppID: 404, Status: domain_interaction.LibraryStatusWishlist,
	})
	assert.ErrorIs(t, err, domain_catalog.ErrGameNotFound)
}

func TestSetEntryClampsNegativeHours(t *testing.T) {
	libraryRepo := &fakeLibraryRepo{}
	uc := NewLibraryUsecase(libraryRepo, &fakeGameRepo{known: map[int64]bool{10: true}}, 5*time.Second)

	entry := &domain_interaction.LibraryEntry{
		UserID: "u1", AppID: 10, Status: domain_interaction.LibraryStatusPlaying, HoursPlayed: -3,
	}
	require.NoError(t, uc.SetEntry(context.Background(), entry))
	require.Len(t, libraryRepo.upserted, 1)
	assert.Equal(t, float64(0), libraryRepo.upserted[0].HoursPlayed)
}

type fakeReviewRepo struct {
	domain_interaction.ReviewRepository
	upserted []*domain_interaction.ReviewEntry
}

func (f *fakeReviewRepo) Upsert(_ context.Context, review *domain_interaction.ReviewEntry) error {
	f.upserted = append(f.upserted, review)
	return nil
}

func TestSubmitReviewValidatesScore(t *testing.T) {
	uc := NewReviewUsecase(&fakeReviewRepo{}, &fakeGameRepo{known: map[int64]bool{10: true}}, 5*time.Second)

	err := uc.SubmitReview(context.Background(), &domain_interaction.ReviewEntry{
		UserID: "u1", AppID: 10, Score: 6,
	})
	assert.ErrorIs(t, err, domain_interaction.ErrInvalidScore)
}

func TestSubmitReviewRequiresScoreOrBody(t *testing.T) {
	uc := NewReviewUsecase(&fakeReviewRepo{}, &fakeGameRepo{known: map[int64]bool{10: true}}, 5*time.Second)

	err := uc.SubmitReview(context.Background(), &domain_interaction.ReviewEntry{
		UserID: "u1", AppID: 10, Score: 0, Body: "  ",
	})
	assert.ErrorIs(t, err, domain_interaction.ErrEmptyReview)
}

func TestSubmitReviewAcceptsBodyOnly(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	uc := NewReviewUsecase(reviewRepo, &fakeGameRepo{known: map[int64]bool{10: true}}, 5*time.Second)

	err := uc.SubmitReview(context.Background(), &domain_interaction.ReviewEntry{
		UserID: "u1", AppID: 10, IsPositive: true, Body: "great run variety",
	})
	require.NoError(t, err)
	require.Len(t, reviewRepo.upserted, 1)
}
