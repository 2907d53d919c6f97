package usecase_interaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/spotlight-app/spotlight-backend/mongo"
)

type LibraryUsecase struct {
	libraryRepo domain_interaction.LibraryRepository
	gameRepo    domain_catalog.GameRepository
	timeout     time.Duration
}

func NewLibraryUsecase(
	libraryRepo domain_interaction.LibraryRepository,
	gameRepo domain_catalog.GameRepository,
	timeout time.Duration,
) *LibraryUsecase {
	return &LibraryUsecase{
		libraryRepo: libraryRepo,
		gameRepo:    gameRepo,
		timeout:     timeout,
	}
}

// SetEntry creates or replaces the user's library row for one game.
// The game must exist in the catalog.
func (uc *LibraryUsecase) SetEntry(ctx context.Context, entry *domain_interaction.LibraryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !domain_interaction.ValidLibraryStatus(entry.Status) {
		return domain_interaction.ErrInvalidStatus
	}
	if entry.HoursPlayed < 0 {
		entry.HoursPlayed = 0
	}

	if _, err := uc.gameRepo.GetByAppID(ctx, entry.AppID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain_catalog.ErrGameNotFound
		}
		return fmt.Errorf("game lookup failed: %w", err)
	}

	if err := uc.libraryRepo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("library upsert failed: %w", err)
	}
	return nil
}

func (uc *LibraryUsecase) RemoveEntry(ctx context.Context, userID string, appID int64) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.libraryRepo.Delete(ctx, userID, appID); err != nil {
		return fmt.Errorf("library delete failed: %w", err)
	}
	return nil
}

func (uc *LibraryUsecase) GetLibrary(ctx context.Context, userID string) ([]domain_interaction.LibraryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	entries, err := uc.libraryRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("library query failed: %w", err)
	}
	return entries, nil
}
