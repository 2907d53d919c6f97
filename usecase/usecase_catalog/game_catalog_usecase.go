package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/mongo"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxSearchLimit  = 50
)

type GameCatalogUsecase struct {
	gameRepo domain_catalog.GameRepository
	timeout  time.Duration
}

func NewGameCatalogUsecase(gameRepo domain_catalog.GameRepository, timeout time.Duration) *GameCatalogUsecase {
	return &GameCatalogUsecase{
		gameRepo: gameRepo,
		timeout:  timeout,
	}
}

func (uc *GameCatalogUsecase) GetGame(ctx context.Context, appID int64) (*domain_catalog.GameRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	game, err := uc.gameRepo.GetByAppID(ctx, appID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain_catalog.ErrGameNotFound
		}
		return nil, fmt.Errorf("game lookup failed: %w", err)
	}
	return game, nil
}

func (uc *GameCatalogUsecase) BrowseGames(ctx context.Context, page, pageSize int64) ([]domain_catalog.GameRecord, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	games, err := uc.gameRepo.GetPaginated(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog page query failed: %w", err)
	}
	total, err := uc.gameRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog count failed: %w", err)
	}
	return games, total, nil
}

// SearchGames matches the keyword against titles and their pinyin keys, so
// CJK titles are reachable from a latin keyboard.
func (uc *GameCatalogUsecase) SearchGames(ctx context.Context, keyword string, limit int64) ([]domain_catalog.GameRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []domain_catalog.GameRecord{}, nil
	}
	if limit < 1 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	games, err := uc.gameRepo.Search(ctx, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	return games, nil
}
