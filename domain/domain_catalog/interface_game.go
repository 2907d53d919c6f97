package domain_catalog

import "context"

type GameRepository interface {
	BulkUpsert(ctx context.Context, games []*GameRecord) (int, error)
	GetByAppID(ctx context.Context, appID int64) (*GameRecord, error)
	GetByAppIDs(ctx context.Context, appIDs []int64) ([]GameRecord, error)

	// GetTopRated returns up to limit records sorted by community_rating
	// descending. Feeds the recommender candidate pool.
	GetTopRated(ctx context.Context, limit int64) ([]GameRecord, error)

	// GetCatalogSlice returns up to limit records in natural collection
	// order. Feeds the curated ranking merger.
	GetCatalogSlice(ctx context.Context, limit int64) ([]GameRecord, error)

	Search(ctx context.Context, keyword string, limit int64) ([]GameRecord, error)
	GetPaginated(ctx context.Context, skip, limit int64) ([]GameRecord, error)
	UpdatePrice(ctx context.Context, appID int64, priceCents int64, discountPercent int) error
	Count(ctx context.Context) (int64, error)
}
