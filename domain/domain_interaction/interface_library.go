package domain_interaction

import "context"

type LibraryRepository interface {
	Upsert(ctx context.Context, entry *LibraryEntry) error
	Delete(ctx context.Context, userID string, appID int64) error
	GetByUser(ctx context.Context, userID string) ([]LibraryEntry, error)
	GetByUserAndApp(ctx context.Context, userID string, appID int64) (*LibraryEntry, error)

	// GetWishlistedAppIDs returns the distinct app_ids any user currently
	// wishlists. Drives the price watcher's polling set.
	GetWishlistedAppIDs(ctx context.Context) ([]int64, error)

	// GetWishingUsers returns the user_ids wishlisting one app.
	GetWishingUsers(ctx context.Context, appID int64) ([]string, error)
}
