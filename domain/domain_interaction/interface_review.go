package domain_interaction

import "context"

type ReviewRepository interface {
	Upsert(ctx context.Context, review *ReviewEntry) error
	Delete(ctx context.Context, userID string, appID int64) error
	GetByUser(ctx context.Context, userID string) ([]ReviewEntry, error)
	GetByApp(ctx context.Context, appID int64, skip, limit int64) ([]ReviewEntry, error)
}
