package repository_interaction

import (
	"context"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_interaction"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type libraryRepository struct {
	db         mongo.Database
	collection string
}

func NewLibraryRepository(db mongo.Database, collection string) domain_interaction.LibraryRepository {
	return &libraryRepository{
		db:         db,
		collection: collection,
	}
}

func (r *libraryRepository) Upsert(ctx context.Context, entry *domain_interaction.LibraryEntry) error {
	coll := r.db.Collection(r.collection)
	entry.UpdatedAt = time.Now().UTC()

	upsert := true
	_, err := coll.UpdateOne(ctx,
		bson.M{"user_id": entry.UserID, "app_id": entry.AppID},
		bson.M{"$set": bson.M{
			"user_id":       entry.UserID,
			"app_id":        entry.AppID,
			"status":        entry.Status,
			"is_favorite":   entry.IsFavorite,
			"is_platinumed": entry.IsPlatinumed,
			"hours_played":  entry.HoursPlayed,
			"updated_at":    entry.UpdatedAt,
		}},
		&options.UpdateOptions{Upsert: &upsert},
	)
	if err != nil {
		return fmt.Errorf("library upsert failed: %w", err)
	}
	return nil
}

func (r *libraryRepository) Delete(ctx context.Context, userID string, appID int64) error {
	coll := r.db.Collection(r.collection)
	_, err := coll.DeleteOne(ctx, bson.M{"user_id": userID, "app_id": appID})
	if err != nil {
		return fmt.Errorf("library delete failed: %w", err)
	}
	return nil
}

func (r *libraryRepository) GetByUser(ctx context.Context, userID string) ([]domain_interaction.LibraryEntry, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("library query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain_interaction.LibraryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("library decode failed: %w", err)
	}
	if entries == nil {
		entries = []domain_interaction.LibraryEntry{}
	}
	return entries, nil
}

func (r *libraryRepository) GetByUserAndApp(ctx context.Context, userID string, appID int64) (*domain_interaction.LibraryEntry, error) {
	coll := r.db.Collection(r.collection)

	var entry domain_interaction.LibraryEntry
	err := coll.FindOne(ctx, bson.M{"user_id": userID, "app_id": appID}).Decode(&entry)
	if err != nil {
		return nil, fmt.Errorf("library entry lookup failed: %w", err)
	}
	return &entry, nil
}

func (r *libraryRepository) GetWishlistedAppIDs(ctx context.Context) ([]int64, error) {
	coll := r.db.Collection(r.collection)

	values, err := coll.Distinct(ctx, "app_id", bson.M{"status": domain_interaction.LibraryStatusWishlist})
	if err != nil {
		return nil, fmt.Errorf("wishlist app_id query failed: %w", err)
	}

	appIDs := make([]int64, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case int64:
			appIDs = append(appIDs, id)
		case int32:
			appIDs = append(appIDs, int64(id))
		}
	}
	return appIDs, nil
}

func (r *libraryRepository) GetWishingUsers(ctx context.Context, appID int64) ([]string, error) {
	coll := r.db.Collection(r.collection)

	values, err := coll.Distinct(ctx, "user_id", bson.M{
		"app_id": appID,
		"status": domain_interaction.LibraryStatusWishlist,
	})
	if err != nil {
		return nil, fmt.Errorf("wishing user query failed: %w", err)
	}

	userIDs := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			userIDs = append(userIDs, id)
		}
	}
	return userIDs, nil
}
