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

type reviewRepository struct {
	db         mongo.Database
	collection string
}

func NewReviewRepository(db mongo.Database, collection string) domain_interaction.ReviewRepository {
	return &reviewRepository{
		db:         db,
		collection: collection,
	}
}

func (r *reviewRepository) Upsert(ctx context.Context, review *domain_interaction.ReviewEntry) error {
	coll := r.db.Collection(r.collection)
	now := time.Now().UTC()
	review.UpdatedAt = now

	upsert := true
	_, err := coll.UpdateOne(ctx,
		bson.M{"user_id": review.UserID, "app_id": review.AppID},
		bson.M{
			"$set": bson.M{
				"user_id":     review.UserID,
				"app_id":      review.AppID,
				"is_positive": review.IsPositive,
				"score":       review.Score,
				"body":        review.Body,
				"updated_at":  review.UpdatedAt,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		&options.UpdateOptions{Upsert: &upsert},
	)
	if err != nil {
		return fmt.Errorf("review upsert failed: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, userID string, appID int64) error {
	coll := r.db.Collection(r.collection)
	_, err := coll.DeleteOne(ctx, bson.M{"user_id": userID, "app_id": appID})
	if err != nil {
		return fmt.Errorf("review delete failed: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByUser(ctx context.Context, userID string) ([]domain_interaction.ReviewEntry, error) {
	return r.findReviews(ctx, bson.M{"user_id": userID}, nil)
}

func (r *reviewRepository) GetByApp(ctx context.Context, appID int64, skip, limit int64) ([]domain_interaction.ReviewEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	return r.findReviews(ctx, bson.M{"app_id": appID}, opts)
}

func (r *reviewRepository) findReviews(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]domain_interaction.ReviewEntry, error) {
	coll := r.db.Collection(r.collection)

	var cursor mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("review query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []domain_interaction.ReviewEntry
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("review decode failed: %w", err)
	}
	if reviews == nil {
		reviews = []domain_interaction.ReviewEntry{}
	}
	return reviews, nil
}
