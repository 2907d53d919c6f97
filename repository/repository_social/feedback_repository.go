package repository_social

import (
	"context"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type feedbackRepository struct {
	db         mongo.Database
	collection string
}

func NewFeedbackRepository(db mongo.Database, collection string) domain_social.FeedbackRepository {
	return &feedbackRepository{
		db:         db,
		collection: collection,
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain_social.Feedback) error {
	coll := r.db.Collection(r.collection)
	feedback.ID = primitive.NewObjectID()
	feedback.CreatedAt = time.Now().UTC()

	_, err := coll.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("feedback insert failed: %w", err)
	}
	return nil
}

func (r *feedbackRepository) GetAll(ctx context.Context, skip, limit int64) ([]domain_social.Feedback, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("feedback query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var feedback []domain_social.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("feedback decode failed: %w", err)
	}
	if feedback == nil {
		feedback = []domain_social.Feedback{}
	}
	return feedback, nil
}
