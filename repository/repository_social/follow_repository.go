package repository_social

import (
	"context"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type followRepository struct {
	db         mongo.Database
	collection string
}

func NewFollowRepository(db mongo.Database, collection string) domain_social.FollowRepository {
	return &followRepository{
		db:         db,
		collection: collection,
	}
}

func (r *followRepository) Create(ctx context.Context, follow *domain_social.Follow) error {
	coll := r.db.Collection(r.collection)
	follow.CreatedAt = time.Now().UTC()

	_, err := coll.InsertOne(ctx, follow)
	if err != nil {
		return fmt.Errorf("follow insert failed: %w", err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	coll := r.db.Collection(r.collection)
	_, err := coll.DeleteOne(ctx, bson.M{"follower_id": followerID, "followee_id": followeeID})
	if err != nil {
		return fmt.Errorf("follow delete failed: %w", err)
	}
	return nil
}

func (r *followRepository) GetFollowing(ctx context.Context, followerID string) ([]domain_social.Follow, error) {
	return r.findFollows(ctx, bson.M{"follower_id": followerID})
}

func (r *followRepository) GetFollowers(ctx context.Context, followeeID string) ([]domain_social.Follow, error) {
	return r.findFollows(ctx, bson.M{"followee_id": followeeID})
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, bson.M{"follower_id": followerID, "followee_id": followeeID})
	if err != nil {
		return false, fmt.Errorf("follow existence check failed: %w", err)
	}
	return count > 0, nil
}

func (r *followRepository) findFollows(ctx context.Context, filter interface{}) ([]domain_social.Follow, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("follow query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var follows []domain_social.Follow
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, fmt.Errorf("follow decode failed: %w", err)
	}
	if follows == nil {
		follows = []domain_social.Follow{}
	}
	return follows, nil
}
