package repository_social

import (
	"context"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type friendRequestRepository struct {
	db         mongo.Database
	collection string
}

func NewFriendRequestRepository(db mongo.Database, collection string) domain_social.FriendRequestRepository {
	return &friendRequestRepository{
		db:         db,
		collection: collection,
	}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *domain_social.FriendRequest) error {
	coll := r.db.Collection(r.collection)
	now := time.Now().UTC()
	request.ID = primitive.NewObjectID()
	request.Status = domain_social.FriendRequestPending
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := coll.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("friend request insert failed: %w", err)
	}
	return nil
}

func (r *friendRequestRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid friend request id: %w", err)
	}

	coll := r.db.Collection(r.collection)
	_, err = coll.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("friend request status update failed: %w", err)
	}
	return nil
}

func (r *friendRequestRepository) GetByID(ctx context.Context, id string) (*domain_social.FriendRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid friend request id: %w", err)
	}

	coll := r.db.Collection(r.collection)
	var request domain_social.FriendRequest
	if err := coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&request); err != nil {
		return nil, fmt.Errorf("friend request lookup failed: %w", err)
	}
	return &request, nil
}

func (r *friendRequestRepository) GetPendingForUser(ctx context.Context, recipientID string) ([]domain_social.FriendRequest, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{
		"recipient_id": recipientID,
		"status":       domain_social.FriendRequestPending,
	})
	if err != nil {
		return nil, fmt.Errorf("friend request query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []domain_social.FriendRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("friend request decode failed: %w", err)
	}
	if requests == nil {
		requests = []domain_social.FriendRequest{}
	}
	return requests, nil
}

func (r *friendRequestRepository) ExistsPending(ctx context.Context, requesterID, recipientID string) (bool, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, bson.M{
		"requester_id": requesterID,
		"recipient_id": recipientID,
		"status":       domain_social.FriendRequestPending,
	})
	if err != nil {
		return false, fmt.Errorf("friend request existence check failed: %w", err)
	}
	return count > 0, nil
}
