package repository_social

import (
	"context"
	"fmt"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationRepository struct {
	db         mongo.Database
	collection string
}

func NewNotificationRepository(db mongo.Database, collection string) domain_social.NotificationRepository {
	return &notificationRepository{
		db:         db,
		collection: collection,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain_social.Notification) error {
	coll := r.db.Collection(r.collection)
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now().UTC()

	_, err := coll.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("notification insert failed: %w", err)
	}
	return nil
}

func (r *notificationRepository) CreateMany(ctx context.Context, notifications []*domain_social.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	coll := r.db.Collection(r.collection)
	bulk := coll.BulkWrite()

	now := time.Now().UTC()
	for _, notification := range notifications {
		notification.ID = primitive.NewObjectID()
		notification.CreatedAt = now
		bulk.AddModel(driver.NewInsertOneModel().SetDocument(notification))
	}

	if _, err := bulk.Execute(ctx); err != nil {
		return fmt.Errorf("notification bulk insert failed: %w", err)
	}
	return nil
}

func (r *notificationRepository) GetByUser(ctx context.Context, userID string, unreadOnly bool, limit int64) ([]domain_social.Notification, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["is_read"] = false
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("notification query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []domain_social.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("notification decode failed: %w", err)
	}
	if notifications == nil {
		notifications = []domain_social.Notification{}
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID string, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid notification id: %w", err)
	}

	coll := r.db.Collection(r.collection)
	_, err = coll.UpdateOne(ctx,
		bson.M{"_id": objectID, "user_id": userID},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("notification mark-read failed: %w", err)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	coll := r.db.Collection(r.collection)
	_, err := coll.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("notification mark-all-read failed: %w", err)
	}
	return nil
}
