package mongo

import (
	"context"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CreateIndexes builds the index set the repositories query against. Index
// creation failures are logged, not fatal: the server still serves with
// collection scans.
func CreateIndexes(db Database, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gameCollection := db.Collection(domain.CollectionCatalogGame)
	createIndex(ctx, logger, gameCollection, bson.D{{Key: "app_id", Value: 1}}, "app_id", true)
	createIndex(ctx, logger, gameCollection, bson.D{{Key: "community_rating", Value: -1}}, "community_rating", false)
	createIndex(ctx, logger, gameCollection, bson.D{{Key: "active_players", Value: -1}}, "active_players", false)
	createIndex(ctx, logger, gameCollection, bson.D{{Key: "title", Value: 1}}, "title", false)
	createIndex(ctx, logger, gameCollection, bson.D{{Key: "title_pinyin_full", Value: 1}}, "title_pinyin_full", false)

	libraryCollection := db.Collection(domain.CollectionInteractionLibrary)
	createIndex(ctx, logger, libraryCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "app_id", Value: 1}}, "user_app_unique", true)
	createIndex(ctx, logger, libraryCollection, bson.D{
		{Key: "status", Value: 1},
		{Key: "app_id", Value: 1}}, "status_app_compound", false)

	reviewCollection := db.Collection(domain.CollectionInteractionReview)
	createIndex(ctx, logger, reviewCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "app_id", Value: 1}}, "user_app_unique", true)
	createIndex(ctx, logger, reviewCollection, bson.D{
		{Key: "app_id", Value: 1},
		{Key: "created_at", Value: -1}}, "app_created_compound", false)

	followCollection := db.Collection(domain.CollectionSocialFollow)
	createIndex(ctx, logger, followCollection, bson.D{
		{Key: "follower_id", Value: 1},
		{Key: "followee_id", Value: 1}}, "follower_followee_unique", true)
	createIndex(ctx, logger, followCollection, bson.D{{Key: "followee_id", Value: 1}}, "followee_id", false)

	friendRequestCollection := db.Collection(domain.CollectionSocialFriendRequest)
	createIndex(ctx, logger, friendRequestCollection, bson.D{
		{Key: "recipient_id", Value: 1},
		{Key: "status", Value: 1}}, "recipient_status_compound", false)

	notificationCollection := db.Collection(domain.CollectionSocialNotification)
	createIndex(ctx, logger, notificationCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "is_read", Value: 1},
		{Key: "created_at", Value: -1}}, "user_read_created_compound", false)

	feedbackCollection := db.Collection(domain.CollectionSocialFeedback)
	createIndex(ctx, logger, feedbackCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at", false)
}

func createIndex(
	ctx context.Context,
	logger *zap.Logger,
	collection Collection,
	keys bson.D,
	name string,
	unique bool,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(unique),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn("index creation failed", zap.String("index", name), zap.Error(err))
	}
}
