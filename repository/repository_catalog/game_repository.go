package repository_catalog

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type gameRepository struct {
	db         mongo.Database
	collection string
}

func NewGameRepository(db mongo.Database, collection string) domain_catalog.GameRepository {
	return &gameRepository{
		db:         db,
		collection: collection,
	}
}

func (r *gameRepository) BulkUpsert(ctx context.Context, games []*domain_catalog.GameRecord) (int, error) {
	if len(games) == 0 {
		return 0, nil
	}
	coll := r.db.Collection(r.collection)
	bulk := coll.BulkWrite()

	now := time.Now().UTC()
	for _, game := range games {
		game.UpdatedAt = now
		filter := bson.M{"app_id": game.AppID}
		model := driver.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$set": bson.M{
				"app_id":            game.AppID,
				"title":             game.Title,
				"title_pinyin_full": game.TitlePinyinFull,
				"genre":             game.Genre,
				"tags":              game.Tags,
				"active_players":    game.ActivePlayers,
				"community_rating":  game.CommunityRating,
				"price_cents":       game.PriceCents,
				"currency":          game.Currency,
				"discount_percent":  game.DiscountPercent,
				"header_image":      game.HeaderImage,
				"capsule_image":     game.CapsuleImage,
				"release_date":      game.ReleaseDate,
				"updated_at":        game.UpdatedAt,
			}}).
			SetUpsert(true)
		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("catalog bulk upsert failed: %w", err)
	}
	return int(result.UpsertedCount() + result.ModifiedCount()), nil
}

func (r *gameRepository) GetByAppID(ctx context.Context, appID int64) (*domain_catalog.GameRecord, error) {
	coll := r.db.Collection(r.collection)

	var game domain_catalog.GameRecord
	err := coll.FindOne(ctx, bson.M{"app_id": appID}).Decode(&game)
	if err != nil {
		return nil, fmt.Errorf("game lookup failed (app_id=%d): %w", appID, err)
	}
	return &game, nil
}

func (r *gameRepository) GetByAppIDs(ctx context.Context, appIDs []int64) ([]domain_catalog.GameRecord, error) {
	if len(appIDs) == 0 {
		return []domain_catalog.GameRecord{}, nil
	}
	return r.findGames(ctx, bson.M{"app_id": bson.M{"$in": appIDs}}, nil)
}

func (r *gameRepository) GetTopRated(ctx context.Context, limit int64) ([]domain_catalog.GameRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "community_rating", Value: -1}}).
		SetLimit(limit)
	return r.findGames(ctx, bson.M{}, opts)
}

func (r *gameRepository) GetCatalogSlice(ctx context.Context, limit int64) ([]domain_catalog.GameRecord, error) {
	opts := options.Find().SetLimit(limit)
	return r.findGames(ctx, bson.M{}, opts)
}

func (r *gameRepository) Search(ctx context.Context, keyword string, limit int64) ([]domain_catalog.GameRecord, error) {
	escaped := regexp.QuoteMeta(keyword)
	filter := bson.M{"$or": bson.A{
		bson.M{"title": bson.M{"$regex": escaped, "$options": "i"}},
		bson.M{"title_pinyin_full": bson.M{"$regex": escaped, "$options": "i"}},
	}}
	opts := options.Find().SetLimit(limit)
	return r.findGames(ctx, filter, opts)
}

func (r *gameRepository) GetPaginated(ctx context.Context, skip, limit int64) ([]domain_catalog.GameRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "active_players", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	return r.findGames(ctx, bson.M{}, opts)
}

func (r *gameRepository) UpdatePrice(ctx context.Context, appID int64, priceCents int64, discountPercent int) error {
	coll := r.db.Collection(r.collection)
	_, err := coll.UpdateOne(ctx,
		bson.M{"app_id": appID},
		bson.M{"$set": bson.M{
			"price_cents":      priceCents,
			"discount_percent": discountPercent,
			"updated_at":       time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("price update failed (app_id=%d): %w", appID, err)
	}
	return nil
}

func (r *gameRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(r.collection).CountDocuments(ctx, bson.M{})
}

func (r *gameRepository) findGames(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]domain_catalog.GameRecord, error) {
	coll := r.db.Collection(r.collection)

	var cursor mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var games []domain_catalog.GameRecord
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("catalog decode failed: %w", err)
	}
	if games == nil {
		games = []domain_catalog.GameRecord{}
	}
	return games, nil
}
