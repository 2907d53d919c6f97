package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/spotlight-app/spotlight-backend/bootstrap"
	"github.com/spotlight-app/spotlight-backend/domain"
	"github.com/spotlight-app/spotlight-backend/domain/domain_catalog"
	"github.com/spotlight-app/spotlight-backend/repository/repository_catalog"
	"github.com/spotlight-app/spotlight-backend/steam"
	"go.uber.org/zap"
)

const upsertBatchSize = 50

func main() {
	maxApps := flag.Int("max", 200, "maximum number of apps to sync this run")
	startAppID := flag.Int64("start-after", 0, "skip apps with app_id at or below this value")
	flag.Parse()

	app := bootstrap.App()
	env := app.Env
	logger := app.Logger
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.MongoDBName)
	gameRepo := repository_catalog.NewGameRepository(db, domain.CollectionCatalogGame)
	client := steam.NewClient(env.SteamStoreAPIBase, env.SteamAppListURL)
	delay := time.Duration(env.SyncRequestDelayMS) * time.Millisecond

	ctx := context.Background()

	apps, err := client.GetAppList(ctx)
	if err != nil {
		logger.Fatal("app list fetch failed", zap.Error(err))
	}
	logger.Info("app list fetched", zap.Int("total", len(apps)))

	var batch []*domain_catalog.GameRecord
	synced := 0
	for _, entry := range apps {
		if synced >= *maxApps {
			break
		}
		if entry.AppID <= *startAppID || strings.TrimSpace(entry.Name) == "" {
			continue
		}

		// Sequential fetch with a fixed pause. Failures are logged and
		// skipped; the next run picks the app up again.
		details, err := client.GetAppDetails(ctx, entry.AppID)
		time.Sleep(delay)
		if err != nil {
			logger.Warn("appdetails fetch failed",
				zap.Int64("app_id", entry.AppID), zap.Error(err))
			continue
		}
		if details == nil {
			continue
		}

		batch = append(batch, gameRecordFromDetails(entry.AppID, details))
		synced++

		if len(batch) >= upsertBatchSize {
			flushBatch(ctx, gameRepo, logger, batch)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		flushBatch(ctx, gameRepo, logger, batch)
	}

	logger.Info("catalog sync finished", zap.Int("synced", synced))
}

func flushBatch(ctx context.Context, gameRepo domain_catalog.GameRepository, logger *zap.Logger, batch []*domain_catalog.GameRecord) {
	upserted, err := gameRepo.BulkUpsert(ctx, batch)
	if err != nil {
		logger.Error("bulk upsert failed", zap.Int("batch", len(batch)), zap.Error(err))
		return
	}
	logger.Info("batch upserted", zap.Int("records", upserted))
}

func gameRecordFromDetails(appID int64, details *steam.AppDetails) *domain_catalog.GameRecord {
	var genres []string
	for _, g := range details.Genres {
		genres = append(genres, g.Description)
	}

	// Tags carry both genres and store categories, lowercased for matching.
	var tags []string
	for _, g := range details.Genres {
		tags = append(tags, strings.ToLower(g.Description))
	}
	for _, c := range details.Categories {
		tags = append(tags, strings.ToLower(c.Description))
	}

	record := &domain_catalog.GameRecord{
		AppID:           appID,
		Title:           details.Name,
		TitlePinyinFull: strings.Join(pinyin.LazyConvert(details.Name, nil), ""),
		Genre:           strings.Join(genres, ", "),
		Tags:            tags,
		ActivePlayers:   details.Recommendations.Total,
		CommunityRating: details.Metacritic.Score,
		HeaderImage:     details.HeaderImage,
		CapsuleImage:    details.CapsuleImage,
		ReleaseDate:     details.ReleaseDate.Date,
	}
	if details.PriceOverview != nil {
		record.PriceCents = details.PriceOverview.FinalCents
		record.Currency = details.PriceOverview.Currency
		record.DiscountPercent = details.PriceOverview.DiscountPercent
	}
	return record
}
