package main

import (
	"context"
	"strconv"
	"time"

	"github.com/spotlight-app/spotlight-backend/bootstrap"
	"github.com/spotlight-app/spotlight-backend/domain"
	"github.com/spotlight-app/spotlight-backend/domain/domain_social"
	"github.com/spotlight-app/spotlight-backend/repository/repository_catalog"
	"github.com/spotlight-app/spotlight-backend/repository/repository_interaction"
	"github.com/spotlight-app/spotlight-backend/repository/repository_social"
	"github.com/spotlight-app/spotlight-backend/steam"
	"go.uber.org/zap"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	logger := app.Logger
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.MongoDBName)
	gameRepo := repository_catalog.NewGameRepository(db, domain.CollectionCatalogGame)
	libraryRepo := repository_interaction.NewLibraryRepository(db, domain.CollectionInteractionLibrary)
	notificationRepo := repository_social.NewNotificationRepository(db, domain.CollectionSocialNotification)
	client := steam.NewClient(env.SteamStoreAPIBase, env.SteamAppListURL)
	delay := time.Duration(env.SyncRequestDelayMS) * time.Millisecond

	ctx := context.Background()

	appIDs, err := libraryRepo.GetWishlistedAppIDs(ctx)
	if err != nil {
		logger.Fatal("wishlist scan failed", zap.Error(err))
	}
	logger.Info("watching wishlisted apps", zap.Int("count", len(appIDs)))

	drops := 0
	for _, appID := range appIDs {
		price, err := client.GetPriceOverview(ctx, appID)
		time.Sleep(delay)
		if err != nil {
			logger.Warn("price fetch failed", zap.Int64("app_id", appID), zap.Error(err))
			continue
		}
		if price == nil {
			continue
		}

		stored, err := gameRepo.GetByAppID(ctx, appID)
		if err != nil {
			logger.Warn("catalog lookup failed", zap.Int64("app_id", appID), zap.Error(err))
			continue
		}

		if stored.PriceCents == 0 || price.FinalCents >= stored.PriceCents {
			continue
		}

		if err := gameRepo.UpdatePrice(ctx, appID, price.FinalCents, price.DiscountPercent); err != nil {
			logger.Error("price update failed", zap.Int64("app_id", appID), zap.Error(err))
			continue
		}

		notifyWishers(ctx, libraryRepo.GetWishingUsers, notificationRepo, logger, stored.Title, appID, stored.PriceCents, price)
		drops++
	}

	logger.Info("price watch finished", zap.Int("apps", len(appIDs)), zap.Int("drops", drops))
}

// notifyWishers fans one price_drop notification out to every user currently
// wishlisting the app.
func notifyWishers(
	ctx context.Context,
	getWishers func(context.Context, int64) ([]string, error),
	notificationRepo domain_social.NotificationRepository,
	logger *zap.Logger,
	title string,
	appID int64,
	oldCents int64,
	price *steam.PriceOverview,
) {
	userIDs, err := getWishers(ctx, appID)
	if err != nil {
		logger.Error("wisher lookup failed", zap.Int64("app_id", appID), zap.Error(err))
		return
	}

	notifications := make([]*domain_social.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, &domain_social.Notification{
			UserID: userID,
			Type:   domain_social.NotificationPriceDrop,
			Payload: map[string]string{
				"app_id":           strconv.FormatInt(appID, 10),
				"title":            title,
				"old_price_cents":  strconv.FormatInt(oldCents, 10),
				"new_price_cents":  strconv.FormatInt(price.FinalCents, 10),
				"discount_percent": strconv.Itoa(price.DiscountPercent),
				"currency":         price.Currency,
			},
		})
	}

	if err := notificationRepo.CreateMany(ctx, notifications); err != nil {
		logger.Error("price-drop notifications failed", zap.Int64("app_id", appID), zap.Error(err))
		return
	}
	logger.Info("price drop notified",
		zap.Int64("app_id", appID),
		zap.Int64("new_price_cents", price.FinalCents),
		zap.Int("users", len(notifications)))
}
