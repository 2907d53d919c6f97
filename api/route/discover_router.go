package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spotlight-app/spotlight-backend/api/controller/controller_discover"
	"github.com/spotlight-app/spotlight-backend/bootstrap"
	"github.com/spotlight-app/spotlight-backend/domain"
	"github.com/spotlight-app/spotlight-backend/domain/domain_discover"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"github.com/spotlight-app/spotlight-backend/repository/repository_catalog"
	"github.com/spotlight-app/spotlight-backend/repository/repository_interaction"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_discover"
	"go.uber.org/zap"
)

// NewRecommendationRouter is behind auth: recommendations are personal.
func NewRecommendationRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, redisClient *redis.Client, logger *zap.Logger, group *gin.RouterGroup) {
	gameRepo := repository_catalog.NewGameRepository(db, domain.CollectionCatalogGame)
	libraryRepo := repository_interaction.NewLibraryRepository(db, domain.CollectionInteractionLibrary)
	reviewRepo := repository_interaction.NewReviewRepository(db, domain.CollectionInteractionReview)

	var cache usecase_discover.RecommendCache
	if redisClient != nil {
		cache = usecase_discover.NewRedisRecommendCache(redisClient)
	}

	discoverUsecase := usecase_discover.NewDiscoverUsecase(
		gameRepo, libraryRepo, reviewRepo, cache,
		time.Duration(env.RecommendCacheTTL)*time.Second,
		domain_discover.DefaultCuratedList, logger, timeout,
	)
	ctrl := controller_discover.NewDiscoverController(discoverUsecase)

	group.GET("/discover/recommendations", ctrl.GetRecommendations)
}

// NewRankingRouter is public: the curated ranking is the same for everyone.
func NewRankingRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	gameRepo := repository_catalog.NewGameRepository(db, domain.CollectionCatalogGame)
	libraryRepo := repository_interaction.NewLibraryRepository(db, domain.CollectionInteractionLibrary)
	reviewRepo := repository_interaction.NewReviewRepository(db, domain.CollectionInteractionReview)

	discoverUsecase := usecase_discover.NewDiscoverUsecase(
		gameRepo, libraryRepo, reviewRepo, nil, 0,
		domain_discover.DefaultCuratedList, zap.NewNop(), timeout,
	)
	ctrl := controller_discover.NewDiscoverController(discoverUsecase)

	group.GET("/discover/ranking", ctrl.GetRanking)
}
