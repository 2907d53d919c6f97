package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spotlight-app/spotlight-backend/api/middleware"
	"github.com/spotlight-app/spotlight-backend/bootstrap"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"go.uber.org/zap"
)

// Setup wires every feature router. Catalog browsing and the curated ranking
// are public; everything touching a user's own data sits behind the bearer
// token middleware.
func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, redisClient *redis.Client, logger *zap.Logger, gin *gin.Engine) {
	publicRouter := gin.Group("")
	NewGameCatalogRouter(timeout, db, publicRouter)
	NewRankingRouter(timeout, db, publicRouter)

	protectedRouter := gin.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewRecommendationRouter(env, timeout, db, redisClient, logger, protectedRouter)
	NewInteractionRouter(timeout, db, protectedRouter)
	NewSocialRouter(timeout, db, logger, protectedRouter)
	NewFeedbackRouter(env, timeout, db, protectedRouter)
}
