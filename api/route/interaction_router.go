package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller/controller_interaction"
	"github.com/spotlight-app/spotlight-backend/domain"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"github.com/spotlight-app/spotlight-backend/repository/repository_catalog"
	"github.com/spotlight-app/spotlight-backend/repository/repository_interaction"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_interaction"
)

func NewInteractionRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	gameRepo := repository_catalog.NewGameRepository(db, domain.CollectionCatalogGame)
	libraryRepo := repository_interaction.NewLibraryRepository(db, domain.CollectionInteractionLibrary)
	reviewRepo := repository_interaction.NewReviewRepository(db, domain.CollectionInteractionReview)

	libraryCtrl := controller_interaction.NewLibraryController(
		usecase_interaction.NewLibraryUsecase(libraryRepo, gameRepo, timeout))
	reviewCtrl := controller_interaction.NewReviewController(
		usecase_interaction.NewReviewUsecase(reviewRepo, gameRepo, timeout))

	group.GET("/library", libraryCtrl.GetLibrary)
	group.PUT("/library", libraryCtrl.SetEntry)
	group.DELETE("/library/:app_id", libraryCtrl.RemoveEntry)

	group.PUT("/reviews", reviewCtrl.SubmitReview)
	group.DELETE("/reviews/:app_id", reviewCtrl.RemoveReview)
	group.GET("/games/:app_id/reviews", reviewCtrl.GetGameReviews)
}
