package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spotlight-app/spotlight-backend/api/controller/controller_catalog"
	"github.com/spotlight-app/spotlight-backend/domain"
	"github.com/spotlight-app/spotlight-backend/mongo"
	"github.com/spotlight-app/spotlight-backend/repository/repository_catalog"
	"github.com/spotlight-app/spotlight-backend/usecase/usecase_catalog"
)

func NewGameCatalogRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	gameRepo := repository_catalog.NewGameRepository(db, domain.CollectionCatalogGame)
	catalogUsecase := usecase_catalog.NewGameCatalogUsecase(gameRepo, timeout)
	ctrl := controller_catalog.NewGameCatalogController(catalogUsecase)

	group.GET("/games", ctrl.BrowseGames)
	group.GET("/games/search", ctrl.SearchGames)
	group.GET("/games/:app_id", ctrl.GetGame)
}
